package ner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// HTTPClient recognizes entities through a sidecar NLP service speaking the
// batch texts-in/entities-out JSON protocol.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient constructs a recognizer against the given service base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type entityRequestRecord struct {
	UUID     string `json:"uuid"`
	Text     string `json:"text"`
	Language string `json:"language"`
}

type entityRequest struct {
	Texts []entityRequestRecord `json:"texts"`
}

type entityMatch struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
}

type entityRecord struct {
	Name    string        `json:"name"`
	Label   string        `json:"label"`
	Matches []entityMatch `json:"matches"`
}

type entityResponseRecord struct {
	UUID     string         `json:"uuid"`
	Entities []entityRecord `json:"entities"`
}

type entityResponse struct {
	Texts []entityResponseRecord `json:"texts"`
}

// Recognize sends the text to the sidecar and reshapes its answer.
// Any transport or protocol failure surfaces as ErrModelUnavailable.
func (h *HTTPClient) Recognize(ctx context.Context, text string) (Result, error) {
	payload := entityRequest{
		Texts: []entityRequestRecord{{
			UUID:     uuid.NewString(),
			Text:     text,
			Language: "en",
		}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return Result{}, fmt.Errorf("encode entity request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+"/entity", bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("build entity request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("%w: entity service returned %d", ErrModelUnavailable, resp.StatusCode)
	}

	var decoded entityResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Result{}, fmt.Errorf("%w: decode entity response: %v", ErrModelUnavailable, err)
	}
	if len(decoded.Texts) == 0 {
		return Result{Text: text, Entities: []Entity{}}, nil
	}

	var entities []Entity
	for _, rec := range decoded.Texts[0].Entities {
		if len(rec.Matches) == 0 {
			entities = append(entities, Entity{Text: rec.Name, Label: rec.Label})
			continue
		}
		for _, m := range rec.Matches {
			entities = append(entities, Entity{Text: m.Text, Label: rec.Label})
		}
	}
	return Result{Text: text, Entities: entities}, nil
}
