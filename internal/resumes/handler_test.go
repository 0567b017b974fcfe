package resumes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"resume-parser/internal/bootstrap"
	"resume-parser/internal/extract/pdftest"
	"resume-parser/internal/ner"
	"resume-parser/internal/shared/config"
)

type fixedRecognizer struct {
	labels []string
	err    error
}

func (f fixedRecognizer) Recognize(_ context.Context, text string) (ner.Result, error) {
	if f.err != nil {
		return ner.Result{}, f.err
	}
	entities := make([]ner.Entity, 0, len(f.labels))
	for _, label := range f.labels {
		entities = append(entities, ner.Entity{Text: "span", Label: label})
	}
	return ner.Result{Text: text, Entities: entities}, nil
}

func newTestApp(t *testing.T, maxUpload int64) *bootstrap.App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		Env:             "dev",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		MaxUploadBytes:  maxUpload,
	}
	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	app.Service.Recognizer = fixedRecognizer{labels: []string{"PERSON", "ORG"}}
	return app
}

func uploadRequest(t *testing.T, target, filename, contentType string, data []byte, fields map[string]string) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write file: %v", err)
	}
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeError(t *testing.T, resp *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()
	var env errorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	return env
}

func TestParseResume(t *testing.T) {
	app := newTestApp(t, 0)
	pdf := pdftest.Build("Jane Doe worked at Google.")

	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, uploadRequest(t, "/parse_resume", "resume.pdf", "application/pdf", pdf, nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var out struct {
		ParsedText string   `json:"parsedText"`
		Entities   []string `json:"entities"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.ParsedText != "Jane Doe worked at Google." {
		t.Fatalf("unexpected parsedText: %q", out.ParsedText)
	}
	if len(out.Entities) != 2 || out.Entities[0] != "PERSON" || out.Entities[1] != "ORG" {
		t.Fatalf("unexpected entities: %v", out.Entities)
	}
}

func TestParseResumeRejectsNonPDF(t *testing.T) {
	app := newTestApp(t, 0)

	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, uploadRequest(t, "/parse_resume", "resume.txt", "text/plain", []byte("plain text resume"), nil))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if env := decodeError(t, resp); env.Error.Code != "unsupported_media_type" {
		t.Fatalf("unexpected error code: %s", env.Error.Code)
	}
}

func TestParseResumeNoText(t *testing.T) {
	app := newTestApp(t, 0)
	pdf := pdftest.Build("")

	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, uploadRequest(t, "/parse_resume", "scan.pdf", "application/pdf", pdf, nil))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", resp.Code, resp.Body.String())
	}
	if env := decodeError(t, resp); env.Error.Code != "empty_content" {
		t.Fatalf("unexpected error code: %s", env.Error.Code)
	}
}

func TestParseResumeModelUnavailable(t *testing.T) {
	app := newTestApp(t, 0)
	app.Service.Recognizer = fixedRecognizer{err: ner.ErrModelUnavailable}

	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, uploadRequest(t, "/parse_resume", "resume.pdf", "application/pdf", pdftest.Build("text"), nil))

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.Code)
	}
	if env := decodeError(t, resp); env.Error.Code != "model_unavailable" {
		t.Fatalf("unexpected error code: %s", env.Error.Code)
	}
}

func TestUploadTooLarge(t *testing.T) {
	app := newTestApp(t, 64)
	pdf := pdftest.Build("This document is bigger than the configured ceiling.")

	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, uploadRequest(t, "/upload_and_save", "resume.pdf", "application/pdf", pdf,
		map[string]string{"userId": primitive.NewObjectID().Hex()}))

	if resp.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", resp.Code)
	}
}

func TestUploadAndSaveRoundTrip(t *testing.T) {
	app := newTestApp(t, 0)
	userID := primitive.NewObjectID().Hex()
	pdf := pdftest.Build("Jane Doe worked at Google.")

	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, uploadRequest(t, "/upload_and_save", "resume.pdf", "application/pdf", pdf,
		map[string]string{"userId": userID}))

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var saved struct {
		ID          string   `json:"id"`
		ParsedText  string   `json:"parsedText"`
		Entities    []string `json:"entities"`
		UserID      string   `json:"userId"`
		FileName    string   `json:"fileName"`
		FileSize    int64    `json:"fileSize"`
		ContentType string   `json:"contentType"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&saved); err != nil {
		t.Fatalf("decode save response: %v", err)
	}
	if len(saved.ID) != 24 {
		t.Fatalf("expected 24-hex id, got %q", saved.ID)
	}
	if saved.UserID != userID {
		t.Fatalf("userId mismatch: %s", saved.UserID)
	}
	if saved.FileName != "resume.pdf" || saved.FileSize != int64(len(pdf)) {
		t.Fatalf("unexpected file metadata: %+v", saved)
	}

	// Fetch the record back by id.
	respGet := httptest.NewRecorder()
	app.Router.ServeHTTP(respGet, httptest.NewRequest(http.MethodGet, "/resume/"+saved.ID, nil))
	if respGet.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", respGet.Code)
	}
	var fetched struct {
		ParsedText string   `json:"parsedText"`
		Entities   []string `json:"entities"`
	}
	if err := json.NewDecoder(respGet.Body).Decode(&fetched); err != nil {
		t.Fatalf("decode get response: %v", err)
	}
	if fetched.ParsedText != saved.ParsedText {
		t.Fatalf("parsedText mismatch after fetch")
	}
	if len(fetched.Entities) != len(saved.Entities) {
		t.Fatalf("entities mismatch after fetch: %v vs %v", fetched.Entities, saved.Entities)
	}

	// The user listing contains exactly this record.
	respList := httptest.NewRecorder()
	app.Router.ServeHTTP(respList, httptest.NewRequest(http.MethodGet, "/resumes/user/"+userID, nil))
	if respList.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", respList.Code)
	}
	var list []struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(respList.Body).Decode(&list); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(list) != 1 || list[0].ID != saved.ID {
		t.Fatalf("unexpected listing: %+v", list)
	}
}

func TestUploadAndSaveInvalidUserID(t *testing.T) {
	app := newTestApp(t, 0)
	pdf := pdftest.Build("text")

	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, uploadRequest(t, "/upload_and_save", "resume.pdf", "application/pdf", pdf,
		map[string]string{"userId": "not-an-id"}))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if env := decodeError(t, resp); env.Error.Code != "invalid_identifier" {
		t.Fatalf("unexpected error code: %s", env.Error.Code)
	}
}

func TestUploadAndSaveMissingUserID(t *testing.T) {
	app := newTestApp(t, 0)

	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, uploadRequest(t, "/upload_and_save", "resume.pdf", "application/pdf", pdftest.Build("text"), nil))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if env := decodeError(t, resp); env.Error.Code != "validation_error" {
		t.Fatalf("unexpected error code: %s", env.Error.Code)
	}
}

func TestGetResumeMalformedID(t *testing.T) {
	app := newTestApp(t, 0)

	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/resume/xyz", nil))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if env := decodeError(t, resp); env.Error.Code != "invalid_identifier" {
		t.Fatalf("unexpected error code: %s", env.Error.Code)
	}
}

func TestGetResumeNotFound(t *testing.T) {
	app := newTestApp(t, 0)

	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/resume/"+primitive.NewObjectID().Hex(), nil))

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestListUserResumesEmpty(t *testing.T) {
	app := newTestApp(t, 0)

	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/resumes/user/"+primitive.NewObjectID().Hex(), nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if body := resp.Body.String(); body != "[]" {
		t.Fatalf("expected empty array, got %s", body)
	}
}

func TestHealth(t *testing.T) {
	app := newTestApp(t, 0)

	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var out struct {
		Status            string `json:"status"`
		DatabaseConnected bool   `json:"databaseConnected"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode health response: %v", err)
	}
	if out.Status != "healthy" || !out.DatabaseConnected {
		t.Fatalf("unexpected health payload: %+v", out)
	}
}

func TestRootEndpoint(t *testing.T) {
	app := newTestApp(t, 0)

	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var out struct {
		Message string `json:"message"`
		Version string `json:"version"`
		Docs    string `json:"docs"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode root response: %v", err)
	}
	if out.Message == "" || out.Version == "" || out.Docs == "" {
		t.Fatalf("missing root fields: %+v", out)
	}
}
