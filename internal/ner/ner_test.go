package ner

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestProseDefaultModelPreservesText(t *testing.T) {
	rec, err := NewProse("")
	if err != nil {
		t.Fatalf("new prose recognizer: %v", err)
	}

	text := "Jane Doe worked at Google in London before joining Microsoft."
	res, err := rec.Recognize(context.Background(), text)
	if err != nil {
		t.Fatalf("recognize: %v", err)
	}
	if res.Text != text {
		t.Fatalf("expected verbatim text back, got %q", res.Text)
	}
	for _, ent := range res.Entities {
		if ent.Text == "" || ent.Label == "" {
			t.Fatalf("entity with empty text or label: %+v", ent)
		}
	}
}

func TestProseMissingModelDir(t *testing.T) {
	_, err := NewProse(filepath.Join(t.TempDir(), "no-such-model"))
	if !errors.Is(err, ErrModelUnavailable) {
		t.Fatalf("expected ErrModelUnavailable, got %v", err)
	}
}

func TestHTTPClientRecognize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/entity" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var req entityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(req.Texts) != 1 || req.Texts[0].Text == "" || req.Texts[0].UUID == "" {
			t.Errorf("malformed request payload: %+v", req)
		}

		resp := entityResponse{Texts: []entityResponseRecord{{
			UUID: req.Texts[0].UUID,
			Entities: []entityRecord{
				{Name: "Jane Doe", Label: "PERSON", Matches: []entityMatch{{Start: 0, End: 8, Text: "Jane Doe"}}},
				{Name: "Google", Label: "ORG"},
			},
		}}}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	rec := NewHTTPClient(srv.URL)
	res, err := rec.Recognize(context.Background(), "Jane Doe works at Google.")
	if err != nil {
		t.Fatalf("recognize: %v", err)
	}
	if res.Text != "Jane Doe works at Google." {
		t.Fatalf("expected verbatim text back, got %q", res.Text)
	}
	if len(res.Entities) != 2 {
		t.Fatalf("expected 2 entities, got %d", len(res.Entities))
	}
	if res.Entities[0] != (Entity{Text: "Jane Doe", Label: "PERSON"}) {
		t.Fatalf("unexpected first entity: %+v", res.Entities[0])
	}
	if res.Entities[1] != (Entity{Text: "Google", Label: "ORG"}) {
		t.Fatalf("unexpected second entity: %+v", res.Entities[1])
	}
}

func TestHTTPClientServiceDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	rec := NewHTTPClient(srv.URL)
	_, err := rec.Recognize(context.Background(), "text")
	if !errors.Is(err, ErrModelUnavailable) {
		t.Fatalf("expected ErrModelUnavailable, got %v", err)
	}
}

func TestHTTPClientBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	rec := NewHTTPClient(srv.URL)
	_, err := rec.Recognize(context.Background(), "text")
	if !errors.Is(err, ErrModelUnavailable) {
		t.Fatalf("expected ErrModelUnavailable, got %v", err)
	}
}

func TestEnsureModelNoop(t *testing.T) {
	if err := EnsureModel(context.Background(), "", "http://unused"); err != nil {
		t.Fatalf("empty dir should be a no-op: %v", err)
	}

	dir := t.TempDir()
	if err := EnsureModel(context.Background(), dir, "http://unused"); err != nil {
		t.Fatalf("existing dir should be a no-op: %v", err)
	}

	missing := filepath.Join(t.TempDir(), "model")
	if err := EnsureModel(context.Background(), missing, ""); err != nil {
		t.Fatalf("no artifact URL should be a no-op: %v", err)
	}
}

func TestEnsureModelDownloads(t *testing.T) {
	var archive bytes.Buffer
	gz := gzip.NewWriter(&archive)
	tw := tar.NewWriter(gz)
	content := []byte("model-data")
	if err := tw.WriteHeader(&tar.Header{Name: "Maxent/weights.gob", Mode: 0o644, Size: int64(len(content)), Typeflag: tar.TypeReg}); err != nil {
		t.Fatalf("tar header: %v", err)
	}
	if _, err := tw.Write(content); err != nil {
		t.Fatalf("tar write: %v", err)
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("tar close: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(archive.Bytes())
	}))
	defer srv.Close()

	dir := filepath.Join(t.TempDir(), "model")
	if err := EnsureModel(context.Background(), dir, srv.URL); err != nil {
		t.Fatalf("ensure model: %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "Maxent", "weights.gob"))
	if err != nil {
		t.Fatalf("read unpacked file: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Fatalf("unexpected unpacked content: %q", got)
	}
}
