package resumes

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"resume-parser/internal/ner"
)

type stubExtractor struct {
	text string
	err  error
	fail func(format string, args ...any)
}

func (s stubExtractor) Text(data []byte, contentType string) (string, error) {
	if s.fail != nil {
		s.fail("extractor called before validation failed the request")
	}
	return s.text, s.err
}

type stubRecognizer struct {
	labels []string
	err    error
}

func (s stubRecognizer) Recognize(_ context.Context, text string) (ner.Result, error) {
	if s.err != nil {
		return ner.Result{}, s.err
	}
	entities := make([]ner.Entity, 0, len(s.labels))
	for _, label := range s.labels {
		entities = append(entities, ner.Entity{Text: "span", Label: label})
	}
	return ner.Result{Text: text, Entities: entities}, nil
}

type failingPingRepo struct {
	*MemoryRepo
}

func (failingPingRepo) Ping(context.Context) error {
	return errors.New("connection refused")
}

func newTestService(extractor TextExtractor, recognizer ner.Recognizer) *Service {
	return &Service{
		Repo:           NewMemoryRepo(),
		Extractor:      extractor,
		Recognizer:     recognizer,
		MaxUploadBytes: 1 << 20,
	}
}

func pdfUpload(size int64) Upload {
	return Upload{
		Data:        []byte("%PDF-"),
		FileName:    "resume.pdf",
		ContentType: "application/pdf",
		Size:        size,
	}
}

func TestParseReturnsLabelsOnly(t *testing.T) {
	svc := newTestService(
		stubExtractor{text: "Jane Doe, Google"},
		stubRecognizer{labels: []string{"PERSON", "ORG", "ORG"}},
	)

	out, err := svc.Parse(context.Background(), pdfUpload(5))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if out.ParsedText != "Jane Doe, Google" {
		t.Fatalf("unexpected parsed text: %q", out.ParsedText)
	}
	if len(out.Entities) != 3 || out.Entities[0] != "PERSON" || out.Entities[1] != "ORG" || out.Entities[2] != "ORG" {
		t.Fatalf("expected duplicate labels preserved in order, got %v", out.Entities)
	}
}

func TestParseEmptyText(t *testing.T) {
	svc := newTestService(stubExtractor{text: ""}, stubRecognizer{})

	_, err := svc.Parse(context.Background(), pdfUpload(5))
	if !errors.Is(err, ErrEmptyContent) {
		t.Fatalf("expected ErrEmptyContent, got %v", err)
	}
}

func TestParseValidatesBeforeExtraction(t *testing.T) {
	svc := newTestService(stubExtractor{fail: t.Errorf}, stubRecognizer{})

	up := pdfUpload(5)
	up.ContentType = "text/plain"
	if _, err := svc.Parse(context.Background(), up); !errors.Is(err, ErrUnsupportedMediaType) {
		t.Fatalf("expected ErrUnsupportedMediaType, got %v", err)
	}

	if _, err := svc.Parse(context.Background(), pdfUpload(svc.MaxUploadBytes+1)); !errors.Is(err, ErrPayloadTooLarge) {
		t.Fatalf("expected ErrPayloadTooLarge, got %v", err)
	}
}

func TestParseModelUnavailable(t *testing.T) {
	svc := newTestService(stubExtractor{text: "some text"}, stubRecognizer{err: ner.ErrModelUnavailable})

	_, err := svc.Parse(context.Background(), pdfUpload(5))
	if !errors.Is(err, ner.ErrModelUnavailable) {
		t.Fatalf("expected ErrModelUnavailable, got %v", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	svc := newTestService(
		stubExtractor{text: "Jane Doe, Google"},
		stubRecognizer{labels: []string{"PERSON", "ORG"}},
	)
	userID := primitive.NewObjectID().Hex()

	rec, err := svc.Save(context.Background(), pdfUpload(5), userID)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if rec.ID.IsZero() {
		t.Fatal("expected generated id")
	}

	got, err := svc.Get(context.Background(), rec.ID.Hex())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ParsedText != rec.ParsedText {
		t.Fatalf("parsedText mismatch: %q vs %q", got.ParsedText, rec.ParsedText)
	}
	if len(got.Entities) != 2 || got.Entities[0] != "PERSON" || got.Entities[1] != "ORG" {
		t.Fatalf("entities mismatch: %v", got.Entities)
	}
	if got.UserID.Hex() != userID {
		t.Fatalf("userId mismatch: %s vs %s", got.UserID.Hex(), userID)
	}

	list, err := svc.ListByUser(context.Background(), userID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 record, got %d", len(list))
	}
}

func TestSaveInvalidUserIDSkipsParsing(t *testing.T) {
	svc := newTestService(stubExtractor{fail: t.Errorf}, stubRecognizer{})

	_, err := svc.Save(context.Background(), pdfUpload(5), "not-an-object-id")
	if !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestListByUserEmpty(t *testing.T) {
	svc := newTestService(stubExtractor{}, stubRecognizer{})

	list, err := svc.ListByUser(context.Background(), primitive.NewObjectID().Hex())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", list)
	}
}

func TestGetNotFound(t *testing.T) {
	svc := newTestService(stubExtractor{}, stubRecognizer{})

	_, err := svc.Get(context.Background(), primitive.NewObjectID().Hex())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestHealth(t *testing.T) {
	svc := newTestService(stubExtractor{}, stubRecognizer{})

	got := svc.Health(context.Background())
	if got.Status != "healthy" || !got.DatabaseConnected {
		t.Fatalf("expected healthy status, got %+v", got)
	}

	svc.Repo = failingPingRepo{NewMemoryRepo()}
	got = svc.Health(context.Background())
	if got.Status != "degraded" || got.DatabaseConnected {
		t.Fatalf("expected degraded status, got %+v", got)
	}
}
