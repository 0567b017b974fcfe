package extract

import (
	"errors"
	"strings"
	"testing"

	"resume-parser/internal/extract/pdftest"
)

func TestTextSinglePage(t *testing.T) {
	data := pdftest.Build("Senior Go developer with ten years of experience.")

	got, err := Extractor{}.Text(data, "application/pdf")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if got != "Senior Go developer with ten years of experience." {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestTextMultiPageOrder(t *testing.T) {
	pages := []string{"First page.", "Second page.", "Third page."}
	data := pdftest.Build(pages...)

	got, err := Extractor{}.Text(data, "application/pdf")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	// Each extracted page carries a trailing newline; only the outer
	// edges are trimmed.
	want := strings.Join(pages, "\n")
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestTextContentTypeWithParams(t *testing.T) {
	data := pdftest.Build("hello")

	_, err := Extractor{}.Text(data, "Application/PDF; charset=binary")
	if err != nil {
		t.Fatalf("expected parameterized PDF content type to be accepted, got %v", err)
	}
}

func TestTextRejectsNonPDFContentType(t *testing.T) {
	data := pdftest.Build("hello")

	_, err := Extractor{}.Text(data, "text/plain")
	if !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}

func TestTextMalformedPayload(t *testing.T) {
	_, err := Extractor{}.Text([]byte("definitely not a pdf"), "application/pdf")
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestTextEmptyPage(t *testing.T) {
	data := pdftest.Build("")

	got, err := Extractor{}.Text(data, "application/pdf")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty text, got %q", got)
	}
}
