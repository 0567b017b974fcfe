package extract

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"resume-parser/internal/shared/telemetry"
)

// MimePDF is the only content type the extractor accepts.
const MimePDF = "application/pdf"

var (
	// ErrUnsupportedType is returned for any declared content type other than PDF.
	ErrUnsupportedType = errors.New("unsupported content type")
	// ErrMalformed is returned when the payload is not a structurally valid PDF.
	ErrMalformed = errors.New("malformed pdf")
)

// Extractor pulls plain text out of PDF payloads using github.com/ledongthuc/pdf.
// It is stateless and safe for concurrent use.
type Extractor struct{}

// Text extracts the concatenated text of all pages, in order.
// Pages whose text cannot be extracted are logged and skipped; the document
// as a whole only fails when the PDF itself cannot be opened.
func (Extractor) Text(data []byte, contentType string) (string, error) {
	normalized := normalizeContentType(contentType)
	if normalized != MimePDF {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, normalized)
	}

	reader, err := openPDF(data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var sb strings.Builder
	total := reader.NumPage()
	for i := 1; i <= total; i++ {
		text, err := pageText(reader, i)
		if err != nil {
			telemetry.Warn("extract.page_skipped", map[string]any{
				"page":  i,
				"pages": total,
				"error": err.Error(),
			})
			continue
		}
		sb.WriteString(text)
	}

	return strings.TrimSpace(sb.String()), nil
}

// openPDF guards pdf.NewReader, which panics on some malformed inputs.
func openPDF(data []byte) (reader *pdf.Reader, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("open pdf: %v", rec)
		}
	}()
	reader, err = pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	return reader, err
}

// pageText guards per-page extraction the same way.
func pageText(reader *pdf.Reader, num int) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("page %d: %v", num, rec)
		}
	}()
	page := reader.Page(num)
	if page.V.IsNull() {
		return "", fmt.Errorf("page %d: missing", num)
	}
	return page.GetPlainText(nil)
}

func normalizeContentType(contentType string) string {
	return strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
}
