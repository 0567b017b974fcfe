package resumes

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"resume-parser/internal/extract"
)

// ValidateContentType rejects any declared content type other than PDF.
// Parameters such as charset are ignored.
func ValidateContentType(contentType string) error {
	normalized := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	if normalized != extract.MimePDF {
		return fmt.Errorf("%w: got %q", ErrUnsupportedMediaType, normalized)
	}
	return nil
}

// ValidateSize rejects uploads whose declared size exceeds the ceiling.
func ValidateSize(size, max int64) error {
	if max > 0 && size > max {
		return fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrPayloadTooLarge, size, max)
	}
	return nil
}

// ParseID validates and parses a 24-hex object id.
func ParseID(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(raw))
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id, nil
}
