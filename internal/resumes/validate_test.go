package resumes

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestValidateContentType(t *testing.T) {
	cases := []struct {
		name        string
		contentType string
		wantErr     bool
	}{
		{"exact", "application/pdf", false},
		{"upper", "APPLICATION/PDF", false},
		{"with params", "application/pdf; charset=binary", false},
		{"plain text", "text/plain", true},
		{"docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", true},
		{"empty", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateContentType(tc.contentType)
			if tc.wantErr && !errors.Is(err, ErrUnsupportedMediaType) {
				t.Fatalf("expected ErrUnsupportedMediaType, got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateSize(t *testing.T) {
	if err := ValidateSize(100, 100); err != nil {
		t.Fatalf("size at limit should pass: %v", err)
	}
	if err := ValidateSize(101, 100); !errors.Is(err, ErrPayloadTooLarge) {
		t.Fatalf("expected ErrPayloadTooLarge, got %v", err)
	}
	if err := ValidateSize(1<<30, 0); err != nil {
		t.Fatalf("zero limit disables the check: %v", err)
	}
}

func TestParseID(t *testing.T) {
	valid := primitive.NewObjectID().Hex()
	id, err := ParseID(valid)
	if err != nil {
		t.Fatalf("valid id rejected: %v", err)
	}
	if id.Hex() != valid {
		t.Fatalf("expected %s, got %s", valid, id.Hex())
	}

	for _, raw := range []string{"", "abc", "not-a-hex-identifier-at-all", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		if _, err := ParseID(raw); !errors.Is(err, ErrInvalidID) {
			t.Fatalf("expected ErrInvalidID for %q, got %v", raw, err)
		}
	}
}
