package resumes

import "errors"

var (
	// ErrUnsupportedMediaType is returned when the declared content type is not PDF.
	ErrUnsupportedMediaType = errors.New("only PDF files are accepted")
	// ErrEmptyContent is returned when a valid PDF yields no extractable text.
	ErrEmptyContent = errors.New("no text found in the PDF")
	// ErrPayloadTooLarge is returned when the upload exceeds the configured ceiling.
	ErrPayloadTooLarge = errors.New("file exceeds the maximum allowed size")
	// ErrInvalidID is returned when an identifier is not a 24-hex object id.
	ErrInvalidID = errors.New("malformed identifier")
	// ErrNotFound is returned when no record matches a well-formed id.
	ErrNotFound = errors.New("resume not found")
	// ErrStorage wraps any failure of the underlying document store.
	ErrStorage = errors.New("storage failure")
)
