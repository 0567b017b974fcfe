package ner

import (
	"context"
	"errors"
)

// Entity is a recognized text span and its label, e.g. ("Google", "ORG").
type Entity struct {
	Text  string
	Label string
}

// Result carries the input text verbatim plus the recognized entities in
// document order. Duplicate pairs are preserved.
type Result struct {
	Text     string
	Entities []Entity
}

// Recognizer runs named-entity recognition over plain text.
// Implementations are shared across requests and must be safe for
// concurrent use.
type Recognizer interface {
	Recognize(ctx context.Context, text string) (Result, error)
}

// ErrModelUnavailable indicates the underlying model artifact or service
// cannot be located or loaded.
var ErrModelUnavailable = errors.New("ner model unavailable")
