package ner

import (
	"context"
	"fmt"
	"os"

	"github.com/jdkato/prose/v2"
)

// Prose recognizes entities with the jdkato/prose pretrained model.
// With a model directory it loads a custom-trained model once and shares it
// read-only; otherwise each call uses the library's built-in English model.
type Prose struct {
	model *prose.Model
}

// NewProse constructs the recognizer. An empty modelDir selects the
// built-in model.
func NewProse(modelDir string) (*Prose, error) {
	if modelDir == "" {
		return &Prose{}, nil
	}
	if _, err := os.Stat(modelDir); err != nil {
		return nil, fmt.Errorf("%w: model directory %s: %v", ErrModelUnavailable, modelDir, err)
	}
	model, err := loadModel(modelDir)
	if err != nil {
		return nil, fmt.Errorf("%w: load %s: %v", ErrModelUnavailable, modelDir, err)
	}
	return &Prose{model: model}, nil
}

// Recognize runs NER over text and returns the entities in document order.
func (p *Prose) Recognize(ctx context.Context, text string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	var opts []prose.DocOpt
	if p.model != nil {
		opts = append(opts, prose.UsingModel(p.model))
	}
	doc, err := prose.NewDocument(text, opts...)
	if err != nil {
		return Result{}, fmt.Errorf("recognize: %w", err)
	}

	found := doc.Entities()
	entities := make([]Entity, 0, len(found))
	for _, ent := range found {
		entities = append(entities, Entity{Text: ent.Text, Label: ent.Label})
	}
	return Result{Text: text, Entities: entities}, nil
}

// loadModel guards prose.ModelFromDisk, which panics on unreadable or
// corrupt model data.
func loadModel(dir string) (model *prose.Model, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%v", rec)
		}
	}()
	return prose.ModelFromDisk(dir), nil
}
