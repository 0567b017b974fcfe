package resumes

import (
	"context"
	"time"

	"resume-parser/internal/ner"
	"resume-parser/internal/shared/telemetry"
)

// TextExtractor pulls plain text from an uploaded payload.
type TextExtractor interface {
	Text(data []byte, contentType string) (string, error)
}

// Upload is a resume file received from a client.
type Upload struct {
	Data        []byte
	FileName    string
	ContentType string
	Size        int64
}

// Service orchestrates validation, extraction, recognition and persistence.
type Service struct {
	Repo           Repo
	Extractor      TextExtractor
	Recognizer     ner.Recognizer
	MaxUploadBytes int64
}

// ParseOutput is the result of parsing without persistence.
type ParseOutput struct {
	ParsedText string
	Entities   []string
}

// Parse validates the upload, extracts its text and recognizes entities.
// Validators run before any extraction or inference work.
func (s *Service) Parse(ctx context.Context, up Upload) (ParseOutput, error) {
	if err := ValidateContentType(up.ContentType); err != nil {
		return ParseOutput{}, err
	}
	if err := ValidateSize(up.Size, s.MaxUploadBytes); err != nil {
		return ParseOutput{}, err
	}

	text, err := s.Extractor.Text(up.Data, up.ContentType)
	if err != nil {
		return ParseOutput{}, err
	}
	if text == "" {
		return ParseOutput{}, ErrEmptyContent
	}

	result, err := s.Recognizer.Recognize(ctx, text)
	if err != nil {
		return ParseOutput{}, err
	}

	labels := make([]string, 0, len(result.Entities))
	for _, ent := range result.Entities {
		labels = append(labels, ent.Label)
	}
	return ParseOutput{ParsedText: result.Text, Entities: labels}, nil
}

// Save parses the upload and persists the result for the given user.
// The user id is format-checked only; it is not resolved against a user store.
func (s *Service) Save(ctx context.Context, up Upload, userIDHex string) (ParsedResume, error) {
	userID, err := ParseID(userIDHex)
	if err != nil {
		return ParsedResume{}, err
	}

	out, err := s.Parse(ctx, up)
	if err != nil {
		return ParsedResume{}, err
	}

	rec := ParsedResume{
		ParsedText:  out.ParsedText,
		Entities:    out.Entities,
		UserID:      userID,
		FileName:    up.FileName,
		FileSize:    up.Size,
		ContentType: up.ContentType,
	}
	id, err := s.Repo.Insert(ctx, rec)
	if err != nil {
		return ParsedResume{}, err
	}
	rec.ID = id
	return rec, nil
}

// Get fetches one persisted resume by its id.
func (s *Service) Get(ctx context.Context, idHex string) (ParsedResume, error) {
	id, err := ParseID(idHex)
	if err != nil {
		return ParsedResume{}, err
	}
	return s.Repo.FindByID(ctx, id)
}

// ListByUser fetches all persisted resumes for a user.
func (s *Service) ListByUser(ctx context.Context, userIDHex string) ([]ParsedResume, error) {
	userID, err := ParseID(userIDHex)
	if err != nil {
		return nil, err
	}
	return s.Repo.FindByUser(ctx, userID)
}

// Health reports store connectivity. It never returns an error; an
// unreachable store is reported as degraded.
func (s *Service) Health(ctx context.Context) HealthResponse {
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := s.Repo.Ping(pingCtx); err != nil {
		telemetry.Warn("health.store_unreachable", map[string]any{"error": err.Error()})
		return HealthResponse{Status: "degraded", DatabaseConnected: false}
	}
	return HealthResponse{Status: "healthy", DatabaseConnected: true}
}
