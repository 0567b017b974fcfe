package resumes

// ParseResponse is the outward-facing result of a parse-only request.
// Entities carries label strings only; the span text is dropped. This lossy
// projection is a fixed external contract.
type ParseResponse struct {
	ParsedText string   `json:"parsedText"`
	Entities   []string `json:"entities"`
}

// ResumeResponse is the outward-facing representation of a persisted resume.
type ResumeResponse struct {
	ID          string   `json:"id"`
	ParsedText  string   `json:"parsedText"`
	Entities    []string `json:"entities"`
	UserID      string   `json:"userId"`
	FileName    string   `json:"fileName"`
	FileSize    int64    `json:"fileSize"`
	ContentType string   `json:"contentType"`
}

func toResponse(rec ParsedResume) ResumeResponse {
	entities := rec.Entities
	if entities == nil {
		entities = []string{}
	}
	return ResumeResponse{
		ID:          rec.ID.Hex(),
		ParsedText:  rec.ParsedText,
		Entities:    entities,
		UserID:      rec.UserID.Hex(),
		FileName:    rec.FileName,
		FileSize:    rec.FileSize,
		ContentType: rec.ContentType,
	}
}

// HealthResponse reports service liveness and store connectivity.
type HealthResponse struct {
	Status            string `json:"status"`
	DatabaseConnected bool   `json:"databaseConnected"`
}
