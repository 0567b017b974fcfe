package resumes

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-parser/internal/extract"
	"resume-parser/internal/ner"
	"resume-parser/internal/shared/server/respond"
)

// multipart boundary and form-field overhead on top of the file itself
const uploadOverhead = 1 << 20

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.health)
	rg.POST("/parse_resume", h.parse)
	rg.POST("/upload_and_save", h.uploadAndSave)
	rg.GET("/resume/:id", h.getResume)
	rg.GET("/resumes/user/:userId", h.listUserResumes)
}

func (h *Handler) health(c *gin.Context) {
	respond.OK(c, h.Svc.Health(c.Request.Context()))
}

func (h *Handler) parse(c *gin.Context) {
	up, ok := h.readUpload(c)
	if !ok {
		return
	}

	out, err := h.Svc.Parse(c.Request.Context(), up)
	if err != nil {
		writeError(c, err)
		return
	}

	respond.OK(c, ParseResponse{ParsedText: out.ParsedText, Entities: out.Entities})
}

func (h *Handler) uploadAndSave(c *gin.Context) {
	up, ok := h.readUpload(c)
	if !ok {
		return
	}

	userID := c.PostForm("userId")
	if userID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "userId is required", nil)
		return
	}
	c.Set("userId", userID)

	rec, err := h.Svc.Save(c.Request.Context(), up, userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Set("resumeId", rec.ID.Hex())

	respond.Created(c, toResponse(rec))
}

func (h *Handler) getResume(c *gin.Context) {
	rec, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.Set("resumeId", rec.ID.Hex())

	respond.OK(c, toResponse(rec))
}

func (h *Handler) listUserResumes(c *gin.Context) {
	userID := c.Param("userId")
	c.Set("userId", userID)

	recs, err := h.Svc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]ResumeResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toResponse(rec))
	}
	respond.OK(c, out)
}

// readUpload reads the multipart file, enforcing the size ceiling before
// the body is consumed. On failure it writes the error response itself.
func (h *Handler) readUpload(c *gin.Context) (Upload, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.Svc.MaxUploadBytes+uploadOverhead)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(c, ErrPayloadTooLarge)
			return Upload{}, false
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return Upload{}, false
	}

	if err := ValidateSize(fileHeader.Size, h.Svc.MaxUploadBytes); err != nil {
		writeError(c, err)
		return Upload{}, false
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return Upload{}, false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return Upload{}, false
	}

	return Upload{
		Data:        data,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
	}, true
}

// writeError maps service errors to transport status codes. This is the
// only place typed errors become HTTP responses.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUnsupportedMediaType), errors.Is(err, extract.ErrUnsupportedType):
		respond.Error(c, http.StatusBadRequest, "unsupported_media_type", "Only PDF files are accepted", nil)
	case errors.Is(err, extract.ErrMalformed):
		respond.Error(c, http.StatusBadRequest, "invalid_pdf", "Error reading PDF", nil)
	case errors.Is(err, ErrEmptyContent):
		respond.Error(c, http.StatusBadRequest, "empty_content", "No text found in the PDF", nil)
	case errors.Is(err, ErrPayloadTooLarge):
		respond.Error(c, http.StatusRequestEntityTooLarge, "payload_too_large", "File exceeds the maximum allowed size", nil)
	case errors.Is(err, ErrInvalidID):
		respond.Error(c, http.StatusBadRequest, "invalid_identifier", "Identifier must be a 24-character hex object id", nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "Resume not found", nil)
	case errors.Is(err, ner.ErrModelUnavailable):
		respond.Error(c, http.StatusServiceUnavailable, "model_unavailable", "Entity recognition model is unavailable", nil)
	case errors.Is(err, ErrStorage):
		respond.Error(c, http.StatusInternalServerError, "storage_error", "Failed to access the document store", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Unexpected server error", nil)
	}
}
