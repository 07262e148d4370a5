package analyses

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Salma-fathi/ATS-CV-TESTER/internal/shared/metrics"
	"github.com/Salma-fathi/ATS-CV-TESTER/internal/shared/server/respond"
)

// maxUploadBytes caps resume uploads at 10 MB.
const maxUploadBytes = 10 << 20

var allowedExtensions = map[string]struct{}{
	".pdf":  {},
	".docx": {},
	".doc":  {},
	".txt":  {},
	".rtf":  {},
}

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyze)
	rg.GET("/results/:id", h.getResult)
}

func (h *Handler) analyze(c *gin.Context) {
	fileHeader, err := c.FormFile("cv")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "cv file is required", nil)
		return
	}
	if fileHeader.Size > maxUploadBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, ErrorCodeValidation, "file exceeds the 10MB limit", nil)
		return
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if _, ok := allowedExtensions[ext]; !ok {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "unsupported file type, use pdf, docx, doc, txt or rtf", []map[string]string{
			{"field": "cv", "issue": "unsupported_type"},
		})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "failed to read upload", nil)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "failed to read upload", nil)
		return
	}
	if len(data) > maxUploadBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, ErrorCodeValidation, "file exceeds the 10MB limit", nil)
		return
	}

	jobDescription := c.PostForm("job_description")
	languageHint := c.PostForm("language_hint")

	metrics.IncAnalysisStarted()
	started := time.Now()

	record, err := h.Svc.Analyze(c.Request.Context(), fileHeader.Filename, data, jobDescription, languageHint)
	metrics.ObserveAnalysisDurationMs(float64(time.Since(started).Milliseconds()))
	if err != nil {
		metrics.IncAnalysisFailed()
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, ErrorCodeExtraction, "could not extract text from the file", nil)
		case errors.Is(err, ErrTextTooShort):
			respond.Error(c, http.StatusBadRequest, ErrorCodeExtraction, "could not extract sufficient text from the file", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "failed to analyze the file", nil)
		}
		return
	}
	c.Set("analysisId", record.ID)
	if !record.Report.Success {
		metrics.IncAnalysisFailed()
		respond.JSON(c, http.StatusInternalServerError, record.Report)
		return
	}

	metrics.IncAnalysisCompleted()
	respond.JSON(c, http.StatusOK, record.Report)
}

// getResult returns a previously stored report.
func (h *Handler) getResult(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "result id is required", nil)
		return
	}

	record, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "NOT_FOUND", "result not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "failed to fetch result", nil)
		}
		return
	}

	c.Set("analysisId", record.ID)
	respond.JSON(c, http.StatusOK, record.Report)
}
