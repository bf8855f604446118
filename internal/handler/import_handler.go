package handler

import (
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"florify-catalog/internal/csvfeed"
	"florify-catalog/internal/domain"
	"florify-catalog/internal/logger"
	"florify-catalog/internal/middleware"
	"florify-catalog/internal/service"
)

// csvContentTypes are the part content types browsers send for .csv files.
var csvContentTypes = map[string]struct{}{
	"":                         {},
	"text/csv":                 {},
	"application/csv":          {},
	"text/plain":               {},
	"application/vnd.ms-excel": {},
	"application/octet-stream": {},
}

// ImportHandler handles catalog import HTTP requests.
type ImportHandler struct {
	importService  service.ImportServiceInterface
	catalogService service.CatalogServiceInterface
	maxUploadSize  int64
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(importService service.ImportServiceInterface, catalogService service.CatalogServiceInterface, maxUploadSize int64) *ImportHandler {
	return &ImportHandler{
		importService:  importService,
		catalogService: catalogService,
		maxUploadSize:  maxUploadSize,
	}
}

// AnalysisResponse is a reconciled upload awaiting confirmation.
type AnalysisResponse struct {
	AnalysisID string                   `json:"analysis_id"`
	Filename   string                   `json:"filename"`
	Counts     domain.AnalysisCounts    `json:"counts"`
	New        []domain.NewRecord       `json:"new"`
	Changed    []domain.ChangedRecord   `json:"changed"`
	Unchanged  []domain.UnchangedRecord `json:"unchanged"`
	Errors     []domain.RowError        `json:"errors"`
	CreatedAt  string                   `json:"created_at"`
	ExpiresAt  string                   `json:"expires_at"`
}

func toAnalysisResponse(s *domain.AnalysisSession) AnalysisResponse {
	return AnalysisResponse{
		AnalysisID: s.ID,
		Filename:   s.Filename,
		Counts:     s.Analysis.Counts(),
		New:        s.Analysis.New,
		Changed:    s.Analysis.Changed,
		Unchanged:  s.Analysis.Unchanged,
		Errors:     s.Analysis.Errors,
		CreatedAt:  s.CreatedAt.Format(TimeFormat),
		ExpiresAt:  s.ExpiresAt.Format(TimeFormat),
	}
}

// BatchResponse represents an import batch in the API response.
type BatchResponse struct {
	ID           string             `json:"id"`
	Filename     string             `json:"filename"`
	ArchivePath  string             `json:"archive_path"`
	TotalRows    int                `json:"total_rows"`
	NewCount     int                `json:"new_count"`
	ChangedCount int                `json:"changed_count"`
	Status       string             `json:"status"`
	OperatorID   *string            `json:"operator_id,omitempty"`
	DiffPreview  domain.DiffPreview `json:"diff_preview"`
	ErrorMessage *string            `json:"error_message,omitempty"`
	CreatedAt    string             `json:"created_at"`
	UpdatedAt    string             `json:"updated_at"`
	CompletedAt  *string            `json:"completed_at,omitempty"`
}

func toBatchResponse(b *domain.ImportBatch) BatchResponse {
	response := BatchResponse{
		ID:           b.ID,
		Filename:     b.Filename,
		ArchivePath:  b.ArchivePath,
		TotalRows:    b.TotalRows,
		NewCount:     b.NewCount,
		ChangedCount: b.ChangedCount,
		Status:       string(b.Status),
		OperatorID:   b.OperatorID,
		DiffPreview:  b.Preview,
		ErrorMessage: b.ErrorMessage,
		CreatedAt:    b.CreatedAt.Format(TimeFormat),
		UpdatedAt:    b.UpdatedAt.Format(TimeFormat),
	}
	if b.CompletedAt != nil {
		completedAt := b.CompletedAt.Format(TimeFormat)
		response.CompletedAt = &completedAt
	}
	return response
}

// ConfirmRequest is the operator's selection, by barcode.
type ConfirmRequest struct {
	New     []string `json:"new"`
	Changed []string `json:"changed"`
}

// ConfirmResponse reports an applied batch.
type ConfirmResponse struct {
	Batch          BatchResponse       `json:"batch"`
	NewApplied     int                 `json:"new_applied"`
	ChangedApplied int                 `json:"changed_applied"`
	Audit          service.AuditReport `json:"audit"`
}

// CreateAnalysis handles POST /api/v1/imports/analyses
func (h *ImportHandler) CreateAnalysis(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadSize)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file exceeds the maximum upload size"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	defer file.Close()

	if !isCSVUpload(header.Filename, header.Header.Get("Content-Type")) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only .csv files are accepted"})
		return
	}

	sess, err := h.importService.Analyze(c.Request.Context(), header.Filename, file)
	if err != nil {
		if isFatalParseError(err) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		logger.ErrorContext(c.Request.Context(), "Failed to analyze upload",
			slog.String("filename", header.Filename),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to analyze file"})
		return
	}

	c.JSON(http.StatusCreated, toAnalysisResponse(sess))
}

// GetAnalysis handles GET /api/v1/imports/analyses/:id
func (h *ImportHandler) GetAnalysis(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	sess, err := h.importService.GetAnalysis(c.Request.Context(), id)
	if errors.Is(err, service.ErrAnalysisNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "analysis not found or expired"})
		return
	}
	if err != nil {
		logger.ErrorContext(c.Request.Context(), "Failed to get analysis", slog.String("analysis_id", id), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve analysis"})
		return
	}

	c.JSON(http.StatusOK, toAnalysisResponse(sess))
}

// ConfirmAnalysis handles POST /api/v1/imports/analyses/:id/confirm
func (h *ImportHandler) ConfirmAnalysis(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	var req ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid selection: " + err.Error()})
		return
	}

	result, err := h.importService.Confirm(c.Request.Context(), service.ConfirmRequest{
		AnalysisID:      id,
		NewBarcodes:     req.New,
		ChangedBarcodes: req.Changed,
		OperatorID:      middleware.GetOperatorID(c),
	})
	if err != nil {
		h.writeConfirmError(c, id, err)
		return
	}

	c.JSON(http.StatusCreated, ConfirmResponse{
		Batch:          toBatchResponse(result.Batch),
		NewApplied:     result.NewApplied,
		ChangedApplied: result.ChangedApplied,
		Audit:          result.Audit,
	})
}

func (h *ImportHandler) writeConfirmError(c *gin.Context, analysisID string, err error) {
	var applyErr *service.ApplyError
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrAnalysisNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "analysis not found or expired"})
	case errors.As(err, &applyErr):
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":           "import failed",
			"message":         applyErr.Err.Error(),
			"stage":           applyErr.Stage,
			"batch_id":        applyErr.BatchID,
			"new_applied":     applyErr.NewApplied,
			"changed_applied": applyErr.ChangedApplied,
			"audit":           applyErr.Audit,
		})
	default:
		logger.ErrorContext(c.Request.Context(), "Failed to confirm analysis",
			slog.String("analysis_id", analysisID),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "import failed", "message": err.Error()})
	}
}

// ListBatches handles GET /api/v1/imports
func (h *ImportHandler) ListBatches(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	batches, err := h.importService.ListBatches(c.Request.Context(), limit)
	if err != nil {
		logger.ErrorContext(c.Request.Context(), "Failed to list import batches", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list import batches"})
		return
	}

	response := make([]BatchResponse, 0, len(batches))
	for i := range batches {
		response = append(response, toBatchResponse(&batches[i]))
	}
	c.JSON(http.StatusOK, gin.H{"imports": response})
}

// GetBatch handles GET /api/v1/imports/:id
func (h *ImportHandler) GetBatch(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	batch, err := h.importService.GetBatch(c.Request.Context(), id)
	if err != nil {
		logger.ErrorContext(c.Request.Context(), "Failed to get import batch", slog.String("batch_id", id), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve import batch"})
		return
	}

	if batch == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "import batch not found"})
		return
	}

	c.JSON(http.StatusOK, toBatchResponse(batch))
}

// ListBatchAudit handles GET /api/v1/imports/:id/audit
func (h *ImportHandler) ListBatchAudit(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	entries, err := h.catalogService.ListBatchAudit(c.Request.Context(), id)
	if err != nil {
		logger.ErrorContext(c.Request.Context(), "Failed to list audit entries", slog.String("batch_id", id), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list audit entries"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func isCSVUpload(filename, contentType string) bool {
	if !strings.EqualFold(filepath.Ext(filename), ".csv") {
		return false
	}
	mediaType := ""
	if contentType != "" {
		parsed, _, err := mime.ParseMediaType(contentType)
		if err != nil {
			return false
		}
		mediaType = strings.ToLower(parsed)
	}
	_, ok := csvContentTypes[mediaType]
	return ok
}

func isFatalParseError(err error) bool {
	return errors.Is(err, csvfeed.ErrEmptyFile) ||
		errors.Is(err, csvfeed.ErrNoDataRows) ||
		errors.Is(err, csvfeed.ErrMissingColumns)
}
