package service

import (
	"context"
	"io"

	"florify-catalog/internal/domain"
)

// StreamWriter interface for streaming export data.
type StreamWriter interface {
	Write(data []byte) error
	Flush()
}

// ImportServiceInterface defines the interface for catalog import operations.
// Used for dependency injection and mocking in tests.
type ImportServiceInterface interface {
	// Analyze parses and reconciles an upload and keeps the result for review.
	Analyze(ctx context.Context, filename string, reader io.Reader) (*domain.AnalysisSession, error)
	// GetAnalysis retrieves a pending analysis by ID.
	GetAnalysis(ctx context.Context, id string) (*domain.AnalysisSession, error)
	// Confirm applies the operator's selection from a pending analysis.
	Confirm(ctx context.Context, req ConfirmRequest) (*ApplyResult, error)
	// GetBatch retrieves an import batch by ID.
	GetBatch(ctx context.Context, id string) (*domain.ImportBatch, error)
	// ListBatches returns the most recent import batches.
	ListBatches(ctx context.Context, limit int) ([]domain.ImportBatch, error)
}

// CatalogServiceInterface defines the interface for catalog queries and export.
type CatalogServiceInterface interface {
	GetByBarcode(ctx context.Context, barcode string) (*domain.CatalogRecord, error)
	FindByItemCode(ctx context.Context, itemCode string) ([]domain.CatalogRecord, error)
	// StreamCatalog writes every record as CSV and returns the record count.
	StreamCatalog(ctx context.Context, writer StreamWriter) (int, error)
	ListBatchAudit(ctx context.Context, batchID string) ([]domain.AuditLogEntry, error)
}
