package repository

import (
	"context"
	"errors"
	"time"

	"florify-catalog/internal/domain"
)

// ErrNotFound is returned when an update matches no row.
var ErrNotFound = errors.New("record not found")

// CatalogRepository defines methods for catalog product data access.
type CatalogRepository interface {
	// ListAll loads the whole catalog in one read.
	ListAll(ctx context.Context) ([]domain.CatalogRecord, error)
	StreamAll(ctx context.Context, callback func(domain.CatalogRecord) error) error
	GetByBarcode(ctx context.Context, barcode string) (*domain.CatalogRecord, error)
	FindByItemCode(ctx context.Context, itemCode string) ([]domain.CatalogRecord, error)
	// BulkUpsert inserts or replaces records keyed by barcode in a single
	// transaction, tagging them with batchID and at.
	BulkUpsert(ctx context.Context, records []domain.CatalogRecord, batchID string, at time.Time) (int, error)
	// UpdateByBarcode overwrites the listed feed fields of the record with the
	// given barcode; nil columns means all of them. The stored barcode itself
	// is never changed.
	UpdateByBarcode(ctx context.Context, barcode string, record domain.CatalogRecord, columns []string, batchID string, at time.Time) error
}

// BatchRepository defines methods for import batch data access.
type BatchRepository interface {
	CreateBatch(ctx context.Context, batch *domain.ImportBatch) error
	GetBatch(ctx context.Context, id string) (*domain.ImportBatch, error)
	ListBatches(ctx context.Context, limit int) ([]domain.ImportBatch, error)
	UpdateBatch(ctx context.Context, batch *domain.ImportBatch) error
}

// AuditRepository defines methods for audit log data access.
type AuditRepository interface {
	InsertEntries(ctx context.Context, entries []domain.AuditLogEntry) error
	ListByBatch(ctx context.Context, batchID string) ([]domain.AuditLogEntry, error)
}
