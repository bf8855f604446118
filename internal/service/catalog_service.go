package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"florify-catalog/internal/csvfeed"
	"florify-catalog/internal/domain"
	"florify-catalog/internal/logger"
	"florify-catalog/internal/metrics"
	"florify-catalog/internal/repository"
)

// StreamFlushInterval is the number of records written between flushes.
const StreamFlushInterval = 500

// CatalogService serves catalog lookups, exports and batch audit trails.
type CatalogService struct {
	catalogRepo repository.CatalogRepository
	auditRepo   repository.AuditRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(catalogRepo repository.CatalogRepository, auditRepo repository.AuditRepository) *CatalogService {
	return &CatalogService{catalogRepo: catalogRepo, auditRepo: auditRepo}
}

// GetByBarcode returns the record with the given barcode, or nil.
func (s *CatalogService) GetByBarcode(ctx context.Context, barcode string) (*domain.CatalogRecord, error) {
	return s.catalogRepo.GetByBarcode(ctx, strings.TrimSpace(barcode))
}

// FindByItemCode returns every record sharing an item code. Item codes are
// not unique and are only used for display.
func (s *CatalogService) FindByItemCode(ctx context.Context, itemCode string) ([]domain.CatalogRecord, error) {
	return s.catalogRepo.FindByItemCode(ctx, strings.TrimSpace(itemCode))
}

// ListBatchAudit returns the audit trail recorded for a batch.
func (s *CatalogService) ListBatchAudit(ctx context.Context, batchID string) ([]domain.AuditLogEntry, error) {
	return s.auditRepo.ListByBatch(ctx, batchID)
}

// StreamCatalog writes the whole catalog in the upload layout, so an export
// can be edited and imported again.
func (s *CatalogService) StreamCatalog(ctx context.Context, writer StreamWriter) (int, error) {
	timer := metrics.NewTimer()
	metrics.StartStreamingExport()

	csvw := csvfeed.NewWriter(streamAdapter{writer})
	count := 0

	err := csvw.WriteHeader()
	if err == nil {
		err = s.catalogRepo.StreamAll(ctx, func(rec domain.CatalogRecord) error {
			if err := csvw.Write(rec); err != nil {
				return err
			}
			count++
			if count%StreamFlushInterval == 0 {
				if err := csvw.Flush(); err != nil {
					return err
				}
				writer.Flush()
			}
			return nil
		})
	}
	if err == nil {
		err = csvw.Flush()
	}
	writer.Flush()

	result := "success"
	if err != nil {
		result = "error"
		if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
			result = "canceled"
		}
	}
	metrics.EndStreamingExport(result, timer.Seconds(), count)

	if err != nil {
		logger.WarnContext(ctx, "Catalog export stopped", slog.Int("records", count), slog.String("error", err.Error()))
		return count, fmt.Errorf("stream catalog: %w", err)
	}
	return count, nil
}

// streamAdapter exposes a StreamWriter as an io.Writer.
type streamAdapter struct {
	w StreamWriter
}

func (a streamAdapter) Write(p []byte) (int, error) {
	if err := a.w.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}
