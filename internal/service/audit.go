package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"florify-catalog/internal/domain"
	"florify-catalog/internal/logger"
	"florify-catalog/internal/metrics"
	"florify-catalog/internal/repository"
)

// DefaultAuditChunkSize bounds the number of entries sent in one insert.
const DefaultAuditChunkSize = 50

// AuditReport describes what happened to the audit entries of one apply.
// It is reported next to the import outcome and never turns into an error.
type AuditReport struct {
	Attempted int      `json:"attempted"`
	Written   int      `json:"written"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors,omitempty"`
}

func (r AuditReport) merge(o AuditReport) AuditReport {
	r.Attempted += o.Attempted
	r.Written += o.Written
	r.Failed += o.Failed
	r.Errors = append(r.Errors, o.Errors...)
	return r
}

// AuditLogger writes audit entries on a best-effort basis.
type AuditLogger struct {
	repo      repository.AuditRepository
	chunkSize int
}

// NewAuditLogger creates an AuditLogger. A non-positive chunkSize selects
// DefaultAuditChunkSize.
func NewAuditLogger(repo repository.AuditRepository, chunkSize int) *AuditLogger {
	if chunkSize <= 0 {
		chunkSize = DefaultAuditChunkSize
	}
	return &AuditLogger{repo: repo, chunkSize: chunkSize}
}

// Write inserts entries chunk by chunk. A failed chunk is logged and counted,
// and the remaining chunks are still attempted.
func (a *AuditLogger) Write(ctx context.Context, entries []domain.AuditLogEntry) AuditReport {
	report := AuditReport{Attempted: len(entries)}

	for start := 0; start < len(entries); start += a.chunkSize {
		end := start + a.chunkSize
		if end > len(entries) {
			end = len(entries)
		}
		chunk := entries[start:end]

		if err := a.repo.InsertEntries(ctx, chunk); err != nil {
			logger.ErrorContext(ctx, "Failed to write audit entries",
				slog.Int("chunk_start", start),
				slog.Int("chunk_size", len(chunk)),
				slog.String("error", err.Error()),
			)
			report.Failed += len(chunk)
			report.Errors = append(report.Errors, err.Error())
			continue
		}
		report.Written += len(chunk)
	}

	metrics.ObserveAuditFailures(report.Failed)
	return report
}

// auditScope builds the entries of one batch.
type auditScope struct {
	batchID    string
	operatorID *string
	filename   string
}

func (s auditScope) entry(op domain.AuditOperation, status domain.AuditStatus, at time.Time) domain.AuditLogEntry {
	batchID := s.batchID
	return domain.AuditLogEntry{
		ID:         uuid.New().String(),
		BatchID:    &batchID,
		OperatorID: s.operatorID,
		Operation:  op,
		Status:     status,
		Metadata: map[string]any{
			"filename":  s.filename,
			"timestamp": at.UTC().Format(time.RFC3339),
		},
		CreatedAt: at,
	}
}

func (s auditScope) insert(line int, after domain.CatalogRecord, at time.Time) domain.AuditLogEntry {
	e := s.entry(domain.AuditInsert, domain.AuditStatusSuccess, at)
	e.Barcode = after.Barcode
	e.ItemCode = after.ItemCode
	e.After = &after
	e.Metadata["line"] = line
	return e
}

func (s auditScope) update(change domain.ChangedRecord, after domain.CatalogRecord, at time.Time) domain.AuditLogEntry {
	before := change.Existing
	e := s.entry(domain.AuditUpdate, domain.AuditStatusSuccess, at)
	e.Barcode = before.Barcode
	e.ItemCode = after.ItemCode
	e.Before = &before
	e.After = &after
	e.Metadata["line"] = change.Line
	e.Metadata["changed_fields"] = change.ChangedFields()
	return e
}

func (s auditScope) failure(stage string, cause error, at time.Time) domain.AuditLogEntry {
	e := s.entry(domain.AuditError, domain.AuditStatusError, at)
	e.Metadata["stage"] = stage
	e.Metadata["error"] = cause.Error()
	return e
}

func (s auditScope) summary(batch *domain.ImportBatch, newApplied, changedApplied int, at time.Time) domain.AuditLogEntry {
	e := s.entry(domain.AuditImport, domain.AuditStatusSuccess, at)
	e.Metadata["archive_path"] = batch.ArchivePath
	e.Metadata["total_rows"] = batch.TotalRows
	e.Metadata["new_applied"] = newApplied
	e.Metadata["changed_applied"] = changedApplied
	e.Metadata["identity_key"] = domain.IdentityKey
	return e
}
