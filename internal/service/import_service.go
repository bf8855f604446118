package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"florify-catalog/internal/csvfeed"
	"florify-catalog/internal/domain"
	"florify-catalog/internal/logger"
	"florify-catalog/internal/metrics"
	"florify-catalog/internal/reconcile"
	"florify-catalog/internal/repository"
	"florify-catalog/internal/session"
	"florify-catalog/internal/storage"
	"florify-catalog/internal/validator"
)

const (
	// DefaultSessionTTL is how long an analysis waits for confirmation.
	DefaultSessionTTL = time.Hour

	// DefaultBatchListLimit caps ListBatches when no limit is given.
	DefaultBatchListLimit = 50
	// MaxBatchListLimit is the largest page ListBatches returns.
	MaxBatchListLimit = 500
)

// Apply stages reported in ApplyError and audit error entries.
const (
	StageUpsertNew     = "upsert new records"
	StageUpdateChanged = "update changed records"
	StageFinalize      = "finalize batch"
)

var (
	// ErrAnalysisNotFound is returned for unknown or expired analyses.
	ErrAnalysisNotFound = errors.New("analysis not found or expired")
	// ErrInvalidRequest wraps validation failures of a confirm request.
	ErrInvalidRequest = errors.New("invalid request")
)

// ApplyInput is the confirmed subset of an analysis. Any subset of New and
// Changed is accepted, including none.
type ApplyInput struct {
	Filename   string
	Content    []byte
	OperatorID *string
	TotalRows  int
	New        []domain.NewRecord
	Changed    []domain.ChangedRecord
	Errors     []domain.RowError
}

// ApplyResult reports the catalog writes and, separately, the audit outcome.
type ApplyResult struct {
	Batch          *domain.ImportBatch `json:"batch"`
	NewApplied     int                 `json:"new_applied"`
	ChangedApplied int                 `json:"changed_applied"`
	Audit          AuditReport         `json:"audit"`
}

// ApplyError is returned when a batch was created but could not be applied.
// The batch is left in failed status. Audit reports the audit writes of the
// run separately from the failure itself.
type ApplyError struct {
	BatchID        string
	Stage          string
	NewApplied     int
	ChangedApplied int
	Audit          AuditReport
	Err            error
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("import batch %s failed to %s: %v", e.BatchID, e.Stage, e.Err)
}

func (e *ApplyError) Unwrap() error {
	return e.Err
}

// ConfirmRequest selects rows of a pending analysis by barcode.
type ConfirmRequest struct {
	AnalysisID      string
	NewBarcodes     []string
	ChangedBarcodes []string
	OperatorID      *string
}

// ImportService runs the analyze, review and apply flow of catalog files.
type ImportService struct {
	catalogRepo repository.CatalogRepository
	batchRepo   repository.BatchRepository
	sessions    session.Store
	archiver    storage.Archiver
	audit       *AuditLogger
	engine      *reconcile.Engine
	validator   *validator.Validator
	sessionTTL  time.Duration

	now func() time.Time
}

// NewImportService creates a new ImportService.
func NewImportService(
	catalogRepo repository.CatalogRepository,
	batchRepo repository.BatchRepository,
	sessions session.Store,
	archiver storage.Archiver,
	audit *AuditLogger,
	engine *reconcile.Engine,
	v *validator.Validator,
	sessionTTL time.Duration,
) *ImportService {
	if sessionTTL <= 0 {
		sessionTTL = DefaultSessionTTL
	}
	return &ImportService{
		catalogRepo: catalogRepo,
		batchRepo:   batchRepo,
		sessions:    sessions,
		archiver:    archiver,
		audit:       audit,
		engine:      engine,
		validator:   v,
		sessionTTL:  sessionTTL,
		now:         time.Now,
	}
}

// Analyze parses the upload, reconciles it against one snapshot of the
// catalog and stores the result until it is confirmed or expires.
// Fatal parse errors are returned wrapped around the csvfeed sentinels.
func (s *ImportService) Analyze(ctx context.Context, filename string, reader io.Reader) (*domain.AnalysisSession, error) {
	timer := metrics.NewTimer()
	log := logger.FromContext(ctx).With(slog.String("filename", filename))

	content, err := io.ReadAll(reader)
	if err != nil {
		metrics.ObserveAnalysis("error", timer.Seconds(), nil)
		return nil, fmt.Errorf("read upload: %w", err)
	}

	rows, err := csvfeed.ReadAll(bytes.NewReader(content))
	if err != nil {
		metrics.ObserveAnalysis("rejected", timer.Seconds(), nil)
		log.Warn("Upload rejected", slog.String("error", err.Error()))
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	records, err := s.catalogRepo.ListAll(ctx)
	if err != nil {
		metrics.ObserveAnalysis("error", timer.Seconds(), nil)
		return nil, fmt.Errorf("load catalog snapshot: %w", err)
	}

	snap := reconcile.NewSnapshot(records)
	analysis := s.engine.Reconcile(rows, snap)

	now := s.now()
	sess := &domain.AnalysisSession{
		ID:        uuid.New().String(),
		Filename:  filename,
		Content:   content,
		Analysis:  analysis,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		metrics.ObserveAnalysis("error", timer.Seconds(), nil)
		return nil, fmt.Errorf("save analysis: %w", err)
	}

	counts := analysis.Counts()
	metrics.ObserveAnalysis("success", timer.Seconds(), map[string]int{
		string(domain.OutcomeNew):       counts.New,
		string(domain.OutcomeChanged):   counts.Changed,
		string(domain.OutcomeUnchanged): counts.Unchanged,
		string(domain.OutcomeInvalid):   counts.Errors,
	})
	log.Info("Upload analyzed",
		slog.String("analysis_id", sess.ID),
		slog.Int("catalog_size", snap.Len()),
		slog.Int("total", counts.Total),
		slog.Int("new", counts.New),
		slog.Int("changed", counts.Changed),
		slog.Int("unchanged", counts.Unchanged),
		slog.Int("errors", counts.Errors),
	)

	return sess, nil
}

// GetAnalysis retrieves a pending analysis.
func (s *ImportService) GetAnalysis(ctx context.Context, id string) (*domain.AnalysisSession, error) {
	sess, err := s.sessions.Get(ctx, id)
	if errors.Is(err, session.ErrNotFound) {
		return nil, ErrAnalysisNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get analysis: %w", err)
	}
	return sess, nil
}

// Confirm applies the selected rows of a pending analysis. Barcodes that are
// not part of the analysis are ignored. The analysis is discarded once the
// batch completes.
func (s *ImportService) Confirm(ctx context.Context, req ConfirmRequest) (*ApplyResult, error) {
	operator := ""
	if req.OperatorID != nil {
		operator = *req.OperatorID
	}
	if err := s.validator.ValidateSelection(req.AnalysisID, operator); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	sess, err := s.GetAnalysis(ctx, req.AnalysisID)
	if err != nil {
		return nil, err
	}

	ctx = logger.WithAnalysisID(ctx, sess.ID)

	selected, unknown := selectRows(sess.Analysis, req.NewBarcodes, req.ChangedBarcodes)
	if len(unknown) > 0 {
		logger.WarnContext(ctx, "Ignoring barcodes not selectable in analysis",
			slog.Any("barcodes", unknown),
		)
	}

	selected.Filename = sess.Filename
	selected.Content = sess.Content
	selected.OperatorID = req.OperatorID

	result, err := s.Apply(ctx, selected)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Delete(context.WithoutCancel(ctx), sess.ID); err != nil {
		logger.WarnContext(ctx, "Failed to discard confirmed analysis", slog.String("error", err.Error()))
	}
	return result, nil
}

// selectRows picks the New and Changed outcomes whose barcodes were selected.
// It returns the barcodes that matched neither bucket.
func selectRows(a *domain.Analysis, newBarcodes, changedBarcodes []string) (ApplyInput, []string) {
	in := ApplyInput{
		TotalRows: a.TotalRows,
		Errors:    a.Errors,
	}

	wantNew := barcodeSet(newBarcodes)
	for _, n := range a.New {
		key := strings.TrimSpace(n.Record.Barcode)
		if _, ok := wantNew[key]; ok {
			in.New = append(in.New, n)
			wantNew[key] = true
		}
	}

	wantChanged := barcodeSet(changedBarcodes)
	for _, c := range a.Changed {
		key := strings.TrimSpace(c.Existing.Barcode)
		if _, ok := wantChanged[key]; ok {
			in.Changed = append(in.Changed, c)
			wantChanged[key] = true
		}
	}

	var unknown []string
	for _, set := range []map[string]bool{wantNew, wantChanged} {
		for code, matched := range set {
			if !matched {
				unknown = append(unknown, code)
			}
		}
	}
	return in, unknown
}

func barcodeSet(barcodes []string) map[string]bool {
	set := make(map[string]bool, len(barcodes))
	for _, b := range barcodes {
		if b = strings.TrimSpace(b); b != "" {
			set[b] = false
		}
	}
	return set
}

// Apply archives the upload, records a pending batch and writes the selected
// rows to the catalog. It runs to completion or to its first failure even if
// ctx is canceled.
//
// Once the batch exists every failure marks it failed and is returned as an
// *ApplyError. Audit problems only show up in ApplyResult.Audit.
func (s *ImportService) Apply(ctx context.Context, in ApplyInput) (*ApplyResult, error) {
	ctx = context.WithoutCancel(ctx)
	timer := metrics.NewTimer()
	metrics.StartBatch()

	newRows := dedupNew(ctx, in.New)

	owner := ""
	if in.OperatorID != nil {
		owner = *in.OperatorID
	}
	archivePath, err := s.archiver.Archive(ctx, owner, in.Filename, in.Content)
	if err != nil {
		metrics.EndBatch(string(domain.BatchStatusFailed), timer.Seconds(), 0, 0)
		return nil, fmt.Errorf("archive %s: %w", in.Filename, err)
	}

	now := s.now()
	batch := &domain.ImportBatch{
		ID:           uuid.New().String(),
		Filename:     in.Filename,
		ArchivePath:  archivePath,
		TotalRows:    in.TotalRows,
		NewCount:     len(newRows),
		ChangedCount: len(in.Changed),
		Status:       domain.BatchStatusPending,
		OperatorID:   in.OperatorID,
		Preview:      buildPreview(len(newRows), in.Changed, in.Errors),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.batchRepo.CreateBatch(ctx, batch); err != nil {
		metrics.EndBatch(string(domain.BatchStatusFailed), timer.Seconds(), 0, 0)
		return nil, fmt.Errorf("create import batch: %w", err)
	}

	ctx = logger.WithBatchID(ctx, batch.ID)
	logger.InfoContext(ctx, "Applying import batch",
		slog.String("archive_path", archivePath),
		slog.Int("new", len(newRows)),
		slog.Int("changed", len(in.Changed)),
	)

	scope := auditScope{batchID: batch.ID, operatorID: in.OperatorID, filename: in.Filename}
	result := &ApplyResult{Batch: batch}
	var entries []domain.AuditLogEntry

	if len(newRows) > 0 {
		records := make([]domain.CatalogRecord, len(newRows))
		for i, n := range newRows {
			records[i] = n.Record
		}
		at := s.now()
		if _, err := s.catalogRepo.BulkUpsert(ctx, records, batch.ID, at); err != nil {
			return s.fail(ctx, batch, scope, result, entries, StageUpsertNew, err, timer)
		}
		result.NewApplied = len(newRows)
		for _, n := range newRows {
			entries = append(entries, scope.insert(n.Line, tagged(n.Record, batch.ID, at), at))
		}
	}

	for _, c := range in.Changed {
		at := s.now()
		if err := s.catalogRepo.UpdateByBarcode(ctx, c.Existing.Barcode, c.Incoming, c.Columns, batch.ID, at); err != nil {
			return s.fail(ctx, batch, scope, result, entries, StageUpdateChanged,
				fmt.Errorf("codbarra %s: %w", c.Existing.Barcode, err), timer)
		}
		result.ChangedApplied++

		after := tagged(c.Existing.Overlay(c.Incoming, c.Columns), batch.ID, at)
		entries = append(entries, scope.update(c, after, at))
	}

	completedAt := s.now()
	entries = append(entries, scope.summary(batch, result.NewApplied, result.ChangedApplied, completedAt))
	result.Audit = s.audit.Write(ctx, entries)

	completed := *batch
	if err := completed.Complete(domain.FinalSummary{
		NewApplied:     result.NewApplied,
		ChangedApplied: result.ChangedApplied,
		CompletedAt:    completedAt,
		IdentityKey:    domain.IdentityKey,
	}); err != nil {
		return s.fail(ctx, batch, scope, result, nil, StageFinalize, err, timer)
	}
	if err := s.batchRepo.UpdateBatch(ctx, &completed); err != nil {
		return s.fail(ctx, batch, scope, result, nil, StageFinalize, err, timer)
	}
	result.Batch = &completed

	metrics.EndBatch(string(domain.BatchStatusCompleted), timer.Seconds(), result.NewApplied, result.ChangedApplied)
	logger.InfoContext(ctx, "Import batch completed",
		slog.Int("new_applied", result.NewApplied),
		slog.Int("changed_applied", result.ChangedApplied),
		slog.Int("audit_failed", result.Audit.Failed),
		slog.Duration("elapsed", time.Since(now).Round(time.Millisecond)),
	)

	return result, nil
}

// fail marks the batch failed, writes the audit entries collected so far plus
// an error entry, and returns the ApplyError for the caller.
func (s *ImportService) fail(
	ctx context.Context,
	batch *domain.ImportBatch,
	scope auditScope,
	result *ApplyResult,
	entries []domain.AuditLogEntry,
	stage string,
	cause error,
	timer *metrics.Timer,
) (*ApplyResult, error) {
	at := s.now()
	logger.ErrorContext(ctx, "Import batch failed",
		slog.String("stage", stage),
		slog.String("error", cause.Error()),
		slog.Int("new_applied", result.NewApplied),
		slog.Int("changed_applied", result.ChangedApplied),
	)

	if err := batch.Fail(cause, at); err == nil {
		if err := s.batchRepo.UpdateBatch(ctx, batch); err != nil {
			logger.ErrorContext(ctx, "Failed to mark import batch as failed", slog.String("error", err.Error()))
		}
	}

	entries = append(entries, scope.failure(stage, cause, at))
	report := result.Audit.merge(s.audit.Write(ctx, entries))

	metrics.EndBatch(string(domain.BatchStatusFailed), timer.Seconds(), result.NewApplied, result.ChangedApplied)

	return nil, &ApplyError{
		BatchID:        batch.ID,
		Stage:          stage,
		NewApplied:     result.NewApplied,
		ChangedApplied: result.ChangedApplied,
		Audit:          report,
		Err:            cause,
	}
}

// dedupNew keeps one row per barcode, the last one in file order, at the
// position of the first occurrence.
func dedupNew(ctx context.Context, rows []domain.NewRecord) []domain.NewRecord {
	out := make([]domain.NewRecord, 0, len(rows))
	index := make(map[string]int, len(rows))
	for _, r := range rows {
		key := strings.TrimSpace(r.Record.Barcode)
		if i, ok := index[key]; ok {
			logger.WarnContext(ctx, "Duplicate barcode in selected new rows, keeping last occurrence",
				slog.String("codbarra", key),
				slog.Int("dropped_line", out[i].Line),
				slog.Int("kept_line", r.Line),
			)
			out[i] = r
			continue
		}
		index[key] = len(out)
		out = append(out, r)
	}
	return out
}

func buildPreview(newCount int, changed []domain.ChangedRecord, rowErrors []domain.RowError) domain.DiffPreview {
	preview := domain.DiffPreview{
		NewCount: newCount,
		Changed:  make([]domain.ChangePreview, 0, len(changed)),
		Errors:   rowErrors,
	}
	if preview.Errors == nil {
		preview.Errors = []domain.RowError{}
	}
	for _, c := range changed {
		preview.Changed = append(preview.Changed, domain.ChangePreview{
			Barcode:  c.Existing.Barcode,
			ItemCode: c.Existing.ItemCode,
			Diffs:    c.Diffs,
		})
	}
	return preview
}

func tagged(rec domain.CatalogRecord, batchID string, at time.Time) domain.CatalogRecord {
	rec.ImportBatchID = &batchID
	rec.UpdatedAt = &at
	return rec
}

// GetBatch retrieves an import batch, or nil if it does not exist.
func (s *ImportService) GetBatch(ctx context.Context, id string) (*domain.ImportBatch, error) {
	return s.batchRepo.GetBatch(ctx, id)
}

// ListBatches returns the newest batches first.
func (s *ImportService) ListBatches(ctx context.Context, limit int) ([]domain.ImportBatch, error) {
	if limit <= 0 {
		limit = DefaultBatchListLimit
	}
	if limit > MaxBatchListLimit {
		limit = MaxBatchListLimit
	}
	return s.batchRepo.ListBatches(ctx, limit)
}
