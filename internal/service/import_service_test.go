package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"florify-catalog/internal/csvfeed"
	"florify-catalog/internal/domain"
	"florify-catalog/internal/mocks"
	"florify-catalog/internal/reconcile"
	"florify-catalog/internal/service"
	"florify-catalog/internal/session"
	"florify-catalog/internal/validator"
)

type importDeps struct {
	catalog  *mocks.MockCatalogRepository
	batches  *mocks.MockBatchRepository
	audit    *mocks.MockAuditRepository
	sessions *mocks.MockStore
	archiver *mocks.MockArchiver
	svc      *service.ImportService
}

func newImportDeps(t *testing.T) *importDeps {
	d := &importDeps{
		catalog:  mocks.NewMockCatalogRepository(t),
		batches:  mocks.NewMockBatchRepository(t),
		audit:    mocks.NewMockAuditRepository(t),
		sessions: mocks.NewMockStore(t),
		archiver: mocks.NewMockArchiver(t),
	}
	d.svc = service.NewImportService(
		d.catalog,
		d.batches,
		d.sessions,
		d.archiver,
		service.NewAuditLogger(d.audit, service.DefaultAuditChunkSize),
		reconcile.NewEngine(),
		validator.NewValidator(),
		time.Hour,
	)
	return d
}

func record(barcode, description string) domain.CatalogRecord {
	return domain.CatalogRecord{
		Barcode:     barcode,
		ItemCode:    "IT-" + barcode,
		Description: description,
		UnitPrice:   decimal.RequireFromString("10.5"),
	}
}

func changed(line int, existing domain.CatalogRecord, description string) domain.ChangedRecord {
	incoming := existing
	incoming.ID = 0
	incoming.Description = description
	return domain.ChangedRecord{
		Line:     line,
		Existing: existing,
		Incoming: incoming,
		Diffs: map[string]domain.FieldDiff{
			domain.ColDescription: {Before: existing.Description, After: description},
		},
	}
}

func batchWithStatus(status domain.BatchStatus) interface{} {
	return mock.MatchedBy(func(b *domain.ImportBatch) bool { return b.Status == status })
}

func TestImportService_Analyze(t *testing.T) {
	ctx := context.Background()
	csv := "codbarra;descricao;preco_unitario\n" +
		"B1;Rosa vermelha;10,50\n" +
		"B2;Lirio branco;5\n" +
		";Sem codigo;1\n" +
		"B3;Orquidea;25\n"

	t.Run("classifies rows against one catalog snapshot and stores the session", func(t *testing.T) {
		d := newImportDeps(t)
		existing := record("B1", "Rosa")
		existing.ID = 1
		existing.ItemCode = ""
		unchanged := record("B3", "Orquidea")
		unchanged.ItemCode = ""
		unchanged.UnitPrice = decimal.NewFromInt(25)

		d.catalog.EXPECT().ListAll(mock.Anything).Return([]domain.CatalogRecord{existing, unchanged}, nil).Once()

		var saved *domain.AnalysisSession
		d.sessions.EXPECT().Save(mock.Anything, mock.AnythingOfType("*domain.AnalysisSession")).
			Run(func(_ context.Context, s *domain.AnalysisSession) { saved = s }).
			Return(nil)

		sess, err := d.svc.Analyze(ctx, "catalogo.csv", strings.NewReader(csv))
		require.NoError(t, err)

		assert.Same(t, saved, sess)
		_, err = uuid.Parse(sess.ID)
		assert.NoError(t, err)
		assert.Equal(t, "catalogo.csv", sess.Filename)
		assert.Equal(t, []byte(csv), sess.Content)
		assert.Equal(t, time.Hour, sess.ExpiresAt.Sub(sess.CreatedAt))

		counts := sess.Analysis.Counts()
		assert.Equal(t, domain.AnalysisCounts{Total: 4, New: 1, Changed: 1, Unchanged: 1, Errors: 1}, counts)
		assert.Equal(t, "B2", sess.Analysis.New[0].Record.Barcode)
		assert.Equal(t, 3, sess.Analysis.New[0].Line)
		assert.Equal(t, []string{domain.ColDescription}, sess.Analysis.Changed[0].ChangedFields())
		assert.Equal(t, domain.RowError{Line: 4, Reason: validator.MissingRequiredReason}, sess.Analysis.Errors[0])
	})

	t.Run("rejects an empty file before reading the catalog", func(t *testing.T) {
		d := newImportDeps(t)

		sess, err := d.svc.Analyze(ctx, "vazio.csv", strings.NewReader(""))
		assert.Nil(t, sess)
		assert.ErrorIs(t, err, csvfeed.ErrEmptyFile)
	})

	t.Run("rejects a header without data rows", func(t *testing.T) {
		d := newImportDeps(t)

		_, err := d.svc.Analyze(ctx, "header.csv", strings.NewReader("codbarra;descricao\n"))
		assert.ErrorIs(t, err, csvfeed.ErrNoDataRows)
	})

	t.Run("returns catalog load errors", func(t *testing.T) {
		d := newImportDeps(t)
		d.catalog.EXPECT().ListAll(mock.Anything).Return(nil, errors.New("connection refused"))

		_, err := d.svc.Analyze(ctx, "catalogo.csv", strings.NewReader(csv))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "load catalog snapshot")
	})

	t.Run("returns session store errors", func(t *testing.T) {
		d := newImportDeps(t)
		d.catalog.EXPECT().ListAll(mock.Anything).Return(nil, nil)
		d.sessions.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("redis down"))

		_, err := d.svc.Analyze(ctx, "catalogo.csv", strings.NewReader(csv))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "save analysis")
	})
}

func TestImportService_GetAnalysis(t *testing.T) {
	ctx := context.Background()

	t.Run("maps a missing session", func(t *testing.T) {
		d := newImportDeps(t)
		d.sessions.EXPECT().Get(mock.Anything, "gone").Return(nil, session.ErrNotFound)

		_, err := d.svc.GetAnalysis(ctx, "gone")
		assert.ErrorIs(t, err, service.ErrAnalysisNotFound)
	})

	t.Run("returns the stored session", func(t *testing.T) {
		d := newImportDeps(t)
		stored := &domain.AnalysisSession{ID: "a1", Analysis: domain.NewAnalysis()}
		d.sessions.EXPECT().Get(mock.Anything, "a1").Return(stored, nil)

		sess, err := d.svc.GetAnalysis(ctx, "a1")
		require.NoError(t, err)
		assert.Same(t, stored, sess)
	})
}

func TestImportService_Confirm(t *testing.T) {
	ctx := context.Background()
	analysisID := uuid.New().String()
	operatorID := uuid.New().String()

	existing := record("B1", "Rosa")
	existing.ID = 7
	analysis := domain.NewAnalysis()
	analysis.TotalRows = 4
	analysis.Add(domain.NewRecord{Line: 2, Record: record("B2", "Lirio")})
	analysis.Add(domain.NewRecord{Line: 3, Record: record("B4", "Cravo")})
	analysis.Add(changed(4, existing, "Rosa vermelha"))
	analysis.Add(domain.RowError{Line: 5, Reason: validator.MissingRequiredReason})

	stored := &domain.AnalysisSession{
		ID:       analysisID,
		Filename: "catalogo.csv",
		Content:  []byte("codbarra;descricao\n"),
		Analysis: analysis,
	}

	t.Run("applies only the selected rows and discards the session", func(t *testing.T) {
		d := newImportDeps(t)

		d.sessions.EXPECT().Get(mock.Anything, analysisID).Return(stored, nil)
		d.archiver.EXPECT().Archive(mock.Anything, operatorID, "catalogo.csv", stored.Content).
			Return("imports/catalog/"+operatorID+"/1_catalogo.csv", nil)

		var created *domain.ImportBatch
		d.batches.EXPECT().CreateBatch(mock.Anything, batchWithStatus(domain.BatchStatusPending)).
			Run(func(_ context.Context, b *domain.ImportBatch) {
				snapshot := *b
				created = &snapshot
			}).
			Return(nil)
		d.catalog.EXPECT().BulkUpsert(mock.Anything, mock.MatchedBy(func(recs []domain.CatalogRecord) bool {
			return len(recs) == 1 && recs[0].Barcode == "B2"
		}), mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(1, nil)
		d.catalog.EXPECT().UpdateByBarcode(mock.Anything, "B1", mock.Anything, mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
			Return(nil)
		d.audit.EXPECT().InsertEntries(mock.Anything, mock.MatchedBy(func(entries []domain.AuditLogEntry) bool {
			return len(entries) == 3 &&
				entries[0].Operation == domain.AuditInsert &&
				entries[1].Operation == domain.AuditUpdate &&
				entries[2].Operation == domain.AuditImport
		})).Return(nil)
		d.batches.EXPECT().UpdateBatch(mock.Anything, batchWithStatus(domain.BatchStatusCompleted)).Return(nil)
		d.sessions.EXPECT().Delete(mock.Anything, analysisID).Return(nil)

		result, err := d.svc.Confirm(ctx, service.ConfirmRequest{
			AnalysisID:      analysisID,
			NewBarcodes:     []string{"B2", "UNKNOWN"},
			ChangedBarcodes: []string{" B1 "},
			OperatorID:      &operatorID,
		})
		require.NoError(t, err)

		require.NotNil(t, created)
		assert.Equal(t, 4, created.TotalRows)
		assert.Equal(t, 1, created.NewCount)
		assert.Equal(t, 1, created.ChangedCount)
		assert.Equal(t, &operatorID, created.OperatorID)
		assert.Equal(t, 1, created.Preview.NewCount)
		require.Len(t, created.Preview.Changed, 1)
		assert.Equal(t, "B1", created.Preview.Changed[0].Barcode)
		assert.Equal(t, analysis.Errors, created.Preview.Errors)

		assert.Equal(t, 1, result.NewApplied)
		assert.Equal(t, 1, result.ChangedApplied)
		assert.Equal(t, service.AuditReport{Attempted: 3, Written: 3}, result.Audit)
		assert.Equal(t, domain.BatchStatusCompleted, result.Batch.Status)
		require.NotNil(t, result.Batch.Preview.Summary)
		assert.Equal(t, domain.IdentityKey, result.Batch.Preview.Summary.IdentityKey)
	})

	t.Run("rejects a malformed analysis id", func(t *testing.T) {
		d := newImportDeps(t)

		_, err := d.svc.Confirm(ctx, service.ConfirmRequest{AnalysisID: "nope"})
		assert.ErrorIs(t, err, service.ErrInvalidRequest)
	})

	t.Run("rejects a malformed operator id", func(t *testing.T) {
		d := newImportDeps(t)
		bad := "maria"

		_, err := d.svc.Confirm(ctx, service.ConfirmRequest{AnalysisID: analysisID, OperatorID: &bad})
		assert.ErrorIs(t, err, service.ErrInvalidRequest)
	})

	t.Run("returns not found for an expired analysis", func(t *testing.T) {
		d := newImportDeps(t)
		d.sessions.EXPECT().Get(mock.Anything, analysisID).Return(nil, session.ErrNotFound)

		_, err := d.svc.Confirm(ctx, service.ConfirmRequest{AnalysisID: analysisID})
		assert.ErrorIs(t, err, service.ErrAnalysisNotFound)
	})

	t.Run("keeps the session when apply fails", func(t *testing.T) {
		d := newImportDeps(t)
		d.sessions.EXPECT().Get(mock.Anything, analysisID).Return(stored, nil)
		d.archiver.EXPECT().Archive(mock.Anything, "", "catalogo.csv", mock.Anything).Return("", errors.New("bucket unavailable"))

		_, err := d.svc.Confirm(ctx, service.ConfirmRequest{AnalysisID: analysisID, NewBarcodes: []string{"B2"}})
		require.Error(t, err)
		d.sessions.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestImportService_Apply(t *testing.T) {
	ctx := context.Background()

	t.Run("accepts an empty selection", func(t *testing.T) {
		d := newImportDeps(t)
		d.archiver.EXPECT().Archive(mock.Anything, "", "catalogo.csv", mock.Anything).Return("imports/catalog/anonymous/1_catalogo.csv", nil)
		d.batches.EXPECT().CreateBatch(mock.Anything, batchWithStatus(domain.BatchStatusPending)).Return(nil)
		d.audit.EXPECT().InsertEntries(mock.Anything, mock.MatchedBy(func(entries []domain.AuditLogEntry) bool {
			return len(entries) == 1 && entries[0].Operation == domain.AuditImport
		})).Return(nil)
		d.batches.EXPECT().UpdateBatch(mock.Anything, batchWithStatus(domain.BatchStatusCompleted)).Return(nil)

		result, err := d.svc.Apply(ctx, service.ApplyInput{Filename: "catalogo.csv", TotalRows: 3})
		require.NoError(t, err)
		assert.Zero(t, result.NewApplied)
		assert.Zero(t, result.ChangedApplied)
		assert.Equal(t, "imports/catalog/anonymous/1_catalogo.csv", result.Batch.ArchivePath)
		assert.Equal(t, []domain.RowError{}, result.Batch.Preview.Errors)
	})

	t.Run("fails without a batch when archival fails", func(t *testing.T) {
		d := newImportDeps(t)
		d.archiver.EXPECT().Archive(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("disk full"))

		result, err := d.svc.Apply(ctx, service.ApplyInput{Filename: "catalogo.csv"})
		assert.Nil(t, result)
		require.Error(t, err)
		var applyErr *service.ApplyError
		assert.False(t, errors.As(err, &applyErr))
	})

	t.Run("new row failure marks the batch failed and skips changed rows", func(t *testing.T) {
		d := newImportDeps(t)
		cause := errors.New("unique violation")
		existing := record("B1", "Rosa")

		d.archiver.EXPECT().Archive(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("path", nil)

		var batchID string
		d.batches.EXPECT().CreateBatch(mock.Anything, mock.Anything).
			Run(func(_ context.Context, b *domain.ImportBatch) { batchID = b.ID }).
			Return(nil)
		d.catalog.EXPECT().BulkUpsert(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(0, cause)
		d.batches.EXPECT().UpdateBatch(mock.Anything, mock.MatchedBy(func(b *domain.ImportBatch) bool {
			return b.Status == domain.BatchStatusFailed &&
				b.ErrorMessage != nil && *b.ErrorMessage == cause.Error() &&
				b.Preview.Failure != nil && b.CompletedAt != nil
		})).Return(nil)
		d.audit.EXPECT().InsertEntries(mock.Anything, mock.MatchedBy(func(entries []domain.AuditLogEntry) bool {
			return len(entries) == 1 &&
				entries[0].Operation == domain.AuditError &&
				entries[0].Status == domain.AuditStatusError &&
				entries[0].Metadata["stage"] == service.StageUpsertNew
		})).Return(nil)

		result, err := d.svc.Apply(ctx, service.ApplyInput{
			Filename: "catalogo.csv",
			New:      []domain.NewRecord{{Line: 2, Record: record("B2", "Lirio")}},
			Changed:  []domain.ChangedRecord{changed(3, existing, "Rosa vermelha")},
		})
		assert.Nil(t, result)
		assert.ErrorIs(t, err, cause)

		var applyErr *service.ApplyError
		require.True(t, errors.As(err, &applyErr))
		assert.Equal(t, batchID, applyErr.BatchID)
		assert.Equal(t, service.StageUpsertNew, applyErr.Stage)
		d.catalog.AssertNotCalled(t, "UpdateByBarcode", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("first changed row failure aborts the remaining rows", func(t *testing.T) {
		d := newImportDeps(t)
		cause := errors.New("deadlock detected")

		d.archiver.EXPECT().Archive(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("path", nil)
		d.batches.EXPECT().CreateBatch(mock.Anything, mock.Anything).Return(nil)
		d.catalog.EXPECT().UpdateByBarcode(mock.Anything, "B1", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
		d.catalog.EXPECT().UpdateByBarcode(mock.Anything, "B2", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(cause).Once()
		d.batches.EXPECT().UpdateBatch(mock.Anything, batchWithStatus(domain.BatchStatusFailed)).Return(nil)
		d.audit.EXPECT().InsertEntries(mock.Anything, mock.MatchedBy(func(entries []domain.AuditLogEntry) bool {
			return len(entries) == 2 &&
				entries[0].Operation == domain.AuditUpdate && entries[0].Barcode == "B1" &&
				entries[1].Operation == domain.AuditError
		})).Return(nil)

		_, err := d.svc.Apply(ctx, service.ApplyInput{
			Filename: "catalogo.csv",
			Changed: []domain.ChangedRecord{
				changed(2, record("B1", "Rosa"), "Rosa vermelha"),
				changed(3, record("B2", "Lirio"), "Lirio branco"),
				changed(4, record("B3", "Cravo"), "Cravo rosa"),
			},
		})

		var applyErr *service.ApplyError
		require.True(t, errors.As(err, &applyErr))
		assert.Equal(t, service.StageUpdateChanged, applyErr.Stage)
		assert.Equal(t, 1, applyErr.ChangedApplied)
		assert.Equal(t, service.AuditReport{Attempted: 2, Written: 2}, applyErr.Audit)
		assert.ErrorIs(t, err, cause)
		d.catalog.AssertNotCalled(t, "UpdateByBarcode", mock.Anything, "B3", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("changed rows are updated by the stored barcode", func(t *testing.T) {
		d := newImportDeps(t)
		existing := record("B1", "Rosa")
		existing.ID = 42
		c := changed(2, existing, "Rosa vermelha")
		c.Incoming.Barcode = "B1-TYPO"

		d.archiver.EXPECT().Archive(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("path", nil)
		d.batches.EXPECT().CreateBatch(mock.Anything, mock.Anything).Return(nil)
		d.catalog.EXPECT().UpdateByBarcode(mock.Anything, "B1", c.Incoming, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		d.audit.EXPECT().InsertEntries(mock.Anything, mock.MatchedBy(func(entries []domain.AuditLogEntry) bool {
			update := entries[0]
			return update.Barcode == "B1" &&
				update.Before.Description == "Rosa" &&
				update.After.Barcode == "B1" &&
				update.After.ID == 42 &&
				update.After.Description == "Rosa vermelha" &&
				update.After.ImportBatchID != nil
		})).Return(nil)
		d.batches.EXPECT().UpdateBatch(mock.Anything, batchWithStatus(domain.BatchStatusCompleted)).Return(nil)

		result, err := d.svc.Apply(ctx, service.ApplyInput{Filename: "catalogo.csv", Changed: []domain.ChangedRecord{c}})
		require.NoError(t, err)
		assert.Equal(t, 1, result.ChangedApplied)
	})

	t.Run("changed rows write only the columns the file supplied", func(t *testing.T) {
		d := newImportDeps(t)
		existing := record("B1", "Rosa")
		existing.ID = 7
		existing.Photo = "rosa.jpg"
		existing.Color = "Vermelha"

		rows, err := csvfeed.ReadAll(strings.NewReader("codbarra;descricao;preco_unitario\nB1;Rosa Premium;10,50\n"))
		require.NoError(t, err)
		analysis := reconcile.NewEngine().Reconcile(rows, reconcile.NewSnapshot([]domain.CatalogRecord{existing}))
		require.Len(t, analysis.Changed, 1)

		supplied := []string{domain.ColBarcode, domain.ColDescription, domain.ColUnitPrice}
		d.archiver.EXPECT().Archive(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("path", nil)
		d.batches.EXPECT().CreateBatch(mock.Anything, mock.Anything).Return(nil)
		d.catalog.EXPECT().UpdateByBarcode(mock.Anything, "B1", mock.Anything, supplied, mock.Anything, mock.Anything).Return(nil)
		d.audit.EXPECT().InsertEntries(mock.Anything, mock.MatchedBy(func(entries []domain.AuditLogEntry) bool {
			update := entries[0]
			return update.After.Description == "Rosa Premium" &&
				update.After.Photo == "rosa.jpg" &&
				update.After.Color == "Vermelha" &&
				update.After.ItemCode == "IT-B1"
		})).Return(nil)
		d.batches.EXPECT().UpdateBatch(mock.Anything, batchWithStatus(domain.BatchStatusCompleted)).Return(nil)

		result, err := d.svc.Apply(ctx, service.ApplyInput{Filename: "catalogo.csv", Changed: analysis.Changed})
		require.NoError(t, err)
		assert.Equal(t, 1, result.ChangedApplied)
	})

	t.Run("duplicate new barcodes collapse to the last occurrence", func(t *testing.T) {
		d := newImportDeps(t)

		d.archiver.EXPECT().Archive(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("path", nil)
		d.batches.EXPECT().CreateBatch(mock.Anything, mock.MatchedBy(func(b *domain.ImportBatch) bool {
			return b.NewCount == 2
		})).Return(nil)
		d.catalog.EXPECT().BulkUpsert(mock.Anything, mock.MatchedBy(func(recs []domain.CatalogRecord) bool {
			return len(recs) == 2 &&
				recs[0].Barcode == "B2" && recs[0].Description == "Lirio amarelo" &&
				recs[1].Barcode == "B5"
		}), mock.Anything, mock.Anything).Return(2, nil)
		d.audit.EXPECT().InsertEntries(mock.Anything, mock.Anything).Return(nil)
		d.batches.EXPECT().UpdateBatch(mock.Anything, batchWithStatus(domain.BatchStatusCompleted)).Return(nil)

		result, err := d.svc.Apply(ctx, service.ApplyInput{
			Filename: "catalogo.csv",
			New: []domain.NewRecord{
				{Line: 2, Record: record("B2", "Lirio branco")},
				{Line: 3, Record: record("B5", "Tulipa")},
				{Line: 4, Record: record("B2", "Lirio amarelo")},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, result.NewApplied)
	})

	t.Run("audit failures are reported without failing the import", func(t *testing.T) {
		d := newImportDeps(t)

		d.archiver.EXPECT().Archive(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("path", nil)
		d.batches.EXPECT().CreateBatch(mock.Anything, mock.Anything).Return(nil)
		d.catalog.EXPECT().BulkUpsert(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(1, nil)
		d.audit.EXPECT().InsertEntries(mock.Anything, mock.Anything).Return(errors.New("audit table locked"))
		d.batches.EXPECT().UpdateBatch(mock.Anything, batchWithStatus(domain.BatchStatusCompleted)).Return(nil)

		result, err := d.svc.Apply(ctx, service.ApplyInput{
			Filename: "catalogo.csv",
			New:      []domain.NewRecord{{Line: 2, Record: record("B2", "Lirio")}},
		})
		require.NoError(t, err)
		assert.Equal(t, domain.BatchStatusCompleted, result.Batch.Status)
		assert.Equal(t, 2, result.Audit.Attempted)
		assert.Equal(t, 2, result.Audit.Failed)
		assert.Equal(t, []string{"audit table locked"}, result.Audit.Errors)
	})

	t.Run("finalize failure marks the batch failed", func(t *testing.T) {
		d := newImportDeps(t)
		cause := errors.New("connection reset")

		d.archiver.EXPECT().Archive(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("path", nil)
		d.batches.EXPECT().CreateBatch(mock.Anything, mock.Anything).Return(nil)
		d.audit.EXPECT().InsertEntries(mock.Anything, mock.Anything).Return(nil).Twice()
		d.batches.EXPECT().UpdateBatch(mock.Anything, batchWithStatus(domain.BatchStatusCompleted)).Return(cause).Once()
		d.batches.EXPECT().UpdateBatch(mock.Anything, batchWithStatus(domain.BatchStatusFailed)).Return(nil).Once()

		_, err := d.svc.Apply(ctx, service.ApplyInput{Filename: "catalogo.csv"})
		var applyErr *service.ApplyError
		require.True(t, errors.As(err, &applyErr))
		assert.Equal(t, service.StageFinalize, applyErr.Stage)
		assert.Equal(t, service.AuditReport{Attempted: 2, Written: 2}, applyErr.Audit)
	})

	t.Run("a canceled request does not interrupt apply", func(t *testing.T) {
		d := newImportDeps(t)
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		notCanceled := mock.MatchedBy(func(c context.Context) bool { return c.Err() == nil })
		d.archiver.EXPECT().Archive(notCanceled, mock.Anything, mock.Anything, mock.Anything).Return("path", nil)
		d.batches.EXPECT().CreateBatch(notCanceled, mock.Anything).Return(nil)
		d.catalog.EXPECT().BulkUpsert(notCanceled, mock.Anything, mock.Anything, mock.Anything).Return(1, nil)
		d.audit.EXPECT().InsertEntries(notCanceled, mock.Anything).Return(nil)
		d.batches.EXPECT().UpdateBatch(notCanceled, mock.Anything).Return(nil)

		_, err := d.svc.Apply(canceled, service.ApplyInput{
			Filename: "catalogo.csv",
			New:      []domain.NewRecord{{Line: 2, Record: record("B2", "Lirio")}},
		})
		require.NoError(t, err)
	})
}

func TestImportService_ListBatches(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"default limit", 0, service.DefaultBatchListLimit},
		{"explicit limit", 10, 10},
		{"clamped limit", 10000, service.MaxBatchListLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newImportDeps(t)
			d.batches.EXPECT().ListBatches(mock.Anything, tt.want).Return([]domain.ImportBatch{}, nil)

			batches, err := d.svc.ListBatches(ctx, tt.limit)
			require.NoError(t, err)
			assert.Empty(t, batches)
		})
	}
}

func TestImportService_GetBatch(t *testing.T) {
	d := newImportDeps(t)
	d.batches.EXPECT().GetBatch(mock.Anything, "missing").Return(nil, nil)

	batch, err := d.svc.GetBatch(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, batch)
}
