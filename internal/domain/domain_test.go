package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedFieldsFollowFeedColumns(t *testing.T) {
	rec := CatalogRecord{Barcode: "789", Description: "Rosa Vermelha"}
	fields := rec.FeedFields()

	require.Len(t, fields, len(FeedColumns))
	for i, f := range fields {
		assert.Equal(t, FeedColumns[i], f.Name)
	}
}

func TestFeedFieldsAbsentWeightIsNil(t *testing.T) {
	rec := CatalogRecord{Barcode: "789"}
	for _, f := range rec.FeedFields() {
		if f.Name == ColWeight {
			assert.Nil(t, f.Value)
		}
	}

	w := decimal.RequireFromString("1.5")
	rec.Weight = &w
	for _, f := range rec.FeedFields() {
		if f.Name == ColWeight {
			assert.Equal(t, w, f.Value)
		}
	}
}

func TestAnalysisAdd(t *testing.T) {
	a := NewAnalysis()
	a.Add(NewRecord{Line: 2})
	a.Add(ChangedRecord{Line: 3})
	a.Add(UnchangedRecord{Line: 4})
	a.Add(RowError{Line: 5, Reason: "bad"})
	a.TotalRows = 4

	assert.Equal(t, AnalysisCounts{Total: 4, New: 1, Changed: 1, Unchanged: 1, Errors: 1}, a.Counts())
}

func TestChangedFieldsOrder(t *testing.T) {
	c := ChangedRecord{Diffs: map[string]FieldDiff{
		ColUnitPrice:   {Before: "1", After: "2"},
		ColDescription: {Before: "a", After: "b"},
	}}
	assert.Equal(t, []string{ColDescription, ColUnitPrice}, c.ChangedFields())
}

func TestImportBatchLifecycle(t *testing.T) {
	now := time.Now()

	t.Run("complete", func(t *testing.T) {
		b := &ImportBatch{Status: BatchStatusPending}
		require.NoError(t, b.Complete(FinalSummary{NewApplied: 1, CompletedAt: now, IdentityKey: IdentityKey}))
		assert.Equal(t, BatchStatusCompleted, b.Status)
		require.NotNil(t, b.Preview.Summary)
		assert.Equal(t, "codbarra", b.Preview.Summary.IdentityKey)
		assert.ErrorIs(t, b.Fail(errors.New("late"), now), ErrBatchFinalized)
	})

	t.Run("fail", func(t *testing.T) {
		b := &ImportBatch{Status: BatchStatusPending}
		require.NoError(t, b.Fail(errors.New("upsert failed"), now))
		assert.Equal(t, BatchStatusFailed, b.Status)
		require.NotNil(t, b.ErrorMessage)
		assert.Equal(t, "upsert failed", *b.ErrorMessage)
		require.NotNil(t, b.Preview.Failure)
		assert.Equal(t, now, b.Preview.Failure.FailedAt)
		assert.ErrorIs(t, b.Complete(FinalSummary{}), ErrBatchFinalized)
	})
}

func TestCatalogRecord_Overlay(t *testing.T) {
	weight := decimal.NewFromInt(2)
	stored := CatalogRecord{ID: 9, Barcode: "789", Description: "Rosa", Photo: "rosa.jpg", Weight: &weight}
	incoming := CatalogRecord{Barcode: "789-X", Description: "Rosa Premium", Color: "Branca"}

	got := stored.Overlay(incoming, []string{ColBarcode, ColDescription, ColColor})
	assert.Equal(t, int64(9), got.ID)
	assert.Equal(t, "789", got.Barcode)
	assert.Equal(t, "Rosa Premium", got.Description)
	assert.Equal(t, "Branca", got.Color)
	assert.Equal(t, "rosa.jpg", got.Photo)
	assert.Same(t, &weight, got.Weight)

	all := stored.Overlay(incoming, nil)
	assert.Equal(t, "789", all.Barcode)
	assert.Empty(t, all.Photo)
	assert.Nil(t, all.Weight)
}
