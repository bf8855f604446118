// Package reconcile classifies catalog feed rows against the stored catalog.
//
// Rows are matched by barcode only. The outcome of a row depends on nothing
// but its own content and the snapshot, so running the engine twice over the
// same inputs, in any order, yields the same partitions.
package reconcile

import (
	"fmt"
	"log/slog"
	"strings"

	"florify-catalog/internal/csvfeed"
	"florify-catalog/internal/domain"
	"florify-catalog/internal/logger"
)

// Snapshot is the catalog state a run is reconciled against, loaded once.
type Snapshot struct {
	byBarcode  map[string]domain.CatalogRecord
	byItemCode map[string][]domain.CatalogRecord
}

// NewSnapshot indexes records by barcode. A secondary item code index is kept
// for display lookups only.
func NewSnapshot(records []domain.CatalogRecord) *Snapshot {
	s := &Snapshot{
		byBarcode:  make(map[string]domain.CatalogRecord, len(records)),
		byItemCode: make(map[string][]domain.CatalogRecord),
	}
	for _, rec := range records {
		s.byBarcode[barcodeKey(rec.Barcode)] = rec
		if rec.ItemCode != "" {
			s.byItemCode[rec.ItemCode] = append(s.byItemCode[rec.ItemCode], rec)
		}
	}
	return s
}

// Lookup returns the stored record with the given barcode.
func (s *Snapshot) Lookup(barcode string) (domain.CatalogRecord, bool) {
	rec, ok := s.byBarcode[barcodeKey(barcode)]
	return rec, ok
}

// ByItemCode returns every stored record carrying the item code.
func (s *Snapshot) ByItemCode(itemCode string) []domain.CatalogRecord {
	return s.byItemCode[itemCode]
}

// Len returns the number of records in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.byBarcode)
}

func barcodeKey(barcode string) string {
	return strings.TrimSpace(barcode)
}

// Option configures an Engine.
type Option func(*Engine)

// WithUnitOfMeasure makes unidade_medida part of the compared fields.
func WithUnitOfMeasure() Option {
	return func(e *Engine) {
		delete(e.ignored, domain.ColUnitOfMeasure)
	}
}

// Engine classifies rows as new, changed, unchanged or invalid.
type Engine struct {
	ignored map[string]bool
	log     *slog.Logger
}

// NewEngine creates an Engine. By default the barcode and the unit of
// measure are not compared.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		ignored: map[string]bool{
			domain.ColBarcode:       true,
			domain.ColUnitOfMeasure: true,
		},
		log: logger.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Reconcile classifies every row and files it into an analysis.
func (e *Engine) Reconcile(rows []csvfeed.Row, snap *Snapshot) *domain.Analysis {
	analysis := domain.NewAnalysis()
	analysis.TotalRows = len(rows)
	for _, row := range rows {
		analysis.Add(e.Classify(row, snap))
	}
	return analysis
}

// Classify returns the outcome of one row. A panic while classifying is
// turned into a row error for that line.
func (e *Engine) Classify(row csvfeed.Row, snap *Snapshot) (out domain.Outcome) {
	if !row.Valid() {
		return *row.Err
	}

	defer func() {
		if r := recover(); r != nil {
			e.log.Error("row classification failed",
				slog.Int("line", row.Line),
				slog.Any("panic", r),
			)
			out = domain.RowError{Line: row.Line, Reason: fmt.Sprintf("classification failed: %v", r)}
		}
	}()

	incoming := row.Record
	existing, ok := snap.Lookup(incoming.Barcode)
	if !ok {
		e.warnItemCodeReuse(row.Line, incoming, snap)
		return domain.NewRecord{Line: row.Line, Record: incoming}
	}

	diffs := e.Diff(existing, incoming, row.Columns)
	if len(diffs) == 0 {
		return domain.UnchangedRecord{Line: row.Line, Existing: existing}
	}
	return domain.ChangedRecord{
		Line:     row.Line,
		Existing: existing,
		Incoming: incoming,
		Columns:  row.Columns,
		Diffs:    diffs,
	}
}

// Diff returns the fields whose values differ between the stored and the
// incoming record, looking only at columns. A nil columns compares every
// feed column.
func (e *Engine) Diff(existing, incoming domain.CatalogRecord, columns []string) map[string]domain.FieldDiff {
	var supplied map[string]bool
	if columns != nil {
		supplied = make(map[string]bool, len(columns))
		for _, col := range columns {
			supplied[col] = true
		}
	}

	before := existing.FeedFields()
	after := incoming.FeedFields()

	diffs := make(map[string]domain.FieldDiff)
	for i, f := range after {
		if e.ignored[f.Name] {
			continue
		}
		if supplied != nil && !supplied[f.Name] {
			continue
		}
		if !Equal(before[i].Value, f.Value) {
			diffs[f.Name] = domain.FieldDiff{Before: before[i].Value, After: f.Value}
		}
	}
	return diffs
}

// warnItemCodeReuse flags new barcodes whose item code already belongs to
// another product. The row stays new.
func (e *Engine) warnItemCodeReuse(line int, rec domain.CatalogRecord, snap *Snapshot) {
	if rec.ItemCode == "" {
		return
	}
	others := snap.ByItemCode(rec.ItemCode)
	if len(others) == 0 {
		return
	}
	e.log.Warn("item_code already used by another barcode",
		slog.Int("line", line),
		slog.String("item_code", rec.ItemCode),
		slog.String("codbarra", rec.Barcode),
		slog.String("existing_codbarra", others[0].Barcode),
	)
}
