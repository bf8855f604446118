package csvfeed

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"florify-catalog/internal/domain"
)

// Writer renders catalog records in the same layout NewReader accepts.
type Writer struct {
	csv         *csv.Writer
	wroteHeader bool
}

// NewWriter creates a Writer on w.
func NewWriter(w io.Writer) *Writer {
	cw := csv.NewWriter(w)
	cw.Comma = Separator
	return &Writer{csv: cw}
}

// Write writes one record, preceded by the header on the first call.
func (w *Writer) Write(rec domain.CatalogRecord) error {
	if err := w.WriteHeader(); err != nil {
		return err
	}

	fields := rec.FeedFields()
	row := make([]string, len(fields))
	for i, f := range fields {
		row[i] = formatValue(f)
	}
	if err := w.csv.Write(row); err != nil {
		return fmt.Errorf("write row: %w", err)
	}
	return nil
}

// WriteHeader writes the header row once.
func (w *Writer) WriteHeader() error {
	if w.wroteHeader {
		return nil
	}
	if err := w.csv.Write(domain.FeedColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	w.wroteHeader = true
	return nil
}

// Flush flushes buffered rows and reports any write error.
func (w *Writer) Flush() error {
	w.csv.Flush()
	return w.csv.Error()
}

func formatValue(f domain.Field) string {
	switch v := f.Value.(type) {
	case nil:
		return ""
	case decimal.Decimal:
		return FormatDecimal(v)
	case string:
		if f.Name == domain.ColRegisteredOn {
			return FormatDate(v)
		}
		return v
	default:
		return fmt.Sprint(v)
	}
}
