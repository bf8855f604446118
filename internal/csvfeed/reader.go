// Package csvfeed reads supplier catalog files: semicolon separated, with a
// header row, one product per line.
package csvfeed

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"florify-catalog/internal/domain"
	"florify-catalog/internal/logger"
	"florify-catalog/internal/validator"
)

// Separator is the field separator of catalog files.
const Separator = ';'

var (
	// ErrEmptyFile is returned for a file without content or header.
	ErrEmptyFile = errors.New("csv file is empty or has no header")
	// ErrNoDataRows is returned for a file with a header but no products.
	ErrNoDataRows = errors.New("csv file has no data rows")
	// ErrMissingColumns is returned when the header lacks a mandatory column.
	ErrMissingColumns = errors.New("csv header is missing required columns")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var headerAliases = map[string]string{
	"itemcode": domain.ColItemCode,
}

var requiredColumns = []string{domain.ColBarcode, domain.ColDescription}

// Row is one normalized data row. Exactly one of Record or Err is meaningful:
// Err is set when the row was rejected.
//
// Columns lists, in FeedColumns order, the feed columns the row actually
// supplies: columns missing from the header or the line are left out, and so
// are a weight or registration date that could not be parsed.
type Row struct {
	Line    int
	Record  domain.CatalogRecord
	Columns []string
	Err     *domain.RowError
}

// Valid reports whether the row passed validation.
func (r Row) Valid() bool {
	return r.Err == nil
}

// Reader yields normalized rows in a single pass.
type Reader struct {
	lines     *bufio.Scanner
	line      int
	header    []string
	validator *validator.Validator
	log       *slog.Logger

	pending *Row
}

// NewReader reads the header of a catalog file and checks that it has at
// least one data row. The whole input is buffered so its encoding can be
// detected; input that is not valid UTF-8 is decoded as ISO-8859-1.
func NewReader(r io.Reader) (*Reader, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	data := decode(raw)
	lines := bufio.NewScanner(bytes.NewReader(data))
	lines.Buffer(make([]byte, 0, 64*1024), len(data)+1)

	rd := &Reader{
		lines:     lines,
		validator: validator.NewValidator(),
		log:       logger.Default(),
	}

	if err := rd.readHeader(); err != nil {
		return nil, err
	}

	first, err := rd.next()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoDataRows
	}
	if err != nil {
		return nil, err
	}
	rd.pending = &first

	return rd, nil
}

// Header returns the normalized column names.
func (rd *Reader) Header() []string {
	return rd.header
}

// Next returns the next row, or io.EOF once the file is exhausted.
// Malformed lines are returned as rejected rows, never as errors.
func (rd *Reader) Next() (Row, error) {
	if rd.pending != nil {
		row := *rd.pending
		rd.pending = nil
		return row, nil
	}
	return rd.next()
}

func (rd *Reader) readHeader() error {
	var text string
	for {
		line, ok, err := rd.scan()
		if err != nil {
			return err
		}
		if !ok {
			return ErrEmptyFile
		}
		if strings.TrimSpace(line) != "" {
			text = line
			break
		}
	}

	record, err := parseLine(text)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEmptyFile, err)
	}
	if allBlank(record) {
		return ErrEmptyFile
	}

	header := make([]string, len(record))
	present := make(map[string]bool, len(record))
	for i, name := range record {
		col := strings.ToLower(strings.TrimSpace(name))
		if alias, ok := headerAliases[col]; ok {
			col = alias
		}
		header[i] = col
		present[col] = true
	}

	var missing []string
	for _, col := range requiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	rd.header = header
	return nil
}

func (rd *Reader) next() (Row, error) {
	for {
		text, ok, err := rd.scan()
		if err != nil {
			return Row{}, err
		}
		if !ok {
			return Row{}, io.EOF
		}

		record, err := parseLine(text)
		if err != nil {
			return Row{
				Line: rd.line,
				Err:  &domain.RowError{Line: rd.line, Reason: fmt.Sprintf("malformed csv line: %v", err)},
			}, nil
		}
		if allBlank(record) {
			continue
		}

		return rd.normalize(rd.line, record), nil
	}
}

// scan advances to the next physical line.
func (rd *Reader) scan() (string, bool, error) {
	if !rd.lines.Scan() {
		if err := rd.lines.Err(); err != nil {
			return "", false, fmt.Errorf("read csv: %w", err)
		}
		return "", false, nil
	}
	rd.line++
	return rd.lines.Text(), true, nil
}

// parseLine splits one physical line into fields. A stray quote inside an
// unquoted field is kept as text; a quoted field left open is an error.
func parseLine(line string) ([]string, error) {
	record, err := readFields(line, false)
	var perr *csv.ParseError
	if errors.As(err, &perr) && errors.Is(perr.Err, csv.ErrBareQuote) {
		record, err = readFields(line, true)
	}
	if err != nil {
		if errors.As(err, &perr) {
			return nil, perr.Err
		}
		return nil, err
	}
	return record, nil
}

func readFields(line string, lazy bool) ([]string, error) {
	cr := csv.NewReader(strings.NewReader(line))
	cr.Comma = Separator
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = lazy

	record, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	return record, err
}

func (rd *Reader) normalize(line int, fields []string) Row {
	values := make(map[string]string, len(rd.header))
	for i, col := range rd.header {
		if i >= len(fields) || col == "" {
			continue
		}
		values[col] = strings.TrimSpace(fields[i])
	}

	rec := buildRecord(values, func(col, raw string) {
		rd.log.Warn("unparsable numeric value, using zero",
			slog.Int("line", line),
			slog.String("column", col),
			slog.String("value", raw),
		)
	})

	if err := rd.validator.ValidateRecord(&rec); err != nil {
		rowErr := validator.ConvertValidationErrors(line, err)
		return Row{Line: line, Err: &rowErr}
	}
	return Row{Line: line, Record: rec, Columns: suppliedColumns(values, rec)}
}

// suppliedColumns returns the feed columns present in values, dropping a
// weight or date that did not survive coercion.
func suppliedColumns(values map[string]string, rec domain.CatalogRecord) []string {
	cols := make([]string, 0, len(values))
	for _, col := range domain.FeedColumns {
		if _, ok := values[col]; !ok {
			continue
		}
		if col == domain.ColWeight && rec.Weight == nil {
			continue
		}
		if col == domain.ColRegisteredOn && rec.RegisteredOn == "" {
			continue
		}
		cols = append(cols, col)
	}
	return cols
}

// ReadAll drains a catalog file into rows.
func ReadAll(r io.Reader) ([]Row, error) {
	rd, err := NewReader(r)
	if err != nil {
		return nil, err
	}

	var rows []Row
	for {
		row, err := rd.Next()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}

func decode(raw []byte) []byte {
	raw = bytes.TrimPrefix(raw, utf8BOM)
	if utf8.Valid(raw) {
		return raw
	}
	decoded, _, err := transform.Bytes(charmap.ISO8859_1.NewDecoder(), raw)
	if err != nil {
		return raw
	}
	return decoded
}

func allBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
