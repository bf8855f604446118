package domain

// OutcomeKind names the classification of a reconciled row.
type OutcomeKind string

const (
	OutcomeNew       OutcomeKind = "new"
	OutcomeChanged   OutcomeKind = "changed"
	OutcomeUnchanged OutcomeKind = "unchanged"
	OutcomeInvalid   OutcomeKind = "invalid"
)

// Outcome is the result of reconciling one row. It is implemented only by
// NewRecord, ChangedRecord, UnchangedRecord and RowError.
type Outcome interface {
	Kind() OutcomeKind
	outcome()
}

// FieldDiff holds the stored and incoming value of a diverging field.
type FieldDiff struct {
	Before any `json:"before"`
	After  any `json:"after"`
}

// NewRecord is a row whose barcode does not exist in the catalog.
type NewRecord struct {
	Line   int           `json:"line"`
	Record CatalogRecord `json:"record"`
}

// ChangedRecord is a row matching an existing record with at least one diff.
// Columns are the feed columns the row supplied; only those are written
// back. An empty list means every feed column.
type ChangedRecord struct {
	Line     int                  `json:"line"`
	Existing CatalogRecord        `json:"existing"`
	Incoming CatalogRecord        `json:"incoming"`
	Columns  []string             `json:"columns,omitempty"`
	Diffs    map[string]FieldDiff `json:"diffs"`
}

// UnchangedRecord is a row matching an existing record with no meaningful diff.
type UnchangedRecord struct {
	Line     int           `json:"line"`
	Existing CatalogRecord `json:"existing"`
}

// RowError is a row rejected by validation, parsing or classification.
type RowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

func (NewRecord) Kind() OutcomeKind       { return OutcomeNew }
func (ChangedRecord) Kind() OutcomeKind   { return OutcomeChanged }
func (UnchangedRecord) Kind() OutcomeKind { return OutcomeUnchanged }
func (RowError) Kind() OutcomeKind        { return OutcomeInvalid }

func (NewRecord) outcome()       {}
func (ChangedRecord) outcome()   {}
func (UnchangedRecord) outcome() {}
func (RowError) outcome()        {}

// ChangedFields returns the names of the diverging fields in feed column order.
func (c ChangedRecord) ChangedFields() []string {
	fields := make([]string, 0, len(c.Diffs))
	for _, col := range FeedColumns {
		if _, ok := c.Diffs[col]; ok {
			fields = append(fields, col)
		}
	}
	return fields
}

// Analysis partitions the rows of one file into the four outcome buckets.
type Analysis struct {
	TotalRows int               `json:"total_rows"`
	New       []NewRecord       `json:"new"`
	Changed   []ChangedRecord   `json:"changed"`
	Unchanged []UnchangedRecord `json:"unchanged"`
	Errors    []RowError        `json:"errors"`
}

// NewAnalysis returns an analysis with empty, non-nil buckets.
func NewAnalysis() *Analysis {
	return &Analysis{
		New:       []NewRecord{},
		Changed:   []ChangedRecord{},
		Unchanged: []UnchangedRecord{},
		Errors:    []RowError{},
	}
}

// Add files an outcome into its bucket.
func (a *Analysis) Add(o Outcome) {
	switch v := o.(type) {
	case NewRecord:
		a.New = append(a.New, v)
	case ChangedRecord:
		a.Changed = append(a.Changed, v)
	case UnchangedRecord:
		a.Unchanged = append(a.Unchanged, v)
	case RowError:
		a.Errors = append(a.Errors, v)
	}
}

// Counts summarizes the bucket sizes.
func (a *Analysis) Counts() AnalysisCounts {
	return AnalysisCounts{
		Total:     a.TotalRows,
		New:       len(a.New),
		Changed:   len(a.Changed),
		Unchanged: len(a.Unchanged),
		Errors:    len(a.Errors),
	}
}

// AnalysisCounts is the per-bucket row count shown before confirmation.
type AnalysisCounts struct {
	Total     int `json:"total"`
	New       int `json:"new"`
	Changed   int `json:"changed"`
	Unchanged int `json:"unchanged"`
	Errors    int `json:"errors"`
}
