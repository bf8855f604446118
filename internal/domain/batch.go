package domain

import (
	"errors"
	"time"
)

// BatchStatus represents the lifecycle state of an import batch.
type BatchStatus string

const (
	BatchStatusPending   BatchStatus = "pending"
	BatchStatusCompleted BatchStatus = "completed"
	BatchStatusFailed    BatchStatus = "failed"
)

// IdentityKey is the column used to match feed rows to catalog records.
const IdentityKey = ColBarcode

// ErrBatchFinalized is returned when a terminal batch is transitioned again.
var ErrBatchFinalized = errors.New("import batch already finalized")

// ImportBatch records one confirmed application of a catalog file.
// Batches move from pending to completed or failed and are never deleted.
type ImportBatch struct {
	ID           string      `json:"id"`
	Filename     string      `json:"filename"`
	ArchivePath  string      `json:"archive_path"`
	TotalRows    int         `json:"total_rows"`
	NewCount     int         `json:"new_count"`
	ChangedCount int         `json:"changed_count"`
	Status       BatchStatus `json:"status"`
	OperatorID   *string     `json:"operator_id,omitempty"`
	Preview      DiffPreview `json:"diff_preview"`
	ErrorMessage *string     `json:"error_message,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
	CompletedAt  *time.Time  `json:"completed_at,omitempty"`
}

// DiffPreview is the planned change set stored with a batch, extended with
// the final summary or failure once the batch leaves pending.
type DiffPreview struct {
	NewCount int             `json:"new_count"`
	Changed  []ChangePreview `json:"changed"`
	Errors   []RowError      `json:"errors"`
	Summary  *FinalSummary   `json:"final_summary,omitempty"`
	Failure  *FailureInfo    `json:"failure,omitempty"`
}

// ChangePreview describes one selected changed record.
type ChangePreview struct {
	Barcode  string               `json:"codbarra"`
	ItemCode string               `json:"item_code,omitempty"`
	Diffs    map[string]FieldDiff `json:"diffs"`
}

// FinalSummary is attached to a completed batch.
type FinalSummary struct {
	NewApplied     int       `json:"new_applied"`
	ChangedApplied int       `json:"changed_applied"`
	CompletedAt    time.Time `json:"completed_at"`
	IdentityKey    string    `json:"identity_key"`
}

// FailureInfo is attached to a failed batch.
type FailureInfo struct {
	Message  string    `json:"message"`
	FailedAt time.Time `json:"failed_at"`
}

// IsTerminal reports whether the batch has left pending.
func (b *ImportBatch) IsTerminal() bool {
	return b.Status == BatchStatusCompleted || b.Status == BatchStatusFailed
}

// Complete moves a pending batch to completed with the given summary.
func (b *ImportBatch) Complete(summary FinalSummary) error {
	if b.IsTerminal() {
		return ErrBatchFinalized
	}
	at := summary.CompletedAt
	b.Status = BatchStatusCompleted
	b.Preview.Summary = &summary
	b.UpdatedAt = at
	b.CompletedAt = &at
	return nil
}

// Fail moves a pending batch to failed, recording cause and time.
func (b *ImportBatch) Fail(cause error, at time.Time) error {
	if b.IsTerminal() {
		return ErrBatchFinalized
	}
	msg := cause.Error()
	b.Status = BatchStatusFailed
	b.ErrorMessage = &msg
	b.Preview.Failure = &FailureInfo{Message: msg, FailedAt: at}
	b.UpdatedAt = at
	b.CompletedAt = &at
	return nil
}
