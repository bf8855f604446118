package domain

import "time"

// AuditOperation is the kind of event an audit entry records.
type AuditOperation string

const (
	AuditInsert AuditOperation = "insert"
	AuditUpdate AuditOperation = "update"
	AuditImport AuditOperation = "import"
	AuditError  AuditOperation = "error"
)

// AuditStatus is the outcome of the audited event.
type AuditStatus string

const (
	AuditStatusSuccess AuditStatus = "success"
	AuditStatusError   AuditStatus = "error"
)

// AuditLogEntry is an append-only record of a catalog change. Barcode is the
// identifying key; ItemCode is kept for compatibility with older reports.
type AuditLogEntry struct {
	ID         string         `json:"id"`
	BatchID    *string        `json:"batch_id,omitempty"`
	OperatorID *string        `json:"operator_id,omitempty"`
	Barcode    string         `json:"codbarra,omitempty"`
	ItemCode   string         `json:"item_code,omitempty"`
	Operation  AuditOperation `json:"operation"`
	Status     AuditStatus    `json:"status"`
	Before     *CatalogRecord `json:"before,omitempty"`
	After      *CatalogRecord `json:"after,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}
