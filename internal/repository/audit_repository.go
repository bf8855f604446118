package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"florify-catalog/internal/domain"
)

// PostgresAuditRepository implements AuditRepository using PostgreSQL.
type PostgresAuditRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresAuditRepository creates a new PostgresAuditRepository.
func NewPostgresAuditRepository(pool *pgxpool.Pool) *PostgresAuditRepository {
	return &PostgresAuditRepository{pool: pool}
}

// InsertEntries appends entries with a single multi-row insert.
func (r *PostgresAuditRepository) InsertEntries(ctx context.Context, entries []domain.AuditLogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	values := make([]string, 0, len(entries))
	args := make([]interface{}, 0, len(entries)*11)
	argNum := 1

	for _, e := range entries {
		before, err := marshalNullable(e.Before)
		if err != nil {
			return fmt.Errorf("marshal before snapshot: %w", err)
		}
		after, err := marshalNullable(e.After)
		if err != nil {
			return fmt.Errorf("marshal after snapshot: %w", err)
		}
		metadata, err := json.Marshal(e.Metadata)
		if err != nil {
			return fmt.Errorf("marshal metadata: %w", err)
		}
		if e.Metadata == nil {
			metadata = []byte("{}")
		}

		values = append(values, fmt.Sprintf("($%d::uuid, $%d::uuid, $%d::uuid, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			argNum, argNum+1, argNum+2, argNum+3, argNum+4, argNum+5, argNum+6, argNum+7, argNum+8, argNum+9, argNum+10))
		args = append(args, e.ID, e.BatchID, e.OperatorID, e.Barcode, e.ItemCode,
			e.Operation, e.Status, before, after, metadata, e.CreatedAt)
		argNum += 11
	}

	_, err := r.pool.Exec(ctx, fmt.Sprintf(`
		INSERT INTO catalog_audit_log (id, batch_id, operator_id, barcode, item_code,
			operation, status, before_data, after_data, metadata, created_at)
		VALUES %s`, strings.Join(values, ", ")), args...)
	if err != nil {
		return fmt.Errorf("insert audit entries: %w", err)
	}
	return nil
}

// ListByBatch returns the audit trail of a batch in insertion order.
func (r *PostgresAuditRepository) ListByBatch(ctx context.Context, batchID string) ([]domain.AuditLogEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, batch_id::text, operator_id::text, barcode, item_code,
			operation, status, before_data, after_data, metadata, created_at
		FROM catalog_audit_log
		WHERE batch_id = $1::uuid
		ORDER BY created_at, barcode
	`, batchID)
	if err != nil {
		return nil, fmt.Errorf("query audit entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.AuditLogEntry{}
	for rows.Next() {
		var e domain.AuditLogEntry
		var before, after, metadata []byte
		if err := rows.Scan(&e.ID, &e.BatchID, &e.OperatorID, &e.Barcode, &e.ItemCode,
			&e.Operation, &e.Status, &before, &after, &metadata, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		if before != nil {
			e.Before = &domain.CatalogRecord{}
			if err := json.Unmarshal(before, e.Before); err != nil {
				return nil, fmt.Errorf("unmarshal before snapshot: %w", err)
			}
		}
		if after != nil {
			e.After = &domain.CatalogRecord{}
			if err := json.Unmarshal(after, e.After); err != nil {
				return nil, fmt.Errorf("unmarshal after snapshot: %w", err)
			}
		}
		if metadata != nil {
			if err := json.Unmarshal(metadata, &e.Metadata); err != nil {
				return nil, fmt.Errorf("unmarshal metadata: %w", err)
			}
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// marshalNullable returns nil for a nil snapshot so the column stays NULL.
func marshalNullable(rec *domain.CatalogRecord) ([]byte, error) {
	if rec == nil {
		return nil, nil
	}
	return json.Marshal(rec)
}
