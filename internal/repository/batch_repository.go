package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"florify-catalog/internal/domain"
)

const selectBatchColumns = `
	id::text, filename, archive_path, total_rows, new_count, changed_count,
	status, operator_id::text, diff_preview, error_message,
	created_at, updated_at, completed_at`

// PostgresBatchRepository implements BatchRepository using PostgreSQL.
type PostgresBatchRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresBatchRepository creates a new PostgresBatchRepository.
func NewPostgresBatchRepository(pool *pgxpool.Pool) *PostgresBatchRepository {
	return &PostgresBatchRepository{pool: pool}
}

// CreateBatch inserts a new import batch.
func (r *PostgresBatchRepository) CreateBatch(ctx context.Context, batch *domain.ImportBatch) error {
	preview, err := json.Marshal(batch.Preview)
	if err != nil {
		return fmt.Errorf("marshal diff preview: %w", err)
	}

	_, err = r.pool.Exec(ctx, `
		INSERT INTO import_batches (id, filename, archive_path, total_rows, new_count, changed_count,
			status, operator_id, diff_preview, created_at, updated_at)
		VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8::uuid, $9, $10, $11)
	`, batch.ID, batch.Filename, batch.ArchivePath, batch.TotalRows, batch.NewCount, batch.ChangedCount,
		batch.Status, batch.OperatorID, preview, batch.CreatedAt, batch.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert import batch: %w", err)
	}

	return nil
}

// GetBatch retrieves an import batch by ID, or nil if it does not exist.
func (r *PostgresBatchRepository) GetBatch(ctx context.Context, id string) (*domain.ImportBatch, error) {
	batch, err := scanBatch(r.pool.QueryRow(ctx, `SELECT `+selectBatchColumns+`
		FROM import_batches
		WHERE id = $1::uuid`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get import batch: %w", err)
	}
	return batch, nil
}

// ListBatches returns the most recent batches first.
func (r *PostgresBatchRepository) ListBatches(ctx context.Context, limit int) ([]domain.ImportBatch, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+selectBatchColumns+`
		FROM import_batches
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query import batches: %w", err)
	}
	defer rows.Close()

	batches := []domain.ImportBatch{}
	for rows.Next() {
		batch, err := scanBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan import batch: %w", err)
		}
		batches = append(batches, *batch)
	}
	return batches, rows.Err()
}

// UpdateBatch persists status, preview and completion fields of a batch.
func (r *PostgresBatchRepository) UpdateBatch(ctx context.Context, batch *domain.ImportBatch) error {
	preview, err := json.Marshal(batch.Preview)
	if err != nil {
		return fmt.Errorf("marshal diff preview: %w", err)
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE import_batches
		SET archive_path = $2, status = $3, diff_preview = $4, error_message = $5,
			updated_at = $6, completed_at = $7
		WHERE id = $1::uuid
	`, batch.ID, batch.ArchivePath, batch.Status, preview, batch.ErrorMessage,
		batch.UpdatedAt, batch.CompletedAt)
	if err != nil {
		return fmt.Errorf("update import batch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update import batch %s: %w", batch.ID, ErrNotFound)
	}

	return nil
}

func scanBatch(row pgx.Row) (*domain.ImportBatch, error) {
	var b domain.ImportBatch
	var preview []byte
	var completedAt *time.Time

	err := row.Scan(&b.ID, &b.Filename, &b.ArchivePath, &b.TotalRows, &b.NewCount, &b.ChangedCount,
		&b.Status, &b.OperatorID, &preview, &b.ErrorMessage,
		&b.CreatedAt, &b.UpdatedAt, &completedAt)
	if err != nil {
		return nil, err
	}

	if preview != nil {
		if err := json.Unmarshal(preview, &b.Preview); err != nil {
			return nil, fmt.Errorf("unmarshal diff preview: %w", err)
		}
	}
	b.CompletedAt = completedAt

	return &b, nil
}
