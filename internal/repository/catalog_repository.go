package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"florify-catalog/internal/domain"
)

// DefaultUpsertChunkSize bounds the rows sent in one upsert statement.
const DefaultUpsertChunkSize = 500

const selectCatalogColumns = `
	id, barcode, item_code, description, short_description,
	category_code, category_label, group_code, group_label,
	COALESCE(to_char(registered_on, 'YYYY-MM-DD'), ''),
	ncm, class_cond, commercial_group, logistics_group, cst_sp,
	weight, cpc, epc, upc, color, photo, unit_price, unit_of_measure, packaging,
	import_batch_id::text, updated_at`

// writeColumns are the feed columns written on insert and update, in the
// order produced by feedArgs.
var writeColumns = []string{
	"item_code", "description", "short_description",
	"category_code", "category_label", "group_code", "group_label",
	"registered_on", "ncm", "class_cond", "commercial_group", "logistics_group", "cst_sp",
	"weight", "cpc", "epc", "upc", "color", "photo", "unit_price", "unit_of_measure", "packaging",
}

// writeFeedColumns names the feed column behind each entry of writeColumns.
var writeFeedColumns = []string{
	domain.ColItemCode, domain.ColDescription, domain.ColShortDescription,
	domain.ColCategoryCode, domain.ColCategoryLabel, domain.ColGroupCode, domain.ColGroupLabel,
	domain.ColRegisteredOn, domain.ColNCM, domain.ColClassCond, domain.ColCommercialGroup, domain.ColLogisticsGroup, domain.ColCSTSP,
	domain.ColWeight, domain.ColCPC, domain.ColEPC, domain.ColUPC, domain.ColColor, domain.ColPhoto, domain.ColUnitPrice, domain.ColUnitOfMeasure, domain.ColPackaging,
}

// PostgresCatalogRepository implements CatalogRepository using PostgreSQL.
type PostgresCatalogRepository struct {
	pool      *pgxpool.Pool
	chunkSize int
}

// NewPostgresCatalogRepository creates a new PostgresCatalogRepository.
func NewPostgresCatalogRepository(pool *pgxpool.Pool, chunkSize int) *PostgresCatalogRepository {
	if chunkSize < 1 {
		chunkSize = DefaultUpsertChunkSize
	}
	return &PostgresCatalogRepository{pool: pool, chunkSize: chunkSize}
}

// ListAll returns every catalog record ordered by barcode.
func (r *PostgresCatalogRepository) ListAll(ctx context.Context) ([]domain.CatalogRecord, error) {
	var records []domain.CatalogRecord
	err := r.StreamAll(ctx, func(rec domain.CatalogRecord) error {
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	return records, nil
}

// StreamAll streams all catalog records with O(1) memory.
func (r *PostgresCatalogRepository) StreamAll(ctx context.Context, callback func(domain.CatalogRecord) error) error {
	rows, err := r.pool.Query(ctx, `SELECT `+selectCatalogColumns+`
		FROM catalog_products
		ORDER BY barcode`)
	if err != nil {
		return fmt.Errorf("query catalog: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return err
		}
		if err := callback(rec); err != nil {
			return fmt.Errorf("callback error: %w", err)
		}
	}

	return rows.Err()
}

// GetByBarcode returns the record with the given barcode, or nil.
func (r *PostgresCatalogRepository) GetByBarcode(ctx context.Context, barcode string) (*domain.CatalogRecord, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+selectCatalogColumns+`
		FROM catalog_products
		WHERE barcode = $1`, barcode)

	rec, err := scanRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// FindByItemCode returns every record sharing an item code.
func (r *PostgresCatalogRepository) FindByItemCode(ctx context.Context, itemCode string) ([]domain.CatalogRecord, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+selectCatalogColumns+`
		FROM catalog_products
		WHERE item_code = $1
		ORDER BY barcode`, itemCode)
	if err != nil {
		return nil, fmt.Errorf("query by item code: %w", err)
	}
	defer rows.Close()

	records := []domain.CatalogRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// BulkUpsert writes records in chunks inside one transaction. Either every
// record is written or none is.
func (r *PostgresCatalogRepository) BulkUpsert(ctx context.Context, records []domain.CatalogRecord, batchID string, at time.Time) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	written := 0
	for start := 0; start < len(records); start += r.chunkSize {
		end := start + r.chunkSize
		if end > len(records) {
			end = len(records)
		}

		query, args := buildUpsertQuery(records[start:end], batchID, at)
		tag, err := tx.Exec(ctx, query, args...)
		if err != nil {
			return 0, fmt.Errorf("upsert catalog rows %d-%d: %w", start+1, end, err)
		}
		written += int(tag.RowsAffected())
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}
	return written, nil
}

func buildUpsertQuery(records []domain.CatalogRecord, batchID string, at time.Time) (string, []interface{}) {
	// barcode + feed columns + batch id + updated_at
	perRow := len(writeColumns) + 3
	values := make([]string, 0, len(records))
	args := make([]interface{}, 0, len(records)*perRow)

	argNum := 1
	for _, rec := range records {
		placeholders := make([]string, perRow)
		for i := range placeholders {
			placeholders[i] = placeholder(argNum+i, i-1)
		}
		values = append(values, "("+strings.Join(placeholders, ", ")+")")

		args = append(args, strings.TrimSpace(rec.Barcode))
		args = append(args, feedArgs(rec)...)
		args = append(args, batchID, at)
		argNum += perRow
	}

	updates := make([]string, 0, len(writeColumns)+2)
	for _, col := range append(append([]string{}, writeColumns...), "import_batch_id", "updated_at") {
		updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
	}

	query := fmt.Sprintf(`
INSERT INTO catalog_products (barcode, %s, import_batch_id, updated_at)
VALUES %s
ON CONFLICT (barcode) DO UPDATE SET %s`,
		strings.Join(writeColumns, ", "),
		strings.Join(values, ",\n"),
		strings.Join(updates, ", "),
	)

	return query, args
}

// placeholder renders $n, casting the registration date and batch id.
// col is the index into writeColumns, or -1 for the barcode.
func placeholder(n, col int) string {
	switch {
	case col >= 0 && col < len(writeColumns) && writeColumns[col] == "registered_on":
		return fmt.Sprintf("NULLIF($%d, '')::date", n)
	case col == len(writeColumns):
		return fmt.Sprintf("$%d::uuid", n)
	default:
		return fmt.Sprintf("$%d", n)
	}
}

// UpdateByBarcode updates one record in place, keyed by its stored barcode.
// Only the listed feed columns are written; nil writes all of them.
func (r *PostgresCatalogRepository) UpdateByBarcode(ctx context.Context, barcode string, record domain.CatalogRecord, columns []string, batchID string, at time.Time) error {
	values := feedArgs(record)
	selected := selectWriteColumns(columns)

	sets := make([]string, 0, len(selected)+2)
	args := make([]interface{}, 0, len(selected)+3)
	args = append(args, barcode)
	for _, i := range selected {
		args = append(args, values[i])
		sets = append(sets, fmt.Sprintf("%s = %s", writeColumns[i], placeholder(len(args), i)))
	}
	args = append(args, batchID, at)
	sets = append(sets,
		fmt.Sprintf("import_batch_id = $%d::uuid", len(args)-1),
		fmt.Sprintf("updated_at = $%d", len(args)),
	)

	tag, err := r.pool.Exec(ctx,
		"UPDATE catalog_products SET "+strings.Join(sets, ", ")+" WHERE barcode = $1",
		args...)
	if err != nil {
		return fmt.Errorf("update catalog record %s: %w", barcode, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update catalog record %s: %w", barcode, ErrNotFound)
	}
	return nil
}

// selectWriteColumns returns the writeColumns indexes matching the feed
// columns, in writeColumns order.
func selectWriteColumns(columns []string) []int {
	all := columns == nil
	wanted := make(map[string]bool, len(columns))
	for _, col := range columns {
		wanted[col] = true
	}

	idx := make([]int, 0, len(writeFeedColumns))
	for i, col := range writeFeedColumns {
		if all || wanted[col] {
			idx = append(idx, i)
		}
	}
	return idx
}

// feedArgs returns the values for writeColumns.
func feedArgs(rec domain.CatalogRecord) []interface{} {
	return []interface{}{
		rec.ItemCode, rec.Description, rec.ShortDescription,
		rec.CategoryCode, rec.CategoryLabel, rec.GroupCode, rec.GroupLabel,
		rec.RegisteredOn, rec.NCM, rec.ClassCond, rec.CommercialGroup, rec.LogisticsGroup, rec.CSTSP,
		nullableNumeric(rec.Weight), rec.CPC, rec.EPC, rec.UPC, rec.Color, rec.Photo,
		toNumeric(rec.UnitPrice), rec.UnitOfMeasure, rec.Packaging,
	}
}

func scanRecord(row pgx.Row) (domain.CatalogRecord, error) {
	var rec domain.CatalogRecord
	var weight, price pgtype.Numeric

	err := row.Scan(
		&rec.ID, &rec.Barcode, &rec.ItemCode, &rec.Description, &rec.ShortDescription,
		&rec.CategoryCode, &rec.CategoryLabel, &rec.GroupCode, &rec.GroupLabel,
		&rec.RegisteredOn,
		&rec.NCM, &rec.ClassCond, &rec.CommercialGroup, &rec.LogisticsGroup, &rec.CSTSP,
		&weight, &rec.CPC, &rec.EPC, &rec.UPC, &rec.Color, &rec.Photo, &price,
		&rec.UnitOfMeasure, &rec.Packaging,
		&rec.ImportBatchID, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return rec, err
		}
		return rec, fmt.Errorf("scan catalog record: %w", err)
	}

	rec.Weight = fromNumeric(weight)
	if p := fromNumeric(price); p != nil {
		rec.UnitPrice = *p
	}
	return rec, nil
}

func toNumeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

func nullableNumeric(d *decimal.Decimal) pgtype.Numeric {
	if d == nil {
		return pgtype.Numeric{}
	}
	return toNumeric(*d)
}

func fromNumeric(n pgtype.Numeric) *decimal.Decimal {
	if !n.Valid || n.NaN || n.InfinityModifier != pgtype.Finite || n.Int == nil {
		return nil
	}
	d := decimal.NewFromBigInt(n.Int, n.Exp)
	return &d
}
