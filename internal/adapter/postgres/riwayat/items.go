package riwayat

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/manuver-backend/internal/adapter/postgres"
	"github.com/heartmarshall/manuver-backend/internal/domain"
)

// ItemRepo stores the action items of records.
type ItemRepo struct {
	db postgres.Querier
}

// NewItemRepo creates an ItemRepo.
func NewItemRepo(db postgres.Querier) *ItemRepo {
	return &ItemRepo{db: db}
}

const listItemsByRecordSQL = `
SELECT ` + itemColumnList + `
FROM riwayat_items
WHERE riwayat_id = $1
ORDER BY order_index, created_at`

const listItemsByRecordsSQL = `
SELECT ` + itemColumnList + `
FROM riwayat_items
WHERE riwayat_id = ANY($1::uuid[])
ORDER BY riwayat_id, order_index, created_at`

const insertItemSQL = `
INSERT INTO riwayat_items (id, riwayat_id, nama_peralatan, bay, posisi_switch, waktu, act, order_index, is_separator, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, COALESCE($10, now()))`

const deleteItemsByRecordSQL = `DELETE FROM riwayat_items WHERE riwayat_id = $1`

// ListByRecordID returns the items of one record in display order.
func (r *ItemRepo) ListByRecordID(ctx context.Context, recordID uuid.UUID) ([]domain.ActionItem, error) {
	var rows []itemRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listItemsByRecordSQL, recordID); err != nil {
		return nil, postgres.MapError(err, itemsTable, recordID)
	}

	items := make([]domain.ActionItem, len(rows))
	for i, row := range rows {
		items[i] = row.toDomain()
	}
	return items, nil
}

// ListByRecordIDs returns the items of all given records grouped by record id,
// using a single query. Records without items are absent from the map.
func (r *ItemRepo) ListByRecordIDs(ctx context.Context, recordIDs []uuid.UUID) (map[uuid.UUID][]domain.ActionItem, error) {
	out := make(map[uuid.UUID][]domain.ActionItem, len(recordIDs))
	if len(recordIDs) == 0 {
		return out, nil
	}

	var rows []itemRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, listItemsByRecordsSQL, recordIDs); err != nil {
		return nil, postgres.MapError(err, itemsTable, uuid.Nil)
	}

	for _, row := range rows {
		out[row.RecordID] = append(out[row.RecordID], row.toDomain())
	}
	return out, nil
}

// InsertBatch inserts items for recordID using pgx.Batch. Items keep their id
// and created_at when set, so restored snapshots round-trip unchanged.
func (r *ItemRepo) InsertBatch(ctx context.Context, recordID uuid.UUID, items []domain.ActionItem) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, it := range items {
		id := it.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		var createdAt any
		if !it.CreatedAt.IsZero() {
			createdAt = it.CreatedAt
		}
		method := it.Method
		if method == "" {
			method = domain.DefaultMethod
		}
		batch.Queue(insertItemSQL,
			id, recordID, it.EquipmentName, nilIfEmpty(it.Bay), bool(it.SwitchState),
			it.Time, string(method), it.OrderIndex, it.IsSeparator, createdAt,
		)
	}

	results := postgres.QuerierFromCtx(ctx, r.db).SendBatch(ctx, batch)
	defer results.Close()

	var inserted int
	for range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return inserted, postgres.MapError(fmt.Errorf("batch exec: %w", err), itemsTable, recordID)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}

// DeleteByRecordID removes every item of recordID.
func (r *ItemRepo) DeleteByRecordID(ctx context.Context, recordID uuid.UUID) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteItemsByRecordSQL, recordID)
	if err != nil {
		return 0, postgres.MapError(err, itemsTable, recordID)
	}
	return tag.RowsAffected(), nil
}
