// Package riwayat implements persistence of maneuver records and their
// action items on PostgreSQL.
package riwayat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/manuver-backend/internal/adapter/postgres"
	"github.com/heartmarshall/manuver-backend/internal/domain"
)

// RecordRepo stores record headers.
type RecordRepo struct {
	db postgres.Querier
}

// NewRecordRepo creates a RecordRepo.
func NewRecordRepo(db postgres.Querier) *RecordRepo {
	return &RecordRepo{db: db}
}

// List returns every record visible in scope, newest first.
// Returns an empty slice (not nil) when there are none.
func (r *RecordRepo) List(ctx context.Context, scope domain.Scope) ([]domain.Record, error) {
	query := psql.Select(recordColumns...).
		From(recordsTable).
		OrderBy("created_at DESC", "id")
	if !scope.Master {
		query = query.Where(squirrel.Eq{"kode_gardu": scope.Gardu})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list records query: %w", err)
	}

	var rows []recordRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, recordsTable, uuid.Nil)
	}

	records := make([]domain.Record, len(rows))
	for i, row := range rows {
		records[i] = row.toDomain()
	}
	return records, nil
}

// GetByID returns one record. Returns domain.ErrNotFound if it does not exist.
func (r *RecordRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Record, error) {
	return r.getByID(ctx, id, "")
}

// GetByIDForUpdate is GetByID with a row lock held until the surrounding
// transaction ends.
func (r *RecordRepo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Record, error) {
	return r.getByID(ctx, id, "FOR UPDATE")
}

func (r *RecordRepo) getByID(ctx context.Context, id uuid.UUID, lock string) (*domain.Record, error) {
	q := psql.Select(recordColumns...).
		From(recordsTable).
		Where(squirrel.Eq{"id": id})
	if lock != "" {
		q = q.Suffix(lock)
	}
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get record query: %w", err)
	}

	var row recordRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, recordsTable, id)
	}

	rec := row.toDomain()
	return &rec, nil
}

// Create inserts rec. A nil ID is replaced by a new one and a zero CreatedAt
// by the database clock, so restored records keep their original identity.
func (r *RecordRepo) Create(ctx context.Context, rec domain.Record) (*domain.Record, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	var createdAt any = squirrel.Expr("now()")
	if !rec.CreatedAt.IsZero() {
		createdAt = rec.CreatedAt.UTC().Truncate(time.Microsecond)
	}

	sql, args, err := psql.Insert(recordsTable).
		Columns(recordColumns...).
		Values(
			rec.ID, rec.Gardu, rec.Title, rec.Date, rec.Location,
			rec.WorkSupervisor, rec.SafetySupervisor, rec.ManeuverSupervisor,
			rec.Operator, rec.Dispatcher, createdAt,
		).
		Suffix("RETURNING " + strings.Join(recordColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert record query: %w", err)
	}

	var row recordRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, recordsTable, rec.ID)
	}

	created := row.toDomain()
	return &created, nil
}

// Update replaces the editable header fields of record id.
func (r *RecordRepo) Update(ctx context.Context, id uuid.UUID, h domain.RecordHeader) (*domain.Record, error) {
	sql, args, err := psql.Update(recordsTable).
		SetMap(map[string]any{
			"judul_manuver":      h.Title,
			"tanggal":            h.Date,
			"gardu_induk":        h.Location,
			"pengawas_pekerjaan": h.WorkSupervisor,
			"pengawas_k3":        h.SafetySupervisor,
			"pengawas_manuver":   h.ManeuverSupervisor,
			"pelaksana_manuver":  h.Operator,
			"dispatcher":         h.Dispatcher,
		}).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(recordColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update record query: %w", err)
	}

	var row recordRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, recordsTable, id)
	}

	updated := row.toDomain()
	return &updated, nil
}

// Delete removes record id; its items go with it through the foreign key.
// Returns domain.ErrNotFound if nothing was deleted.
func (r *RecordRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, deleteRecordSQL, id)
	if err != nil {
		return postgres.MapError(err, recordsTable, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", recordsTable, id, domain.ErrNotFound)
	}
	return nil
}

const deleteRecordSQL = `DELETE FROM riwayat_manuver WHERE id = $1`

// DeleteMany removes all records in ids in one statement and returns how many
// rows were deleted.
func (r *RecordRepo) DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	sql, args, err := psql.Delete(recordsTable).
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete records query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, recordsTable, uuid.Nil)
	}
	return tag.RowsAffected(), nil
}
