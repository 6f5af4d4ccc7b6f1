package riwayat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/manuver-backend/internal/domain"
	"github.com/heartmarshall/manuver-backend/internal/service/riwayat/report"
	"github.com/heartmarshall/manuver-backend/pkg/ctxutil"
)

// List returns every record visible to the caller, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Record, error) {
	scope, ok := ctxutil.ScopeFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	records, err := s.records.List(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return records, nil
}

// ItemsByRecordIDs returns the items of the given records in one batched
// fetch. Callers pass ids they obtained from List.
func (s *Service) ItemsByRecordIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]domain.ActionItem, error) {
	return s.cache.ItemsByRecordIDs(ctx, ids)
}

// Get returns one record header with its ordered items. Header and items are
// loaded concurrently.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.RecordWithItems, error) {
	scope, ok := ctxutil.ScopeFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var (
		rec   *domain.Record
		items []domain.ActionItem
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rec, err = s.records.GetByID(gctx, id)
		if err != nil {
			return fmt.Errorf("get record: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		items, err = s.cache.Items(gctx, id)
		if err != nil {
			return fmt.Errorf("get items: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !scope.Allows(rec.Gardu) {
		return nil, fmt.Errorf("record %s: %w", id, domain.ErrNotFound)
	}
	return &domain.RecordWithItems{Record: *rec, Items: items}, nil
}

// Create saves a new record with its items in one transaction.
func (s *Service) Create(ctx context.Context, input SaveRecordInput) (*domain.RecordWithItems, error) {
	scope, ok := ctxutil.ScopeFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if scope.Gardu == "" {
		return nil, domain.NewValidationError("gardu", "master account must act through a substation")
	}

	rec := domain.Record{ID: uuid.New(), Gardu: scope.Gardu}
	rec.Apply(input.header())
	items := normalizeItems(rec.ID, input.Items)

	var created *domain.Record
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.records.Create(txCtx, rec)
		if err != nil {
			return fmt.Errorf("create record: %w", err)
		}
		if _, err := s.items.InsertBatch(txCtx, created.ID, items); err != nil {
			return fmt.Errorf("insert items: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "record created",
		slog.String("record_id", created.ID.String()),
		slog.String("gardu", created.Gardu),
		slog.Int("items", len(items)),
	)
	return &domain.RecordWithItems{Record: *created, Items: items}, nil
}

// Update replaces the header and the whole item list of record id in one
// transaction. Items are renumbered and empty rows are dropped.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input SaveRecordInput) (*domain.RecordWithItems, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.authorize(ctx, id); err != nil {
		return nil, err
	}

	items := normalizeItems(id, input.Items)

	var updated *domain.Record
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = s.records.Update(txCtx, id, input.header())
		if err != nil {
			return fmt.Errorf("update record: %w", err)
		}
		if _, err := s.items.DeleteByRecordID(txCtx, id); err != nil {
			return fmt.Errorf("delete items: %w", err)
		}
		if _, err := s.items.InsertBatch(txCtx, id, items); err != nil {
			return fmt.Errorf("insert items: %w", err)
		}
		return nil
	})
	s.cache.Forget(ctx, id)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "record updated",
		slog.String("record_id", id.String()),
		slog.Int("items", len(items)),
	)
	return &domain.RecordWithItems{Record: *updated, Items: items}, nil
}

// Delete removes record id and returns what was deleted, so that it can be
// restored later. The snapshot is read under a row lock in the same
// transaction as the delete.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (*domain.RecordWithItems, error) {
	scope, ok := ctxutil.ScopeFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var snapshot *domain.RecordWithItems
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		rec, err := s.records.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return fmt.Errorf("get record: %w", err)
		}
		if !scope.Allows(rec.Gardu) {
			return fmt.Errorf("record %s: %w", id, domain.ErrNotFound)
		}
		items, err := s.items.ListByRecordID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get items: %w", err)
		}
		if err := s.records.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete record: %w", err)
		}
		snapshot = &domain.RecordWithItems{Record: *rec, Items: items}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.cache.Forget(ctx, id)

	s.log.InfoContext(ctx, "record deleted", slog.String("record_id", id.String()))
	return snapshot, nil
}

// Restore re-creates a deleted record with its original id, creation time
// and items in one transaction.
func (s *Service) Restore(ctx context.Context, snapshot domain.RecordWithItems) (*domain.Record, error) {
	scope, ok := ctxutil.ScopeFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !scope.Allows(snapshot.Record.Gardu) {
		return nil, domain.ErrForbidden
	}

	var restored *domain.Record
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		restored, err = s.records.Create(txCtx, snapshot.Record)
		if err != nil {
			return fmt.Errorf("restore record: %w", err)
		}
		if _, err := s.items.InsertBatch(txCtx, restored.ID, snapshot.Items); err != nil {
			return fmt.Errorf("restore items: %w", err)
		}
		return nil
	})
	s.cache.Forget(ctx, snapshot.Record.ID)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("record %s already restored: %w", snapshot.Record.ID, domain.ErrConflict)
		}
		return nil, err
	}

	s.log.InfoContext(ctx, "record restored", slog.String("record_id", restored.ID.String()))
	return restored, nil
}

// ClearAll removes the given records in one transaction, in statements of at
// most clearChunkSize ids. Records outside the caller's scope are skipped. It
// returns the ids that were removed.
func (s *Service) ClearAll(ctx context.Context, input ClearInput) ([]uuid.UUID, error) {
	scope, ok := ctxutil.ScopeFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if len(input.RecordIDs) == 0 {
		return []uuid.UUID{}, nil
	}

	visible, err := s.records.List(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	allowed := make(map[uuid.UUID]struct{}, len(visible))
	for _, r := range visible {
		allowed[r.ID] = struct{}{}
	}
	ids := make([]uuid.UUID, 0, len(input.RecordIDs))
	for _, id := range input.RecordIDs {
		if _, ok := allowed[id]; ok {
			ids = append(ids, id)
		}
	}

	var n int64
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for chunk := range slices.Chunk(ids, clearChunkSize) {
			deleted, err := s.records.DeleteMany(txCtx, chunk)
			if err != nil {
				return err
			}
			n += deleted
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("clear records: %w", err)
	}
	for _, id := range ids {
		s.cache.Forget(ctx, id)
	}

	s.log.InfoContext(ctx, "records cleared",
		slog.Int("requested", len(input.RecordIDs)),
		slog.Int64("deleted", n),
	)
	return ids, nil
}

// Report renders record id as the chat report text.
func (s *Service) Report(ctx context.Context, id uuid.UUID) (string, error) {
	rec, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return report.Render(rec.Record, rec.Items), nil
}

// ResetCache drops all cached items.
func (s *Service) ResetCache() {
	s.cache.Reset()
}

// authorize loads the header of id and checks it is visible to the caller.
func (s *Service) authorize(ctx context.Context, id uuid.UUID) (*domain.Record, error) {
	scope, ok := ctxutil.ScopeFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	rec, err := s.records.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get record: %w", err)
	}
	if !scope.Allows(rec.Gardu) {
		return nil, fmt.Errorf("record %s: %w", id, domain.ErrNotFound)
	}
	return rec, nil
}
