package riwayat

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/manuver-backend/internal/domain"
	"github.com/heartmarshall/manuver-backend/internal/metrics"
)

const (
	defaultBatchWait = 2 * time.Millisecond
	// batchTimeout bounds one batched query. The batch runs detached from the
	// caller that opened it because other callers wait on the same result.
	batchTimeout = 15 * time.Second
)

type itemBatchSource interface {
	ListByRecordIDs(ctx context.Context, recordIDs []uuid.UUID) (map[uuid.UUID][]domain.ActionItem, error)
}

// ItemCache coalesces item lookups into one batched query and caches the
// result per record until it is cleared. Loads requested within the batch
// wait window share a single round trip.
type ItemCache struct {
	loader *dataloader.Loader[uuid.UUID, []domain.ActionItem]
}

// NewItemCache creates an ItemCache. wait <= 0 uses a 2ms window.
func NewItemCache(src itemBatchSource, wait time.Duration, m *metrics.Metrics) *ItemCache {
	if wait <= 0 {
		wait = defaultBatchWait
	}
	return &ItemCache{
		loader: dataloader.NewBatchedLoader(
			newItemsBatchFn(src, m),
			dataloader.WithWait[uuid.UUID, []domain.ActionItem](wait),
		),
	}
}

func newItemsBatchFn(src itemBatchSource, m *metrics.Metrics) dataloader.BatchFunc[uuid.UUID, []domain.ActionItem] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.ActionItem] {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), batchTimeout)
		defer cancel()

		grouped, err := src.ListByRecordIDs(ctx, keys)
		m.ItemBatch(len(keys), err)

		results := make([]*dataloader.Result[[]domain.ActionItem], len(keys))
		for i, k := range keys {
			if err != nil {
				results[i] = &dataloader.Result[[]domain.ActionItem]{Error: err}
				continue
			}
			items := grouped[k]
			if items == nil {
				items = []domain.ActionItem{}
			}
			results[i] = &dataloader.Result[[]domain.ActionItem]{Data: items}
		}
		return results
	}
}

// await waits for a loader result or for ctx, whichever comes first. A
// cancelled caller stops waiting; the batch itself keeps running for the
// other callers sharing it.
func await[T any](ctx context.Context, thunk func() T) (T, error) {
	done := make(chan T, 1)
	go func() { done <- thunk() }()

	select {
	case v := <-done:
		return v, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

type manyResult struct {
	values [][]domain.ActionItem
	errs   []error
}

type oneResult struct {
	items []domain.ActionItem
	err   error
}

// ItemsByRecordIDs returns the items of every record in ids. Failed keys are
// evicted so the next call retries them.
func (c *ItemCache) ItemsByRecordIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]domain.ActionItem, error) {
	out := make(map[uuid.UUID][]domain.ActionItem, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	thunk := c.loader.LoadMany(ctx, ids)
	res, err := await(ctx, func() manyResult {
		values, errs := thunk()
		return manyResult{values: values, errs: errs}
	})
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}

	values, errs := res.values, res.errs
	var firstErr error
	for i, id := range ids {
		if i < len(errs) && errs[i] != nil {
			c.loader.Clear(ctx, id)
			if firstErr == nil {
				firstErr = errs[i]
			}
			continue
		}
		out[id] = values[i]
	}
	if firstErr != nil {
		return nil, fmt.Errorf("load items: %w", firstErr)
	}
	return out, nil
}

// Items returns the items of one record.
func (c *ItemCache) Items(ctx context.Context, id uuid.UUID) ([]domain.ActionItem, error) {
	thunk := c.loader.Load(ctx, id)
	res, err := await(ctx, func() oneResult {
		items, err := thunk()
		return oneResult{items: items, err: err}
	})
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}

	items, err := res.items, res.err
	if err != nil {
		c.loader.Clear(ctx, id)
		return nil, fmt.Errorf("load items: %w", err)
	}
	return items, nil
}

// Forget drops the cached items of id.
func (c *ItemCache) Forget(ctx context.Context, id uuid.UUID) {
	c.loader.Clear(ctx, id)
}

// Reset drops every cached entry.
func (c *ItemCache) Reset() {
	c.loader.ClearAll()
}
