// Package search computes which records match a query through their action
// items, and schedules those computations so that only the latest query wins.
package search

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/manuver-backend/internal/domain"
	"github.com/heartmarshall/manuver-backend/internal/metrics"
	"github.com/heartmarshall/manuver-backend/internal/service/riwayat/bay"
)

// MatchSet is the set of record ids matched through their items.
type MatchSet map[uuid.UUID]struct{}

// Has reports whether id is in the set.
func (m MatchSet) Has(id uuid.UUID) bool {
	_, ok := m[id]
	return ok
}

// IDs returns the members in the order of records.
func (m MatchSet) IDs(records []domain.Record) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(m))
	for _, r := range records {
		if m.Has(r.ID) {
			out = append(out, r.ID)
		}
	}
	return out
}

type itemSource interface {
	// ItemsByRecordIDs fetches the items of all given records in one round trip.
	ItemsByRecordIDs(ctx context.Context, recordIDs []uuid.UUID) (map[uuid.UUID][]domain.ActionItem, error)
}

// Builder computes item-level match sets.
type Builder struct {
	items   itemSource
	log     *slog.Logger
	metrics *metrics.Metrics
}

// NewBuilder creates a Builder reading items from items.
func NewBuilder(log *slog.Logger, items itemSource, m *metrics.Metrics) *Builder {
	return &Builder{
		items:   items,
		log:     log.With("component", "search"),
		metrics: m,
	}
}

// Build returns the records whose items match query. It issues exactly one
// batched item fetch. A failed fetch is logged and yields an empty set, so
// header-field filtering keeps working on its own.
func (b *Builder) Build(ctx context.Context, records []domain.Record, query string) MatchSet {
	q := domain.NormalizeQuery(query)
	if q == "" || len(records) == 0 {
		return MatchSet{}
	}

	recordIDs := make([]uuid.UUID, len(records))
	for i, r := range records {
		recordIDs[i] = r.ID
	}

	itemsByRecord, err := b.items.ItemsByRecordIDs(ctx, recordIDs)
	if err != nil {
		if ctx.Err() != nil {
			b.log.DebugContext(ctx, "item search abandoned", slog.String("query", q))
		} else {
			b.log.WarnContext(ctx, "item search fetch failed",
				slog.String("query", q),
				slog.Int("records", len(recordIDs)),
				slog.String("error", err.Error()),
			)
			b.metrics.SearchBuild(metrics.ResultFailed)
		}
		return MatchSet{}
	}

	matches := make(MatchSet)
	for _, id := range recordIDs {
		if ItemsMatch(itemsByRecord[id], q) {
			matches[id] = struct{}{}
		}
	}
	return matches
}

// ItemsMatch reports whether any item's equipment name, explicit bay, or
// derived bay tag contains the folded query.
func ItemsMatch(items []domain.ActionItem, foldedQuery string) bool {
	for _, it := range items {
		if it.IsSeparator {
			continue
		}
		name := domain.Fold(it.EquipmentName)
		if strings.Contains(name, foldedQuery) ||
			(it.Bay != "" && strings.Contains(domain.Fold(it.Bay), foldedQuery)) ||
			strings.Contains(domain.Fold(bay.Extract(it.EquipmentName)), foldedQuery) {
			return true
		}
	}
	return false
}
