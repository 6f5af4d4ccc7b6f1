// Package riwayat implements browsing, editing and undoable deletion of
// maneuver records.
package riwayat

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/manuver-backend/internal/domain"
	"github.com/heartmarshall/manuver-backend/internal/metrics"
)

type recordRepo interface {
	List(ctx context.Context, scope domain.Scope) ([]domain.Record, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Record, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Record, error)
	Create(ctx context.Context, rec domain.Record) (*domain.Record, error)
	Update(ctx context.Context, id uuid.UUID, h domain.RecordHeader) (*domain.Record, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error)
}

type itemRepo interface {
	ListByRecordID(ctx context.Context, recordID uuid.UUID) ([]domain.ActionItem, error)
	ListByRecordIDs(ctx context.Context, recordIDs []uuid.UUID) (map[uuid.UUID][]domain.ActionItem, error)
	InsertBatch(ctx context.Context, recordID uuid.UUID, items []domain.ActionItem) (int, error)
	DeleteByRecordID(ctx context.Context, recordID uuid.UUID) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Options tunes the service and the sessions it opens.
type Options struct {
	PageSize       int
	SearchDebounce time.Duration
	UndoDepth      int
	BatchWait      time.Duration
}

// Service provides record operations scoped by the caller's substation.
type Service struct {
	records recordRepo
	items   itemRepo
	tx      txManager
	cache   *ItemCache
	metrics *metrics.Metrics
	opts    Options
	log     *slog.Logger
}

// NewService creates a new riwayat Service.
func NewService(
	log *slog.Logger,
	records recordRepo,
	items itemRepo,
	tx txManager,
	m *metrics.Metrics,
	opts Options,
) *Service {
	return &Service{
		records: records,
		items:   items,
		tx:      tx,
		cache:   NewItemCache(items, opts.BatchWait, m),
		metrics: m,
		opts:    opts,
		log:     log.With("service", "riwayat"),
	}
}
