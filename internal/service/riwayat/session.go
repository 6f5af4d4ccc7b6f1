package riwayat

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/manuver-backend/internal/domain"
	"github.com/heartmarshall/manuver-backend/internal/metrics"
	"github.com/heartmarshall/manuver-backend/internal/service/riwayat/bay"
	"github.com/heartmarshall/manuver-backend/internal/service/riwayat/history"
	"github.com/heartmarshall/manuver-backend/internal/service/riwayat/pipeline"
	"github.com/heartmarshall/manuver-backend/internal/service/riwayat/search"
	"github.com/heartmarshall/manuver-backend/pkg/ctxutil"
)

var (
	// ErrSessionClosed is returned by every mutating Session method after Close.
	ErrSessionClosed = errors.New("riwayat: session closed")
	// ErrBusy is returned when a clear-all is already running.
	ErrBusy = fmt.Errorf("riwayat: operation in progress: %w", domain.ErrConflict)
)

type sessionStore interface {
	List(ctx context.Context) ([]domain.Record, error)
	ItemsByRecordIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]domain.ActionItem, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.RecordWithItems, error)
	Restore(ctx context.Context, snapshot domain.RecordWithItems) (*domain.Record, error)
	ClearAll(ctx context.Context, input ClearInput) ([]uuid.UUID, error)
	ResetCache()
}

// View is what a client displays for a session.
type View struct {
	Records []domain.Record
	Total   int
	HasMore bool
	// Bays holds the bay tags of the displayed records that have been indexed.
	Bays    map[uuid.UUID][]string
	BayTags []string

	Query     string
	Searching bool
	BayFilter string
	Sort      domain.SortOrder
	Pages     int

	CanUndo     bool
	Undoing     bool
	UndoDepth   int
	RecordCount int
}

// Session is one user's browsing state over their record list: query, bay
// filter, sort order, page window and undo history. Item matches for the
// query are computed in the background; only the result for the latest query
// is ever applied.
type Session struct {
	store    sessionStore
	scope    domain.Scope
	log      *slog.Logger
	metrics  *metrics.Metrics
	builder  *search.Builder
	debounce *search.Debouncer
	history  *history.Stack
	bays     *bay.Index
	pageSize int

	mu           sync.Mutex
	records      []domain.Record
	loaded       bool
	query        string
	matches      search.MatchSet
	matchesQuery string
	searching    bool
	bayFilter    string
	sort         domain.SortOrder
	pages        int
	clearing     bool
	closed       bool
	lastUsed     time.Time
}

func newSession(store sessionStore, scope domain.Scope, log *slog.Logger, m *metrics.Metrics, opts Options) *Session {
	s := &Session{
		store:    store,
		scope:    scope,
		log:      log.With("user_id", scope.UserID.String()),
		metrics:  m,
		debounce: search.NewDebouncer(opts.SearchDebounce),
		bays:     bay.NewIndex(),
		pageSize: opts.PageSize,
		sort:     domain.SortDesc,
		pages:    1,
		lastUsed: time.Now(),
	}
	s.builder = search.NewBuilder(s.log, store, m)
	s.history = history.New(s.restore, opts.UndoDepth)
	return s
}

// Scope returns the data scope the session was opened for.
func (s *Session) Scope() domain.Scope {
	return s.scope
}

func (s *Session) scoped(ctx context.Context) context.Context {
	return ctxutil.WithScope(ctx, s.scope)
}

// Refresh reloads the record list and rebuilds the bay index from one batched
// item fetch. On failure the current list is kept and the error returned.
func (s *Session) Refresh(ctx context.Context) error {
	if s.isClosed() {
		return ErrSessionClosed
	}
	ctx = s.scoped(ctx)

	records, err := s.store.List(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "refresh records failed", slog.String("error", err.Error()))
		return err
	}

	s.store.ResetCache()
	ids := make([]uuid.UUID, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}
	items, itemsErr := s.store.ItemsByRecordIDs(ctx, ids)
	if itemsErr != nil {
		s.log.WarnContext(ctx, "bay index fetch failed", slog.String("error", itemsErr.Error()))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}

	s.records = records
	s.loaded = true
	s.bays.Reset()
	if itemsErr == nil {
		for _, id := range ids {
			s.bays.Set(id, items[id])
		}
	}
	s.lastUsed = time.Now()
	s.scheduleSearchLocked()
	return nil
}

// View computes the current display window.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastUsed = time.Now()
	return s.viewLocked()
}

func (s *Session) viewLocked() View {
	var matches search.MatchSet
	folded := domain.NormalizeQuery(s.query)
	if folded != "" && folded == s.matchesQuery {
		matches = s.matches
	}

	bays := s.bays.Snapshot()
	res := pipeline.Apply(s.records, pipeline.Options{
		Query:     s.query,
		Matches:   matches,
		Bays:      bays,
		BayFilter: s.bayFilter,
		Sort:      s.sort,
		PageSize:  s.pageSize,
		Pages:     s.pages,
	})

	shown := make(map[uuid.UUID][]string, len(res.Records))
	for _, r := range res.Records {
		if tags, ok := bays[r.ID]; ok {
			shown[r.ID] = tags
		}
	}

	return View{
		Records:     res.Records,
		Total:       res.Total,
		HasMore:     res.HasMore,
		Bays:        shown,
		BayTags:     s.bays.Tags(),
		Query:       s.query,
		Searching:   s.searching,
		BayFilter:   s.bayFilter,
		Sort:        s.sort,
		Pages:       s.pages,
		CanUndo:     s.history.CanUndo(),
		Undoing:     s.history.Undoing(),
		UndoDepth:   s.history.Len(),
		RecordCount: len(s.records),
	}
}

// SetQuery replaces the search query and resets the page window. Item
// matches for a non-empty query are computed after the debounce delay.
func (s *Session) SetQuery(query string) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return View{}, ErrSessionClosed
	}

	s.query = query
	s.pages = 1
	s.lastUsed = time.Now()
	s.scheduleSearchLocked()
	return s.viewLocked(), nil
}

// scheduleSearchLocked starts a debounced match computation for the current
// query over a snapshot of the current records.
func (s *Session) scheduleSearchLocked() {
	folded := domain.NormalizeQuery(s.query)
	if folded == "" {
		s.debounce.Cancel()
		s.matches = nil
		s.matchesQuery = ""
		s.searching = false
		return
	}

	snapshot := slices.Clone(s.records)
	s.searching = true
	s.debounce.Trigger(func(ctx context.Context, gen uint64) {
		set := s.builder.Build(s.scoped(ctx), snapshot, folded)
		s.applyMatches(gen, folded, set)
	})
}

func (s *Session) applyMatches(gen uint64, folded string, set search.MatchSet) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || !s.debounce.IsCurrent(gen) {
		s.metrics.SearchBuild(metrics.ResultStale)
		return
	}
	s.matches = set
	s.matchesQuery = folded
	s.searching = false
	s.metrics.SearchBuild(metrics.ResultApplied)
}

// SetBayFilter restricts the view to records carrying tag. An empty tag
// removes the filter.
func (s *Session) SetBayFilter(tag string) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return View{}, ErrSessionClosed
	}

	s.bayFilter = tag
	s.pages = 1
	s.lastUsed = time.Now()
	return s.viewLocked(), nil
}

// SetSortOrder orders the view by record date.
func (s *Session) SetSortOrder(order domain.SortOrder) (View, error) {
	if !order.IsValid() {
		return View{}, domain.NewValidationError("sort", "must be asc or desc")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return View{}, ErrSessionClosed
	}

	s.sort = order
	s.lastUsed = time.Now()
	return s.viewLocked(), nil
}

// LoadMore reveals one more page.
func (s *Session) LoadMore() (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return View{}, ErrSessionClosed
	}

	s.pages++
	s.lastUsed = time.Now()
	return s.viewLocked(), nil
}

// DeleteRecord deletes id in the store and, once confirmed, removes it from
// the list and pushes it onto the undo history.
func (s *Session) DeleteRecord(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	known := slices.ContainsFunc(s.records, func(r domain.Record) bool { return r.ID == id })
	s.mu.Unlock()
	if !known {
		return fmt.Errorf("record %s: %w", id, domain.ErrNotFound)
	}

	snapshot, err := s.store.Delete(s.scoped(ctx), id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.removeLocked(id)
	s.lastUsed = time.Now()
	s.mu.Unlock()

	s.history.RecordDeletion(*snapshot)
	return nil
}

func (s *Session) removeLocked(ids ...uuid.UUID) {
	drop := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
		s.bays.Invalidate(id)
		delete(s.matches, id)
	}
	s.records = slices.DeleteFunc(s.records, func(r domain.Record) bool {
		_, ok := drop[r.ID]
		return ok
	})
}

// Undo restores the most recent deletion. It returns history.ErrEmpty or
// history.ErrBusy when there is nothing to do.
func (s *Session) Undo(ctx context.Context) (*domain.Record, error) {
	if s.isClosed() {
		return nil, ErrSessionClosed
	}

	entry, err := s.history.Undo(s.scoped(ctx))
	switch {
	case errors.Is(err, history.ErrEmpty):
		s.metrics.Undo(metrics.ResultEmpty)
		return nil, err
	case errors.Is(err, history.ErrBusy):
		s.metrics.Undo(metrics.ResultBusy)
		return nil, err
	case err != nil:
		s.metrics.Undo(metrics.ResultFailed)
		s.log.WarnContext(ctx, "undo failed", slog.String("error", err.Error()))
		return nil, err
	}

	s.metrics.Undo(metrics.ResultOK)
	rec := entry.Item.Record
	return &rec, nil
}

// restore is the history callback: it re-creates the record in the store and
// puts it back at its place in the list.
func (s *Session) restore(ctx context.Context, item domain.RecordWithItems) error {
	if _, err := s.store.Restore(ctx, item); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !slices.ContainsFunc(s.records, func(r domain.Record) bool { return r.ID == item.Record.ID }) {
		i := slices.IndexFunc(s.records, func(r domain.Record) bool {
			return compareCreated(item.Record, r) < 0
		})
		if i < 0 {
			i = len(s.records)
		}
		s.records = slices.Insert(s.records, i, item.Record)
	}
	s.bays.Set(item.Record.ID, item.Items)
	s.lastUsed = time.Now()
	s.scheduleSearchLocked()
	return nil
}

// compareCreated orders records the way the store lists them: newest first,
// ties by id.
func compareCreated(a, b domain.Record) int {
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	return bytes.Compare(a.ID[:], b.ID[:])
}

// ClearAll deletes every record in the list in one transaction. Cleared
// records are not added to the undo history.
func (s *Session) ClearAll(ctx context.Context) (int, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return 0, ErrSessionClosed
	}
	if s.clearing {
		s.mu.Unlock()
		return 0, ErrBusy
	}
	if len(s.records) == 0 {
		s.mu.Unlock()
		return 0, nil
	}
	s.clearing = true
	ids := make([]uuid.UUID, len(s.records))
	for i, r := range s.records {
		ids[i] = r.ID
	}
	s.mu.Unlock()

	removed, err := s.store.ClearAll(s.scoped(ctx), ClearInput{RecordIDs: ids})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearing = false
	if err != nil {
		return 0, err
	}
	s.removeLocked(removed...)
	s.lastUsed = time.Now()
	s.scheduleSearchLocked()
	return len(removed), nil
}

// Close abandons pending searches. In-flight results are discarded.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.debounce.Stop()
}

func (s *Session) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Session) isLoaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUsed
}
