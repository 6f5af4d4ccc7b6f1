package riwayat

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/heartmarshall/manuver-backend/internal/domain"
	"github.com/heartmarshall/manuver-backend/internal/metrics"
)

const defaultSessionIdleTTL = 30 * time.Minute

// SessionManager holds one Session per user and evicts idle ones.
type SessionManager struct {
	store   sessionStore
	log     *slog.Logger
	metrics *metrics.Metrics
	opts    Options
	idleTTL time.Duration

	mu       sync.Mutex
	sessions map[string]*Session
	closed   bool
}

// NewSessionManager creates a SessionManager. idleTTL <= 0 uses 30 minutes.
func NewSessionManager(log *slog.Logger, store sessionStore, m *metrics.Metrics, opts Options, idleTTL time.Duration) *SessionManager {
	if idleTTL <= 0 {
		idleTTL = defaultSessionIdleTTL
	}
	return &SessionManager{
		store:    store,
		log:      log.With("component", "sessions"),
		metrics:  m,
		opts:     opts,
		idleTTL:  idleTTL,
		sessions: make(map[string]*Session),
	}
}

// Get returns the session of scope's user, opening and loading it on first
// use. A session whose initial load failed is retried on the next Get.
func (m *SessionManager) Get(ctx context.Context, scope domain.Scope) (*Session, error) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil, ErrSessionClosed
	}
	key := scope.Key()
	s, ok := m.sessions[key]
	if ok && s.Scope() != scope {
		// Claims changed since the session was opened.
		s.Close()
		ok = false
	}
	if !ok {
		s = newSession(m.store, scope, m.log, m.metrics, m.opts)
		m.sessions[key] = s
		m.metrics.SessionsActive(len(m.sessions))
		m.log.DebugContext(ctx, "session opened", slog.String("user_id", key))
	}
	m.mu.Unlock()

	if !s.isLoaded() {
		if err := s.Refresh(ctx); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Lookup returns the open session of scope's user without creating one.
func (m *SessionManager) Lookup(scope domain.Scope) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[scope.Key()]
	if !ok || s.Scope() != scope {
		return nil, false
	}
	return s, true
}

// Drop closes and forgets the session of scope's user.
func (m *SessionManager) Drop(scope domain.Scope) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[scope.Key()]; ok {
		s.Close()
		delete(m.sessions, scope.Key())
		m.metrics.SessionsActive(len(m.sessions))
	}
}

// Sweep closes sessions unused since before now minus the idle TTL and
// returns how many were evicted.
func (m *SessionManager) Sweep(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	evicted := 0
	for key, s := range m.sessions {
		if now.Sub(s.idleSince()) < m.idleTTL {
			continue
		}
		s.Close()
		delete(m.sessions, key)
		evicted++
	}
	if evicted > 0 {
		m.metrics.SessionsActive(len(m.sessions))
		m.log.Info("idle sessions evicted", slog.Int("count", evicted))
	}
	return evicted
}

// Run sweeps idle sessions every interval until ctx is done.
func (m *SessionManager) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = m.idleTTL / 2
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			m.Sweep(now)
		}
	}
}

// Len returns the number of live sessions.
func (m *SessionManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Close closes every session. Get fails afterwards.
func (m *SessionManager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key, s := range m.sessions {
		s.Close()
		delete(m.sessions, key)
	}
	m.closed = true
	m.metrics.SessionsActive(0)
}
