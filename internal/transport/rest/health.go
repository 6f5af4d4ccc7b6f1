package rest

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"
)

const pingTimeout = 3 * time.Second

// Health and component states.
const (
	statusOK       = "ok"
	statusDown     = "down"
	statusDraining = "draining"
)

type dbPinger interface {
	Ping(ctx context.Context) error
}

// sessionCounter reports how many browsing sessions are held in memory.
type sessionCounter interface {
	Len() int
}

// HealthHandler serves the liveness, readiness and health checks.
// After Drain the readiness check fails so that load balancers stop routing
// new requests while in-flight ones finish.
type HealthHandler struct {
	db       dbPinger
	sessions sessionCounter
	version  string
	draining atomic.Bool
}

// NewHealthHandler creates a HealthHandler. sessions may be nil.
func NewHealthHandler(db dbPinger, sessions sessionCounter, version string) *HealthHandler {
	return &HealthHandler{db: db, sessions: sessions, version: version}
}

// Drain marks the process as shutting down.
func (h *HealthHandler) Drain() {
	h.draining.Store(true)
}

// HealthResponse is the JSON response of every health endpoint.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Count   *int   `json:"count,omitempty"`
}

// Live always answers 200 while the process can serve HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: time.Now()})
}

// Ready answers 200 when the database responds and the process is not draining.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.draining.Load() {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: statusDraining, Timestamp: time.Now()})
		return
	}

	db := h.pingDB(r.Context())
	writeJSON(w, statusCode(db.Status), HealthResponse{Status: db.Status, Timestamp: time.Now()})
}

// Health reports every component with the database latency, the number of
// open browsing sessions and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db := h.pingDB(r.Context())
	components := map[string]CompStatus{"database": db}

	if h.sessions != nil {
		n := h.sessions.Len()
		components["sessions"] = CompStatus{Status: statusOK, Count: &n}
	}

	overall := db.Status
	if overall == statusOK && h.draining.Load() {
		overall = statusDraining
	}

	writeJSON(w, statusCode(overall), HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) pingDB(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: statusDown}
	}
	return CompStatus{Status: statusOK, Latency: time.Since(start).String()}
}

func statusCode(status string) int {
	if status == statusOK {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}
