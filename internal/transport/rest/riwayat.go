package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/manuver-backend/internal/domain"
	"github.com/heartmarshall/manuver-backend/internal/service/riwayat"
	"github.com/heartmarshall/manuver-backend/pkg/ctxutil"
)

// riwayatService defines the record operations RiwayatHandler needs.
type riwayatService interface {
	List(ctx context.Context) ([]domain.Record, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.RecordWithItems, error)
	Create(ctx context.Context, input riwayat.SaveRecordInput) (*domain.RecordWithItems, error)
	Update(ctx context.Context, id uuid.UUID, input riwayat.SaveRecordInput) (*domain.RecordWithItems, error)
	Report(ctx context.Context, id uuid.UUID) (string, error)
}

// sessionManager hands out the caller's browsing session.
type sessionManager interface {
	Get(ctx context.Context, scope domain.Scope) (*riwayat.Session, error)
	Lookup(scope domain.Scope) (*riwayat.Session, bool)
}

// RiwayatHandler serves record CRUD and the per-user browsing session.
type RiwayatHandler struct {
	svc      riwayatService
	sessions sessionManager
	log      *slog.Logger
}

// NewRiwayatHandler creates a RiwayatHandler.
func NewRiwayatHandler(svc riwayatService, sessions sessionManager, logger *slog.Logger) *RiwayatHandler {
	return &RiwayatHandler{
		svc:      svc,
		sessions: sessions,
		log:      logger.With("handler", "riwayat"),
	}
}

// List handles GET /api/riwayat.
// It returns every visible record, newest first, without session state.
func (h *RiwayatHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	out := make([]recordResponse, len(records))
	for i, rec := range records {
		out[i] = toRecordResponse(rec)
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /api/riwayat/{id}.
func (h *RiwayatHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	rec, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecordDetail(rec))
}

// Report handles GET /api/riwayat/{id}/report.
func (h *RiwayatHandler) Report(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	text, err := h.svc.Report(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(text)) //nolint:errcheck
}

// Create handles POST /api/riwayat.
func (h *RiwayatHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req saveRecordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	rec, err := h.svc.Create(r.Context(), req.toInput())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	h.refreshSession(r.Context())
	writeJSON(w, http.StatusCreated, toRecordDetail(rec))
}

// Update handles PUT /api/riwayat/{id}.
func (h *RiwayatHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	var req saveRecordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	rec, err := h.svc.Update(r.Context(), id, req.toInput())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	h.refreshSession(r.Context())
	writeJSON(w, http.StatusOK, toRecordDetail(rec))
}

// Delete handles DELETE /api/riwayat/{id}.
// The deletion goes through the caller's session so that it can be undone.
func (h *RiwayatHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	s, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := s.DeleteRecord(r.Context(), id); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toViewResponse(s.View()))
}

// ClearAll handles DELETE /api/riwayat.
// Every record in the caller's session list is removed; this is not undoable.
func (h *RiwayatHandler) ClearAll(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	n, err := s.ClearAll(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"deleted": n})
}

// session returns the caller's session, writing the error response if it
// cannot be opened.
func (h *RiwayatHandler) session(w http.ResponseWriter, r *http.Request) (*riwayat.Session, bool) {
	scope, ok := ctxutil.ScopeFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return nil, false
	}
	s, err := h.sessions.Get(r.Context(), scope)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return nil, false
	}
	return s, true
}

// refreshSession reloads the caller's session list after a write, if one is
// open. Failures only leave the list stale.
func (h *RiwayatHandler) refreshSession(ctx context.Context) {
	scope, ok := ctxutil.ScopeFromCtx(ctx)
	if !ok {
		return
	}
	s, ok := h.sessions.Lookup(scope)
	if !ok {
		return
	}
	if err := s.Refresh(ctx); err != nil {
		h.log.WarnContext(ctx, "session refresh after write failed", slog.String("error", err.Error()))
	}
}
