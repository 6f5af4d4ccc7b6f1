package rest

import (
	"net/http"

	"github.com/heartmarshall/manuver-backend/internal/domain"
)

type queryRequest struct {
	Query string `json:"query"`
}

type bayRequest struct {
	Bay string `json:"bay"`
}

type sortRequest struct {
	Order string `json:"order"`
}

type undoResponse struct {
	Restored recordResponse `json:"restored"`
	View     viewResponse   `json:"view"`
}

// View handles GET /api/session.
func (h *RiwayatHandler) View(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toViewResponse(s.View()))
}

// SetQuery handles POST /api/session/query.
func (h *RiwayatHandler) SetQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	v, err := s.SetQuery(req.Query)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toViewResponse(v))
}

// SetBayFilter handles POST /api/session/bay. An empty bay clears the filter.
func (h *RiwayatHandler) SetBayFilter(w http.ResponseWriter, r *http.Request) {
	var req bayRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	v, err := s.SetBayFilter(req.Bay)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toViewResponse(v))
}

// SetSortOrder handles POST /api/session/sort.
func (h *RiwayatHandler) SetSortOrder(w http.ResponseWriter, r *http.Request) {
	var req sortRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	v, err := s.SetSortOrder(domain.SortOrder(req.Order))
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toViewResponse(v))
}

// LoadMore handles POST /api/session/more.
func (h *RiwayatHandler) LoadMore(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	v, err := s.LoadMore()
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toViewResponse(v))
}

// Refresh handles POST /api/session/refresh.
func (h *RiwayatHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	if err := s.Refresh(r.Context()); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toViewResponse(s.View()))
}

// Undo handles POST /api/session/undo.
func (h *RiwayatHandler) Undo(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	rec, err := s.Undo(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, undoResponse{
		Restored: toRecordResponse(*rec),
		View:     toViewResponse(s.View()),
	})
}
