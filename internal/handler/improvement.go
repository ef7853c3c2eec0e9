package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sanfusis123/solo-leveling-backend/internal/api"
	"github.com/sanfusis123/solo-leveling-backend/internal/domain"
	"github.com/sanfusis123/solo-leveling-backend/internal/middleware"
)

func (h *Handler) CreateLog(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	var req api.CreateLogRequest
	if err := loadAndValidateRequestBody(r, &req); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	log, err := h.improvement.Create(r.Context(), user.ID.Hex(), req)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, log)
}

func (h *Handler) GetLog(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	log, err := h.improvement.Get(r.Context(), chi.URLParam(r, "id"), user.ID.Hex())
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, log)
}

func (h *Handler) ListLogs(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	resolved, err := parseBoolParam(r, "is_resolved")
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	filter := domain.LogFilter{
		Type:       domain.LogType(r.URL.Query().Get("type")),
		Category:   r.URL.Query().Get("category"),
		IsResolved: resolved,
	}

	logs, err := h.improvement.List(r.Context(), user.ID.Hex(), filter)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, logs)
}

func (h *Handler) UpdateLog(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	var req api.UpdateLogRequest
	if err := loadAndValidateRequestBody(r, &req); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	log, err := h.improvement.Update(r.Context(), chi.URLParam(r, "id"), user.ID.Hex(), req)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, log)
}

func (h *Handler) AddProgressNote(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	var req api.ProgressNoteRequest
	if err := loadAndValidateRequestBody(r, &req); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	log, err := h.improvement.AddProgressNote(r.Context(), chi.URLParam(r, "id"), user.ID.Hex(), req)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, log)
}

func (h *Handler) DeleteLog(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if err := h.improvement.Delete(r.Context(), chi.URLParam(r, "id"), user.ID.Hex()); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
