package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sanfusis123/solo-leveling-backend/internal/api"
	"github.com/sanfusis123/solo-leveling-backend/internal/domain"
	"github.com/sanfusis123/solo-leveling-backend/internal/middleware"
)

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	var req api.CreateEventRequest
	if err := loadAndValidateRequestBody(r, &req); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	event, err := h.calendar.Create(r.Context(), user.ID.Hex(), req)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, event)
}

func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	event, err := h.calendar.Get(r.Context(), chi.URLParam(r, "id"), user.ID.Hex())
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	start, end, err := parseTimeRange(r)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	filter := domain.EventFilter{
		Start:    start,
		End:      end,
		Status:   domain.EventStatus(r.URL.Query().Get("status")),
		Category: r.URL.Query().Get("category"),
	}

	events, err := h.calendar.List(r.Context(), user.ID.Hex(), filter)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}

func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	var req api.UpdateEventRequest
	if err := loadAndValidateRequestBody(r, &req); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	event, err := h.calendar.Update(r.Context(), chi.URLParam(r, "id"), user.ID.Hex(), req)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (h *Handler) CompleteEvent(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	event, err := h.calendar.Complete(r.Context(), chi.URLParam(r, "id"), user.ID.Hex())
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (h *Handler) SkipEvent(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	// Body is optional: skipping without a reason is fine.
	var req api.SkipEventRequest
	if r.ContentLength > 0 {
		if err := loadAndValidateRequestBody(r, &req); err != nil {
			writeErrorAndStatusCode(w, err)
			return
		}
	}

	event, err := h.calendar.Skip(r.Context(), chi.URLParam(r, "id"), user.ID.Hex(), req.Reason)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if err := h.calendar.Delete(r.Context(), chi.URLParam(r, "id"), user.ID.Hex()); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
