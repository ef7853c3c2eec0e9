package handler

import (
	"net/http"

	"github.com/sanfusis123/solo-leveling-backend/internal/middleware"
)

func (h *Handler) TimeSpentBySkill(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	start, end, err := parseTimeRange(r)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	rows, err := h.analytics.TimeSpentBySkill(r.Context(), user.ID.Hex(), start, end)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *Handler) TimeSpentByProject(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	start, end, err := parseTimeRange(r)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	rows, err := h.analytics.TimeSpentByProject(r.Context(), user.ID.Hex(), start, end)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *Handler) ProductivityOverview(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	start, end, err := parseTimeRange(r)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	overview, err := h.analytics.ProductivityOverview(r.Context(), user.ID.Hex(), start, end)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, overview)
}
