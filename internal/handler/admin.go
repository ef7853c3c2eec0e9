package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sanfusis123/solo-leveling-backend/internal/api"
	"github.com/sanfusis123/solo-leveling-backend/internal/domain"
	"github.com/sanfusis123/solo-leveling-backend/internal/middleware"
)

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	skip, _ := strconv.ParseInt(q.Get("skip"), 10, 64)
	limit, err := strconv.ParseInt(q.Get("limit"), 10, 64)
	if err != nil || limit <= 0 || limit > 100 {
		limit = 50
	}

	users, err := h.admin.ListUsers(r.Context(), skip, limit, domain.Status(q.Get("status")))
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.admin.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) ActivateUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.admin.Activate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) DeactivateUser(w http.ResponseWriter, r *http.Request) {
	admin := middleware.GetUserFromContext(r)
	user, err := h.admin.Deactivate(r.Context(), admin.ID.Hex(), chi.URLParam(r, "id"))
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) PromoteUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.admin.Promote(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) DemoteUser(w http.ResponseWriter, r *http.Request) {
	admin := middleware.GetUserFromContext(r)
	user, err := h.admin.Demote(r.Context(), admin.ID.Hex(), chi.URLParam(r, "id"))
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) SetUserPassword(w http.ResponseWriter, r *http.Request) {
	var req api.ChangePasswordRequest
	if err := loadAndValidateRequestBody(r, &req); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	if err := h.admin.SetPassword(r.Context(), chi.URLParam(r, "id"), req.NewPassword); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.MessageResponse{Message: "Password updated"})
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	admin := middleware.GetUserFromContext(r)
	if err := h.admin.DeleteUser(r.Context(), admin.ID.Hex(), chi.URLParam(r, "id")); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.admin.Stats(r.Context())
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
