package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sanfusis123/solo-leveling-backend/internal/api"
	"github.com/sanfusis123/solo-leveling-backend/internal/domain"
	"github.com/sanfusis123/solo-leveling-backend/internal/middleware"
)

func (h *Handler) CreateFunContent(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	var req api.CreateFunContentRequest
	if err := loadAndValidateRequestBody(r, &req); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	content, err := h.funzone.Create(r.Context(), user.ID.Hex(), req)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, content)
}

func (h *Handler) GetFunContent(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	content, err := h.funzone.Get(r.Context(), chi.URLParam(r, "id"), user.ID.Hex())
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, content)
}

func (h *Handler) ListFunContent(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	public, err := parseBoolParam(r, "is_public")
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	filter := domain.FunContentFilter{
		Type:     domain.ContentType(r.URL.Query().Get("type")),
		Category: r.URL.Query().Get("category"),
		Public:   public,
	}

	items, err := h.funzone.List(r.Context(), user.ID.Hex(), filter)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) PopularFunContent(w http.ResponseWriter, r *http.Request) {
	items, err := h.funzone.Popular(r.Context())
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) LikeFunContent(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	likes, err := h.funzone.Like(r.Context(), chi.URLParam(r, "id"), user.ID.Hex())
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, api.LikeResponse{Likes: likes})
}

func (h *Handler) UpdateFunContent(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	var req api.UpdateFunContentRequest
	if err := loadAndValidateRequestBody(r, &req); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	content, err := h.funzone.Update(r.Context(), chi.URLParam(r, "id"), user.ID.Hex(), req)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, content)
}

func (h *Handler) DeleteFunContent(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if err := h.funzone.Delete(r.Context(), chi.URLParam(r, "id"), user.ID.Hex()); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
