package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sanfusis123/solo-leveling-backend/internal/api"
	"github.com/sanfusis123/solo-leveling-backend/internal/domain"
	"github.com/sanfusis123/solo-leveling-backend/internal/middleware"
)

func (h *Handler) CreateMaterial(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	var req api.CreateMaterialRequest
	if err := loadAndValidateRequestBody(r, &req); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	material, err := h.material.Create(r.Context(), user.ID.Hex(), req)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, material)
}

func (h *Handler) GetMaterial(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	material, err := h.material.Get(r.Context(), chi.URLParam(r, "id"), user.ID.Hex())
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, material)
}

func (h *Handler) ListMaterials(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	archived, err := parseBoolParam(r, "archived")
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	filter := domain.MaterialFilter{
		Type:     domain.MaterialType(r.URL.Query().Get("type")),
		Subject:  r.URL.Query().Get("subject"),
		Tag:      r.URL.Query().Get("tag"),
		Archived: archived,
	}

	materials, err := h.material.List(r.Context(), user.ID.Hex(), filter)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, materials)
}

func (h *Handler) ListSharedMaterials(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	materials, err := h.material.ListShared(r.Context(), user.ID.Hex())
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, materials)
}

func (h *Handler) UpdateMaterial(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	var req api.UpdateMaterialRequest
	if err := loadAndValidateRequestBody(r, &req); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	material, err := h.material.Update(r.Context(), chi.URLParam(r, "id"), user.ID.Hex(), req)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, material)
}

func (h *Handler) ShareMaterial(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	var req api.ShareMaterialRequest
	if err := loadAndValidateRequestBody(r, &req); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	material, err := h.material.Share(r.Context(), chi.URLParam(r, "id"), user.ID.Hex(), req.SharedWith)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, material)
}

func (h *Handler) ArchiveMaterial(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	material, err := h.material.Archive(r.Context(), chi.URLParam(r, "id"), user.ID.Hex(), true)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, material)
}

func (h *Handler) UnarchiveMaterial(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	material, err := h.material.Archive(r.Context(), chi.URLParam(r, "id"), user.ID.Hex(), false)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, material)
}

func (h *Handler) DeleteMaterial(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if err := h.material.Delete(r.Context(), chi.URLParam(r, "id"), user.ID.Hex()); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
