package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sanfusis123/solo-leveling-backend/internal/api"
	"github.com/sanfusis123/solo-leveling-backend/internal/middleware"
)

func (h *Handler) CreateDeck(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	var req api.CreateDeckRequest
	if err := loadAndValidateRequestBody(r, &req); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	deck, err := h.flashcard.CreateDeck(r.Context(), user.ID.Hex(), req)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, deck)
}

func (h *Handler) GetDeck(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	deck, err := h.flashcard.GetDeck(r.Context(), chi.URLParam(r, "id"), user.ID.Hex())
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, deck)
}

func (h *Handler) ListDecks(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	decks, err := h.flashcard.ListDecks(r.Context(), user.ID.Hex(), r.URL.Query().Get("category"))
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, decks)
}

func (h *Handler) UpdateDeck(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	var req api.UpdateDeckRequest
	if err := loadAndValidateRequestBody(r, &req); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	deck, err := h.flashcard.UpdateDeck(r.Context(), chi.URLParam(r, "id"), user.ID.Hex(), req)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, deck)
}

func (h *Handler) DeleteDeck(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if err := h.flashcard.DeleteDeck(r.Context(), chi.URLParam(r, "id"), user.ID.Hex()); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CreateCard(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	var req api.CreateCardRequest
	if err := loadAndValidateRequestBody(r, &req); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	card, err := h.flashcard.CreateCard(r.Context(), chi.URLParam(r, "deckId"), user.ID.Hex(), req)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, card)
}

func (h *Handler) ListCards(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	dueOnly, err := parseBoolParam(r, "due_only")
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	cards, err := h.flashcard.ListCards(r.Context(), chi.URLParam(r, "deckId"), user.ID.Hex(), dueOnly != nil && *dueOnly)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cards)
}

func (h *Handler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	var req api.UpdateCardRequest
	if err := loadAndValidateRequestBody(r, &req); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	card, err := h.flashcard.UpdateCard(r.Context(), chi.URLParam(r, "id"), user.ID.Hex(), req)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

func (h *Handler) ReviewCard(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	var req api.ReviewCardRequest
	if err := loadAndValidateRequestBody(r, &req); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	card, err := h.flashcard.ReviewCard(r.Context(), chi.URLParam(r, "id"), user.ID.Hex(), req.Grade)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

func (h *Handler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if err := h.flashcard.DeleteCard(r.Context(), chi.URLParam(r, "id"), user.ID.Hex()); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
