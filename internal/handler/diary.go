package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sanfusis123/solo-leveling-backend/internal/api"
	"github.com/sanfusis123/solo-leveling-backend/internal/domain"
	internal_errors "github.com/sanfusis123/solo-leveling-backend/internal/errors"
	"github.com/sanfusis123/solo-leveling-backend/internal/middleware"
)

func (h *Handler) CreateDiaryEntry(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	var req api.CreateDiaryEntryRequest
	if err := loadAndValidateRequestBody(r, &req); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	entry, err := h.diary.Create(r.Context(), user.ID.Hex(), req)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

func (h *Handler) GetDiaryEntry(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	date, err := diaryDate(r)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	entry, err := h.diary.GetByDate(r.Context(), user.ID.Hex(), date)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (h *Handler) ListDiaryEntries(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	q := r.URL.Query()
	filter := domain.DiaryFilter{
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
		Mood:      domain.Mood(q.Get("mood")),
		Tag:       q.Get("tag"),
	}

	entries, err := h.diary.List(r.Context(), user.ID.Hex(), filter)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) UpdateDiaryEntry(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	date, err := diaryDate(r)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	var req api.UpdateDiaryEntryRequest
	if err := loadAndValidateRequestBody(r, &req); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	entry, err := h.diary.UpdateByDate(r.Context(), user.ID.Hex(), date, req)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (h *Handler) DeleteDiaryEntry(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	date, err := diaryDate(r)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	if err := h.diary.DeleteByDate(r.Context(), user.ID.Hex(), date); err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DiaryMoodSummary(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)

	days, err := parseIntParam(r, "days")
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}

	summary, err := h.diary.MoodSummary(r.Context(), user.ID.Hex(), days)
	if err != nil {
		writeErrorAndStatusCode(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func diaryDate(r *http.Request) (string, error) {
	date := chi.URLParam(r, "date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return "", internal_errors.BadRequest("Invalid date, expected YYYY-MM-DD")
	}
	return date, nil
}
