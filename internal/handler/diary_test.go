package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/sanfusis123/solo-leveling-backend/internal/api"
	"github.com/sanfusis123/solo-leveling-backend/internal/domain"
	"github.com/sanfusis123/solo-leveling-backend/internal/middleware"
)

type MockDiaryService struct {
	CreateFunc       func(ctx context.Context, userID string, req api.CreateDiaryEntryRequest) (domain.DiaryEntry, error)
	GetByDateFunc    func(ctx context.Context, userID, date string) (domain.DiaryEntry, error)
	ListFunc         func(ctx context.Context, userID string, f domain.DiaryFilter) ([]domain.DiaryEntry, error)
	UpdateByDateFunc func(ctx context.Context, userID, date string, req api.UpdateDiaryEntryRequest) (domain.DiaryEntry, error)
	DeleteByDateFunc func(ctx context.Context, userID, date string) error
	MoodSummaryFunc  func(ctx context.Context, userID string, days int) (domain.MoodSummary, error)
}

func (m *MockDiaryService) Create(ctx context.Context, userID string, req api.CreateDiaryEntryRequest) (domain.DiaryEntry, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, userID, req)
	}
	return domain.DiaryEntry{}, nil
}

func (m *MockDiaryService) GetByDate(ctx context.Context, userID, date string) (domain.DiaryEntry, error) {
	if m.GetByDateFunc != nil {
		return m.GetByDateFunc(ctx, userID, date)
	}
	return domain.DiaryEntry{}, nil
}

func (m *MockDiaryService) List(ctx context.Context, userID string, f domain.DiaryFilter) ([]domain.DiaryEntry, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID, f)
	}
	return []domain.DiaryEntry{}, nil
}

func (m *MockDiaryService) UpdateByDate(ctx context.Context, userID, date string, req api.UpdateDiaryEntryRequest) (domain.DiaryEntry, error) {
	if m.UpdateByDateFunc != nil {
		return m.UpdateByDateFunc(ctx, userID, date, req)
	}
	return domain.DiaryEntry{}, nil
}

func (m *MockDiaryService) DeleteByDate(ctx context.Context, userID, date string) error {
	if m.DeleteByDateFunc != nil {
		return m.DeleteByDateFunc(ctx, userID, date)
	}
	return nil
}

func (m *MockDiaryService) MoodSummary(ctx context.Context, userID string, days int) (domain.MoodSummary, error) {
	if m.MoodSummaryFunc != nil {
		return m.MoodSummaryFunc(ctx, userID, days)
	}
	return domain.MoodSummary{}, nil
}

func diaryHandler(diary *MockDiaryService) *Handler {
	return New(nil, nil, nil, nil, nil, nil, nil, diary, nil, nil, nil)
}

func authedRequest(method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	user := domain.User{ID: bson.NewObjectID(), Status: domain.StatusActive}
	return req.WithContext(context.WithValue(req.Context(), middleware.UserKey, &user))
}

func TestDiaryMoodSummaryHandler(t *testing.T) {
	t.Run("passes the days window through", func(t *testing.T) {
		h := diaryHandler(&MockDiaryService{
			MoodSummaryFunc: func(ctx context.Context, userID string, days int) (domain.MoodSummary, error) {
				assert.Equal(t, 7, days)
				return domain.MoodSummary{Days: 7, Counts: map[domain.Mood]int64{domain.MoodGood: 2}}, nil
			},
		})

		rec := httptest.NewRecorder()
		h.DiaryMoodSummary(rec, authedRequest(http.MethodGet, "/api/v1/diary/mood-summary?days=7"))

		assert.Equal(t, http.StatusOK, rec.Code)

		var summary domain.MoodSummary
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&summary))
		assert.Equal(t, 7, summary.Days)
	})

	t.Run("absent days means the service default", func(t *testing.T) {
		h := diaryHandler(&MockDiaryService{
			MoodSummaryFunc: func(ctx context.Context, userID string, days int) (domain.MoodSummary, error) {
				assert.Equal(t, 0, days)
				return domain.MoodSummary{}, nil
			},
		})

		rec := httptest.NewRecorder()
		h.DiaryMoodSummary(rec, authedRequest(http.MethodGet, "/api/v1/diary/mood-summary"))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("non-numeric days is rejected", func(t *testing.T) {
		called := false
		h := diaryHandler(&MockDiaryService{
			MoodSummaryFunc: func(ctx context.Context, userID string, days int) (domain.MoodSummary, error) {
				called = true
				return domain.MoodSummary{}, nil
			},
		})

		rec := httptest.NewRecorder()
		h.DiaryMoodSummary(rec, authedRequest(http.MethodGet, "/api/v1/diary/mood-summary?days=abc"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, called)
	})
}
