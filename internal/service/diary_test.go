package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/sanfusis123/solo-leveling-backend/internal/api"
	"github.com/sanfusis123/solo-leveling-backend/internal/domain"
	internal_errors "github.com/sanfusis123/solo-leveling-backend/internal/errors"
)

type MockDiaryStorage struct {
	InsertDiaryEntryFunc       func(ctx context.Context, entry domain.DiaryEntry) (string, error)
	FindDiaryEntryByDateFunc   func(ctx context.Context, userID, date string) (domain.DiaryEntry, error)
	ListDiaryEntriesFunc       func(ctx context.Context, userID string, f domain.DiaryFilter) ([]domain.DiaryEntry, error)
	UpdateDiaryEntryByDateFunc func(ctx context.Context, userID, date string, set bson.M) (domain.DiaryEntry, error)
	DeleteDiaryEntryByDateFunc func(ctx context.Context, userID, date string) error
	MoodCountsFunc             func(ctx context.Context, userID, startDate string) (map[domain.Mood]int64, error)
}

func (m *MockDiaryStorage) InsertDiaryEntry(ctx context.Context, entry domain.DiaryEntry) (string, error) {
	if m.InsertDiaryEntryFunc != nil {
		return m.InsertDiaryEntryFunc(ctx, entry)
	}
	return bson.NewObjectID().Hex(), nil
}

func (m *MockDiaryStorage) FindDiaryEntryByDate(ctx context.Context, userID, date string) (domain.DiaryEntry, error) {
	if m.FindDiaryEntryByDateFunc != nil {
		return m.FindDiaryEntryByDateFunc(ctx, userID, date)
	}
	return domain.DiaryEntry{}, nil
}

func (m *MockDiaryStorage) ListDiaryEntries(ctx context.Context, userID string, f domain.DiaryFilter) ([]domain.DiaryEntry, error) {
	if m.ListDiaryEntriesFunc != nil {
		return m.ListDiaryEntriesFunc(ctx, userID, f)
	}
	return []domain.DiaryEntry{}, nil
}

func (m *MockDiaryStorage) UpdateDiaryEntryByDate(ctx context.Context, userID, date string, set bson.M) (domain.DiaryEntry, error) {
	if m.UpdateDiaryEntryByDateFunc != nil {
		return m.UpdateDiaryEntryByDateFunc(ctx, userID, date, set)
	}
	return domain.DiaryEntry{}, nil
}

func (m *MockDiaryStorage) DeleteDiaryEntryByDate(ctx context.Context, userID, date string) error {
	if m.DeleteDiaryEntryByDateFunc != nil {
		return m.DeleteDiaryEntryByDateFunc(ctx, userID, date)
	}
	return nil
}

func (m *MockDiaryStorage) MoodCounts(ctx context.Context, userID, startDate string) (map[domain.Mood]int64, error) {
	if m.MoodCountsFunc != nil {
		return m.MoodCountsFunc(ctx, userID, startDate)
	}
	return map[domain.Mood]int64{}, nil
}

func TestCreateDiaryEntry(t *testing.T) {
	var inserted domain.DiaryEntry
	storage := &MockDiaryStorage{
		InsertDiaryEntryFunc: func(ctx context.Context, entry domain.DiaryEntry) (string, error) {
			inserted = entry
			return bson.NewObjectID().Hex(), nil
		},
	}

	_, err := NewDiary(storage, 30).Create(context.Background(), "uid", api.CreateDiaryEntryRequest{
		Date:    "2026-03-10",
		Content: "<script>alert(1)</script>long day",
		Mood:    domain.MoodGood,
	})
	require.NoError(t, err)

	assert.True(t, inserted.IsPrivate)
	assert.Equal(t, "2026-03-10", inserted.Date)
	assert.NotContains(t, inserted.Content, "<script>")
}

func TestUpdateDiaryEntry(t *testing.T) {
	_, err := NewDiary(&MockDiaryStorage{}, 30).UpdateByDate(context.Background(), "uid", "2026-03-10", api.UpdateDiaryEntryRequest{})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, internal_errors.StatusCode(err))
}

func TestMoodSummary(t *testing.T) {
	t.Run("falls back to the configured window", func(t *testing.T) {
		var gotStart string
		storage := &MockDiaryStorage{
			MoodCountsFunc: func(ctx context.Context, userID, startDate string) (map[domain.Mood]int64, error) {
				gotStart = startDate
				return map[domain.Mood]int64{domain.MoodGood: 4}, nil
			},
		}

		summary, err := NewDiary(storage, 14).MoodSummary(context.Background(), "uid", 0)
		require.NoError(t, err)
		assert.Equal(t, 14, summary.Days)
		assert.Equal(t, int64(4), summary.Counts[domain.MoodGood])

		wantStart := time.Now().UTC().AddDate(0, 0, -14).Format("2006-01-02")
		assert.Equal(t, wantStart, gotStart)
	})

	t.Run("unset config still means 30 days", func(t *testing.T) {
		summary, err := NewDiary(&MockDiaryStorage{}, 0).MoodSummary(context.Background(), "uid", 0)
		require.NoError(t, err)
		assert.Equal(t, 30, summary.Days)
	})

	t.Run("honors an explicit window", func(t *testing.T) {
		var gotStart string
		storage := &MockDiaryStorage{
			MoodCountsFunc: func(ctx context.Context, userID, startDate string) (map[domain.Mood]int64, error) {
				gotStart = startDate
				return nil, nil
			},
		}

		summary, err := NewDiary(storage, 30).MoodSummary(context.Background(), "uid", 7)
		require.NoError(t, err)
		assert.Equal(t, 7, summary.Days)
		assert.Equal(t, time.Now().UTC().AddDate(0, 0, -7).Format("2006-01-02"), gotStart)
	})
}
