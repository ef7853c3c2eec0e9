package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/sanfusis123/solo-leveling-backend/internal/domain"
	"github.com/sanfusis123/solo-leveling-backend/internal/errors"
)

func testDiaryEntry(userID, date string, mood domain.Mood) domain.DiaryEntry {
	now := time.Now().UTC()
	return domain.DiaryEntry{
		UserID:    userID,
		Date:      date,
		Content:   "entry for " + date,
		Mood:      mood,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestDiaryOneEntryPerDate(t *testing.T) {
	ctx := context.Background()
	userID := "diary-unique-user"

	id, err := storage.InsertDiaryEntry(ctx, testDiaryEntry(userID, "2026-08-01", domain.MoodGood))
	require.NoError(t, err, "InsertDiaryEntry should not return an error")
	assert.NotEmpty(t, id, "Expected a non-empty id")

	// The unique (user_id, date) index rejects a second entry for the day.
	_, err = storage.InsertDiaryEntry(ctx, testDiaryEntry(userID, "2026-08-01", domain.MoodBad))
	require.Error(t, err, "Second entry for the same date should fail")
	e, ok := err.(*errors.ErrorWithStatusCode)
	require.True(t, ok, "Expected ErrorWithStatusCode")
	assert.Equal(t, 400, e.StatusCode, "Expected status code 400")
	assert.Equal(t, "An entry for this date already exists", e.Message, "Unexpected error message")

	// Another user can use the same date.
	_, err = storage.InsertDiaryEntry(ctx, testDiaryEntry("diary-unique-other", "2026-08-01", domain.MoodGood))
	require.NoError(t, err, "A different user may write the same date")
}

func TestDiaryEntryLifecycle(t *testing.T) {
	ctx := context.Background()
	userID := "diary-lifecycle-user"

	_, err := storage.InsertDiaryEntry(ctx, testDiaryEntry(userID, "2026-08-02", domain.MoodNeutral))
	require.NoError(t, err, "InsertDiaryEntry should not return an error")

	entry, err := storage.FindDiaryEntryByDate(ctx, userID, "2026-08-02")
	require.NoError(t, err, "FindDiaryEntryByDate should not return an error")
	assert.Equal(t, domain.MoodNeutral, entry.Mood, "Unexpected mood")

	entry, err = storage.UpdateDiaryEntryByDate(ctx, userID, "2026-08-02", bson.M{"mood": domain.MoodExcellent})
	require.NoError(t, err, "UpdateDiaryEntryByDate should not return an error")
	assert.Equal(t, domain.MoodExcellent, entry.Mood, "Update should be reflected in the returned entry")

	err = storage.DeleteDiaryEntryByDate(ctx, userID, "2026-08-02")
	require.NoError(t, err, "DeleteDiaryEntryByDate should not return an error")

	_, err = storage.FindDiaryEntryByDate(ctx, userID, "2026-08-02")
	require.Error(t, err, "Expected error for deleted entry")
	e, ok := err.(*errors.ErrorWithStatusCode)
	require.True(t, ok, "Expected ErrorWithStatusCode")
	assert.Equal(t, 404, e.StatusCode, "Expected status code 404")

	err = storage.DeleteDiaryEntryByDate(ctx, userID, "2026-08-02")
	require.Error(t, err, "Deleting a missing entry should return an error")
	e, ok = err.(*errors.ErrorWithStatusCode)
	require.True(t, ok, "Expected ErrorWithStatusCode")
	assert.Equal(t, 404, e.StatusCode, "Expected status code 404")
}

func TestListDiaryEntriesFilters(t *testing.T) {
	ctx := context.Background()
	userID := "diary-list-user"

	seeds := []domain.DiaryEntry{
		testDiaryEntry(userID, "2026-07-01", domain.MoodGood),
		testDiaryEntry(userID, "2026-07-10", domain.MoodBad),
		testDiaryEntry(userID, "2026-07-20", domain.MoodGood),
	}
	seeds[1].Tags = []string{"work"}
	for _, e := range seeds {
		_, err := storage.InsertDiaryEntry(ctx, e)
		require.NoError(t, err, "InsertDiaryEntry should not return an error")
	}

	entries, err := storage.ListDiaryEntries(ctx, userID, domain.DiaryFilter{})
	require.NoError(t, err, "ListDiaryEntries should not return an error")
	require.Len(t, entries, 3, "Expected all entries")
	assert.Equal(t, "2026-07-20", entries[0].Date, "Entries should be sorted newest first")

	entries, err = storage.ListDiaryEntries(ctx, userID, domain.DiaryFilter{
		StartDate: "2026-07-05", EndDate: "2026-07-15",
	})
	require.NoError(t, err, "ListDiaryEntries should not return an error")
	require.Len(t, entries, 1, "Expected one entry in range")
	assert.Equal(t, "2026-07-10", entries[0].Date, "Unexpected entry in range")

	entries, err = storage.ListDiaryEntries(ctx, userID, domain.DiaryFilter{Mood: domain.MoodGood})
	require.NoError(t, err, "ListDiaryEntries should not return an error")
	assert.Len(t, entries, 2, "Expected two good-mood entries")

	entries, err = storage.ListDiaryEntries(ctx, userID, domain.DiaryFilter{Tag: "work"})
	require.NoError(t, err, "ListDiaryEntries should not return an error")
	require.Len(t, entries, 1, "Expected one tagged entry")
	assert.Equal(t, "2026-07-10", entries[0].Date, "Unexpected tagged entry")
}

func TestMoodCounts(t *testing.T) {
	ctx := context.Background()
	userID := "diary-mood-user"

	for i, mood := range []domain.Mood{domain.MoodGood, domain.MoodGood, domain.MoodBad, ""} {
		date := time.Now().UTC().AddDate(0, 0, -i).Format("2006-01-02")
		_, err := storage.InsertDiaryEntry(ctx, testDiaryEntry(userID, date, mood))
		require.NoError(t, err, "InsertDiaryEntry should not return an error")
	}
	// Outside the window.
	old := testDiaryEntry(userID, "2020-01-01", domain.MoodGood)
	_, err := storage.InsertDiaryEntry(ctx, old)
	require.NoError(t, err, "InsertDiaryEntry should not return an error")

	start := time.Now().UTC().AddDate(0, 0, -30).Format("2006-01-02")
	counts, err := storage.MoodCounts(ctx, userID, start)
	require.NoError(t, err, "MoodCounts should not return an error")
	assert.Equal(t, int64(2), counts[domain.MoodGood], "Expected two good entries in the window")
	assert.Equal(t, int64(1), counts[domain.MoodBad], "Expected one bad entry in the window")
	assert.NotContains(t, counts, domain.Mood(""), "Entries without a mood should be excluded")
}
