package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/sanfusis123/solo-leveling-backend/internal/domain"
	internal_errors "github.com/sanfusis123/solo-leveling-backend/internal/errors"
)

func (s *Storage) diaryEntries() *mongo.Collection {
	return s.db.Collection(colDiaryEntries)
}

// InsertDiaryEntry relies on the unique (user_id, date) index to keep
// one entry per day.
func (s *Storage) InsertDiaryEntry(ctx context.Context, entry domain.DiaryEntry) (string, error) {
	res, err := s.diaryEntries().InsertOne(ctx, entry)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", internal_errors.BadRequest("An entry for this date already exists")
		}
		return "", fmt.Errorf("failed to insert diary entry: %w", err)
	}
	return res.InsertedID.(bson.ObjectID).Hex(), nil
}

func (s *Storage) FindDiaryEntryByDate(ctx context.Context, userID, date string) (domain.DiaryEntry, error) {
	var entry domain.DiaryEntry
	err := s.diaryEntries().FindOne(ctx, bson.M{"user_id": userID, "date": date}).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.DiaryEntry{}, internal_errors.NotFound("Diary entry not found")
		}
		return domain.DiaryEntry{}, fmt.Errorf("failed to query diary entry: %w", err)
	}
	return entry, nil
}

func (s *Storage) ListDiaryEntries(ctx context.Context, userID string, f domain.DiaryFilter) ([]domain.DiaryEntry, error) {
	filter := bson.M{"user_id": userID}
	dateRange := bson.M{}
	if f.StartDate != "" {
		dateRange["$gte"] = f.StartDate
	}
	if f.EndDate != "" {
		dateRange["$lte"] = f.EndDate
	}
	if len(dateRange) > 0 {
		filter["date"] = dateRange
	}
	if f.Mood != "" {
		filter["mood"] = f.Mood
	}
	if f.Tag != "" {
		filter["tags"] = f.Tag
	}

	cursor, err := s.diaryEntries().Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list diary entries: %w", err)
	}

	entries := []domain.DiaryEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode diary entries: %w", err)
	}
	return entries, nil
}

func (s *Storage) UpdateDiaryEntryByDate(ctx context.Context, userID, date string, set bson.M) (domain.DiaryEntry, error) {
	set["updated_at"] = time.Now().UTC()
	var entry domain.DiaryEntry
	err := s.diaryEntries().FindOneAndUpdate(ctx,
		bson.M{"user_id": userID, "date": date}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.DiaryEntry{}, internal_errors.NotFound("Diary entry not found")
		}
		return domain.DiaryEntry{}, fmt.Errorf("failed to update diary entry: %w", err)
	}
	return entry, nil
}

func (s *Storage) DeleteDiaryEntryByDate(ctx context.Context, userID, date string) error {
	res, err := s.diaryEntries().DeleteOne(ctx, bson.M{"user_id": userID, "date": date})
	if err != nil {
		return fmt.Errorf("failed to delete diary entry: %w", err)
	}
	if res.DeletedCount == 0 {
		return internal_errors.NotFound("Diary entry not found")
	}
	return nil
}

// MoodCounts aggregates entry counts per mood for dates on or after
// startDate (ISO yyyy-mm-dd).
func (s *Storage) MoodCounts(ctx context.Context, userID, startDate string) (map[domain.Mood]int64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"user_id": userID,
			"date":    bson.M{"$gte": startDate},
			"mood":    bson.M{"$nin": bson.A{nil, ""}},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$mood",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := s.diaryEntries().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate moods: %w", err)
	}

	var rows []struct {
		Mood  domain.Mood `bson:"_id"`
		Count int64       `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode mood counts: %w", err)
	}

	counts := map[domain.Mood]int64{}
	for _, row := range rows {
		counts[row.Mood] = row.Count
	}
	return counts, nil
}
