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

func (s *Storage) improvementLogs() *mongo.Collection {
	return s.db.Collection(colLogs)
}

func (s *Storage) InsertLog(ctx context.Context, log domain.ImprovementLog) (string, error) {
	res, err := s.improvementLogs().InsertOne(ctx, log)
	if err != nil {
		return "", fmt.Errorf("failed to insert improvement log: %w", err)
	}
	return res.InsertedID.(bson.ObjectID).Hex(), nil
}

func (s *Storage) FindLog(ctx context.Context, id, userID string) (domain.ImprovementLog, error) {
	filter, err := ownedFilter(id, userID)
	if err != nil {
		return domain.ImprovementLog{}, err
	}

	var log domain.ImprovementLog
	if err := s.improvementLogs().FindOne(ctx, filter).Decode(&log); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ImprovementLog{}, internal_errors.NotFound("Log not found")
		}
		return domain.ImprovementLog{}, fmt.Errorf("failed to query improvement log: %w", err)
	}
	return log, nil
}

func (s *Storage) ListLogs(ctx context.Context, userID string, f domain.LogFilter) ([]domain.ImprovementLog, error) {
	filter := bson.M{"user_id": userID}
	if f.Type != "" {
		filter["type"] = f.Type
	}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.IsResolved != nil {
		filter["is_resolved"] = *f.IsResolved
	}

	cursor, err := s.improvementLogs().Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list improvement logs: %w", err)
	}

	logs := []domain.ImprovementLog{}
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, fmt.Errorf("failed to decode improvement logs: %w", err)
	}
	return logs, nil
}

func (s *Storage) UpdateLog(ctx context.Context, id, userID string, set bson.M) (domain.ImprovementLog, error) {
	filter, err := ownedFilter(id, userID)
	if err != nil {
		return domain.ImprovementLog{}, err
	}

	set["updated_at"] = time.Now().UTC()
	var log domain.ImprovementLog
	err = s.improvementLogs().FindOneAndUpdate(ctx, filter, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&log)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ImprovementLog{}, internal_errors.NotFound("Log not found")
		}
		return domain.ImprovementLog{}, fmt.Errorf("failed to update improvement log: %w", err)
	}
	return log, nil
}

// AppendProgressNote pushes a note onto the log's progress history.
func (s *Storage) AppendProgressNote(ctx context.Context, id, userID string, note domain.ProgressNote) (domain.ImprovementLog, error) {
	filter, err := ownedFilter(id, userID)
	if err != nil {
		return domain.ImprovementLog{}, err
	}

	var log domain.ImprovementLog
	err = s.improvementLogs().FindOneAndUpdate(ctx, filter,
		bson.M{
			"$push": bson.M{"progress_notes": note},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&log)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.ImprovementLog{}, internal_errors.NotFound("Log not found")
		}
		return domain.ImprovementLog{}, fmt.Errorf("failed to append progress note: %w", err)
	}
	return log, nil
}

func (s *Storage) DeleteLog(ctx context.Context, id, userID string) error {
	filter, err := ownedFilter(id, userID)
	if err != nil {
		return err
	}

	res, err := s.improvementLogs().DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete improvement log: %w", err)
	}
	if res.DeletedCount == 0 {
		return internal_errors.NotFound("Log not found")
	}
	return nil
}
