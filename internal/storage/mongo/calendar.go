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

func (s *Storage) events() *mongo.Collection {
	return s.db.Collection(colEvents)
}

// ownedFilter scopes a by-id query to its owner. An id belonging to
// another user is indistinguishable from a missing one.
func ownedFilter(id, userID string) (bson.M, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, internal_errors.NotFound("Not found")
	}
	return bson.M{"_id": oid, "user_id": userID}, nil
}

func (s *Storage) InsertEvent(ctx context.Context, event domain.CalendarEvent) (string, error) {
	res, err := s.events().InsertOne(ctx, event)
	if err != nil {
		return "", fmt.Errorf("failed to insert event: %w", err)
	}
	return res.InsertedID.(bson.ObjectID).Hex(), nil
}

func (s *Storage) FindEvent(ctx context.Context, id, userID string) (domain.CalendarEvent, error) {
	filter, err := ownedFilter(id, userID)
	if err != nil {
		return domain.CalendarEvent{}, err
	}

	var event domain.CalendarEvent
	if err := s.events().FindOne(ctx, filter).Decode(&event); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.CalendarEvent{}, internal_errors.NotFound("Event not found")
		}
		return domain.CalendarEvent{}, fmt.Errorf("failed to query event: %w", err)
	}
	return event, nil
}

func (s *Storage) ListEvents(ctx context.Context, userID string, f domain.EventFilter) ([]domain.CalendarEvent, error) {
	filter := bson.M{"user_id": userID}
	if f.Start != nil && f.End != nil {
		filter["start_time"] = bson.M{"$gte": *f.Start, "$lte": *f.End}
	} else if f.Start != nil {
		filter["start_time"] = bson.M{"$gte": *f.Start}
	} else if f.End != nil {
		filter["start_time"] = bson.M{"$lte": *f.End}
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.Category != "" {
		filter["category"] = f.Category
	}

	cursor, err := s.events().Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	events := []domain.CalendarEvent{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}
	return events, nil
}

func (s *Storage) UpdateEvent(ctx context.Context, id, userID string, set bson.M) (domain.CalendarEvent, error) {
	filter, err := ownedFilter(id, userID)
	if err != nil {
		return domain.CalendarEvent{}, err
	}

	set["updated_at"] = time.Now().UTC()
	var event domain.CalendarEvent
	err = s.events().FindOneAndUpdate(ctx, filter, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&event)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.CalendarEvent{}, internal_errors.NotFound("Event not found")
		}
		return domain.CalendarEvent{}, fmt.Errorf("failed to update event: %w", err)
	}
	return event, nil
}

func (s *Storage) DeleteEvent(ctx context.Context, id, userID string) error {
	filter, err := ownedFilter(id, userID)
	if err != nil {
		return err
	}

	res, err := s.events().DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if res.DeletedCount == 0 {
		return internal_errors.NotFound("Event not found")
	}
	return nil
}
