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

func (s *Storage) funContent() *mongo.Collection {
	return s.db.Collection(colFunContent)
}

func readableFunFilter(id, userID string) (bson.M, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, internal_errors.NotFound("Content not found")
	}
	return bson.M{
		"_id": oid,
		"$or": bson.A{bson.M{"user_id": userID}, bson.M{"is_public": true}},
	}, nil
}

func (s *Storage) InsertFunContent(ctx context.Context, content domain.FunContent) (string, error) {
	res, err := s.funContent().InsertOne(ctx, content)
	if err != nil {
		return "", fmt.Errorf("failed to insert content: %w", err)
	}
	return res.InsertedID.(bson.ObjectID).Hex(), nil
}

// FindFunContent returns a readable piece of content, bumping the view
// counter for readers other than the author.
func (s *Storage) FindFunContent(ctx context.Context, id, userID string) (domain.FunContent, error) {
	filter, err := readableFunFilter(id, userID)
	if err != nil {
		return domain.FunContent{}, err
	}

	var content domain.FunContent
	if err := s.funContent().FindOne(ctx, filter).Decode(&content); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.FunContent{}, internal_errors.NotFound("Content not found")
		}
		return domain.FunContent{}, fmt.Errorf("failed to query content: %w", err)
	}

	if content.UserID != userID {
		if _, err := s.funContent().UpdateOne(ctx,
			bson.M{"_id": content.ID}, bson.M{"$inc": bson.M{"views": 1}}); err != nil {
			return domain.FunContent{}, fmt.Errorf("failed to bump views: %w", err)
		}
		content.Views++
	}
	return content, nil
}

// ListFunContent returns the user's own content plus public content
// from everyone else.
func (s *Storage) ListFunContent(ctx context.Context, userID string, f domain.FunContentFilter) ([]domain.FunContent, error) {
	filter := bson.M{"$or": bson.A{bson.M{"user_id": userID}, bson.M{"is_public": true}}}
	if f.Type != "" {
		filter["type"] = f.Type
	}
	if f.Category != "" {
		filter["category"] = f.Category
	}
	if f.Public != nil {
		filter["is_public"] = *f.Public
	}

	cursor, err := s.funContent().Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list content: %w", err)
	}

	items := []domain.FunContent{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode content: %w", err)
	}
	return items, nil
}

// PopularFunContent returns the most liked public content of the past
// week.
func (s *Storage) PopularFunContent(ctx context.Context, limit int) ([]domain.FunContent, error) {
	weekAgo := time.Now().UTC().AddDate(0, 0, -7)
	filter := bson.M{
		"is_public":  true,
		"created_at": bson.M{"$gte": weekAgo},
	}

	cursor, err := s.funContent().Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: "likes", Value: -1}, {Key: "views", Value: -1}}).
		SetLimit(int64(limit)))
	if err != nil {
		return nil, fmt.Errorf("failed to list popular content: %w", err)
	}

	items := []domain.FunContent{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode popular content: %w", err)
	}
	return items, nil
}

// LikeFunContent increments likes on readable content authored by
// someone else and returns the new count.
func (s *Storage) LikeFunContent(ctx context.Context, id, userID string) (int, error) {
	filter, err := readableFunFilter(id, userID)
	if err != nil {
		return 0, err
	}

	var content domain.FunContent
	if err := s.funContent().FindOne(ctx, filter).Decode(&content); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, internal_errors.NotFound("Content not found")
		}
		return 0, fmt.Errorf("failed to query content: %w", err)
	}
	if content.UserID == userID {
		return 0, internal_errors.BadRequest("You cannot like your own content")
	}

	err = s.funContent().FindOneAndUpdate(ctx, filter, bson.M{"$inc": bson.M{"likes": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&content)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, internal_errors.NotFound("Content not found")
		}
		return 0, fmt.Errorf("failed to like content: %w", err)
	}
	return content.Likes, nil
}

func (s *Storage) UpdateFunContent(ctx context.Context, id, userID string, set bson.M) (domain.FunContent, error) {
	filter, err := ownedFilter(id, userID)
	if err != nil {
		return domain.FunContent{}, err
	}

	set["updated_at"] = time.Now().UTC()
	var content domain.FunContent
	err = s.funContent().FindOneAndUpdate(ctx, filter, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&content)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.FunContent{}, internal_errors.NotFound("Content not found")
		}
		return domain.FunContent{}, fmt.Errorf("failed to update content: %w", err)
	}
	return content, nil
}

func (s *Storage) DeleteFunContent(ctx context.Context, id, userID string) error {
	filter, err := ownedFilter(id, userID)
	if err != nil {
		return err
	}

	res, err := s.funContent().DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete content: %w", err)
	}
	if res.DeletedCount == 0 {
		return internal_errors.NotFound("Content not found")
	}
	return nil
}
