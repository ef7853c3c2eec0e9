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

func (s *Storage) materials() *mongo.Collection {
	return s.db.Collection(colMaterials)
}

// readableMaterialFilter matches materials the user owns, public ones,
// or ones explicitly shared with the user.
func readableMaterialFilter(id, userID string) (bson.M, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, internal_errors.NotFound("Material not found")
	}
	return bson.M{
		"_id": oid,
		"$or": bson.A{
			bson.M{"user_id": userID},
			bson.M{"visibility": domain.VisibilityPublic},
			bson.M{"visibility": domain.VisibilityShared, "shared_with": userID},
		},
	}, nil
}

func (s *Storage) InsertMaterial(ctx context.Context, material domain.LearningMaterial) (string, error) {
	res, err := s.materials().InsertOne(ctx, material)
	if err != nil {
		return "", fmt.Errorf("failed to insert material: %w", err)
	}
	return res.InsertedID.(bson.ObjectID).Hex(), nil
}

// FindMaterial also bumps the view counter when someone other than the
// owner reads the material.
func (s *Storage) FindMaterial(ctx context.Context, id, userID string) (domain.LearningMaterial, error) {
	filter, err := readableMaterialFilter(id, userID)
	if err != nil {
		return domain.LearningMaterial{}, err
	}

	var material domain.LearningMaterial
	if err := s.materials().FindOne(ctx, filter).Decode(&material); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.LearningMaterial{}, internal_errors.NotFound("Material not found")
		}
		return domain.LearningMaterial{}, fmt.Errorf("failed to query material: %w", err)
	}

	if material.UserID != userID {
		if _, err := s.materials().UpdateOne(ctx,
			bson.M{"_id": material.ID}, bson.M{"$inc": bson.M{"view_count": 1}}); err != nil {
			return domain.LearningMaterial{}, fmt.Errorf("failed to bump view count: %w", err)
		}
		material.ViewCount++
	}
	return material, nil
}

// ListMaterials returns the user's own materials. Archived entries are
// excluded unless the filter asks for them.
func (s *Storage) ListMaterials(ctx context.Context, userID string, f domain.MaterialFilter) ([]domain.LearningMaterial, error) {
	filter := bson.M{"user_id": userID}
	if f.Type != "" {
		filter["type"] = f.Type
	}
	if f.Subject != "" {
		filter["subject"] = f.Subject
	}
	if f.Tag != "" {
		filter["tags"] = f.Tag
	}
	if f.Archived != nil {
		filter["is_archived"] = *f.Archived
	} else {
		filter["is_archived"] = false
	}

	cursor, err := s.materials().Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list materials: %w", err)
	}

	materials := []domain.LearningMaterial{}
	if err := cursor.All(ctx, &materials); err != nil {
		return nil, fmt.Errorf("failed to decode materials: %w", err)
	}
	return materials, nil
}

// ListSharedMaterials returns materials other users made visible to
// this user, either publicly or via an explicit share.
func (s *Storage) ListSharedMaterials(ctx context.Context, userID string) ([]domain.LearningMaterial, error) {
	filter := bson.M{
		"user_id":     bson.M{"$ne": userID},
		"is_archived": false,
		"$or": bson.A{
			bson.M{"visibility": domain.VisibilityPublic},
			bson.M{"visibility": domain.VisibilityShared, "shared_with": userID},
		},
	}

	cursor, err := s.materials().Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list shared materials: %w", err)
	}

	materials := []domain.LearningMaterial{}
	if err := cursor.All(ctx, &materials); err != nil {
		return nil, fmt.Errorf("failed to decode shared materials: %w", err)
	}
	return materials, nil
}

// ShareMaterial flips visibility to shared and merges the given users
// into shared_with, keeping existing grants.
func (s *Storage) ShareMaterial(ctx context.Context, id, userID string, sharedWith []string) (domain.LearningMaterial, error) {
	filter, err := ownedFilter(id, userID)
	if err != nil {
		return domain.LearningMaterial{}, err
	}

	update := bson.M{
		"$set": bson.M{
			"visibility": domain.VisibilityShared,
			"updated_at": time.Now().UTC(),
		},
		"$addToSet": bson.M{"shared_with": bson.M{"$each": sharedWith}},
	}

	var material domain.LearningMaterial
	err = s.materials().FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&material)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.LearningMaterial{}, internal_errors.NotFound("Material not found")
		}
		return domain.LearningMaterial{}, fmt.Errorf("failed to share material: %w", err)
	}
	return material, nil
}

func (s *Storage) UpdateMaterial(ctx context.Context, id, userID string, set bson.M) (domain.LearningMaterial, error) {
	filter, err := ownedFilter(id, userID)
	if err != nil {
		return domain.LearningMaterial{}, err
	}

	set["updated_at"] = time.Now().UTC()
	var material domain.LearningMaterial
	err = s.materials().FindOneAndUpdate(ctx, filter, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&material)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.LearningMaterial{}, internal_errors.NotFound("Material not found")
		}
		return domain.LearningMaterial{}, fmt.Errorf("failed to update material: %w", err)
	}
	return material, nil
}

func (s *Storage) DeleteMaterial(ctx context.Context, id, userID string) error {
	filter, err := ownedFilter(id, userID)
	if err != nil {
		return err
	}

	res, err := s.materials().DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete material: %w", err)
	}
	if res.DeletedCount == 0 {
		return internal_errors.NotFound("Material not found")
	}
	return nil
}
