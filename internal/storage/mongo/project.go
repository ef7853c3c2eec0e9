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

func (s *Storage) projects() *mongo.Collection {
	return s.db.Collection(colProjects)
}

func (s *Storage) skills() *mongo.Collection {
	return s.db.Collection(colSkills)
}

// Projects

func (s *Storage) InsertProject(ctx context.Context, project domain.Project) (string, error) {
	res, err := s.projects().InsertOne(ctx, project)
	if err != nil {
		return "", fmt.Errorf("failed to insert project: %w", err)
	}
	return res.InsertedID.(bson.ObjectID).Hex(), nil
}

func (s *Storage) FindProject(ctx context.Context, id, userID string) (domain.Project, error) {
	filter, err := ownedFilter(id, userID)
	if err != nil {
		return domain.Project{}, err
	}

	var project domain.Project
	if err := s.projects().FindOne(ctx, filter).Decode(&project); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Project{}, internal_errors.NotFound("Project not found")
		}
		return domain.Project{}, fmt.Errorf("failed to query project: %w", err)
	}
	return project, nil
}

func (s *Storage) ListProjects(ctx context.Context, userID string, status domain.ProjectStatus) ([]domain.Project, error) {
	filter := bson.M{"user_id": userID}
	if status != "" {
		filter["status"] = status
	}

	cursor, err := s.projects().Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	projects := []domain.Project{}
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, fmt.Errorf("failed to decode projects: %w", err)
	}
	return projects, nil
}

func (s *Storage) UpdateProject(ctx context.Context, id, userID string, set bson.M) (domain.Project, error) {
	filter, err := ownedFilter(id, userID)
	if err != nil {
		return domain.Project{}, err
	}

	set["updated_at"] = time.Now().UTC()
	var project domain.Project
	err = s.projects().FindOneAndUpdate(ctx, filter, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&project)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Project{}, internal_errors.NotFound("Project not found")
		}
		return domain.Project{}, fmt.Errorf("failed to update project: %w", err)
	}
	return project, nil
}

func (s *Storage) DeleteProject(ctx context.Context, id, userID string) error {
	filter, err := ownedFilter(id, userID)
	if err != nil {
		return err
	}

	res, err := s.projects().DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if res.DeletedCount == 0 {
		return internal_errors.NotFound("Project not found")
	}
	return nil
}

// Skills

func (s *Storage) InsertSkill(ctx context.Context, skill domain.Skill) (string, error) {
	res, err := s.skills().InsertOne(ctx, skill)
	if err != nil {
		return "", fmt.Errorf("failed to insert skill: %w", err)
	}
	return res.InsertedID.(bson.ObjectID).Hex(), nil
}

func (s *Storage) FindSkill(ctx context.Context, id, userID string) (domain.Skill, error) {
	filter, err := ownedFilter(id, userID)
	if err != nil {
		return domain.Skill{}, err
	}

	var skill domain.Skill
	if err := s.skills().FindOne(ctx, filter).Decode(&skill); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Skill{}, internal_errors.NotFound("Skill not found")
		}
		return domain.Skill{}, fmt.Errorf("failed to query skill: %w", err)
	}
	return skill, nil
}

func (s *Storage) ListSkills(ctx context.Context, userID string, category string) ([]domain.Skill, error) {
	filter := bson.M{"user_id": userID}
	if category != "" {
		filter["category"] = category
	}

	cursor, err := s.skills().Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}

	skills := []domain.Skill{}
	if err := cursor.All(ctx, &skills); err != nil {
		return nil, fmt.Errorf("failed to decode skills: %w", err)
	}
	return skills, nil
}

func (s *Storage) SkillCategories(ctx context.Context, userID string) ([]string, error) {
	var categories []string
	err := s.skills().Distinct(ctx, "category", bson.M{
		"user_id":  userID,
		"category": bson.M{"$nin": bson.A{nil, ""}},
	}).Decode(&categories)
	if err != nil {
		return nil, fmt.Errorf("failed to query skill categories: %w", err)
	}
	return categories, nil
}

func (s *Storage) UpdateSkill(ctx context.Context, id, userID string, set bson.M) (domain.Skill, error) {
	filter, err := ownedFilter(id, userID)
	if err != nil {
		return domain.Skill{}, err
	}

	set["updated_at"] = time.Now().UTC()
	var skill domain.Skill
	err = s.skills().FindOneAndUpdate(ctx, filter, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&skill)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Skill{}, internal_errors.NotFound("Skill not found")
		}
		return domain.Skill{}, fmt.Errorf("failed to update skill: %w", err)
	}
	return skill, nil
}

func (s *Storage) DeleteSkill(ctx context.Context, id, userID string) error {
	filter, err := ownedFilter(id, userID)
	if err != nil {
		return err
	}

	res, err := s.skills().DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete skill: %w", err)
	}
	if res.DeletedCount == 0 {
		return internal_errors.NotFound("Skill not found")
	}
	return nil
}
