package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/sanfusis123/solo-leveling-backend/internal/config"
	"github.com/sanfusis123/solo-leveling-backend/internal/logger"
)

// Collection names. One collection per aggregate, matching the route
// surface one to one.
const (
	colUsers        = "users"
	colEvents       = "calendar_events"
	colLogs         = "improvement_logs"
	colProjects     = "projects"
	colSkills       = "skills"
	colDecks        = "flashcard_decks"
	colCards        = "flashcards"
	colMaterials    = "learning_materials"
	colDiaryEntries = "diary_entries"
	colFunContent   = "fun_content"
)

type Storage struct {
	client *mongo.Client
	db     *mongo.Database
}

func New(ctx context.Context, cfg *config.Config) (*Storage, error) {
	logger.Log.Info("connecting to mongodb")

	client, err := mongo.Connect(options.Client().
		ApplyURI(cfg.Private.MongoURI).
		SetServerSelectionTimeout(5 * time.Second).
		SetConnectTimeout(10 * time.Second))
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	s := &Storage{client: client, db: client.Database(cfg.Private.MongoDB)}
	if err := s.ensureIndexes(ctx); err != nil {
		return nil, err
	}

	logger.Log.Info("connected to mongodb")
	return s, nil
}

// ensureIndexes creates the unique indexes the write paths rely on.
// Mongo treats this as a no-op when the index already exists.
func (s *Storage) ensureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(colUsers).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}

	_, err = s.db.Collection(colDiaryEntries).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create diary index: %w", err)
	}
	return nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Storage) Cleanup(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
