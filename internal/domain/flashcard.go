package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type FlashcardDeck struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string        `bson:"user_id" json:"user_id"`
	Name        string        `bson:"name" json:"name"`
	Description string        `bson:"description,omitempty" json:"description,omitempty"`
	Category    string        `bson:"category,omitempty" json:"category,omitempty"`
	Tags        []string      `bson:"tags" json:"tags"`
	IsPublic    bool          `bson:"is_public" json:"is_public"`
	CardCount   int           `bson:"card_count" json:"card_count"`
	CreatedAt   time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `bson:"updated_at" json:"updated_at"`
}

// Flashcard carries its spaced-repetition state inline: interval and ease
// factor follow the SM-2 shape, next review is derived from both.
type Flashcard struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	DeckID       string        `bson:"deck_id" json:"deck_id"`
	UserID       string        `bson:"user_id" json:"user_id"`
	Front        string        `bson:"front" json:"front"`
	Back         string        `bson:"back" json:"back"`
	Hint         string        `bson:"hint,omitempty" json:"hint,omitempty"`
	Tags         []string      `bson:"tags" json:"tags"`
	Difficulty   Difficulty    `bson:"difficulty" json:"difficulty"`
	ReviewCount  int           `bson:"review_count" json:"review_count"`
	CorrectCount int           `bson:"correct_count" json:"correct_count"`
	LastReviewed *time.Time    `bson:"last_reviewed,omitempty" json:"last_reviewed,omitempty"`
	NextReview   *time.Time    `bson:"next_review,omitempty" json:"next_review,omitempty"`
	IntervalDays int           `bson:"interval_days" json:"interval_days"`
	EaseFactor   float64       `bson:"ease_factor" json:"ease_factor"`
	CreatedAt    time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time     `bson:"updated_at" json:"updated_at"`
}
