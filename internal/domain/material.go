package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type MaterialType string

const (
	MaterialNote      MaterialType = "note"
	MaterialArticle   MaterialType = "article"
	MaterialTutorial  MaterialType = "tutorial"
	MaterialReference MaterialType = "reference"
)

type Visibility string

const (
	VisibilityPrivate Visibility = "private"
	VisibilityPublic  Visibility = "public"
	VisibilityShared  Visibility = "shared"
)

type LearningMaterial struct {
	ID         bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID     string        `bson:"user_id" json:"user_id"`
	Title      string        `bson:"title" json:"title"`
	Content    string        `bson:"content" json:"content"`
	Summary    string        `bson:"summary,omitempty" json:"summary,omitempty"`
	Type       MaterialType  `bson:"type" json:"type"`
	Subject    string        `bson:"subject,omitempty" json:"subject,omitempty"`
	Category   string        `bson:"category,omitempty" json:"category,omitempty"`
	Tags       []string      `bson:"tags" json:"tags"`
	Visibility Visibility    `bson:"visibility" json:"visibility"`
	SharedWith []string      `bson:"shared_with" json:"shared_with"`
	References []string      `bson:"references" json:"references"`
	ViewCount  int           `bson:"view_count" json:"view_count"`
	IsArchived bool          `bson:"is_archived" json:"is_archived"`
	CreatedAt  time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time     `bson:"updated_at" json:"updated_at"`
}

type MaterialFilter struct {
	Type     MaterialType
	Subject  string
	Tag      string
	Archived *bool
}
