package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type ContentType string

const (
	ContentPoem    ContentType = "poem"
	ContentJoke    ContentType = "joke"
	ContentStory   ContentType = "story"
	ContentQuote   ContentType = "quote"
	ContentThought ContentType = "thought"
	ContentOther   ContentType = "other"
)

type FunContent struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string        `bson:"user_id" json:"user_id"`
	Title     string        `bson:"title" json:"title"`
	Content   string        `bson:"content" json:"content"`
	Type      ContentType   `bson:"type" json:"type"`
	Category  string        `bson:"category,omitempty" json:"category,omitempty"`
	Tags      []string      `bson:"tags" json:"tags"`
	IsPublic  bool          `bson:"is_public" json:"is_public"`
	Likes     int           `bson:"likes" json:"likes"`
	Views     int           `bson:"views" json:"views"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at" json:"updated_at"`
}

type FunContentFilter struct {
	Type     ContentType
	Category string
	Public   *bool
}
