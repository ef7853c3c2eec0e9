package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type LogType string

const (
	LogImprovement LogType = "improvement"
	LogDistraction LogType = "distraction"
)

type ProgressNote struct {
	Note               string    `bson:"note" json:"note"`
	ProgressPercentage *int      `bson:"progress_percentage,omitempty" json:"progress_percentage,omitempty"`
	CreatedAt          time.Time `bson:"created_at" json:"created_at"`
}

type ImprovementLog struct {
	ID            bson.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID        string         `bson:"user_id" json:"user_id"`
	Type          LogType        `bson:"type" json:"type"`
	Title         string         `bson:"title" json:"title"`
	Description   string         `bson:"description" json:"description"`
	Category      string         `bson:"category,omitempty" json:"category,omitempty"`
	Tags          []string       `bson:"tags" json:"tags"`
	ImpactLevel   int            `bson:"impact_level" json:"impact_level"`
	Frequency     string         `bson:"frequency,omitempty" json:"frequency,omitempty"`
	Trigger       string         `bson:"trigger,omitempty" json:"trigger,omitempty"`
	Solution      string         `bson:"solution,omitempty" json:"solution,omitempty"`
	ProgressNotes []ProgressNote `bson:"progress_notes" json:"progress_notes"`
	IsResolved    bool           `bson:"is_resolved" json:"is_resolved"`
	ResolvedAt    *time.Time     `bson:"resolved_at,omitempty" json:"resolved_at,omitempty"`
	CreatedAt     time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time      `bson:"updated_at" json:"updated_at"`
}

type LogFilter struct {
	Type       LogType
	Category   string
	IsResolved *bool
}
