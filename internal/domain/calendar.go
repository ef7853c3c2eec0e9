package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

type EventStatus string

const (
	EventPending    EventStatus = "pending"
	EventInProgress EventStatus = "in_progress"
	EventCompleted  EventStatus = "completed"
	EventSkipped    EventStatus = "skipped"
	EventCancelled  EventStatus = "cancelled"
)

// CalendarEvent is a scheduled block of time, optionally linked to a
// project or skill so analytics can attribute the hours.
type CalendarEvent struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string        `bson:"user_id" json:"user_id"`
	Title       string        `bson:"title" json:"title"`
	Description string        `bson:"description,omitempty" json:"description,omitempty"`
	StartTime   time.Time     `bson:"start_time" json:"start_time"`
	EndTime     time.Time     `bson:"end_time" json:"end_time"`
	Priority    Priority      `bson:"priority" json:"priority"`
	Status      EventStatus   `bson:"status" json:"status"`
	Category    string        `bson:"category,omitempty" json:"category,omitempty"`
	ProjectID   string        `bson:"project_id,omitempty" json:"project_id,omitempty"`
	SkillID     string        `bson:"skill_id,omitempty" json:"skill_id,omitempty"`
	Tags        []string      `bson:"tags" json:"tags"`
	Location    string        `bson:"location,omitempty" json:"location,omitempty"`
	CompletedAt *time.Time    `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
	SkippedAt   *time.Time    `bson:"skipped_at,omitempty" json:"skipped_at,omitempty"`
	SkipReason  string        `bson:"skip_reason,omitempty" json:"skip_reason,omitempty"`
	CreatedAt   time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `bson:"updated_at" json:"updated_at"`
}

// EventFilter narrows list queries. Zero values mean "no constraint".
type EventFilter struct {
	Start    *time.Time
	End      *time.Time
	Status   EventStatus
	Category string
}
