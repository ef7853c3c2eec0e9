package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectOnHold    ProjectStatus = "on_hold"
	ProjectCompleted ProjectStatus = "completed"
	ProjectCancelled ProjectStatus = "cancelled"
)

type Project struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string        `bson:"user_id" json:"user_id"`
	Name        string        `bson:"name" json:"name"`
	Description string        `bson:"description,omitempty" json:"description,omitempty"`
	Status      ProjectStatus `bson:"status" json:"status"`
	Color       string        `bson:"color,omitempty" json:"color,omitempty"`
	TargetHours *float64      `bson:"target_hours,omitempty" json:"target_hours,omitempty"`
	StartDate   *time.Time    `bson:"start_date,omitempty" json:"start_date,omitempty"`
	EndDate     *time.Time    `bson:"end_date,omitempty" json:"end_date,omitempty"`
	CreatedAt   time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `bson:"updated_at" json:"updated_at"`
}

type Skill struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       string        `bson:"user_id" json:"user_id"`
	Name         string        `bson:"name" json:"name"`
	Description  string        `bson:"description,omitempty" json:"description,omitempty"`
	Category     string        `bson:"category,omitempty" json:"category,omitempty"`
	TargetLevel  string        `bson:"target_level,omitempty" json:"target_level,omitempty"`
	CurrentLevel string        `bson:"current_level,omitempty" json:"current_level,omitempty"`
	Color        string        `bson:"color,omitempty" json:"color,omitempty"`
	Icon         string        `bson:"icon,omitempty" json:"icon,omitempty"`
	CreatedAt    time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time     `bson:"updated_at" json:"updated_at"`
}

// TimeStats is the event-hours rollup attached to a project or skill view.
type TimeStats struct {
	TotalHours float64 `bson:"total_hours" json:"total_hours"`
	TaskCount  int     `bson:"task_count" json:"task_count"`
}

type ProjectWithStats struct {
	Project `bson:",inline"`
	Stats   TimeStats `json:"stats"`
}

type SkillWithStats struct {
	Skill `bson:",inline"`
	Stats TimeStats `json:"stats"`
}
