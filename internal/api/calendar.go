package api

import (
	"time"

	"github.com/sanfusis123/solo-leveling-backend/internal/domain"
)

type CreateEventRequest struct {
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description,omitempty"`
	StartTime   time.Time       `json:"start_time" validate:"required"`
	EndTime     time.Time       `json:"end_time" validate:"required"`
	Priority    domain.Priority `json:"priority,omitempty" validate:"omitempty,oneof=low medium high urgent"`
	Category    string          `json:"category,omitempty"`
	ProjectID   string          `json:"project_id,omitempty"`
	SkillID     string          `json:"skill_id,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
	Location    string          `json:"location,omitempty"`
}

type UpdateEventRequest struct {
	Title       *string             `json:"title,omitempty"`
	Description *string             `json:"description,omitempty"`
	StartTime   *time.Time          `json:"start_time,omitempty"`
	EndTime     *time.Time          `json:"end_time,omitempty"`
	Priority    *domain.Priority    `json:"priority,omitempty" validate:"omitempty,oneof=low medium high urgent"`
	Status      *domain.EventStatus `json:"status,omitempty" validate:"omitempty,oneof=pending in_progress completed skipped cancelled"`
	Category    *string             `json:"category,omitempty"`
	ProjectID   *string             `json:"project_id,omitempty"`
	SkillID     *string             `json:"skill_id,omitempty"`
	Tags        []string            `json:"tags,omitempty"`
	Location    *string             `json:"location,omitempty"`
}

type SkipEventRequest struct {
	Reason string `json:"reason,omitempty"`
}
