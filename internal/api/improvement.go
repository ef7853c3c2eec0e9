package api

import "github.com/sanfusis123/solo-leveling-backend/internal/domain"

type CreateLogRequest struct {
	Type        domain.LogType `json:"type" validate:"required,oneof=improvement distraction"`
	Title       string         `json:"title" validate:"required"`
	Description string         `json:"description" validate:"required"`
	Category    string         `json:"category,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
	ImpactLevel int            `json:"impact_level,omitempty" validate:"omitempty,min=1,max=5"`
	Frequency   string         `json:"frequency,omitempty"`
	Trigger     string         `json:"trigger,omitempty"`
	Solution    string         `json:"solution,omitempty"`
}

type UpdateLogRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	ImpactLevel *int     `json:"impact_level,omitempty" validate:"omitempty,min=1,max=5"`
	Frequency   *string  `json:"frequency,omitempty"`
	Trigger     *string  `json:"trigger,omitempty"`
	Solution    *string  `json:"solution,omitempty"`
	IsResolved  *bool    `json:"is_resolved,omitempty"`
}

type ProgressNoteRequest struct {
	Note               string `json:"note" validate:"required"`
	ProgressPercentage *int   `json:"progress_percentage,omitempty" validate:"omitempty,min=0,max=100"`
}
