package api

import (
	"time"

	"github.com/sanfusis123/solo-leveling-backend/internal/domain"
)

type CreateProjectRequest struct {
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description,omitempty"`
	Color       string     `json:"color,omitempty"`
	TargetHours *float64   `json:"target_hours,omitempty" validate:"omitempty,gt=0"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

type UpdateProjectRequest struct {
	Name        *string               `json:"name,omitempty"`
	Description *string               `json:"description,omitempty"`
	Status      *domain.ProjectStatus `json:"status,omitempty" validate:"omitempty,oneof=active on_hold completed cancelled"`
	Color       *string               `json:"color,omitempty"`
	TargetHours *float64              `json:"target_hours,omitempty" validate:"omitempty,gt=0"`
	StartDate   *time.Time            `json:"start_date,omitempty"`
	EndDate     *time.Time            `json:"end_date,omitempty"`
}

type CreateSkillRequest struct {
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description,omitempty"`
	Category     string `json:"category,omitempty"`
	TargetLevel  string `json:"target_level,omitempty"`
	CurrentLevel string `json:"current_level,omitempty"`
	Color        string `json:"color,omitempty"`
	Icon         string `json:"icon,omitempty"`
}

type UpdateSkillRequest struct {
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	Category     *string `json:"category,omitempty"`
	TargetLevel  *string `json:"target_level,omitempty"`
	CurrentLevel *string `json:"current_level,omitempty"`
	Color        *string `json:"color,omitempty"`
	Icon         *string `json:"icon,omitempty"`
}
