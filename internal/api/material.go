package api

import "github.com/sanfusis123/solo-leveling-backend/internal/domain"

type CreateMaterialRequest struct {
	Title      string              `json:"title" validate:"required"`
	Content    string              `json:"content" validate:"required"`
	Summary    string              `json:"summary,omitempty"`
	Type       domain.MaterialType `json:"type,omitempty" validate:"omitempty,oneof=note article tutorial reference"`
	Subject    string              `json:"subject,omitempty"`
	Category   string              `json:"category,omitempty"`
	Tags       []string            `json:"tags,omitempty"`
	Visibility domain.Visibility   `json:"visibility,omitempty" validate:"omitempty,oneof=private public shared"`
	References []string            `json:"references,omitempty"`
}

type UpdateMaterialRequest struct {
	Title      *string              `json:"title,omitempty"`
	Content    *string              `json:"content,omitempty"`
	Summary    *string              `json:"summary,omitempty"`
	Type       *domain.MaterialType `json:"type,omitempty" validate:"omitempty,oneof=note article tutorial reference"`
	Subject    *string              `json:"subject,omitempty"`
	Category   *string              `json:"category,omitempty"`
	Tags       []string             `json:"tags,omitempty"`
	Visibility *domain.Visibility   `json:"visibility,omitempty" validate:"omitempty,oneof=private public shared"`
	References []string             `json:"references,omitempty"`
}

type ShareMaterialRequest struct {
	SharedWith []string `json:"shared_with" validate:"required,min=1,dive,required"`
}
