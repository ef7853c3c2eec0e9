package api

import "github.com/sanfusis123/solo-leveling-backend/internal/domain"

type CreateDeckRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	IsPublic    bool     `json:"is_public,omitempty"`
}

type UpdateDeckRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	IsPublic    *bool    `json:"is_public,omitempty"`
}

type CreateCardRequest struct {
	Front      string            `json:"front" validate:"required"`
	Back       string            `json:"back" validate:"required"`
	Hint       string            `json:"hint,omitempty"`
	Tags       []string          `json:"tags,omitempty"`
	Difficulty domain.Difficulty `json:"difficulty,omitempty" validate:"omitempty,oneof=easy medium hard"`
}

type UpdateCardRequest struct {
	Front      *string            `json:"front,omitempty"`
	Back       *string            `json:"back,omitempty"`
	Hint       *string            `json:"hint,omitempty"`
	Tags       []string           `json:"tags,omitempty"`
	Difficulty *domain.Difficulty `json:"difficulty,omitempty" validate:"omitempty,oneof=easy medium hard"`
}

// ReviewCardRequest grades a recall attempt: 1 is a complete blackout,
// 5 is instant recall. Grades of 3 and above count as correct.
type ReviewCardRequest struct {
	Grade int `json:"grade" validate:"required,min=1,max=5"`
}
