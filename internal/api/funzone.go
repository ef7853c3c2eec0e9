package api

import "github.com/sanfusis123/solo-leveling-backend/internal/domain"

type CreateFunContentRequest struct {
	Title    string             `json:"title" validate:"required"`
	Content  string             `json:"content" validate:"required"`
	Type     domain.ContentType `json:"type,omitempty" validate:"omitempty,oneof=poem joke story quote thought other"`
	Category string             `json:"category,omitempty"`
	Tags     []string           `json:"tags,omitempty"`
	IsPublic bool               `json:"is_public,omitempty"`
}

type UpdateFunContentRequest struct {
	Title    *string             `json:"title,omitempty"`
	Content  *string             `json:"content,omitempty"`
	Type     *domain.ContentType `json:"type,omitempty" validate:"omitempty,oneof=poem joke story quote thought other"`
	Category *string             `json:"category,omitempty"`
	Tags     []string            `json:"tags,omitempty"`
	IsPublic *bool               `json:"is_public,omitempty"`
}

type LikeResponse struct {
	Likes int `json:"likes"`
}
