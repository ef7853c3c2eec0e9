package api

import "github.com/sanfusis123/solo-leveling-backend/internal/domain"

type CreateDiaryEntryRequest struct {
	Date            string      `json:"date" validate:"required,datetime=2006-01-02"`
	Title           string      `json:"title,omitempty"`
	Content         string      `json:"content" validate:"required"`
	Mood            domain.Mood `json:"mood,omitempty" validate:"omitempty,oneof=very_bad bad neutral good excellent"`
	Activities      []string    `json:"activities,omitempty"`
	Accomplishments []string    `json:"accomplishments,omitempty"`
	Challenges      []string    `json:"challenges,omitempty"`
	Gratitude       []string    `json:"gratitude,omitempty"`
	TomorrowGoals   []string    `json:"tomorrow_goals,omitempty"`
	Tags            []string    `json:"tags,omitempty"`
	Weather         string      `json:"weather,omitempty"`
	Location        string      `json:"location,omitempty"`
}

type UpdateDiaryEntryRequest struct {
	Title           *string      `json:"title,omitempty"`
	Content         *string      `json:"content,omitempty"`
	Mood            *domain.Mood `json:"mood,omitempty" validate:"omitempty,oneof=very_bad bad neutral good excellent"`
	Activities      []string     `json:"activities,omitempty"`
	Accomplishments []string     `json:"accomplishments,omitempty"`
	Challenges      []string     `json:"challenges,omitempty"`
	Gratitude       []string     `json:"gratitude,omitempty"`
	TomorrowGoals   []string     `json:"tomorrow_goals,omitempty"`
	Tags            []string     `json:"tags,omitempty"`
	Weather         *string      `json:"weather,omitempty"`
	Location        *string      `json:"location,omitempty"`
}
