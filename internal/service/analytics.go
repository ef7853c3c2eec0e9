package service

import (
	"context"
	"time"

	"github.com/sanfusis123/solo-leveling-backend/internal/domain"
)

type AnalyticsService interface {
	TimeSpentBySkill(ctx context.Context, userID string, start, end *time.Time) ([]domain.TimeSpent, error)
	TimeSpentByProject(ctx context.Context, userID string, start, end *time.Time) ([]domain.TimeSpent, error)
	ProductivityOverview(ctx context.Context, userID string, start, end *time.Time) (domain.ProductivityOverview, error)
}

type AnalyticsStorage interface {
	TimeSpentBySkill(ctx context.Context, userID string, start, end *time.Time) ([]domain.TimeSpent, error)
	TimeSpentByProject(ctx context.Context, userID string, start, end *time.Time) ([]domain.TimeSpent, error)
	ProductivityOverview(ctx context.Context, userID string, start, end *time.Time) (domain.ProductivityOverview, error)
}

// Analytics answers "where did my time go" from completed calendar
// events. All heavy lifting happens in aggregation pipelines; this
// layer only scopes the queries to the caller.
type Analytics struct {
	storage AnalyticsStorage
}

func NewAnalytics(storage AnalyticsStorage) *Analytics {
	return &Analytics{storage: storage}
}

func (a *Analytics) TimeSpentBySkill(ctx context.Context, userID string, start, end *time.Time) ([]domain.TimeSpent, error) {
	return a.storage.TimeSpentBySkill(ctx, userID, start, end)
}

func (a *Analytics) TimeSpentByProject(ctx context.Context, userID string, start, end *time.Time) ([]domain.TimeSpent, error) {
	return a.storage.TimeSpentByProject(ctx, userID, start, end)
}

func (a *Analytics) ProductivityOverview(ctx context.Context, userID string, start, end *time.Time) (domain.ProductivityOverview, error) {
	return a.storage.ProductivityOverview(ctx, userID, start, end)
}
