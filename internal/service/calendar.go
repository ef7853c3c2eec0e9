package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/sanfusis123/solo-leveling-backend/internal/api"
	"github.com/sanfusis123/solo-leveling-backend/internal/domain"
	internal_errors "github.com/sanfusis123/solo-leveling-backend/internal/errors"
	"github.com/sanfusis123/solo-leveling-backend/internal/service/utils"
)

type CalendarService interface {
	Create(ctx context.Context, userID string, req api.CreateEventRequest) (domain.CalendarEvent, error)
	Get(ctx context.Context, id, userID string) (domain.CalendarEvent, error)
	List(ctx context.Context, userID string, f domain.EventFilter) ([]domain.CalendarEvent, error)
	Update(ctx context.Context, id, userID string, req api.UpdateEventRequest) (domain.CalendarEvent, error)
	Complete(ctx context.Context, id, userID string) (domain.CalendarEvent, error)
	Skip(ctx context.Context, id, userID string, reason string) (domain.CalendarEvent, error)
	Delete(ctx context.Context, id, userID string) error
}

type CalendarStorage interface {
	InsertEvent(ctx context.Context, event domain.CalendarEvent) (string, error)
	FindEvent(ctx context.Context, id, userID string) (domain.CalendarEvent, error)
	ListEvents(ctx context.Context, userID string, f domain.EventFilter) ([]domain.CalendarEvent, error)
	UpdateEvent(ctx context.Context, id, userID string, set bson.M) (domain.CalendarEvent, error)
	DeleteEvent(ctx context.Context, id, userID string) error
}

type Calendar struct {
	storage CalendarStorage
}

func NewCalendar(storage CalendarStorage) *Calendar {
	return &Calendar{storage: storage}
}

func (c *Calendar) Create(ctx context.Context, userID string, req api.CreateEventRequest) (domain.CalendarEvent, error) {
	if !req.EndTime.After(req.StartTime) {
		return domain.CalendarEvent{}, internal_errors.BadRequest("End time must be after start time")
	}

	priority := req.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}

	now := time.Now().UTC()
	event := domain.CalendarEvent{
		UserID:      userID,
		Title:       utils.SanitizeText(req.Title),
		Description: utils.SanitizeText(req.Description),
		StartTime:   req.StartTime.UTC(),
		EndTime:     req.EndTime.UTC(),
		Priority:    priority,
		Status:      domain.EventPending,
		Category:    utils.SanitizeText(req.Category),
		ProjectID:   req.ProjectID,
		SkillID:     req.SkillID,
		Tags:        utils.SanitizeAll(req.Tags),
		Location:    utils.SanitizeText(req.Location),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	id, err := c.storage.InsertEvent(ctx, event)
	if err != nil {
		return domain.CalendarEvent{}, err
	}
	event.ID, _ = bson.ObjectIDFromHex(id)
	return event, nil
}

func (c *Calendar) Get(ctx context.Context, id, userID string) (domain.CalendarEvent, error) {
	return c.storage.FindEvent(ctx, id, userID)
}

func (c *Calendar) List(ctx context.Context, userID string, f domain.EventFilter) ([]domain.CalendarEvent, error) {
	return c.storage.ListEvents(ctx, userID, f)
}

func (c *Calendar) Update(ctx context.Context, id, userID string, req api.UpdateEventRequest) (domain.CalendarEvent, error) {
	set := bson.M{}
	if req.Title != nil {
		set["title"] = utils.SanitizeText(*req.Title)
	}
	if req.Description != nil {
		set["description"] = utils.SanitizeText(*req.Description)
	}
	if req.StartTime != nil {
		set["start_time"] = req.StartTime.UTC()
	}
	if req.EndTime != nil {
		set["end_time"] = req.EndTime.UTC()
	}
	if req.Priority != nil {
		set["priority"] = *req.Priority
	}
	if req.Status != nil {
		set["status"] = *req.Status
	}
	if req.Category != nil {
		set["category"] = utils.SanitizeText(*req.Category)
	}
	if req.ProjectID != nil {
		set["project_id"] = *req.ProjectID
	}
	if req.SkillID != nil {
		set["skill_id"] = *req.SkillID
	}
	if req.Tags != nil {
		set["tags"] = utils.SanitizeAll(req.Tags)
	}
	if req.Location != nil {
		set["location"] = utils.SanitizeText(*req.Location)
	}
	if len(set) == 0 {
		return domain.CalendarEvent{}, internal_errors.BadRequest("Nothing to update")
	}

	// When both ends of the range move, check the new range. When only
	// one moves, fetch the other side first.
	if req.StartTime != nil || req.EndTime != nil {
		start, end := req.StartTime, req.EndTime
		if start == nil || end == nil {
			current, err := c.storage.FindEvent(ctx, id, userID)
			if err != nil {
				return domain.CalendarEvent{}, err
			}
			if start == nil {
				start = &current.StartTime
			}
			if end == nil {
				end = &current.EndTime
			}
		}
		if !end.After(*start) {
			return domain.CalendarEvent{}, internal_errors.BadRequest("End time must be after start time")
		}
	}

	return c.storage.UpdateEvent(ctx, id, userID, set)
}

func (c *Calendar) Complete(ctx context.Context, id, userID string) (domain.CalendarEvent, error) {
	now := time.Now().UTC()
	return c.storage.UpdateEvent(ctx, id, userID, bson.M{
		"status":       domain.EventCompleted,
		"completed_at": now,
	})
}

func (c *Calendar) Skip(ctx context.Context, id, userID string, reason string) (domain.CalendarEvent, error) {
	now := time.Now().UTC()
	return c.storage.UpdateEvent(ctx, id, userID, bson.M{
		"status":      domain.EventSkipped,
		"skipped_at":  now,
		"skip_reason": utils.SanitizeText(reason),
	})
}

func (c *Calendar) Delete(ctx context.Context, id, userID string) error {
	return c.storage.DeleteEvent(ctx, id, userID)
}
