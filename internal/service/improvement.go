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

type ImprovementService interface {
	Create(ctx context.Context, userID string, req api.CreateLogRequest) (domain.ImprovementLog, error)
	Get(ctx context.Context, id, userID string) (domain.ImprovementLog, error)
	List(ctx context.Context, userID string, f domain.LogFilter) ([]domain.ImprovementLog, error)
	Update(ctx context.Context, id, userID string, req api.UpdateLogRequest) (domain.ImprovementLog, error)
	AddProgressNote(ctx context.Context, id, userID string, req api.ProgressNoteRequest) (domain.ImprovementLog, error)
	Delete(ctx context.Context, id, userID string) error
}

type ImprovementStorage interface {
	InsertLog(ctx context.Context, log domain.ImprovementLog) (string, error)
	FindLog(ctx context.Context, id, userID string) (domain.ImprovementLog, error)
	ListLogs(ctx context.Context, userID string, f domain.LogFilter) ([]domain.ImprovementLog, error)
	UpdateLog(ctx context.Context, id, userID string, set bson.M) (domain.ImprovementLog, error)
	AppendProgressNote(ctx context.Context, id, userID string, note domain.ProgressNote) (domain.ImprovementLog, error)
	DeleteLog(ctx context.Context, id, userID string) error
}

type Improvement struct {
	storage ImprovementStorage
}

func NewImprovement(storage ImprovementStorage) *Improvement {
	return &Improvement{storage: storage}
}

func (i *Improvement) Create(ctx context.Context, userID string, req api.CreateLogRequest) (domain.ImprovementLog, error) {
	impact := req.ImpactLevel
	if impact == 0 {
		impact = 3
	}

	now := time.Now().UTC()
	log := domain.ImprovementLog{
		UserID:        userID,
		Type:          req.Type,
		Title:         utils.SanitizeText(req.Title),
		Description:   utils.SanitizeText(req.Description),
		Category:      utils.SanitizeText(req.Category),
		Tags:          utils.SanitizeAll(req.Tags),
		ImpactLevel:   impact,
		Frequency:     utils.SanitizeText(req.Frequency),
		Trigger:       utils.SanitizeText(req.Trigger),
		Solution:      utils.SanitizeText(req.Solution),
		ProgressNotes: []domain.ProgressNote{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	id, err := i.storage.InsertLog(ctx, log)
	if err != nil {
		return domain.ImprovementLog{}, err
	}
	log.ID, _ = bson.ObjectIDFromHex(id)
	return log, nil
}

func (i *Improvement) Get(ctx context.Context, id, userID string) (domain.ImprovementLog, error) {
	return i.storage.FindLog(ctx, id, userID)
}

func (i *Improvement) List(ctx context.Context, userID string, f domain.LogFilter) ([]domain.ImprovementLog, error) {
	return i.storage.ListLogs(ctx, userID, f)
}

func (i *Improvement) Update(ctx context.Context, id, userID string, req api.UpdateLogRequest) (domain.ImprovementLog, error) {
	set := bson.M{}
	if req.Title != nil {
		set["title"] = utils.SanitizeText(*req.Title)
	}
	if req.Description != nil {
		set["description"] = utils.SanitizeText(*req.Description)
	}
	if req.Category != nil {
		set["category"] = utils.SanitizeText(*req.Category)
	}
	if req.Tags != nil {
		set["tags"] = utils.SanitizeAll(req.Tags)
	}
	if req.ImpactLevel != nil {
		set["impact_level"] = *req.ImpactLevel
	}
	if req.Frequency != nil {
		set["frequency"] = utils.SanitizeText(*req.Frequency)
	}
	if req.Trigger != nil {
		set["trigger"] = utils.SanitizeText(*req.Trigger)
	}
	if req.Solution != nil {
		set["solution"] = utils.SanitizeText(*req.Solution)
	}
	if req.IsResolved != nil {
		set["is_resolved"] = *req.IsResolved
		if *req.IsResolved {
			set["resolved_at"] = time.Now().UTC()
		} else {
			set["resolved_at"] = nil
		}
	}
	if len(set) == 0 {
		return domain.ImprovementLog{}, internal_errors.BadRequest("Nothing to update")
	}

	return i.storage.UpdateLog(ctx, id, userID, set)
}

func (i *Improvement) AddProgressNote(ctx context.Context, id, userID string, req api.ProgressNoteRequest) (domain.ImprovementLog, error) {
	note := domain.ProgressNote{
		Note:               utils.SanitizeText(req.Note),
		ProgressPercentage: req.ProgressPercentage,
		CreatedAt:          time.Now().UTC(),
	}
	return i.storage.AppendProgressNote(ctx, id, userID, note)
}

func (i *Improvement) Delete(ctx context.Context, id, userID string) error {
	return i.storage.DeleteLog(ctx, id, userID)
}
