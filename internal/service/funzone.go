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

const popularContentLimit = 10

type FunZoneService interface {
	Create(ctx context.Context, userID string, req api.CreateFunContentRequest) (domain.FunContent, error)
	Get(ctx context.Context, id, userID string) (domain.FunContent, error)
	List(ctx context.Context, userID string, f domain.FunContentFilter) ([]domain.FunContent, error)
	Popular(ctx context.Context) ([]domain.FunContent, error)
	Like(ctx context.Context, id, userID string) (int, error)
	Update(ctx context.Context, id, userID string, req api.UpdateFunContentRequest) (domain.FunContent, error)
	Delete(ctx context.Context, id, userID string) error
}

type FunZoneStorage interface {
	InsertFunContent(ctx context.Context, content domain.FunContent) (string, error)
	FindFunContent(ctx context.Context, id, userID string) (domain.FunContent, error)
	ListFunContent(ctx context.Context, userID string, f domain.FunContentFilter) ([]domain.FunContent, error)
	PopularFunContent(ctx context.Context, limit int) ([]domain.FunContent, error)
	LikeFunContent(ctx context.Context, id, userID string) (int, error)
	UpdateFunContent(ctx context.Context, id, userID string, set bson.M) (domain.FunContent, error)
	DeleteFunContent(ctx context.Context, id, userID string) error
}

type FunZone struct {
	storage FunZoneStorage
}

func NewFunZone(storage FunZoneStorage) *FunZone {
	return &FunZone{storage: storage}
}

func (f *FunZone) Create(ctx context.Context, userID string, req api.CreateFunContentRequest) (domain.FunContent, error) {
	contentType := req.Type
	if contentType == "" {
		contentType = domain.ContentOther
	}

	now := time.Now().UTC()
	content := domain.FunContent{
		UserID:    userID,
		Title:     utils.SanitizeText(req.Title),
		Content:   utils.SanitizeText(req.Content),
		Type:      contentType,
		Category:  utils.SanitizeText(req.Category),
		Tags:      utils.SanitizeAll(req.Tags),
		IsPublic:  req.IsPublic,
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := f.storage.InsertFunContent(ctx, content)
	if err != nil {
		return domain.FunContent{}, err
	}
	content.ID, _ = bson.ObjectIDFromHex(id)
	return content, nil
}

func (f *FunZone) Get(ctx context.Context, id, userID string) (domain.FunContent, error) {
	return f.storage.FindFunContent(ctx, id, userID)
}

func (f *FunZone) List(ctx context.Context, userID string, filter domain.FunContentFilter) ([]domain.FunContent, error) {
	return f.storage.ListFunContent(ctx, userID, filter)
}

func (f *FunZone) Popular(ctx context.Context) ([]domain.FunContent, error) {
	return f.storage.PopularFunContent(ctx, popularContentLimit)
}

func (f *FunZone) Like(ctx context.Context, id, userID string) (int, error) {
	return f.storage.LikeFunContent(ctx, id, userID)
}

func (f *FunZone) Update(ctx context.Context, id, userID string, req api.UpdateFunContentRequest) (domain.FunContent, error) {
	set := bson.M{}
	if req.Title != nil {
		set["title"] = utils.SanitizeText(*req.Title)
	}
	if req.Content != nil {
		set["content"] = utils.SanitizeText(*req.Content)
	}
	if req.Type != nil {
		set["type"] = *req.Type
	}
	if req.Category != nil {
		set["category"] = utils.SanitizeText(*req.Category)
	}
	if req.Tags != nil {
		set["tags"] = utils.SanitizeAll(req.Tags)
	}
	if req.IsPublic != nil {
		set["is_public"] = *req.IsPublic
	}
	if len(set) == 0 {
		return domain.FunContent{}, internal_errors.BadRequest("Nothing to update")
	}

	return f.storage.UpdateFunContent(ctx, id, userID, set)
}

func (f *FunZone) Delete(ctx context.Context, id, userID string) error {
	return f.storage.DeleteFunContent(ctx, id, userID)
}
