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

type MaterialService interface {
	Create(ctx context.Context, userID string, req api.CreateMaterialRequest) (domain.LearningMaterial, error)
	Get(ctx context.Context, id, userID string) (domain.LearningMaterial, error)
	List(ctx context.Context, userID string, f domain.MaterialFilter) ([]domain.LearningMaterial, error)
	ListShared(ctx context.Context, userID string) ([]domain.LearningMaterial, error)
	Update(ctx context.Context, id, userID string, req api.UpdateMaterialRequest) (domain.LearningMaterial, error)
	Share(ctx context.Context, id, userID string, sharedWith []string) (domain.LearningMaterial, error)
	Archive(ctx context.Context, id, userID string, archived bool) (domain.LearningMaterial, error)
	Delete(ctx context.Context, id, userID string) error
}

type MaterialStorage interface {
	InsertMaterial(ctx context.Context, material domain.LearningMaterial) (string, error)
	FindMaterial(ctx context.Context, id, userID string) (domain.LearningMaterial, error)
	ListMaterials(ctx context.Context, userID string, f domain.MaterialFilter) ([]domain.LearningMaterial, error)
	ListSharedMaterials(ctx context.Context, userID string) ([]domain.LearningMaterial, error)
	UpdateMaterial(ctx context.Context, id, userID string, set bson.M) (domain.LearningMaterial, error)
	ShareMaterial(ctx context.Context, id, userID string, sharedWith []string) (domain.LearningMaterial, error)
	DeleteMaterial(ctx context.Context, id, userID string) error
}

type Material struct {
	storage MaterialStorage
}

func NewMaterial(storage MaterialStorage) *Material {
	return &Material{storage: storage}
}

func (m *Material) Create(ctx context.Context, userID string, req api.CreateMaterialRequest) (domain.LearningMaterial, error) {
	materialType := req.Type
	if materialType == "" {
		materialType = domain.MaterialNote
	}
	visibility := req.Visibility
	if visibility == "" {
		visibility = domain.VisibilityPrivate
	}

	now := time.Now().UTC()
	material := domain.LearningMaterial{
		UserID:     userID,
		Title:      utils.SanitizeText(req.Title),
		Content:    utils.SanitizeText(req.Content),
		Summary:    utils.SanitizeText(req.Summary),
		Type:       materialType,
		Subject:    utils.SanitizeText(req.Subject),
		Category:   utils.SanitizeText(req.Category),
		Tags:       utils.SanitizeAll(req.Tags),
		Visibility: visibility,
		SharedWith: []string{},
		References: req.References,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	id, err := m.storage.InsertMaterial(ctx, material)
	if err != nil {
		return domain.LearningMaterial{}, err
	}
	material.ID, _ = bson.ObjectIDFromHex(id)
	return material, nil
}

func (m *Material) Get(ctx context.Context, id, userID string) (domain.LearningMaterial, error) {
	return m.storage.FindMaterial(ctx, id, userID)
}

func (m *Material) List(ctx context.Context, userID string, f domain.MaterialFilter) ([]domain.LearningMaterial, error) {
	return m.storage.ListMaterials(ctx, userID, f)
}

func (m *Material) ListShared(ctx context.Context, userID string) ([]domain.LearningMaterial, error) {
	return m.storage.ListSharedMaterials(ctx, userID)
}

func (m *Material) Update(ctx context.Context, id, userID string, req api.UpdateMaterialRequest) (domain.LearningMaterial, error) {
	set := bson.M{}
	if req.Title != nil {
		set["title"] = utils.SanitizeText(*req.Title)
	}
	if req.Content != nil {
		set["content"] = utils.SanitizeText(*req.Content)
	}
	if req.Summary != nil {
		set["summary"] = utils.SanitizeText(*req.Summary)
	}
	if req.Type != nil {
		set["type"] = *req.Type
	}
	if req.Subject != nil {
		set["subject"] = utils.SanitizeText(*req.Subject)
	}
	if req.Category != nil {
		set["category"] = utils.SanitizeText(*req.Category)
	}
	if req.Tags != nil {
		set["tags"] = utils.SanitizeAll(req.Tags)
	}
	if req.Visibility != nil {
		set["visibility"] = *req.Visibility
	}
	if req.References != nil {
		set["references"] = req.References
	}
	if len(set) == 0 {
		return domain.LearningMaterial{}, internal_errors.BadRequest("Nothing to update")
	}

	return m.storage.UpdateMaterial(ctx, id, userID, set)
}

// Share grants additional users access and flips visibility to shared.
// Existing grants are kept.
func (m *Material) Share(ctx context.Context, id, userID string, sharedWith []string) (domain.LearningMaterial, error) {
	return m.storage.ShareMaterial(ctx, id, userID, sharedWith)
}

func (m *Material) Archive(ctx context.Context, id, userID string, archived bool) (domain.LearningMaterial, error) {
	return m.storage.UpdateMaterial(ctx, id, userID, bson.M{"is_archived": archived})
}

func (m *Material) Delete(ctx context.Context, id, userID string) error {
	return m.storage.DeleteMaterial(ctx, id, userID)
}
