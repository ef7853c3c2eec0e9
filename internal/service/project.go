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

type ProjectService interface {
	CreateProject(ctx context.Context, userID string, req api.CreateProjectRequest) (domain.Project, error)
	GetProject(ctx context.Context, id, userID string) (domain.ProjectWithStats, error)
	ListProjects(ctx context.Context, userID string, status domain.ProjectStatus) ([]domain.ProjectWithStats, error)
	UpdateProject(ctx context.Context, id, userID string, req api.UpdateProjectRequest) (domain.Project, error)
	DeleteProject(ctx context.Context, id, userID string) error

	CreateSkill(ctx context.Context, userID string, req api.CreateSkillRequest) (domain.Skill, error)
	GetSkill(ctx context.Context, id, userID string) (domain.SkillWithStats, error)
	ListSkills(ctx context.Context, userID, category string) ([]domain.SkillWithStats, error)
	SkillCategories(ctx context.Context, userID string) ([]string, error)
	UpdateSkill(ctx context.Context, id, userID string, req api.UpdateSkillRequest) (domain.Skill, error)
	DeleteSkill(ctx context.Context, id, userID string) error
}

type ProjectStorage interface {
	InsertProject(ctx context.Context, project domain.Project) (string, error)
	FindProject(ctx context.Context, id, userID string) (domain.Project, error)
	ListProjects(ctx context.Context, userID string, status domain.ProjectStatus) ([]domain.Project, error)
	UpdateProject(ctx context.Context, id, userID string, set bson.M) (domain.Project, error)
	DeleteProject(ctx context.Context, id, userID string) error

	InsertSkill(ctx context.Context, skill domain.Skill) (string, error)
	FindSkill(ctx context.Context, id, userID string) (domain.Skill, error)
	ListSkills(ctx context.Context, userID string, category string) ([]domain.Skill, error)
	SkillCategories(ctx context.Context, userID string) ([]string, error)
	UpdateSkill(ctx context.Context, id, userID string, set bson.M) (domain.Skill, error)
	DeleteSkill(ctx context.Context, id, userID string) error

	TimeSpentBySkill(ctx context.Context, userID string, start, end *time.Time) ([]domain.TimeSpent, error)
	TimeSpentByProject(ctx context.Context, userID string, start, end *time.Time) ([]domain.TimeSpent, error)
}

// Project manages projects and skills together: both exist so calendar
// events can attribute time to them, and both carry the same hours
// rollup in their read models.
type Project struct {
	storage ProjectStorage
}

func NewProject(storage ProjectStorage) *Project {
	return &Project{storage: storage}
}

func (p *Project) CreateProject(ctx context.Context, userID string, req api.CreateProjectRequest) (domain.Project, error) {
	now := time.Now().UTC()
	project := domain.Project{
		UserID:      userID,
		Name:        utils.SanitizeText(req.Name),
		Description: utils.SanitizeText(req.Description),
		Status:      domain.ProjectActive,
		Color:       req.Color,
		TargetHours: req.TargetHours,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	id, err := p.storage.InsertProject(ctx, project)
	if err != nil {
		return domain.Project{}, err
	}
	project.ID, _ = bson.ObjectIDFromHex(id)
	return project, nil
}

func (p *Project) GetProject(ctx context.Context, id, userID string) (domain.ProjectWithStats, error) {
	project, err := p.storage.FindProject(ctx, id, userID)
	if err != nil {
		return domain.ProjectWithStats{}, err
	}

	stats, err := p.projectStats(ctx, userID)
	if err != nil {
		return domain.ProjectWithStats{}, err
	}
	return domain.ProjectWithStats{Project: project, Stats: stats[id]}, nil
}

func (p *Project) ListProjects(ctx context.Context, userID string, status domain.ProjectStatus) ([]domain.ProjectWithStats, error) {
	projects, err := p.storage.ListProjects(ctx, userID, status)
	if err != nil {
		return nil, err
	}

	stats, err := p.projectStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.ProjectWithStats, 0, len(projects))
	for _, project := range projects {
		out = append(out, domain.ProjectWithStats{
			Project: project,
			Stats:   stats[project.ID.Hex()],
		})
	}
	return out, nil
}

func (p *Project) UpdateProject(ctx context.Context, id, userID string, req api.UpdateProjectRequest) (domain.Project, error) {
	set := bson.M{}
	if req.Name != nil {
		set["name"] = utils.SanitizeText(*req.Name)
	}
	if req.Description != nil {
		set["description"] = utils.SanitizeText(*req.Description)
	}
	if req.Status != nil {
		set["status"] = *req.Status
	}
	if req.Color != nil {
		set["color"] = *req.Color
	}
	if req.TargetHours != nil {
		set["target_hours"] = *req.TargetHours
	}
	if req.StartDate != nil {
		set["start_date"] = *req.StartDate
	}
	if req.EndDate != nil {
		set["end_date"] = *req.EndDate
	}
	if len(set) == 0 {
		return domain.Project{}, internal_errors.BadRequest("Nothing to update")
	}

	return p.storage.UpdateProject(ctx, id, userID, set)
}

func (p *Project) DeleteProject(ctx context.Context, id, userID string) error {
	return p.storage.DeleteProject(ctx, id, userID)
}

func (p *Project) CreateSkill(ctx context.Context, userID string, req api.CreateSkillRequest) (domain.Skill, error) {
	now := time.Now().UTC()
	skill := domain.Skill{
		UserID:       userID,
		Name:         utils.SanitizeText(req.Name),
		Description:  utils.SanitizeText(req.Description),
		Category:     utils.SanitizeText(req.Category),
		TargetLevel:  req.TargetLevel,
		CurrentLevel: req.CurrentLevel,
		Color:        req.Color,
		Icon:         req.Icon,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	id, err := p.storage.InsertSkill(ctx, skill)
	if err != nil {
		return domain.Skill{}, err
	}
	skill.ID, _ = bson.ObjectIDFromHex(id)
	return skill, nil
}

func (p *Project) GetSkill(ctx context.Context, id, userID string) (domain.SkillWithStats, error) {
	skill, err := p.storage.FindSkill(ctx, id, userID)
	if err != nil {
		return domain.SkillWithStats{}, err
	}

	stats, err := p.skillStats(ctx, userID)
	if err != nil {
		return domain.SkillWithStats{}, err
	}
	return domain.SkillWithStats{Skill: skill, Stats: stats[id]}, nil
}

func (p *Project) ListSkills(ctx context.Context, userID, category string) ([]domain.SkillWithStats, error) {
	skills, err := p.storage.ListSkills(ctx, userID, category)
	if err != nil {
		return nil, err
	}

	stats, err := p.skillStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.SkillWithStats, 0, len(skills))
	for _, skill := range skills {
		out = append(out, domain.SkillWithStats{
			Skill: skill,
			Stats: stats[skill.ID.Hex()],
		})
	}
	return out, nil
}

func (p *Project) SkillCategories(ctx context.Context, userID string) ([]string, error) {
	return p.storage.SkillCategories(ctx, userID)
}

func (p *Project) UpdateSkill(ctx context.Context, id, userID string, req api.UpdateSkillRequest) (domain.Skill, error) {
	set := bson.M{}
	if req.Name != nil {
		set["name"] = utils.SanitizeText(*req.Name)
	}
	if req.Description != nil {
		set["description"] = utils.SanitizeText(*req.Description)
	}
	if req.Category != nil {
		set["category"] = utils.SanitizeText(*req.Category)
	}
	if req.TargetLevel != nil {
		set["target_level"] = *req.TargetLevel
	}
	if req.CurrentLevel != nil {
		set["current_level"] = *req.CurrentLevel
	}
	if req.Color != nil {
		set["color"] = *req.Color
	}
	if req.Icon != nil {
		set["icon"] = *req.Icon
	}
	if len(set) == 0 {
		return domain.Skill{}, internal_errors.BadRequest("Nothing to update")
	}

	return p.storage.UpdateSkill(ctx, id, userID, set)
}

func (p *Project) DeleteSkill(ctx context.Context, id, userID string) error {
	return p.storage.DeleteSkill(ctx, id, userID)
}

func (p *Project) projectStats(ctx context.Context, userID string) (map[string]domain.TimeStats, error) {
	rows, err := p.storage.TimeSpentByProject(ctx, userID, nil, nil)
	if err != nil {
		return nil, err
	}
	return statsByID(rows), nil
}

func (p *Project) skillStats(ctx context.Context, userID string) (map[string]domain.TimeStats, error) {
	rows, err := p.storage.TimeSpentBySkill(ctx, userID, nil, nil)
	if err != nil {
		return nil, err
	}
	return statsByID(rows), nil
}

func statsByID(rows []domain.TimeSpent) map[string]domain.TimeStats {
	stats := make(map[string]domain.TimeStats, len(rows))
	for _, row := range rows {
		stats[row.ID] = domain.TimeStats{TotalHours: row.TotalHours, TaskCount: row.TaskCount}
	}
	return stats
}
