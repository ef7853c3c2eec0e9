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

type DiaryService interface {
	Create(ctx context.Context, userID string, req api.CreateDiaryEntryRequest) (domain.DiaryEntry, error)
	GetByDate(ctx context.Context, userID, date string) (domain.DiaryEntry, error)
	List(ctx context.Context, userID string, f domain.DiaryFilter) ([]domain.DiaryEntry, error)
	UpdateByDate(ctx context.Context, userID, date string, req api.UpdateDiaryEntryRequest) (domain.DiaryEntry, error)
	DeleteByDate(ctx context.Context, userID, date string) error
	MoodSummary(ctx context.Context, userID string, days int) (domain.MoodSummary, error)
}

type DiaryStorage interface {
	InsertDiaryEntry(ctx context.Context, entry domain.DiaryEntry) (string, error)
	FindDiaryEntryByDate(ctx context.Context, userID, date string) (domain.DiaryEntry, error)
	ListDiaryEntries(ctx context.Context, userID string, f domain.DiaryFilter) ([]domain.DiaryEntry, error)
	UpdateDiaryEntryByDate(ctx context.Context, userID, date string, set bson.M) (domain.DiaryEntry, error)
	DeleteDiaryEntryByDate(ctx context.Context, userID, date string) error
	MoodCounts(ctx context.Context, userID, startDate string) (map[domain.Mood]int64, error)
}

type Diary struct {
	storage     DiaryStorage
	defaultDays int
}

func NewDiary(storage DiaryStorage, defaultDays int) *Diary {
	if defaultDays <= 0 {
		defaultDays = 30
	}
	return &Diary{storage: storage, defaultDays: defaultDays}
}

func (d *Diary) Create(ctx context.Context, userID string, req api.CreateDiaryEntryRequest) (domain.DiaryEntry, error) {
	now := time.Now().UTC()
	entry := domain.DiaryEntry{
		UserID:          userID,
		Date:            req.Date,
		Title:           utils.SanitizeText(req.Title),
		Content:         utils.SanitizeText(req.Content),
		Mood:            req.Mood,
		Activities:      utils.SanitizeAll(req.Activities),
		Accomplishments: utils.SanitizeAll(req.Accomplishments),
		Challenges:      utils.SanitizeAll(req.Challenges),
		Gratitude:       utils.SanitizeAll(req.Gratitude),
		TomorrowGoals:   utils.SanitizeAll(req.TomorrowGoals),
		Tags:            utils.SanitizeAll(req.Tags),
		Weather:         utils.SanitizeText(req.Weather),
		Location:        utils.SanitizeText(req.Location),
		IsPrivate:       true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	id, err := d.storage.InsertDiaryEntry(ctx, entry)
	if err != nil {
		return domain.DiaryEntry{}, err
	}
	entry.ID, _ = bson.ObjectIDFromHex(id)
	return entry, nil
}

func (d *Diary) GetByDate(ctx context.Context, userID, date string) (domain.DiaryEntry, error) {
	return d.storage.FindDiaryEntryByDate(ctx, userID, date)
}

func (d *Diary) List(ctx context.Context, userID string, f domain.DiaryFilter) ([]domain.DiaryEntry, error) {
	return d.storage.ListDiaryEntries(ctx, userID, f)
}

func (d *Diary) UpdateByDate(ctx context.Context, userID, date string, req api.UpdateDiaryEntryRequest) (domain.DiaryEntry, error) {
	set := bson.M{}
	if req.Title != nil {
		set["title"] = utils.SanitizeText(*req.Title)
	}
	if req.Content != nil {
		set["content"] = utils.SanitizeText(*req.Content)
	}
	if req.Mood != nil {
		set["mood"] = *req.Mood
	}
	if req.Activities != nil {
		set["activities"] = utils.SanitizeAll(req.Activities)
	}
	if req.Accomplishments != nil {
		set["accomplishments"] = utils.SanitizeAll(req.Accomplishments)
	}
	if req.Challenges != nil {
		set["challenges"] = utils.SanitizeAll(req.Challenges)
	}
	if req.Gratitude != nil {
		set["gratitude"] = utils.SanitizeAll(req.Gratitude)
	}
	if req.TomorrowGoals != nil {
		set["tomorrow_goals"] = utils.SanitizeAll(req.TomorrowGoals)
	}
	if req.Tags != nil {
		set["tags"] = utils.SanitizeAll(req.Tags)
	}
	if req.Weather != nil {
		set["weather"] = utils.SanitizeText(*req.Weather)
	}
	if req.Location != nil {
		set["location"] = utils.SanitizeText(*req.Location)
	}
	if len(set) == 0 {
		return domain.DiaryEntry{}, internal_errors.BadRequest("Nothing to update")
	}

	return d.storage.UpdateDiaryEntryByDate(ctx, userID, date, set)
}

func (d *Diary) DeleteByDate(ctx context.Context, userID, date string) error {
	return d.storage.DeleteDiaryEntryByDate(ctx, userID, date)
}

// MoodSummary counts entries per mood over the last N days, falling
// back to the configured window.
func (d *Diary) MoodSummary(ctx context.Context, userID string, days int) (domain.MoodSummary, error) {
	if days <= 0 {
		days = d.defaultDays
	}
	startDate := time.Now().UTC().AddDate(0, 0, -days).Format("2006-01-02")

	counts, err := d.storage.MoodCounts(ctx, userID, startDate)
	if err != nil {
		return domain.MoodSummary{}, err
	}
	return domain.MoodSummary{Days: days, Counts: counts}, nil
}
