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

const (
	minEaseFactor     = 1.3
	defaultEaseFactor = 2.5
)

type FlashcardService interface {
	CreateDeck(ctx context.Context, userID string, req api.CreateDeckRequest) (domain.FlashcardDeck, error)
	GetDeck(ctx context.Context, id, userID string) (domain.FlashcardDeck, error)
	ListDecks(ctx context.Context, userID, category string) ([]domain.FlashcardDeck, error)
	UpdateDeck(ctx context.Context, id, userID string, req api.UpdateDeckRequest) (domain.FlashcardDeck, error)
	DeleteDeck(ctx context.Context, id, userID string) error

	CreateCard(ctx context.Context, deckID, userID string, req api.CreateCardRequest) (domain.Flashcard, error)
	ListCards(ctx context.Context, deckID, userID string, dueOnly bool) ([]domain.Flashcard, error)
	UpdateCard(ctx context.Context, id, userID string, req api.UpdateCardRequest) (domain.Flashcard, error)
	ReviewCard(ctx context.Context, id, userID string, grade int) (domain.Flashcard, error)
	DeleteCard(ctx context.Context, id, userID string) error
}

type FlashcardStorage interface {
	InsertDeck(ctx context.Context, deck domain.FlashcardDeck) (string, error)
	FindDeck(ctx context.Context, id, userID string) (domain.FlashcardDeck, error)
	ListDecks(ctx context.Context, userID, category string) ([]domain.FlashcardDeck, error)
	UpdateDeck(ctx context.Context, id, userID string, set bson.M) (domain.FlashcardDeck, error)
	DeleteDeck(ctx context.Context, id, userID string) error
	AdjustDeckCardCount(ctx context.Context, deckID string, delta int) error

	InsertCard(ctx context.Context, card domain.Flashcard) (string, error)
	FindCard(ctx context.Context, id, userID string) (domain.Flashcard, error)
	ListCards(ctx context.Context, deckID string, dueOnly bool) ([]domain.Flashcard, error)
	UpdateCard(ctx context.Context, id, userID string, set bson.M) (domain.Flashcard, error)
	DeleteCard(ctx context.Context, id, userID string) error
}

type Flashcard struct {
	storage FlashcardStorage
}

func NewFlashcard(storage FlashcardStorage) *Flashcard {
	return &Flashcard{storage: storage}
}

func (f *Flashcard) CreateDeck(ctx context.Context, userID string, req api.CreateDeckRequest) (domain.FlashcardDeck, error) {
	now := time.Now().UTC()
	deck := domain.FlashcardDeck{
		UserID:      userID,
		Name:        utils.SanitizeText(req.Name),
		Description: utils.SanitizeText(req.Description),
		Category:    utils.SanitizeText(req.Category),
		Tags:        utils.SanitizeAll(req.Tags),
		IsPublic:    req.IsPublic,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	id, err := f.storage.InsertDeck(ctx, deck)
	if err != nil {
		return domain.FlashcardDeck{}, err
	}
	deck.ID, _ = bson.ObjectIDFromHex(id)
	return deck, nil
}

func (f *Flashcard) GetDeck(ctx context.Context, id, userID string) (domain.FlashcardDeck, error) {
	return f.storage.FindDeck(ctx, id, userID)
}

func (f *Flashcard) ListDecks(ctx context.Context, userID, category string) ([]domain.FlashcardDeck, error) {
	return f.storage.ListDecks(ctx, userID, category)
}

func (f *Flashcard) UpdateDeck(ctx context.Context, id, userID string, req api.UpdateDeckRequest) (domain.FlashcardDeck, error) {
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
	if req.Tags != nil {
		set["tags"] = utils.SanitizeAll(req.Tags)
	}
	if req.IsPublic != nil {
		set["is_public"] = *req.IsPublic
	}
	if len(set) == 0 {
		return domain.FlashcardDeck{}, internal_errors.BadRequest("Nothing to update")
	}

	return f.storage.UpdateDeck(ctx, id, userID, set)
}

func (f *Flashcard) DeleteDeck(ctx context.Context, id, userID string) error {
	return f.storage.DeleteDeck(ctx, id, userID)
}

// CreateCard adds a card to a deck the user owns. New cards have no
// review history and are immediately due; they start with a one-day
// base interval so the first passing review schedules interval*ease
// days out.
func (f *Flashcard) CreateCard(ctx context.Context, deckID, userID string, req api.CreateCardRequest) (domain.Flashcard, error) {
	deck, err := f.storage.FindDeck(ctx, deckID, userID)
	if err != nil {
		return domain.Flashcard{}, err
	}
	if deck.UserID != userID {
		return domain.Flashcard{}, internal_errors.Forbidden("Only the deck owner can add cards")
	}

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = domain.DifficultyMedium
	}

	now := time.Now().UTC()
	card := domain.Flashcard{
		DeckID:       deckID,
		UserID:       userID,
		Front:        utils.SanitizeText(req.Front),
		Back:         utils.SanitizeText(req.Back),
		Hint:         utils.SanitizeText(req.Hint),
		Tags:         utils.SanitizeAll(req.Tags),
		Difficulty:   difficulty,
		EaseFactor:   defaultEaseFactor,
		IntervalDays: 1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	id, err := f.storage.InsertCard(ctx, card)
	if err != nil {
		return domain.Flashcard{}, err
	}
	if err := f.storage.AdjustDeckCardCount(ctx, deckID, 1); err != nil {
		return domain.Flashcard{}, err
	}
	card.ID, _ = bson.ObjectIDFromHex(id)
	return card, nil
}

func (f *Flashcard) ListCards(ctx context.Context, deckID, userID string, dueOnly bool) ([]domain.Flashcard, error) {
	// Deck lookup doubles as the visibility check.
	if _, err := f.storage.FindDeck(ctx, deckID, userID); err != nil {
		return nil, err
	}
	return f.storage.ListCards(ctx, deckID, dueOnly)
}

func (f *Flashcard) UpdateCard(ctx context.Context, id, userID string, req api.UpdateCardRequest) (domain.Flashcard, error) {
	set := bson.M{}
	if req.Front != nil {
		set["front"] = utils.SanitizeText(*req.Front)
	}
	if req.Back != nil {
		set["back"] = utils.SanitizeText(*req.Back)
	}
	if req.Hint != nil {
		set["hint"] = utils.SanitizeText(*req.Hint)
	}
	if req.Tags != nil {
		set["tags"] = utils.SanitizeAll(req.Tags)
	}
	if req.Difficulty != nil {
		set["difficulty"] = *req.Difficulty
	}
	if len(set) == 0 {
		return domain.Flashcard{}, internal_errors.BadRequest("Nothing to update")
	}

	return f.storage.UpdateCard(ctx, id, userID, set)
}

// ReviewCard records a recall attempt and reschedules the card using
// the SM-2 spacing rules. Grades of 3 and above count as correct and
// grow both interval and ease; failing grades shrink the interval and
// drop the ease, floored at 1.3 so cards never spiral into daily
// repetition forever.
func (f *Flashcard) ReviewCard(ctx context.Context, id, userID string, grade int) (domain.Flashcard, error) {
	if grade < 1 || grade > 5 {
		return domain.Flashcard{}, internal_errors.BadRequest("Grade must be between 1 and 5")
	}

	card, err := f.storage.FindCard(ctx, id, userID)
	if err != nil {
		return domain.Flashcard{}, err
	}

	ease := card.EaseFactor
	if ease == 0 {
		ease = defaultEaseFactor
	}
	interval := card.IntervalDays
	correct := card.CorrectCount

	if grade >= 3 {
		correct++
		ease += 0.1
		if interval == 0 {
			interval = 1
		} else {
			interval = int(float64(interval) * ease)
		}
	} else {
		ease -= 0.2
		if ease < minEaseFactor {
			ease = minEaseFactor
		}
		switch grade {
		case 1:
			interval = 1
		default:
			interval = int(float64(interval) * 0.6)
			if interval < 1 {
				interval = 1
			}
		}
	}

	now := time.Now().UTC()
	next := now.AddDate(0, 0, interval)
	return f.storage.UpdateCard(ctx, id, userID, bson.M{
		"review_count":  card.ReviewCount + 1,
		"correct_count": correct,
		"last_reviewed": now,
		"next_review":   next,
		"interval_days": interval,
		"ease_factor":   ease,
	})
}

func (f *Flashcard) DeleteCard(ctx context.Context, id, userID string) error {
	card, err := f.storage.FindCard(ctx, id, userID)
	if err != nil {
		return err
	}
	if err := f.storage.DeleteCard(ctx, id, userID); err != nil {
		return err
	}
	return f.storage.AdjustDeckCardCount(ctx, card.DeckID, -1)
}
