package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/sanfusis123/solo-leveling-backend/internal/domain"
	internal_errors "github.com/sanfusis123/solo-leveling-backend/internal/errors"
)

func (s *Storage) decks() *mongo.Collection {
	return s.db.Collection(colDecks)
}

func (s *Storage) cards() *mongo.Collection {
	return s.db.Collection(colCards)
}

// readableDeckFilter matches a deck the user owns or any public deck.
func readableDeckFilter(id, userID string) (bson.M, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, internal_errors.NotFound("Deck not found")
	}
	return bson.M{
		"_id": oid,
		"$or": bson.A{bson.M{"user_id": userID}, bson.M{"is_public": true}},
	}, nil
}

func (s *Storage) InsertDeck(ctx context.Context, deck domain.FlashcardDeck) (string, error) {
	res, err := s.decks().InsertOne(ctx, deck)
	if err != nil {
		return "", fmt.Errorf("failed to insert deck: %w", err)
	}
	return res.InsertedID.(bson.ObjectID).Hex(), nil
}

// FindDeck returns the deck if the user owns it or it is public.
func (s *Storage) FindDeck(ctx context.Context, id, userID string) (domain.FlashcardDeck, error) {
	filter, err := readableDeckFilter(id, userID)
	if err != nil {
		return domain.FlashcardDeck{}, err
	}

	var deck domain.FlashcardDeck
	if err := s.decks().FindOne(ctx, filter).Decode(&deck); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.FlashcardDeck{}, internal_errors.NotFound("Deck not found")
		}
		return domain.FlashcardDeck{}, fmt.Errorf("failed to query deck: %w", err)
	}
	return deck, nil
}

// ListDecks returns the user's own decks plus everyone's public decks.
func (s *Storage) ListDecks(ctx context.Context, userID, category string) ([]domain.FlashcardDeck, error) {
	filter := bson.M{"$or": bson.A{bson.M{"user_id": userID}, bson.M{"is_public": true}}}
	if category != "" {
		filter["category"] = category
	}

	cursor, err := s.decks().Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list decks: %w", err)
	}

	decks := []domain.FlashcardDeck{}
	if err := cursor.All(ctx, &decks); err != nil {
		return nil, fmt.Errorf("failed to decode decks: %w", err)
	}
	return decks, nil
}

// UpdateDeck only matches decks owned by the user.
func (s *Storage) UpdateDeck(ctx context.Context, id, userID string, set bson.M) (domain.FlashcardDeck, error) {
	filter, err := ownedFilter(id, userID)
	if err != nil {
		return domain.FlashcardDeck{}, err
	}

	set["updated_at"] = time.Now().UTC()
	var deck domain.FlashcardDeck
	err = s.decks().FindOneAndUpdate(ctx, filter, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&deck)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.FlashcardDeck{}, internal_errors.NotFound("Deck not found")
		}
		return domain.FlashcardDeck{}, fmt.Errorf("failed to update deck: %w", err)
	}
	return deck, nil
}

func (s *Storage) DeleteDeck(ctx context.Context, id, userID string) error {
	filter, err := ownedFilter(id, userID)
	if err != nil {
		return err
	}

	res, err := s.decks().DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete deck: %w", err)
	}
	if res.DeletedCount == 0 {
		return internal_errors.NotFound("Deck not found")
	}

	// Orphaned cards are useless without their deck.
	if _, err := s.cards().DeleteMany(ctx, bson.M{"deck_id": id}); err != nil {
		return fmt.Errorf("failed to delete deck cards: %w", err)
	}
	return nil
}

// AdjustDeckCardCount keeps the denormalized card counter in sync.
func (s *Storage) AdjustDeckCardCount(ctx context.Context, deckID string, delta int) error {
	oid, err := bson.ObjectIDFromHex(deckID)
	if err != nil {
		return internal_errors.NotFound("Deck not found")
	}

	_, err = s.decks().UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$inc": bson.M{"card_count": delta},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	})
	if err != nil {
		return fmt.Errorf("failed to adjust deck card count: %w", err)
	}
	return nil
}

func (s *Storage) InsertCard(ctx context.Context, card domain.Flashcard) (string, error) {
	res, err := s.cards().InsertOne(ctx, card)
	if err != nil {
		return "", fmt.Errorf("failed to insert card: %w", err)
	}
	return res.InsertedID.(bson.ObjectID).Hex(), nil
}

func (s *Storage) FindCard(ctx context.Context, id, userID string) (domain.Flashcard, error) {
	filter, err := ownedFilter(id, userID)
	if err != nil {
		return domain.Flashcard{}, err
	}

	var card domain.Flashcard
	if err := s.cards().FindOne(ctx, filter).Decode(&card); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Flashcard{}, internal_errors.NotFound("Card not found")
		}
		return domain.Flashcard{}, fmt.Errorf("failed to query card: %w", err)
	}
	return card, nil
}

// ListCards returns all cards of a deck; with dueOnly set, only cards
// never reviewed or whose next review is already due.
func (s *Storage) ListCards(ctx context.Context, deckID string, dueOnly bool) ([]domain.Flashcard, error) {
	filter := bson.M{"deck_id": deckID}
	if dueOnly {
		filter["$or"] = bson.A{
			bson.M{"next_review": nil},
			bson.M{"next_review": bson.M{"$lte": time.Now().UTC()}},
		}
	}

	cursor, err := s.cards().Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}

	cards := []domain.Flashcard{}
	if err := cursor.All(ctx, &cards); err != nil {
		return nil, fmt.Errorf("failed to decode cards: %w", err)
	}
	return cards, nil
}

func (s *Storage) UpdateCard(ctx context.Context, id, userID string, set bson.M) (domain.Flashcard, error) {
	filter, err := ownedFilter(id, userID)
	if err != nil {
		return domain.Flashcard{}, err
	}

	set["updated_at"] = time.Now().UTC()
	var card domain.Flashcard
	err = s.cards().FindOneAndUpdate(ctx, filter, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&card)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Flashcard{}, internal_errors.NotFound("Card not found")
		}
		return domain.Flashcard{}, fmt.Errorf("failed to update card: %w", err)
	}
	return card, nil
}

func (s *Storage) DeleteCard(ctx context.Context, id, userID string) error {
	filter, err := ownedFilter(id, userID)
	if err != nil {
		return err
	}

	res, err := s.cards().DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete card: %w", err)
	}
	if res.DeletedCount == 0 {
		return internal_errors.NotFound("Card not found")
	}
	return nil
}
