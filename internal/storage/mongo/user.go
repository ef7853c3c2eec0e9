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

func (s *Storage) users() *mongo.Collection {
	return s.db.Collection(colUsers)
}

func (s *Storage) FindUserByUsername(ctx context.Context, username string) (domain.User, error) {
	var user domain.User
	err := s.users().FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.User{}, internal_errors.NotFound("User not found")
		}
		return domain.User{}, fmt.Errorf("failed to query user by username: %w", err)
	}
	return user, nil
}

func (s *Storage) FindUserByID(ctx context.Context, id string) (domain.User, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return domain.User{}, internal_errors.NotFound("User not found")
	}

	var user domain.User
	err = s.users().FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.User{}, internal_errors.NotFound("User not found")
		}
		return domain.User{}, fmt.Errorf("failed to query user by id: %w", err)
	}
	return user, nil
}

// UsernameOrEmailTaken backs the signup uniqueness check. The unique
// indexes remain the real guard against races.
func (s *Storage) UsernameOrEmailTaken(ctx context.Context, username, email string) (bool, error) {
	n, err := s.users().CountDocuments(ctx, bson.M{
		"$or": bson.A{bson.M{"username": username}, bson.M{"email": email}},
	})
	if err != nil {
		return false, fmt.Errorf("failed to check username/email uniqueness: %w", err)
	}
	return n > 0, nil
}

func (s *Storage) InsertUser(ctx context.Context, user domain.User) (string, error) {
	res, err := s.users().InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", internal_errors.BadRequest("Username or email already registered")
		}
		return "", fmt.Errorf("failed to insert user: %w", err)
	}
	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (s *Storage) UpdateUser(ctx context.Context, id string, set bson.M) (domain.User, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return domain.User{}, internal_errors.NotFound("User not found")
	}

	set["updated_at"] = time.Now().UTC()
	var user domain.User
	err = s.users().FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.User{}, internal_errors.NotFound("User not found")
		}
		if mongo.IsDuplicateKeyError(err) {
			return domain.User{}, internal_errors.BadRequest("Email already registered")
		}
		return domain.User{}, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

func (s *Storage) UpdateUserStatus(ctx context.Context, id string, status domain.Status) (domain.User, error) {
	return s.UpdateUser(ctx, id, bson.M{"status": status})
}

func (s *Storage) UpdateUserRole(ctx context.Context, id string, role domain.Role) (domain.User, error) {
	return s.UpdateUser(ctx, id, bson.M{"role": role})
}

func (s *Storage) UpdateUserPassword(ctx context.Context, id string, passwordHash string) error {
	_, err := s.UpdateUser(ctx, id, bson.M{"password_hash": passwordHash})
	return err
}

func (s *Storage) DeleteUser(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return internal_errors.NotFound("User not found")
	}

	res, err := s.users().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return internal_errors.NotFound("User not found")
	}
	return nil
}

func (s *Storage) ListUsers(ctx context.Context, skip, limit int64, status domain.Status) ([]domain.User, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	cursor, err := s.users().Find(ctx, filter,
		options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	var users []domain.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

func (s *Storage) CountAdmins(ctx context.Context) (int64, error) {
	n, err := s.users().CountDocuments(ctx, bson.M{"role": domain.RoleAdmin})
	if err != nil {
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}
	return n, nil
}

// OldestUser returns the earliest-created account; the bootstrap tool
// promotes it to the first admin.
func (s *Storage) OldestUser(ctx context.Context) (domain.User, error) {
	var user domain.User
	err := s.users().FindOne(ctx, bson.M{},
		options.FindOne().SetSort(bson.D{{Key: "created_at", Value: 1}})).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.User{}, internal_errors.NotFound("No users found")
		}
		return domain.User{}, fmt.Errorf("failed to query oldest user: %w", err)
	}
	return user, nil
}

func (s *Storage) AdminStats(ctx context.Context) (domain.AdminStats, error) {
	var stats domain.AdminStats

	counts := []struct {
		dst    *int64
		coll   string
		filter bson.M
	}{
		{&stats.Users.Total, colUsers, bson.M{}},
		{&stats.Users.Pending, colUsers, bson.M{"status": domain.StatusPending}},
		{&stats.Users.Active, colUsers, bson.M{"status": domain.StatusActive}},
		{&stats.Users.Deactivated, colUsers, bson.M{"status": domain.StatusDeactivated}},
		{&stats.Users.Admins, colUsers, bson.M{"role": domain.RoleAdmin}},
		{&stats.Content.Events, colEvents, bson.M{}},
		{&stats.Content.Flashcards, colCards, bson.M{}},
		{&stats.Content.DiaryEntries, colDiaryEntries, bson.M{}},
		{&stats.Content.ImprovementLogs, colLogs, bson.M{}},
	}
	for _, c := range counts {
		n, err := s.db.Collection(c.coll).CountDocuments(ctx, c.filter)
		if err != nil {
			return domain.AdminStats{}, fmt.Errorf("failed to count %s: %w", c.coll, err)
		}
		*c.dst = n
	}
	return stats, nil
}
