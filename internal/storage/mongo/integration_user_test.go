package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/sanfusis123/solo-leveling-backend/internal/domain"
	"github.com/sanfusis123/solo-leveling-backend/internal/errors"
)

func testUser(username, email string) domain.User {
	now := time.Now().UTC()
	return domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: "hash",
		Role:         domain.RoleStandard,
		Status:       domain.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestInsertUser(t *testing.T) {
	ctx := context.Background()

	id, err := storage.InsertUser(ctx, testUser("alice", "alice@example.com"))
	require.NoError(t, err, "InsertUser should not return an error")
	assert.NotEmpty(t, id, "Expected a non-empty id")

	_, err = storage.InsertUser(ctx, testUser("alice", "alice2@example.com"))
	require.Error(t, err, "Duplicate username should return an error")
	e, ok := err.(*errors.ErrorWithStatusCode)
	require.True(t, ok, "Expected ErrorWithStatusCode")
	assert.Equal(t, 400, e.StatusCode, "Expected status code 400")

	_, err = storage.InsertUser(ctx, testUser("alice2", "alice@example.com"))
	require.Error(t, err, "Duplicate email should return an error")
	e, ok = err.(*errors.ErrorWithStatusCode)
	require.True(t, ok, "Expected ErrorWithStatusCode")
	assert.Equal(t, 400, e.StatusCode, "Expected status code 400")
}

func TestFindUser(t *testing.T) {
	ctx := context.Background()

	id, err := storage.InsertUser(ctx, testUser("bob", "bob@example.com"))
	require.NoError(t, err, "InsertUser should not return an error")

	user, err := storage.FindUserByUsername(ctx, "bob")
	require.NoError(t, err, "FindUserByUsername should not return an error")
	assert.Equal(t, "bob@example.com", user.Email, "Unexpected user email")

	user, err = storage.FindUserByID(ctx, id)
	require.NoError(t, err, "FindUserByID should not return an error")
	assert.Equal(t, "bob", user.Username, "Unexpected username")

	_, err = storage.FindUserByUsername(ctx, "nonexistent")
	require.Error(t, err, "Expected error for nonexistent user")
	e, ok := err.(*errors.ErrorWithStatusCode)
	require.True(t, ok, "Expected ErrorWithStatusCode")
	assert.Equal(t, 404, e.StatusCode, "Expected status code 404")

	_, err = storage.FindUserByID(ctx, bson.NewObjectID().Hex())
	require.Error(t, err, "Expected error for unknown id")
	e, ok = err.(*errors.ErrorWithStatusCode)
	require.True(t, ok, "Expected ErrorWithStatusCode")
	assert.Equal(t, 404, e.StatusCode, "Expected status code 404")
}

func TestUpdateUserAtomicSet(t *testing.T) {
	ctx := context.Background()

	id, err := storage.InsertUser(ctx, testUser("carol", "carol@example.com"))
	require.NoError(t, err, "InsertUser should not return an error")

	// Role and status land in one document write.
	user, err := storage.UpdateUser(ctx, id, bson.M{
		"role":   domain.RoleAdmin,
		"status": domain.StatusActive,
	})
	require.NoError(t, err, "UpdateUser should not return an error")
	assert.True(t, user.IsAdmin(), "Expected admin role")
	assert.True(t, user.IsActive(), "Expected active status")

	stored, err := storage.FindUserByID(ctx, id)
	require.NoError(t, err, "FindUserByID should not return an error")
	assert.Equal(t, domain.RoleAdmin, stored.Role, "Role should be persisted")
	assert.Equal(t, domain.StatusActive, stored.Status, "Status should be persisted")
}

func TestOldestUser(t *testing.T) {
	ctx := context.Background()

	older := testUser("dave", "dave@example.com")
	older.CreatedAt = time.Now().UTC().Add(-48 * time.Hour)
	_, err := storage.InsertUser(ctx, older)
	require.NoError(t, err, "InsertUser should not return an error")

	_, err = storage.InsertUser(ctx, testUser("erin", "erin@example.com"))
	require.NoError(t, err, "InsertUser should not return an error")

	user, err := storage.OldestUser(ctx)
	require.NoError(t, err, "OldestUser should not return an error")
	assert.Equal(t, "dave", user.Username, "Expected the earliest-created account")
}

func TestDeleteUserRecord(t *testing.T) {
	ctx := context.Background()

	id, err := storage.InsertUser(ctx, testUser("frank", "frank@example.com"))
	require.NoError(t, err, "InsertUser should not return an error")

	err = storage.DeleteUser(ctx, id)
	require.NoError(t, err, "DeleteUser should not return an error")

	_, err = storage.FindUserByID(ctx, id)
	require.Error(t, err, "Expected error for deleted user")
	e, ok := err.(*errors.ErrorWithStatusCode)
	require.True(t, ok, "Expected ErrorWithStatusCode")
	assert.Equal(t, 404, e.StatusCode, "Expected status code 404")

	err = storage.DeleteUser(ctx, id)
	require.Error(t, err, "DeleteUser should return an error for a missing user")
	e, ok = err.(*errors.ErrorWithStatusCode)
	require.True(t, ok, "Expected ErrorWithStatusCode")
	assert.Equal(t, 404, e.StatusCode, "Expected status code 404")
}

func TestAdminStats(t *testing.T) {
	ctx := context.Background()

	before, err := storage.AdminStats(ctx)
	require.NoError(t, err, "AdminStats should not return an error")

	pending := testUser("stats_pending", "stats_pending@example.com")
	_, err = storage.InsertUser(ctx, pending)
	require.NoError(t, err, "InsertUser should not return an error")

	active := testUser("stats_active", "stats_active@example.com")
	active.Status = domain.StatusActive
	active.Role = domain.RoleAdmin
	_, err = storage.InsertUser(ctx, active)
	require.NoError(t, err, "InsertUser should not return an error")

	after, err := storage.AdminStats(ctx)
	require.NoError(t, err, "AdminStats should not return an error")
	assert.Equal(t, before.Users.Total+2, after.Users.Total, "Expected two more users")
	assert.Equal(t, before.Users.Pending+1, after.Users.Pending, "Expected one more pending user")
	assert.Equal(t, before.Users.Active+1, after.Users.Active, "Expected one more active user")
	assert.Equal(t, before.Users.Admins+1, after.Users.Admins, "Expected one more admin")
}
