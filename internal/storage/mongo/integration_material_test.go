package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanfusis123/solo-leveling-backend/internal/domain"
	"github.com/sanfusis123/solo-leveling-backend/internal/errors"
)

func testMaterial(userID string, visibility domain.Visibility) domain.LearningMaterial {
	now := time.Now().UTC()
	return domain.LearningMaterial{
		UserID:     userID,
		Title:      "goroutine notes",
		Content:    "channels carry values between goroutines",
		Type:       domain.MaterialNote,
		Visibility: visibility,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestMaterialVisibility(t *testing.T) {
	ctx := context.Background()
	owner := "mat-vis-owner"
	friend := "mat-vis-friend"
	stranger := "mat-vis-stranger"

	privateID, err := storage.InsertMaterial(ctx, testMaterial(owner, domain.VisibilityPrivate))
	require.NoError(t, err, "InsertMaterial should not return an error")

	publicID, err := storage.InsertMaterial(ctx, testMaterial(owner, domain.VisibilityPublic))
	require.NoError(t, err, "InsertMaterial should not return an error")

	shared := testMaterial(owner, domain.VisibilityShared)
	shared.SharedWith = []string{friend}
	sharedID, err := storage.InsertMaterial(ctx, shared)
	require.NoError(t, err, "InsertMaterial should not return an error")

	// Private: owner only.
	_, err = storage.FindMaterial(ctx, privateID, owner)
	require.NoError(t, err, "Owner should read private material")
	_, err = storage.FindMaterial(ctx, privateID, stranger)
	require.Error(t, err, "Private material should be hidden from other users")
	e, ok := err.(*errors.ErrorWithStatusCode)
	require.True(t, ok, "Expected ErrorWithStatusCode")
	assert.Equal(t, 404, e.StatusCode, "Expected status code 404")

	// Public: anyone, with a view-count bump for non-owners.
	material, err := storage.FindMaterial(ctx, publicID, stranger)
	require.NoError(t, err, "Public material should be readable by anyone")
	assert.Equal(t, 1, material.ViewCount, "Reader views should bump the counter")
	material, err = storage.FindMaterial(ctx, publicID, owner)
	require.NoError(t, err, "FindMaterial should not return an error")
	assert.Equal(t, 1, material.ViewCount, "Owner reads should not bump the counter")

	// Shared: only the granted user.
	_, err = storage.FindMaterial(ctx, sharedID, friend)
	require.NoError(t, err, "Shared material should be readable by granted users")
	_, err = storage.FindMaterial(ctx, sharedID, stranger)
	require.Error(t, err, "Shared material should be hidden from non-granted users")
	e, ok = err.(*errors.ErrorWithStatusCode)
	require.True(t, ok, "Expected ErrorWithStatusCode")
	assert.Equal(t, 404, e.StatusCode, "Expected status code 404")
}

func TestShareMaterialMergesGrants(t *testing.T) {
	ctx := context.Background()
	owner := "mat-share-owner"

	material := testMaterial(owner, domain.VisibilityPrivate)
	material.SharedWith = []string{"existing-grant"}
	id, err := storage.InsertMaterial(ctx, material)
	require.NoError(t, err, "InsertMaterial should not return an error")

	updated, err := storage.ShareMaterial(ctx, id, owner, []string{"new-grant", "existing-grant"})
	require.NoError(t, err, "ShareMaterial should not return an error")
	assert.Equal(t, domain.VisibilityShared, updated.Visibility, "Sharing should flip visibility")
	assert.ElementsMatch(t, []string{"existing-grant", "new-grant"}, updated.SharedWith,
		"Grants should merge without duplicates")

	// Only the owner may share.
	_, err = storage.ShareMaterial(ctx, id, "mat-share-stranger", []string{"x"})
	require.Error(t, err, "Non-owners should not be able to share")
	e, ok := err.(*errors.ErrorWithStatusCode)
	require.True(t, ok, "Expected ErrorWithStatusCode")
	assert.Equal(t, 404, e.StatusCode, "Expected status code 404")
}

func TestListMaterialsArchiveFilter(t *testing.T) {
	ctx := context.Background()
	owner := "mat-list-owner"

	_, err := storage.InsertMaterial(ctx, testMaterial(owner, domain.VisibilityPrivate))
	require.NoError(t, err, "InsertMaterial should not return an error")

	archived := testMaterial(owner, domain.VisibilityPrivate)
	archived.IsArchived = true
	_, err = storage.InsertMaterial(ctx, archived)
	require.NoError(t, err, "InsertMaterial should not return an error")

	materials, err := storage.ListMaterials(ctx, owner, domain.MaterialFilter{})
	require.NoError(t, err, "ListMaterials should not return an error")
	require.Len(t, materials, 1, "Archived materials should be excluded by default")
	assert.False(t, materials[0].IsArchived, "Unexpected archived material")

	yes := true
	materials, err = storage.ListMaterials(ctx, owner, domain.MaterialFilter{Archived: &yes})
	require.NoError(t, err, "ListMaterials should not return an error")
	require.Len(t, materials, 1, "Expected only archived materials")
	assert.True(t, materials[0].IsArchived, "Expected the archived material")
}

func TestListSharedMaterials(t *testing.T) {
	ctx := context.Background()
	owner := "mat-feed-owner"
	reader := "mat-feed-reader"

	_, err := storage.InsertMaterial(ctx, testMaterial(owner, domain.VisibilityPublic))
	require.NoError(t, err, "InsertMaterial should not return an error")

	granted := testMaterial(owner, domain.VisibilityShared)
	granted.SharedWith = []string{reader}
	_, err = storage.InsertMaterial(ctx, granted)
	require.NoError(t, err, "InsertMaterial should not return an error")

	// Neither of these belongs in the reader's feed.
	_, err = storage.InsertMaterial(ctx, testMaterial(owner, domain.VisibilityPrivate))
	require.NoError(t, err, "InsertMaterial should not return an error")
	archivedPublic := testMaterial(owner, domain.VisibilityPublic)
	archivedPublic.IsArchived = true
	_, err = storage.InsertMaterial(ctx, archivedPublic)
	require.NoError(t, err, "InsertMaterial should not return an error")
	_, err = storage.InsertMaterial(ctx, testMaterial(reader, domain.VisibilityPublic))
	require.NoError(t, err, "InsertMaterial should not return an error")

	materials, err := storage.ListSharedMaterials(ctx, reader)
	require.NoError(t, err, "ListSharedMaterials should not return an error")

	var fromOwner []domain.LearningMaterial
	for _, m := range materials {
		assert.NotEqual(t, reader, m.UserID, "Own materials should be excluded from the feed")
		assert.False(t, m.IsArchived, "Archived materials should be excluded from the feed")
		if m.UserID == owner {
			fromOwner = append(fromOwner, m)
		}
	}
	assert.Len(t, fromOwner, 2, "Expected the public and the granted material")
}
