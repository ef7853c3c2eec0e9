package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/sanfusis123/solo-leveling-backend/internal/api"
	"github.com/sanfusis123/solo-leveling-backend/internal/domain"
	internal_errors "github.com/sanfusis123/solo-leveling-backend/internal/errors"
)

// --- Mocks ---

type MockAuthStorage struct {
	FindUserByUsernameFunc   func(ctx context.Context, username string) (domain.User, error)
	FindUserByIDFunc         func(ctx context.Context, id string) (domain.User, error)
	UsernameOrEmailTakenFunc func(ctx context.Context, username, email string) (bool, error)
	InsertUserFunc           func(ctx context.Context, user domain.User) (string, error)
	UpdateUserFunc           func(ctx context.Context, id string, set bson.M) (domain.User, error)
}

func (m *MockAuthStorage) FindUserByUsername(ctx context.Context, username string) (domain.User, error) {
	if m.FindUserByUsernameFunc != nil {
		return m.FindUserByUsernameFunc(ctx, username)
	}
	return activeUser("password"), nil
}

func (m *MockAuthStorage) FindUserByID(ctx context.Context, id string) (domain.User, error) {
	if m.FindUserByIDFunc != nil {
		return m.FindUserByIDFunc(ctx, id)
	}
	return activeUser("password"), nil
}

func (m *MockAuthStorage) UsernameOrEmailTaken(ctx context.Context, username, email string) (bool, error) {
	if m.UsernameOrEmailTakenFunc != nil {
		return m.UsernameOrEmailTakenFunc(ctx, username, email)
	}
	return false, nil
}

func (m *MockAuthStorage) InsertUser(ctx context.Context, user domain.User) (string, error) {
	if m.InsertUserFunc != nil {
		return m.InsertUserFunc(ctx, user)
	}
	return bson.NewObjectID().Hex(), nil
}

func (m *MockAuthStorage) UpdateUser(ctx context.Context, id string, set bson.M) (domain.User, error) {
	if m.UpdateUserFunc != nil {
		return m.UpdateUserFunc(ctx, id, set)
	}
	return activeUser("password"), nil
}

type MockJwt struct {
	IssueFunc  func(userID string) (string, error)
	VerifyFunc func(tokenString string) (string, error)
}

func (m *MockJwt) Issue(userID string) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(userID)
	}
	return "token", nil
}

func (m *MockJwt) Verify(tokenString string) (string, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(tokenString)
	}
	return bson.NewObjectID().Hex(), nil
}

func activeUser(password string) domain.User {
	passHash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return domain.User{
		ID:           bson.NewObjectID(),
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: string(passHash),
		Role:         domain.RoleStandard,
		Status:       domain.StatusActive,
		CreatedAt:    time.Now().UTC(),
	}
}

func notFound() error {
	return internal_errors.NotFound("User not found")
}

// --- Tests ---

func TestSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("creates pending standard user", func(t *testing.T) {
		var inserted domain.User
		storage := &MockAuthStorage{
			InsertUserFunc: func(ctx context.Context, user domain.User) (string, error) {
				inserted = user
				return bson.NewObjectID().Hex(), nil
			},
		}
		auth := NewAuth(storage, &MockJwt{})

		user, err := auth.Signup(ctx, api.SignupRequest{
			Username: "  Alice ",
			Email:    "Alice@Example.com",
			Password: "secret123",
		})
		require.NoError(t, err)

		assert.Equal(t, "alice", inserted.Username)
		assert.Equal(t, "alice@example.com", inserted.Email)
		assert.Equal(t, domain.StatusPending, inserted.Status)
		assert.Equal(t, domain.RoleStandard, inserted.Role)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(inserted.PasswordHash), []byte("secret123")))
		assert.Equal(t, domain.StatusPending, user.Status)
	})

	t.Run("rejects taken username or email", func(t *testing.T) {
		storage := &MockAuthStorage{
			UsernameOrEmailTakenFunc: func(ctx context.Context, username, email string) (bool, error) {
				return true, nil
			},
		}
		auth := NewAuth(storage, &MockJwt{})

		_, err := auth.Signup(ctx, api.SignupRequest{Username: "alice", Email: "a@b.com", Password: "secret123"})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, internal_errors.StatusCode(err))
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("returns token for active user", func(t *testing.T) {
		user := activeUser("secret123")
		storage := &MockAuthStorage{
			FindUserByUsernameFunc: func(ctx context.Context, username string) (domain.User, error) {
				assert.Equal(t, "alice", username)
				return user, nil
			},
		}
		jwt := &MockJwt{IssueFunc: func(userID string) (string, error) {
			assert.Equal(t, user.ID.Hex(), userID)
			return "issued-token", nil
		}}
		auth := NewAuth(storage, jwt)

		token, err := auth.Login(ctx, api.LoginRequest{Username: "Alice", Password: "secret123"})
		require.NoError(t, err)
		assert.Equal(t, "issued-token", token)
	})

	t.Run("unknown user and wrong password are indistinguishable", func(t *testing.T) {
		unknown := &MockAuthStorage{
			FindUserByUsernameFunc: func(ctx context.Context, username string) (domain.User, error) {
				return domain.User{}, notFound()
			},
		}
		_, errUnknown := NewAuth(unknown, &MockJwt{}).Login(ctx, api.LoginRequest{Username: "ghost", Password: "x"})

		known := &MockAuthStorage{
			FindUserByUsernameFunc: func(ctx context.Context, username string) (domain.User, error) {
				return activeUser("right-password"), nil
			},
		}
		_, errWrongPass := NewAuth(known, &MockJwt{}).Login(ctx, api.LoginRequest{Username: "alice", Password: "wrong"})

		require.Error(t, errUnknown)
		require.Error(t, errWrongPass)
		assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
		assert.Equal(t, http.StatusUnauthorized, internal_errors.StatusCode(errUnknown))
		assert.Equal(t, http.StatusUnauthorized, internal_errors.StatusCode(errWrongPass))
	})

	t.Run("pending account is rejected with 403", func(t *testing.T) {
		user := activeUser("secret123")
		user.Status = domain.StatusPending
		storage := &MockAuthStorage{
			FindUserByUsernameFunc: func(ctx context.Context, username string) (domain.User, error) {
				return user, nil
			},
		}
		_, err := NewAuth(storage, &MockJwt{}).Login(ctx, api.LoginRequest{Username: "alice", Password: "secret123"})
		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, internal_errors.StatusCode(err))
		assert.Contains(t, err.Error(), "pending")
	})

	t.Run("deactivated account is rejected with 403", func(t *testing.T) {
		user := activeUser("secret123")
		user.Status = domain.StatusDeactivated
		storage := &MockAuthStorage{
			FindUserByUsernameFunc: func(ctx context.Context, username string) (domain.User, error) {
				return user, nil
			},
		}
		_, err := NewAuth(storage, &MockJwt{}).Login(ctx, api.LoginRequest{Username: "alice", Password: "secret123"})
		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, internal_errors.StatusCode(err))
		assert.Contains(t, err.Error(), "deactivated")
	})

	t.Run("corrupt stored hash is a server error", func(t *testing.T) {
		user := activeUser("secret123")
		user.PasswordHash = "not-a-bcrypt-hash"
		storage := &MockAuthStorage{
			FindUserByUsernameFunc: func(ctx context.Context, username string) (domain.User, error) {
				return user, nil
			},
		}
		_, err := NewAuth(storage, &MockJwt{}).Login(ctx, api.LoginRequest{Username: "alice", Password: "secret123"})
		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, internal_errors.StatusCode(err))
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves token to user", func(t *testing.T) {
		user := activeUser("password")
		storage := &MockAuthStorage{
			FindUserByIDFunc: func(ctx context.Context, id string) (domain.User, error) {
				assert.Equal(t, user.ID.Hex(), id)
				return user, nil
			},
		}
		jwt := &MockJwt{VerifyFunc: func(tokenString string) (string, error) {
			return user.ID.Hex(), nil
		}}

		got, err := NewAuth(storage, jwt).Authenticate(ctx, "token")
		require.NoError(t, err)
		assert.Equal(t, user.Username, got.Username)
	})

	t.Run("invalid token propagates", func(t *testing.T) {
		jwt := &MockJwt{VerifyFunc: func(tokenString string) (string, error) {
			return "", internal_errors.TokenInvalid()
		}}
		_, err := NewAuth(&MockAuthStorage{}, jwt).Authenticate(ctx, "garbage")
		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, internal_errors.StatusCode(err))
	})

	t.Run("deleted account reads like invalid token", func(t *testing.T) {
		storage := &MockAuthStorage{
			FindUserByIDFunc: func(ctx context.Context, id string) (domain.User, error) {
				return domain.User{}, notFound()
			},
		}
		jwt := &MockJwt{VerifyFunc: func(tokenString string) (string, error) {
			return "", internal_errors.TokenInvalid()
		}}
		_, errMissing := NewAuth(storage, &MockJwt{}).Authenticate(ctx, "token")
		_, errInvalid := NewAuth(&MockAuthStorage{}, jwt).Authenticate(ctx, "token")

		require.Error(t, errMissing)
		require.Error(t, errInvalid)
		assert.Equal(t, errInvalid.Error(), errMissing.Error())
		assert.Equal(t, http.StatusUnauthorized, internal_errors.StatusCode(errMissing))
	})

	t.Run("inactive account is rejected", func(t *testing.T) {
		user := activeUser("password")
		user.Status = domain.StatusDeactivated
		storage := &MockAuthStorage{
			FindUserByIDFunc: func(ctx context.Context, id string) (domain.User, error) {
				return user, nil
			},
		}
		_, err := NewAuth(storage, &MockJwt{}).Authenticate(ctx, "token")
		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, internal_errors.StatusCode(err))
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("hashes new password and lowercases email", func(t *testing.T) {
		var gotSet bson.M
		storage := &MockAuthStorage{
			UpdateUserFunc: func(ctx context.Context, id string, set bson.M) (domain.User, error) {
				gotSet = set
				return activeUser("newpass"), nil
			},
		}
		email := "New@Example.com"
		password := "newpass"
		_, err := NewAuth(storage, &MockJwt{}).UpdateProfile(ctx, "id", api.UpdateProfileRequest{
			Email:    &email,
			Password: &password,
		})
		require.NoError(t, err)

		assert.Equal(t, "new@example.com", gotSet["email"])
		hash, ok := gotSet["password_hash"].(string)
		require.True(t, ok)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("newpass")))
	})

	t.Run("empty update is rejected", func(t *testing.T) {
		_, err := NewAuth(&MockAuthStorage{}, &MockJwt{}).UpdateProfile(ctx, "id", api.UpdateProfileRequest{})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, internal_errors.StatusCode(err))
	})
}
