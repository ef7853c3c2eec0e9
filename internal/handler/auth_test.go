package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/sanfusis123/solo-leveling-backend/internal/api"
	"github.com/sanfusis123/solo-leveling-backend/internal/domain"
	internal_errors "github.com/sanfusis123/solo-leveling-backend/internal/errors"
	"github.com/sanfusis123/solo-leveling-backend/internal/middleware"
)

type MockAuthService struct {
	SignupFunc        func(ctx context.Context, req api.SignupRequest) (domain.User, error)
	LoginFunc         func(ctx context.Context, req api.LoginRequest) (string, error)
	AuthenticateFunc  func(ctx context.Context, token string) (domain.User, error)
	UpdateProfileFunc func(ctx context.Context, userID string, req api.UpdateProfileRequest) (domain.User, error)
}

func (m *MockAuthService) Signup(ctx context.Context, req api.SignupRequest) (domain.User, error) {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, req)
	}
	return domain.User{ID: bson.NewObjectID(), Username: req.Username, Status: domain.StatusPending}, nil
}

func (m *MockAuthService) Login(ctx context.Context, req api.LoginRequest) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return "token", nil
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (domain.User, error) {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, token)
	}
	return domain.User{}, nil
}

func (m *MockAuthService) UpdateProfile(ctx context.Context, userID string, req api.UpdateProfileRequest) (domain.User, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, userID, req)
	}
	return domain.User{}, nil
}

func authHandler(auth *MockAuthService) *Handler {
	return New(auth, nil, nil, nil, nil, nil, nil, nil, nil, nil, nil)
}

func TestSignupHandler(t *testing.T) {
	t.Run("creates a pending account", func(t *testing.T) {
		h := authHandler(&MockAuthService{})

		body := `{"username":"dana","email":"dana@example.com","password":"secret1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.Signup(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var user domain.User
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&user))
		assert.Equal(t, "dana", user.Username)
		assert.Equal(t, domain.StatusPending, user.Status)
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		h := authHandler(&MockAuthService{})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", strings.NewReader("{not json"))
		rec := httptest.NewRecorder()
		h.Signup(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		h := authHandler(&MockAuthService{})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", strings.NewReader(`{"username":"dana"}`))
		rec := httptest.NewRecorder()
		h.Signup(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLoginHandler(t *testing.T) {
	t.Run("returns a bearer token", func(t *testing.T) {
		h := authHandler(&MockAuthService{
			LoginFunc: func(ctx context.Context, req api.LoginRequest) (string, error) {
				assert.Equal(t, "dana", req.Username)
				return "jwt-token", nil
			},
		})

		body := `{"username":"dana","password":"secret1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.Login(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp api.LoginResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "jwt-token", resp.AccessToken)
		assert.Equal(t, "bearer", resp.TokenType)
	})

	t.Run("propagates the service status code", func(t *testing.T) {
		h := authHandler(&MockAuthService{
			LoginFunc: func(ctx context.Context, req api.LoginRequest) (string, error) {
				return "", internal_errors.InvalidCredentials()
			},
		})

		body := `{"username":"dana","password":"wrong1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.Login(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid credentials")
	})

	t.Run("masks unexpected errors", func(t *testing.T) {
		h := authHandler(&MockAuthService{
			LoginFunc: func(ctx context.Context, req api.LoginRequest) (string, error) {
				return "", assert.AnError
			},
		})

		body := `{"username":"dana","password":"secret1"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.Login(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "Internal server error")
		assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
	})
}

func TestMeHandler(t *testing.T) {
	h := authHandler(&MockAuthService{})

	user := domain.User{ID: bson.NewObjectID(), Username: "dana"}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	req = req.WithContext(context.WithValue(req.Context(), middleware.UserKey, &user))
	rec := httptest.NewRecorder()
	h.Me(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got domain.User
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "dana", got.Username)
}
