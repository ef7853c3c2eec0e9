package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/sanfusis123/solo-leveling-backend/internal/api"
	"github.com/sanfusis123/solo-leveling-backend/internal/domain"
	internal_errors "github.com/sanfusis123/solo-leveling-backend/internal/errors"
	"github.com/sanfusis123/solo-leveling-backend/internal/logger"
	"github.com/sanfusis123/solo-leveling-backend/internal/service/utils"
)

type AuthService interface {
	Signup(ctx context.Context, req api.SignupRequest) (domain.User, error)
	Login(ctx context.Context, req api.LoginRequest) (string, error)
	Authenticate(ctx context.Context, token string) (domain.User, error)
	UpdateProfile(ctx context.Context, userID string, req api.UpdateProfileRequest) (domain.User, error)
}

type AuthStorage interface {
	FindUserByUsername(ctx context.Context, username string) (domain.User, error)
	FindUserByID(ctx context.Context, id string) (domain.User, error)
	UsernameOrEmailTaken(ctx context.Context, username, email string) (bool, error)
	InsertUser(ctx context.Context, user domain.User) (string, error)
	UpdateUser(ctx context.Context, id string, set bson.M) (domain.User, error)
}

type Jwt interface {
	Issue(userID string) (string, error)
	Verify(tokenString string) (string, error)
}

type Auth struct {
	storage AuthStorage
	jwt     Jwt
}

func NewAuth(storage AuthStorage, jwt Jwt) *Auth {
	return &Auth{storage: storage, jwt: jwt}
}

// Signup registers a new account in pending status. Nobody can log in
// until an admin activates the account.
func (a *Auth) Signup(ctx context.Context, req api.SignupRequest) (domain.User, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))
	email := strings.ToLower(strings.TrimSpace(req.Email))

	taken, err := a.storage.UsernameOrEmailTaken(ctx, username, email)
	if err != nil {
		return domain.User{}, err
	}
	if taken {
		return domain.User{}, internal_errors.BadRequest("Username or email already registered")
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return domain.User{}, err
	}

	now := time.Now().UTC()
	user := domain.User{
		Username:     username,
		Email:        email,
		FullName:     utils.SanitizeText(req.FullName),
		Bio:          utils.SanitizeText(req.Bio),
		PasswordHash: string(passHash),
		Role:         domain.RoleStandard,
		Status:       domain.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	id, err := a.storage.InsertUser(ctx, user)
	if err != nil {
		return domain.User{}, err
	}
	user.ID, _ = bson.ObjectIDFromHex(id)
	return user, nil
}

// Login verifies credentials and returns an access token. Unknown
// usernames and wrong passwords produce the same error so responses
// never reveal which accounts exist.
func (a *Auth) Login(ctx context.Context, req api.LoginRequest) (string, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))

	user, err := a.storage.FindUserByUsername(ctx, username)
	if err != nil {
		if internal_errors.IsNotFound(err) {
			return "", internal_errors.InvalidCredentials()
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return "", internal_errors.InvalidCredentials()
		}
		// The stored hash is unparseable. Never blame the caller for that.
		logger.Log.Error("stored password hash is corrupt", "user_id", user.ID.Hex(), "error", err)
		return "", internal_errors.CorruptCredential()
	}

	if !user.IsActive() {
		return "", internal_errors.AccountNotActive(string(user.Status))
	}

	token, err := a.jwt.Issue(user.ID.Hex())
	if err != nil {
		logger.Log.Error("failed to create jwt token", "user_id", user.ID.Hex(), "error", err)
		return "", err
	}
	return token, nil
}

// Authenticate resolves a bearer token to an active account. An account
// deleted after the token was issued yields the same error as an
// invalid token.
func (a *Auth) Authenticate(ctx context.Context, token string) (domain.User, error) {
	userID, err := a.jwt.Verify(token)
	if err != nil {
		return domain.User{}, err
	}

	user, err := a.storage.FindUserByID(ctx, userID)
	if err != nil {
		if internal_errors.IsNotFound(err) {
			return domain.User{}, internal_errors.AccountNotFound()
		}
		return domain.User{}, err
	}

	if !user.IsActive() {
		return domain.User{}, internal_errors.AccountNotActive(string(user.Status))
	}
	return user, nil
}

// UpdateProfile applies the caller's own profile changes. Role and
// status are not reachable from here.
func (a *Auth) UpdateProfile(ctx context.Context, userID string, req api.UpdateProfileRequest) (domain.User, error) {
	set := bson.M{}
	if req.Email != nil {
		set["email"] = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.FullName != nil {
		set["full_name"] = utils.SanitizeText(*req.FullName)
	}
	if req.Bio != nil {
		set["bio"] = utils.SanitizeText(*req.Bio)
	}
	if req.Password != nil {
		passHash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Log.Error("failed to hash password", "error", err)
			return domain.User{}, err
		}
		set["password_hash"] = string(passHash)
	}
	if len(set) == 0 {
		return domain.User{}, internal_errors.BadRequest("Nothing to update")
	}

	return a.storage.UpdateUser(ctx, userID, set)
}
