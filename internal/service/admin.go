package service

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/sanfusis123/solo-leveling-backend/internal/domain"
	internal_errors "github.com/sanfusis123/solo-leveling-backend/internal/errors"
	"github.com/sanfusis123/solo-leveling-backend/internal/logger"
)

type AdminService interface {
	ListUsers(ctx context.Context, skip, limit int64, status domain.Status) ([]domain.User, error)
	GetUser(ctx context.Context, id string) (domain.User, error)
	Activate(ctx context.Context, id string) (domain.User, error)
	Deactivate(ctx context.Context, adminID, id string) (domain.User, error)
	Promote(ctx context.Context, id string) (domain.User, error)
	Demote(ctx context.Context, adminID, id string) (domain.User, error)
	SetPassword(ctx context.Context, id, newPassword string) error
	DeleteUser(ctx context.Context, adminID, id string) error
	Stats(ctx context.Context) (domain.AdminStats, error)
	BootstrapFirstAdmin(ctx context.Context) (domain.User, error)
}

type AdminStorage interface {
	FindUserByID(ctx context.Context, id string) (domain.User, error)
	UpdateUser(ctx context.Context, id string, set bson.M) (domain.User, error)
	UpdateUserStatus(ctx context.Context, id string, status domain.Status) (domain.User, error)
	UpdateUserRole(ctx context.Context, id string, role domain.Role) (domain.User, error)
	UpdateUserPassword(ctx context.Context, id string, passwordHash string) error
	DeleteUser(ctx context.Context, id string) error
	ListUsers(ctx context.Context, skip, limit int64, status domain.Status) ([]domain.User, error)
	CountAdmins(ctx context.Context) (int64, error)
	OldestUser(ctx context.Context) (domain.User, error)
	AdminStats(ctx context.Context) (domain.AdminStats, error)
}

type Admin struct {
	storage AdminStorage
}

func NewAdmin(storage AdminStorage) *Admin {
	return &Admin{storage: storage}
}

func (a *Admin) ListUsers(ctx context.Context, skip, limit int64, status domain.Status) ([]domain.User, error) {
	return a.storage.ListUsers(ctx, skip, limit, status)
}

func (a *Admin) GetUser(ctx context.Context, id string) (domain.User, error) {
	return a.storage.FindUserByID(ctx, id)
}

func (a *Admin) Activate(ctx context.Context, id string) (domain.User, error) {
	user, err := a.storage.UpdateUserStatus(ctx, id, domain.StatusActive)
	if err != nil {
		return domain.User{}, err
	}
	logger.Log.Info("account activated", "user_id", id)
	return user, nil
}

// Deactivate suspends an account. An admin cannot suspend themselves,
// otherwise the last admin could lock everyone out.
func (a *Admin) Deactivate(ctx context.Context, adminID, id string) (domain.User, error) {
	if adminID == id {
		return domain.User{}, internal_errors.BadRequest("You cannot deactivate your own account")
	}
	user, err := a.storage.UpdateUserStatus(ctx, id, domain.StatusDeactivated)
	if err != nil {
		return domain.User{}, err
	}
	logger.Log.Info("account deactivated", "user_id", id, "by", adminID)
	return user, nil
}

func (a *Admin) Promote(ctx context.Context, id string) (domain.User, error) {
	return a.storage.UpdateUserRole(ctx, id, domain.RoleAdmin)
}

func (a *Admin) Demote(ctx context.Context, adminID, id string) (domain.User, error) {
	if adminID == id {
		return domain.User{}, internal_errors.BadRequest("You cannot remove your own admin role")
	}
	return a.storage.UpdateUserRole(ctx, id, domain.RoleStandard)
}

// SetPassword replaces a user's password without knowing the old one.
func (a *Admin) SetPassword(ctx context.Context, id, newPassword string) error {
	passHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return err
	}
	return a.storage.UpdateUserPassword(ctx, id, string(passHash))
}

func (a *Admin) DeleteUser(ctx context.Context, adminID, id string) error {
	if adminID == id {
		return internal_errors.BadRequest("You cannot delete your own account")
	}
	if err := a.storage.DeleteUser(ctx, id); err != nil {
		return err
	}
	logger.Log.Info("account deleted", "user_id", id, "by", adminID)
	return nil
}

func (a *Admin) Stats(ctx context.Context) (domain.AdminStats, error) {
	return a.storage.AdminStats(ctx)
}

// BootstrapFirstAdmin promotes and activates the oldest account while
// the system has no admins. Once any admin exists it refuses, so the
// escape hatch closes itself.
func (a *Admin) BootstrapFirstAdmin(ctx context.Context) (domain.User, error) {
	admins, err := a.storage.CountAdmins(ctx)
	if err != nil {
		return domain.User{}, err
	}
	if admins > 0 {
		return domain.User{}, internal_errors.BadRequest("An admin account already exists")
	}

	oldest, err := a.storage.OldestUser(ctx)
	if err != nil {
		return domain.User{}, err
	}

	// Role and status must land together: a pending admin would make
	// CountAdmins refuse every retry while nobody can log in.
	user, err := a.storage.UpdateUser(ctx, oldest.ID.Hex(), bson.M{
		"role":   domain.RoleAdmin,
		"status": domain.StatusActive,
	})
	if err != nil {
		return domain.User{}, err
	}

	logger.Log.Info("bootstrapped first admin", "user_id", user.ID.Hex(), "username", user.Username)
	return user, nil
}
