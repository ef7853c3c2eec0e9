package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Role is a closed set: authorization checks switch over it exhaustively.
type Role string

const (
	RoleStandard Role = "standard"
	RoleAdmin    Role = "admin"
)

// Status is the account lifecycle state. New accounts start pending and
// only an admin (or the one-time bootstrap) moves them to active.
type Status string

const (
	StatusPending     Status = "pending"
	StatusActive      Status = "active"
	StatusDeactivated Status = "deactivated"
)

type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string        `bson:"username" json:"username"`
	Email        string        `bson:"email" json:"email"`
	FullName     string        `bson:"full_name,omitempty" json:"full_name,omitempty"`
	Bio          string        `bson:"bio,omitempty" json:"bio,omitempty"`
	PasswordHash string        `bson:"password_hash" json:"-"`
	Role         Role          `bson:"role" json:"role"`
	Status       Status        `bson:"status" json:"status"`
	CreatedAt    time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time     `bson:"updated_at" json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsActive() bool {
	return u.Status == StatusActive
}
