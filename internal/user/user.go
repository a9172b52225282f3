package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("user not found")

	// ErrInvalidCredentials covers both unknown email and wrong password, so
	// the login form cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Permission codes recognized by the catalog. Seeded by the migrations.
const (
	PermMarkReturned = "can_mark_returned"
	PermEdit         = "can_edit"
)

type User struct {
	ID        string
	Email     string
	Username  string
	Password  string // bcrypt hash
	CreatedAt time.Time
	UpdatedAt time.Time
}
