// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"errors"
	"time"
)

// ErrDuplicateUsername is returned by UserRepository.Create when the
// username is already taken.
var ErrDuplicateUsername = errors.New("username already taken")

// User represents a registered account. PasswordHash never leaves the
// backend; response shaping is the HTTP adapter's job.
type User struct {
	ID           int64
	Username     string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// UserRepository defines the port for user persistence operations.
// Lookups return (nil, nil) when no matching user exists.
type UserRepository interface {
	Create(ctx context.Context, username, name, passwordHash string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	List(ctx context.Context) ([]User, error)
	DeleteAll(ctx context.Context) error
}
