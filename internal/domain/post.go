package domain

import (
	"context"
	"time"
)

// Owner is the subset of a user that is safe to embed in post payloads.
type Owner struct {
	ID       int64
	Username string
	Name     string
}

// Post represents a single blog-list entry. UserID is set at creation and
// never changes; Owner is resolved by the repository on reads and nil on
// writes.
type Post struct {
	ID        int64
	Title     string
	Author    string
	URL       string
	Likes     int
	UserID    int64
	Owner     *Owner
	CreatedAt time.Time
}

// PostRepository defines the port for post persistence operations.
// Lookups return (nil, nil) when no matching post exists.
type PostRepository interface {
	Create(ctx context.Context, p *Post) (*Post, error)
	GetAll(ctx context.Context) ([]Post, error)
	GetByID(ctx context.Context, id int64) (*Post, error)
	ListByOwner(ctx context.Context, userID int64) ([]Post, error)
	// Update replaces title, author, url and likes. It returns (nil, nil)
	// when the post does not exist.
	Update(ctx context.Context, id int64, p *Post) (*Post, error)
	Delete(ctx context.Context, id int64) error
	// IncrementLikes bumps the like count in a single atomic write and
	// returns the post as stored afterwards, or (nil, nil) when missing.
	IncrementLikes(ctx context.Context, id int64) (*Post, error)
	DeleteAll(ctx context.Context) error
}
