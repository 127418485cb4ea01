// Package memory implements in-memory repositories for development and testing.
package memory

import (
	"context"
	"sync"
	"time"

	"bloglist/internal/domain"
)

// DB implements an in-memory database storage shared by the repo views.
type DB struct {
	mu    sync.Mutex
	users []*domain.User
	posts []*domain.Post

	userIDCounter int64
	postIDCounter int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{}
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*UserRepo)(nil)
var _ domain.PostRepository = (*PostRepo)(nil)

// --- UserRepository ---

// UserRepo implements user persistence on the shared DB.
type UserRepo struct {
	db *DB
}

// NewUserRepo returns the user repository view of the database.
func (db *DB) NewUserRepo() *UserRepo {
	return &UserRepo{db: db}
}

// Create creates a new user.
func (r *UserRepo) Create(ctx context.Context, username, name, passwordHash string) (*domain.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, u := range r.db.users {
		if u.Username == username {
			return nil, domain.ErrDuplicateUsername
		}
	}

	r.db.userIDCounter++
	u := &domain.User{
		ID:           r.db.userIDCounter,
		Username:     username,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	r.db.users = append(r.db.users, u)
	cp := *u
	return &cp, nil
}

// GetByUsername retrieves a user by username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, u := range r.db.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// GetByID retrieves a user by ID.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, u := range r.db.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// List returns every user in creation order.
func (r *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	out := make([]domain.User, 0, len(r.db.users))
	for _, u := range r.db.users {
		out = append(out, *u)
	}
	return out, nil
}

// DeleteAll removes every user.
func (r *UserRepo) DeleteAll(ctx context.Context) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.users = nil
	return nil
}

// --- PostRepository ---

// PostRepo implements post persistence on the shared DB.
type PostRepo struct {
	db *DB
}

// NewPostRepo returns the post repository view of the database.
func (db *DB) NewPostRepo() *PostRepo {
	return &PostRepo{db: db}
}

// Create creates a new post.
func (r *PostRepo) Create(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	r.db.mu.Lock()

	r.db.postIDCounter++
	stored := &domain.Post{
		ID:        r.db.postIDCounter,
		Title:     p.Title,
		Author:    p.Author,
		URL:       p.URL,
		Likes:     p.Likes,
		UserID:    p.UserID,
		CreatedAt: time.Now().UTC(),
	}
	r.db.posts = append(r.db.posts, stored)
	id := stored.ID
	r.db.mu.Unlock()

	return r.GetByID(ctx, id)
}

// GetAll returns every post with its owner resolved.
func (r *PostRepo) GetAll(ctx context.Context) ([]domain.Post, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	out := make([]domain.Post, 0, len(r.db.posts))
	for _, p := range r.db.posts {
		out = append(out, r.withOwner(p))
	}
	return out, nil
}

// GetByID retrieves a post with its owner resolved.
func (r *PostRepo) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, p := range r.db.posts {
		if p.ID == id {
			cp := r.withOwner(p)
			return &cp, nil
		}
	}
	return nil, nil
}

// ListByOwner returns the posts owned by the given user.
func (r *PostRepo) ListByOwner(ctx context.Context, userID int64) ([]domain.Post, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var out []domain.Post
	for _, p := range r.db.posts {
		if p.UserID == userID {
			out = append(out, r.withOwner(p))
		}
	}
	return out, nil
}

// Update replaces title, author, url and likes.
func (r *PostRepo) Update(ctx context.Context, id int64, in *domain.Post) (*domain.Post, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, p := range r.db.posts {
		if p.ID == id {
			p.Title = in.Title
			p.Author = in.Author
			p.URL = in.URL
			p.Likes = in.Likes
			cp := r.withOwner(p)
			return &cp, nil
		}
	}
	return nil, nil
}

// Delete removes a post by ID.
func (r *PostRepo) Delete(ctx context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for i, p := range r.db.posts {
		if p.ID == id {
			r.db.posts = append(r.db.posts[:i], r.db.posts[i+1:]...)
			return nil
		}
	}
	return nil
}

// IncrementLikes bumps the like count under the store lock.
func (r *PostRepo) IncrementLikes(ctx context.Context, id int64) (*domain.Post, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, p := range r.db.posts {
		if p.ID == id {
			p.Likes++
			cp := r.withOwner(p)
			return &cp, nil
		}
	}
	return nil, nil
}

// DeleteAll removes every post.
func (r *PostRepo) DeleteAll(ctx context.Context) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	r.db.posts = nil
	return nil
}

// withOwner copies a post and resolves its owner. Caller holds the lock.
func (r *PostRepo) withOwner(p *domain.Post) domain.Post {
	cp := *p
	for _, u := range r.db.users {
		if u.ID == p.UserID {
			cp.Owner = &domain.Owner{ID: u.ID, Username: u.Username, Name: u.Name}
			break
		}
	}
	return cp
}
