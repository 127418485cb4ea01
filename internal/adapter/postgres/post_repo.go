package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"bloglist/internal/domain"
)

// PostRepo implements domain.PostRepository on a shared DB.
type PostRepo struct {
	db *DB
}

// NewPostRepo wraps a DB as a PostRepository.
func NewPostRepo(db *DB) *PostRepo {
	return &PostRepo{db: db}
}

var _ domain.PostRepository = (*PostRepo)(nil)

const postWithOwner = `SELECT p.id, p.title, p.author, p.url, p.likes, p.user_id, p.created_at,
	u.id, u.username, u.name
	FROM posts p JOIN users u ON u.id = p.user_id`

func scanPostWithOwner(row interface{ Scan(...any) error }) (*domain.Post, error) {
	var p domain.Post
	var o domain.Owner
	err := row.Scan(&p.ID, &p.Title, &p.Author, &p.URL, &p.Likes, &p.UserID, &p.CreatedAt,
		&o.ID, &o.Username, &o.Name)
	if err != nil {
		return nil, err
	}
	p.Owner = &o
	return &p, nil
}

// Create persists a new post owned by p.UserID.
func (r *PostRepo) Create(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	var id int64
	err := r.db.sql.QueryRowContext(ctx,
		"INSERT INTO posts (title, author, url, likes, user_id, created_at) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id",
		p.Title, p.Author, p.URL, p.Likes, p.UserID, time.Now(),
	).Scan(&id)
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// GetAll returns every post with its owner resolved.
func (r *PostRepo) GetAll(ctx context.Context) ([]domain.Post, error) {
	return r.queryPosts(ctx, postWithOwner+" ORDER BY p.id")
}

// GetByID retrieves a post with its owner resolved.
func (r *PostRepo) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	p, err := scanPostWithOwner(r.db.sql.QueryRowContext(ctx, postWithOwner+" WHERE p.id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ListByOwner returns the posts owned by the given user.
func (r *PostRepo) ListByOwner(ctx context.Context, userID int64) ([]domain.Post, error) {
	return r.queryPosts(ctx, postWithOwner+" WHERE p.user_id = $1 ORDER BY p.id", userID)
}

// Update replaces title, author, url and likes, returning the stored row or
// (nil, nil) when the id does not exist.
func (r *PostRepo) Update(ctx context.Context, id int64, p *domain.Post) (*domain.Post, error) {
	res, err := r.db.sql.ExecContext(ctx,
		"UPDATE posts SET title = $1, author = $2, url = $3, likes = $4 WHERE id = $5",
		p.Title, p.Author, p.URL, p.Likes, id)
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

// Delete removes a post unconditionally; the ownership check happens in the
// service before this is invoked.
func (r *PostRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.sql.ExecContext(ctx, "DELETE FROM posts WHERE id = $1", id)
	return err
}

// IncrementLikes bumps the like count in a single statement, so two
// concurrent likes both land.
func (r *PostRepo) IncrementLikes(ctx context.Context, id int64) (*domain.Post, error) {
	res, err := r.db.sql.ExecContext(ctx, "UPDATE posts SET likes = likes + 1 WHERE id = $1", id)
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

// DeleteAll wipes the posts table. Testing support only.
func (r *PostRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.sql.ExecContext(ctx, "DELETE FROM posts")
	return err
}

func (r *PostRepo) queryPosts(ctx context.Context, query string, args ...any) ([]domain.Post, error) {
	rows, err := r.db.sql.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Post
	for rows.Next() {
		p, err := scanPostWithOwner(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}
