package app

import (
	"context"
	"errors"

	"bloglist/internal/domain"
)

var (
	// ErrPostNotFound indicates that the requested post does not exist.
	ErrPostNotFound = errors.New("post not found")
	// ErrNotOwner indicates a delete attempt by someone other than the creator.
	ErrNotOwner = errors.New("only the user who created the post can delete it")
	// ErrMissingFields indicates a post without the required title or url.
	ErrMissingFields = errors.New("title and url are required")
	// ErrNegativeLikes indicates a payload with a negative like count.
	ErrNegativeLikes = errors.New("likes must not be negative")
)

// PostService encapsulates the post CRUD use cases, including the ownership
// check on delete.
type PostService struct {
	posts domain.PostRepository
}

// NewPostService creates a PostService backed by the given repository.
func NewPostService(posts domain.PostRepository) *PostService {
	return &PostService{posts: posts}
}

// Create validates and stores a new post owned by the given user. Likes
// default to zero when the payload omits them.
func (s *PostService) Create(ctx context.Context, owner *domain.User, title, author, url string, likes int) (*domain.Post, error) {
	if title == "" || url == "" {
		return nil, ErrMissingFields
	}
	if likes < 0 {
		return nil, ErrNegativeLikes
	}
	return s.posts.Create(ctx, &domain.Post{
		Title:  title,
		Author: author,
		URL:    url,
		Likes:  likes,
		UserID: owner.ID,
	})
}

// List returns every post with its owner resolved.
func (s *PostService) List(ctx context.Context) ([]domain.Post, error) {
	return s.posts.GetAll(ctx)
}

// Get returns a single post by id.
func (s *PostService) Get(ctx context.Context, id int64) (*domain.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// Update replaces title, author, url and likes with the provided values.
// Any authenticated user may update; two concurrent updates are
// last-write-wins on the full record.
func (s *PostService) Update(ctx context.Context, id int64, title, author, url string, likes int) (*domain.Post, error) {
	if title == "" || url == "" {
		return nil, ErrMissingFields
	}
	if likes < 0 {
		return nil, ErrNegativeLikes
	}
	updated, err := s.posts.Update(ctx, id, &domain.Post{
		Title:  title,
		Author: author,
		URL:    url,
		Likes:  likes,
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrPostNotFound
	}
	return updated, nil
}

// Delete removes a post after checking that the requester is its owner.
func (s *PostService) Delete(ctx context.Context, requester *domain.User, id int64) error {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.UserID != requester.ID {
		return ErrNotOwner
	}
	return s.posts.Delete(ctx, id)
}

// Like bumps the like count by one in a single atomic write, so concurrent
// likes are never lost the way full-record resubmission can lose them.
func (s *PostService) Like(ctx context.Context, id int64) (*domain.Post, error) {
	post, err := s.posts.IncrementLikes(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}
