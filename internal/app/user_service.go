package app

import (
	"context"
	"errors"

	"bloglist/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrUsernameTaken indicates a registration attempt with an existing username.
	ErrUsernameTaken = errors.New("username must be unique")
	// ErrCredentialsTooShort indicates that the username or password fails the length rule.
	ErrCredentialsTooShort = errors.New("username and password must be at least 3 characters")
)

// UserProfile is a user together with the posts they own, resolved as a
// derived view by querying posts filtered by owner.
type UserProfile struct {
	User  domain.User
	Posts []domain.Post
}

// UserService implements registration and user listing on top of the
// credential store.
type UserService struct {
	users domain.UserRepository
	posts domain.PostRepository
}

// NewUserService creates a UserService backed by the given repositories.
func NewUserService(users domain.UserRepository, posts domain.PostRepository) *UserService {
	return &UserService{users: users, posts: posts}
}

// Register validates credentials, hashes the password and persists the user.
// The plaintext password is never stored.
func (s *UserService) Register(ctx context.Context, username, name, password string) (*domain.User, error) {
	if len(username) < 3 || len(password) < 3 {
		return nil, ErrCredentialsTooShort
	}

	existing, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, username, name, string(hash))
	if errors.Is(err, domain.ErrDuplicateUsername) {
		// Lost a race with a concurrent registration.
		return nil, ErrUsernameTaken
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// List returns every user with their owned posts resolved. The posts are
// looked up by owner id rather than read from a stored back-reference, so
// the view cannot drift from the post table.
func (s *UserService) List(ctx context.Context) ([]UserProfile, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	profiles := make([]UserProfile, 0, len(users))
	for _, u := range users {
		posts, err := s.posts.ListByOwner(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, UserProfile{User: u, Posts: posts})
	}
	return profiles, nil
}
