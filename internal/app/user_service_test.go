package app

import (
	"context"
	"errors"
	"testing"

	"bloglist/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

type mockPostRepo struct {
	createFn      func(ctx context.Context, p *domain.Post) (*domain.Post, error)
	getAllFn      func(ctx context.Context) ([]domain.Post, error)
	getByIDFn     func(ctx context.Context, id int64) (*domain.Post, error)
	listByOwnerFn func(ctx context.Context, userID int64) ([]domain.Post, error)
	updateFn      func(ctx context.Context, id int64, p *domain.Post) (*domain.Post, error)
	deleteFn      func(ctx context.Context, id int64) error
	incrementFn   func(ctx context.Context, id int64) (*domain.Post, error)
}

func (m *mockPostRepo) Create(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	if m.createFn != nil {
		return m.createFn(ctx, p)
	}
	cp := *p
	cp.ID = 1
	return &cp, nil
}

func (m *mockPostRepo) GetAll(ctx context.Context) ([]domain.Post, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return nil, nil
}

func (m *mockPostRepo) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockPostRepo) ListByOwner(ctx context.Context, userID int64) ([]domain.Post, error) {
	if m.listByOwnerFn != nil {
		return m.listByOwnerFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockPostRepo) Update(ctx context.Context, id int64, p *domain.Post) (*domain.Post, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, p)
	}
	return nil, nil
}

func (m *mockPostRepo) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockPostRepo) IncrementLikes(ctx context.Context, id int64) (*domain.Post, error) {
	if m.incrementFn != nil {
		return m.incrementFn(ctx, id)
	}
	return nil, nil
}

func (m *mockPostRepo) DeleteAll(ctx context.Context) error {
	return nil
}

func TestUserService_Register_TooShort(t *testing.T) {
	created := false
	users := &mockUserRepo{
		createFn: func(ctx context.Context, username, name, passwordHash string) (*domain.User, error) {
			created = true
			return nil, errors.New("should not be called")
		},
	}
	svc := NewUserService(users, &mockPostRepo{})

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"short username", "ab", "validpass"},
		{"short password", "validuser", "pw"},
		{"both short", "a", "b"},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tc.username, "Name", tc.password)
			if !errors.Is(err, ErrCredentialsTooShort) {
				t.Errorf("expected ErrCredentialsTooShort, got %v", err)
			}
		})
	}

	if created {
		t.Error("no record should be persisted for invalid input")
	}
}

func TestUserService_Register_Duplicate(t *testing.T) {
	users := &mockUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
			return &domain.User{ID: 1, Username: username}, nil
		},
	}
	svc := NewUserService(users, &mockPostRepo{})

	_, err := svc.Register(context.Background(), "mluukkai", "Matti", "salainen")
	if !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestUserService_Register_DuplicateRace(t *testing.T) {
	// Precheck sees nothing, the insert hits the unique constraint.
	users := &mockUserRepo{
		createFn: func(ctx context.Context, username, name, passwordHash string) (*domain.User, error) {
			return nil, domain.ErrDuplicateUsername
		},
	}
	svc := NewUserService(users, &mockPostRepo{})

	_, err := svc.Register(context.Background(), "mluukkai", "Matti", "salainen")
	if !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestUserService_Register_HashesPassword(t *testing.T) {
	var storedHash string
	users := &mockUserRepo{
		createFn: func(ctx context.Context, username, name, passwordHash string) (*domain.User, error) {
			storedHash = passwordHash
			return &domain.User{ID: 1, Username: username, Name: name, PasswordHash: passwordHash}, nil
		},
	}
	svc := NewUserService(users, &mockPostRepo{})

	user, err := svc.Register(context.Background(), "mluukkai", "Matti", "salainen")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID != 1 {
		t.Errorf("expected id 1, got %d", user.ID)
	}
	if storedHash == "salainen" || storedHash == "" {
		t.Fatal("password must be stored as a salted hash")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("salainen")); err != nil {
		t.Errorf("stored hash does not match the password: %v", err)
	}
}

func TestUserService_List_ResolvesPostsByOwner(t *testing.T) {
	users := &mockUserRepo{
		listFn: func(ctx context.Context) ([]domain.User, error) {
			return []domain.User{
				{ID: 1, Username: "mluukkai", Name: "Matti"},
				{ID: 2, Username: "hellas", Name: "Arto"},
			}, nil
		},
	}
	posts := &mockPostRepo{
		listByOwnerFn: func(ctx context.Context, userID int64) ([]domain.Post, error) {
			if userID == 1 {
				return []domain.Post{{ID: 10, Title: "Test", URL: "http://x", UserID: 1}}, nil
			}
			return nil, nil
		},
	}
	svc := NewUserService(users, posts)

	profiles, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(profiles) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(profiles))
	}
	if len(profiles[0].Posts) != 1 || profiles[0].Posts[0].ID != 10 {
		t.Errorf("expected mluukkai's post resolved, got %+v", profiles[0].Posts)
	}
	if len(profiles[1].Posts) != 0 {
		t.Errorf("expected no posts for hellas, got %+v", profiles[1].Posts)
	}
}
