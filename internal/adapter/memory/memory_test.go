package memory

import (
	"context"
	"errors"
	"testing"

	"bloglist/internal/domain"
)

func TestUserRepo_DuplicateUsername(t *testing.T) {
	db := New()
	users := db.NewUserRepo()
	ctx := context.Background()

	if _, err := users.Create(ctx, "mluukkai", "Matti", "hash"); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := users.Create(ctx, "mluukkai", "Other", "hash2")
	if !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Errorf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestUserRepo_Lookups(t *testing.T) {
	db := New()
	users := db.NewUserRepo()
	ctx := context.Background()

	created, err := users.Create(ctx, "mluukkai", "Matti", "hash")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	byName, err := users.GetByUsername(ctx, "mluukkai")
	if err != nil || byName == nil || byName.ID != created.ID {
		t.Fatalf("GetByUsername: got %v, %v", byName, err)
	}

	byID, err := users.GetByID(ctx, created.ID)
	if err != nil || byID == nil || byID.Username != "mluukkai" {
		t.Fatalf("GetByID: got %v, %v", byID, err)
	}

	missing, err := users.GetByUsername(ctx, "nobody")
	if err != nil || missing != nil {
		t.Fatalf("expected (nil, nil) for missing user, got %v, %v", missing, err)
	}
}

func TestPostRepo_CreateRoundTrip(t *testing.T) {
	db := New()
	users := db.NewUserRepo()
	posts := db.NewPostRepo()
	ctx := context.Background()

	owner, err := users.Create(ctx, "mluukkai", "Matti", "hash")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	created, err := posts.Create(ctx, &domain.Post{
		Title:  "Test",
		Author: "Matti",
		URL:    "http://x",
		UserID: owner.ID,
	})
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if created.Likes != 0 {
		t.Errorf("expected likes to default to 0, got %d", created.Likes)
	}

	found, err := posts.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if found == nil {
		t.Fatal("created post not found")
	}
	if found.Title != "Test" || found.URL != "http://x" || found.Author != "Matti" {
		t.Errorf("round trip mismatch: %+v", found)
	}
	if found.Owner == nil || found.Owner.Username != "mluukkai" {
		t.Errorf("expected owner resolved to mluukkai, got %+v", found.Owner)
	}
}

func TestPostRepo_IncrementLikes(t *testing.T) {
	db := New()
	users := db.NewUserRepo()
	posts := db.NewPostRepo()
	ctx := context.Background()

	owner, _ := users.Create(ctx, "mluukkai", "Matti", "hash")
	created, _ := posts.Create(ctx, &domain.Post{Title: "Test", URL: "http://x", UserID: owner.ID})

	for i := 0; i < 3; i++ {
		if _, err := posts.IncrementLikes(ctx, created.ID); err != nil {
			t.Fatalf("increment: %v", err)
		}
	}

	found, _ := posts.GetByID(ctx, created.ID)
	if found.Likes != 3 {
		t.Errorf("expected 3 likes, got %d", found.Likes)
	}

	missing, err := posts.IncrementLikes(ctx, 999)
	if err != nil || missing != nil {
		t.Errorf("expected (nil, nil) for missing post, got %v, %v", missing, err)
	}
}

func TestPostRepo_ListByOwner(t *testing.T) {
	db := New()
	users := db.NewUserRepo()
	posts := db.NewPostRepo()
	ctx := context.Background()

	a, _ := users.Create(ctx, "mluukkai", "Matti", "hash")
	b, _ := users.Create(ctx, "hellas", "Arto", "hash")

	posts.Create(ctx, &domain.Post{Title: "One", URL: "http://1", UserID: a.ID})
	posts.Create(ctx, &domain.Post{Title: "Two", URL: "http://2", UserID: b.ID})
	posts.Create(ctx, &domain.Post{Title: "Three", URL: "http://3", UserID: a.ID})

	mine, err := posts.ListByOwner(ctx, a.ID)
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(mine))
	}
}

func TestDeleteAll(t *testing.T) {
	db := New()
	users := db.NewUserRepo()
	posts := db.NewPostRepo()
	ctx := context.Background()

	owner, _ := users.Create(ctx, "mluukkai", "Matti", "hash")
	posts.Create(ctx, &domain.Post{Title: "Test", URL: "http://x", UserID: owner.ID})

	if err := posts.DeleteAll(ctx); err != nil {
		t.Fatalf("posts DeleteAll: %v", err)
	}
	if err := users.DeleteAll(ctx); err != nil {
		t.Fatalf("users DeleteAll: %v", err)
	}

	all, _ := posts.GetAll(ctx)
	if len(all) != 0 {
		t.Errorf("expected no posts after reset, got %d", len(all))
	}
	remaining, _ := users.List(ctx)
	if len(remaining) != 0 {
		t.Errorf("expected no users after reset, got %d", len(remaining))
	}
}
