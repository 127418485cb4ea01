package main

import (
	"errors"
	"log"
	"net/http"
	"os"

	adapthttp "bloglist/internal/adapter/http"
	"bloglist/internal/adapter/postgres"
	"bloglist/internal/app"

	"github.com/gorilla/handlers"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Best-effort .env loading for local development; real deployments set
	// the environment directly.
	_ = godotenv.Load()

	addr := env("ADDR", ":3003")

	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		log.Fatal("DATABASE_URL is required")
	}
	secret := os.Getenv("SECRET")
	if secret == "" {
		log.Fatal("SECRET is required")
	}

	db, err := postgres.Open(connStr)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	defer func() { _ = db.Close() }()

	userRepo := postgres.NewUserRepo(db)
	postRepo := postgres.NewPostRepo(db)

	tokenSvc := app.NewTokenService([]byte(secret), 0)
	authSvc := app.NewAuthService(userRepo, tokenSvc)
	userSvc := app.NewUserService(userRepo, postRepo)
	postSvc := app.NewPostService(postRepo)

	srv := adapthttp.New(authSvc, userSvc, postSvc)
	if os.Getenv("ENABLE_TESTING_API") == "true" {
		log.Print("testing reset route enabled")
		srv = srv.WithTestingRoutes(userRepo, postRepo)
	}

	c := cors.New(cors.Options{
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Origin", "Content-Type", "Authorization"},
	})

	h := c.Handler(srv.Handler())
	h = handlers.RecoveryHandler()(h)
	h = handlers.CombinedLoggingHandler(os.Stdout, h)

	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
