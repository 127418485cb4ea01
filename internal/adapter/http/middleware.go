package adapthttp

import (
	"context"
	"net/http"
	"strings"

	"bloglist/internal/app"
	"bloglist/internal/domain"
)

type contextKey string

const userContextKey contextKey = "user"

// withUser extracts a bearer token, resolves the user and attaches them to
// the request context. A missing or invalid token leaves the request
// unauthenticated; whether that is fatal is each handler's decision.
func (s *Server) withUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		user, err := s.auth.ResolveToken(r.Context(), token)
		if err != nil || user == nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(header, "Bearer "), true
}

func userFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userContextKey).(*domain.User)
	return user
}

// requireUser returns the authenticated user or writes a 401 and returns nil.
func requireUser(w http.ResponseWriter, r *http.Request) *domain.User {
	user := userFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, app.ErrInvalidToken)
		return nil
	}
	return user
}
