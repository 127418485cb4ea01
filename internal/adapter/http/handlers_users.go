package adapthttp

import (
	"errors"
	"net/http"

	"bloglist/internal/app"
)

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	user, err := s.users.Register(r.Context(), req.Username, req.Name, req.Password)
	if errors.Is(err, app.ErrCredentialsTooShort) {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if errors.Is(err, app.ErrUsernameTaken) {
		writeError(w, http.StatusConflict, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusCreated, userResponse{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
		Posts:    []postResponse{},
	})
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	profiles, err := s.users.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]userResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, userResponse{
			ID:       p.User.ID,
			Username: p.User.Username,
			Name:     p.User.Name,
			Posts:    toPostResponses(p.Posts),
		})
	}
	writeJSON(w, http.StatusOK, out)
}
