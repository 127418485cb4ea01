package adapthttp

import "net/http"

// handleReset wipes all posts and users. Only registered when the server was
// built with WithTestingRoutes; test fixtures depend on it, production must
// never expose it.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if err := s.postRepo.DeleteAll(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if err := s.userRepo.DeleteAll(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
