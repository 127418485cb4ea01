package adapthttp

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"bloglist/internal/domain"

	"github.com/gorilla/mux"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]any{"error": err.Error()})
}

func parseJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}

// pathID parses the {id} route variable. A non-numeric id is a client error,
// not a missing resource.
func pathID(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed id %q", raw)
	}
	return id, nil
}

// ---------------------------------------------------------------------------
// Response shapes. The password hash must never surface in any payload, so
// handlers always map domain entities through these.
// ---------------------------------------------------------------------------

type ownerResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

type postResponse struct {
	ID     int64          `json:"id"`
	Title  string         `json:"title"`
	Author string         `json:"author,omitempty"`
	URL    string         `json:"url"`
	Likes  int            `json:"likes"`
	User   *ownerResponse `json:"user,omitempty"`
}

type userResponse struct {
	ID       int64          `json:"id"`
	Username string         `json:"username"`
	Name     string         `json:"name"`
	Posts    []postResponse `json:"posts"`
}

func toPostResponse(p *domain.Post) postResponse {
	out := postResponse{
		ID:     p.ID,
		Title:  p.Title,
		Author: p.Author,
		URL:    p.URL,
		Likes:  p.Likes,
	}
	if p.Owner != nil {
		out.User = &ownerResponse{ID: p.Owner.ID, Username: p.Owner.Username, Name: p.Owner.Name}
	}
	return out
}

func toPostResponses(posts []domain.Post) []postResponse {
	out := make([]postResponse, 0, len(posts))
	for i := range posts {
		out = append(out, toPostResponse(&posts[i]))
	}
	return out
}
