package handlers

//go:generate mockgen -source=search.go -destination=mock_search_test.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-notes/internal/models"
)

// NoteSearcher finds notes by text.
type NoteSearcher interface {
	Search(ctx context.Context, ownerID int64, query string) ([]models.Note, error)
}

// SearchResponse lists the notes matching a query
// swagger:model SearchResponse
type SearchResponse struct {
	Query string        `json:"query"`
	Count int           `json:"count"`
	Notes []models.Note `json:"notes"`
}

// NewSearchHandler returns an HTTP handler for full-text note search.
// @Summary Search notes
// @Description Case-insensitive substring match on title or content, most recently modified first.
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param q query string true "Search term"
// @Success 200 {object} handlers.SearchResponse
// @Failure 400 {object} handlers.ErrorResponse "Search query is required"
// @Router /search [get]
func NewSearchHandler(svc NoteSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := callerID(w, r)
		if !ok {
			return
		}
		query := r.URL.Query().Get("q")

		notes, err := svc.Search(r.Context(), caller, query)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, SearchResponse{Query: query, Count: len(notes), Notes: notes})
	}
}
