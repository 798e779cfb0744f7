package handlers

//go:generate mockgen -source=notes.go -destination=mock_notes_test.go -package=handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/sbilibin2017/gw-notes/internal/apperrors"
	"github.com/sbilibin2017/gw-notes/internal/models"
)

// NoteLister lists the caller's notes.
type NoteLister interface {
	List(ctx context.Context, ownerID int64, f models.NoteFilter) ([]models.Note, error)
}

// NoteCreator creates notes.
type NoteCreator interface {
	Create(ctx context.Context, ownerID int64, in models.NoteCreate) (*models.Note, error)
}

// NoteGetter reads a single note.
type NoteGetter interface {
	Get(ctx context.Context, noteID, requesterID int64) (*models.Note, error)
}

// NoteUpdater changes a note.
type NoteUpdater interface {
	Update(ctx context.Context, noteID, requesterID int64, upd models.NoteUpdate) (*models.Note, error)
}

// NoteStatusUpdater changes the status of a note.
type NoteStatusUpdater interface {
	UpdateStatus(ctx context.Context, noteID, requesterID int64, status models.NoteStatus) (*models.Note, error)
}

// NoteDeleter removes a note.
type NoteDeleter interface {
	Delete(ctx context.Context, noteID, requesterID int64) error
}

// CreateNoteRequest represents the JSON body for note creation
// swagger:model CreateNoteRequest
type CreateNoteRequest struct {
	// Title
	// required: true
	// default: Groceries
	Title string `json:"title"`

	// Content
	// default: milk, eggs
	Content string `json:"content"`

	// Status, Active when omitted
	// enum: Active,Archived,Pinned
	Status string `json:"status"`

	// Tags to attach
	TagIDs []int64 `json:"tag_ids"`
}

// UpdateNoteRequest represents the JSON body for a note update. Omitted
// fields are left unchanged; tag_ids replaces the whole tag set when present.
// swagger:model UpdateNoteRequest
type UpdateNoteRequest struct {
	Title   *string  `json:"title"`
	Content *string  `json:"content"`
	Status  *string  `json:"status"`
	TagIDs  *[]int64 `json:"tag_ids"`
}

// UpdateNoteStatusRequest represents the JSON body for a status change
// swagger:model UpdateNoteStatusRequest
type UpdateNoteStatusRequest struct {
	// New status
	// required: true
	// enum: Active,Archived,Pinned
	Status string `json:"status"`
}

// NoteResponse wraps a single note
// swagger:model NoteResponse
type NoteResponse struct {
	Message string       `json:"message,omitempty"`
	Note    *models.Note `json:"note"`
}

// NotesResponse wraps a list of notes
// swagger:model NotesResponse
type NotesResponse struct {
	Notes []models.Note `json:"notes"`
}

// noteFilterFromQuery reads the list filters from the query string.
func noteFilterFromQuery(r *http.Request) (models.NoteFilter, error) {
	q := r.URL.Query()
	f := models.NoteFilter{
		Status: models.NoteStatus(q.Get("status")),
		Search: q.Get("search"),
		SortBy: q.Get("sort_by"),
		Order:  q.Get("order"),
	}
	if raw := q.Get("tag_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return f, apperrors.Invalid("Invalid tag_id")
		}
		f.TagID = &id
	}
	return f, nil
}

// NewListNotesHandler returns an HTTP handler that lists the caller's notes.
// @Summary List notes
// @Description Lists the caller's notes with their tags. Sorting defaults to last_modified desc.
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status" Enums(Active, Archived, Pinned)
// @Param tag_id query int false "Filter by tag"
// @Param search query string false "Case-insensitive substring of title or content"
// @Param sort_by query string false "Sort key" Enums(created_date, last_modified, title)
// @Param order query string false "Sort order" Enums(asc, desc)
// @Success 200 {object} handlers.NotesResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid filter"
// @Router /notes [get]
func NewListNotesHandler(svc NoteLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := callerID(w, r)
		if !ok {
			return
		}
		f, err := noteFilterFromQuery(r)
		if err != nil {
			writeError(w, err)
			return
		}

		notes, err := svc.List(r.Context(), caller, f)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, NotesResponse{Notes: notes})
	}
}

// NewCreateNoteHandler returns an HTTP handler that creates a note.
// @Summary Create note
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createNoteRequest body handlers.CreateNoteRequest true "Note"
// @Success 201 {object} handlers.NoteResponse
// @Failure 400 {object} handlers.ErrorResponse "Missing title, bad status or unknown tag"
// @Router /notes [post]
func NewCreateNoteHandler(svc NoteCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := callerID(w, r)
		if !ok {
			return
		}
		var req CreateNoteRequest
		if err := decodeJSON(r, &req, nil); err != nil {
			writeError(w, err)
			return
		}

		note, err := svc.Create(r.Context(), caller, models.NoteCreate{
			Title:   req.Title,
			Content: req.Content,
			Status:  models.NoteStatus(req.Status),
			TagIDs:  req.TagIDs,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, NoteResponse{Message: "Note created successfully", Note: note})
	}
}

// NewGetNoteHandler returns an HTTP handler that reads a note.
// @Summary Get note
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param note_id path int true "Note ID"
// @Success 200 {object} handlers.NoteResponse
// @Failure 404 {object} handlers.ErrorResponse "Note not found"
// @Router /notes/{note_id} [get]
func NewGetNoteHandler(svc NoteGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := callerID(w, r)
		if !ok {
			return
		}
		noteID, err := pathID(r, "note_id")
		if err != nil {
			writeError(w, err)
			return
		}

		note, err := svc.Get(r.Context(), noteID, caller)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, NoteResponse{Note: note})
	}
}

// NewUpdateNoteHandler returns an HTTP handler that updates a note.
// @Summary Update note
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param note_id path int true "Note ID"
// @Param updateNoteRequest body handlers.UpdateNoteRequest true "Fields to change"
// @Success 200 {object} handlers.NoteResponse
// @Failure 400 {object} handlers.ErrorResponse "Empty title, bad status or unknown tag"
// @Failure 404 {object} handlers.ErrorResponse "Note not found"
// @Router /notes/{note_id} [put]
func NewUpdateNoteHandler(svc NoteUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := callerID(w, r)
		if !ok {
			return
		}
		noteID, err := pathID(r, "note_id")
		if err != nil {
			writeError(w, err)
			return
		}
		var req UpdateNoteRequest
		if err := decodeJSON(r, &req, nil); err != nil {
			writeError(w, err)
			return
		}

		upd := models.NoteUpdate{Title: req.Title, Content: req.Content, TagIDs: req.TagIDs}
		if req.Status != nil {
			status := models.NoteStatus(*req.Status)
			upd.Status = &status
		}

		note, err := svc.Update(r.Context(), noteID, caller, upd)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, NoteResponse{Message: "Note updated successfully", Note: note})
	}
}

// NewUpdateNoteStatusHandler returns an HTTP handler that changes a note status.
// @Summary Update note status
// @Tags notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param note_id path int true "Note ID"
// @Param updateNoteStatusRequest body handlers.UpdateNoteStatusRequest true "Status"
// @Success 200 {object} handlers.NoteResponse
// @Failure 400 {object} handlers.ErrorResponse "Missing or invalid status"
// @Failure 404 {object} handlers.ErrorResponse "Note not found"
// @Router /notes/{note_id}/status [patch]
func NewUpdateNoteStatusHandler(svc NoteStatusUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := callerID(w, r)
		if !ok {
			return
		}
		noteID, err := pathID(r, "note_id")
		if err != nil {
			writeError(w, err)
			return
		}
		var req UpdateNoteStatusRequest
		if err := decodeJSON(r, &req, nil); err != nil {
			writeError(w, err)
			return
		}

		note, err := svc.UpdateStatus(r.Context(), noteID, caller, models.NoteStatus(req.Status))
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, NoteResponse{
			Message: fmt.Sprintf("Note status updated to %s", note.Status),
			Note:    note,
		})
	}
}

// NewDeleteNoteHandler returns an HTTP handler that deletes a note.
// @Summary Delete note
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param note_id path int true "Note ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.ErrorResponse "Note not found"
// @Router /notes/{note_id} [delete]
func NewDeleteNoteHandler(svc NoteDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := callerID(w, r)
		if !ok {
			return
		}
		noteID, err := pathID(r, "note_id")
		if err != nil {
			writeError(w, err)
			return
		}

		if err := svc.Delete(r.Context(), noteID, caller); err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Note deleted successfully"})
	}
}
