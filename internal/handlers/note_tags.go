package handlers

//go:generate mockgen -source=note_tags.go -destination=mock_note_tags_test.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-notes/internal/models"
)

// TagAttacher links a tag to a note.
type TagAttacher interface {
	Attach(ctx context.Context, noteID, tagID, requesterID int64) (*models.NoteTag, error)
}

// TagDetacher unlinks a tag from a note.
type TagDetacher interface {
	Detach(ctx context.Context, noteID, tagID, requesterID int64) error
}

// NoteTagsGetter returns the tags of a note.
type NoteTagsGetter interface {
	TagsOf(ctx context.Context, noteID, requesterID int64) ([]models.AssignedTag, error)
}

// TaggedNotesGetter returns the caller's notes carrying a tag.
type TaggedNotesGetter interface {
	NotesOf(ctx context.Context, tagID, ownerID int64) ([]models.Note, error)
}

// NoteTagResponse wraps a single association
// swagger:model NoteTagResponse
type NoteTagResponse struct {
	Message string          `json:"message"`
	NoteTag *models.NoteTag `json:"notetag"`
}

// AssignedTagsResponse lists the tags of a note with their assignment dates
// swagger:model AssignedTagsResponse
type AssignedTagsResponse struct {
	Tags []models.AssignedTag `json:"tags"`
}

func noteAndTagIDs(r *http.Request) (int64, int64, error) {
	noteID, err := pathID(r, "note_id")
	if err != nil {
		return 0, 0, err
	}
	tagID, err := pathID(r, "tag_id")
	if err != nil {
		return 0, 0, err
	}
	return noteID, tagID, nil
}

// NewAttachTagHandler returns an HTTP handler that adds a tag to a note.
// @Summary Attach tag
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param note_id path int true "Note ID"
// @Param tag_id path int true "Tag ID"
// @Success 201 {object} handlers.NoteTagResponse
// @Failure 404 {object} handlers.ErrorResponse "Note or tag not found"
// @Failure 409 {object} handlers.ErrorResponse "Tag is already assigned to this note"
// @Router /notes/{note_id}/tags/{tag_id} [post]
func NewAttachTagHandler(svc TagAttacher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := callerID(w, r)
		if !ok {
			return
		}
		noteID, tagID, err := noteAndTagIDs(r)
		if err != nil {
			writeError(w, err)
			return
		}

		nt, err := svc.Attach(r.Context(), noteID, tagID, caller)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, NoteTagResponse{Message: "Tag added to note successfully", NoteTag: nt})
	}
}

// NewDetachTagHandler returns an HTTP handler that removes a tag from a note.
// @Summary Detach tag
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param note_id path int true "Note ID"
// @Param tag_id path int true "Tag ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.ErrorResponse "Note or association not found"
// @Router /notes/{note_id}/tags/{tag_id} [delete]
func NewDetachTagHandler(svc TagDetacher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := callerID(w, r)
		if !ok {
			return
		}
		noteID, tagID, err := noteAndTagIDs(r)
		if err != nil {
			writeError(w, err)
			return
		}

		if err := svc.Detach(r.Context(), noteID, tagID, caller); err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Tag removed from note successfully"})
	}
}

// NewNoteTagsHandler returns an HTTP handler listing the tags of a note.
// @Summary Tags of a note
// @Tags notes
// @Produce json
// @Security BearerAuth
// @Param note_id path int true "Note ID"
// @Success 200 {object} handlers.AssignedTagsResponse
// @Failure 404 {object} handlers.ErrorResponse "Note not found"
// @Router /notes/{note_id}/tags [get]
func NewNoteTagsHandler(svc NoteTagsGetter) http.HandlerFunc {
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

		tags, err := svc.TagsOf(r.Context(), noteID, caller)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, AssignedTagsResponse{Tags: tags})
	}
}

// NewTaggedNotesHandler returns an HTTP handler listing the caller's notes
// carrying a tag.
// @Summary Notes with a tag
// @Tags tags
// @Produce json
// @Security BearerAuth
// @Param tag_id path int true "Tag ID"
// @Success 200 {object} handlers.NotesResponse
// @Failure 404 {object} handlers.ErrorResponse "Tag not found"
// @Router /tags/{tag_id}/notes [get]
func NewTaggedNotesHandler(svc TaggedNotesGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := callerID(w, r)
		if !ok {
			return
		}
		tagID, err := pathID(r, "tag_id")
		if err != nil {
			writeError(w, err)
			return
		}

		notes, err := svc.NotesOf(r.Context(), tagID, caller)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, NotesResponse{Notes: notes})
	}
}
