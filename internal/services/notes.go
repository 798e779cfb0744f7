package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sbilibin2017/gw-notes/internal/apperrors"
	"github.com/sbilibin2017/gw-notes/internal/events"
	"github.com/sbilibin2017/gw-notes/internal/logger"
	"github.com/sbilibin2017/gw-notes/internal/models"
)

// NoteService manages the notes of their owners.
type NoteService struct {
	tx       Transactor
	notes    NoteStore
	noteTags NoteTagStore
	gate     noteGate
	recalc   *StatsRecalculator
	events   EventPublisher
}

// NewNoteService creates a new NoteService instance.
func NewNoteService(
	tx Transactor,
	notes NoteStore,
	noteTags NoteTagStore,
	stats StatsStore,
	events EventPublisher,
) *NoteService {
	return &NoteService{
		tx:       tx,
		notes:    notes,
		noteTags: noteTags,
		gate:     noteGate{notes: notes},
		recalc:   NewStatsRecalculator(stats),
		events:   events,
	}
}

func invalidStatus() error {
	names := make([]string, len(models.NoteStatuses))
	for i, s := range models.NoteStatuses {
		names[i] = string(s)
	}
	return apperrors.Invalid("Status must be one of: %s", strings.Join(names, ", "))
}

// uniqueIDs drops repeated ids, keeping the first occurrence.
func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// attachAll links every tag in tagIDs to noteID. An unknown tag is a client
// error here, not a missing resource.
func (svc *NoteService) attachAll(ctx context.Context, noteID int64, tagIDs []int64) error {
	for _, tagID := range uniqueIDs(tagIDs) {
		if _, err := svc.noteTags.Attach(ctx, noteID, tagID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.Invalid("Tag with id %d does not exist", tagID).WithCause(err)
			}
			return err
		}
	}
	return nil
}

// withTags fills in the tags of every note.
func (svc *NoteService) withTags(ctx context.Context, notes []models.Note) error {
	return loadTags(ctx, svc.noteTags, notes)
}

// loadTags resolves the tags of notes in one call; untagged notes get an
// empty slice.
func loadTags(ctx context.Context, noteTags NoteTagStore, notes []models.Note) error {
	if len(notes) == 0 {
		return nil
	}
	ids := make([]int64, len(notes))
	for i := range notes {
		ids[i] = notes[i].NoteID
	}
	tags, err := noteTags.TagsOfNotes(ctx, ids)
	if err != nil {
		return err
	}
	for i := range notes {
		notes[i].Tags = tags[notes[i].NoteID]
		if notes[i].Tags == nil {
			notes[i].Tags = []models.Tag{}
		}
	}
	return nil
}

func (svc *NoteService) withTagsOne(ctx context.Context, note *models.Note) error {
	notes := []models.Note{*note}
	if err := svc.withTags(ctx, notes); err != nil {
		return err
	}
	*note = notes[0]
	return nil
}

// Create adds a note for ownerID with the given tags. An unknown tag fails
// the whole call and nothing is stored.
func (svc *NoteService) Create(ctx context.Context, ownerID int64, in models.NoteCreate) (*models.Note, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, apperrors.Invalid("Title is required")
	}
	if in.Status == "" {
		in.Status = models.StatusActive
	}
	if !in.Status.Valid() {
		return nil, invalidStatus()
	}

	var note *models.Note
	err := svc.tx.Do(ctx, func(ctx context.Context) error {
		created, err := svc.notes.Create(ctx, ownerID, in)
		if err != nil {
			return err
		}
		if err := svc.attachAll(ctx, created.NoteID, in.TagIDs); err != nil {
			return err
		}
		if err := svc.recalc.Recalculate(ctx, ownerID); err != nil {
			return err
		}
		if err := svc.withTagsOne(ctx, created); err != nil {
			return err
		}
		note = created
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to create note", "user_id", ownerID, "error", err)
		return nil, err
	}

	publish(ctx, svc.events, events.New(models.EventNoteCreated, ownerID, note.NoteID))
	return note, nil
}

// Get returns the note with its tags when requesterID owns it.
func (svc *NoteService) Get(ctx context.Context, noteID, requesterID int64) (*models.Note, error) {
	note, err := svc.gate.authorize(ctx, noteID, requesterID, false)
	if err != nil {
		return nil, err
	}
	if err := svc.withTagsOne(ctx, note); err != nil {
		logger.Log.Errorw("failed to load note tags", "note_id", noteID, "error", err)
		return nil, err
	}
	return note, nil
}

// List returns the notes of ownerID matching f, each with its tags.
func (svc *NoteService) List(ctx context.Context, ownerID int64, f models.NoteFilter) ([]models.Note, error) {
	notes, err := svc.notes.List(ctx, ownerID, f)
	if err != nil {
		logger.Log.Errorw("failed to list notes", "user_id", ownerID, "error", err)
		return nil, err
	}
	if err := svc.withTags(ctx, notes); err != nil {
		logger.Log.Errorw("failed to load note tags", "user_id", ownerID, "error", err)
		return nil, err
	}
	return notes, nil
}

// Update changes the note. A non-nil TagIDs replaces the whole tag set.
func (svc *NoteService) Update(ctx context.Context, noteID, requesterID int64, upd models.NoteUpdate) (*models.Note, error) {
	if upd.Title != nil && strings.TrimSpace(*upd.Title) == "" {
		return nil, apperrors.Invalid("Title cannot be empty")
	}
	if upd.Status != nil && !upd.Status.Valid() {
		return nil, invalidStatus()
	}

	var note *models.Note
	err := svc.tx.Do(ctx, func(ctx context.Context) error {
		if _, err := svc.gate.authorize(ctx, noteID, requesterID, true); err != nil {
			return err
		}
		updated, err := svc.notes.Update(ctx, noteID, requesterID, upd)
		if err != nil {
			return err
		}
		if upd.TagIDs != nil {
			if err := svc.noteTags.DetachAll(ctx, noteID); err != nil {
				return err
			}
			if err := svc.attachAll(ctx, noteID, *upd.TagIDs); err != nil {
				return err
			}
		}
		if err := svc.recalc.Recalculate(ctx, requesterID); err != nil {
			return err
		}
		if err := svc.withTagsOne(ctx, updated); err != nil {
			return err
		}
		note = updated
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to update note", "note_id", noteID, "error", err)
		return nil, err
	}

	publish(ctx, svc.events, events.New(models.EventNoteUpdated, requesterID, noteID))
	return note, nil
}

// UpdateStatus changes only the status of the note.
func (svc *NoteService) UpdateStatus(ctx context.Context, noteID, requesterID int64, status models.NoteStatus) (*models.Note, error) {
	if status == "" {
		return nil, apperrors.Invalid("Status is required")
	}
	if !status.Valid() {
		return nil, invalidStatus()
	}

	var note *models.Note
	err := svc.tx.Do(ctx, func(ctx context.Context) error {
		if _, err := svc.gate.authorize(ctx, noteID, requesterID, true); err != nil {
			return err
		}
		updated, err := svc.notes.UpdateStatus(ctx, noteID, requesterID, status)
		if err != nil {
			return err
		}
		if err := svc.withTagsOne(ctx, updated); err != nil {
			return err
		}
		note = updated
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to update note status", "note_id", noteID, "status", status, "error", err)
		return nil, err
	}

	publish(ctx, svc.events, events.New(models.EventNoteStatusChanged, requesterID, noteID))
	return note, nil
}

// Delete removes the note and its associations.
func (svc *NoteService) Delete(ctx context.Context, noteID, requesterID int64) error {
	err := svc.tx.Do(ctx, func(ctx context.Context) error {
		if _, err := svc.gate.authorize(ctx, noteID, requesterID, true); err != nil {
			return err
		}
		if err := svc.notes.Delete(ctx, noteID, requesterID); err != nil {
			return err
		}
		return svc.recalc.Recalculate(ctx, requesterID)
	})
	if err != nil {
		logger.Log.Errorw("failed to delete note", "note_id", noteID, "error", err)
		return err
	}

	publish(ctx, svc.events, events.New(models.EventNoteDeleted, requesterID, noteID))
	return nil
}

// Search returns the notes of ownerID whose title or content contains query,
// ignoring case, most recently modified first.
func (svc *NoteService) Search(ctx context.Context, ownerID int64, query string) ([]models.Note, error) {
	if query == "" {
		return nil, apperrors.Invalid("Search query is required")
	}
	return svc.List(ctx, ownerID, models.NoteFilter{
		Search: query,
		SortBy: models.SortByLastModified,
		Order:  "desc",
	})
}
