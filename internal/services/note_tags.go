package services

import (
	"context"

	"github.com/sbilibin2017/gw-notes/internal/events"
	"github.com/sbilibin2017/gw-notes/internal/logger"
	"github.com/sbilibin2017/gw-notes/internal/models"
)

// NoteTagService manages the tags attached to a note.
type NoteTagService struct {
	tx       Transactor
	notes    NoteStore
	noteTags NoteTagStore
	gate     noteGate
	recalc   *StatsRecalculator
	events   EventPublisher
}

// NewNoteTagService creates a new NoteTagService instance.
func NewNoteTagService(
	tx Transactor,
	notes NoteStore,
	noteTags NoteTagStore,
	stats StatsStore,
	events EventPublisher,
) *NoteTagService {
	return &NoteTagService{
		tx:       tx,
		notes:    notes,
		noteTags: noteTags,
		gate:     noteGate{notes: notes},
		recalc:   NewStatsRecalculator(stats),
		events:   events,
	}
}

// Attach links tagID to a note of requesterID.
func (svc *NoteTagService) Attach(ctx context.Context, noteID, tagID, requesterID int64) (*models.NoteTag, error) {
	var nt *models.NoteTag
	err := svc.tx.Do(ctx, func(ctx context.Context) error {
		if _, err := svc.gate.authorize(ctx, noteID, requesterID, true); err != nil {
			return err
		}
		attached, err := svc.noteTags.Attach(ctx, noteID, tagID)
		if err != nil {
			return err
		}
		if err := svc.recalc.Recalculate(ctx, requesterID); err != nil {
			return err
		}
		nt = attached
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to attach tag", "note_id", noteID, "tag_id", tagID, "error", err)
		return nil, err
	}

	publish(ctx, svc.events, events.New(models.EventTagAttached, requesterID, noteID))
	return nt, nil
}

// Detach unlinks tagID from a note of requesterID.
func (svc *NoteTagService) Detach(ctx context.Context, noteID, tagID, requesterID int64) error {
	err := svc.tx.Do(ctx, func(ctx context.Context) error {
		if _, err := svc.gate.authorize(ctx, noteID, requesterID, true); err != nil {
			return err
		}
		if err := svc.noteTags.Detach(ctx, noteID, tagID); err != nil {
			return err
		}
		return svc.recalc.Recalculate(ctx, requesterID)
	})
	if err != nil {
		logger.Log.Errorw("failed to detach tag", "note_id", noteID, "tag_id", tagID, "error", err)
		return err
	}

	publish(ctx, svc.events, events.New(models.EventTagDetached, requesterID, noteID))
	return nil
}

// TagsOf returns the tags of a note of requesterID ordered by name.
func (svc *NoteTagService) TagsOf(ctx context.Context, noteID, requesterID int64) ([]models.AssignedTag, error) {
	if _, err := svc.gate.authorize(ctx, noteID, requesterID, false); err != nil {
		return nil, err
	}
	tags, err := svc.noteTags.TagsOf(ctx, noteID)
	if err != nil {
		logger.Log.Errorw("failed to list note tags", "note_id", noteID, "error", err)
		return nil, err
	}
	return tags, nil
}

// NotesOf returns the notes of ownerID carrying tagID, most recently
// modified first.
func (svc *NoteTagService) NotesOf(ctx context.Context, tagID, ownerID int64) ([]models.Note, error) {
	notes, err := svc.notes.ListByTag(ctx, tagID, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to list notes by tag", "tag_id", tagID, "error", err)
		return nil, err
	}
	if err := loadTags(ctx, svc.noteTags, notes); err != nil {
		logger.Log.Errorw("failed to load note tags", "tag_id", tagID, "error", err)
		return nil, err
	}
	return notes, nil
}
