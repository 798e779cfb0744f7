package services

import (
	"context"

	"github.com/sbilibin2017/gw-notes/internal/models"
)

// noteGate is the ownership check every note and association operation
// passes first.
type noteGate struct {
	notes NoteStore
}

// authorize returns the note when requesterID owns it. A missing note and a
// note owned by someone else yield the same NotFound error. With lock the
// row stays locked until the surrounding transaction ends.
func (g noteGate) authorize(ctx context.Context, noteID, requesterID int64, lock bool) (*models.Note, error) {
	return g.notes.GetOwned(ctx, noteID, requesterID, lock)
}
