// Package services implements the note-keeping operations on top of the
// repositories. Every mutating call runs inside one transaction and
// publishes its events only after the commit.
package services

//go:generate mockgen -source=services.go -destination=mocks_test.go -package=services

import (
	"context"

	"github.com/sbilibin2017/gw-notes/internal/models"
)

// Transactor runs fn inside a single database transaction.
type Transactor interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// TokenGenerator issues access tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID int64) (string, error)
}

// EventPublisher publishes committed changes.
type EventPublisher interface {
	Publish(ctx context.Context, evs ...models.Event)
}

// UserStore persists users.
type UserStore interface {
	Create(ctx context.Context, name, email, passwordHash string) (*models.UserDB, error)
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	Update(ctx context.Context, id int64, upd models.UserUpdate) (*models.UserDB, error)
	Delete(ctx context.Context, id int64) error
}

// StatsStore persists and computes per-user statistics.
type StatsStore interface {
	Upsert(ctx context.Context, userID int64) error
	Get(ctx context.Context, userID int64) (*models.UserStatsDB, error)
	CountNotes(ctx context.Context, userID int64) (*models.NoteCounts, error)
	CountActiveTags(ctx context.Context, userID int64) (int, error)
	Recalculate(ctx context.Context, userID int64) (*models.UserStatsDB, error)
}

// TagStore persists the tag catalog.
type TagStore interface {
	Create(ctx context.Context, name, color string) (*models.Tag, error)
	GetByID(ctx context.Context, id int64) (*models.Tag, error)
	List(ctx context.Context) ([]models.Tag, error)
	Update(ctx context.Context, id int64, upd models.TagUpdate) (*models.Tag, error)
	Delete(ctx context.Context, id int64) error
	OwnersOf(ctx context.Context, tagID int64) ([]int64, error)
	Lock(ctx context.Context, id int64) error
}

// NoteStore persists notes. Every method is scoped by owner.
type NoteStore interface {
	Create(ctx context.Context, ownerID int64, in models.NoteCreate) (*models.Note, error)
	GetOwned(ctx context.Context, noteID, ownerID int64, forUpdate bool) (*models.Note, error)
	List(ctx context.Context, ownerID int64, f models.NoteFilter) ([]models.Note, error)
	ListByTag(ctx context.Context, tagID, ownerID int64) ([]models.Note, error)
	Update(ctx context.Context, noteID, ownerID int64, upd models.NoteUpdate) (*models.Note, error)
	UpdateStatus(ctx context.Context, noteID, ownerID int64, status models.NoteStatus) (*models.Note, error)
	Delete(ctx context.Context, noteID, ownerID int64) error
}

// NoteTagStore persists note-tag associations.
type NoteTagStore interface {
	Attach(ctx context.Context, noteID, tagID int64) (*models.NoteTag, error)
	Detach(ctx context.Context, noteID, tagID int64) error
	DetachAll(ctx context.Context, noteID int64) error
	TagsOf(ctx context.Context, noteID int64) ([]models.AssignedTag, error)
	TagsOfNotes(ctx context.Context, noteIDs []int64) (map[int64][]models.Tag, error)
}

// publish forwards evs to p, which may be nil.
func publish(ctx context.Context, p EventPublisher, evs ...models.Event) {
	if p == nil || len(evs) == 0 {
		return
	}
	p.Publish(ctx, evs...)
}
