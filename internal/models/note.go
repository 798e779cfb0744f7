package models

import "time"

// NoteStatus is the lifecycle status of a note.
type NoteStatus string

// Supported note statuses
const (
	StatusActive   NoteStatus = "Active"
	StatusArchived NoteStatus = "Archived"
	StatusPinned   NoteStatus = "Pinned"
)

// NoteStatuses lists every valid status.
var NoteStatuses = []NoteStatus{StatusActive, StatusArchived, StatusPinned}

// Valid reports whether s is one of NoteStatuses.
func (s NoteStatus) Valid() bool {
	switch s {
	case StatusActive, StatusArchived, StatusPinned:
		return true
	}
	return false
}

// Note represents a notes row plus its resolved tags.
type Note struct {
	NoteID       int64      `json:"note_id" db:"note_id"`
	Title        string     `json:"title" db:"title"`
	Content      string     `json:"content" db:"content"`
	Status       NoteStatus `json:"status" db:"status"`
	UserID       int64      `json:"user_id" db:"user_id"`
	CreatedDate  time.Time  `json:"created_date" db:"created_date"`
	LastModified time.Time  `json:"last_modified" db:"last_modified"`
	Tags         []Tag      `json:"tags" db:"-"`
}

// NoteCreate holds the fields of a new note.
type NoteCreate struct {
	Title   string
	Content string
	Status  NoteStatus // empty means Active
	TagIDs  []int64
}

// NoteUpdate holds the note fields to change. Nil fields are left untouched;
// a non-nil TagIDs replaces the whole tag set.
type NoteUpdate struct {
	Title   *string
	Content *string
	Status  *NoteStatus
	TagIDs  *[]int64
}

// Sort columns accepted by NoteFilter.SortBy
const (
	SortByCreatedDate  = "created_date"
	SortByLastModified = "last_modified"
	SortByTitle        = "title"
)

// NoteFilter narrows a note listing. Zero values mean "no filter".
type NoteFilter struct {
	Status NoteStatus
	TagID  *int64
	Search string
	SortBy string // created_date, last_modified or title; anything else is last_modified
	Order  string // "desc" (any case) sorts descending, anything else ascending; empty is desc
}
