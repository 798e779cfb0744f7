package models

import "time"

// NoteTag represents a notetags row linking one note to one tag.
type NoteTag struct {
	NoteTagID    int64     `json:"notetag_id" db:"notetag_id"`
	NoteID       int64     `json:"note_id" db:"note_id"`
	TagID        int64     `json:"tag_id" db:"tag_id"`
	AssignedDate time.Time `json:"assigned_date" db:"assigned_date"`
}
