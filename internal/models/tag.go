package models

import "time"

// DefaultTagColor is used when a tag is created without a color.
const DefaultTagColor = "#808080"

// Tag is a global, ownerless label that any user may attach to their notes.
type Tag struct {
	TagID     int64     `json:"tag_id" db:"tag_id"`
	TagName   string    `json:"tag_name" db:"tag_name"`
	Color     string    `json:"color" db:"color"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// AssignedTag is a tag as seen through one of its associations.
type AssignedTag struct {
	Tag
	AssignedDate time.Time `json:"assigned_date" db:"assigned_date"`
}

// TagUpdate holds the tag fields to change. Nil fields are left untouched.
type TagUpdate struct {
	Name  *string
	Color *string
}

// IsEmpty reports whether no field is set.
func (u TagUpdate) IsEmpty() bool {
	return u.Name == nil && u.Color == nil
}
