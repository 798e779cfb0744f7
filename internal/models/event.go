package models

// Event types published after a committed mutation.
const (
	EventNoteCreated       = "note.created"
	EventNoteUpdated       = "note.updated"
	EventNoteStatusChanged = "note.status_changed"
	EventNoteDeleted       = "note.deleted"
	EventTagCreated        = "tag.created"
	EventTagUpdated        = "tag.updated"
	EventTagDeleted        = "tag.deleted"
	EventTagAttached       = "note.tag_attached"
	EventTagDetached       = "note.tag_detached"
	EventUserRegistered    = "user.registered"
	EventUserDeleted       = "user.deleted"
)

// Event describes a committed change, keyed by the affected entity.
type Event struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier for the event.
	Type      string `json:"type"`      // Type is one of the Event* constants.
	UserID    int64  `json:"user_id"`   // UserID is the user who made the change.
	EntityID  int64  `json:"entity_id"` // EntityID is the note, tag or user id the event is about.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix time (seconds) of the change.
}
