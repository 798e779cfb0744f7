package models

import "time"

// UserStatsDB represents a userstats row. The counters are derived data
// recomputed from notes and notetags after every membership change.
type UserStatsDB struct {
	UserID          int64      `json:"user_id" db:"user_id"`
	TotalNotes      int        `json:"total_notes" db:"total_notes"`
	TotalActiveTags int        `json:"total_active_tags" db:"total_active_tags"`
	LastLoginDate   *time.Time `json:"last_login_date" db:"last_login_date"`
}

// NoteCounts are per-status note counts for one user.
type NoteCounts struct {
	Total    int `db:"total_notes"`
	Active   int `db:"active_notes"`
	Pinned   int `db:"pinned_notes"`
	Archived int `db:"archived_notes"`
}

// UserStats is the statistics dashboard computed at read time.
type UserStats struct {
	UserID          int64      `json:"user_id"`
	TotalNotes      int        `json:"total_notes"`
	ActiveNotes     int        `json:"active_notes"`
	PinnedNotes     int        `json:"pinned_notes"`
	ArchivedNotes   int        `json:"archived_notes"`
	TotalActiveTags int        `json:"total_active_tags"`
	LastLoginDate   *time.Time `json:"last_login_date"`
}
