package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-notes/internal/logger"
)

// migrations create the schema. Every statement is idempotent.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id    BIGSERIAL PRIMARY KEY,
		name       TEXT NOT NULL,
		email      TEXT NOT NULL,
		password   TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS users_email_key ON users (LOWER(email));`,
	`CREATE TABLE IF NOT EXISTS userstats (
		userstats_id      BIGSERIAL PRIMARY KEY,
		user_id           BIGINT NOT NULL UNIQUE REFERENCES users(user_id) ON DELETE CASCADE,
		total_notes       INTEGER NOT NULL DEFAULT 0,
		total_active_tags INTEGER NOT NULL DEFAULT 0,
		last_login_date   TIMESTAMPTZ
	);`,
	`CREATE TABLE IF NOT EXISTS tags (
		tag_id     BIGSERIAL PRIMARY KEY,
		tag_name   TEXT NOT NULL UNIQUE CHECK (char_length(tag_name) >= 2),
		color      VARCHAR(7) NOT NULL DEFAULT '#808080' CHECK (color ~ '^#[0-9A-Fa-f]{6}$'),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS notes (
		note_id       BIGSERIAL PRIMARY KEY,
		title         TEXT NOT NULL CHECK (title <> ''),
		content       TEXT NOT NULL DEFAULT '',
		status        TEXT NOT NULL DEFAULT 'Active' CHECK (status IN ('Active', 'Archived', 'Pinned')),
		user_id       BIGINT NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
		created_date  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		last_modified TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CHECK (last_modified >= created_date)
	);`,
	`CREATE INDEX IF NOT EXISTS notes_user_id_last_modified_idx ON notes (user_id, last_modified DESC);`,
	`CREATE TABLE IF NOT EXISTS notetags (
		notetag_id    BIGSERIAL PRIMARY KEY,
		note_id       BIGINT NOT NULL REFERENCES notes(note_id) ON DELETE CASCADE,
		tag_id        BIGINT NOT NULL REFERENCES tags(tag_id) ON DELETE CASCADE,
		assigned_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (note_id, tag_id)
	);`,
	`CREATE INDEX IF NOT EXISTS notetags_tag_id_idx ON notetags (tag_id);`,
}

// Migrate applies the schema to db.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for i, m := range migrations {
		_, err := db.ExecContext(ctx, m)
		logger.Query(m, nil, i, err)
		if err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
