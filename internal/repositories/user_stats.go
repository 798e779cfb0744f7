package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-notes/internal/logger"
	"github.com/sbilibin2017/gw-notes/internal/models"
	"github.com/sbilibin2017/gw-notes/internal/transaction"
)

const msgStatsNotFound = "Stats not found"

// UserStatsRepository stores the per-user derived counters.
type UserStatsRepository struct {
	db *sqlx.DB
}

func NewUserStatsRepository(db *sqlx.DB) *UserStatsRepository {
	return &UserStatsRepository{db: db}
}

// Upsert creates the stats row for userID, or refreshes last_login_date when
// it already exists.
func (r *UserStatsRepository) Upsert(ctx context.Context, userID int64) error {
	query := `
		INSERT INTO userstats (user_id, total_notes, total_active_tags, last_login_date)
		VALUES ($1, 0, 0, NOW())
		ON CONFLICT (user_id) DO UPDATE SET last_login_date = NOW()
	`

	res, err := transaction.ExecutorFrom(ctx, r.db).ExecContext(ctx, query, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logger.Query(query, []any{userID}, rowsAffected, err)
	return err
}

// Get returns the stored stats row of userID.
func (r *UserStatsRepository) Get(ctx context.Context, userID int64) (*models.UserStatsDB, error) {
	query := `
		SELECT user_id, total_notes, total_active_tags, last_login_date
		FROM userstats
		WHERE user_id = $1
	`

	var stats models.UserStatsDB
	err := sqlx.GetContext(ctx, transaction.ExecutorFrom(ctx, r.db), &stats, query, userID)
	logger.Query(query, []any{userID}, stats, err)
	if err != nil {
		return nil, notFound(err, msgStatsNotFound)
	}
	return &stats, nil
}

// CountNotes counts the notes of userID by status.
func (r *UserStatsRepository) CountNotes(ctx context.Context, userID int64) (*models.NoteCounts, error) {
	query := `
		SELECT
			COUNT(*) AS total_notes,
			COUNT(*) FILTER (WHERE status = 'Active') AS active_notes,
			COUNT(*) FILTER (WHERE status = 'Pinned') AS pinned_notes,
			COUNT(*) FILTER (WHERE status = 'Archived') AS archived_notes
		FROM notes
		WHERE user_id = $1
	`

	var counts models.NoteCounts
	err := sqlx.GetContext(ctx, transaction.ExecutorFrom(ctx, r.db), &counts, query, userID)
	logger.Query(query, []any{userID}, counts, err)
	if err != nil {
		return nil, err
	}
	return &counts, nil
}

// CountActiveTags counts the distinct tags attached to the notes of userID.
func (r *UserStatsRepository) CountActiveTags(ctx context.Context, userID int64) (int, error) {
	query := `
		SELECT COUNT(DISTINCT nt.tag_id)
		FROM notetags nt
		JOIN notes n ON nt.note_id = n.note_id
		WHERE n.user_id = $1
	`

	var count int
	err := sqlx.GetContext(ctx, transaction.ExecutorFrom(ctx, r.db), &count, query, userID)
	logger.Query(query, []any{userID}, count, err)
	return count, err
}

// Recalculate recomputes and stores the counters of userID from the source
// tables and returns the stored row.
func (r *UserStatsRepository) Recalculate(ctx context.Context, userID int64) (*models.UserStatsDB, error) {
	query := `
		UPDATE userstats SET
			total_notes = (SELECT COUNT(*) FROM notes WHERE user_id = $1),
			total_active_tags = (
				SELECT COUNT(DISTINCT nt.tag_id)
				FROM notetags nt
				JOIN notes n ON nt.note_id = n.note_id
				WHERE n.user_id = $1
			)
		WHERE user_id = $1
		RETURNING user_id, total_notes, total_active_tags, last_login_date
	`

	var stats models.UserStatsDB
	err := sqlx.GetContext(ctx, transaction.ExecutorFrom(ctx, r.db), &stats, query, userID)
	logger.Query(query, []any{userID}, stats, err)
	if err != nil {
		return nil, notFound(err, msgStatsNotFound)
	}
	return &stats, nil
}
