package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-notes/internal/logger"
	"github.com/sbilibin2017/gw-notes/internal/models"
	"github.com/sbilibin2017/gw-notes/internal/transaction"
)

const (
	msgTagAlreadyAssigned  = "Tag is already assigned to this note"
	msgAssociationNotFound = "Tag association not found"
)

// NoteTagRepository stores the note-tag associations.
type NoteTagRepository struct {
	db *sqlx.DB
}

func NewNoteTagRepository(db *sqlx.DB) *NoteTagRepository {
	return &NoteTagRepository{db: db}
}

// Attach links tagID to noteID. A duplicate pair surfaces as a Conflict and
// an unknown tag as a NotFound, both raised by the constraints at insert time.
func (r *NoteTagRepository) Attach(ctx context.Context, noteID, tagID int64) (*models.NoteTag, error) {
	query := `
		INSERT INTO notetags (note_id, tag_id, assigned_date)
		VALUES ($1, $2, NOW())
		RETURNING notetag_id, note_id, tag_id, assigned_date
	`
	args := []any{noteID, tagID}

	var nt models.NoteTag
	err := sqlx.GetContext(ctx, transaction.ExecutorFrom(ctx, r.db), &nt, query, args...)
	logger.Query(query, args, nt.NoteTagID, err)
	if err != nil {
		return nil, constraintError(err, msgTagAlreadyAssigned, msgTagNotFound)
	}
	return &nt, nil
}

// Detach removes the pair.
func (r *NoteTagRepository) Detach(ctx context.Context, noteID, tagID int64) error {
	query := `DELETE FROM notetags WHERE note_id = $1 AND tag_id = $2 RETURNING notetag_id`
	args := []any{noteID, tagID}

	var deleted int64
	err := sqlx.GetContext(ctx, transaction.ExecutorFrom(ctx, r.db), &deleted, query, args...)
	logger.Query(query, args, deleted, err)
	return notFound(err, msgAssociationNotFound)
}

// DetachAll removes every association of noteID.
func (r *NoteTagRepository) DetachAll(ctx context.Context, noteID int64) error {
	query := `DELETE FROM notetags WHERE note_id = $1`

	res, err := transaction.ExecutorFrom(ctx, r.db).ExecContext(ctx, query, noteID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logger.Query(query, []any{noteID}, rowsAffected, err)
	return err
}

// TagsOf returns the tags of noteID ordered by name, with their assignment dates.
func (r *NoteTagRepository) TagsOf(ctx context.Context, noteID int64) ([]models.AssignedTag, error) {
	query := `
		SELECT t.tag_id, t.tag_name, t.color, t.created_at, nt.assigned_date
		FROM tags t
		JOIN notetags nt ON t.tag_id = nt.tag_id
		WHERE nt.note_id = $1
		ORDER BY t.tag_name, t.tag_id
	`

	tags := []models.AssignedTag{}
	err := sqlx.SelectContext(ctx, transaction.ExecutorFrom(ctx, r.db), &tags, query, noteID)
	logger.Query(query, []any{noteID}, len(tags), err)
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// TagsOfNotes resolves the tags of many notes in one query. Every requested
// note id is present in the result, with an empty slice when untagged.
func (r *NoteTagRepository) TagsOfNotes(ctx context.Context, noteIDs []int64) (map[int64][]models.Tag, error) {
	result := make(map[int64][]models.Tag, len(noteIDs))
	if len(noteIDs) == 0 {
		return result, nil
	}
	for _, id := range noteIDs {
		result[id] = []models.Tag{}
	}

	query, args, err := sqlx.In(`
		SELECT nt.note_id, t.tag_id, t.tag_name, t.color, t.created_at
		FROM tags t
		JOIN notetags nt ON t.tag_id = nt.tag_id
		WHERE nt.note_id IN (?)
		ORDER BY nt.note_id, t.tag_name, t.tag_id
	`, noteIDs)
	if err != nil {
		return nil, err
	}

	executor := transaction.ExecutorFrom(ctx, r.db)
	query = executor.Rebind(query)

	var rows []struct {
		NoteID int64 `db:"note_id"`
		models.Tag
	}
	err = sqlx.SelectContext(ctx, executor, &rows, query, args...)
	logger.Query(query, args, len(rows), err)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.NoteID] = append(result[row.NoteID], row.Tag)
	}
	return result, nil
}
