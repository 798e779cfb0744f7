package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-notes/internal/logger"
	"github.com/sbilibin2017/gw-notes/internal/models"
	"github.com/sbilibin2017/gw-notes/internal/transaction"
)

const msgNoteNotFound = "Note not found"

const noteColumns = `n.note_id, n.title, n.content, n.status, n.user_id, n.created_date, n.last_modified`

// touchLastModified strictly advances last_modified, even when two updates
// land within the same clock tick.
const touchLastModified = `last_modified = GREATEST(clock_timestamp(), last_modified + INTERVAL '1 microsecond')`

// sortColumns maps accepted sort keys to columns.
var sortColumns = map[string]string{
	models.SortByCreatedDate:  "n.created_date",
	models.SortByLastModified: "n.last_modified",
	models.SortByTitle:        "n.title",
}

// NoteRepository stores notes.
type NoteRepository struct {
	db *sqlx.DB
}

func NewNoteRepository(db *sqlx.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// Create inserts a note owned by ownerID.
func (r *NoteRepository) Create(ctx context.Context, ownerID int64, in models.NoteCreate) (*models.Note, error) {
	query := `
		INSERT INTO notes AS n (title, content, status, user_id, created_date, last_modified)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING ` + noteColumns
	args := []any{in.Title, in.Content, string(in.Status), ownerID}

	var note models.Note
	err := sqlx.GetContext(ctx, transaction.ExecutorFrom(ctx, r.db), &note, query, args...)
	logger.Query(query, args, note.NoteID, err)
	if err != nil {
		return nil, constraintError(err, "", msgUserNotFound)
	}
	return &note, nil
}

// GetOwned returns the note only if it belongs to ownerID. Absence and a
// foreign owner both yield the same NotFound error. With forUpdate the row
// is locked until the surrounding transaction ends.
func (r *NoteRepository) GetOwned(ctx context.Context, noteID, ownerID int64, forUpdate bool) (*models.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes n WHERE n.note_id = $1 AND n.user_id = $2`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	args := []any{noteID, ownerID}

	var note models.Note
	err := sqlx.GetContext(ctx, transaction.ExecutorFrom(ctx, r.db), &note, query, args...)
	logger.Query(query, args, note.NoteID, err)
	if err != nil {
		return nil, notFound(err, msgNoteNotFound)
	}
	return &note, nil
}

// List returns the notes of ownerID matching f.
func (r *NoteRepository) List(ctx context.Context, ownerID int64, f models.NoteFilter) ([]models.Note, error) {
	var sb strings.Builder
	args := []any{ownerID}

	sb.WriteString(`SELECT ` + noteColumns + ` FROM notes n WHERE n.user_id = $1`)

	if f.Status != "" {
		args = append(args, string(f.Status))
		fmt.Fprintf(&sb, ` AND n.status = $%d`, len(args))
	}
	if f.TagID != nil {
		args = append(args, *f.TagID)
		fmt.Fprintf(&sb, ` AND EXISTS (SELECT 1 FROM notetags nt WHERE nt.note_id = n.note_id AND nt.tag_id = $%d)`, len(args))
	}
	if f.Search != "" {
		args = append(args, likePattern(f.Search))
		fmt.Fprintf(&sb, ` AND (n.title ILIKE $%[1]d ESCAPE '\' OR n.content ILIKE $%[1]d ESCAPE '\')`, len(args))
	}

	column, ok := sortColumns[f.SortBy]
	if !ok {
		column = sortColumns[models.SortByLastModified]
	}
	direction := "ASC"
	if f.Order == "" || strings.EqualFold(f.Order, "desc") {
		direction = "DESC"
	}
	fmt.Fprintf(&sb, ` ORDER BY %s %s, n.note_id %s`, column, direction, direction)

	query := sb.String()
	notes := []models.Note{}
	err := sqlx.SelectContext(ctx, transaction.ExecutorFrom(ctx, r.db), &notes, query, args...)
	logger.Query(query, args, len(notes), err)
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// ListByTag returns the notes of ownerID carrying tagID, most recently
// modified first.
func (r *NoteRepository) ListByTag(ctx context.Context, tagID, ownerID int64) ([]models.Note, error) {
	query := `
		SELECT ` + noteColumns + `
		FROM notes n
		JOIN notetags nt ON n.note_id = nt.note_id
		WHERE nt.tag_id = $1 AND n.user_id = $2
		ORDER BY n.last_modified DESC, n.note_id DESC
	`
	args := []any{tagID, ownerID}

	notes := []models.Note{}
	err := sqlx.SelectContext(ctx, transaction.ExecutorFrom(ctx, r.db), &notes, query, args...)
	logger.Query(query, args, len(notes), err)
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// Update applies the scalar fields of upd and always advances last_modified.
// TagIDs is ignored here.
func (r *NoteRepository) Update(ctx context.Context, noteID, ownerID int64, upd models.NoteUpdate) (*models.Note, error) {
	sets := []string{touchLastModified}
	var args []any
	if upd.Title != nil {
		args = append(args, *upd.Title)
		sets = append(sets, fmt.Sprintf("title = $%d", len(args)))
	}
	if upd.Content != nil {
		args = append(args, *upd.Content)
		sets = append(sets, fmt.Sprintf("content = $%d", len(args)))
	}
	if upd.Status != nil {
		args = append(args, string(*upd.Status))
		sets = append(sets, fmt.Sprintf("status = $%d", len(args)))
	}
	args = append(args, noteID, ownerID)

	query := fmt.Sprintf(`
		UPDATE notes AS n SET %s
		WHERE n.note_id = $%d AND n.user_id = $%d
		RETURNING %s`, strings.Join(sets, ", "), len(args)-1, len(args), noteColumns)

	var note models.Note
	err := sqlx.GetContext(ctx, transaction.ExecutorFrom(ctx, r.db), &note, query, args...)
	logger.Query(query, args, note.NoteID, err)
	if err != nil {
		return nil, notFound(constraintError(err, "", ""), msgNoteNotFound)
	}
	return &note, nil
}

// UpdateStatus sets the status and advances last_modified.
func (r *NoteRepository) UpdateStatus(ctx context.Context, noteID, ownerID int64, status models.NoteStatus) (*models.Note, error) {
	query := `
		UPDATE notes AS n SET status = $1, ` + touchLastModified + `
		WHERE n.note_id = $2 AND n.user_id = $3
		RETURNING ` + noteColumns
	args := []any{string(status), noteID, ownerID}

	var note models.Note
	err := sqlx.GetContext(ctx, transaction.ExecutorFrom(ctx, r.db), &note, query, args...)
	logger.Query(query, args, note.NoteID, err)
	if err != nil {
		return nil, notFound(constraintError(err, "", ""), msgNoteNotFound)
	}
	return &note, nil
}

// Delete removes the note; its associations cascade.
func (r *NoteRepository) Delete(ctx context.Context, noteID, ownerID int64) error {
	query := `DELETE FROM notes WHERE note_id = $1 AND user_id = $2 RETURNING note_id`
	args := []any{noteID, ownerID}

	var deleted int64
	err := sqlx.GetContext(ctx, transaction.ExecutorFrom(ctx, r.db), &deleted, query, args...)
	logger.Query(query, args, deleted, err)
	return notFound(err, msgNoteNotFound)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern builds a substring pattern matching term literally.
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
