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

const (
	msgTagNotFound   = "Tag not found"
	msgTagNameExists = "Tag name already exists"
)

const tagColumns = `tag_id, tag_name, color, created_at`

// TagRepository stores the global tag catalog.
type TagRepository struct {
	db *sqlx.DB
}

func NewTagRepository(db *sqlx.DB) *TagRepository {
	return &TagRepository{db: db}
}

// Create inserts a tag. A duplicate name surfaces as a Conflict.
func (r *TagRepository) Create(ctx context.Context, name, color string) (*models.Tag, error) {
	query := `
		INSERT INTO tags (tag_name, color, created_at)
		VALUES ($1, $2, NOW())
		RETURNING ` + tagColumns
	args := []any{name, color}

	var tag models.Tag
	err := sqlx.GetContext(ctx, transaction.ExecutorFrom(ctx, r.db), &tag, query, args...)
	logger.Query(query, args, tag, err)
	if err != nil {
		return nil, constraintError(err, msgTagNameExists, "")
	}
	return &tag, nil
}

// GetByID returns the tag with id.
func (r *TagRepository) GetByID(ctx context.Context, id int64) (*models.Tag, error) {
	query := `SELECT ` + tagColumns + ` FROM tags WHERE tag_id = $1`

	var tag models.Tag
	err := sqlx.GetContext(ctx, transaction.ExecutorFrom(ctx, r.db), &tag, query, id)
	logger.Query(query, []any{id}, tag, err)
	if err != nil {
		return nil, notFound(err, msgTagNotFound)
	}
	return &tag, nil
}

// List returns every tag ordered by name.
func (r *TagRepository) List(ctx context.Context) ([]models.Tag, error) {
	query := `SELECT ` + tagColumns + ` FROM tags ORDER BY tag_name, tag_id`

	tags := []models.Tag{}
	err := sqlx.SelectContext(ctx, transaction.ExecutorFrom(ctx, r.db), &tags, query)
	logger.Query(query, nil, len(tags), err)
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// Update applies upd to the tag with id.
func (r *TagRepository) Update(ctx context.Context, id int64, upd models.TagUpdate) (*models.Tag, error) {
	var (
		sets []string
		args []any
	)
	if upd.Name != nil {
		args = append(args, *upd.Name)
		sets = append(sets, fmt.Sprintf("tag_name = $%d", len(args)))
	}
	if upd.Color != nil {
		args = append(args, *upd.Color)
		sets = append(sets, fmt.Sprintf("color = $%d", len(args)))
	}
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE tags SET %s
		WHERE tag_id = $%d
		RETURNING %s`, strings.Join(sets, ", "), len(args), tagColumns)

	var tag models.Tag
	err := sqlx.GetContext(ctx, transaction.ExecutorFrom(ctx, r.db), &tag, query, args...)
	logger.Query(query, args, tag, err)
	if err != nil {
		return nil, notFound(constraintError(err, msgTagNameExists, ""), msgTagNotFound)
	}
	return &tag, nil
}

// Delete removes the tag; its associations cascade.
func (r *TagRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM tags WHERE tag_id = $1 RETURNING tag_id`

	var deleted int64
	err := sqlx.GetContext(ctx, transaction.ExecutorFrom(ctx, r.db), &deleted, query, id)
	logger.Query(query, []any{id}, deleted, err)
	return notFound(err, msgTagNotFound)
}

// Lock takes a row lock on the tag until the surrounding transaction ends.
// It conflicts with the key-share lock an association insert holds on the
// tag, so concurrent attaches either finish first or fail afterwards.
func (r *TagRepository) Lock(ctx context.Context, id int64) error {
	query := `SELECT tag_id FROM tags WHERE tag_id = $1 FOR UPDATE`

	var locked int64
	err := sqlx.GetContext(ctx, transaction.ExecutorFrom(ctx, r.db), &locked, query, id)
	logger.Query(query, []any{id}, locked, err)
	return notFound(err, msgTagNotFound)
}

// OwnersOf returns the distinct owners of notes carrying the tag.
func (r *TagRepository) OwnersOf(ctx context.Context, tagID int64) ([]int64, error) {
	query := `
		SELECT DISTINCT n.user_id
		FROM notetags nt
		JOIN notes n ON nt.note_id = n.note_id
		WHERE nt.tag_id = $1
		ORDER BY n.user_id
	`

	owners := []int64{}
	err := sqlx.SelectContext(ctx, transaction.ExecutorFrom(ctx, r.db), &owners, query, tagID)
	logger.Query(query, []any{tagID}, owners, err)
	if err != nil {
		return nil, err
	}
	return owners, nil
}
