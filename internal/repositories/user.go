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
	msgUserNotFound = "User not found"
	msgEmailExists  = "Email already exists"
)

const userColumns = `user_id, name, email, password, created_at`

// UserRepository stores users.
type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a user. A duplicate email surfaces as a Conflict.
func (r *UserRepository) Create(ctx context.Context, name, email, passwordHash string) (*models.UserDB, error) {
	query := `
		INSERT INTO users (name, email, password, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING ` + userColumns
	args := []any{name, email, "<redacted>"}

	var user models.UserDB
	err := sqlx.GetContext(ctx, transaction.ExecutorFrom(ctx, r.db), &user, query, name, email, passwordHash)
	logger.Query(query, args, user.UserID, err)
	if err != nil {
		return nil, constraintError(err, msgEmailExists, "")
	}
	return &user, nil
}

// GetByID returns the user with id.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`

	var user models.UserDB
	err := sqlx.GetContext(ctx, transaction.ExecutorFrom(ctx, r.db), &user, query, id)
	logger.Query(query, []any{id}, user.UserID, err)
	if err != nil {
		return nil, notFound(err, msgUserNotFound)
	}
	return &user, nil
}

// GetByEmail returns the user whose email matches case-insensitively.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`

	var user models.UserDB
	err := sqlx.GetContext(ctx, transaction.ExecutorFrom(ctx, r.db), &user, query, email)
	logger.Query(query, []any{email}, user.UserID, err)
	if err != nil {
		return nil, notFound(err, msgUserNotFound)
	}
	return &user, nil
}

// Update applies upd to the user. upd.Password must already be hashed.
func (r *UserRepository) Update(ctx context.Context, id int64, upd models.UserUpdate) (*models.UserDB, error) {
	var (
		sets []string
		args []any
	)
	if upd.Name != nil {
		args = append(args, *upd.Name)
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)))
	}
	if upd.Email != nil {
		args = append(args, *upd.Email)
		sets = append(sets, fmt.Sprintf("email = $%d", len(args)))
	}
	if upd.Password != nil {
		args = append(args, *upd.Password)
		sets = append(sets, fmt.Sprintf("password = $%d", len(args)))
	}
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE users SET %s
		WHERE user_id = $%d
		RETURNING %s`, strings.Join(sets, ", "), len(args), userColumns)

	var user models.UserDB
	err := sqlx.GetContext(ctx, transaction.ExecutorFrom(ctx, r.db), &user, query, args...)
	logger.Query(query, []any{id}, user.UserID, err)
	if err != nil {
		return nil, notFound(constraintError(err, msgEmailExists, ""), msgUserNotFound)
	}
	return &user, nil
}

// Delete removes the user; notes, associations and stats cascade.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM users WHERE user_id = $1 RETURNING user_id`

	var deleted int64
	err := sqlx.GetContext(ctx, transaction.ExecutorFrom(ctx, r.db), &deleted, query, id)
	logger.Query(query, []any{id}, deleted, err)
	return notFound(err, msgUserNotFound)
}
