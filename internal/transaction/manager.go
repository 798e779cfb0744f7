// Package transaction runs a unit of work inside a single database
// transaction carried through the context.
package transaction

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-notes/internal/logger"
)

// Manager begins, commits and rolls back transactions on db.
type Manager struct {
	db *sqlx.DB
}

// NewManager creates a Manager for db.
func NewManager(db *sqlx.DB) *Manager {
	return &Manager{db: db}
}

// Do runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back when fn returns an error or panics. Nested
// calls reuse the transaction already present in ctx.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if FromContext(ctx) != nil {
		return fn(ctx)
	}

	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		logger.Log.Errorw("failed to begin transaction", "error", err)
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if rec := recover(); rec != nil {
			_ = tx.Rollback()
			panic(rec)
		}
	}()

	if err := fn(setTxToContext(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Log.Errorw("failed to rollback transaction", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		logger.Log.Errorw("failed to commit transaction", "error", err)
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// FromContext retrieves the transaction from the context. Returns nil if not present.
func FromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}

// Executor is the query surface shared by *sqlx.DB and *sqlx.Tx.
type Executor = sqlx.ExtContext

// ExecutorFrom returns the transaction in ctx, or db when there is none.
func ExecutorFrom(ctx context.Context, db *sqlx.DB) Executor {
	if tx := FromContext(ctx); tx != nil {
		return tx
	}
	return db
}
