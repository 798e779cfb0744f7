package services

import (
	"context"
	"strings"

	"github.com/sbilibin2017/gw-notes/internal/apperrors"
	"github.com/sbilibin2017/gw-notes/internal/events"
	"github.com/sbilibin2017/gw-notes/internal/logger"
	"github.com/sbilibin2017/gw-notes/internal/models"
)

// UserService manages the profile and statistics of the authenticated user.
type UserService struct {
	users  UserStore
	stats  StatsStore
	hasher PasswordHasher
	events EventPublisher
}

// NewUserService creates a new UserService instance.
func NewUserService(users UserStore, stats StatsStore, hasher PasswordHasher, events EventPublisher) *UserService {
	return &UserService{
		users:  users,
		stats:  stats,
		hasher: hasher,
		events: events,
	}
}

// sameUser rejects access to another user's account. It runs before any
// lookup so it never reveals whether the target exists.
func sameUser(callerID, userID int64) error {
	if callerID != userID {
		return apperrors.Forbidden("Unauthorized")
	}
	return nil
}

// Me returns the authenticated user.
func (svc *UserService) Me(ctx context.Context, callerID int64) (*models.UserDB, error) {
	user, err := svc.users.GetByID(ctx, callerID)
	if err != nil {
		logger.Log.Errorw("failed to get current user", "user_id", callerID, "error", err)
		return nil, err
	}
	return user, nil
}

// Get returns the user when it is the caller.
func (svc *UserService) Get(ctx context.Context, callerID, userID int64) (*models.UserDB, error) {
	if err := sameUser(callerID, userID); err != nil {
		return nil, err
	}
	return svc.Me(ctx, userID)
}

// Update changes the caller's profile. Empty fields are ignored; a new
// password is hashed before it is stored.
func (svc *UserService) Update(ctx context.Context, callerID, userID int64, upd models.UserUpdate) (*models.UserDB, error) {
	if err := sameUser(callerID, userID); err != nil {
		return nil, err
	}

	upd.Name = nonEmpty(upd.Name)
	upd.Email = nonEmpty(upd.Email)
	upd.Password = nonEmpty(upd.Password)
	if upd.IsEmpty() {
		return nil, apperrors.Invalid("No fields to update")
	}
	if upd.Email != nil && !strings.Contains(*upd.Email, "@") {
		return nil, apperrors.Invalid("Invalid email format")
	}
	if upd.Password != nil {
		hash, err := svc.hasher.Hash(*upd.Password)
		if err != nil {
			logger.Log.Errorw("failed to hash password", "user_id", userID, "error", err)
			return nil, err
		}
		upd.Password = &hash
	}

	user, err := svc.users.Update(ctx, userID, upd)
	if err != nil {
		logger.Log.Errorw("failed to update user", "user_id", userID, "error", err)
		return nil, err
	}
	return user, nil
}

// Delete removes the caller's account with everything it owns.
func (svc *UserService) Delete(ctx context.Context, callerID, userID int64) error {
	if err := sameUser(callerID, userID); err != nil {
		return err
	}
	if err := svc.users.Delete(ctx, userID); err != nil {
		logger.Log.Errorw("failed to delete user", "user_id", userID, "error", err)
		return err
	}
	publish(ctx, svc.events, events.New(models.EventUserDeleted, userID, userID))
	return nil
}

// Stats returns the caller's statistics, with the note and tag counters
// computed at read time.
func (svc *UserService) Stats(ctx context.Context, callerID, userID int64) (*models.UserStats, error) {
	if err := sameUser(callerID, userID); err != nil {
		return nil, err
	}

	stored, err := svc.stats.Get(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get stats", "user_id", userID, "error", err)
		return nil, err
	}
	counts, err := svc.stats.CountNotes(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to count notes", "user_id", userID, "error", err)
		return nil, err
	}
	activeTags, err := svc.stats.CountActiveTags(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to count active tags", "user_id", userID, "error", err)
		return nil, err
	}

	return &models.UserStats{
		UserID:          userID,
		TotalNotes:      counts.Total,
		ActiveNotes:     counts.Active,
		PinnedNotes:     counts.Pinned,
		ArchivedNotes:   counts.Archived,
		TotalActiveTags: activeTags,
		LastLoginDate:   stored.LastLoginDate,
	}, nil
}

// nonEmpty drops pointers to empty strings.
func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
