package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sbilibin2017/gw-notes/internal/apperrors"
	"github.com/sbilibin2017/gw-notes/internal/events"
	"github.com/sbilibin2017/gw-notes/internal/logger"
	"github.com/sbilibin2017/gw-notes/internal/models"
)

const msgInvalidCredentials = "Invalid email or password"

// AuthService handles registration and login.
type AuthService struct {
	tx     Transactor
	users  UserStore
	stats  StatsStore
	hasher PasswordHasher
	tokens TokenGenerator
	events EventPublisher
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	tx Transactor,
	users UserStore,
	stats StatsStore,
	hasher PasswordHasher,
	tokens TokenGenerator,
	events EventPublisher,
) *AuthService {
	return &AuthService{
		tx:     tx,
		users:  users,
		stats:  stats,
		hasher: hasher,
		tokens: tokens,
		events: events,
	}
}

// Register creates a user together with its stats row and returns a token
// for it.
func (svc *AuthService) Register(ctx context.Context, name, email, password string) (*models.UserDB, string, error) {
	for _, f := range []struct{ field, value string }{
		{"name", name},
		{"email", email},
		{"password", password},
	} {
		if strings.TrimSpace(f.value) == "" {
			return nil, "", apperrors.Invalid("%s is required", f.field)
		}
	}
	if !strings.Contains(email, "@") {
		return nil, "", apperrors.Invalid("Invalid email format")
	}

	hash, err := svc.hasher.Hash(password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "error", err)
		return nil, "", err
	}

	var user *models.UserDB
	err = svc.tx.Do(ctx, func(ctx context.Context) error {
		created, err := svc.users.Create(ctx, name, email, hash)
		if err != nil {
			return err
		}
		if err := svc.stats.Upsert(ctx, created.UserID); err != nil {
			return err
		}
		user = created
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to register user", "email", email, "error", err)
		return nil, "", err
	}

	token, err := svc.tokens.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "user_id", user.UserID, "error", err)
		return nil, "", err
	}

	publish(ctx, svc.events, events.New(models.EventUserRegistered, user.UserID, user.UserID))
	return user, token, nil
}

// Login authenticates a user and returns a token. Unknown emails and wrong
// passwords fail with the same Unauthorized error.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.UserDB, string, error) {
	if email == "" || password == "" {
		return nil, "", apperrors.Invalid("Email and password are required")
	}

	user, err := svc.users.GetByEmail(ctx, email)
	if errors.Is(err, apperrors.ErrNotFound) {
		logger.Log.Infow("login for unknown email", "email", email)
		return nil, "", apperrors.Unauthorized(msgInvalidCredentials)
	}
	if err != nil {
		logger.Log.Errorw("failed to get user", "email", email, "error", err)
		return nil, "", err
	}

	if !svc.hasher.Verify(password, user.PasswordHash) {
		logger.Log.Infow("invalid credentials", "user_id", user.UserID)
		return nil, "", apperrors.Unauthorized(msgInvalidCredentials)
	}

	if err := svc.stats.Upsert(ctx, user.UserID); err != nil {
		logger.Log.Errorw("failed to record login", "user_id", user.UserID, "error", err)
		return nil, "", err
	}

	token, err := svc.tokens.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "user_id", user.UserID, "error", err)
		return nil, "", err
	}
	return user, token, nil
}
