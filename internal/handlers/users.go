package handlers

//go:generate mockgen -source=users.go -destination=mock_users_test.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-notes/internal/models"
)

// UserGetter returns a user.
type UserGetter interface {
	Get(ctx context.Context, callerID, userID int64) (*models.UserDB, error)
}

// UserUpdater changes a user profile.
type UserUpdater interface {
	Update(ctx context.Context, callerID, userID int64, upd models.UserUpdate) (*models.UserDB, error)
}

// UserDeleter removes a user account.
type UserDeleter interface {
	Delete(ctx context.Context, callerID, userID int64) error
}

// StatsGetter returns user statistics.
type StatsGetter interface {
	Stats(ctx context.Context, callerID, userID int64) (*models.UserStats, error)
}

// UpdateUserRequest represents the JSON body for a profile update. Omitted
// or empty fields are left unchanged.
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// StatsResponse wraps the statistics dashboard
// swagger:model StatsResponse
type StatsResponse struct {
	Stats *models.UserStats `json:"stats"`
}

// NewGetUserHandler returns an HTTP handler that reads a user.
// @Summary Get user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param user_id path int true "User ID"
// @Success 200 {object} handlers.UserResponse
// @Failure 403 {object} handlers.ErrorResponse "Another user's account"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{user_id} [get]
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := callerID(w, r)
		if !ok {
			return
		}
		userID, err := pathID(r, "user_id")
		if err != nil {
			writeError(w, err)
			return
		}

		user, err := svc.Get(r.Context(), caller, userID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, UserResponse{User: user})
	}
}

// NewUpdateUserHandler returns an HTTP handler that updates a user profile.
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user_id path int true "User ID"
// @Param updateUserRequest body handlers.UpdateUserRequest true "Fields to change"
// @Success 200 {object} handlers.UserResponse
// @Failure 400 {object} handlers.ErrorResponse "No fields to update / invalid email"
// @Failure 403 {object} handlers.ErrorResponse "Another user's account"
// @Failure 409 {object} handlers.ErrorResponse "Email already exists"
// @Router /users/{user_id} [put]
func NewUpdateUserHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := callerID(w, r)
		if !ok {
			return
		}
		userID, err := pathID(r, "user_id")
		if err != nil {
			writeError(w, err)
			return
		}
		var req UpdateUserRequest
		if err := decodeJSON(r, &req, nil); err != nil {
			writeError(w, err)
			return
		}

		user, err := svc.Update(r.Context(), caller, userID, models.UserUpdate{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, UserResponse{Message: "User updated successfully", User: user})
	}
}

// NewDeleteUserHandler returns an HTTP handler that deletes a user account.
// @Summary Delete user
// @Description Deletes the account with its notes, associations and statistics.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param user_id path int true "User ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 403 {object} handlers.ErrorResponse "Another user's account"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{user_id} [delete]
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := callerID(w, r)
		if !ok {
			return
		}
		userID, err := pathID(r, "user_id")
		if err != nil {
			writeError(w, err)
			return
		}

		if err := svc.Delete(r.Context(), caller, userID); err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "User deleted successfully"})
	}
}

// NewUserStatsHandler returns an HTTP handler for the statistics dashboard.
// @Summary User statistics
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param user_id path int true "User ID"
// @Success 200 {object} handlers.StatsResponse
// @Failure 403 {object} handlers.ErrorResponse "Another user's account"
// @Failure 404 {object} handlers.ErrorResponse "Stats not found"
// @Router /users/{user_id}/stats [get]
func NewUserStatsHandler(svc StatsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := callerID(w, r)
		if !ok {
			return
		}
		userID, err := pathID(r, "user_id")
		if err != nil {
			writeError(w, err)
			return
		}

		stats, err := svc.Stats(r.Context(), caller, userID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, StatsResponse{Stats: stats})
	}
}
