package handlers

//go:generate mockgen -source=auth.go -destination=mock_auth_test.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-notes/internal/models"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, name, email, password string) (*models.UserDB, string, error)
}

// Authenticator logs users in.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*models.UserDB, string, error)
}

// CurrentUserGetter returns the authenticated user.
type CurrentUserGetter interface {
	Me(ctx context.Context, callerID int64) (*models.UserDB, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Display name
	// required: true
	// default: John Doe
	Name string `json:"name" validate:"required"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email" validate:"required"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required"`
}

// LoginRequest represents the JSON body for login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// AuthResponse is returned by register and login
// swagger:model AuthResponse
type AuthResponse struct {
	// Success message
	// default: Login successful
	Message string `json:"message"`

	// Authenticated user
	User *models.UserDB `json:"user"`

	// Bearer token
	Token string `json:"token"`
}

// UserResponse wraps a single user
// swagger:model UserResponse
type UserResponse struct {
	Message string         `json:"message,omitempty"`
	User    *models.UserDB `json:"user"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a user account with an empty statistics record and returns a token. Emails are unique regardless of case.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.AuthResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Missing field or invalid email"
// @Failure 409 {object} handlers.ErrorResponse "Email already exists"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer, v RequestValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := decodeJSON(r, &req, v); err != nil {
			writeError(w, err)
			return
		}

		user, token, err := svc.Register(r.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, AuthResponse{
			Message: "User registered successfully",
			User:    user,
			Token:   token,
		})
	}
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary Login
// @Description Authenticates a user by email and password and returns a token.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "User credentials"
// @Success 200 {object} handlers.AuthResponse "Login successful"
// @Failure 400 {object} handlers.ErrorResponse "Email and password are required"
// @Failure 401 {object} handlers.ErrorResponse "Invalid email or password"
// @Router /auth/login [post]
func NewLoginHandler(svc Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := decodeJSON(r, &req, nil); err != nil {
			writeError(w, err)
			return
		}

		user, token, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, AuthResponse{
			Message: "Login successful",
			User:    user,
			Token:   token,
		})
	}
}

// NewMeHandler returns an HTTP handler for the authenticated user.
// @Summary Current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.UserResponse
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /auth/me [get]
func NewMeHandler(svc CurrentUserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, ok := callerID(w, r)
		if !ok {
			return
		}

		user, err := svc.Me(r.Context(), caller)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, UserResponse{User: user})
	}
}
