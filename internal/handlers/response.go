// Package handlers exposes the note-keeping services over HTTP.
package handlers

//go:generate mockgen -source=response.go -destination=mock_response_test.go -package=handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-notes/internal/apperrors"
	"github.com/sbilibin2017/gw-notes/internal/logger"
	"github.com/sbilibin2017/gw-notes/internal/middlewares"
)

// RequestValidator checks a decoded request body.
type RequestValidator interface {
	Validate(s any) error
}

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Note not found
	Error string `json:"error"`

	// Per-field validation messages
	Details any `json:"details,omitempty"`
}

// MessageResponse is the body of a successful request with nothing to return
// swagger:model MessageResponse
type MessageResponse struct {
	// Success message
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

// writeError reports err with the status of its kind. Unclassified errors
// are logged and answered with a generic message.
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		logger.Log.Errorw("internal server error", "err", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: apperrors.Message(err)})
		return
	}
	if appErr.Kind == apperrors.KindUnavailable {
		logger.Log.Errorw("service unavailable", "err", err)
	}
	writeJSON(w, appErr.Kind.HTTPStatus(), ErrorResponse{Error: appErr.Message, Details: appErr.Details})
}

// decodeJSON decodes the request body into v and validates it when a
// validator is given.
func decodeJSON(r *http.Request, v any, validator RequestValidator) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperrors.Invalid("Invalid JSON body").WithCause(err)
	}
	if validator == nil {
		return nil
	}
	return validator.Validate(v)
}

// pathID parses the int64 URL parameter name.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.Invalid("Invalid %s", name)
	}
	return id, nil
}

// callerID returns the authenticated user id. It writes a 401 and returns
// false when the request did not pass through the auth middleware.
func callerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := middlewares.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, apperrors.Unauthorized("Token is missing"))
		return 0, false
	}
	return id, true
}
