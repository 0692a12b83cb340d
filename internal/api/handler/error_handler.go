package handler

import (
	"errors"
	"net/http"

	"github.com/carmart/marketplace-api/internal/api/pipeline"
	"github.com/carmart/marketplace-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// respondError maps known domain errors to deterministic HTTP status codes
// and renders the envelope. Unexpected errors are logged with their real
// cause and surface as a generic 500 so no internal detail leaks.
func respondError(c *pipeline.Context, err error) {
	code, msg := resolveError(c, err)
	c.JSON(code, errorResponse{Error: msg})
}

func resolveError(c *pipeline.Context, err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "username already exists"
	case errors.Is(err, domain.ErrCarNotFound):
		return http.StatusNotFound, "car not found"
	case errors.Is(err, domain.ErrCarUnavailable),
		errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrResourceBusy):
		return http.StatusBadRequest, err.Error()
	}

	c.Log.Error().
		Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
