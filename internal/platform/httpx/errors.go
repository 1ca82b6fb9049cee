// Package httpx provides HTTP response utilities.
package httpx

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/unchin/unchin/internal/shared"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
}

// RespondError maps domain errors to HTTP responses. Validation failures
// carry their message; anything else is logged and reported as 500.
func RespondError(w http.ResponseWriter, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, shared.ErrValidation):
		JSON(w, http.StatusBadRequest, ErrorBody{Error: err.Error()})
	case errors.Is(err, shared.ErrNotFound):
		JSON(w, http.StatusNotFound, ErrorBody{Error: err.Error()})
	default:
		if logger != nil {
			logger.Error("request failed", slog.Any("error", err))
		}
		JSON(w, http.StatusInternalServerError, ErrorBody{Error: "internal error"})
	}
}

// BadRequest writes a 400 with msg.
func BadRequest(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusBadRequest, ErrorBody{Error: msg})
}
