package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jbeshir/swipe-feedback/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// errBadRequest marks request parsing failures.
var errBadRequest = errors.New("bad request")

type errorResponse struct {
	Error string `json:"error"`
}

// statusForError maps command and datasource errors onto HTTP statuses.
func statusForError(err error) int {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrNoRatings):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyRated):
		return http.StatusConflict
	case errors.Is(err, errBadRequest), errors.Is(err, domain.ErrInvalidDirection), errors.As(err, &validationErrs):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrAnalysisFailed), errors.Is(err, domain.ErrGenerationFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	logger := domain.LoggerFromContext(ctx)
	status := statusForError(err)
	if status >= http.StatusInternalServerError {
		logger.ErrorContext(ctx, msg, "error", err)
	} else {
		logger.WarnContext(ctx, msg, "error", err)
	}

	body := errorResponse{Error: http.StatusText(status)}
	if status < http.StatusInternalServerError {
		body.Error = err.Error()
	}
	writeJSON(ctx, w, status, body)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write response", "error", err)
	}
}

// decodeBody reads a JSON body into dst and validates it.
func decodeBody(r *http.Request, dst any) error {
	if r.Body == nil {
		return fmt.Errorf("missing request body: %w", errBadRequest)
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("decoding request body: %w: %w", errBadRequest, err)
	}
	return validate.Struct(dst)
}
