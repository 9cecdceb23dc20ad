// Package rest is the HTTP boundary: chi routes, bearer-auth middleware
// and the translation of domain errors into statuses. Handlers stay
// thin; every decision lives in the services.
package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/collegevents/backend/internal/domain/common/errorz"
	"github.com/collegevents/backend/pkg/logger/types"
)

var validate = validator.New()

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// writeError maps the error taxonomy onto statuses. Anything outside the
// taxonomy is a 500 with a generic message; the detail goes to the log,
// never to the client.
func writeError(w http.ResponseWriter, logger *types.Logger, err error) {
	switch {
	case errors.Is(err, errorz.Unauthenticated):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	case errors.Is(err, errorz.Forbidden):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: err.Error()})
	case errors.Is(err, errorz.NotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, errorz.Conflict), errors.Is(err, errorz.Validation):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		logger.Errorf("internal error: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

// decode unmarshals and validates a JSON body into v.
func decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Join(errorz.Validation, err)
	}
	if err := validate.Struct(v); err != nil {
		return errors.Join(errorz.Validation, err)
	}
	return nil
}
