package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"quickgig-backend/internal/logger"
	"quickgig-backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
	Step  string `json:"step,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// writeServiceError maps service errors onto HTTP statuses. Guard errors are
// client mistakes; a HirePartialError is a server-side failure that names the
// step to retry.
func writeServiceError(w http.ResponseWriter, err error) {
	var partial *service.HirePartialError
	if errors.As(err, &partial) {
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error: "hire did not complete; retry the request",
			Step:  string(partial.Step),
		})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, sql.ErrNoRows):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
		return
	case errors.Is(err, service.ErrDuplicateApplication),
		errors.Is(err, service.ErrAlreadyDecided),
		errors.Is(err, service.ErrJobClosed):
		status = http.StatusConflict
	case errors.Is(err, service.ErrInvalidApplicant),
		errors.Is(err, service.ErrSelfMessage):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrNotOwner):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrEmailTaken):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		logger.Error("Request failed", "error", err)
		writeJSON(w, status, errorResponse{Error: "internal server error"})
		return
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}
