package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"team-analysis/standup/internal/calendar"
	"team-analysis/standup/internal/db/repositories"
	"team-analysis/standup/internal/models/dtos/responses"
	"team-analysis/standup/internal/services"
)

func respondWithSuccess[T any](w http.ResponseWriter, statusCode int, data *T) {
	resp := responses.APIResponse[T]{
		Status:    "success",
		Timestamp: time.Now().UTC(),
		Data:      data,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	resp := responses.APIResponse[any]{
		Status:    "error",
		Timestamp: time.Now().UTC(),
		Error:     message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}

// respondWithDomainError maps the domain error taxonomy onto HTTP statuses;
// everything unrecognized is a 500.
func respondWithDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repositories.ErrNotRegistered):
		respondWithError(w, http.StatusNotFound, "User is not registered")
	case errors.Is(err, calendar.ErrInvalidDate):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrFutureDate):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, repositories.ErrInvertedRange):
		respondWithError(w, http.StatusBadRequest, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
