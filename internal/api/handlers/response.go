package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/faithfinder/backend/internal/infrastructure/observability"
	apperrors "github.com/faithfinder/backend/pkg/errors"
)

// errorResponse is the JSON body of every non-2xx response
type errorResponse struct {
	Message string                 `json:"message"`
	Code    string                 `json:"code,omitempty"`
	Errors  []apperrors.FieldError `json:"errors,omitempty"`
}

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, errorResponse{Message: message})
}

func respondWithCode(w http.ResponseWriter, statusCode int, message, code string) {
	respondWithJSON(w, statusCode, errorResponse{Message: message, Code: code})
}

func respondWithValidation(w http.ResponseWriter, message string, fields []apperrors.FieldError) {
	respondWithJSON(w, http.StatusBadRequest, errorResponse{Message: message, Errors: fields})
}

// respondWithAppError maps err to a status by its AppError type. Validation,
// not-found, conflict and unauthorized errors carry their own message; anything
// else is logged and answered with fallback.
func respondWithAppError(ctx context.Context, w http.ResponseWriter, err error, fallback string) {
	switch apperrors.TypeOf(err) {
	case apperrors.ErrorTypeValidation:
		respondWithValidation(w, messageOf(err, fallback), apperrors.FieldsOf(err))
	case apperrors.ErrorTypeNotFound:
		respondWithError(w, http.StatusNotFound, messageOf(err, fallback))
	case apperrors.ErrorTypeConflict:
		respondWithError(w, http.StatusConflict, messageOf(err, fallback))
	case apperrors.ErrorTypeUnauthorized:
		respondWithError(w, http.StatusUnauthorized, messageOf(err, fallback))
	case apperrors.ErrorTypeExternal:
		observability.LoggerFromContext(ctx).Error().Err(err).Msg(fallback)
		respondWithError(w, http.StatusBadGateway, fallback)
	default:
		observability.LoggerFromContext(ctx).Error().Err(err).Msg(fallback)
		respondWithError(w, http.StatusInternalServerError, fallback)
	}
}

func messageOf(err error, fallback string) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}
