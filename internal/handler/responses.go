package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/binderapp/binder/internal/domain"
	"github.com/binderapp/binder/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Log the error - we can't write to response at this point since headers are sent
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	// Write the buffer to the response
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped HTTP
// response. The mapping never leaks internal error text on 5xx.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, message := mapServiceError(err)

	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err, "status", status)
	} else {
		log.Warn(opName+" rejected", "error", err, "status", status)
	}

	respondError(w, status, message)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgCardNotFoundHTTP    = "Card not found"
	ErrMsgSetRequiredHTTP     = "A set code is required"
	ErrMsgCatalogUnavailable  = "Card catalog is temporarily unavailable. Please try again later."
	ErrMsgImportNotArray      = "Import payload must be a JSON array"
	ErrMsgUnknownLanguage     = "Unknown language"
	ErrMsgUnknownVariant      = "Unknown catalog variant"
	ErrMsgUnknownRarity       = "Unknown rarity filter"
	ErrMsgUnknownFilter       = "Unknown filter value"
	ErrMsgUnknownSortOrder    = "Unknown sort order"
	ErrMsgInvalidInputGeneric = "Invalid input"
)

// mapServiceError maps domain errors to an HTTP status and a user-facing
// message. Internal server errors always get the generic message so internal
// details never reach clients.
func mapServiceError(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrCardNotFound):
		return http.StatusNotFound, ErrMsgCardNotFoundHTTP
	case errors.Is(err, domain.ErrSetRequired):
		return http.StatusBadRequest, ErrMsgSetRequiredHTTP
	case errors.Is(err, domain.ErrImportInvalid):
		return http.StatusBadRequest, ErrMsgImportNotArray
	case errors.Is(err, domain.ErrUnknownLanguage):
		return http.StatusBadRequest, ErrMsgUnknownLanguage
	case errors.Is(err, domain.ErrUnknownVariant):
		return http.StatusBadRequest, ErrMsgUnknownVariant
	case errors.Is(err, domain.ErrUnknownRarity):
		return http.StatusBadRequest, ErrMsgUnknownRarity
	case errors.Is(err, domain.ErrUnknownFilter):
		return http.StatusBadRequest, ErrMsgUnknownFilter
	case errors.Is(err, domain.ErrUnknownSortOrder):
		return http.StatusBadRequest, ErrMsgUnknownSortOrder
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputGeneric
	case errors.Is(err, domain.ErrCatalogUnavailable):
		return http.StatusBadGateway, ErrMsgCatalogUnavailable
	case errors.Is(err, domain.ErrStorageUnavailable):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
