package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/kadamczak/GameBackend_Go/internal/domain"
	"github.com/kadamczak/GameBackend_Go/internal/logger"
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

// ValidationFieldsResponse enumerates every violated field of a request
type ValidationFieldsResponse struct {
	Error  string              `json:"error"`
	Fields map[string][]string `json:"fields"`
}

// InsufficientFundsResponse carries the amounts the client needs to act on
type InsufficientFundsResponse struct {
	Error     string `json:"error"`
	Required  int64  `json:"required"`
	Available int64  `json:"available"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent at this point, log and bail
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped HTTP
// response. Structured errors (validation, insufficient funds) keep their
// field detail in the payload; everything else becomes a plain message.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		log.Warn(opName+" rejected", "violations", len(verr.Fields))
		respondJSON(w, http.StatusUnprocessableEntity, ValidationFieldsResponse{
			Error:  ErrMsgValidationError,
			Fields: verr.Fields,
		})
		return
	}

	var ferr *domain.InsufficientFundsError
	if errors.As(err, &ferr) {
		log.Warn(opName+" rejected", "required", ferr.Required, "available", ferr.Available)
		respondJSON(w, http.StatusUnprocessableEntity, InsufficientFundsResponse{
			Error:     ErrMsgNotEnoughFundsError,
			Required:  ferr.Required,
			Available: ferr.Available,
		})
		return
	}

	statusCode, userMsg := mapServiceErrorToUserMessage(err)
	if statusCode >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err)
	}
	respondError(w, statusCode, userMsg)
}

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Conflicts from lost purchase races map to 409 so clients can refresh and retry,
// while rejected-as-stated requests map to 422.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusForbidden, ErrMsgAuthRequiredError
	case errors.Is(err, domain.ErrListingNotFound):
		return http.StatusNotFound, ErrMsgListingNotFoundErr
	case errors.Is(err, domain.ErrMerchantNotFound):
		return http.StatusNotFound, ErrMsgMerchantNotFoundErr
	case errors.Is(err, domain.ErrOfferNotFound):
		return http.StatusNotFound, ErrMsgOfferNotFoundError
	case errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound, ErrMsgPlayerNotFoundErr
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrListingSold):
		return http.StatusConflict, ErrMsgListingSoldError
	case errors.Is(err, domain.ErrSelfPurchase):
		return http.StatusConflict, ErrMsgSelfPurchaseError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity, ErrMsgNotEnoughFundsError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusUnprocessableEntity, ErrMsgValidationError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
