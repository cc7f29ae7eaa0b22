package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Player errors
	ErrMsgPlayerNotFound  = "player not found"
	ErrMsgUnauthenticated = "no acting player identity"

	// Item errors
	ErrMsgItemNotFound = "item not found"

	// Listing errors
	ErrMsgListingNotFound = "listing not found"
	ErrMsgListingSold     = "listing already sold"
	ErrMsgSelfPurchase    = "seller cannot buy their own listing"

	// Merchant errors
	ErrMsgMerchantNotFound = "merchant not found"
	ErrMsgOfferNotFound    = "offer not found"

	// Ledger errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Validation errors
	ErrMsgValidationFailed = "validation failed"
	ErrMsgInvalidInput     = "invalid input"

	// Database/System errors
	ErrMsgTxClosed      = "tx is closed"
	ErrMsgDatabaseError = "database error"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Player errors
	ErrPlayerNotFound  = errors.New(ErrMsgPlayerNotFound)
	ErrUnauthenticated = errors.New(ErrMsgUnauthenticated)

	// Item errors
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	// Listing errors
	ErrListingNotFound = errors.New(ErrMsgListingNotFound)
	ErrListingSold     = errors.New(ErrMsgListingSold)
	ErrSelfPurchase    = errors.New(ErrMsgSelfPurchase)

	// Merchant errors
	ErrMerchantNotFound = errors.New(ErrMsgMerchantNotFound)
	ErrOfferNotFound    = errors.New(ErrMsgOfferNotFound)

	// Ledger errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

// InsufficientFundsError carries the amounts the caller needs to act on.
// It unwraps to ErrInsufficientFunds so errors.Is checks keep working.
type InsufficientFundsError struct {
	Required  int64
	Available int64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("%s: required %d, available %d", ErrMsgInsufficientFunds, e.Required, e.Available)
}

func (e *InsufficientFundsError) Unwrap() error {
	return ErrInsufficientFunds
}

// ValidationError reports every violated field of a request at once as a
// field -> messages map. It is the only error carrying per-field structure;
// it is never used for control flow elsewhere.
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError creates an empty ValidationError ready to collect violations
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// Add records one violation for a field
func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = append(e.Fields[field], message)
}

// HasViolations reports whether any field failed validation
func (e *ValidationError) HasViolations() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var sb strings.Builder
	sb.WriteString(ErrMsgValidationFailed)
	for _, f := range fields {
		sb.WriteString("; ")
		sb.WriteString(f)
		sb.WriteString(": ")
		sb.WriteString(strings.Join(e.Fields[f], ", "))
	}
	return sb.String()
}
