package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgMissingURLParam   = "Missing %s path parameter"
)

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgAuthRequiredError   = "No acting player identity"
	ErrMsgPlayerNotFoundErr   = "Player not found"
	ErrMsgItemNotFoundError   = "Item not found"
	ErrMsgListingNotFoundErr  = "Listing not found"
	ErrMsgMerchantNotFoundErr = "Merchant not found"
	ErrMsgOfferNotFoundError  = "Offer not found"
	ErrMsgListingSoldError    = "Listing has already been sold"
	ErrMsgSelfPurchaseError   = "You cannot buy your own listing"
	ErrMsgNotEnoughFundsError = "Not enough funds"
	ErrMsgValidationError     = "Validation failed"
)

// Success messages for API responses
const (
	MsgPurchaseCompleteSuccess = "Purchase completed successfully"
)
