package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Mining operation error messages
	ErrMsgMineHitFailed   = "Failed to apply mining hit"
	ErrMsgLeaveMineFailed = "Failed to leave the mine"

	// Training operation error messages
	ErrMsgTrainHitFailed = "Failed to apply training hit"

	// Rebirth operation error messages
	ErrMsgRebirthFailed           = "Failed to perform rebirth"
	ErrMsgRebirthAffordableFailed = "Failed to preview affordable rebirths"

	// Market operation error messages
	ErrMsgSellResourceFailed = "Failed to sell resources"

	// Player state error messages
	ErrMsgGetPlayerStateFailed = "Failed to retrieve player state"

	// Bonus validation error messages
	ErrMsgInvalidBonusCategory = "Invalid bonus category '%s'"
)
