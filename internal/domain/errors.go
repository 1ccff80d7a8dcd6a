package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Player errors
	ErrMsgPlayerNotFound = "player not found"

	// Resource/catalog errors
	ErrMsgResourceNotFound = "resource not found"
	ErrMsgWorldNotFound    = "world not found"
	ErrMsgInvalidCatalog   = "invalid catalog"

	// Ledger errors
	ErrMsgInsufficientFunds    = "insufficient funds"
	ErrMsgInsufficientQuantity = "insufficient quantity"
	ErrMsgInvalidCount         = "invalid rebirth count"

	// Numeric errors
	ErrMsgMalformedNumericString = "malformed numeric string"
	ErrMsgUnsafeFloat            = "float outside safe integer range"

	// Persistence errors
	ErrMsgRecordInvalid = "persisted record failed validation"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Player errors
	ErrPlayerNotFound = errors.New(ErrMsgPlayerNotFound)

	// Resource/catalog errors
	ErrResourceNotFound = errors.New(ErrMsgResourceNotFound)
	ErrWorldNotFound    = errors.New(ErrMsgWorldNotFound)
	ErrInvalidCatalog   = errors.New(ErrMsgInvalidCatalog)

	// Ledger errors
	ErrInsufficientFunds    = errors.New(ErrMsgInsufficientFunds)
	ErrInsufficientQuantity = errors.New(ErrMsgInsufficientQuantity)
	ErrInvalidCount         = errors.New(ErrMsgInvalidCount)

	// Numeric errors
	ErrMalformedNumericString = errors.New(ErrMsgMalformedNumericString)
	ErrUnsafeFloat            = errors.New(ErrMsgUnsafeFloat)

	// Persistence errors
	ErrRecordInvalid = errors.New(ErrMsgRecordInvalid)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
