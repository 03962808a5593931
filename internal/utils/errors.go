package utils

import "errors"

// Recoverable input errors. The console handler answers these with a message
// and re-prompts the same input point.
var (
	ErrMalformedInput    = errors.New("MALFORMED_INPUT")
	ErrUnknownProduct    = errors.New("UNKNOWN_PRODUCT")
	ErrInvalidQuantity   = errors.New("INVALID_QUANTITY")
	ErrOutOfStock        = errors.New("OUT_OF_STOCK")
	ErrInsufficientStock = errors.New("INSUFFICIENT_STOCK")
	ErrInvalidYesNo      = errors.New("INVALID_YES_NO")
)

// Fatal configuration errors. The kiosk refuses to run on any of these.
var (
	ErrPromotionNotDefined = errors.New("PROMOTION_NOT_DEFINED")
	ErrCatalogCorrupted    = errors.New("CATALOG_CORRUPTED")
)

// IsRecoverable reports whether err is a user-input error that should be
// re-prompted rather than aborted on.
func IsRecoverable(err error) bool {
	for _, e := range []error{
		ErrMalformedInput,
		ErrUnknownProduct,
		ErrInvalidQuantity,
		ErrOutOfStock,
		ErrInsufficientStock,
		ErrInvalidYesNo,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

// UserMessage maps a recoverable error to the message shown to the customer.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrMalformedInput):
		return "That is not a valid order format. Please try again."
	case errors.Is(err, ErrUnknownProduct):
		return "We do not sell that product. Please try again."
	case errors.Is(err, ErrInvalidQuantity):
		return "Quantity must be a positive whole number. Please try again."
	case errors.Is(err, ErrOutOfStock):
		return "That product is sold out. Please try again."
	case errors.Is(err, ErrInsufficientStock):
		return "Not enough stock for that quantity. Please try again."
	case errors.Is(err, ErrInvalidYesNo):
		return "Please answer Y or N."
	default:
		return "Invalid input. Please try again."
	}
}
