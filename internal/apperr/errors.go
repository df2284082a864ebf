package apperr

import (
	"errors"
	"fmt"
)

// Sentinel business errors, matched with errors.Is at the HTTP boundary.
var (
	ErrDuplicateProduct       = errors.New("product already exists")
	ErrDuplicateTransaction   = errors.New("transaction already exists")
	ErrProductNotFound        = errors.New("product not found")
	ErrTransactionNotFound    = errors.New("transaction not found")
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrStorageUnavailable     = errors.New("storage unavailable")
)

// ValidationError reports the first violated input rule. Nothing is written
// to storage before all fields validate.
type ValidationError struct {
	Field string
	Rule  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: field '%s' failed on rule '%s'", e.Field, e.Rule)
}

// InsufficientStockError is returned when a decrement would drive stock below
// zero. Available is the stock at the time of the attempt.
type InsufficientStockError struct {
	ProductID string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product '%s': available %d, requested %d", e.ProductID, e.Available, e.Requested)
}
