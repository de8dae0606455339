package auctionerrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Error kinds. Specific errors below wrap exactly one kind so callers can
// branch on the kind with errors.Is.
var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrTryAgain     = errors.New("temporary conflict, try again")
)

// validation errors
var (
	ErrInvalidAmount    = fmt.Errorf("%w: amount must be a positive value with at most two decimal places", ErrValidation)
	ErrBidTooLow        = fmt.Errorf("%w: bid must be higher than the current price", ErrValidation)
	ErrListingInactive  = fmt.Errorf("%w: listing is no longer active", ErrValidation)
	ErrAlreadyClosed    = fmt.Errorf("%w: auction is already closed", ErrValidation)
	ErrAlreadyWatching  = fmt.Errorf("%w: listing is already on watchlist", ErrValidation)
	ErrNotWatching      = fmt.Errorf("%w: listing is not on watchlist", ErrValidation)
	ErrPasswordMismatch = fmt.Errorf("%w: passwords must match", ErrValidation)
	ErrUsernameTaken    = fmt.Errorf("%w: username already taken", ErrValidation)
	ErrInvalidUser      = fmt.Errorf("%w: invalid registration details", ErrValidation)
	ErrInvalidListing   = fmt.Errorf("%w: invalid listing details", ErrValidation)
	ErrInvalidComment   = fmt.Errorf("%w: invalid comment", ErrValidation)
	ErrUnknownAction    = fmt.Errorf("%w: unknown listing action", ErrValidation)
)

// not found errors
var (
	ErrListingNotFound  = fmt.Errorf("listing %w", ErrNotFound)
	ErrUserNotFound     = fmt.Errorf("user %w", ErrNotFound)
	ErrCategoryNotFound = fmt.Errorf("category %w", ErrNotFound)
)

// access errors
var (
	ErrInvalidCredentials = fmt.Errorf("%w: invalid username and/or password", ErrUnauthorized)
	ErrNotListingOwner    = fmt.Errorf("%w: only the listing creator can do this", ErrForbidden)
)

// BidRejectedError carries the price a rejected bid had to beat so the
// caller can show it and let the user retry.
type BidRejectedError struct {
	CurrentPrice decimal.Decimal
}

func (e *BidRejectedError) Error() string {
	return fmt.Sprintf("bid must be higher than the current price of %s", e.CurrentPrice.StringFixed(2))
}

func (e *BidRejectedError) Unwrap() error {
	return ErrBidTooLow
}
