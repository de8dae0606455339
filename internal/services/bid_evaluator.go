package services

import (
	"strings"

	"github.com/Ricozl/commerce/internal/auctionerrors"

	"github.com/shopspring/decimal"
)

// Evaluation is the outcome of checking a proposed bid against the current price
type Evaluation struct {
	Accepted bool
	NewPrice decimal.Decimal
	Reason   string
}

// Evaluate accepts a bid only when it is strictly higher than the current price.
// On acceptance NewPrice is the bid; otherwise it is the unchanged current price.
func Evaluate(currentPrice, proposedBid decimal.Decimal) Evaluation {
	if proposedBid.GreaterThan(currentPrice) {
		return Evaluation{Accepted: true, NewPrice: proposedBid}
	}
	return Evaluation{
		Accepted: false,
		NewPrice: currentPrice,
		Reason:   "bid must be higher than the current price of " + currentPrice.StringFixed(2),
	}
}

// ParseAmount parses a money amount: positive with at most two decimal places
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, auctionerrors.ErrInvalidAmount
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, auctionerrors.ErrInvalidAmount
	}
	if !amount.IsPositive() || !amount.Equal(amount.Round(2)) {
		return decimal.Zero, auctionerrors.ErrInvalidAmount
	}
	// decimal(10,2) column
	if amount.GreaterThanOrEqual(maxAmount) {
		return decimal.Zero, auctionerrors.ErrInvalidAmount
	}
	return amount, nil
}

var maxAmount = decimal.New(1, 8)
