package domain

import (
	"github.com/shopspring/decimal"
)

const priceScale = 2

// Price is a fixed-point currency amount. It serializes to JSON as a number with two decimals.
type Price struct {
	decimal.Decimal
}

// NewPrice parses a decimal string such as "5.50".
func NewPrice(value string) (Price, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Price{}, err
	}

	return Price{Decimal: d}, nil
}

// MustPrice is like NewPrice but panics on malformed input.
func MustPrice(value string) Price {
	return Price{Decimal: decimal.RequireFromString(value)}
}

// MarshalJSON writes the amount as a bare JSON number.
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.StringFixed(priceScale)), nil
}
