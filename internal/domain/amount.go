// internal/domain/amount.go
package domain

import (
	"github.com/shopspring/decimal" // For precise monetary calculations
)

// Amount is a fixed-point monetary amount with two fractional digits.
// Unlike the decimal default it serializes as a bare JSON number
// ("50.00", not "\"50.00\"") to match the API contract; parsing accepts
// both quoted and unquoted forms. Database Scan/Value behavior is
// inherited from decimal.Decimal (NUMERIC columns).
type Amount struct {
	decimal.Decimal
}

// NewAmount builds an Amount from a decimal value.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// AmountFromFloat builds an Amount from a float, for tests and literals.
func AmountFromFloat(f float64) Amount {
	return Amount{Decimal: decimal.NewFromFloat(f)}
}

// IsPositive reports whether the amount is strictly greater than zero.
func (a Amount) IsPositive() bool {
	return a.Decimal.GreaterThan(decimal.Zero)
}

// MarshalJSON renders the amount as an unquoted number with exactly two
// fractional digits.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.StringFixed(2)), nil
}

// UnmarshalJSON accepts either a JSON number or a quoted decimal string.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	a.Decimal = d
	return nil
}
