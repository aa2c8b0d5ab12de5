package domain

import (
	"bytes"
	"database/sql/driver"
	"fmt"

	"github.com/shopspring/decimal"
)

// Amount is a non-negative monetary value with exact decimal arithmetic.
// The zero value is a valid zero amount.
//
// JSON decoding is deliberately lenient: unparsable, null, or negative
// input normalizes to zero instead of failing the request. Form fields
// arrive as free text and an empty or garbled cell means "nothing entered",
// not "reject the document".
type Amount struct {
	value decimal.Decimal
}

// NewAmount parses s into an Amount. Unparsable or negative input yields zero.
func NewAmount(s string) Amount {
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return Amount{}
	}
	return Amount{value: d}
}

// AmountFromInt builds an Amount from a whole number of currency units.
func AmountFromInt(n int64) Amount {
	if n < 0 {
		return Amount{}
	}
	return Amount{value: decimal.NewFromInt(n)}
}

// AmountFromDecimal wraps d, clamping negatives to zero.
func AmountFromDecimal(d decimal.Decimal) Amount {
	if d.IsNegative() {
		return Amount{}
	}
	return Amount{value: d}
}

// Decimal returns the underlying decimal value.
func (a Amount) Decimal() decimal.Decimal { return a.value }

// Add returns a + b.
func (a Amount) Add(b Amount) Amount {
	return Amount{value: a.value.Add(b.value)}
}

// Sub returns a - b clamped at zero.
func (a Amount) Sub(b Amount) Amount {
	return AmountFromDecimal(a.value.Sub(b.value))
}

// Cmp compares a against b: -1 if a < b, 0 if equal, +1 if a > b.
func (a Amount) Cmp(b Amount) int { return a.value.Cmp(b.value) }

// Equal reports whether a and b represent the same value.
func (a Amount) Equal(b Amount) bool { return a.value.Equal(b.value) }

// IsZero reports whether the amount is zero.
func (a Amount) IsZero() bool { return a.value.IsZero() }

// String formats the amount as a plain decimal number.
func (a Amount) String() string { return a.value.String() }

// StringFixed formats the amount with exactly two decimal places.
func (a Amount) StringFixed() string { return a.value.StringFixed(2) }

// MarshalJSON encodes the amount as a bare JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.value.String()), nil
}

// UnmarshalJSON decodes a JSON number or quoted numeric string. Anything
// that does not parse as a non-negative decimal becomes zero.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(bytes.TrimSpace(data), `"`))
	if s == "" || s == "null" {
		a.value = decimal.Decimal{}
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		a.value = decimal.Decimal{}
		return nil
	}
	a.value = d
	return nil
}

// Value implements driver.Valuer so amounts can be bound as SQL numerics.
func (a Amount) Value() (driver.Value, error) {
	return a.value.String(), nil
}

// Scan implements sql.Scanner.
func (a *Amount) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		a.value = decimal.Decimal{}
		return nil
	case []byte:
		*a = NewAmount(string(v))
		return nil
	case string:
		*a = NewAmount(v)
		return nil
	case int64:
		*a = AmountFromInt(v)
		return nil
	case float64:
		*a = AmountFromDecimal(decimal.NewFromFloat(v))
		return nil
	default:
		return fmt.Errorf("domain.Amount: cannot scan %T", src)
	}
}
