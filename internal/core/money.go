// Package core defines the transaction domain model shared by every other
// layer: transactions, users, money amounts and the category vocabulary.
package core

import (
	"encoding/json"
	"strings"

	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is an amount in integer cents. Calculations stay in cents; decimal
// conversion happens only at parse and display boundaries.
type Money struct {
	Cents int64
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (m Money) Add(other Money) Money {
	return Money{Cents: m.Cents + other.Cents}
}

func (m Money) Sub(other Money) Money {
	return Money{Cents: m.Cents - other.Cents}
}

// Decimal returns the plain decimal rendering, e.g. "12.34" or "5000".
func (m Money) Decimal() string {
	return decimal.New(m.Cents, -2).String()
}

// Display returns the formatted currency rendering, e.g. "$1,234.56".
func (m Money) Display() string {
	return gomoney.New(m.Cents, gomoney.USD).Display()
}

// ParseAmount converts a positive decimal string to Money. Both dot and comma
// decimal separators are accepted; anything past the second decimal place is
// rounded half-up. Zero, negative, and malformed inputs are rejected.
func ParseAmount(s string) (Money, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return Money{}, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	cents := d.Shift(2).Round(0).IntPart()
	if cents <= 0 {
		return Money{}, ErrInvalidAmount
	}
	return Money{Cents: cents}, nil
}

// MarshalJSON emits the decimal string form so that amounts round-trip
// losslessly through persisted state.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Decimal())
}

// UnmarshalJSON accepts either a quoted decimal string or a bare JSON number.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		return ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return ErrInvalidAmount
	}
	m.Cents = d.Shift(2).Round(0).IntPart()
	return nil
}
