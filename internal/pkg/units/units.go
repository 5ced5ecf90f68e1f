// Package units converts between display amounts of the chain's native
// currency (e.g. "0.5" ether) and base-unit integers (wei).
package units

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// Decimals is the number of decimal places between a display unit and a
// base unit (1 ether = 10^18 wei).
const Decimals = 18

var (
	// ErrInvalidAmount is returned when an amount string is not a decimal number.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrNegativeAmount is returned for amounts below zero.
	ErrNegativeAmount = errors.New("amount must not be negative")

	// ErrTooPrecise is returned when an amount has more fractional digits
	// than a base unit can represent.
	ErrTooPrecise = errors.New("amount has more than 18 decimal places")
)

// ParseAmount parses a display amount into a decimal, rejecting negative
// values and values finer than one base unit.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrNegativeAmount, s)
	}

	if !d.Shift(Decimals).IsInteger() {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrTooPrecise, s)
	}

	return d, nil
}

// ToWei converts a display amount (e.g. "0.5") to its base-unit integer.
func ToWei(amount decimal.Decimal) *big.Int {
	return amount.Shift(Decimals).BigInt()
}

// ParseWei parses a display amount string and converts it to base units.
func ParseWei(s string) (*big.Int, error) {
	d, err := ParseAmount(s)
	if err != nil {
		return nil, err
	}

	return ToWei(d), nil
}

// FromWei converts a base-unit integer to a display amount.
// A nil value is treated as zero.
func FromWei(wei *big.Int) decimal.Decimal {
	if wei == nil {
		return decimal.Zero
	}

	return decimal.NewFromBigInt(wei, -Decimals)
}
