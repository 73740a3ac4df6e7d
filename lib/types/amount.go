package types

import (
	"errors"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyAmount = errors.New("amount is empty")
	ErrBadAmount   = errors.New("amount is not a number")
	ErrNotPositive = errors.New("amount should be positive")
	ErrTooPrecise  = errors.New("amount has too many decimal places")
)

// ParseAmount converts a human readable amount string into the token's
// smallest unit using its decimal count.
func ParseAmount(s string, decimals uint8) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmptyAmount
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, ErrBadAmount
	}

	if d.Sign() <= 0 {
		return nil, ErrNotPositive
	}

	shifted := d.Shift(int32(decimals))
	if !shifted.IsInteger() {
		return nil, ErrTooPrecise
	}

	return shifted.BigInt(), nil
}

// FormatAmount renders a smallest-unit value with the token's decimal count.
func FormatAmount(v *big.Int, decimals uint8) string {
	if v == nil {
		return "0"
	}
	return decimal.NewFromBigInt(v, -int32(decimals)).String()
}

// FormatWei renders a wei value as ether, for gas-token balances.
func FormatWei(v *big.Int) string {
	return FormatAmount(v, 18)
}
