package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/holiman/uint256"
)

var (
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrAmountOverflow = errors.New("amount exceeds 256 bits")
)

// ToUnits converts a non-negative decimal literal into the token's smallest unit. Digits
// beyond decimals are dropped, or round the result up when roundUp is set.
func ToUnits(amount string, decimals uint8, roundUp bool) (*uint256.Int, error) {
	whole, frac, _ := strings.Cut(strings.TrimSpace(amount), ".")
	if whole == "" && frac == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	if !isDigits(whole) || !isDigits(frac) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}

	var remainder string
	if len(frac) > int(decimals) {
		frac, remainder = frac[:decimals], frac[decimals:]
	} else {
		frac += strings.Repeat("0", int(decimals)-len(frac))
	}

	digits := strings.TrimLeft(whole+frac, "0")
	if digits == "" {
		digits = "0"
	}

	// digits holds only decimal digits here, so a parse failure means overflow.
	units, err := uint256.FromDecimal(digits)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrAmountOverflow, amount)
	}

	if roundUp && strings.Trim(remainder, "0") != "" {
		if _, overflow := units.AddOverflow(units, uint256.NewInt(1)); overflow {
			return nil, fmt.Errorf("%w: %q", ErrAmountOverflow, amount)
		}
	}

	return units, nil
}

// ParseUnits parses a raw smallest-unit integer as stored for a transfer.
func ParseUnits(value string) (*uint256.Int, error) {
	digits := strings.TrimLeft(value, "0")
	if digits == "" {
		if value == "" {
			return nil, fmt.Errorf("%w: empty value", ErrInvalidAmount)
		}
		return new(uint256.Int), nil
	}

	units, err := uint256.FromDecimal(digits)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidAmount, value, err)
	}
	return units, nil
}

// FormatUnits renders a raw smallest-unit integer as a decimal string without trailing
// fractional zeros.
func FormatUnits(value string, decimals uint8) (string, error) {
	units, err := ParseUnits(value)
	if err != nil {
		return "", err
	}

	digits := units.Dec()
	if decimals == 0 {
		return digits, nil
	}

	if len(digits) <= int(decimals) {
		digits = strings.Repeat("0", int(decimals)-len(digits)+1) + digits
	}

	point := len(digits) - int(decimals)
	whole, frac := digits[:point], strings.TrimRight(digits[point:], "0")
	if frac == "" {
		return whole, nil
	}
	return whole + "." + frac, nil
}

// MatchAmount reports whether a raw value lies strictly between the filter thresholds
// once they are scaled by decimals. A lower bound beyond 256 bits matches nothing and an
// upper bound beyond 256 bits is no bound at all.
func (f Filters) MatchAmount(value string, decimals uint8) (bool, error) {
	if f.MinAmount == "" && f.MaxAmount == "" {
		return true, nil
	}

	units, err := ParseUnits(value)
	if err != nil {
		return false, err
	}

	if f.MinAmount != "" {
		lower, err := ToUnits(f.MinAmount, decimals, false)
		if errors.Is(err, ErrAmountOverflow) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		if units.Cmp(lower) <= 0 {
			return false, nil
		}
	}

	if f.MaxAmount != "" {
		upper, err := ToUnits(f.MaxAmount, decimals, true)
		switch {
		case errors.Is(err, ErrAmountOverflow):
		case err != nil:
			return false, err
		case units.Cmp(upper) >= 0:
			return false, nil
		}
	}

	return true, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
