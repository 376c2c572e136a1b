package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseDisplayPrice parses a $-prefixed, comma-grouped price string
// (e.g. "$1,234.56") into a numeric USD amount.
//
// The leading "$" is mandatory: a string without it is rejected as malformed.
// Thousands separators are stripped before parsing. A malformed price is
// fatal only for the candidate carrying it, never for the whole search.
func ParseDisplayPrice(display string) (float64, error) {
	s := strings.TrimSpace(display)
	if !strings.HasPrefix(s, "$") {
		return 0, fmt.Errorf("malformed price %q: missing currency symbol", display)
	}

	s = strings.ReplaceAll(strings.TrimPrefix(s, "$"), ",", "")
	if s == "" {
		return 0, fmt.Errorf("malformed price %q: no amount", display)
	}

	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed price %q: %w", display, err)
	}
	if amount < 0 {
		return 0, fmt.Errorf("malformed price %q: negative amount", display)
	}
	return amount, nil
}
