// Package validate coerces raw form values. Nothing here rejects a request:
// bad input collapses to a default.
package validate

import (
	"regexp"
	"strconv"
	"strings"

	"farmacia/internal/domain"
)

var reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 100 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Qty is a quantity in 1..domain.MaxQty; unparsable or < 1 becomes 1,
// larger values are clamped.
func Qty(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	if n > domain.MaxQty {
		return domain.MaxQty
	}
	return n
}

// Int parses a whole number, 0 when missing or malformed.
func Int(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// ID parses a positive numeric identifier.
func ID(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Position parses a zero-based list index. Callers treat !ok as "do
// nothing", not as an error.
func Position(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return -1, false
	}
	return n, true
}
