package cli

import (
	"fmt"
	"strings"
	"time"

	"sanse-desk/internal/db"
)

const (
	minPasswordLen = 5
	minCardBalance = 500000
)

func validPassword(password string) bool {
	return len(password) >= minPasswordLen
}

// normalizeISODate parses an ISO calendar date and returns it in the
// stored layout.
func normalizeISODate(input string) (string, error) {
	parsed, err := time.Parse(db.DateLayout, input)
	if err != nil {
		return "", err
	}
	return parsed.Format(db.DateLayout), nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// validCardNumber accepts exactly 16 digits.
func validCardNumber(number string) bool {
	return len(number) == 16 && allDigits(number)
}

// normalizeExpireDate accepts "YY/MM" with two digits on each side and
// returns the joined form stored on the card.
func normalizeExpireDate(input string) (string, error) {
	parts := strings.Split(input, "/")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 ||
		!allDigits(parts[0]) || !allDigits(parts[1]) {
		return "", fmt.Errorf("expire date %q is not in YY/MM form", input)
	}
	return parts[0] + "/" + parts[1], nil
}

// validCVV accepts exactly 4 digits.
func validCVV(cvv string) bool {
	return len(cvv) == 4 && allDigits(cvv)
}
