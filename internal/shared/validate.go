package shared

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	emailPattern    = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@(.+)$`)
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9]{3,20}$`)
	tmdbIDPattern   = regexp.MustCompile(`^[0-9]+$`)
)

// IsValidEmail reports whether email has the shape local@domain.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidUsername reports whether username is 3-20 alphanumeric characters.
func IsValidUsername(username string) bool {
	return usernamePattern.MatchString(username)
}

// IsValidTMDBID reports whether id is all digits.
func IsValidTMDBID(id string) bool {
	return tmdbIDPattern.MatchString(id)
}

// IsValidYear reports whether year parses as an integer between 1900 and 2100.
func IsValidYear(year string) bool {
	y, err := strconv.Atoi(year)
	if err != nil {
		return false
	}
	return y >= 1900 && y <= 2100
}

// IsEmpty reports whether text is empty after trimming whitespace.
func IsEmpty(text string) bool {
	return strings.TrimSpace(text) == ""
}
