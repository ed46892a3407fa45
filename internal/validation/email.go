package validation

import (
	"strings"
	"unicode/utf8"
)

// NormalizeEmail lowercases and trims an address and reports whether the
// result passes the same shape check the order schema uses.
func NormalizeEmail(raw string) (string, bool) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" || utf8.RuneCountInString(email) > _maxEmailLen || !_emailRe.MatchString(email) {
		return "", false
	}
	return email, true
}
