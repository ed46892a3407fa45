package validation

import (
	"errors"
	"strings"
	"unicode"
)

// Lebanon is the default market: bare local numbers are assumed to be
// Lebanese and trunk-prefixed numbers have their leading 0 replaced by the
// country calling code.
const _lebanonCallingCode = "961"

var ErrEmptyPhone = errors.New("phone number is empty")

// NormalizePhone converts free-form phone input into the canonical
// +<countrycode><digits> form:
//
//   - already "+"-prefixed: keep the prefix, strip every non-digit after it
//   - starts with the country calling code: prefix "+"
//   - starts with the trunk prefix "0": drop it, prefix "+961"
//   - anything else: treat as a bare local number, prefix "+961"
//
// The result is idempotent: normalizing "+<digits>" yields the same string.
// Digit-count validation is the schema layer's concern, not done here.
func NormalizePhone(phone string) (string, error) {
	stripped := stripSpaces(phone)
	if stripped == "" {
		return "", ErrEmptyPhone
	}

	if strings.HasPrefix(stripped, "+") {
		return "+" + digitsOnly(stripped[1:]), nil
	}

	digits := digitsOnly(stripped)
	switch {
	case strings.HasPrefix(digits, _lebanonCallingCode):
		return "+" + digits, nil
	case strings.HasPrefix(digits, "0"):
		return "+" + _lebanonCallingCode + digits[1:], nil
	default:
		return "+" + _lebanonCallingCode + digits, nil
	}
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r < '0' || r > '9' {
			return -1
		}
		return r
	}, s)
}
