package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var (
	// One or more non-space, non-@ characters, @, a dotted domain and a TLD of two or more.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)

	// Digits, spaces, parentheses and hyphens with an optional leading plus.
	phoneCharsRegex = regexp.MustCompile(`^\+?[\d\s()-]+$`)
)

// IsEmail reports whether s looks like local@domain.tld.
func IsEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// ValidEmail validates that value looks like local@domain.tld.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsEmail(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// PhoneDigits returns the number of ASCII digits in s.
func PhoneDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// IsPhone reports whether s contains only digits, spaces, parentheses,
// hyphens and one optional leading plus, with a digit count in [minDigits, maxDigits].
func IsPhone(s string, minDigits, maxDigits int) bool {
	if !phoneCharsRegex.MatchString(s) {
		return false
	}
	// \s in RE2 also accepts \t \n \f \r; only plain spaces are allowed.
	if strings.IndexFunc(s, func(r rune) bool { return unicode.IsSpace(r) && r != ' ' }) >= 0 {
		return false
	}
	n := PhoneDigits(s)
	return n >= minDigits && n <= maxDigits
}

// ValidPhone validates a phone number by allowed characters and digit count.
func ValidPhone(field, value string, minDigits, maxDigits int) Rule {
	return Rule{
		Check: func() bool {
			return IsPhone(value, minDigits, maxDigits)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be a valid phone number with %d to %d digits", minDigits, maxDigits),
			TranslationKey: "validation.phone",
			TranslationValues: map[string]any{
				"field": field,
				"min":   minDigits,
				"max":   maxDigits,
			},
		},
	}
}
