package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MaxLenString validates that value has at most max characters.
// Characters are Unicode code points, not bytes.
func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// CountWords returns the number of whitespace separated words in s.
func CountWords(s string) int {
	return len(strings.Fields(s))
}

// MaxWords validates that value has at most max whitespace separated words.
func MaxWords(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return CountWords(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %d words", max),
			TranslationKey: "validation.max_words",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}
