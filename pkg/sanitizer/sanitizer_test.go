package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tboywixxy/yorkshire-global/pkg/sanitizer"
)

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		transforms []func(string) string
		expected   string
	}{
		{
			name:       "no transforms returns input",
			input:      "  hello  ",
			transforms: nil,
			expected:   "  hello  ",
		},
		{
			name:       "applies single transform",
			input:      "  hello  ",
			transforms: []func(string) string{sanitizer.Trim},
			expected:   "hello",
		},
		{
			name:       "applies transforms in order",
			input:      "  Hello\r\nWorld  ",
			transforms: []func(string) string{sanitizer.Trim, sanitizer.SingleLine},
			expected:   "Hello  World",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.Apply(tt.input, tt.transforms...))
		})
	}
}

func TestCompose(t *testing.T) {
	t.Parallel()

	clean := sanitizer.Compose(sanitizer.NormalizeNewlines, sanitizer.Trim)
	assert.Equal(t, "line one\nline two", clean("  line one\r\nline two\r\n"))
	assert.Equal(t, "", clean("   "))
}

func TestSingleLine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a b c", sanitizer.SingleLine("a\rb\nc"))
	assert.Equal(t, "unchanged", sanitizer.SingleLine("unchanged"))
}

func TestNormalizeNewlines(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a\nb\nc\n", sanitizer.NormalizeNewlines("a\r\nb\rc\n"))
}

func TestTruncateRunes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		n        int
		expected string
	}{
		{"shorter than limit", "abc", 5, "abc"},
		{"exact limit", "abc", 3, "abc"},
		{"cuts ascii", "abcdef", 4, "abcd"},
		{"cuts on rune boundary", "héllo", 2, "hé"},
		{"zero limit", "abc", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.TruncateRunes(tt.input, tt.n))
		})
	}
}

func TestSanitizePhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{"keeps formatted number", "+1 (555) 123-4567", 24, "+1 (555) 123-4567"},
		{"drops letters", "+44 abc 20 7946", 24, "+44  20 7946"},
		{"drops inner plus", "1+2+3", 24, "123"},
		{"keeps leading plus only once", "++44", 24, "+44"},
		{"plus after dropped prefix becomes leading", "x+44", 24, "+44"},
		{"cuts to max length", strings.Repeat("1", 30), 24, strings.Repeat("1", 24)},
		{"no limit", strings.Repeat("1", 30), 0, strings.Repeat("1", 30)},
		{"tabs and newlines become spaces", "+1\t416\n555\r\n0123", 24, "+1 416 555  0123"},
		{"plus after leading whitespace", "\t+44 20", 24, " +44 20"},
		{"empty", "", 24, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.SanitizePhone(tt.input, tt.maxLen))
		})
	}
}

func TestMaskEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"jane@example.com", "j***@example.com"},
		{"j@example.com", "*@example.com"},
		{"  émile@example.fr ", "é****@example.fr"},
		{"not-an-email", "not-an-email"},
		{"a@b@c", "a@b@c"},
		{"@example.com", "@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.MaskEmail(tt.input))
		})
	}
}
