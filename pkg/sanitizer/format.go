package sanitizer

import "strings"

// MaskEmail keeps the domain and first local character so logs stay
// useful without carrying the full address.
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") || local == "" {
		return email
	}

	r := []rune(local)
	if len(r) == 1 {
		return "*@" + domain
	}
	return string(r[0]) + strings.Repeat("*", len(r)-1) + "@" + domain
}

// SanitizePhone keeps digits, spaces, parentheses, dashes and a single
// leading plus sign, then cuts the result to maxLen code points. Tabs,
// newlines and other ASCII whitespace become spaces.
// A non-positive maxLen disables the cut.
func SanitizePhone(phone string, maxLen int) string {
	var b strings.Builder
	b.Grow(len(phone))
	leading := true
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9', r == '(', r == ')', r == '-':
			b.WriteRune(r)
			leading = false
		case r == ' ', r == '\t', r == '\n', r == '\r', r == '\f', r == '\v':
			b.WriteByte(' ')
		case r == '+':
			if leading {
				b.WriteRune(r)
				leading = false
			}
		}
	}
	if maxLen <= 0 {
		return b.String()
	}
	return TruncateRunes(b.String(), maxLen)
}
