// Package sanitizer holds small, stateless helpers that normalise user
// input before it is validated or logged.
//
// Helpers are plain func(string) string values where possible, so they can
// be chained with Apply or stored as a pipeline with Compose:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.SingleLine,
//	)
//	subject := clean(input)
//
// SanitizePhone mirrors what the contact form does while the user types:
// it drops anything that is not a digit, space, parenthesis or dash, turns
// other whitespace into spaces and keeps a plus sign only in the first
// position.
//
// MaskEmail is meant for log lines.
package sanitizer
