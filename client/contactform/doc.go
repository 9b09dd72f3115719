// Package contactform drives the contact form on the client side.
//
// A Controller owns the field values, per-field error kinds, the honeypot,
// the Turnstile token and the time the form was first shown. Submit walks a
// small state machine:
//
//	idle -> validating -> submitting -> success | error -> idle
//
// Local failures (honeypot, invalid fields, missing token) return to idle
// without a network call. A successful post clears the form and restarts the
// speed gate clock; a failed one keeps the input. The token is single use and
// is cleared after every post.
package contactform
