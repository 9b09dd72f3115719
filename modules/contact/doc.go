// Package contact implements the website contact form backend.
//
// A submission flows through Service.Submit in a fixed order, stopping at the
// first failure:
//
//  1. CAPTCHA verification (Turnstile), when enabled
//  2. honeypot and speed gate (Guard)
//  3. required field presence
//  4. per-field validators
//  5. rendering of the owner and acknowledgment emails
//  6. sequential dispatch, owner first
//
// Every failure wraps one of the package sentinels. ClassifyError maps them
// to handler.HTTPError, and NewErrorHandler renders them as localized JSON
// using the bundled locales.
//
// Handler mounts POST / and is normally mounted at /api/contact through
// Router.
package contact
