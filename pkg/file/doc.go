// Package file provides read-only access to static assets such as the
// email logo, from a local directory or an S3-compatible bucket.
//
// Both backends implement Reader. Paths are slash-separated and relative to
// the store root; anything that escapes the root is rejected with
// ErrInvalidPath. Missing files yield ErrFileNotFound, and S3 API errors are
// mapped to package errors (ErrAccessDenied, ErrBucketNotFound, ...) so
// callers never inspect SDK types.
//
//	store, err := file.New(ctx, cfg)
//	logo, err := store.Read(ctx, "email/yorkshire-logo.png")
package file
