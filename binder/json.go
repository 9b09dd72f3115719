package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// DefaultMaxBodyBytes caps request bodies when no explicit limit is given.
const DefaultMaxBodyBytes int64 = 64 << 10

type jsonConfig struct {
	maxBytes     int64
	allowUnknown bool
}

// JSONOption configures the JSON binder.
type JSONOption func(*jsonConfig)

// WithMaxBytes sets the maximum accepted body size. Non-positive values are ignored.
func WithMaxBytes(n int64) JSONOption {
	return func(c *jsonConfig) {
		if n > 0 {
			c.maxBytes = n
		}
	}
}

// WithUnknownFields disables strict decoding so unknown object keys are ignored.
func WithUnknownFields() JSONOption {
	return func(c *jsonConfig) {
		c.allowUnknown = true
	}
}

// JSON creates a strict JSON binder.
//
// The binder requires an application/json content type, rejects unknown
// fields and trailing data after the first JSON value, and limits the body
// to DefaultMaxBodyBytes unless WithMaxBytes says otherwise.
//
// Example:
//
//	http.HandleFunc("/api/contact", handler.Wrap(submit,
//		handler.WithBinder[handler.Context, contact.Submission](binder.JSON()),
//	))
func JSON(opts ...JSONOption) func(r *http.Request, v any) error {
	cfg := jsonConfig{maxBytes: DefaultMaxBodyBytes}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(r *http.Request, v any) error {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: expected application/json", ErrMissingContentType)
		}

		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != "application/json" {
			return fmt.Errorf("%w: got %q, expected application/json", ErrUnsupportedMediaType, contentType)
		}

		if r.Body == nil || r.Body == http.NoBody {
			return ErrEmptyBody
		}

		body := http.MaxBytesReader(nil, r.Body, cfg.maxBytes)
		decoder := json.NewDecoder(body)
		if !cfg.allowUnknown {
			decoder.DisallowUnknownFields()
		}

		if err := decoder.Decode(v); err != nil {
			return classifyDecodeError(err)
		}

		var extra json.RawMessage
		if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				return fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, maxErr.Limit)
			}
			return fmt.Errorf("%w: unexpected data after JSON value", ErrInvalidJSON)
		}

		return nil
	}
}

func classifyDecodeError(err error) error {
	var (
		maxErr    *http.MaxBytesError
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)

	switch {
	case errors.Is(err, io.EOF):
		return ErrEmptyBody
	case errors.As(err, &maxErr):
		return fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, maxErr.Limit)
	case errors.As(err, &syntaxErr):
		return fmt.Errorf("%w: syntax error at offset %d", ErrInvalidJSON, syntaxErr.Offset)
	case errors.As(err, &typeErr):
		return fmt.Errorf("%w: field %q must be %s", ErrInvalidJSON, typeErr.Field, typeErr.Type)
	default:
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
}
