package contactform

import (
	"log/slog"
	"time"
)

// DefaultEndpoint is the relative API path, suitable when the transport
// resolves it against the site origin.
const DefaultEndpoint = "/api/contact"

// Option configures a Controller.
type Option func(*Controller)

// WithEndpoint sets the absolute URL of the contact API.
func WithEndpoint(url string) Option {
	return func(c *Controller) {
		if url != "" {
			c.endpoint = url
		}
	}
}

// WithLanguage asks the server for error messages in lang.
func WithLanguage(lang string) Option {
	return func(c *Controller) {
		c.lang = lang
	}
}

// WithClock replaces time.Now. It controls startedAt and the local speed gate.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}
