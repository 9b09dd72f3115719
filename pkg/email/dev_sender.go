package email

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DevSender implements EmailSender for local development. It writes each
// email to a directory instead of sending it: the HTML body (with cid:
// references pointing at the saved attachments), the text body, the
// attachments and a JSON metadata file.
type DevSender struct {
	dir    string
	now    func() time.Time
	logger *slog.Logger
}

// DevOption configures DevSender.
type DevOption func(*DevSender)

// WithDevLogger logs the path of every written email.
func WithDevLogger(l *slog.Logger) DevOption {
	return func(d *DevSender) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithDevClock overrides the clock used for file names.
func WithDevClock(now func() time.Time) DevOption {
	return func(d *DevSender) {
		if now != nil {
			d.now = now
		}
	}
}

// NewDevSender creates a development email sender that saves emails to disk.
// The directory will be created if it doesn't exist.
func NewDevSender(dir string, opts ...DevOption) *DevSender {
	d := &DevSender{
		dir:    dir,
		now:    time.Now,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

type emailMetadata struct {
	Timestamp   string   `json:"timestamp"`
	SendTo      string   `json:"send_to"`
	ReplyTo     string   `json:"reply_to,omitempty"`
	Subject     string   `json:"subject"`
	Tag         string   `json:"tag,omitempty"`
	Attachments []string `json:"attachments,omitempty"`
}

// SendEmail writes the email to the configured directory.
func (d *DevSender) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToSendEmail, err)
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("%w: failed to create directory: %v", ErrFailedToSendEmail, err)
	}

	now := d.now()
	identifier := params.Tag
	if identifier == "" {
		identifier = params.Subject
	}
	base := fmt.Sprintf("%s_%s_%s", now.Format("2006_01_02_150405"), sanitizeFilename(identifier), uuid.NewString()[:8])

	html := params.BodyHTML
	names := make([]string, 0, len(params.Attachments))
	for _, a := range params.Attachments {
		name := base + "_" + sanitizeFilename(a.Filename)
		if err := os.WriteFile(filepath.Join(d.dir, name), a.Data, 0o644); err != nil {
			return fmt.Errorf("%w: failed to write attachment: %v", ErrFailedToSendEmail, err)
		}
		if a.Inline() {
			html = strings.ReplaceAll(html, "cid:"+a.ContentID, name)
		}
		names = append(names, name)
	}

	if err := os.WriteFile(filepath.Join(d.dir, base+".html"), []byte(html), 0o644); err != nil {
		return fmt.Errorf("%w: failed to write HTML file: %v", ErrFailedToSendEmail, err)
	}
	if params.BodyText != "" {
		if err := os.WriteFile(filepath.Join(d.dir, base+".txt"), []byte(params.BodyText), 0o644); err != nil {
			return fmt.Errorf("%w: failed to write text file: %v", ErrFailedToSendEmail, err)
		}
	}

	jsonData, err := json.MarshalIndent(emailMetadata{
		Timestamp:   now.Format(time.RFC3339),
		SendTo:      params.SendTo,
		ReplyTo:     params.ReplyTo,
		Subject:     params.Subject,
		Tag:         params.Tag,
		Attachments: names,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to marshal metadata: %v", ErrFailedToSendEmail, err)
	}
	if err := os.WriteFile(filepath.Join(d.dir, base+".json"), jsonData, 0o644); err != nil {
		return fmt.Errorf("%w: failed to write JSON file: %v", ErrFailedToSendEmail, err)
	}

	d.logger.InfoContext(ctx, "email written to disk",
		slog.String("path", filepath.Join(d.dir, base+".html")),
		slog.String("tag", params.Tag),
	)
	return nil
}

var sanitizeRegex = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// sanitizeFilename turns s into a short, lowercase, filesystem-safe name.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = sanitizeRegex.ReplaceAllString(s, "")

	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}
	if s == "" {
		s = "email"
	}
	return strings.ToLower(s)
}
