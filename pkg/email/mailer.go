package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/wneessen/go-mail"

	"github.com/tboywixxy/yorkshire-global/pkg/validator"
)

// EmailSender represents an interface for sending emails.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SendEmailParams represents the parameters for sending an email.
type SendEmailParams struct {
	SendTo      string       `json:"send_to"`            // Email address of the recipient
	ReplyTo     string       `json:"reply_to,omitempty"` // Optional, overrides the sender default
	Subject     string       `json:"subject"`
	BodyHTML    string       `json:"body_html"`
	BodyText    string       `json:"body_text,omitempty"` // Optional plain-text alternative
	Tag         string       `json:"tag,omitempty"`
	Attachments []Attachment `json:"-"`
}

// Attachment is a file sent with the message. A non-empty ContentID makes
// it inline, referenced from HTML as cid:<ContentID>.
type Attachment struct {
	Filename    string
	ContentType string
	ContentID   string
	Data        []byte
}

// Inline reports whether the attachment is embedded in the HTML body.
func (a Attachment) Inline() bool {
	return a.ContentID != ""
}

// CheckAddress reports whether addr can be written to an address header.
// Some addresses pass the form rule but are not RFC 5322 addr-specs, for
// example consecutive dots or unquoted specials in the local part.
func CheckAddress(addr string) error {
	if err := mail.NewMsg().To(addr); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	return nil
}

// Validate checks required fields and address formats.
func (p SendEmailParams) Validate() error {
	if strings.TrimSpace(p.SendTo) == "" {
		return fmt.Errorf("%w: SendTo is required", ErrInvalidParams)
	}
	if !validator.IsEmail(p.SendTo) || CheckAddress(p.SendTo) != nil {
		return fmt.Errorf("%w: SendTo must be a valid email address", ErrInvalidParams)
	}
	if p.ReplyTo != "" && (!validator.IsEmail(p.ReplyTo) || CheckAddress(p.ReplyTo) != nil) {
		return fmt.Errorf("%w: ReplyTo must be a valid email address", ErrInvalidParams)
	}
	if strings.TrimSpace(p.Subject) == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidParams)
	}
	if strings.ContainsAny(p.Subject, "\r\n") {
		return fmt.Errorf("%w: Subject must be a single line", ErrInvalidParams)
	}
	if strings.TrimSpace(p.BodyHTML) == "" {
		return fmt.Errorf("%w: BodyHTML is required", ErrInvalidParams)
	}
	for i, a := range p.Attachments {
		if strings.TrimSpace(a.Filename) == "" {
			return fmt.Errorf("%w: attachment %d: Filename is required", ErrInvalidParams, i)
		}
		if len(a.Data) == 0 {
			return fmt.Errorf("%w: attachment %q is empty", ErrInvalidParams, a.Filename)
		}
	}
	return nil
}
