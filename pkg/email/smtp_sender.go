package email

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/wneessen/go-mail"
)

// smtpClient is the part of *mail.Client used by SMTPSender.
type smtpClient interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// SMTPSender delivers mail through an SMTP relay with go-mail.
type SMTPSender struct {
	client smtpClient
	config SMTPConfig
}

// SMTPOption configures SMTPSender.
type SMTPOption func(*SMTPSender)

// WithSMTPClient replaces the go-mail client. Useful for tests.
func WithSMTPClient(c smtpClient) SMTPOption {
	return func(s *SMTPSender) {
		if c != nil {
			s.client = c
		}
	}
}

// NewSMTPSender creates an SMTP-backed sender. Port 465 with TLS mode "tls"
// is implicit TLS; "starttls" requires STARTTLS; "plain" disables TLS.
func NewSMTPSender(cfg SMTPConfig, opts ...SMTPOption) (*SMTPSender, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &SMTPSender{config: cfg}
	for _, opt := range opts {
		opt(s)
	}
	if s.client != nil {
		return s, nil
	}

	var mailOpts []mail.Option
	switch cfg.TLSMode {
	case TLSModeImplicit:
		mailOpts = append(mailOpts, mail.WithSSL())
	case TLSModeStartTLS:
		mailOpts = append(mailOpts, mail.WithTLSPortPolicy(mail.TLSMandatory))
	case TLSModePlain:
		mailOpts = append(mailOpts, mail.WithTLSPortPolicy(mail.NoTLS))
	}
	// Port last so the TLS policy cannot override it.
	mailOpts = append(mailOpts,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
	)
	if cfg.Timeout > 0 {
		mailOpts = append(mailOpts, mail.WithTimeout(cfg.Timeout))
	}

	client, err := mail.NewClient(cfg.Host, mailOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	s.client = client
	return s, nil
}

// SendEmail implements EmailSender.
func (s *SMTPSender) SendEmail(ctx context.Context, params SendEmailParams) error {
	msg, err := s.Message(params)
	if err != nil {
		return err
	}
	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	return nil
}

// Message builds the MIME message for params without sending it.
func (s *SMTPSender) Message(params SendEmailParams) (*mail.Msg, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat(s.config.SenderName, s.config.From()); err != nil {
		return nil, fmt.Errorf("%w: invalid sender: %v", ErrInvalidConfig, err)
	}
	if err := msg.To(params.SendTo); err != nil {
		return nil, fmt.Errorf("%w: invalid recipient: %v", ErrInvalidParams, err)
	}
	if params.ReplyTo != "" {
		if err := msg.ReplyTo(params.ReplyTo); err != nil {
			return nil, fmt.Errorf("%w: invalid reply-to: %v", ErrInvalidParams, err)
		}
	}
	msg.Subject(params.Subject)
	msg.SetDate()
	msg.SetMessageID()
	if params.Tag != "" {
		msg.SetGenHeader("X-Mail-Tag", params.Tag)
	}

	if params.BodyText != "" {
		msg.SetBodyString(mail.TypeTextPlain, params.BodyText)
		msg.AddAlternativeString(mail.TypeTextHTML, params.BodyHTML)
	} else {
		msg.SetBodyString(mail.TypeTextHTML, params.BodyHTML)
	}

	for _, a := range params.Attachments {
		fileOpts := []mail.FileOption{}
		if a.ContentType != "" {
			fileOpts = append(fileOpts, mail.WithFileContentType(mail.ContentType(a.ContentType)))
		}
		r := bytes.NewReader(a.Data)
		if a.Inline() {
			fileOpts = append(fileOpts, mail.WithFileContentID(a.ContentID))
			if err := msg.EmbedReader(a.Filename, r, fileOpts...); err != nil {
				return nil, fmt.Errorf("%w: embed %s: %v", ErrInvalidParams, a.Filename, err)
			}
			continue
		}
		if err := msg.AttachReader(a.Filename, r, fileOpts...); err != nil {
			return nil, fmt.Errorf("%w: attach %s: %v", ErrInvalidParams, a.Filename, err)
		}
	}

	return msg, nil
}
