package email

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/mail"

	"github.com/mrz1836/postmark"
)

// postmarkAPI is the part of *postmark.Client used by postmarkSender.
type postmarkAPI interface {
	SendEmail(ctx context.Context, email postmark.Email) (postmark.EmailResponse, error)
}

type postmarkSender struct {
	client postmarkAPI
	config PostmarkConfig
}

// PostmarkOption configures the Postmark sender.
type PostmarkOption func(*postmarkSender)

// WithPostmarkAPI replaces the Postmark client. Useful for tests.
func WithPostmarkAPI(c postmarkAPI) PostmarkOption {
	return func(s *postmarkSender) {
		if c != nil {
			s.client = c
		}
	}
}

// NewPostmarkSender creates a Postmark-backed email sender.
func NewPostmarkSender(cfg PostmarkConfig, opts ...PostmarkOption) (EmailSender, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &postmarkSender{config: cfg}
	for _, opt := range opts {
		opt(s)
	}
	if s.client == nil {
		s.client = postmark.NewClient(cfg.ServerToken, cfg.AccountToken)
	}
	return s, nil
}

// SendEmail implements EmailSender using Postmark's transactional API.
// Open tracking is off; contact mail goes to people who wrote to us.
func (s *postmarkSender) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	from := s.config.SenderEmail
	if s.config.SenderName != "" {
		from = (&mail.Address{Name: s.config.SenderName, Address: s.config.SenderEmail}).String()
	}

	msg := postmark.Email{
		From:     from,
		ReplyTo:  params.ReplyTo,
		To:       params.SendTo,
		Subject:  params.Subject,
		Tag:      params.Tag,
		HTMLBody: params.BodyHTML,
		TextBody: params.BodyText,
	}
	for _, a := range params.Attachments {
		att := postmark.Attachment{
			Name:        a.Filename,
			Content:     base64.StdEncoding.EncodeToString(a.Data),
			ContentType: a.ContentType,
		}
		if a.Inline() {
			att.ContentID = "cid:" + a.ContentID
		}
		msg.Attachments = append(msg.Attachments, att)
	}

	resp, err := s.client.SendEmail(ctx, msg)
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(
			ErrFailedToSendEmail,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}
	return nil
}
