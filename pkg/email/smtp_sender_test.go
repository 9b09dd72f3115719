package email_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"

	"github.com/tboywixxy/yorkshire-global/pkg/email"
)

type mockSMTPClient struct {
	mock.Mock
}

func (m *mockSMTPClient) DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error {
	args := m.Called(ctx, messages)
	return args.Error(0)
}

func smtpConfig() email.SMTPConfig {
	return email.SMTPConfig{
		Host:        "smtp.zoho.com",
		Port:        465,
		Username:    "hello@yorkshireglobal.ca",
		Password:    "secret",
		TLSMode:     email.TLSModeImplicit,
		SenderName:  "Yorkshire Global",
		SenderEmail: "",
	}
}

func renderMsg(t *testing.T, msg *mail.Msg) string {
	t.Helper()

	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)
	return buf.String()
}

func TestNewSMTPSender(t *testing.T) {
	t.Parallel()

	for _, mode := range []string{email.TLSModeImplicit, email.TLSModeStartTLS, email.TLSModePlain} {
		t.Run(mode, func(t *testing.T) {
			t.Parallel()

			cfg := smtpConfig()
			cfg.TLSMode = mode
			s, err := email.NewSMTPSender(cfg)
			require.NoError(t, err)
			assert.NotNil(t, s)
		})
	}

	_, err := email.NewSMTPSender(email.SMTPConfig{})
	require.ErrorIs(t, err, email.ErrInvalidConfig)
}

func TestSMTPSender_Message(t *testing.T) {
	t.Parallel()

	s, err := email.NewSMTPSender(smtpConfig(), email.WithSMTPClient(&mockSMTPClient{}))
	require.NoError(t, err)

	msg, err := s.Message(email.SendEmailParams{
		SendTo:   "owner@yorkshireglobal.ca",
		ReplyTo:  "jane@example.com",
		Subject:  "New Inquiry",
		BodyHTML: `<p>Hello</p><img src="cid:yorkshire_logo">`,
		BodyText: "Hello",
		Tag:      "contact-owner",
		Attachments: []email.Attachment{{
			Filename:    "yorkshire-logo.png",
			ContentType: "image/png",
			ContentID:   "yorkshire_logo",
			Data:        []byte("\x89PNG\r\n\x1a\n"),
		}},
	})
	require.NoError(t, err)

	raw := renderMsg(t, msg)
	assert.Contains(t, raw, "Yorkshire Global")
	assert.Contains(t, raw, "<hello@yorkshireglobal.ca>")
	assert.Contains(t, raw, "To: <owner@yorkshireglobal.ca>")
	assert.Contains(t, raw, "Reply-To: <jane@example.com>")
	assert.Contains(t, raw, "Subject: New Inquiry")
	assert.Contains(t, raw, "X-Mail-Tag: contact-owner")
	assert.Contains(t, raw, "multipart/alternative")
	assert.Contains(t, raw, "multipart/related")
	assert.Contains(t, raw, "yorkshire_logo")
	assert.Contains(t, raw, "image/png")
}

func TestSMTPSender_Message_HTMLOnly(t *testing.T) {
	t.Parallel()

	cfg := smtpConfig()
	cfg.SenderEmail = "noreply@yorkshireglobal.ca"
	s, err := email.NewSMTPSender(cfg, email.WithSMTPClient(&mockSMTPClient{}))
	require.NoError(t, err)

	msg, err := s.Message(validParams())
	require.NoError(t, err)

	raw := renderMsg(t, msg)
	assert.Contains(t, raw, "<noreply@yorkshireglobal.ca>")
	assert.NotContains(t, raw, "Reply-To:")
	assert.NotContains(t, raw, "multipart/alternative")
	assert.Contains(t, raw, "text/html")
}

func TestSMTPSender_SendEmail(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("sends one message", func(t *testing.T) {
		t.Parallel()

		client := &mockSMTPClient{}
		client.On("DialAndSendWithContext", ctx, mock.MatchedBy(func(msgs []*mail.Msg) bool {
			return len(msgs) == 1
		})).Return(nil).Once()

		s, err := email.NewSMTPSender(smtpConfig(), email.WithSMTPClient(client))
		require.NoError(t, err)
		require.NoError(t, s.SendEmail(ctx, validParams()))
		client.AssertExpectations(t)
	})

	t.Run("wraps delivery errors", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("535 authentication failed")
		client := &mockSMTPClient{}
		client.On("DialAndSendWithContext", mock.Anything, mock.Anything).Return(boom)

		s, err := email.NewSMTPSender(smtpConfig(), email.WithSMTPClient(client))
		require.NoError(t, err)

		err = s.SendEmail(ctx, validParams())
		require.ErrorIs(t, err, email.ErrFailedToSendEmail)
		require.ErrorIs(t, err, boom)
	})

	t.Run("invalid params never dial", func(t *testing.T) {
		t.Parallel()

		client := &mockSMTPClient{}
		s, err := email.NewSMTPSender(smtpConfig(), email.WithSMTPClient(client))
		require.NoError(t, err)

		p := validParams()
		p.SendTo = "nope"
		require.ErrorIs(t, s.SendEmail(ctx, p), email.ErrInvalidParams)
		client.AssertNotCalled(t, "DialAndSendWithContext", mock.Anything, mock.Anything)
	})
}
