package email_test

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/mrz1836/postmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tboywixxy/yorkshire-global/pkg/email"
)

type mockPostmarkAPI struct {
	mock.Mock
}

func (m *mockPostmarkAPI) SendEmail(ctx context.Context, e postmark.Email) (postmark.EmailResponse, error) {
	args := m.Called(ctx, e)
	return args.Get(0).(postmark.EmailResponse), args.Error(1)
}

func postmarkConfig() email.PostmarkConfig {
	return email.PostmarkConfig{
		ServerToken:  "test-server-token",
		AccountToken: "test-account-token",
		SenderName:   "Yorkshire Global",
		SenderEmail:  "hello@yorkshireglobal.ca",
	}
}

func TestNewPostmarkSender_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(c *email.PostmarkConfig)
		errMsg string
	}{
		{"empty server token", func(c *email.PostmarkConfig) { c.ServerToken = "" }, "PostmarkServerToken is required"},
		{"empty account token", func(c *email.PostmarkConfig) { c.AccountToken = "" }, "PostmarkAccountToken is required"},
		{"empty sender", func(c *email.PostmarkConfig) { c.SenderEmail = "" }, "SenderEmail is required"},
		{"invalid sender", func(c *email.PostmarkConfig) { c.SenderEmail = "nope" }, "SenderEmail must be a valid email address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := postmarkConfig()
			tt.modify(&cfg)
			s, err := email.NewPostmarkSender(cfg)
			assert.Nil(t, s)
			assert.ErrorIs(t, err, email.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestPostmarkSender_SendEmail(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	logo := []byte("\x89PNG")

	t.Run("maps params to postmark email", func(t *testing.T) {
		t.Parallel()

		api := &mockPostmarkAPI{}
		api.On("SendEmail", ctx, mock.MatchedBy(func(e postmark.Email) bool {
			if len(e.Attachments) != 1 {
				return false
			}
			a := e.Attachments[0]
			return e.From == `"Yorkshire Global" <hello@yorkshireglobal.ca>` &&
				e.To == "owner@yorkshireglobal.ca" &&
				e.ReplyTo == "jane@example.com" &&
				e.TextBody == "plain" &&
				e.Tag == "contact-owner" &&
				a.ContentID == "cid:yorkshire_logo" &&
				a.Content == base64.StdEncoding.EncodeToString(logo) &&
				a.ContentType == "image/png"
		})).Return(postmark.EmailResponse{}, nil).Once()

		s, err := email.NewPostmarkSender(postmarkConfig(), email.WithPostmarkAPI(api))
		require.NoError(t, err)

		err = s.SendEmail(ctx, email.SendEmailParams{
			SendTo:   "owner@yorkshireglobal.ca",
			ReplyTo:  "jane@example.com",
			Subject:  "New Inquiry",
			BodyHTML: "<p>hi</p>",
			BodyText: "plain",
			Tag:      "contact-owner",
			Attachments: []email.Attachment{{
				Filename: "yorkshire-logo.png", ContentType: "image/png", ContentID: "yorkshire_logo", Data: logo,
			}},
		})
		require.NoError(t, err)
		api.AssertExpectations(t)
	})

	t.Run("api error code", func(t *testing.T) {
		t.Parallel()

		api := &mockPostmarkAPI{}
		api.On("SendEmail", mock.Anything, mock.Anything).
			Return(postmark.EmailResponse{ErrorCode: 406, Message: "Inactive recipient"}, nil)

		s, err := email.NewPostmarkSender(postmarkConfig(), email.WithPostmarkAPI(api))
		require.NoError(t, err)

		err = s.SendEmail(ctx, validParams())
		require.ErrorIs(t, err, email.ErrFailedToSendEmail)
		assert.Contains(t, err.Error(), "406")
	})

	t.Run("transport error", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("dial tcp: timeout")
		api := &mockPostmarkAPI{}
		api.On("SendEmail", mock.Anything, mock.Anything).Return(postmark.EmailResponse{}, boom)

		s, err := email.NewPostmarkSender(postmarkConfig(), email.WithPostmarkAPI(api))
		require.NoError(t, err)

		err = s.SendEmail(ctx, validParams())
		require.ErrorIs(t, err, email.ErrFailedToSendEmail)
		require.ErrorIs(t, err, boom)
	})
}
