package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"time"

	"github.com/tboywixxy/yorkshire-global/pkg/email"
	"github.com/tboywixxy/yorkshire-global/pkg/logger"
	"github.com/tboywixxy/yorkshire-global/pkg/sanitizer"
)

// DefaultLogoPath is the logo location in the asset store.
const DefaultLogoPath = "email/yorkshire-logo.png"

// Mail tags for provider side filtering.
const (
	TagOwner = "contact-owner"
	TagAck   = "contact-ack"
)

// loadLogo reads the logo once per request. A missing logo is logged and
// the emails go out without it.
func (s *Service) loadLogo(ctx context.Context) []email.Attachment {
	if s.assets == nil || s.cfg.LogoPath == "" {
		return nil
	}
	asset, err := s.assets.Read(ctx, s.cfg.LogoPath)
	if err != nil {
		s.log.WarnContext(ctx, "contact logo unavailable, sending without it",
			logger.Component("contact"),
			logger.Error(err),
			slog.String("path", s.cfg.LogoPath),
		)
		return nil
	}
	filename := asset.Filename
	if filename == "" {
		filename = path.Base(s.cfg.LogoPath)
	}
	return []email.Attachment{{
		Filename:    filename,
		ContentType: asset.ContentType,
		ContentID:   LogoContentID,
		Data:        asset.Data,
	}}
}

// dispatch sends the owner notification, then the acknowledgment. It stops
// at the first failure. Request cancellation is ignored; DispatchTimeout
// bounds both sends together.
func (s *Service) dispatch(ctx context.Context, sub Submission, owner, ack RenderedEmail) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.DispatchTimeout)
	defer cancel()

	attachments := s.loadLogo(ctx)
	start := time.Now()

	err := s.sender.SendEmail(ctx, email.SendEmailParams{
		SendTo:      s.cfg.OwnerEmail,
		ReplyTo:     sub.Email,
		Subject:     owner.Subject,
		BodyHTML:    owner.HTML,
		BodyText:    owner.Text,
		Tag:         TagOwner,
		Attachments: attachments,
	})
	if err != nil {
		s.log.ErrorContext(ctx, "contact owner email failed",
			logger.Component("contact"),
			logger.Event("dispatch_failed"),
			logger.Error(err),
			slog.Bool("owner_sent", false),
		)
		return errors.Join(ErrDispatch, fmt.Errorf("owner email: %w", err))
	}

	err = s.sender.SendEmail(ctx, email.SendEmailParams{
		SendTo:      sub.Email,
		Subject:     ack.Subject,
		BodyHTML:    ack.HTML,
		BodyText:    ack.Text,
		Tag:         TagAck,
		Attachments: attachments,
	})
	if err != nil {
		s.log.ErrorContext(ctx, "contact acknowledgment email failed",
			logger.Component("contact"),
			logger.Event("dispatch_failed"),
			logger.Error(err),
			slog.Bool("owner_sent", true),
			slog.String("recipient", sanitizer.MaskEmail(sub.Email)),
		)
		return errors.Join(ErrDispatch, fmt.Errorf("acknowledgment email: %w", err))
	}

	s.log.InfoContext(ctx, "contact emails sent",
		logger.Component("contact"),
		logger.Event("dispatched"),
		logger.Duration(time.Since(start)),
		slog.Bool("logo", len(attachments) > 0),
	)
	return nil
}
