package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tboywixxy/yorkshire-global/pkg/clientip"
	"github.com/tboywixxy/yorkshire-global/pkg/email"
	"github.com/tboywixxy/yorkshire-global/pkg/file"
	"github.com/tboywixxy/yorkshire-global/pkg/logger"
	"github.com/tboywixxy/yorkshire-global/pkg/sanitizer"
	"github.com/tboywixxy/yorkshire-global/pkg/turnstile"
	"github.com/tboywixxy/yorkshire-global/pkg/validator"
)

// Verifier checks a CAPTCHA token. *turnstile.Verifier implements it.
type Verifier interface {
	Verify(ctx context.Context, token, remoteIP string) (*turnstile.Response, error)
}

// Service runs a submission through verification, heuristics, validation,
// rendering and dispatch.
type Service struct {
	cfg      Config
	sender   email.EmailSender
	verifier Verifier
	assets   file.Reader
	guard    *Guard
	log      *slog.Logger
	now      func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithVerifier sets the CAPTCHA verifier.
func WithVerifier(v Verifier) Option {
	return func(s *Service) {
		s.verifier = v
	}
}

// WithAssets sets the store the logo is read from.
func WithAssets(r file.Reader) Option {
	return func(s *Service) {
		s.assets = r
	}
}

// WithLogger sets the logger. A nil logger keeps the discard default.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock replaces time.Now for the speed gate and the footer year.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates a Service. A nil sender is accepted; Submit then fails
// closed with ErrNotConfigured.
func NewService(cfg Config, sender email.EmailSender, opts ...Option) *Service {
	s := &Service{
		cfg:    cfg,
		sender: sender,
		log:    slog.New(slog.DiscardHandler),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.cfg.DispatchTimeout <= 0 {
		s.cfg.DispatchTimeout = DefaultConfig().DispatchTimeout
	}
	s.guard = NewGuard(s.cfg.MinElapsed, s.now)
	return s
}

// Submit processes one submission and returns nil once both emails are sent.
// Errors wrap one of the package sentinels.
func (s *Service) Submit(ctx context.Context, sub Submission) error {
	sub = sub.Trimmed()

	if err := s.verify(ctx, sub.TurnstileToken); err != nil {
		return err
	}

	if err := s.guard.Check(sub); err != nil {
		s.log.InfoContext(ctx, "contact submission blocked",
			logger.Component("contact"),
			logger.Event("blocked"),
			logger.Error(err),
		)
		return err
	}

	if missing := MissingFields(sub); len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}

	if verrs := ValidateFields(sub); verrs != nil {
		return errors.Join(ErrValidation, verrs)
	}
	if err := email.CheckAddress(sub.Email); err != nil {
		return errors.Join(ErrValidation, validator.ValidationErrors{undeliverableEmail()})
	}

	if s.sender == nil || s.cfg.OwnerEmail == "" {
		s.log.ErrorContext(ctx, "contact email delivery is not configured",
			logger.Component("contact"),
			slog.Bool("sender", s.sender != nil),
			slog.Bool("owner_email", s.cfg.OwnerEmail != ""),
		)
		return fmt.Errorf("%w: email delivery", ErrNotConfigured)
	}

	year := s.now().Year()
	owner, err := RenderOwnerEmail(sub, year)
	if err != nil {
		return errors.Join(ErrDispatch, err)
	}
	ack, err := RenderAckEmail(sub, year)
	if err != nil {
		return errors.Join(ErrDispatch, err)
	}

	s.log.InfoContext(ctx, "contact submission accepted",
		logger.Component("contact"),
		logger.Event("accepted"),
		logger.Group("submission",
			slog.String("email", sanitizer.MaskEmail(sub.Email)),
			slog.String("service", sub.Service),
		),
	)

	return s.dispatch(ctx, sub, owner, ack)
}

func (s *Service) verify(ctx context.Context, token string) error {
	if !s.cfg.CaptchaEnabled {
		return nil
	}
	if token == "" {
		return ErrVerificationRequired
	}
	if s.verifier == nil {
		s.log.ErrorContext(ctx, "captcha is enabled but no verifier is configured",
			logger.Component("contact"),
		)
		return fmt.Errorf("%w: captcha verifier", ErrNotConfigured)
	}

	_, err := s.verifier.Verify(ctx, token, clientip.FromContext(ctx))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, turnstile.ErrMissingToken):
		return errors.Join(ErrVerificationRequired, err)
	default:
		s.log.InfoContext(ctx, "captcha verification failed",
			logger.Component("contact"),
			logger.Event("verification_failed"),
			logger.Error(err),
		)
		return errors.Join(ErrVerificationFailed, err)
	}
}
