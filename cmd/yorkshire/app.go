package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/tboywixxy/yorkshire-global/modules/contact"
	"github.com/tboywixxy/yorkshire-global/pkg/clientip"
	"github.com/tboywixxy/yorkshire-global/pkg/config"
	"github.com/tboywixxy/yorkshire-global/pkg/email"
	"github.com/tboywixxy/yorkshire-global/pkg/file"
	"github.com/tboywixxy/yorkshire-global/pkg/httpserver"
	"github.com/tboywixxy/yorkshire-global/pkg/logger"
	"github.com/tboywixxy/yorkshire-global/pkg/requestid"
	"github.com/tboywixxy/yorkshire-global/pkg/turnstile"
)

// AppConfig identifies the deployment.
type AppConfig struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"yorkshire"`
}

// serveConfig is everything serve needs, loaded and checked before anything
// starts.
type serveConfig struct {
	App       AppConfig
	Log       logger.Config
	HTTP      httpserver.Config
	Mail      email.Config
	Turnstile turnstile.Config
	Assets    file.Config
	Contact   contact.Config
}

func loadServeConfig() (serveConfig, error) {
	var cfg serveConfig
	err := errors.Join(
		config.Load(&cfg.App),
		config.Load(&cfg.Log),
		config.Load(&cfg.HTTP),
		config.Load(&cfg.Mail),
		config.Load(&cfg.Turnstile),
		config.Load(&cfg.Assets),
		config.Load(&cfg.Contact),
	)
	if err != nil {
		return serveConfig{}, err
	}
	return cfg, cfg.Validate()
}

// Validate checks every section. Turnstile is only checked when CAPTCHA is
// enabled. An empty owner address takes the mail sender address.
func (c *serveConfig) Validate() error {
	if c.Contact.OwnerEmail == "" {
		c.Contact.OwnerEmail = c.Mail.SenderAddress()
	}

	errs := []error{
		c.Mail.Validate(),
		c.Assets.Validate(),
		c.Contact.Validate(),
	}
	if c.Contact.CaptchaEnabled {
		errs = append(errs, c.Turnstile.Validate())
	}
	if c.Contact.OwnerEmail == "" {
		errs = append(errs, fmt.Errorf("%w: CONTACT_OWNER_EMAIL is required with MAIL_PROVIDER=%s",
			contact.ErrInvalidConfig, c.Mail.Provider))
	}
	return errors.Join(errs...)
}

// newLogger builds the process logger with request id and client IP on
// every record.
func newLogger(app AppConfig, cfg logger.Config, out io.Writer, command string) (*slog.Logger, io.Closer, error) {
	return logger.Setup(cfg, app.Env, app.ServiceName,
		logger.WithOutput(out),
		logger.WithAttr(slog.String("command", command)),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
		),
	)
}

// logoCheck reports whether the logo can be read from the asset store.
func logoCheck(assets file.Reader, logoPath string) httpserver.Check {
	return httpserver.Check{
		Name: "assets",
		Fn: func(ctx context.Context) error {
			if !assets.Exists(ctx, logoPath) {
				return fmt.Errorf("%w: %s", file.ErrFileNotFound, logoPath)
			}
			return nil
		},
	}
}
