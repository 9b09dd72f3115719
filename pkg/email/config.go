package email

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/tboywixxy/yorkshire-global/pkg/validator"
)

// Providers selectable with MAIL_PROVIDER.
const (
	ProviderSMTP     = "smtp"
	ProviderPostmark = "postmark"
	ProviderDev      = "dev"
)

// SMTP TLS modes.
const (
	TLSModeImplicit = "tls"
	TLSModeStartTLS = "starttls"
	TLSModePlain    = "plain"
)

// SMTPConfig configures SMTPSender. SenderEmail falls back to Username.
type SMTPConfig struct {
	Host        string        `env:"SMTP_HOST" envDefault:"smtp.zoho.com"`
	Port        int           `env:"SMTP_PORT" envDefault:"465"`
	Username    string        `env:"SMTP_USER"`
	Password    string        `env:"SMTP_PASS"`
	TLSMode     string        `env:"SMTP_TLS_MODE" envDefault:"tls"`
	Timeout     time.Duration `env:"SMTP_TIMEOUT" envDefault:"15s"`
	SenderName  string        `env:"SMTP_SENDER_NAME" envDefault:"Yorkshire Global"`
	SenderEmail string        `env:"SMTP_SENDER_EMAIL"`
}

// From returns the envelope sender address.
func (c SMTPConfig) From() string {
	if c.SenderEmail != "" {
		return c.SenderEmail
	}
	return c.Username
}

// Validate implements config.Validator.
func (c SMTPConfig) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("%w: SMTP_HOST is required", ErrInvalidConfig)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("%w: SMTP_PORT must be in 1..65535", ErrInvalidConfig)
	}
	if c.Username == "" || c.Password == "" {
		return fmt.Errorf("%w: SMTP_USER and SMTP_PASS are required", ErrInvalidConfig)
	}
	switch c.TLSMode {
	case TLSModeImplicit, TLSModeStartTLS, TLSModePlain:
	default:
		return fmt.Errorf("%w: unknown SMTP_TLS_MODE %q", ErrInvalidConfig, c.TLSMode)
	}
	if !validator.IsEmail(c.From()) {
		return fmt.Errorf("%w: sender must be a valid email address", ErrInvalidConfig)
	}
	return nil
}

// PostmarkConfig holds Postmark credentials.
type PostmarkConfig struct {
	ServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	AccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderName   string `env:"POSTMARK_SENDER_NAME" envDefault:"Yorkshire Global"`
	SenderEmail  string `env:"POSTMARK_SENDER_EMAIL"`
}

// Validate implements config.Validator.
func (c PostmarkConfig) Validate() error {
	if c.ServerToken == "" {
		return fmt.Errorf("%w: PostmarkServerToken is required", ErrInvalidConfig)
	}
	if c.AccountToken == "" {
		return fmt.Errorf("%w: PostmarkAccountToken is required", ErrInvalidConfig)
	}
	if c.SenderEmail == "" {
		return fmt.Errorf("%w: SenderEmail is required", ErrInvalidConfig)
	}
	if !validator.IsEmail(c.SenderEmail) {
		return fmt.Errorf("%w: SenderEmail must be a valid email address", ErrInvalidConfig)
	}
	return nil
}

// Config selects the provider and carries every provider's settings.
type Config struct {
	Provider string `env:"MAIL_PROVIDER" envDefault:"smtp"`
	DevDir   string `env:"MAIL_DEV_DIR" envDefault:"./tmp/mail"`
	SMTP     SMTPConfig
	Postmark PostmarkConfig
}

// Validate checks only the selected provider.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderSMTP:
		return c.SMTP.Validate()
	case ProviderPostmark:
		return c.Postmark.Validate()
	case ProviderDev:
		if c.DevDir == "" {
			return fmt.Errorf("%w: MAIL_DEV_DIR is required", ErrInvalidConfig)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown MAIL_PROVIDER %q", ErrInvalidConfig, c.Provider)
	}
}

// SenderAddress returns the From address of the selected provider.
func (c Config) SenderAddress() string {
	switch c.Provider {
	case ProviderPostmark:
		return c.Postmark.SenderEmail
	case ProviderSMTP:
		return c.SMTP.From()
	default:
		return ""
	}
}

// New builds the sender selected by cfg.Provider.
func New(cfg Config, log *slog.Logger) (EmailSender, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Provider {
	case ProviderPostmark:
		return NewPostmarkSender(cfg.Postmark)
	case ProviderDev:
		return NewDevSender(cfg.DevDir, WithDevLogger(log)), nil
	default:
		s, err := NewSMTPSender(cfg.SMTP)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}
