package turnstile

import (
	"fmt"
	"net/url"
	"time"
)

// Config configures a Verifier.
type Config struct {
	SecretKey        string        `env:"TURNSTILE_SECRET_KEY"`
	VerifyURL        string        `env:"TURNSTILE_VERIFY_URL" envDefault:"https://challenges.cloudflare.com/turnstile/v0/siteverify"`
	Timeout          time.Duration `env:"TURNSTILE_TIMEOUT" envDefault:"10s"`
	ExpectedHostname string        `env:"TURNSTILE_EXPECTED_HOSTNAME"`
}

// Validate implements config.Validator.
func (c Config) Validate() error {
	if c.SecretKey == "" {
		return fmt.Errorf("%w: TURNSTILE_SECRET_KEY is required", ErrInvalidConfig)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: TURNSTILE_TIMEOUT must be positive", ErrInvalidConfig)
	}
	if c.VerifyURL != "" {
		u, err := url.Parse(c.VerifyURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: TURNSTILE_VERIFY_URL is not an absolute URL", ErrInvalidConfig)
		}
	}
	return nil
}
