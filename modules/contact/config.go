package contact

import (
	"errors"
	"fmt"
	"time"

	"github.com/tboywixxy/yorkshire-global/pkg/validator"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("contact: invalid configuration")

// Config configures the contact Service. OwnerEmail falls back to the mail
// sender address when empty; the caller resolves that at startup.
type Config struct {
	OwnerEmail      string        `env:"CONTACT_OWNER_EMAIL"`
	CaptchaEnabled  bool          `env:"CONTACT_CAPTCHA_ENABLED" envDefault:"true"`
	MinElapsed      time.Duration `env:"CONTACT_MIN_ELAPSED" envDefault:"3s"`
	LogoPath        string        `env:"CONTACT_LOGO_PATH" envDefault:"email/yorkshire-logo.png"`
	DispatchTimeout time.Duration `env:"CONTACT_DISPATCH_TIMEOUT" envDefault:"45s"`
}

// DefaultConfig matches the env defaults.
func DefaultConfig() Config {
	return Config{
		CaptchaEnabled:  true,
		MinElapsed:      DefaultMinElapsed,
		LogoPath:        DefaultLogoPath,
		DispatchTimeout: 45 * time.Second,
	}
}

// Validate implements config.Validator.
func (c Config) Validate() error {
	if c.OwnerEmail != "" && !validator.IsEmail(c.OwnerEmail) {
		return fmt.Errorf("%w: CONTACT_OWNER_EMAIL must be a valid email address", ErrInvalidConfig)
	}
	if c.MinElapsed != 0 && c.MinElapsed < DefaultMinElapsed {
		return fmt.Errorf("%w: CONTACT_MIN_ELAPSED must be at least %s", ErrInvalidConfig, DefaultMinElapsed)
	}
	if c.DispatchTimeout <= 0 {
		return fmt.Errorf("%w: CONTACT_DISPATCH_TIMEOUT must be positive", ErrInvalidConfig)
	}
	return nil
}
