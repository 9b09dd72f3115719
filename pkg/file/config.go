package file

import (
	"context"
	"fmt"
)

// Storage backends.
const (
	BackendLocal = "local"
	BackendS3    = "s3"
)

// LocalConfig configures LocalStorage.
type LocalConfig struct {
	Dir string `env:"ASSET_DIR" envDefault:"./public"`
}

// S3Config configures S3Storage.
type S3Config struct {
	Bucket         string `env:"S3_BUCKET"`
	Region         string `env:"S3_REGION"`
	AccessKeyID    string `env:"S3_ACCESS_KEY_ID"`
	SecretKey      string `env:"S3_SECRET_KEY"`
	Endpoint       string `env:"S3_ENDPOINT"`
	Prefix         string `env:"S3_PREFIX"`
	ForcePathStyle bool   `env:"S3_FORCE_PATH_STYLE" envDefault:"false"`
}

// Config selects and configures the asset backend.
type Config struct {
	Backend string `env:"ASSET_STORAGE" envDefault:"local"`
	Local   LocalConfig
	S3      S3Config
}

// Validate implements config.Validator.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendLocal:
		if c.Local.Dir == "" {
			return fmt.Errorf("%w: ASSET_DIR is required", ErrInvalidConfig)
		}
	case BackendS3:
		if c.S3.Bucket == "" || c.S3.Region == "" {
			return fmt.Errorf("%w: S3_BUCKET and S3_REGION are required", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown ASSET_STORAGE %q", ErrInvalidConfig, c.Backend)
	}
	return nil
}

// New builds the Reader selected by cfg.
func New(ctx context.Context, cfg Config, s3opts ...S3Option) (Reader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Backend == BackendS3 {
		s, err := NewS3Storage(ctx, cfg.S3, s3opts...)
		if err != nil {
			return nil, err
		}
		return s, nil
	}

	s, err := NewLocalStorage(cfg.Local.Dir)
	if err != nil {
		return nil, err
	}
	return s, nil
}
