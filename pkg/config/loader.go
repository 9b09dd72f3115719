package config

import (
	"errors"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Validator is implemented by config structs that check their own invariants.
// Load and Parse call it after the environment has been decoded.
type Validator interface {
	Validate() error
}

type cacheEntry struct {
	once  sync.Once
	value any
	err   error
}

var (
	cache            sync.Map // reflect.Type -> *cacheEntry
	defaultEnvLoaded sync.Once
)

// LoadEnv loads the given .env files into the process environment without
// overriding variables that are already set. With no arguments it loads
// ./.env and ignores a missing file.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		defaultEnvLoaded.Do(func() { _ = godotenv.Load() })
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load populates v from the environment once per config type and returns
// the cached copy on later calls, including a cached failure.
//
//	type SMTPConfig struct {
//		Host string `env:"SMTP_HOST" envDefault:"smtp.zoho.com"`
//		Port int    `env:"SMTP_PORT" envDefault:"465"`
//		User string `env:"SMTP_USER,required"`
//	}
//
//	var cfg SMTPConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	_ = LoadEnv()

	key := reflect.TypeFor[T]()
	raw, _ := cache.LoadOrStore(key, &cacheEntry{})
	entry := raw.(*cacheEntry)

	entry.once.Do(func() {
		var fresh T
		if err := Parse(&fresh, nil); err != nil {
			entry.err = err
			return
		}
		entry.value = fresh
	})

	if entry.err != nil {
		return entry.err
	}
	*v = entry.value.(T)
	return nil
}

// Parse decodes v without caching. A non-nil environ replaces the process
// environment, which keeps tests hermetic.
func Parse[T any](v *T, environ map[string]string) error {
	if v == nil {
		return ErrNilPointer
	}

	opts := env.Options{}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(v, opts); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	if val, ok := any(v).(Validator); ok {
		if err := val.Validate(); err != nil {
			return errors.Join(ErrInvalidConfig, err)
		}
	}
	return nil
}
