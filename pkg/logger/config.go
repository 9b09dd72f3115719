package logger

import (
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config is the environment driven logger configuration.
type Config struct {
	Level      string `env:"LOG_LEVEL"`
	Format     string `env:"LOG_FORMAT"`
	File       string `env:"LOG_FILE"`
	MaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" envDefault:"50"`
	MaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"5"`
	MaxAgeDays int    `env:"LOG_MAX_AGE_DAYS" envDefault:"28"`
	Compress   bool   `env:"LOG_COMPRESS" envDefault:"true"`
}

// Options translates cfg into factory options. Level and Format override the
// environment defaults only when set. When File is set, records are also
// written to a size-rotated file and the returned closer flushes it.
func (cfg Config) Options() ([]Option, io.Closer, error) {
	var opts []Option

	if cfg.Level != "" {
		lvl, err := ParseLevel(cfg.Level)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, WithLevel(lvl))
	}
	switch f := Format(cfg.Format); f {
	case "":
	case FormatJSON, FormatText:
		opts = append(opts, WithFormat(f))
	default:
		return nil, nil, fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText)
	}

	closer := io.Closer(nopCloser{})
	if cfg.File != "" {
		rotating := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		}
		opts = append(opts, WithAdditionalOutput(rotating))
		closer = rotating
	}

	return opts, closer, nil
}

// Setup builds the process logger: environment defaults first, then cfg.
func Setup(cfg Config, env, service string, extra ...Option) (*slog.Logger, io.Closer, error) {
	opts, closer, err := cfg.Options()
	if err != nil {
		return nil, nil, err
	}
	all := append([]Option{WithEnvironment(env, service)}, opts...)
	all = append(all, extra...)
	return New(all...), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

