package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/tboywixxy/yorkshire-global/binder"
	"github.com/tboywixxy/yorkshire-global/pkg/logger"
	"github.com/tboywixxy/yorkshire-global/pkg/validator"
)

// Classifier maps a domain error to an HTTPError. It reports false when it
// does not recognise err.
type Classifier func(err error) (HTTPError, bool)

// Translator returns the localized text for key, or fallback when there is none.
type Translator func(ctx context.Context, key, fallback string) string

type errorHandlerConfig struct {
	classifiers []Classifier
	translate   Translator
}

// ErrorHandlerOption configures NewErrorHandler.
type ErrorHandlerOption func(*errorHandlerConfig)

// WithClassifier adds a domain classifier. Classifiers run in order before
// the built-in rules.
func WithClassifier(c Classifier) ErrorHandlerOption {
	return func(cfg *errorHandlerConfig) {
		if c != nil {
			cfg.classifiers = append(cfg.classifiers, c)
		}
	}
}

// WithTranslator localizes public messages by HTTPError.Key.
func WithTranslator(t Translator) ErrorHandlerOption {
	return func(cfg *errorHandlerConfig) {
		if t != nil {
			cfg.translate = t
		}
	}
}

// NewErrorHandler creates an ErrorHandler that logs the error and writes an
// ErrorBody. Client errors are logged at warn level, server errors at error
// level. Only the HTTPError public message is rendered.
func NewErrorHandler(log *slog.Logger, opts ...ErrorHandlerOption) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	cfg := &errorHandlerConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(ctx Context, err error) {
		httpErr := classifyError(err, cfg.classifiers)
		if cfg.translate != nil && httpErr.Key != "" {
			httpErr.Message = cfg.translate(ctx, httpErr.Key, httpErr.PublicMessage())
		}

		r := ctx.Request()
		level := slog.LevelError
		if httpErr.Code < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		log.LogAttrs(ctx, level, "request error",
			logger.Error(err),
			slog.Int("status_code", httpErr.Code),
			slog.String("error_code", httpErr.Key),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		if renderErr := JSONError(httpErr).Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.LogAttrs(ctx, slog.LevelError, "failed to render error response",
				logger.Error(renderErr),
				logger.Component("error_handler"),
			)
		}
	}
}

func classifyError(err error, classifiers []Classifier) HTTPError {
	for _, c := range classifiers {
		if httpErr, ok := c(err); ok {
			return httpErr
		}
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	switch {
	case errors.Is(err, binder.ErrBodyTooLarge):
		return ErrRequestEntityTooLarge.WithCause(err)
	case errors.Is(err, binder.ErrMissingContentType), errors.Is(err, binder.ErrUnsupportedMediaType):
		return ErrUnsupportedMediaType.WithCause(err)
	case errors.Is(err, binder.ErrInvalidJSON), errors.Is(err, binder.ErrEmptyBody):
		return ErrBadRequest.WithCause(err)
	}

	if validator.IsValidationError(err) {
		return HTTPError{
			Code:    http.StatusBadRequest,
			Key:     "validation_failed",
			Message: "Validation failed.",
			Details: ValidationDetails(validator.ExtractValidationErrors(err)),
			Err:     err,
		}
	}

	return ErrInternalServerError.WithCause(err)
}

// ValidationDetails maps each invalid field to its error keys. The key is the
// rule's translation key, or its message when the rule has none.
func ValidationDetails(verrs validator.ValidationErrors) map[string][]string {
	if len(verrs) == 0 {
		return nil
	}
	details := make(map[string][]string, len(verrs))
	for _, e := range verrs {
		code := e.TranslationKey
		if code == "" {
			code = e.Message
		}
		details[e.Field] = append(details[e.Field], code)
	}
	return details
}
