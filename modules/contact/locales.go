package contact

import (
	"context"
	"embed"
	"log/slog"

	"github.com/tboywixxy/yorkshire-global/handler"
	"github.com/tboywixxy/yorkshire-global/pkg/i18n"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// NewTranslator loads the bundled en, fr, de and zh messages.
func NewTranslator(log *slog.Logger) (*i18n.Translator, error) {
	translations, err := i18n.LoadFS(localeFS, "locales")
	if err != nil {
		return nil, err
	}
	return i18n.NewTranslator(translations, i18n.WithLogger(log))
}

// Translator adapts t to handler.Translator using the request locale.
// Keys missing in that locale keep the fallback text.
func Translator(t *i18n.Translator) handler.Translator {
	return func(ctx context.Context, key, fallback string) string {
		lang := i18n.GetLocale(ctx)
		if t == nil || !t.Has(lang, key) {
			return fallback
		}
		return t.T(lang, key)
	}
}

// NewErrorHandler renders contact errors as localized JSON.
func NewErrorHandler(log *slog.Logger, t *i18n.Translator) handler.ErrorHandler[handler.Context] {
	return handler.NewErrorHandler(log,
		handler.WithClassifier(ClassifyError),
		handler.WithTranslator(Translator(t)),
	)
}
