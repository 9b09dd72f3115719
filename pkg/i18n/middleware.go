package i18n

import (
	"net/http"
	"strings"
)

// Accept-Language values above this size are ignored.
const maxPreferenceLength = 4096

// LangExtractor returns raw language preferences from a request, most
// preferred first.
type LangExtractor func(r *http.Request) []string

type extractorConfig struct {
	queryParam string
	cookieName string
}

// ExtractorOption configures DefaultLangExtractor.
type ExtractorOption func(*extractorConfig)

// WithQueryParamName overrides the query parameter name ("lang").
func WithQueryParamName(name string) ExtractorOption {
	return func(c *extractorConfig) { c.queryParam = name }
}

// WithCookieName overrides the cookie name ("NEXT_LOCALE").
func WithCookieName(name string) ExtractorOption {
	return func(c *extractorConfig) { c.cookieName = name }
}

// DefaultLangExtractor checks the query parameter, then the locale cookie,
// then Accept-Language.
func DefaultLangExtractor(opts ...ExtractorOption) LangExtractor {
	cfg := extractorConfig{queryParam: "lang", cookieName: "NEXT_LOCALE"}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(r *http.Request) []string {
		var prefs []string
		if cfg.queryParam != "" {
			if v := strings.TrimSpace(r.URL.Query().Get(cfg.queryParam)); v != "" {
				prefs = append(prefs, v)
			}
		}
		if cfg.cookieName != "" {
			if c, err := r.Cookie(cfg.cookieName); err == nil && strings.TrimSpace(c.Value) != "" {
				prefs = append(prefs, strings.TrimSpace(c.Value))
			}
		}
		if v := r.Header.Get("Accept-Language"); v != "" {
			prefs = append(prefs, v)
		}
		return prefs
	}
}

// Middleware negotiates the request language against t and stores it in
// the request context.
func Middleware(t *Translator, extr LangExtractor) func(http.Handler) http.Handler {
	if extr == nil {
		extr = DefaultLangExtractor()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := t.DefaultLanguage()
			for _, p := range extr(r) {
				if m, ok := t.MatchOK(p); ok {
					lang = m
					break
				}
			}
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}
