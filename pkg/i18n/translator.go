package i18n

import (
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when nothing better can be negotiated.
const DefaultLanguage = "en"

// Translator resolves dot-separated keys to localized strings. It is
// immutable after construction and safe for concurrent use.
type Translator struct {
	translations map[string]map[string]any
	defaultLang  string
	langs        []string
	matcher      language.Matcher
	logger       *slog.Logger
}

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the fallback language.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = strings.ToLower(lang)
		}
	}
}

// WithLogger enables warnings for missing keys.
func WithLogger(l *slog.Logger) Option {
	return func(t *Translator) {
		if l != nil {
			t.logger = l
		}
	}
}

// NewTranslator builds a Translator over already loaded translations.
func NewTranslator(translations map[string]map[string]any, opts ...Option) (*Translator, error) {
	if len(translations) == 0 {
		return nil, ErrNoTranslations
	}

	t := &Translator{
		translations: translations,
		defaultLang:  DefaultLanguage,
		logger:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(t)
	}

	if _, ok := translations[t.defaultLang]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDefault, t.defaultLang)
	}

	// Default first so the matcher falls back to it.
	t.langs = append(t.langs, t.defaultLang)
	others := make([]string, 0, len(translations))
	for lang := range translations {
		if lang != t.defaultLang {
			others = append(others, lang)
		}
	}
	slices.Sort(others)
	t.langs = append(t.langs, others...)

	tags := make([]language.Tag, 0, len(t.langs))
	for _, lang := range t.langs {
		tags = append(tags, language.Make(lang))
	}
	t.matcher = language.NewMatcher(tags)

	return t, nil
}

// SupportedLanguages lists loaded languages, default first.
func (t *Translator) SupportedLanguages() []string {
	return slices.Clone(t.langs)
}

// DefaultLanguage returns the fallback language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Match negotiates the best supported language for the given preferences.
// Each preference may be a single tag or a full Accept-Language value.
func (t *Translator) Match(prefs ...string) string {
	lang, _ := t.MatchOK(prefs...)
	return lang
}

// MatchOK is like Match but reports whether any preference matched. When
// none did it returns the default language and false.
func (t *Translator) MatchOK(prefs ...string) (string, bool) {
	var tags []language.Tag
	for _, p := range prefs {
		p = strings.TrimSpace(p)
		if p == "" || len(p) > maxPreferenceLength {
			continue
		}
		parsed, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		tags = append(tags, parsed...)
	}
	if len(tags) == 0 {
		return t.defaultLang, false
	}

	_, idx, conf := t.matcher.Match(tags...)
	if conf == language.No {
		return t.defaultLang, false
	}
	return t.langs[idx], true
}

// Supports reports whether lang (or its base language) was loaded.
func (t *Translator) Supports(lang string) bool {
	_, ok := t.resolveLang(lang)
	return ok
}

// T translates key for lang, substituting %{name} placeholders from
// key/value pairs in args. Missing keys fall back to the default language,
// then to the key itself.
func (t *Translator) T(lang, key string, args ...string) string {
	if l, ok := t.resolveLang(lang); ok {
		if s, ok := t.lookup(l, key); ok {
			return substitute(s, args)
		}
	}

	if s, ok := t.lookup(t.defaultLang, key); ok {
		if lang != t.defaultLang {
			t.logger.Warn("translation not found, using default language", "lang", lang, "key", key)
		}
		return substitute(s, args)
	}

	t.logger.Warn("translation not found", "lang", lang, "key", key)
	return substitute(key, args)
}

// Has reports whether key exists for lang without fallback.
func (t *Translator) Has(lang, key string) bool {
	l, ok := t.resolveLang(lang)
	if !ok {
		return false
	}
	_, ok = t.lookup(l, key)
	return ok
}

func (t *Translator) resolveLang(lang string) (string, bool) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if _, ok := t.translations[lang]; ok {
		return lang, true
	}
	if base, _, ok := strings.Cut(lang, "-"); ok {
		if _, ok := t.translations[base]; ok {
			return base, true
		}
	}
	return "", false
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	current := t.translations[lang]
	parts := strings.Split(key, ".")
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			s, ok := val.(string)
			return s, ok
		}
		next, ok := val.(map[string]any)
		if !ok {
			return "", false
		}
		current = next
	}
	return "", false
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} with the value following name in args.
// Unknown placeholders are left untouched.
func substitute(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if v, ok := params[match[2:len(match)-1]]; ok {
			return v
		}
		return match
	})
}
