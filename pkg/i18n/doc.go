// Package i18n loads YAML translations and negotiates a request language.
//
// Translation files are keyed by language at the top level and nested by
// dot-separated keys:
//
//	fr:
//	  errors:
//	    blocked: "Envoi bloqué."
//
// LoadFS merges all YAML files in a directory (usually an embed.FS) and
// NewTranslator wraps the result. T falls back to the default language and
// finally to the key, substituting %{name} placeholders:
//
//	tr.T("fr", "errors.fullNameMax", "max", "80")
//
// Middleware picks the first supported preference from the lang query
// parameter, the NEXT_LOCALE cookie and Accept-Language (matched with
// golang.org/x/text/language), and stores it with SetLocale. Handlers read
// it back with GetLocale.
package i18n
