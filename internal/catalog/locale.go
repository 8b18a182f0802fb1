// Package catalog defines the classification questionnaire: the static
// bilingual question list, answer folding, conditional visibility, progress,
// and the minimum-answer gate for classification.
package catalog

// Locale identifies a supported questionnaire language.
type Locale string

// Supported locales. Spanish is the regulatory source language and the default.
const (
	LocaleES Locale = "es"
	LocaleEN Locale = "en"
)

// DefaultLocale is used whenever a locale is omitted or unrecognized.
const DefaultLocale = LocaleES

var locales = []Locale{LocaleES, LocaleEN}

// Locales returns the list of supported locales.
func Locales() []Locale {
	return locales
}

// ParseLocale normalizes a locale string, falling back to DefaultLocale for
// unsupported values. Lookups never fail; unexpected input must not break rendering.
func ParseLocale(s string) Locale {
	for _, loc := range locales {
		if string(loc) == s {
			return loc
		}
	}
	return DefaultLocale
}

// Text holds locale-indexed strings. Every Text in the catalog carries a
// DefaultLocale entry.
type Text map[Locale]string

// In returns the string for the given locale, falling back to DefaultLocale.
func (t Text) In(loc Locale) string {
	if s, ok := t[loc]; ok {
		return s
	}
	return t[DefaultLocale]
}
