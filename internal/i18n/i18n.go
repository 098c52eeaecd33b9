// Package i18n holds the UI message catalogs and picks the language to
// show: the stored choice when it is supported, otherwise the best match
// for the device locale, otherwise English.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Fallback is used for keys missing from a catalog and for unsupported
// locales.
const Fallback = "en"

// Supported lists the language codes with a catalog, fallback first.
var Supported = []string{"en", "dv", "hi", "ta", "ml", "bn", "si"}

// Names are the language names shown in the selector, in their own script.
var Names = map[string]string{
	"en": "English",
	"dv": "ދިވެހި",
	"hi": "हिन्दी",
	"ta": "தமிழ்",
	"ml": "മലയാളം",
	"bn": "বাংলা",
	"si": "සිංහල",
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(Supported))
	for i, code := range Supported {
		tags[i] = language.MustParse(code)
	}
	return language.NewMatcher(tags)
}()

// IsSupported reports whether code has a catalog.
func IsSupported(code string) bool {
	_, ok := catalogs[code]
	return ok
}

// Match maps a device locale such as "ta_IN.UTF-8" or "hi-IN" to a
// supported code.
func Match(locale string) string {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	locale = strings.ReplaceAll(locale, "_", "-")
	if locale == "" || locale == "C" || locale == "POSIX" {
		return Fallback
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return Fallback
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Fallback
	}
	return Supported[idx]
}

// Resolve picks the language to use from the stored choice and the device
// locale.
func Resolve(stored, deviceLocale string) string {
	if IsSupported(stored) {
		return stored
	}
	return Match(deviceLocale)
}

// EnvLocale reads the locale from the usual POSIX variables.
func EnvLocale(getenv func(string) string) string {
	for _, k := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := getenv(k); v != "" {
			return v
		}
	}
	return ""
}

// T returns the message for key in lang, falling back to English and then
// to the key itself. Args are applied with fmt.Sprintf.
func T(lang, key string, args ...any) string {
	msg, ok := catalogs[lang][key]
	if !ok {
		msg, ok = catalogs[Fallback][key]
	}
	if !ok {
		return key
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// Keys returns the keys of the English catalog.
func Keys() []string {
	keys := make([]string, 0, len(catalogs[Fallback]))
	for k := range catalogs[Fallback] {
		keys = append(keys, k)
	}
	return keys
}

var catalogs = map[string]map[string]string{
	"en": en,
	"dv": dv,
	"hi": hi,
	"ta": ta,
	"ml": ml,
	"bn": bn,
	"si": si,
}
