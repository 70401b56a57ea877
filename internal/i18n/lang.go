package i18n

import (
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Lang is a site language code.
type Lang string

const (
	EN Lang = "en"
	UZ Lang = "uz"
	RU Lang = "ru"
	DE Lang = "de"
)

// DefaultLang is used when nothing better is known about the reader.
const DefaultLang = EN

var supported = []Lang{EN, UZ, RU, DE}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Uzbek,
	language.Russian,
	language.German,
})

// Supported returns the site languages in display order.
func Supported() []Lang {
	out := make([]Lang, len(supported))
	copy(out, supported)
	return out
}

// Text maps a language to its rendering of one piece of content.
type Text map[Lang]string

// Localize returns the best available string for lang.
// Order: lang, fallback (en when omitted), any non-empty value, "".
func Localize(text Text, lang Lang, fallback ...Lang) string {
	if len(text) == 0 {
		return ""
	}

	if v := text[lang]; v != "" {
		return v
	}

	fb := DefaultLang
	if len(fallback) > 0 && fallback[0] != "" {
		fb = fallback[0]
	}
	if v := text[fb]; v != "" {
		return v
	}

	for _, l := range supported {
		if v := text[l]; v != "" {
			return v
		}
	}

	// Keys outside the supported set, in a stable order.
	var extra []string
	for l, v := range text {
		if v != "" {
			extra = append(extra, string(l))
		}
	}
	if len(extra) == 0 {
		return ""
	}
	sort.Strings(extra)
	return text[Lang(extra[0])]
}

// ParseLang normalizes a raw code such as "RU" or "ru-RU".
func ParseLang(raw string) (Lang, bool) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return DefaultLang, false
	}
	if i := strings.IndexAny(raw, "-_"); i > 0 {
		raw = raw[:i]
	}
	for _, l := range supported {
		if string(l) == raw {
			return l, true
		}
	}
	return DefaultLang, false
}

// Match picks the closest site language for an Accept-Language header.
func Match(acceptLanguage string) Lang {
	if strings.TrimSpace(acceptLanguage) == "" {
		return DefaultLang
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLang
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return DefaultLang
	}
	return supported[idx]
}
