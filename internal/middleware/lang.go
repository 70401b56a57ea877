package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/pharmasite/internal/i18n"
)

const (
	langContextKey = "lang"
	// LangParam is the query parameter that selects a language.
	LangParam = "lang"
	// LangCookie remembers the visitor's choice.
	LangCookie = "site_lang"
)

// Language resolves the reader's language from the lang query param, the
// language cookie and Accept-Language, in that order.
func Language() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lang, ok := i18n.ParseLang(c.Query(LangParam))
		if ok {
			c.Cookie(&fiber.Cookie{
				Name:     LangCookie,
				Value:    string(lang),
				Path:     "/",
				MaxAge:   365 * 24 * 60 * 60,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		} else if lang, ok = i18n.ParseLang(c.Cookies(LangCookie)); !ok {
			lang = i18n.Match(c.Get(fiber.HeaderAcceptLanguage))
		}

		c.Locals(langContextKey, lang)
		return c.Next()
	}
}

// Lang returns the language chosen by Language, or the default.
func Lang(c *fiber.Ctx) i18n.Lang {
	if lang, ok := c.Locals(langContextKey).(i18n.Lang); ok {
		return lang
	}
	return i18n.DefaultLang
}
