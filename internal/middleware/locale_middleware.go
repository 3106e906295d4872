package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const LocaleKey = "locale"

// LocaleMiddleware resolves the locale for the request: the ?locale=
// query parameter wins, then the first Accept-Language tag, then the
// configured default. The resolved value is a plain tag like "es" or
// "en-US"; translation fallback happens later at render time.
func LocaleMiddleware(defaultLocale string) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := c.Query("locale")
		if locale == "" {
			locale = firstAcceptLanguage(c.GetHeader("Accept-Language"))
		}
		if locale == "" || len(locale) > 5 {
			locale = defaultLocale
		}
		c.Set(LocaleKey, locale)
		c.Next()
	}
}

// firstAcceptLanguage returns the first language tag of an
// Accept-Language header, stripped of quality weights.
func firstAcceptLanguage(header string) string {
	if header == "" {
		return ""
	}
	first := header
	if idx := strings.Index(first, ","); idx >= 0 {
		first = first[:idx]
	}
	if idx := strings.Index(first, ";"); idx >= 0 {
		first = first[:idx]
	}
	return strings.TrimSpace(first)
}

// GetLocaleFromContext retrieves the resolved locale, defaulting to "es"
// when the middleware did not run (direct handler tests).
func GetLocaleFromContext(c *gin.Context) string {
	if locale, exists := c.Get(LocaleKey); exists {
		if l, ok := locale.(string); ok && l != "" {
			return l
		}
	}
	return "es"
}
