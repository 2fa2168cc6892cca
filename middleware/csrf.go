package middleware

import (
	"net/http"

	"price_tag_app_go/config"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

const (
	// CSRFHeader carries the token on HTMX requests
	CSRFHeader = "X-CSRF-Token"
	// CSRFCookieName holds the token between requests
	CSRFCookieName = "_csrf"
	csrfContextKey = "csrf"
)

// CSRF protects the state-changing editor endpoints. HTMX sends the token as
// a header; plain forms may post it as _csrf.
func CSRF(cfg *config.Config) echo.MiddlewareFunc {
	secure := cfg != nil && cfg.IsProduction()
	return echomiddleware.CSRFWithConfig(echomiddleware.CSRFConfig{
		TokenLookup:    "header:" + CSRFHeader + ",form:_csrf",
		ContextKey:     csrfContextKey,
		CookieName:     CSRFCookieName,
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSecure:   secure,
		CookieSameSite: http.SameSiteLaxMode,
	})
}

// GetCSRFToken retrieves the CSRF token from the Echo context
// This token should be included in forms and AJAX requests
func GetCSRFToken(c echo.Context) string {
	token := c.Get(csrfContextKey)
	if token == nil {
		return ""
	}
	if tokenStr, ok := token.(string); ok {
		return tokenStr
	}
	return ""
}
