package middleware

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"net/url"
	"strings"

	"price_tag_app_go/config"

	"github.com/labstack/echo/v4"
)

type contextKey string

const NonceKey contextKey = "csp_nonce"

// htmxOrigin serves the htmx script loaded by every page
const htmxOrigin = "https://unpkg.com"

// ContentPolicy lists the origins the editor loads from besides itself
type ContentPolicy struct {
	ScriptOrigins []string
	ImageOrigins  []string
}

// PolicyFor allows the htmx CDN plus wherever the tag background may come
// from: the configured URL while its embed is pending or has failed, and the
// public asset bucket that asset:// references fall back to.
func PolicyFor(cfg *config.Config) ContentPolicy {
	policy := ContentPolicy{ScriptOrigins: []string{htmxOrigin}}
	if cfg == nil {
		return policy
	}
	for _, ref := range []string{cfg.BackgroundURL, cfg.R2PublicURL} {
		if origin := originOf(ref); origin != "" && !contains(policy.ImageOrigins, origin) {
			policy.ImageOrigins = append(policy.ImageOrigins, origin)
		}
	}
	return policy
}

// Header renders the Content-Security-Policy value for one nonce. Tag frames
// and the page carry inline transforms, so styles keep 'unsafe-inline'.
func (p ContentPolicy) Header(nonce string) string {
	script := append([]string{"'self'", "'nonce-" + nonce + "'"}, p.ScriptOrigins...)
	img := append([]string{"'self'", "data:"}, p.ImageOrigins...)

	directives := []string{
		"default-src 'self'",
		"script-src " + strings.Join(script, " "),
		"style-src 'self' 'unsafe-inline'",
		"img-src " + strings.Join(img, " "),
		"font-src 'self'",
		"connect-src 'self'",
	}
	return strings.Join(directives, "; ")
}

// GenerateNonce creates a random nonce string
func GenerateNonce() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

// CSPNonce generates a nonce per request, exposes it to handlers and templ
// components and sets the policy header
func CSPNonce(policy ContentPolicy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			nonce, err := GenerateNonce()
			if err != nil {
				c.Logger().Errorf("Failed to generate nonce: %v", err)
				nonce = "fallback-nonce-value"
			}

			c.Set(string(NonceKey), nonce)
			ctx := context.WithValue(c.Request().Context(), NonceKey, nonce)
			c.SetRequest(c.Request().WithContext(ctx))

			c.Response().Header().Set("Content-Security-Policy", policy.Header(nonce))

			return next(c)
		}
	}
}

// GetNonce retrieves the nonce from the context
func GetNonce(ctx context.Context) string {
	if val, ok := ctx.Value(NonceKey).(string); ok {
		return val
	}
	return ""
}

func originOf(ref string) string {
	u, err := url.Parse(ref)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
