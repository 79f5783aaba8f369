package middleware

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	"najma_site_go/config"

	"github.com/labstack/echo/v4"
)

type contextKey string

const NonceKey contextKey = "csp_nonce"

// GenerateNonce creates a random nonce string
func GenerateNonce() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

// CSPNonce middleware generates a nonce for each request and adds it to the context.
// The policy lets native form posts reach the configured form endpoint and media load
// from the public asset host when one is set.
func CSPNonce(cfg *config.Config) echo.MiddlewareFunc {
	media := originOf(cfg.R2PublicURL)
	formAction := strings.TrimSpace("'self' " + originOf(cfg.FormEndpoint))

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			nonce, err := GenerateNonce()
			if err != nil {
				c.Logger().Errorf("Failed to generate nonce: %v", err)
				nonce = "fallback-nonce-value" // Should rarely happen, but prevents crash
			}

			// Add to Echo context (for handlers)
			c.Set(string(NonceKey), nonce)

			// Add to Request context (for rendering)
			ctx := context.WithValue(c.Request().Context(), NonceKey, nonce)
			c.SetRequest(c.Request().WithContext(ctx))

			csp := fmt.Sprintf("default-src 'self'; "+
				"script-src 'self' 'nonce-%s' https://unpkg.com https://challenges.cloudflare.com; "+
				"style-src 'self' 'unsafe-inline' https://fonts.googleapis.com; "+
				"img-src 'self' data: %s; "+
				"media-src 'self' %s; "+
				"font-src 'self' https://fonts.gstatic.com; "+
				"connect-src 'self' https://challenges.cloudflare.com; "+
				"frame-src https://challenges.cloudflare.com; "+
				"form-action %s",
				nonce, media, media, formAction)

			c.Response().Header().Set("Content-Security-Policy", csp)

			return next(c)
		}
	}
}

// originOf returns scheme://host for an absolute URL, or "" when raw is not one
func originOf(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

// GetNonce retrieves the nonce from the context
func GetNonce(ctx context.Context) string {
	if val, ok := ctx.Value(NonceKey).(string); ok {
		return val
	}
	return ""
}
