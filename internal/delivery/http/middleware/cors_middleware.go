// Package middleware contains the HTTP middleware chain for the cart delivery.
package middleware

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"cartsync/config"

	"github.com/labstack/echo/v4"
)

const defaultCORSMaxAge = 10 * time.Minute

// CORSMiddleware computes per-request CORS headers from the Origin header.
// An origin outside the policy is answered with the first allow-listed origin
// instead of being rejected; the browser then blocks the response on its side
// while the server still processes the request.
type CORSMiddleware struct {
	allowedOrigins []string
	devDomain      string
	maxAge         time.Duration
}

// NewCORSMiddleware creates the CORS middleware from configuration.
func NewCORSMiddleware(cfg *config.Config) *CORSMiddleware {
	maxAge := cfg.CORS.MaxAge
	if maxAge <= 0 {
		maxAge = defaultCORSMaxAge
	}

	return &CORSMiddleware{
		allowedOrigins: cfg.CORS.AllowedOrigins,
		devDomain:      cfg.CORS.DevDomain,
		maxAge:         maxAge,
	}
}

// Handle attaches CORS headers to every response and short-circuits preflight
// requests with an empty 200 before any handler or store access runs.
func (m *CORSMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		m.applyHeaders(c)

		if c.Request().Method == http.MethodOptions {
			return c.NoContent(http.StatusOK)
		}

		return next(c)
	}
}

func (m *CORSMiddleware) applyHeaders(c echo.Context) {
	header := c.Response().Header()
	header.Set("Access-Control-Allow-Origin", m.resolveOrigin(c.Request().Header.Get("Origin")))
	header.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, PATCH, OPTIONS")
	header.Set("Access-Control-Allow-Headers", "Content-Type, X-Request-Id")
	header.Set("Access-Control-Max-Age", strconv.Itoa(int(m.maxAge.Seconds())))
	header.Add("Vary", "Origin")
}

// resolveOrigin picks the value echoed back in Access-Control-Allow-Origin:
// the request origin when it is allow-listed or a subdomain of the development
// domain, otherwise the first allow-listed origin.
func (m *CORSMiddleware) resolveOrigin(origin string) string {
	if origin != "" {
		for _, allowed := range m.allowedOrigins {
			if origin == allowed {
				return origin
			}
		}

		if m.isDevOrigin(origin) {
			return origin
		}
	}

	if len(m.allowedOrigins) > 0 {
		return m.allowedOrigins[0]
	}

	return ""
}

func (m *CORSMiddleware) isDevOrigin(origin string) bool {
	if m.devDomain == "" {
		return false
	}

	parsed, err := url.Parse(origin)
	if err != nil || parsed.Host == "" {
		return false
	}

	host := parsed.Hostname()

	return host == m.devDomain || strings.HasSuffix(host, "."+m.devDomain)
}
