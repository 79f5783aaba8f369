package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// FormLimit caps how often one visitor may post a lead form
type FormLimit struct {
	Requests int
	Window   time.Duration
	Message  string
}

type visitorWindow struct {
	count     int
	expiresAt time.Time
}

// FormLimiter counts posts per client IP in fixed windows.
// Expired windows are swept lazily, at most once per window.
type FormLimiter struct {
	limit     FormLimit
	now       func() time.Time
	mu        sync.Mutex
	visitors  map[string]*visitorWindow
	lastSweep time.Time
}

// NewFormLimiter creates a limiter; Message defaults to a generic notice
func NewFormLimiter(limit FormLimit) *FormLimiter {
	if limit.Message == "" {
		limit.Message = "Too many requests. Please try again later."
	}
	return &FormLimiter{
		limit:    limit,
		now:      time.Now,
		visitors: make(map[string]*visitorWindow),
	}
}

func (l *FormLimiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= l.limit.Window {
		for k, w := range l.visitors {
			if !now.Before(w.expiresAt) {
				delete(l.visitors, k)
			}
		}
		l.lastSweep = now
	}

	w, ok := l.visitors[key]
	if !ok || !now.Before(w.expiresAt) {
		l.visitors[key] = &visitorWindow{count: 1, expiresAt: now.Add(l.limit.Window)}
		return true
	}
	if w.count >= l.limit.Requests {
		return false
	}
	w.count++
	return true
}

// Middleware rejects posts over the limit with 429. HTMX requests get a status
// paragraph appended to the swap target so the form stays in place.
func (l *FormLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if l.allow(c.RealIP()) {
				return next(c)
			}

			if c.Request().Header.Get("HX-Request") != "true" {
				return echo.NewHTTPError(http.StatusTooManyRequests, l.limit.Message)
			}

			var b strings.Builder
			notice := h.P(h.Class("form-status form-status--error"), g.Attr("role", "alert"), g.Text(l.limit.Message))
			if err := notice.Render(&b); err != nil {
				return err
			}
			c.Response().Header().Set("HX-Reswap", "beforeend")
			return c.HTML(http.StatusTooManyRequests, b.String())
		}
	}
}

// QuoteRateLimiter allows 5 quote requests per 10 minutes per IP
var QuoteRateLimiter = NewFormLimiter(FormLimit{
	Requests: 5,
	Window:   10 * time.Minute,
	Message:  "Too many quote requests. Please wait before trying again.",
})

// NewsletterRateLimiter allows 3 signups per 10 minutes per IP
var NewsletterRateLimiter = NewFormLimiter(FormLimit{
	Requests: 3,
	Window:   10 * time.Minute,
	Message:  "Too many signup attempts. Please wait before trying again.",
})
