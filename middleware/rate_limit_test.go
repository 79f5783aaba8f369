package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func limitedHandler(l *FormLimiter) echo.HandlerFunc {
	return l.Middleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
}

func post(e *echo.Echo, handler echo.HandlerFunc, ip string, htmx bool) (*httptest.ResponseRecorder, error) {
	req := httptest.NewRequest(http.MethodPost, "/quote", nil)
	req.Header.Set(echo.HeaderXRealIP, ip)
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	rec := httptest.NewRecorder()
	return rec, handler(e.NewContext(req, rec))
}

func TestNewFormLimiterDefaults(t *testing.T) {
	l := NewFormLimiter(FormLimit{Requests: 10, Window: time.Minute})
	assert.Equal(t, "Too many requests. Please try again later.", l.limit.Message)
}

func TestFormLimiter(t *testing.T) {
	e := echo.New()

	t.Run("Within limit", func(t *testing.T) {
		handler := limitedHandler(NewFormLimiter(FormLimit{Requests: 2, Window: time.Minute}))
		for i := 0; i < 2; i++ {
			rec, err := post(e, handler, "10.0.0.1", false)
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, rec.Code)
		}
	})

	t.Run("Exceeded", func(t *testing.T) {
		handler := limitedHandler(NewFormLimiter(FormLimit{Requests: 1, Window: time.Minute}))
		_, err := post(e, handler, "10.0.0.1", false)
		require.NoError(t, err)

		_, err = post(e, handler, "10.0.0.1", false)
		he, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusTooManyRequests, he.Code)
	})

	t.Run("Keyed by IP", func(t *testing.T) {
		handler := limitedHandler(NewFormLimiter(FormLimit{Requests: 1, Window: time.Minute}))
		for _, ip := range []string{"10.0.0.1", "10.0.0.2"} {
			rec, err := post(e, handler, ip, false)
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, rec.Code, ip)
		}
	})

	t.Run("HTMX notice is appended", func(t *testing.T) {
		handler := limitedHandler(NewFormLimiter(FormLimit{Requests: 1, Window: time.Minute, Message: "Slow <down>"}))
		_, err := post(e, handler, "10.0.0.1", true)
		require.NoError(t, err)

		rec, err := post(e, handler, "10.0.0.1", true)
		require.NoError(t, err)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "beforeend", rec.Header().Get("HX-Reswap"))
		assert.Equal(t, `<p class="form-status form-status--error" role="alert">Slow &lt;down&gt;</p>`, rec.Body.String())
	})
}

func TestFormLimiterWindowExpiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewFormLimiter(FormLimit{Requests: 1, Window: time.Minute})
	l.now = func() time.Time { return now }

	assert.True(t, l.allow("a"))
	assert.True(t, l.allow("b"))
	assert.False(t, l.allow("a"))

	now = now.Add(time.Minute)
	assert.True(t, l.allow("a"))
	assert.Len(t, l.visitors, 1, "expired windows are swept")
}

func TestFormRateLimiters(t *testing.T) {
	assert.Equal(t, 5, QuoteRateLimiter.limit.Requests)
	assert.Equal(t, 3, NewsletterRateLimiter.limit.Requests)
	assert.Equal(t, 10*time.Minute, NewsletterRateLimiter.limit.Window)
}
