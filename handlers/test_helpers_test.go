package handlers

import (
	"context"
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"najma_site_go/config"
	"najma_site_go/models"
	"najma_site_go/services"
	"najma_site_go/services/i18n"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const testCatalog = `
logo: images/logo512.png
hero_video: videos/hero.mp4
products:
  - id: wheat
    title: Wheat
    description: High-quality wheat.
  - id: corn
    title: Corn
    description: Moisture-tested corn.
stats:
  - id: small
    label: Small
    end: 3
  - id: big
    label: Big
    end: 150
  - id: zero
    label: Zero
    end: 0
  - id: infinite
    label: Infinite
    end: .inf
  - id: nan
    label: Not a number
    end: .nan
  - id: fraction
    label: Fraction
    end: 2.7
`

func testConfig() *config.Config {
	return &config.Config{
		Environment:     "development",
		AppURL:          "https://example.com",
		SiteTitle:       "Najma Test Title",
		SiteDescription: "Najma test description",
		ContactPhone:    "+971524050997",
		ContactEmail:    "sales@example.com",
		WhatsAppNumber:  "971524050997",
		EmailTestMode:   true,
	}
}

// setupSite loads translations and the test catalog and resets the page metadata
func setupSite(t *testing.T) *config.Config {
	t.Helper()
	require.NoError(t, i18n.Load())

	catalog, err := services.ParseCatalog([]byte(testCatalog))
	require.NoError(t, err)
	services.SiteContent = catalog

	cfg := testConfig()
	InitSite(cfg)

	counterAnimator = &services.CounterAnimator{
		Duration:  20 * time.Millisecond,
		MinStep:   time.Millisecond,
		NewTicker: services.NewTimeTicker,
	}
	return cfg
}

func setupEcho(cfg *config.Config, method, path string, body io.Reader) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("config", cfg)
	return c, rec
}

func formBody(values url.Values) io.Reader {
	return strings.NewReader(values.Encode())
}

// stubSubmitter stands in for the form endpoint
type stubSubmitter struct {
	mu      sync.Mutex
	outcome models.SubmissionOutcome
	forms   []url.Values
}

func (s *stubSubmitter) Submit(ctx context.Context, form url.Values) services.SubmissionResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forms = append(s.forms, form)
	return services.SubmissionResult{ID: uuid.New().String(), Outcome: s.outcome}
}

func (s *stubSubmitter) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.forms)
}

func useSubmitter(t *testing.T, outcome models.SubmissionOutcome) *stubSubmitter {
	t.Helper()
	stub := &stubSubmitter{outcome: outcome}
	previous := services.Forms
	services.Forms = stub
	t.Cleanup(func() { services.Forms = previous })
	return stub
}
