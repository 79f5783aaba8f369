package pages

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"najma_site_go/config"
	"najma_site_go/middleware"
	"najma_site_go/models"
	"najma_site_go/services"
	"najma_site_go/services/i18n"
	"najma_site_go/templates/layouts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderLanding(t *testing.T, ctx context.Context, mutate func(*LandingViewModel)) string {
	t.Helper()
	require.NoError(t, i18n.Load())
	require.NoError(t, services.InitializeCatalog(""))

	cfg := &config.Config{
		AppURL:         "https://example.com",
		ContactPhone:   "+971524050997",
		ContactEmail:   "sales@example.com",
		WhatsAppNumber: "971524050997",
	}
	page := layouts.Page{
		SEO:            models.SiteSEO("Najma Title", "Najma Description", cfg.AppURL),
		CSRFToken:      "csrf-token",
		StructuredData: Organization(cfg, "https://example.com/static/images/logo512.png"),
	}
	vm := NewLandingViewModel(cfg, services.SiteContent, page)
	if mutate != nil {
		mutate(&vm)
	}

	var buf bytes.Buffer
	require.NoError(t, Landing(ctx, vm).Render(ctx, &buf))
	return buf.String()
}

func TestLanding(t *testing.T) {
	ctx := context.WithValue(context.Background(), middleware.NonceKey, "abc")
	html := renderLanding(t, ctx, nil)

	t.Run("Shell", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(html, "<!doctype html>"))
		assert.Contains(t, html, `<html lang="en" dir="ltr">`)
		assert.Contains(t, html, "<title>Najma Title</title>")
		assert.Contains(t, html, `<meta name="description" content="Najma Description">`)
		assert.Contains(t, html, `<link rel="canonical" href="https://example.com/">`)
		assert.Contains(t, html, `hreflang="ar" href="https://example.com/?lang=ar"`)
		assert.Contains(t, html, `nonce="abc"`)
		assert.Contains(t, html, `"@type":"Organization"`)
		assert.Contains(t, html, `hx-headers="{&#34;X-CSRF-Token&#34;:&#34;csrf-token&#34;}"`)
	})

	t.Run("Sections", func(t *testing.T) {
		for _, id := range []string{"hero", "about", "why", "products", "gallery", "testimonials", "contact", "newsletter", "quote-modal"} {
			assert.Contains(t, html, `id="`+id+`"`, id)
		}
		assert.Equal(t, 4, strings.Count(html, `class="card product"`))
		assert.Contains(t, html, `sse-connect="/counters/tons"`)
	})

	t.Run("Quote entry points", func(t *testing.T) {
		assert.Contains(t, html, `hx-get="/quote"`)
		assert.Contains(t, html, `hx-get="/quote?product=Rhodes+Grass"`)
		assert.Contains(t, html, `hx-get="/quote?product=Partnership"`)
		assert.Contains(t, html, `hx-get="/quote?product=Wheat"`)
		assert.Contains(t, html, `<div id="quote-modal" class="modal-slot"></div>`)
	})

	t.Run("Contact links", func(t *testing.T) {
		assert.Contains(t, html, `href="https://wa.me/971524050997"`)
		assert.Contains(t, html, `href="tel:+971524050997"`)
		assert.Contains(t, html, `href="mailto:sales@example.com?subject=Inquiry%20about%20Wheat"`)
	})
}

func TestLandingArabic(t *testing.T) {
	html := renderLanding(t, i18n.WithLocale(context.Background(), "ar"), nil)
	assert.Contains(t, html, `<html lang="ar" dir="rtl">`)
	assert.Contains(t, html, `href="/?lang=en"`)
}

func TestLandingWithOpenDialog(t *testing.T) {
	html := renderLanding(t, context.Background(), func(vm *LandingViewModel) {
		vm.Quote.Dialog.Open("Corn")
	})
	assert.Contains(t, html, `class="modal"`)
	assert.Contains(t, html, `name="product" value="Corn"`)
	assert.Contains(t, html, `name="_csrf" value="csrf-token"`)
}

func TestLandingRendersDescriptionMarkup(t *testing.T) {
	html := renderLanding(t, context.Background(), func(vm *LandingViewModel) {
		vm.Products[0].Description = "<strong>Premium</strong> bales"
	})
	assert.Contains(t, html, `<p class="product__description"><strong>Premium</strong> bales</p>`)
}
