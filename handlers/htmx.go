package handlers

import (
	"net/http"

	"najma_site_go/config"
	"najma_site_go/middleware"
	"najma_site_go/services"
	"najma_site_go/services/i18n"
	"najma_site_go/templates/components"
	"najma_site_go/templates/layouts"
	"najma_site_go/templates/pages"

	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
)

// isHTMX reports whether the request was issued by htmx
func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

// renderFragment writes a partial with the given status code
func renderFragment(c echo.Context, code int, node g.Node) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return components.Templ(node).Render(c.Request().Context(), c.Response().Writer)
}

// pageFor builds the shell values shared by every full page render
func pageFor(c echo.Context, cfg *config.Config) layouts.Page {
	page := layouts.Page{
		SEO:              GetSEO(i18n.GetLocale(c.Request().Context())),
		CSRFToken:        middleware.GetCSRFToken(c),
		TurnstileSiteKey: cfg.TurnstileSiteKey,
	}
	if organization != nil {
		page.StructuredData = organization
	}
	return page
}

// renderLanding renders the full page. Fragment endpoints fall back to it for
// clients without JavaScript, with mutate applying the fragment's state.
func renderLanding(c echo.Context, code int, mutate func(*pages.LandingViewModel)) error {
	cfg := c.Get("config").(*config.Config)
	if services.SiteContent == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Site content not loaded")
	}

	vm := pages.NewLandingViewModel(cfg, services.SiteContent, pageFor(c, cfg))
	if mutate != nil {
		mutate(&vm)
	}

	ctx := c.Request().Context()
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return pages.Landing(ctx, vm).Render(ctx, c.Response().Writer)
}
