package handlers

import (
	"log"
	"net/http"

	"najma_site_go/config"
	"najma_site_go/middleware"
	"najma_site_go/models"
	"najma_site_go/services"
	"najma_site_go/services/i18n"
	"najma_site_go/templates/pages"
	"najma_site_go/templates/partials"

	"github.com/labstack/echo/v4"
)

// quoteModalData starts the dialog fragment state for this request
func quoteModalData(c echo.Context, cfg *config.Config, dialog models.QuoteDialog) partials.QuoteModalData {
	return partials.QuoteModalData{
		Dialog:           dialog,
		CSRFToken:        middleware.GetCSRFToken(c),
		TurnstileSiteKey: cfg.TurnstileSiteKey,
	}
}

// renderQuote answers with the modal fragment for htmx, or the full page otherwise
func renderQuote(c echo.Context, code int, data partials.QuoteModalData) error {
	if isHTMX(c) {
		return renderFragment(c, code, partials.QuoteModal(c.Request().Context(), data))
	}
	return renderLanding(c, code, func(vm *pages.LandingViewModel) {
		vm.Quote = data
	})
}

// QuoteOpenHandler opens the quote dialog for ?product=, defaulting to a general inquiry
func QuoteOpenHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)

	var dialog models.QuoteDialog
	dialog.Open(c.QueryParam("product"))

	return renderQuote(c, http.StatusOK, quoteModalData(c, cfg, dialog))
}

// QuoteCloseHandler closes the dialog
func QuoteCloseHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)

	var dialog models.QuoteDialog
	dialog.Close()

	if !isHTMX(c) {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	return renderQuote(c, http.StatusOK, quoteModalData(c, cfg, dialog))
}

// QuotePostHandler relays a quote request to the form endpoint and shows the outcome in the dialog
func QuotePostHandler(c echo.Context) error {
	cfg := c.Get("config").(*config.Config)
	ctx := c.Request().Context()

	form, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form data")
	}
	req := services.ParseQuoteRequest(form)

	var dialog models.QuoteDialog
	dialog.Open(req.Product)
	data := quoteModalData(c, cfg, dialog)
	data.Request = req

	// Validate Turnstile CAPTCHA (if configured)
	if cfg.TurnstileSecretKey != "" {
		token := form.Get("cf-turnstile-response")
		if token == "" {
			data.Error = i18n.T(ctx, "quote.captcha_required")
			return renderQuote(c, http.StatusBadRequest, data)
		}

		valid, err := services.VerifyTurnstileToken(ctx, token, cfg.TurnstileSecretKey, c.RealIP())
		if err != nil || !valid {
			c.Logger().Warnf("Turnstile verification failed: %v", err)
			data.Error = i18n.T(ctx, "quote.captcha_failed")
			return renderQuote(c, http.StatusBadRequest, data)
		}
	}

	if err := services.ValidateQuoteRequest(req); err != nil {
		data.Error = i18n.T(ctx, "quote.missing_fields")
		return renderQuote(c, http.StatusBadRequest, data)
	}

	result, submission := services.SubmitQuote(ctx, services.Forms, req)
	log.Printf("[INFO] Quote request %s for %q: %s", submission.ID, req.Product, result.Outcome)

	data.Result = &result
	if result.Outcome == models.SubmissionSucceeded {
		data.Request = models.QuoteRequest{}
		services.NotifyQuoteRequest(cfg, req, submission.ID, i18n.GetLocale(ctx))
	}

	return renderQuote(c, http.StatusOK, data)
}
