package handlers

import (
	"log"
	"net/http"

	"najma_site_go/middleware"
	"najma_site_go/models"
	"najma_site_go/services"
	"najma_site_go/services/i18n"
	"najma_site_go/templates/pages"
	"najma_site_go/templates/partials"

	"github.com/labstack/echo/v4"
)

// renderNewsletter re-renders the (reset) form with a status message
func renderNewsletter(c echo.Context, code int, status models.NewsletterStatus) error {
	if isHTMX(c) {
		return renderFragment(c, code, partials.NewsletterForm(c.Request().Context(), middleware.GetCSRFToken(c), status))
	}
	return renderLanding(c, code, func(vm *pages.LandingViewModel) {
		vm.Newsletter = status
	})
}

// NewsletterPostHandler submits a newsletter signup
func NewsletterPostHandler(c echo.Context) error {
	ctx := c.Request().Context()
	email := c.FormValue("email")

	if err := services.ValidateEmail(email); err != nil {
		status := models.NewsletterStatus{
			Message:    "❌ " + i18n.T(ctx, "newsletter.invalid_email"),
			ClearAfter: models.NewsletterStatusTTL,
		}
		return renderNewsletter(c, http.StatusBadRequest, status)
	}

	status, submission := services.Subscribe(ctx, services.Forms, email)
	log.Printf("[INFO] Newsletter signup %s: %s", submission.ID, submission.Outcome)

	return renderNewsletter(c, http.StatusOK, status)
}

// NewsletterStatusHandler returns the empty status element that replaces an expired message
func NewsletterStatusHandler(c echo.Context) error {
	return renderFragment(c, http.StatusOK, partials.NewsletterStatus(models.NewsletterStatus{}))
}
