package partials

import (
	"strings"

	"najma_site_go/middleware"
	"najma_site_go/models"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// csrfField is the hidden input carrying the CSRF token for non-HTMX posts
func csrfField(token string) g.Node {
	if token == "" {
		return nil
	}
	return Input(Type("hidden"), Name(middleware.CSRFFormField), Value(token))
}

// statusClass picks the styling for a submission message
func statusClass(outcome models.SubmissionOutcome) string {
	if outcome == models.SubmissionSucceeded {
		return "form-status form-status--ok"
	}
	return "form-status form-status--error"
}

// messageClass styles a message by its leading marker when no outcome is at hand
func messageClass(message string) string {
	if strings.HasPrefix(message, "✅") {
		return statusClass(models.SubmissionSucceeded)
	}
	return statusClass(models.SubmissionRejected)
}
