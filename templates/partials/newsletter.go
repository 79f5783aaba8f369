package partials

import (
	"context"
	"fmt"

	"najma_site_go/models"
	"najma_site_go/services/i18n"
	"najma_site_go/templates/components"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// NewsletterForm renders the signup form with empty inputs and the current status.
// Re-rendering it after a submission is what resets the form.
func NewsletterForm(ctx context.Context, csrfToken string, status models.NewsletterStatus) g.Node {
	return Div(
		ID("newsletter"),
		Class("newsletter__form"),
		FormEl(
			Action("/newsletter"),
			Method("post"),
			components.HxPost("/newsletter"),
			components.HxTarget("#newsletter"),
			components.HxSwap("outerHTML"),
			csrfField(csrfToken),
			Input(
				Name("email"),
				Type("email"),
				Class("input"),
				Placeholder(i18n.T(ctx, "newsletter.placeholder")),
				Aria("label", i18n.T(ctx, "newsletter.placeholder")),
				Required(),
			),
			Button(Type("submit"), Class("btn btn--accent"), g.Text(i18n.T(ctx, "newsletter.send"))),
		),
		NewsletterStatus(status),
	)
}

// NewsletterStatus is the message element. A non-empty status fetches the empty
// element again once ClearAfter has passed, which removes the message.
func NewsletterStatus(status models.NewsletterStatus) g.Node {
	if status.IsEmpty() {
		return Div(ID("newsletter-status"), Aria("live", "polite"))
	}
	return Div(
		ID("newsletter-status"),
		Class(messageClass(status.Message)),
		Aria("live", "polite"),
		components.HxGet("/newsletter/status"),
		components.HxTrigger(fmt.Sprintf("load delay:%dms", status.ClearAfter.Milliseconds())),
		components.HxSwap("outerHTML"),
		g.Text(status.Message),
	)
}
