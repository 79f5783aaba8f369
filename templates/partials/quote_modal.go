package partials

import (
	"context"

	"najma_site_go/models"
	"najma_site_go/services/i18n"
	"najma_site_go/templates/components"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// QuoteModalID is the element the quote fragments replace
const QuoteModalID = "quote-modal"

// QuoteModalData is everything the quote dialog fragment needs
type QuoteModalData struct {
	Dialog           models.QuoteDialog
	Request          models.QuoteRequest // previous input, refilled after a failed attempt
	Result           *models.QuoteResult
	Error            string
	CSRFToken        string
	TurnstileSiteKey string
}

// QuoteModal renders the dialog, or the empty slot when it is closed
func QuoteModal(ctx context.Context, data QuoteModalData) g.Node {
	if !data.Dialog.IsOpen {
		return Div(ID(QuoteModalID), Class("modal-slot"))
	}

	product := data.Dialog.SelectedProduct
	done := data.Result != nil && data.Result.Outcome == models.SubmissionSucceeded

	return Div(
		ID(QuoteModalID),
		Class("modal"),
		Role("dialog"),
		Aria("modal", "true"),
		Aria("labelledby", "quote-title"),
		Div(
			Class("modal__panel"),
			A(
				Href("/"),
				Class("modal__close"),
				components.HxGet("/quote/close"),
				components.HxTarget("#"+QuoteModalID),
				components.HxSwap("outerHTML"),
				Aria("label", i18n.T(ctx, "quote.close")),
				g.Text("✕"),
			),
			H3(ID("quote-title"), Class("modal__title"),
				g.Text(i18n.T(ctx, "quote.title", map[string]interface{}{"product": product})),
			),
			g.If(data.Result != nil, resultMessage(data.Result)),
			g.If(data.Error != "", P(Class("form-status form-status--error"), Role("alert"), g.Text(data.Error))),
			g.If(done, closeButton(ctx)),
			g.If(!done, quoteForm(ctx, product, data)),
		),
	)
}

func resultMessage(result *models.QuoteResult) g.Node {
	if result == nil {
		return nil
	}
	return P(Class(statusClass(result.Outcome)), Role("status"), g.Text(result.Message))
}

func closeButton(ctx context.Context) g.Node {
	return Button(
		Type("button"),
		Class("btn btn--primary btn--block"),
		components.HxGet("/quote/close"),
		components.HxTarget("#"+QuoteModalID),
		components.HxSwap("outerHTML"),
		g.Text(i18n.T(ctx, "quote.close")),
	)
}

func quoteForm(ctx context.Context, product string, data QuoteModalData) g.Node {
	req := data.Request
	return FormEl(
		Class("quote-form"),
		Action("/quote"),
		Method("post"),
		components.HxPost("/quote"),
		components.HxTarget("#"+QuoteModalID),
		components.HxSwap("outerHTML"),
		g.Attr("hx-disabled-elt", "find button[type=submit]"),
		csrfField(data.CSRFToken),
		Input(Type("hidden"), Name("product"), Value(product)),
		textInput("company", "text", i18n.T(ctx, "quote.company"), req.Company, false),
		textInput("name", "text", i18n.T(ctx, "quote.name"), req.Name, true),
		textInput("email", "email", i18n.T(ctx, "quote.email"), req.Email, true),
		textInput("phone", "tel", i18n.T(ctx, "quote.phone"), req.Phone, false),
		Textarea(
			Name("message"),
			Class("input"),
			Placeholder(i18n.T(ctx, "quote.message")),
			Aria("label", i18n.T(ctx, "quote.message")),
			g.Attr("rows", "4"),
			g.Text(req.Message),
		),
		g.If(data.TurnstileSiteKey != "",
			Div(Class("cf-turnstile"), g.Attr("data-sitekey", data.TurnstileSiteKey)),
		),
		Button(Type("submit"), Class("btn btn--primary btn--block"), g.Text(i18n.T(ctx, "quote.send"))),
	)
}

func textInput(name, kind, label, value string, required bool) g.Node {
	return Input(
		Name(name),
		Type(kind),
		Class("input"),
		Placeholder(label),
		Aria("label", label),
		g.If(value != "", Value(value)),
		g.If(required, Required()),
	)
}
