package layouts

import (
	"context"

	"najma_site_go/middleware"
	"najma_site_go/models"
	"najma_site_go/services/i18n"
	"najma_site_go/templates/components"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	htmxURL    = "https://unpkg.com/htmx.org@2.0.4"
	htmxSSEURL = "https://unpkg.com/htmx-ext-sse@2.2.2"
	turnstile  = "https://challenges.cloudflare.com/turnstile/v0/api.js"
)

// Page carries the per-request values the shell needs
type Page struct {
	SEO              *models.SEO
	CSRFToken        string
	TurnstileSiteKey string
	// StructuredData is emitted as JSON-LD when set
	StructuredData interface{}
}

// PageShell is the document: head metadata, scripts and the body content
func PageShell(ctx context.Context, page Page, body ...g.Node) g.Node {
	lang := i18n.GetLocale(ctx)
	nonce := middleware.GetNonce(ctx)

	return Doctype(
		HTML(
			Lang(lang),
			g.Attr("dir", i18n.Direction(lang)),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				seoHead(page.SEO),
				Link(Rel("icon"), Type("image/png"), Href(components.AssetURL(ctx, "images/logo512.png"))),
				Link(Rel("stylesheet"), Href(components.AssetURL(ctx, "css/site.css"))),
				script(nonce, htmxURL),
				script(nonce, htmxSSEURL),
				script(nonce, components.AssetURL(ctx, "js/site.js")),
				g.If(page.TurnstileSiteKey != "", script(nonce, turnstile+"?render=explicit&onload=onTurnstileLoad")),
				g.If(page.StructuredData != nil, components.JSONLD(nonce, page.StructuredData)),
			),
			Body(
				Class("site"),
				g.If(page.CSRFToken != "", components.HxHeaders(map[string]string{middleware.CSRFHeaderName: page.CSRFToken})),
				g.Group(body),
			),
		),
	)
}

func script(nonce, src string) g.Node {
	return Script(Src(src), Defer(), g.If(nonce != "", g.Attr("nonce", nonce)))
}

func seoHead(seo *models.SEO) g.Node {
	if seo == nil {
		return nil
	}
	return g.Group([]g.Node{
		TitleEl(g.Text(seo.Title)),
		Meta(Name("description"), Content(seo.Description)),
		g.If(seo.Keywords != "", Meta(Name("keywords"), Content(seo.Keywords))),
		g.If(seo.NoIndex, Meta(Name("robots"), Content("noindex, nofollow"))),
		g.If(seo.Canonical != "", Link(Rel("canonical"), Href(seo.Canonical))),
		g.If(seo.Canonical != "", g.Group(g.Map(seo.AltLocales, func(alt string) g.Node {
			return Link(Rel("alternate"), g.Attr("hreflang", alt), Href(seo.Canonical+"?lang="+alt))
		}))),
		property("og:title", seo.GetOGTitle()),
		property("og:description", seo.GetOGDesc()),
		property("og:type", seo.OGType),
		property("og:url", seo.Canonical),
		property("og:image", seo.OGImage),
		property("og:locale", seo.Locale),
		Meta(Name("twitter:card"), Content(seo.TwitterCard)),
		Meta(Name("twitter:title"), Content(seo.GetOGTitle())),
		Meta(Name("twitter:description"), Content(seo.GetOGDesc())),
		g.If(seo.OGImage != "", Meta(Name("twitter:image"), Content(seo.OGImage))),
	})
}

func property(name, value string) g.Node {
	if value == "" {
		return nil
	}
	return Meta(g.Attr("property", name), Content(value))
}
