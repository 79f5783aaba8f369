package pages

import (
	"context"

	"najma_site_go/models"
	"najma_site_go/services/i18n"
	"najma_site_go/templates/components"
	"najma_site_go/templates/layouts"
	"najma_site_go/templates/partials"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Landing renders the full single-page site
func Landing(ctx context.Context, vm LandingViewModel) templ.Component {
	return components.Templ(layouts.PageShell(ctx, vm.Page,
		floatingContacts(ctx, vm),
		siteHeader(ctx, vm),
		Main(
			hero(ctx, vm),
			about(ctx),
			why(ctx, vm),
			products(ctx, vm),
			gallery(ctx, vm),
			testimonials(ctx, vm),
			newsletter(ctx, vm),
		),
		siteFooter(ctx, vm),
		partials.QuoteModal(ctx, vm.Quote),
	))
}

// quoteLink opens the dialog in place, or loads the page with it open without JS
func quoteLink(product, class, label string) g.Node {
	return A(
		Href(components.QuoteURL(product)),
		Class(class),
		components.HxGet(components.QuoteURL(product)),
		components.HxTarget("#"+partials.QuoteModalID),
		components.HxSwap("outerHTML"),
		g.Text(label),
	)
}

func floatingContacts(ctx context.Context, vm LandingViewModel) g.Node {
	return Div(
		Class("floating"),
		A(
			Href(components.WhatsAppURL(vm.WhatsAppNumber)),
			Target("_blank"),
			Rel("noreferrer"),
			Class("floating__btn floating__btn--whatsapp"),
			Aria("label", i18n.T(ctx, "floating.whatsapp")),
			g.Text("💬"),
		),
		A(
			Href(components.TelURL(vm.ContactPhone)),
			Class("floating__btn floating__btn--call"),
			Aria("label", i18n.T(ctx, "floating.call")),
			g.Text("📞"),
		),
	)
}

func siteHeader(ctx context.Context, vm LandingViewModel) g.Node {
	other := "ar"
	if i18n.GetLocale(ctx) == "ar" {
		other = "en"
	}

	return Header(
		Class("site-header container"),
		Div(
			Class("brand"),
			Img(Src(components.MediaURL(vm.Logo)), Alt(i18n.T(ctx, "brand.name")), Class("brand__logo")),
			Div(
				H1(Class("brand__name"), g.Text(i18n.T(ctx, "brand.name"))),
				P(Class("brand__tagline"), g.Text(i18n.T(ctx, "brand.tagline"))),
			),
		),
		Nav(
			Class("site-nav"),
			A(Href("#products"), g.Text(i18n.T(ctx, "nav.products"))),
			A(Href("#why"), g.Text(i18n.T(ctx, "nav.why"))),
			A(Href("#testimonials"), g.Text(i18n.T(ctx, "nav.testimonials"))),
			A(Href("/?lang="+other), g.Attr("hreflang", other), g.Text(i18n.T(ctx, "nav.language"))),
			quoteLink("", "btn btn--primary", i18n.T(ctx, "nav.get_quote")),
		),
	)
}

func hero(ctx context.Context, vm LandingViewModel) g.Node {
	return Section(
		ID("hero"),
		Class("hero container"),
		Div(
			Class("hero__text"),
			H2(Class("hero__title"), g.Text(i18n.T(ctx, "hero.title"))),
			P(Class("hero__subtitle"), g.Text(i18n.T(ctx, "hero.subtitle"))),
			Div(
				Class("hero__actions"),
				quoteLink("Rhodes Grass", "btn btn--primary", i18n.T(ctx, "hero.request_quote")),
				A(Href("#contact"), Class("btn btn--outline"), g.Text(i18n.T(ctx, "hero.contact"))),
			),
			Div(
				Class("hero__partners"),
				g.Group(g.Map(indexed(vm.TrustLogos), func(logo indexedString) g.Node {
					return Img(
						Src(components.MediaURL(logo.value)),
						Alt(i18n.T(ctx, "hero.partner_alt", map[string]interface{}{"index": logo.index})),
						Class("hero__partner"),
						g.Attr("loading", "lazy"),
					)
				})),
			),
		),
		Div(
			Class("hero__media"),
			g.If(vm.HeroVideo != "", g.El("video",
				Class("hero__video"),
				g.Attr("autoplay"),
				g.Attr("muted"),
				g.Attr("loop"),
				g.Attr("playsinline"),
				g.El("source", Src(components.MediaURL(vm.HeroVideo)), Type("video/mp4")),
				g.Text(i18n.T(ctx, "hero.video_fallback")),
			)),
			P(Class("hero__footnote"), g.Text(i18n.T(ctx, "hero.footnote"))),
		),
	)
}

func about(ctx context.Context) g.Node {
	return Section(
		ID("about"),
		Class("section container"),
		H2(Class("section__title"), g.Text(i18n.T(ctx, "about.title"))),
		P(g.Text(i18n.T(ctx, "about.p1"))),
		P(g.Text(i18n.T(ctx, "about.p2"))),
	)
}

func why(ctx context.Context, vm LandingViewModel) g.Node {
	return Section(
		ID("why"),
		Class("section container"),
		H2(Class("section__title"), g.Text(i18n.T(ctx, "why.title"))),
		P(g.Text(i18n.T(ctx, "why.intro"))),
		Ul(
			Class("reasons"),
			g.Group(g.Map(vm.Reasons, func(r models.Reason) g.Node {
				return Li(Class("card"), g.Text("✅ "), Strong(g.Text(r.Headline)), g.Text(" — "+r.Detail))
			})),
		),
		g.El("blockquote", Class("motto"), g.Text(i18n.T(ctx, "why.motto"))),
		Div(Class("why__cta"), quoteLink("Partnership", "btn btn--accent", i18n.T(ctx, "why.partner"))),
		Div(
			Class("features"),
			g.Group(g.Map(vm.Features, func(f models.Feature) g.Node {
				return Div(
					Class("card feature"),
					Div(Class("feature__icon"), Aria("hidden", "true"), g.Text(f.Icon)),
					H3(g.Text(f.Title)),
					P(g.Raw(f.Description)),
				)
			})),
		),
		Div(
			Class("counters"),
			g.Group(g.Map(vm.Stats, components.Counter)),
		),
	)
}

func products(ctx context.Context, vm LandingViewModel) g.Node {
	return Section(
		ID("products"),
		Class("section container"),
		H2(Class("section__title"), g.Text(i18n.T(ctx, "products.title"))),
		Div(
			Class("products"),
			g.Group(g.Map(vm.Products, func(p models.ProductEntry) g.Node {
				subject := i18n.T(ctx, "products.email_subject", map[string]interface{}{"product": p.Title})
				return g.El("article",
					Class("card product"),
					ID("product-"+p.ID),
					H3(Class("product__title"), g.Text(p.Title)),
					P(Class("product__description"), g.Raw(p.Description)),
					Div(
						Class("product__actions"),
						quoteLink(p.Title, "btn btn--primary", i18n.T(ctx, "products.get_quote")),
						A(Href(components.MailtoURL(vm.ContactEmail, subject)), Class("btn btn--outline"), g.Text(i18n.T(ctx, "products.email"))),
					),
				)
			})),
		),
	)
}

func gallery(ctx context.Context, vm LandingViewModel) g.Node {
	return Section(
		ID("gallery"),
		Class("section container"),
		H2(Class("section__title"), g.Text(i18n.T(ctx, "gallery.title"))),
		Div(
			Class("slider"),
			Div(
				Class("slider__track animate-slide"),
				g.Group(g.Map(vm.Gallery, func(img models.GalleryImage) g.Node {
					return Img(Src(components.MediaURL(img.Src)), Alt(img.Alt), Class("slider__image"), g.Attr("loading", "lazy"))
				})),
			),
		),
	)
}

func testimonials(ctx context.Context, vm LandingViewModel) g.Node {
	return Section(
		ID("testimonials"),
		Class("section container"),
		H2(Class("section__title"), g.Text(i18n.T(ctx, "nav.testimonials"))),
		Div(
			Class("testimonials"),
			g.Group(g.Map(vm.Testimonials, func(t models.Testimonial) g.Node {
				return Figure(
					Class("card testimonial"),
					g.El("blockquote", g.Text("“"+t.Quote+"”")),
					g.El("figcaption", g.Text("— "+t.Author)),
				)
			})),
		),
	)
}

func newsletter(ctx context.Context, vm LandingViewModel) g.Node {
	return Section(
		ID("cta"),
		Class("cta container"),
		Div(
			H2(Class("cta__title"), g.Text(i18n.T(ctx, "newsletter.title"))),
			P(Class("cta__subtitle"), g.Text(i18n.T(ctx, "newsletter.subtitle"))),
		),
		partials.NewsletterForm(ctx, vm.Page.CSRFToken, vm.Newsletter),
	)
}

func siteFooter(ctx context.Context, vm LandingViewModel) g.Node {
	return Footer(
		ID("contact"),
		Class("site-footer container"),
		Div(g.Text(i18n.T(ctx, "footer.rights", map[string]interface{}{"year": vm.Year}))),
		Div(g.Text(i18n.T(ctx, "footer.contact", map[string]interface{}{"phone": vm.ContactPhone, "email": vm.ContactEmail}))),
	)
}

type indexedString struct {
	index int
	value string
}

// indexed pairs each value with its 1-based position
func indexed(values []string) []indexedString {
	out := make([]indexedString, len(values))
	for i, v := range values {
		out[i] = indexedString{index: i + 1, value: v}
	}
	return out
}
