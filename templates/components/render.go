package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Templ adapts a gomponents node to the templ.Component the handlers render
func Templ(node g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return node.Render(w)
	})
}

// HxGet issues a GET to url when the element is triggered
func HxGet(url string) g.Node {
	return g.Attr("hx-get", url)
}

// HxPost issues a POST of the enclosing form to url
func HxPost(url string) g.Node {
	return g.Attr("hx-post", url)
}

func HxTarget(selector string) g.Node {
	return g.Attr("hx-target", selector)
}

func HxSwap(swap string) g.Node {
	return g.Attr("hx-swap", swap)
}

func HxTrigger(trigger string) g.Node {
	return g.Attr("hx-trigger", trigger)
}

// HxHeaders sends v, encoded as JSON, as extra request headers
func HxHeaders(v any) g.Node {
	return g.Attr("hx-headers", JSON(v))
}
