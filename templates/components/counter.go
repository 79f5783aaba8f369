package components

import (
	"najma_site_go/models"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Counter renders an animated statistic. The value starts at 0 and is
// replaced by each "tick" event of the stream; the connection closes on "done".
func Counter(stat models.Stat) g.Node {
	return Div(
		Class("counter"),
		g.Attr("hx-ext", "sse"),
		g.Attr("sse-connect", "/counters/"+stat.ID),
		g.Attr("sse-close", "done"),
		Div(
			Class("counter__value"),
			ID("counter-"+stat.ID),
			g.Attr("sse-swap", "tick"),
			g.Attr("aria-live", "polite"),
			g.Text("0"),
		),
		Div(Class("counter__label"), g.Text(stat.Label)),
	)
}
