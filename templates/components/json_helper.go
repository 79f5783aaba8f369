package components

import (
	"encoding/json"
	"log"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// JSON marshals an object to a JSON string, returning "{}" on error
func JSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("[WARNING] Error marshaling JSON: %v", err)
		return "{}"
	}
	return string(b)
}

// JSONLD renders a structured data script block
func JSONLD(nonce string, v interface{}) g.Node {
	return Script(
		Type("application/ld+json"),
		g.If(nonce != "", g.Attr("nonce", nonce)),
		g.Raw(JSON(v)),
	)
}
