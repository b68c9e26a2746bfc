// Package pages holds the full pages and the #app fragments the handlers render.
package pages

import (
	"net/url"

	"github.com/fieldbase/admin/web/src/templates/partials"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// Boot is the blocking loading screen. As soon as it is in the page it asks for
// the shell of path, reporting the viewport width so the server can pick the
// sidebar default.
func Boot(path string) g.Node {
	return h.Div(
		h.ID(partials.AppID),
		h.Class("boot"),
		hx.Get("/shell?"+url.Values{"path": {path}}.Encode()),
		hx.Trigger("load"),
		hx.Vals("js:{width: window.innerWidth}"),
		hx.Swap("outerHTML"),
		g.Text("Loading..."),
	)
}
