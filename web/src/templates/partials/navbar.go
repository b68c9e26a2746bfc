package partials

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// Navbar is the top bar with the brand and the logout action. The logout
// button is disabled while a logout banner is showing.
func Navbar(brand string, loggingOut bool) g.Node {
	return h.Nav(
		h.Class("navbar"),
		h.Span(h.Class("navbar-brand"), g.Text(brand)),
		h.Button(
			h.Type("button"),
			h.Class("btn btn-logout"),
			hx.Post("/logout"),
			hx.Target(Selector(AppID)),
			hx.Swap("outerHTML"),
			hx.PushURL("/"),
			g.If(loggingOut, h.Disabled()),
			g.Text("Logout"),
		),
	)
}
