package partials

import (
	"fmt"
	"time"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// LogoutBanner renders the transient logout confirmation. Once remaining has
// elapsed it fetches the shell for the default route, which replaces the
// banner. Swapping the banner out before then drops the pending request.
func LogoutBanner(message string, remaining time.Duration) g.Node {
	if message == "" {
		return nil
	}
	return h.Div(
		h.ID("logout-banner"),
		h.Class("alert alert-success text-center"),
		g.Attr("role", "status"),
		hx.Get("/shell?path=/"),
		hx.Trigger(fmt.Sprintf("load delay:%dms", remaining.Milliseconds())),
		hx.Target(Selector(AppID)),
		hx.Swap("outerHTML"),
		hx.PushURL("/"),
		g.Text(message),
	)
}
