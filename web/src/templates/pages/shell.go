package pages

import (
	"fmt"
	"net/url"

	"github.com/fieldbase/admin/web/src/templates/partials"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// ShellProps is everything the authenticated #app renders from.
type ShellProps struct {
	Sidebar       partials.SidebarProps
	LoggingOut    bool
	ContentMargin int
	Content       g.Node
}

// Shell renders the authenticated #app: navbar, sidebar and the routed panel.
// A hidden reporter posts the viewport width on resize.
func Shell(p ShellProps) g.Node {
	return h.Div(
		h.ID(partials.AppID),
		h.Class("app-shell"),
		partials.Navbar(p.Sidebar.Menu.Title, p.LoggingOut),
		h.Div(
			h.Class("app-body"),
			partials.Sidebar(p.Sidebar),
			h.Main(
				h.ID(partials.ContentID),
				h.Class("content"),
				g.Attr("style", fmt.Sprintf("margin-left: %dpx", p.ContentMargin)),
				p.Content,
			),
		),
		h.Div(
			h.Class("viewport-reporter"),
			g.Attr("hidden"),
			hx.Post("/viewport?"+url.Values{"path": {p.Sidebar.CurrentPath}}.Encode()),
			hx.Trigger("resize from:window delay:250ms"),
			hx.Vals("js:{width: window.innerWidth}"),
			hx.Target(partials.Selector(partials.AppID)),
			hx.Swap("outerHTML"),
		),
	)
}

// Welcome is the panel of the default route.
func Welcome(name string) g.Node {
	return h.Div(
		h.Class("panel welcome"),
		h.H1(g.Text("Welcome, "+name)),
		h.P(g.Text("Choose a section from the sidebar to get started.")),
	)
}

// Placeholder is shown for menu paths that have no panel yet.
func Placeholder(title string) g.Node {
	return h.Div(
		h.Class("panel placeholder"),
		h.H1(g.Text(title)),
		h.P(g.Text("This section is not available yet.")),
	)
}
