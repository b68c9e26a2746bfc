package partials

import (
	"fmt"
	"net/url"

	"github.com/fieldbase/admin/internal/navigation"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// SidebarProps is everything the sidebar renders from.
type SidebarProps struct {
	Menu        navigation.Menu
	State       navigation.Sidebar
	CurrentPath string
	DisplayName string
}

// Sidebar renders the fixed navigation panel. Section links only render while
// the panel is open and their section is expanded.
func Sidebar(p SidebarProps) g.Node {
	class := "sidebar"
	if !p.State.Open {
		class += " collapsed"
	}
	return h.Aside(
		h.ID(SidebarID),
		h.Class(class),
		g.Attr("style", fmt.Sprintf("width: %dpx", p.State.Width())),
		sidebarToggle(p),
		g.If(p.State.Open, g.Group{
			h.H2(h.Class("sidebar-heading"), g.Text(p.Menu.Title)),
			h.P(h.Class("sidebar-welcome"), g.Text("Welcome, "+p.DisplayName)),
		}),
		h.Div(
			h.Class("sidebar-sections"),
			g.Map(p.Menu.Sections, func(s navigation.Section) g.Node {
				return sidebarSection(p, s)
			}),
		),
	)
}

func sidebarToggle(p SidebarProps) g.Node {
	arrow := "→"
	label := "Open sidebar"
	if p.State.Open {
		arrow = "←"
		label = "Collapse sidebar"
	}
	return h.Button(
		h.Type("button"),
		h.Class("sidebar-toggle"),
		g.Attr("aria-label", label),
		hx.Post("/sidebar/toggle?"+pathQuery(p.CurrentPath)),
		hx.Target(Selector(AppID)),
		hx.Swap("outerHTML"),
		g.Text(arrow),
	)
}

func sidebarSection(p SidebarProps, s navigation.Section) g.Node {
	expanded := p.State.Expanded(s.ID)
	class := "section-header"
	if expanded {
		class += " expanded"
	}
	return h.Div(
		h.Class("sidebar-section"),
		h.Div(
			h.Class(class),
			g.Attr("aria-expanded", fmt.Sprint(expanded)),
			hx.Post(fmt.Sprintf("/sidebar/sections/%s/toggle?%s", url.PathEscape(s.ID), pathQuery(p.CurrentPath))),
			hx.Target(Selector(SidebarID)),
			hx.Swap("outerHTML"),
			g.If(p.State.Open, g.Text(s.Label)),
		),
		g.If(p.State.ShowLinks(s.ID), h.Ul(
			h.Class("section-links"),
			g.Map(s.Links, func(l navigation.Link) g.Node {
				return h.Li(NavLink(l, p.CurrentPath))
			}),
		)),
	)
}

// NavLink renders a menu link that swaps the shell for its path and pushes
// the path onto the history. It stays a plain link without JavaScript.
func NavLink(l navigation.Link, currentPath string) g.Node {
	active := navigation.IsActive(l.Path, currentPath)
	class := "section-link"
	if active {
		class += " active"
	}
	return h.A(
		h.Href(l.Path),
		h.Class(class),
		g.If(active, g.Attr("aria-current", "page")),
		hx.Get("/shell?"+pathQuery(l.Path)),
		hx.Target(Selector(AppID)),
		hx.Swap("outerHTML"),
		hx.PushURL(l.Path),
		g.Text(l.Label),
	)
}

func pathQuery(path string) string {
	return url.Values{"path": {path}}.Encode()
}
