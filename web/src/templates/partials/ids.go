// Package partials holds the fragments shared by the shell pages.
package partials

// Element ids targeted by htmx swaps.
const (
	AppID     = "app"
	SidebarID = "sidebar"
	ContentID = "content"
)

// Selector returns the CSS id selector for id.
func Selector(id string) string {
	return "#" + id
}
