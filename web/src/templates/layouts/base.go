// Package layouts holds the document shell every full page renders into.
package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/fieldbase/admin/internal/view"
	"github.com/fieldbase/admin/web/src/templates/partials"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// HTMXSource is the htmx build loaded by every page.
const HTMXSource = "https://unpkg.com/htmx.org@2.0.4"

// Base wraps content in the HTML document with the stylesheet, htmx and the
// pending flash messages.
func Base(title string, flashes view.FlashData, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		doc := h.Doctype(
			h.HTML(
				h.Lang("en"),
				h.Head(
					h.Meta(h.Charset("utf-8")),
					h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
					h.TitleEl(g.Text(CalculateTitle(title))),
					h.Link(h.Rel("stylesheet"), h.Href("/static/fieldbase.css")),
					h.Script(h.Src(HTMXSource), h.Defer()),
				),
				h.Body(
					partials.Flashes(flashes),
					view.Node(ctx, content),
				),
			),
		)
		return doc.Render(w)
	})
}
