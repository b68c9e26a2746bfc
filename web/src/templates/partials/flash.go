package partials

import (
	"github.com/fieldbase/admin/internal/view"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Flashes renders the one-shot messages read from the flash session.
func Flashes(data view.FlashData) g.Node {
	if data.Empty() {
		return nil
	}
	return h.Div(
		h.Class("flashes"),
		g.Map(data.Error, func(msg string) g.Node {
			return h.Div(h.Class("alert alert-danger"), g.Text(msg))
		}),
	)
}
