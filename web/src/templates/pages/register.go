package pages

import (
	"github.com/fieldbase/admin/internal/domain"
	"github.com/fieldbase/admin/web/src/templates/partials"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// RegisterPanelID is the id the registration form swaps.
const RegisterPanelID = "register-panel"

// RegisterProps drives the user registration panel. User.Password is ignored.
type RegisterProps struct {
	User        domain.NewUser
	Error       string
	Notice      string
	SidebarOpen bool
}

// RegisterPanel renders the Add User form. The container is narrower while the
// sidebar is open.
func RegisterPanel(p RegisterProps) g.Node {
	width := "register-container wide"
	if p.SidebarOpen {
		width = "register-container narrow"
	}
	return h.Div(
		h.ID(RegisterPanelID),
		h.Class(width),
		h.H2(g.Text("Add User")),
		h.Form(
			hx.Post("/register"),
			hx.Target(partials.Selector(RegisterPanelID)),
			hx.Swap("outerHTML"),
			g.Attr("hx-disabled-elt", "find button[type='submit']"),
			textField("firstname", "First Name", "text", p.User.FirstName),
			textField("lastname", "Last Name", "text", p.User.LastName),
			textField("email", "Email", "email", p.User.Email),
			textField("username", "Username", "text", p.User.Username),
			textField("password", "Password", "password", ""),
			h.Div(
				h.Class("form-group"),
				h.Label(h.For("role"), g.Text("Role")),
				h.Select(
					h.ID("role"), h.Name("role"), h.Class("form-control"),
					h.Option(h.Value(""), g.Text("Select a role")),
					g.Map(domain.Roles, func(role string) g.Node {
						return h.Option(h.Value(role), g.If(p.User.Role == role, h.Selected()), g.Text(role))
					}),
				),
			),
			g.If(p.Error != "", h.Div(h.Class("text-danger"), g.Attr("role", "alert"), g.Text(p.Error))),
			g.If(p.Notice != "", h.Div(h.Class("text-success"), g.Attr("role", "status"), g.Text(p.Notice))),
			submitButton("Register", "Registering..."),
		),
	)
}

func textField(name, label, kind, value string) g.Node {
	return formGroup(name, label,
		h.Input(h.Type(kind), h.ID(name), h.Name(name), h.Class("form-control"), h.Value(value)),
	)
}
