package pages

import (
	"github.com/fieldbase/admin/internal/login"
	"github.com/fieldbase/admin/web/src/templates/partials"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// LoginPanel renders the unauthenticated #app: an optional banner above the
// login box. The password is never echoed back.
func LoginPanel(form login.Form, banner g.Node) g.Node {
	forgot := form.Mode == login.ModeForgotPassword
	return h.Div(
		h.ID(partials.AppID),
		banner,
		h.Div(
			h.Class("login-container"),
			h.Div(
				h.Class("login-box"),
				h.H2(h.Class("login-title"), g.Text("Welcome to FieldBase")),
				h.H3(h.Class("login-mode"), h.I(g.Text(form.Mode.Title()))),
				h.Form(
					h.ID("login-form"),
					hx.Post(form.Mode.Action()),
					hx.Target(partials.Selector(partials.AppID)),
					hx.Swap("outerHTML"),
					g.Attr("hx-disabled-elt", "find button[type='submit']"),
					formGroup("username", "Username",
						h.Input(h.Type("text"), h.ID("username"), h.Name("username"), h.Class("form-control"),
							h.Placeholder("Enter your username"), h.Value(form.Username)),
					),
					g.If(!forgot, formGroup("password", "Password",
						h.Input(h.Type("password"), h.ID("password"), h.Name("password"), h.Class("form-control"),
							h.Placeholder("Enter your password")),
					)),
					g.If(form.Error != "", h.Div(h.Class("text-danger"), g.Attr("role", "alert"), g.Text(form.Error))),
					g.If(form.Notice != "", h.Div(h.Class("text-success"), g.Attr("role", "status"), g.Text(form.Notice))),
					g.If(!forgot, h.Div(
						h.Class("form-check"),
						h.Input(h.Type("checkbox"), h.ID("rememberMe"), h.Name("remember_me"), h.Value("true"),
							h.Class("form-check-input"), g.If(form.RememberMe, h.Checked())),
						h.Label(h.For("rememberMe"), h.Class("form-check-label"), g.Text("Remember Me")),
					)),
					submitButton(form.Mode.SubmitLabel(), form.Mode.BusyLabel()),
				),
				h.Button(
					h.Type("button"),
					h.Class("btn btn-link"),
					hx.Get("/login/mode?mode="+form.Mode.Other().String()),
					hx.Include("#username"),
					hx.Target(partials.Selector(partials.AppID)),
					hx.Swap("outerHTML"),
					g.Text(form.Mode.ToggleLabel()),
				),
			),
		),
	)
}

func formGroup(id, label string, input g.Node) g.Node {
	return h.Div(
		h.Class("form-group"),
		h.Label(h.For(id), g.Text(label)),
		input,
	)
}

// submitButton swaps its label for busy while its form has a request in flight.
func submitButton(idle, busy string) g.Node {
	return h.Button(
		h.Type("submit"),
		h.Class("btn btn-primary"),
		h.Span(h.Class("idle-label"), g.Text(idle)),
		h.Span(h.Class("busy-label"), g.Text(busy)),
	)
}
