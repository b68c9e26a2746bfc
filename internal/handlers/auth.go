package handlers

import (
	"context"
	"net/http"

	"github.com/fieldbase/admin/internal/clientstore"
	"github.com/fieldbase/admin/internal/domain"
	"github.com/fieldbase/admin/internal/login"
	"github.com/fieldbase/admin/internal/middleware"
	"github.com/fieldbase/admin/internal/shell"
	"github.com/labstack/echo/v4"
)

// AuthHandler handles the login panel submissions and logout.
type AuthHandler struct {
	app   *App
	panel *login.Panel
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(app *App, panel *login.Panel) *AuthHandler {
	return &AuthHandler{app: app, panel: panel}
}

// LoginModeGet switches the login panel between login and forgot password,
// carrying over whatever was typed into the username field.
func (h *AuthHandler) LoginModeGet(c echo.Context) error {
	store := clientstore.NewCookieStore(c)
	form := login.Initial(login.ParseMode(c.QueryParam("mode")), store)
	if name := c.QueryParam("username"); name != "" {
		form.Username = name
	}
	_, st := h.app.load(c)
	return h.app.render(c, st, shell.DefaultRoute, form)
}

// LoginPost exchanges credentials for a token. On success the shell for the
// default route replaces the login panel.
func (h *AuthHandler) LoginPost(c echo.Context) error {
	var creds login.Credentials
	if err := c.Bind(&creds); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid login form")
	}
	return h.submit(c, creds)
}

// ForgotPasswordPost requests a password reset email.
func (h *AuthHandler) ForgotPasswordPost(c echo.Context) error {
	var req login.ResetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid password reset form")
	}
	return h.submit(c, req)
}

func (h *AuthHandler) submit(c echo.Context, sub login.Submission) error {
	ctx := c.Request().Context()
	store := clientstore.NewCookieStore(c)
	sess, st := h.app.load(c)

	onSuccess := func(ctx context.Context, id domain.Identity) error {
		var err error
		st, err = h.app.shell.LoginSucceeded(ctx, store, st, id)
		return err
	}
	form := h.panel.Submit(ctx, middleware.ClientIDFrom(c), store, sub, onSuccess)

	if form.Succeeded {
		if err := h.app.save(c, sess, st); err != nil {
			return err
		}
		c.Response().Header().Set("HX-Push-Url", shell.DefaultRoute)
	}
	return h.app.render(c, st, shell.DefaultRoute, form)
}

// LogoutPost clears the token and shows the login panel under the logout banner.
func (h *AuthHandler) LogoutPost(c echo.Context) error {
	ctx := c.Request().Context()
	store := clientstore.NewCookieStore(c)
	sess, st := h.app.load(c)

	st, err := h.app.shell.Logout(ctx, store, st)
	if err != nil {
		return err
	}
	if err := h.app.save(c, sess, st); err != nil {
		return err
	}
	middleware.FromContext(ctx).Info("User logged out")
	return h.app.render(c, st, shell.DefaultRoute, login.Initial(login.ModeLogin, store))
}
