package middleware

import (
	"net/http"

	"github.com/fieldbase/admin/internal/clientstore"
	"github.com/fieldbase/admin/internal/domain"
	"github.com/fieldbase/admin/internal/shell"
	"github.com/fieldbase/admin/internal/view"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

// RequireSession protects routes that need an authenticated session. A request
// passes when the session is marked logged in and a token is stored. Anything
// else is sent back to the root route with an expiry flash; htmx requests get
// an HX-Redirect header instead of a 303.
func RequireSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, _ := session.Get(shell.SessionName, c)
			st := shell.LoadState(sess)

			_, hasToken := clientstore.NewCookieStore(c).Get(domain.StorageKeyToken)
			if st.LoggedIn && hasToken {
				return next(c)
			}

			FromContext(c.Request().Context()).Info("Rejected request without a session", "path", c.Path())
			view.SetFlashError(c, domain.MsgSessionExpired)
			if c.Request().Header.Get("HX-Request") == "true" {
				c.Response().Header().Set("HX-Redirect", shell.DefaultRoute)
				return c.NoContent(http.StatusNoContent)
			}
			return c.Redirect(http.StatusSeeOther, shell.DefaultRoute)
		}
	}
}
