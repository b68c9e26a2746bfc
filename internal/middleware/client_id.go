package middleware

import (
	"log/slog"

	"github.com/fieldbase/admin/internal/audit"
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

// ClientIDKey is the echo context key holding the browser client id.
const ClientIDKey = "client_id"

// ClientID assigns every browser a stable random id kept in the named cookie
// session. The id keys the login guard and the rate limiter, and is attached
// to the request context for audit events. It must run after session.Middleware.
func ClientID(sessionName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := session.Get(sessionName, c)
			if err != nil {
				slog.Warn("Discarding unreadable session", "error", err)
			}

			id, _ := sess.Values[ClientIDKey].(string)
			if id == "" {
				id = uuid.NewString()
				sess.Values[ClientIDKey] = id
				if err := sess.Save(c.Request(), c.Response()); err != nil {
					slog.Error("Failed to save client id", "error", err)
				}
			}

			c.Set(ClientIDKey, id)
			c.SetRequest(c.Request().WithContext(audit.WithClient(c.Request().Context(), id)))
			return next(c)
		}
	}
}

// ClientIDFrom returns the client id assigned by ClientID.
func ClientIDFrom(c echo.Context) string {
	id, _ := c.Get(ClientIDKey).(string)
	return id
}
