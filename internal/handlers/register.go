package handlers

import (
	"context"
	"net/http"

	"github.com/fieldbase/admin/internal/backend"
	"github.com/fieldbase/admin/internal/clientstore"
	"github.com/fieldbase/admin/internal/domain"
	"github.com/fieldbase/admin/internal/middleware"
	"github.com/fieldbase/admin/web/src/templates/pages"
	"github.com/labstack/echo/v4"
)

// RegisterPath is the route of the Add User panel.
const RegisterPath = "/register"

// Registrar submits new users to the backend.
type Registrar interface {
	RegisterUser(ctx context.Context, token string, user domain.NewUser) (backend.Reply, error)
}

// RegisterHandler handles the Add User form.
type RegisterHandler struct {
	app       *App
	registrar Registrar
}

// NewRegisterHandler creates a new RegisterHandler.
func NewRegisterHandler(app *App, registrar Registrar) *RegisterHandler {
	return &RegisterHandler{app: app, registrar: registrar}
}

// RegisterPost validates the form and registers the user with the session's
// token. The panel is re-rendered with the outcome; the password never is.
func (h *RegisterHandler) RegisterPost(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)
	_, st := h.app.load(c)

	var user domain.NewUser
	if err := c.Bind(&user); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid registration form")
	}

	props := pages.RegisterProps{User: user, SidebarOpen: st.Sidebar.Open}
	props.User.Password = ""

	if err := c.Validate(&user); err != nil {
		logger.Info("Rejected registration form", "error", err)
		props.Error = domain.MsgRegistrationInvalid
		return c.Render(http.StatusOK, "", pages.RegisterPanel(props))
	}

	token, _ := clientstore.NewCookieStore(c).Get(domain.StorageKeyToken)
	reply, err := h.registrar.RegisterUser(ctx, token, user)
	switch {
	case err != nil:
		logger.Error("Error during registration", "error", err)
		props.Error = domain.MsgServerError
	case !reply.OK():
		logger.Info("Registration rejected", "status", reply.Status, "username", user.Username)
		props.Error = domain.OrDefault(reply.Message, domain.MsgRegistrationFailed)
	default:
		logger.Info("User registered", "username", user.Username, "role", user.Role)
		props = pages.RegisterProps{Notice: domain.MsgRegistered, SidebarOpen: st.Sidebar.Open}
	}
	return c.Render(http.StatusOK, "", pages.RegisterPanel(props))
}
