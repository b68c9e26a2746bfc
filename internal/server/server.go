package server

import (
	"net/http"

	"github.com/fieldbase/admin/internal/config"
	"github.com/fieldbase/admin/internal/handlers"
	"github.com/fieldbase/admin/internal/login"
	"github.com/fieldbase/admin/internal/middleware"
	"github.com/fieldbase/admin/internal/navigation"
	"github.com/fieldbase/admin/internal/rendering"
	"github.com/fieldbase/admin/internal/shell"
	"github.com/fieldbase/admin/web"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Dependencies holds the services the HTTP server is built from.
type Dependencies struct {
	Config    config.Provider
	Shell     *shell.Shell
	Menus     *navigation.Provider
	Panel     *login.Panel
	Registrar handlers.Registrar
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	E               *echo.Echo
	Cfg             config.Provider
	shellHandler    *handlers.ShellHandler
	authHandler     *handlers.AuthHandler
	registerHandler *handlers.RegisterHandler
}

// New creates a new Server instance with its middleware chain. Routes are
// added by RegisterRoutes.
func New(deps Dependencies) *Server {
	app := handlers.NewApp(deps.Shell, deps.Menus)

	e := echo.New()
	e.HideBanner = true
	e.Renderer = rendering.NewUniversalRenderer()
	e.Validator = handlers.NewValidator()
	setupErrorHandling(e)

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())

	store := sessions.NewCookieStore([]byte(deps.Config.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))
	e.Use(middleware.ClientID(shell.SessionName))
	e.Use(middleware.Logger)

	e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	return &Server{
		E:               e,
		Cfg:             deps.Config,
		shellHandler:    handlers.NewShellHandler(app),
		authHandler:     handlers.NewAuthHandler(app, deps.Panel),
		registerHandler: handlers.NewRegisterHandler(app, deps.Registrar),
	}
}
