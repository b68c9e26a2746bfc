package server

import (
	"github.com/fieldbase/admin/internal/handlers"
	"github.com/fieldbase/admin/internal/middleware"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	requireSession := middleware.RequireSession()
	rateLimiter := middleware.RateLimiter(middleware.DefaultRate)

	s.E.GET("/health", handlers.HealthGet)

	s.E.GET("/shell", s.shellHandler.ShellGet)
	s.E.POST("/sidebar/toggle", s.shellHandler.SidebarTogglePost, requireSession)
	s.E.POST("/sidebar/sections/:id/toggle", s.shellHandler.SectionTogglePost, requireSession)
	s.E.POST("/viewport", s.shellHandler.ViewportPost, requireSession, rateLimiter)

	s.E.GET("/login/mode", s.authHandler.LoginModeGet)
	s.E.POST("/login", s.authHandler.LoginPost)
	s.E.POST("/forgot-password", s.authHandler.ForgotPasswordPost)
	s.E.POST("/logout", s.authHandler.LogoutPost)

	s.E.POST(handlers.RegisterPath, s.registerHandler.RegisterPost, requireSession)

	// The default route and every menu path boot the shell. The menu may be
	// reloaded at runtime, so paths are checked per request.
	s.E.GET("/", s.shellHandler.BootGet)
	s.E.GET("/*", s.shellHandler.BootGet)
}
