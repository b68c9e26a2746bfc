// Package app wires the admin server's services together.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fieldbase/admin/internal/audit"
	"github.com/fieldbase/admin/internal/backend"
	"github.com/fieldbase/admin/internal/config"
	"github.com/fieldbase/admin/internal/login"
	"github.com/fieldbase/admin/internal/navigation"
	"github.com/fieldbase/admin/internal/pubsub"
	"github.com/fieldbase/admin/internal/server"
	"github.com/fieldbase/admin/internal/shell"
	"github.com/fieldbase/admin/internal/telemetry"
	"github.com/filecoin-project/go-clock"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
	"go.opentelemetry.io/otel/trace"
)

// Telemetry is the tracer and the function that flushes it.
type Telemetry struct {
	Tracer   trace.Tracer
	Shutdown func()
}

// New builds the injector. Services are created lazily on first invoke.
// fs is where the navigation file is read from.
func New(cfg config.Provider, fs afero.Fs) *do.RootScope {
	i := do.New()

	do.ProvideValue(i, cfg)
	do.ProvideValue(i, fs)
	do.ProvideValue[clock.Clock](i, clock.New())

	do.Provide(i, provideTelemetry)
	do.Provide(i, provideBackend)
	do.Provide(i, provideBus)
	do.Provide(i, provideRecorder)
	do.Provide(i, provideMenus)
	do.Provide(i, provideShell)
	do.Provide(i, providePanel)
	do.Provide(i, provideServer)

	return i
}

func provideTelemetry(i do.Injector) (*Telemetry, error) {
	cfg := do.MustInvoke[config.Provider](i)
	tracer, shutdown, err := telemetry.Setup(context.Background(), cfg.GetTracing())
	if err != nil {
		return nil, fmt.Errorf("failed to set up tracing: %w", err)
	}
	return &Telemetry{Tracer: tracer, Shutdown: shutdown}, nil
}

func provideBackend(i do.Injector) (*backend.Client, error) {
	cfg := do.MustInvoke[config.Provider](i)
	tel := do.MustInvoke[*Telemetry](i)
	return backend.NewClient(cfg.GetAPIBaseURL(), cfg.GetBackendTimeout(), backend.WithTracer(tel.Tracer)), nil
}

func provideBus(i do.Injector) (pubsub.Bus, error) {
	return pubsub.NewWatermillBus(do.MustInvoke[*Telemetry](i).Tracer), nil
}

func provideRecorder(i do.Injector) (*audit.Recorder, error) {
	return audit.NewRecorder(do.MustInvoke[pubsub.Bus](i)), nil
}

func provideMenus(i do.Injector) (*navigation.Provider, error) {
	cfg := do.MustInvoke[config.Provider](i)
	path := cfg.GetNavigationFile()
	if path == "" {
		return navigation.NewStaticProvider(navigation.DefaultMenu()), nil
	}
	p, err := navigation.NewFileProvider(do.MustInvoke[afero.Fs](i), path)
	if err != nil {
		return nil, fmt.Errorf("failed to load navigation menu: %w", err)
	}
	slog.Info("Navigation menu loaded", "path", path)
	return p, nil
}

func provideShell(i do.Injector) (*shell.Shell, error) {
	cfg := do.MustInvoke[config.Provider](i)
	return shell.New(do.MustInvoke[*backend.Client](i), shell.Options{
		Breakpoint:     cfg.GetSidebarBreakpoint(),
		BannerDuration: cfg.GetLogoutBannerDuration(),
		Clock:          do.MustInvoke[clock.Clock](i),
		Recorder:       do.MustInvoke[*audit.Recorder](i),
	}), nil
}

func providePanel(i do.Injector) (*login.Panel, error) {
	return login.NewPanel(do.MustInvoke[*backend.Client](i), login.NewGuard()), nil
}

func provideServer(i do.Injector) (*server.Server, error) {
	client := do.MustInvoke[*backend.Client](i)
	srv := server.New(server.Dependencies{
		Config:    do.MustInvoke[config.Provider](i),
		Shell:     do.MustInvoke[*shell.Shell](i),
		Menus:     do.MustInvoke[*navigation.Provider](i),
		Panel:     do.MustInvoke[*login.Panel](i),
		Registrar: client,
	})
	srv.RegisterRoutes()
	return srv, nil
}
