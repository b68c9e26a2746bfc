package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fieldbase/admin/internal/audit"
	"github.com/fieldbase/admin/internal/navigation"
	"github.com/fieldbase/admin/internal/pubsub"
	"github.com/fieldbase/admin/internal/server"
	"github.com/samber/do/v2"
)

// Run starts the audit logger and the menu watcher, then serves HTTP until
// ctx is canceled.
func Run(ctx context.Context, i do.Injector) error {
	srv, err := do.Invoke[*server.Server](i)
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}
	tel := do.MustInvoke[*Telemetry](i)
	defer tel.Shutdown()

	bus := do.MustInvoke[pubsub.Bus](i)
	defer func() {
		if err := bus.Close(); err != nil {
			slog.Error("Failed to close event bus", "error", err)
		}
	}()
	if err := audit.Subscribe(ctx, bus, slog.Default()); err != nil {
		return err
	}

	menus := do.MustInvoke[*navigation.Provider](i)
	go func() {
		if err := menus.Watch(ctx); err != nil {
			slog.Error("Navigation watcher stopped", "error", err)
		}
	}()

	return srv.Start(ctx)
}
