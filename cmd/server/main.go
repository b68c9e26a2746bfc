package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fieldbase/admin/internal/app"
	"github.com/fieldbase/admin/internal/config"
	"github.com/fieldbase/admin/internal/logging"
	"github.com/spf13/afero"
)

func main() {
	logging.New()
	cfg := config.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	injector := app.New(cfg, afero.NewOsFs())
	if err := app.Run(ctx, injector); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
