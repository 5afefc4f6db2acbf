package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/timerod/timerod-backend-go/internal/config"
	"github.com/timerod/timerod-backend-go/internal/pkg/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Error loading config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})).
		With(slog.String("app", cfg.App.Name+"-migrate")))

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	applied, err := database.Migrate(ctx, db)
	if err != nil {
		slog.Error("Migration failed", "error", err)
		db.Close()
		os.Exit(1)
	}
	slog.Info("Migrations complete", "applied", len(applied))
}
