package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"seaport/cmd"
	"seaport/internal/adapters/out/postgres"

	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	root := &cobra.Command{
		Use:           "seaport",
		Short:         "Port operations engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (default: ./config.yaml if present)")
	root.AddCommand(newServeCommand(), newMigrateCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newServeCommand() *cobra.Command {
	var migrate bool

	command := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the background jobs",
		RunE: func(c *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, migrate)
		},
	}
	command.Flags().BoolVar(&migrate, "migrate", true, "migrate the schema before serving")

	return command
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := cmd.LoadConfig(cfgPath)
			if err != nil {
				return err
			}
			logger := cmd.NewLogger(cfg.Log, os.Stdout)

			db, err := postgres.NewConnection(cfg.Database)
			if err != nil {
				return err
			}
			defer func() {
				_ = postgres.Close(db)
			}()

			if err = postgres.AutoMigrate(db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			logger.Info("Schema migrated", "database", cfg.Database.Type)
			return nil
		},
	}
}

func serve(ctx context.Context, migrate bool) error {
	cfg, err := cmd.LoadConfig(cfgPath)
	if err != nil {
		return err
	}
	logger := cmd.NewLogger(cfg.Log, os.Stdout)
	slog.SetDefault(logger)

	db, err := postgres.NewConnection(cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := postgres.Close(db); closeErr != nil {
			logger.Error("Failed to close database", "error", closeErr)
		}
	}()

	if migrate {
		if err = postgres.AutoMigrate(db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	app, err := cmd.NewCompositionRoot(cfg, db, logger)
	if err != nil {
		return err
	}
	if err = app.Bootstrap(ctx); err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e := app.CreateRouter()
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "address", cfg.HTTP.Address)
		if startErr := e.Start(cfg.HTTP.Address); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			serveErr <- startErr
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
