package main

import (
	"Matrafl-Backend/cmd/config"
	"Matrafl-Backend/internal/scheduler"
	"Matrafl-Backend/internal/utils"
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server and the session purge job",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	db, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer log.Sync()

	services := config.NewServices(db, log)
	app, err := config.NewApp(services)
	if err != nil {
		return err
	}

	purger, err := scheduler.NewSessionPurger(
		services.Session,
		utils.SessionDays(),
		utils.GetConfig("SESSION_PURGE_SCHEDULE"),
		log,
	)
	if err != nil {
		return err
	}
	purger.Start()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + utils.GetConfig("APP_PORT")
		log.Info("server listening", zap.String("addr", addr))
		errCh <- app.Listen(addr)
	}()

	select {
	case err = <-errCh:
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	purger.Stop(shutdownCtx)
	if shutdownErr := app.ShutdownWithContext(shutdownCtx); shutdownErr != nil && err == nil {
		err = shutdownErr
	}
	return err
}
