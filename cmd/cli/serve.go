package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recipe-service/cmd/config"
	"recipe-service/internal/observability"
	"recipe-service/internal/utils"

	"github.com/spf13/cobra"
)

func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "run migrations before serving")

	return cmd
}

func runServe(ctx context.Context, migrate bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	shutdown := observability.InitOTel(ctx, log)
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdown(sctx)
	}()

	db, err := config.ConnectDB()
	if err != nil {
		return err
	}
	if migrate {
		if err := runMigrations(db, log); err != nil {
			return err
		}
	}

	app, err := config.NewApp(db, log)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(":" + utils.GetConfig("APP_PORT"))
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	select {
	case err := <-errCh:
		return err
	case s := <-sig:
		log.Info("shutting down", "signal", s.String())
		return app.ShutdownWithTimeout(10 * time.Second)
	}
}
