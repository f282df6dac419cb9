package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"postboard/app/config"
	"postboard/app/repositories"
	"postboard/app/routes"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

func serveCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the posts backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := cfg.NewLogger(os.Stderr)
			if err != nil {
				return err
			}

			db, err := repositories.Open(cfg.DBPath)
			if err != nil {
				return err
			}
			defer db.Close()

			ln, err := net.Listen("tcp", cfg.Addr)
			if err != nil {
				return fmt.Errorf("listen on %s: %w", cfg.Addr, err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := &http.Server{
				Handler:           routes.SetupRoutes(db, logger),
				ReadHeaderTimeout: 10 * time.Second,
			}
			logger.Info("starting posts backend", "addr", ln.Addr().String(), "db", cfg.DBPath)
			return serve(ctx, srv, ln, logger)
		},
	}
	cmd.Flags().StringVar(&cfg.DBPath, "db", cfg.DBPath, "badger database directory")
	cmd.Flags().StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	return cmd
}

// serve runs srv on ln until ctx ends, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down posts backend")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
