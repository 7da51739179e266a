package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	deliveryhttp "launchpool/internal/delivery/http"
)

const shutdownTimeout = 10 * time.Second

func serveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard JSON API",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	cmd.Flags().String("listen", ":8080", "listen address")
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signalContext()
	defer stop()

	a, err := newChainApp(ctx, cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	e := deliveryhttp.NewServer(a.service, a.logger)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("http server start", zap.String("listen", a.cfg.Listen))
		if err := e.Start(a.cfg.Listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	a.logger.Info("http server stop")
	return e.Shutdown(shutdownCtx)
}
