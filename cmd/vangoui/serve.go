package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vango-go/vangoui/internal/preview"
	"github.com/vango-go/vangoui/pkg/ui"
)

func serveCmd() *cobra.Command {
	var (
		addr     string
		position string
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the component gallery server",
		Long: `Start the preview server hosting the component gallery.

The gallery renders every component in the kit and keeps a WebSocket
channel open for the live toast demo. Prometheus metrics are exposed
on /metrics.

Examples:
  vangoui serve
  vangoui serve --addr=:9000
  vangoui serve --position=top-right`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr, position, verbose)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8420", "Address to listen on")
	cmd.Flags().StringVarP(&position, "position", "P", "bottom-right", "Toast viewport position (top-left, top-right, bottom-left, bottom-right)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func runServe(addr, position string, verbose bool) error {
	pos, ok := ui.ParsePosition(position)
	if !ok {
		return fmt.Errorf("unknown position %q (valid: top-left, top-right, bottom-left, bottom-right)", position)
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	srv := preview.New(
		preview.WithAddr(addr),
		preview.WithLogger(logger),
		preview.WithPosition(pos),
	)

	// Stop on SIGINT/SIGTERM with a bounded drain window.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-errCh
	}
}
