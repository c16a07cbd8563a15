package main

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/arko-chat/webshare/internal/bridge"
	"github.com/arko-chat/webshare/internal/cli"
	"github.com/arko-chat/webshare/internal/config"
	"github.com/arko-chat/webshare/internal/server"
	"github.com/arko-chat/webshare/internal/sharesheet"
	"github.com/arko-chat/webshare/internal/webshare"
	"github.com/arko-chat/webshare/internal/webview"
)

const shutdownTimeout = 5 * time.Second

func newServeCommand(verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Open the app window with navigator.share wired to the desktop share plugin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, slogger, err := cli.LoadConfig(*verbose)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg, slogger)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config, slogger *slog.Logger) error {
	reg := bridge.NewRegistry()
	reg.MustRegister(webshare.Target, sharesheet.New(slogger))

	srv, err := server.Start(cfg.ListenAddr, reg, slogger, cfg.StartURL)
	if err != nil {
		return err
	}

	startURL := cfg.StartURL
	if startURL == "" {
		startURL = srv.URL()
	}

	host := webview.NewHost(srv.Shares, slogger)
	closed := make(chan struct{})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Wait)
	g.Go(func() error {
		select {
		case <-gctx.Done():
			host.Close()
		case <-closed:
		}
		return nil
	})

	// The window owns the calling goroutine, which must be the main thread.
	runErr := host.Run(ctx, webview.Options{
		URL:    startURL,
		Debug:  cfg.Debug,
		Width:  cfg.Width,
		Height: cfg.Height,
	})
	close(closed)
	slogger.Info("window closed, shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slogger.Error("server shutdown failed", "err", err)
	}

	return errors.Join(runErr, g.Wait())
}
