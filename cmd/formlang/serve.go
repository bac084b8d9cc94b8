package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/aretw0/formlang"
	"github.com/aretw0/formlang/internal/cli"
	"github.com/aretw0/formlang/internal/presentation/tui"
	httpAdapter "github.com/aretw0/formlang/pkg/adapters/http"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Serves every operation as POST /operations/<name> with JSON bodies,
plus /healthz, /openapi.yaml, /swagger and (unless disabled) /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := appConfig.HTTP.Addr
		if cmd.Flags().Changed("addr") {
			addr, _ = cmd.Flags().GetString("addr")
		}

		rt, err := newRuntime(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.Close()

		opts := []httpAdapter.Option{httpAdapter.WithLogger(rt.Logger)}
		if appConfig.HTTP.Metrics {
			opts = append(opts, httpAdapter.WithMetrics(rt.Registry))
		}
		srv := &http.Server{
			Addr:              addr,
			Handler:           httpAdapter.NewHandler(rt.Engine, opts...),
			ReadHeaderTimeout: 10 * time.Second,
		}

		if tui.IsInteractive(os.Stderr) {
			tui.PrintBanner(os.Stderr, formlang.Version)
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			rt.Logger.Info("Starting formlang server", "addr", srv.Addr)
			fmt.Fprintf(os.Stderr, "Starting formlang server on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("server error: %w", err)

		case <-cmd.Context().Done():
			if sc, ok := cmd.Context().(*cli.SignalContext); ok && sc.Signal() != nil {
				fmt.Fprintf(os.Stderr, "\nStart shutdown... Signal: %v\n", sc.Signal())
			}

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			// Asking listener to shut down and shed load.
			if err := srv.Shutdown(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Fprintf(os.Stderr, "Error killing server: %v\n", err)
				}
			}
			fmt.Fprintln(os.Stderr, "formlang server stopped gracefully")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "", "Address to listen on (default from config, :8080)")
}
