package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"example.com/notes-store/internal/notes"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose the note store over HTTP",
	Long:  `serve starts an HTTP server backed by a fresh in-memory store. Notes are lost on exit.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		store := notes.NewStore(logger)
		srv := &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           notes.NewHandlers(store, logger).Routes(),
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info("notes API listening", zap.String("addr", cfg.HTTPAddr))
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		logger.Info("shutting down", zap.Int("notes", store.Len()))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&cfg.HTTPAddr, "addr", cfg.HTTPAddr, "listen address")
	rootCmd.AddCommand(serveCmd)
}
