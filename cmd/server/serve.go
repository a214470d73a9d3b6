package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"bookshelf-api/internal/config"
	"bookshelf-api/internal/handlers"
	"bookshelf-api/internal/store"
)

const shutdownTimeout = 10 * time.Second

type serveOptions struct {
	host string
	port int
	seed string
}

func newServeCommand(root *rootOptions) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Uruchamia serwer HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			opts.apply(cmd, &cfg)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runServer(ctx, cfg)
		},
	}

	cmd.Flags().StringVar(&opts.host, "host", "", "adres nasłuchiwania (domyślnie HOST lub localhost)")
	cmd.Flags().IntVar(&opts.port, "port", 0, "port (domyślnie PORT lub 9000)")
	cmd.Flags().StringVar(&opts.seed, "seed", "", "plik YAML z książkami ładowanymi przy starcie")

	return cmd
}

// apply nadpisuje konfigurację flagami podanymi jawnie
func (o *serveOptions) apply(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("host") {
		cfg.Host = o.host
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = o.port
	}
	if cmd.Flags().Changed("seed") {
		cfg.SeedFile = o.seed
	}
}

// newHandler tworzy magazyn, ładuje dane startowe i składa router
func newHandler(ctx context.Context, cfg config.Config) (http.Handler, error) {
	books := store.New()

	if cfg.SeedFile != "" {
		n, err := store.LoadSeedFile(ctx, books, cfg.SeedFile)
		if err != nil {
			return nil, err
		}
		slog.Info("załadowano książki startowe", "file", cfg.SeedFile, "count", n)
	}

	return handlers.NewRouter(handlers.NewBooksHandler(books), handlers.RouterOptions{
		CORSOrigins: cfg.CORSOrigins,
		Logger:      slog.Default(),
	}), nil
}

func runServer(ctx context.Context, cfg config.Config) error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("nieprawidłowy port %d", cfg.Port)
	}

	handler, err := newHandler(ctx, cfg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("serwer uruchomiony", "addr", "http://"+srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("nie można uruchomić serwera: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("zatrzymywanie serwera")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("błąd zatrzymywania serwera: %w", err)
	}
	return nil
}
