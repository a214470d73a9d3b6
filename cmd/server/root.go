package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"bookshelf-api/internal/config"
)

// rootOptions to flagi wspólne dla wszystkich komend
type rootOptions struct {
	envFile string
	verbose bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	serve := newServeCommand(opts)

	cmd := &cobra.Command{
		Use:          "bookshelf-api",
		Short:        "Bookshelf API - półka z książkami w pamięci",
		Long:         "Serwer HTTP przechowujący książki w pamięci procesu (dodawanie, lista, szczegóły, edycja, usuwanie).",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         serve.RunE,
	}

	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "plik ze zmiennymi środowiskowymi")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "szczegółowe logi")

	// Flagi serve dostępne także bez podkomendy
	cmd.Flags().AddFlagSet(serve.Flags())

	cmd.AddCommand(serve)
	cmd.AddCommand(newSeedCommand())

	return cmd
}

// loadConfig wczytuje konfigurację i ustawia domyślny logger
func (o *rootOptions) loadConfig() (config.Config, error) {
	cfg, err := config.Load(o.envFile)
	if err != nil {
		return config.Config{}, err
	}
	if o.verbose {
		cfg.LogLevel = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})
	slog.SetDefault(slog.New(handler))

	return cfg, nil
}
