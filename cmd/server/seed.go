package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bookshelf-api/internal/store"
)

func newSeedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Operacje na plikach z książkami startowymi",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "validate <file>",
		Short: "Sprawdza plik YAML z książkami bez uruchamiania serwera",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			books, err := store.ReadSeed(f)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d książek OK\n", args[0], len(books))
			return nil
		},
	})

	return cmd
}
