package store

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"bookshelf-api/internal/models"
)

// SeedFile to format pliku z przykładowymi książkami
type SeedFile struct {
	Books []models.BookInput `yaml:"books"`
}

// ReadSeed parsuje plik YAML z książkami i waliduje każdy wpis
func ReadSeed(r io.Reader) ([]models.BookInput, error) {
	var seed SeedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&seed); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}

	for i, in := range seed.Books {
		if err := Validate(in); err != nil {
			return nil, fmt.Errorf("seed book #%d (%q): %w", i, in.Name, err)
		}
	}

	return seed.Books, nil
}

// LoadSeedFile wczytuje plik z dysku i dodaje wszystkie książki do magazynu
func LoadSeedFile(ctx context.Context, s *BookStore, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening seed file: %w", err)
	}
	defer f.Close()

	books, err := ReadSeed(f)
	if err != nil {
		return 0, err
	}

	for i, in := range books {
		if _, err := s.Create(ctx, in); err != nil {
			return i, fmt.Errorf("seeding book #%d (%q): %w", i, in.Name, err)
		}
	}

	return len(books), nil
}
