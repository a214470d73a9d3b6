package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"bookshelf-api/internal/models"
)

// IDLength to długość identyfikatora nadawanego nowym książkom
const IDLength = 16

// Błędy zwracane przez BookStore
var (
	ErrMissingName              = errors.New("name is required")
	ErrReadPageExceedsPageCount = errors.New("readPage is greater than pageCount")
	ErrNotFound                 = errors.New("book not found")
	ErrInternal                 = errors.New("internal store failure")
)

// BookStore przechowuje książki w pamięci procesu, w kolejności dodania
type BookStore struct {
	mu    sync.RWMutex
	books []models.Book
	now   func() time.Time
	newID func() (string, error)
}

// Option konfiguruje BookStore
type Option func(*BookStore)

// WithClock podmienia źródło czasu (przydatne w testach)
func WithClock(now func() time.Time) Option {
	return func(s *BookStore) {
		s.now = now
	}
}

// WithIDGenerator podmienia generator identyfikatorów
func WithIDGenerator(gen func() (string, error)) Option {
	return func(s *BookStore) {
		s.newID = gen
	}
}

// New tworzy pusty BookStore
func New(opts ...Option) *BookStore {
	s := &BookStore{
		books: make([]models.Book, 0),
		now:   time.Now,
		newID: func() (string, error) {
			return gonanoid.New(IDLength)
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Validate sprawdza dane wejściowe w kolejności: nazwa, potem strony
func Validate(in models.BookInput) error {
	if in.Name == "" {
		return ErrMissingName
	}
	if in.ReadPage > in.PageCount {
		return ErrReadPageExceedsPageCount
	}
	return nil
}

// Create dodaje nową książkę i zwraca jej ID
func (s *BookStore) Create(ctx context.Context, in models.BookInput) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := Validate(in); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.uniqueID()
	if err != nil {
		return "", err
	}

	now := s.timestamp()
	book := models.Book{
		ID:         id,
		InsertedAt: now,
		UpdatedAt:  now,
	}
	book.Apply(in)

	s.books = append(s.books, book)

	// Upewnij się, że książka faktycznie trafiła do kolekcji
	if s.indexOf(id) == -1 {
		return "", fmt.Errorf("book %s missing after insert: %w", id, ErrInternal)
	}

	return id, nil
}

// List zwraca skróconą listę książek zgodnych z filtrem
func (s *BookStore) List(ctx context.Context, filter ListFilter) ([]models.BookSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	match := filter.matcher()
	result := make([]models.BookSummary, 0, len(s.books))
	for i := range s.books {
		if match == nil || match(&s.books[i]) {
			result = append(result, s.books[i].Summarize())
		}
	}

	if match != nil && len(result) == 0 {
		return nil, ErrNotFound
	}

	return result, nil
}

// Get pobiera pełny rekord książki po ID
func (s *BookStore) Get(ctx context.Context, id string) (models.Book, error) {
	if err := ctx.Err(); err != nil {
		return models.Book{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i == -1 {
		return models.Book{}, ErrNotFound
	}
	return s.books[i], nil
}

// Update nadpisuje pola istniejącej książki.
// Walidacja odbywa się przed sprawdzeniem, czy książka istnieje.
func (s *BookStore) Update(ctx context.Context, id string, in models.BookInput) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := Validate(in); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i == -1 {
		return ErrNotFound
	}

	book := &s.books[i]
	book.Apply(in)
	book.UpdatedAt = s.timestamp()

	return nil
}

// Delete usuwa książkę, zachowując kolejność pozostałych
func (s *BookStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i == -1 {
		return ErrNotFound
	}

	s.books = append(s.books[:i], s.books[i+1:]...)
	return nil
}

// Len zwraca liczbę książek w kolekcji
func (s *BookStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.books)
}

func (s *BookStore) indexOf(id string) int {
	for i := range s.books {
		if s.books[i].ID == id {
			return i
		}
	}
	return -1
}

// uniqueID wymaga trzymanej blokady zapisu
func (s *BookStore) uniqueID() (string, error) {
	for attempt := 0; attempt < 3; attempt++ {
		id, err := s.newID()
		if err != nil {
			return "", fmt.Errorf("generating book id: %v: %w", err, ErrInternal)
		}
		if strings.TrimSpace(id) != "" && s.indexOf(id) == -1 {
			return id, nil
		}
	}
	return "", fmt.Errorf("could not generate unique book id: %w", ErrInternal)
}

// Znaczniki czasu w UTC z dokładnością do milisekund
func (s *BookStore) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}
