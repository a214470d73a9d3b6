package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"bookshelf-api/internal/models"
	"bookshelf-api/internal/store"
)

// MaxBodyBytes ogranicza rozmiar treści żądania
const MaxBodyBytes = 1 << 20

// BookStore to operacje magazynu, z których korzystają handlery
type BookStore interface {
	Create(ctx context.Context, in models.BookInput) (string, error)
	List(ctx context.Context, filter store.ListFilter) ([]models.BookSummary, error)
	Get(ctx context.Context, id string) (models.Book, error)
	Update(ctx context.Context, id string, in models.BookInput) error
	Delete(ctx context.Context, id string) error
}

// BooksHandler obsługuje operacje na książkach
type BooksHandler struct {
	store BookStore
}

// NewBooksHandler tworzy nowy handler dla książek
func NewBooksHandler(s BookStore) *BooksHandler {
	return &BooksHandler{store: s}
}

// Routes rejestruje ścieżki /books na routerze
func (h *BooksHandler) Routes(r chi.Router) {
	r.Route("/books", func(r chi.Router) {
		r.Post("/", h.CreateBook)
		r.Get("/", h.ListBooks)
		r.Get("/{id}", h.ShowBook)
		r.Put("/{id}", h.UpdateBook)
		r.Delete("/{id}", h.DeleteBook)
	})
}

// CreateBook dodaje książkę (POST /books)
func (h *BooksHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	in, ok := readBookPayload(w, r)
	if !ok {
		return
	}

	id, err := h.store.Create(r.Context(), in)
	switch {
	case err == nil:
		success(w, http.StatusCreated, msgAddSuccess, Data{"bookId": id})
	case errors.Is(err, store.ErrMissingName):
		fail(w, http.StatusBadRequest, msgAddMissingName)
	case errors.Is(err, store.ErrReadPageExceedsPageCount):
		fail(w, http.StatusBadRequest, msgAddReadPage)
	default:
		slog.Error("błąd dodawania książki", "error", err)
		serverError(w, msgAddFailed)
	}
}

// ListBooks zwraca listę książek z opcjonalnym filtrem (GET /books)
func (h *BooksHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.store.List(r.Context(), parseListFilter(r))
	switch {
	case err == nil:
		success(w, http.StatusOK, "", Data{"books": books})
	case errors.Is(err, store.ErrNotFound):
		fail(w, http.StatusNotFound, msgNotFound)
	default:
		slog.Error("błąd pobierania listy książek", "error", err)
		serverError(w, msgInternal)
	}
}

// ShowBook zwraca szczegóły książki (GET /books/{id})
func (h *BooksHandler) ShowBook(w http.ResponseWriter, r *http.Request) {
	book, err := h.store.Get(r.Context(), chi.URLParam(r, "id"))
	switch {
	case err == nil:
		success(w, http.StatusOK, "", Data{"book": book})
	case errors.Is(err, store.ErrNotFound):
		fail(w, http.StatusNotFound, msgNotFound)
	default:
		slog.Error("błąd pobierania książki", "error", err)
		serverError(w, msgInternal)
	}
}

// UpdateBook aktualizuje książkę (PUT /books/{id})
func (h *BooksHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	in, ok := readBookPayload(w, r)
	if !ok {
		return
	}

	err := h.store.Update(r.Context(), chi.URLParam(r, "id"), in)
	switch {
	case err == nil:
		success(w, http.StatusOK, msgUpdateSuccess, nil)
	case errors.Is(err, store.ErrMissingName):
		fail(w, http.StatusBadRequest, msgUpdateMissing)
	case errors.Is(err, store.ErrReadPageExceedsPageCount):
		fail(w, http.StatusBadRequest, msgUpdateReadPage)
	case errors.Is(err, store.ErrNotFound):
		fail(w, http.StatusNotFound, msgUpdateNotFound)
	default:
		slog.Error("błąd aktualizacji książki", "error", err)
		serverError(w, msgInternal)
	}
}

// DeleteBook usuwa książkę (DELETE /books/{id})
func (h *BooksHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	err := h.store.Delete(r.Context(), chi.URLParam(r, "id"))
	switch {
	case err == nil:
		success(w, http.StatusOK, msgDeleteSuccess, nil)
	case errors.Is(err, store.ErrNotFound):
		fail(w, http.StatusNotFound, msgDeleteNotFound)
	default:
		slog.Error("błąd usuwania książki", "error", err)
		serverError(w, msgInternal)
	}
}

// readBookPayload dekoduje treść żądania. Nieprawidłowy JSON traktowany jest
// jak pusta treść, a pola o złym typie pozostają zerowe.
func readBookPayload(w http.ResponseWriter, r *http.Request) (models.BookInput, bool) {
	var in models.BookInput

	body, err := readBody(w, r)
	if err != nil {
		fail(w, http.StatusRequestEntityTooLarge, msgPayloadTooLarge)
		return in, false
	}

	if err := json.Unmarshal(body, &in); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			slog.Debug("nieprawidłowy JSON w treści żądania", "error", err)
			in = models.BookInput{}
		}
	}

	return in, true
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return nil, err
	}
	return body, nil
}

// parseListFilter traktuje parametr jako podany, gdy klucz występuje w zapytaniu
func parseListFilter(r *http.Request) store.ListFilter {
	q := r.URL.Query()
	var f store.ListFilter
	if _, ok := q["name"]; ok {
		v := q.Get("name")
		f.Name = &v
	}
	if _, ok := q["finished"]; ok {
		v := q.Get("finished")
		f.Finished = &v
	}
	if _, ok := q["reading"]; ok {
		v := q.Get("reading")
		f.Reading = &v
	}
	return f
}
