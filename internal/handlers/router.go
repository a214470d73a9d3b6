package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"bookshelf-api/internal/middleware"
)

// RouterOptions konfiguruje router aplikacji
type RouterOptions struct {
	CORSOrigins []string
	Logger      *slog.Logger
}

// NewRouter składa router chi z middleware i wszystkimi ścieżkami
func NewRouter(books *BooksHandler, opts RouterOptions) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(opts.CORSOrigins))

	r.NotFound(NotFound)
	r.MethodNotAllowed(MethodNotAllowed)

	r.Get("/health", Health)
	books.Routes(r)

	return r
}
