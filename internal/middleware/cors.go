package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS zezwala na dostęp z podanych originów ("*" oznacza wszystkie)
func CORS(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "If-None-Match"},
		ExposedHeaders: []string{"WWW-Authenticate", "Server-Authorization"},
		MaxAge:         86400,
	})
}
