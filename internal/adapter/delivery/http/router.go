// Package http provides the HTTP delivery layer for the short URL service.
// It decodes requests, hands them to the use case and maps the resulting
// error kinds onto status codes.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/short-url/docs"
	"github.com/vadimbarashkov/short-url/pkg/middleware/recoverer"

	httpSwagger "github.com/swaggo/http-swagger"
)

const swaggerPath = "/docs/swagger.yml"

// NewRouter initializes and returns a new Chi router configured with middleware and routes for the short URL API.
func NewRouter(logger *httplog.Logger, urlUseCase urlUseCase) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           84600,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httplog.RequestLogger(logger))
	r.Use(recoverer.New(logger.Logger))

	r.Get("/", handleIndex)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(swaggerPath),
	))

	r.Get(swaggerPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		w.Write(docs.Swagger)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ping", handlePing)

		r.Route("/short-url", func(r chi.Router) {
			h := newURLHandler(urlUseCase, validator.New())

			r.Post("/", h.createShortURL)
			r.Get("/", h.listShortURLs)
		})
	})

	return r
}
