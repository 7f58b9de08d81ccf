package router

import (
	"net/http"

	_ "shelter-outcomes/docs"
	"shelter-outcomes/internal/domain/outcomes"
	"shelter-outcomes/internal/middleware"
	"shelter-outcomes/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Service *outcomes.Service

	// Opcional: sin logger no hay access log.
	Logger logger.Logger
}

// @title Shelter Outcomes API
// @version 1.0
// @description Consultas agregadas sobre los egresos (outcomes) de un refugio de animales.
// @BasePath /
func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(opts.Logger))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	if opts.Service != nil {
		outcomes.RegisterRoutes(r, opts.Service)
	}

	return r
}
