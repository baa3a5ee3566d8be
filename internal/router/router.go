package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/studycoach/backend/internal/auth"
	"github.com/studycoach/backend/internal/generation"
	"github.com/studycoach/backend/internal/health"
	"github.com/studycoach/backend/internal/ocr"
	"github.com/studycoach/backend/internal/speech"
	"github.com/studycoach/backend/internal/studyset"
)

type RouterConfig struct {
	GenerationHandler *generation.Handler
	OCRHandler        *ocr.Handler
	SpeechHandler     *speech.Handler
	HealthHandler     *health.Handler
	StudySetHandler   *studyset.Handler
	AuthHandler       *auth.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	// Open CORS: the client is a mobile app, not a browser origin we control.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	r.Get("/", cfg.HealthHandler.Root)
	r.Get("/health", cfg.HealthHandler.Check)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", cfg.AuthHandler.Register)
	})

	r.Route("/api", func(r chi.Router) {
		generation.Routes(r, cfg.GenerationHandler)
		ocr.Routes(r, cfg.OCRHandler)
		speech.Routes(r, cfg.SpeechHandler)
		r.Mount("/study-sets", studyset.Routes(cfg.StudySetHandler))
	})

	return r
}
