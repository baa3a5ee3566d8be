package studyset

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/studycoach/backend/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.AuthMiddleware)

	r.Post("/", h.CreateSet)
	r.Get("/", h.ListSets)
	r.Get("/{id}", h.GetSet)
	r.Delete("/{id}", h.DeleteSet)
	return r
}
