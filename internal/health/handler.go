package health

import (
	"context"
	"errors"
	"net/http"

	"github.com/studycoach/backend/internal/config"
	"github.com/studycoach/backend/internal/generation"
	"github.com/studycoach/backend/internal/ocr"
)

// Prober checks reachability of one external collaborator.
type Prober interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	llm Prober
	ocr Prober
}

func NewHandler(llm, ocrProber Prober) *Handler {
	return &Handler{llm: llm, ocr: ocrProber}
}

// Root handles GET /: a liveness banner.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Study Coach API is running",
		"status":  "healthy",
	})
}

// Check handles GET /health. It probes each collaborator with a short timeout
// and always answers 200: the statuses describe the collaborators, not this
// process.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	services := map[string]string{
		"llm": statusOf(h.llm.Ping(r.Context())),
		"ocr": statusOf(h.ocr.Ping(r.Context())),
	}
	for name, status := range services {
		if status != "healthy" {
			log.WithField("service", name).WithField("status", status).Warn("Collaborator not healthy")
		}
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"status":   "healthy",
		"services": services,
	})
}

func statusOf(err error) string {
	if err == nil {
		return "healthy"
	}

	// An answer with a bad status is unhealthy; no answer is unreachable.
	var cerr *generation.CompletionError
	if errors.As(err, &cerr) && cerr.Class == generation.FailureUpstream {
		return "unhealthy"
	}
	if errors.Is(err, ocr.ErrUnhealthy) {
		return "unhealthy"
	}
	return "unreachable"
}
