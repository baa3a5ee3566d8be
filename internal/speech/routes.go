package speech

import (
	"github.com/go-chi/chi/v5"
)

func Routes(r chi.Router, h *Handler) {
	r.Post("/text-to-speech", h.TextToSpeech)
	r.Post("/process-audio", h.ProcessAudio)
}
