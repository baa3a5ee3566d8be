package speech

import (
	"time"

	"github.com/studycoach/backend/internal/config"
)

const (
	ttsTimeout        = 30 * time.Second
	transcribeTimeout = 60 * time.Second
)

type SpeechContainer struct {
	Handler *Handler
}

func NewSpeechContainer(cfg *config.Config) *SpeechContainer {
	synthesizer := NewSynthesizer(cfg.TTSAPIURL, ttsTimeout)
	transcriber := NewTranscriber(cfg.WhisperAPIURL, transcribeTimeout)
	handler := NewHandler(synthesizer, transcriber)

	return &SpeechContainer{
		Handler: handler,
	}
}
