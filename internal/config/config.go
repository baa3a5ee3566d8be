package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds every runtime setting for the backend. Values are read once at
// startup and handed to the feature containers; nothing reads the environment
// after that.
type Config struct {
	Port string `envconfig:"PORT" default:"8000"`

	// Local LLM backend (Ollama)
	OllamaURL       string        `envconfig:"OLLAMA_URL" default:"http://ollama:11434"`
	OllamaModel     string        `envconfig:"OLLAMA_MODEL" default:"llama3.2:1b"`
	GenerateTimeout time.Duration `envconfig:"GENERATE_TIMEOUT" default:"15m"`
	ProbeTimeout    time.Duration `envconfig:"PROBE_TIMEOUT" default:"2s"`

	// External collaborators
	OCRServiceURL string        `envconfig:"OCR_SERVICE_URL" default:"http://ocr-service:8001"`
	OCRTimeout    time.Duration `envconfig:"OCR_TIMEOUT" default:"180s"`
	TTSAPIURL     string        `envconfig:"TTS_API_URL" default:"http://tts-service:8001/synthesize"`
	WhisperAPIURL string        `envconfig:"WHISPER_API_URL" default:"http://whisper-service:9000/transcribe"`

	DatabaseDSN string `envconfig:"DATABASE_DSN"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return &cfg, nil
}
