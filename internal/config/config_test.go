package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "OLLAMA_URL", "OLLAMA_MODEL", "GENERATE_TIMEOUT", "PROBE_TIMEOUT",
		"OCR_SERVICE_URL", "OCR_TIMEOUT", "TTS_API_URL", "WHISPER_API_URL", "DATABASE_DSN",
	} {
		// t.Setenv registers the restore; the var must be genuinely unset for
		// the default to apply.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "http://ollama:11434", cfg.OllamaURL)
	assert.Equal(t, "llama3.2:1b", cfg.OllamaModel)
	assert.Equal(t, 15*time.Minute, cfg.GenerateTimeout)
	assert.Equal(t, 2*time.Second, cfg.ProbeTimeout)
	assert.Equal(t, 180*time.Second, cfg.OCRTimeout)
	assert.Empty(t, cfg.DatabaseDSN)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("OLLAMA_MODEL", "llama3.2:3b")
	t.Setenv("GENERATE_TIMEOUT", "90s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "llama3.2:3b", cfg.OllamaModel)
	assert.Equal(t, 90*time.Second, cfg.GenerateTimeout)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("GENERATE_TIMEOUT", "soon")

	_, err := Load()
	assert.Error(t, err)
}
