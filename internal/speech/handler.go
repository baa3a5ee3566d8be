package speech

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/studycoach/backend/internal/config"
)

// maxAudioBytes caps audio uploads at 50 MiB.
const maxAudioBytes = 50 << 20

type Handler struct {
	synthesizer Synthesizer
	transcriber Transcriber
}

func NewHandler(s Synthesizer, t Transcriber) *Handler {
	return &Handler{synthesizer: s, transcriber: t}
}

// TextToSpeech handles POST /api/text-to-speech.
func (h *Handler) TextToSpeech(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Text == "" {
		http.Error(w, "text is required", http.StatusBadRequest)
		return
	}

	audio, err := h.synthesizer.Synthesize(r.Context(), req.Text)
	if err != nil {
		log.WithError(err).Error("Speech synthesis failed")
		writeSpeechError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"audio":   audio,
		"message": "Speech synthesized successfully",
	})
}

// ProcessAudio handles POST /api/process-audio.
func (h *Handler) ProcessAudio(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, maxAudioBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "audio file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		log.WithError(err).Error("Failed to read uploaded audio")
		http.Error(w, "failed to read uploaded file", http.StatusBadRequest)
		return
	}

	log.WithField("filename", header.Filename).WithField("bytes", len(data)).Info("Forwarding audio for transcription")

	text, err := h.transcriber.Transcribe(r.Context(), header.Filename, data)
	if err != nil {
		log.WithError(err).Error("Audio transcription failed")
		writeSpeechError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"text":    text,
		"message": "Audio transcribed successfully",
	})
}

func writeSpeechError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrUnavailable) {
		http.Error(w, "speech service unavailable", http.StatusServiceUnavailable)
		return
	}
	http.Error(w, "speech service error", http.StatusBadGateway)
}
