package generation

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/studycoach/backend/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

type quizRequest struct {
	Text     string `json:"text"`
	QuizType string `json:"quiz_type"`
}

type textRequest struct {
	Text string `json:"text"`
}

// GenerateQuiz handles POST /api/generate-quiz. quiz_type defaults to "all".
func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req quizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	quizType := strings.ToLower(strings.TrimSpace(req.QuizType))
	if quizType == "" {
		quizType = string(KindAll)
	}
	if !isQuizKind(Kind(quizType)) {
		http.Error(w, "invalid quiz_type: must be one of multiple_choice, fill_blank, short_answer, all", http.StatusBadRequest)
		return
	}

	agg, err := h.service.Generate(r.Context(), Request{Text: req.Text, Kind: Kind(quizType)})
	if err != nil {
		log.WithError(err).Error("Failed to generate quiz")
		writeGenerationError(w, err)
		return
	}

	total := agg.TotalRecords()
	config.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"quiz":    agg.Records,
		"message": fmt.Sprintf("Quiz generated successfully with %d questions", total),
	})
}

// GenerateFlashcards handles POST /api/generate-flashcards.
func (h *Handler) GenerateFlashcards(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req textRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	agg, err := h.service.Generate(r.Context(), Request{Text: req.Text, Kind: KindFlashcards})
	if err != nil {
		log.WithError(err).Error("Failed to generate flashcards")
		writeGenerationError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"flashcards": agg.Records[KindFlashcards],
		"message":    "Flashcards generated successfully",
	})
}

// GenerateSummary handles POST /api/summary.
func (h *Handler) GenerateSummary(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req textRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	agg, err := h.service.Generate(r.Context(), Request{Text: req.Text, Kind: KindSummary})
	if err != nil {
		log.WithError(err).Error("Failed to generate summary")
		writeGenerationError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"summary": agg.Summary,
		"message": "Summary generated successfully",
	})
}

func isQuizKind(k Kind) bool {
	if k == KindAll {
		return true
	}
	for _, qk := range quizKinds {
		if k == qk {
			return true
		}
	}
	return false
}

func writeGenerationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrUpstreamUnavailable):
		http.Error(w, "language model service unavailable", http.StatusServiceUnavailable)
	case errors.Is(err, ErrUpstreamError):
		http.Error(w, "language model service error", http.StatusBadGateway)
	case errors.Is(err, ErrEmptyGeneration):
		http.Error(w, "generation completed but no content was created", http.StatusInternalServerError)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
