package container

import (
	"context"
	"log"

	"github.com/studycoach/backend/internal/auth"
	"github.com/studycoach/backend/internal/config"
	"github.com/studycoach/backend/internal/generation"
	"github.com/studycoach/backend/internal/health"
	"github.com/studycoach/backend/internal/ocr"
	"github.com/studycoach/backend/internal/speech"
	"github.com/studycoach/backend/internal/studyset"
)

type Container struct {
	Config              *config.Config
	GenerationContainer *generation.GenerationContainer
	OCRContainer        *ocr.OCRContainer
	SpeechContainer     *speech.SpeechContainer
	StudySetContainer   *studyset.StudySetContainer
	HealthHandler       *health.Handler
	AuthHandler         *auth.Handler
}

func New() *Container {
	config.Init()
	auth.Init()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	if err := config.Connect(context.Background(), cfg.DatabaseDSN); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	generationContainer, err := generation.NewGenerationContainer(cfg)
	if err != nil {
		log.Fatalf("failed to set up generation: %v", err)
	}
	ocrContainer := ocr.NewOCRContainer(cfg)
	speechContainer := speech.NewSpeechContainer(cfg)
	studySetContainer := studyset.NewStudySetContainer(config.DB)
	healthHandler := health.NewHandler(generationContainer.Provider, ocrContainer.Client)

	return &Container{
		Config:              cfg,
		GenerationContainer: generationContainer,
		OCRContainer:        ocrContainer,
		SpeechContainer:     speechContainer,
		StudySetContainer:   studySetContainer,
		HealthHandler:       healthHandler,
		AuthHandler:         auth.NewHandler(),
	}
}
