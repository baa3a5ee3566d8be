package generation

import (
	"github.com/studycoach/backend/internal/config"
)

type GenerationContainer struct {
	Handler  *Handler
	Provider Provider
}

func NewGenerationContainer(cfg *config.Config) (*GenerationContainer, error) {
	provider, err := NewOllamaProvider(cfg)
	if err != nil {
		return nil, err
	}
	service := NewService(provider)
	handler := NewHandler(service)

	return &GenerationContainer{
		Handler:  handler,
		Provider: provider,
	}, nil
}
