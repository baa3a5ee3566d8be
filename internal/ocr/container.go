package ocr

import "github.com/studycoach/backend/internal/config"

type OCRContainer struct {
	Handler *Handler
	Client  Client
}

func NewOCRContainer(cfg *config.Config) *OCRContainer {
	client := NewClient(cfg.OCRServiceURL, cfg.OCRTimeout, cfg.ProbeTimeout)
	handler := NewHandler(client)

	return &OCRContainer{
		Handler: handler,
		Client:  client,
	}
}
