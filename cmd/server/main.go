package main

import (
	"log"
	"net/http"

	"github.com/studycoach/backend/internal/container"
	"github.com/studycoach/backend/internal/router"
)

func main() {
	c := container.New()

	handler := router.New(router.RouterConfig{
		GenerationHandler: c.GenerationContainer.Handler,
		OCRHandler:        c.OCRContainer.Handler,
		SpeechHandler:     c.SpeechContainer.Handler,
		HealthHandler:     c.HealthHandler,
		StudySetHandler:   c.StudySetContainer.Handler,
		AuthHandler:       c.AuthHandler,
	})

	addr := ":" + c.Config.Port
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
