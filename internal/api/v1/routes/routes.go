package routes

import (
	"github.com/gin-gonic/gin"
	"voice2text/internal/api/v1/handlers"
	"voice2text/internal/api/v1/services"
)

// RegisterRoutes registers the transcription routes on router.
func RegisterRoutes(router gin.IRoutes, container *ServiceContainer) {
	transcriptionHandler := handlers.NewTranscriptionHandler(container.TranscriptionService)
	router.POST("/transcribe", transcriptionHandler.Transcribe)
}

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	TranscriptionService services.TranscriptionService
}
