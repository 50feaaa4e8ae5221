package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"voice2text/internal/api/middleware"
	"voice2text/internal/api/v1/dto"
	"voice2text/internal/api/v1/services"
	apperrors "voice2text/internal/app/errors"
	"voice2text/internal/app/transcription"
)

// TranscriptionHandler handles transcription-related API endpoints
type TranscriptionHandler struct {
	service services.TranscriptionService
}

// NewTranscriptionHandler creates a new transcription handler
func NewTranscriptionHandler(service services.TranscriptionService) *TranscriptionHandler {
	return &TranscriptionHandler{
		service: service,
	}
}

// Transcribe handles POST /transcribe
// Transcribes an uploaded audio file
//
// @Summary Transcribe an audio file
// @Description Uploads an audio file and returns its transcript. Files over 25 MiB are split into 10 minute chunks and transcribed in order.
// @Tags transcription
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Audio file to transcribe"
// @Success 200 {object} dto.TranscribeResponse "Transcript text"
// @Failure 400 {object} dto.DetailResponse "No file uploaded"
// @Failure 500 {object} dto.ErrorResponse "Missing credentials or processing failure"
// @Router /transcribe [post]
func (h *TranscriptionHandler) Transcribe(c *gin.Context) {
	var form dto.TranscribeForm
	if err := middleware.BindForm(c, &form); err != nil {
		middleware.HandleError(c, err)
		return
	}

	file, err := form.File.Open()
	if err != nil {
		middleware.HandleError(c, apperrors.Wrap(err, apperrors.KindIO, "open uploaded file"))
		return
	}
	defer file.Close()

	response, err := h.service.Transcribe(c.Request.Context(), &transcription.Upload{
		Filename: form.File.Filename,
		Body:     file,
	})
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
