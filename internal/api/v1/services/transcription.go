package services

import (
	"context"
	"time"

	"voice2text/internal/api/v1/dto"
	apperrors "voice2text/internal/app/errors"
	"voice2text/internal/app/transcription"
)

// transcriptionService implements TranscriptionService
type transcriptionService struct {
	orchestrator Orchestrator
	recorder     Recorder
}

// NewTranscriptionService creates a new transcription service. recorder may be nil.
func NewTranscriptionService(orchestrator Orchestrator, recorder Recorder) TranscriptionService {
	return &transcriptionService{
		orchestrator: orchestrator,
		recorder:     recorder,
	}
}

// Transcribe runs the upload through the orchestrator and records the outcome.
func (s *transcriptionService) Transcribe(ctx context.Context, upload *transcription.Upload) (*dto.TranscribeResponse, error) {
	start := time.Now()

	result, err := s.orchestrator.Transcribe(ctx, upload)
	if err != nil {
		if s.recorder != nil {
			s.recorder.RecordFailure(string(apperrors.KindOf(err)))
		}
		return nil, err
	}

	if s.recorder != nil {
		s.recorder.RecordSuccess(string(result.Path), time.Since(start), result.Chunks, result.Size)
	}
	return &dto.TranscribeResponse{Text: result.Text}, nil
}
