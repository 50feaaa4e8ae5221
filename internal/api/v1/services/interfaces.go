package services

import (
	"context"
	"time"

	"voice2text/internal/api/v1/dto"
	"voice2text/internal/app/transcription"
)

// TranscriptionService defines the interface for transcription operations
type TranscriptionService interface {
	Transcribe(ctx context.Context, upload *transcription.Upload) (*dto.TranscribeResponse, error)
}

// Orchestrator runs one upload through the transcription pipeline.
type Orchestrator interface {
	Transcribe(ctx context.Context, upload *transcription.Upload) (*transcription.Result, error)
}

// Recorder receives the outcome of every transcription.
type Recorder interface {
	RecordSuccess(path string, elapsed time.Duration, chunks int, size int64)
	RecordFailure(kind string)
}
