package api

import "context"

// Transcriber defines a transcription interface for converting audio files to text.
type Transcriber interface {
	Transcript(ctx context.Context, inputFilePath string) (string, error)
}

// Factory builds a Transcriber bound to one API credential.
type Factory func(apiKey string) (Transcriber, error)
