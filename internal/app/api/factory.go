package api

import (
	"context"
	"strings"

	"voice2text/internal/app/api/gemini"
	openaiclient "voice2text/internal/app/api/openai"
	"voice2text/internal/app/api/openai/whisper"
	apperrors "voice2text/internal/app/errors"
)

// Supported transcription providers
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// FactoryConfig selects and tunes the remote transcription provider.
type FactoryConfig struct {
	Provider string
	Model    string
	BaseURL  string
}

// NewFactory returns a Factory for the configured provider. The API key is
// supplied per call so a rotated credential takes effect on the next request.
func NewFactory(config FactoryConfig) (Factory, error) {
	switch strings.ToLower(strings.TrimSpace(config.Provider)) {
	case "", ProviderOpenAI:
		return func(apiKey string) (Transcriber, error) {
			client := openaiclient.NewClient(apiKey, config.BaseURL)
			return whisper.NewRemoteTranscriber(client, config.Model), nil
		}, nil
	case ProviderGemini:
		return func(apiKey string) (Transcriber, error) {
			return gemini.NewTranscriber(context.Background(), gemini.Config{
				APIKey:  apiKey,
				Model:   config.Model,
				BaseURL: config.BaseURL,
			})
		}, nil
	default:
		return nil, apperrors.Wrapf(apperrors.ErrUnknownProvider, apperrors.KindServiceMisconfigured, "provider %q", config.Provider)
	}
}
