package app

import (
	"github.com/google/wire"
	"voice2text/internal/api/server"
	"voice2text/internal/api/v1/services"
	"voice2text/internal/app/api"
	"voice2text/internal/app/audio"
	"voice2text/internal/app/metrics"
	"voice2text/internal/app/transcription"
	"voice2text/internal/config"
)

// TranscriptionSet builds a transcription.Service from the loaded config.
var TranscriptionSet = wire.NewSet(
	provideServiceConfig,
	provideCredentialSource,
	provideTranscriberFactory,
	provideMediaTool,
	transcription.NewService,
)

// ServerSet adds the HTTP server on top of TranscriptionSet.
var ServerSet = wire.NewSet(
	TranscriptionSet,
	provideServerConfig,
	metrics.New,
	server.NewServer,
	wire.Bind(new(services.Orchestrator), new(*transcription.Service)),
)

func provideServiceConfig(cfg *config.Config) transcription.Config {
	serviceConfig := transcription.DefaultConfig()
	serviceConfig.TempDir = cfg.Transcription.TempDir
	return serviceConfig
}

// provideCredentialSource reads the provider's API key from the environment on
// every request.
func provideCredentialSource(cfg *config.Config) transcription.CredentialSource {
	return transcription.CredentialSource(config.EnvCredential(cfg.Transcription.CredentialEnv()))
}

func provideTranscriberFactory(cfg *config.Config) (api.Factory, error) {
	return api.NewFactory(api.FactoryConfig{
		Provider: cfg.Transcription.Provider,
		Model:    cfg.Transcription.Model,
		BaseURL:  cfg.Transcription.BaseURL,
	})
}

func provideMediaTool(cfg *config.Config) audio.MediaTool {
	return audio.NewFFmpeg(cfg.Media.FFprobePath, cfg.Media.FFmpegPath)
}

func provideServerConfig(cfg *config.Config) config.ServerConfig {
	return cfg.Server
}
