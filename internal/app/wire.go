//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"go.uber.org/zap"
	"voice2text/internal/api/server"
	"voice2text/internal/app/transcription"
	"voice2text/internal/config"
)

func InitializeService(cfg *config.Config, logger *zap.Logger) (*transcription.Service, error) {
	wire.Build(TranscriptionSet)
	return &transcription.Service{}, nil
}

func InitializeServer(cfg *config.Config, logger *zap.Logger) (*server.Server, error) {
	wire.Build(ServerSet)
	return &server.Server{}, nil
}
