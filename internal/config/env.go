package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by the service
const (
	EnvOpenAIAPIKey  = "OPENAI_API_KEY"
	EnvGeminiAPIKey  = "GEMINI_API_KEY"
	EnvProvider      = "TRANSCRIBE_PROVIDER"
	EnvModel         = "TRANSCRIBE_MODEL"
	EnvBaseURL       = "TRANSCRIBE_BASE_URL"
	EnvTempDir       = "TEMP_DIR"
	EnvHost          = "HOST"
	EnvPort          = "PORT"
	EnvStaticDir     = "STATIC_DIR"
	EnvEnvironment   = "APP_ENV"
	EnvFFprobePath   = "FFPROBE_PATH"
	EnvFFmpegPath    = "FFMPEG_PATH"
	EnvSwaggerEnable = "SWAGGER_ENABLED"
)

// envPaths are tried in order; the first file found is loaded.
var envPaths = []string{
	".env",
	".env.local",
	"../.env",
	"../../.env",
}

// LoadEnv loads environment variables from the first .env file found.
// Variables already set in the process environment are not overridden.
// It returns the path that was loaded, or "" if none exists.
func LoadEnv() (string, error) {
	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return "", fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			return envPath, nil
		}
	}
	return "", nil
}

// CredentialEnvVar names the variable holding the API key for provider.
func CredentialEnvVar(provider string) string {
	if strings.EqualFold(strings.TrimSpace(provider), "gemini") {
		return EnvGeminiAPIKey
	}
	return EnvOpenAIAPIKey
}

// EnvCredential returns a function that reads the named variable on every call,
// so a key changed in the environment is picked up without a restart.
func EnvCredential(name string) func() string {
	return func() string {
		return strings.TrimSpace(os.Getenv(name))
	}
}

func getEnvOrDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}
