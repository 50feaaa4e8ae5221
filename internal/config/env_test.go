package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable Load reads for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvOpenAIAPIKey, EnvGeminiAPIKey, EnvProvider, EnvModel, EnvBaseURL, EnvTempDir,
		EnvHost, EnvPort, EnvStaticDir, EnvEnvironment, EnvFFprobePath, EnvFFmpegPath, EnvSwaggerEnable,
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8000", cfg.Server.Addr())
	assert.Equal(t, "static", cfg.Server.StaticDir)
	assert.Equal(t, "openai", cfg.Transcription.Provider)
	assert.Equal(t, ".", cfg.Transcription.TempDir)
	assert.Equal(t, "ffprobe", cfg.Media.FFprobePath)
	assert.Equal(t, "ffmpeg", cfg.Media.FFmpegPath)
	assert.True(t, cfg.Server.SwaggerEnabled)
	assert.False(t, cfg.Server.IsDevelopment())
	assert.Zero(t, cfg.Server.ReadTimeout, "slow uploads must not be cut off")
	assert.Zero(t, cfg.Server.WriteTimeout)
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: "9000"
  environment: development
  read_timeout: 30s
transcription:
  provider: gemini
  model: gemini-2.0-flash
  temp_dir: /var/tmp
media:
  ffmpeg_path: /opt/ffmpeg/bin/ffmpeg
`), 0o644))

	t.Setenv(EnvPort, "9100")
	t.Setenv(EnvSwaggerEnable, "false")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.Server.Port, "environment wins over the file")
	assert.True(t, cfg.Server.IsDevelopment())
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.False(t, cfg.Server.SwaggerEnabled)
	assert.Equal(t, "gemini", cfg.Transcription.Provider)
	assert.Equal(t, "gemini-2.0-flash", cfg.Transcription.Model)
	assert.Equal(t, "/var/tmp", cfg.Transcription.TempDir)
	assert.Equal(t, "ffprobe", cfg.Media.FFprobePath)
	assert.Equal(t, "/opt/ffmpeg/bin/ffmpeg", cfg.Media.FFmpegPath)
	assert.Equal(t, EnvGeminiAPIKey, cfg.Transcription.CredentialEnv())
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name          string
		yaml          string
		env           map[string]string
		errorContains string
	}{
		{
			name:          "invalid port",
			env:           map[string]string{EnvPort: "http"},
			errorContains: "invalid port",
		},
		{
			name:          "port out of range",
			env:           map[string]string{EnvPort: "70000"},
			errorContains: "between 1 and 65535",
		},
		{
			name:          "unknown provider",
			env:           map[string]string{EnvProvider: "elevenlabs"},
			errorContains: "unsupported transcription provider",
		},
		{
			name:          "bad swagger flag",
			env:           map[string]string{EnvSwaggerEnable: "maybe"},
			errorContains: EnvSwaggerEnable,
		},
		{
			name:          "malformed yaml",
			yaml:          "server: [unclosed",
			errorContains: "parse config file",
		},
		{
			name:          "negative timeout",
			yaml:          "server:\n  idle_timeout: -1s\n",
			errorContains: "idle timeout cannot be negative",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			path := ""
			if tc.yaml != "" {
				path = filepath.Join(t.TempDir(), "config.yaml")
				require.NoError(t, os.WriteFile(path, []byte(tc.yaml), 0o644))
			}

			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errorContains)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestCredentialEnvVar(t *testing.T) {
	assert.Equal(t, EnvOpenAIAPIKey, CredentialEnvVar("openai"))
	assert.Equal(t, EnvOpenAIAPIKey, CredentialEnvVar(""))
	assert.Equal(t, EnvGeminiAPIKey, CredentialEnvVar(" Gemini "))
}

func TestEnvCredential_ReadsEveryCall(t *testing.T) {
	t.Setenv(EnvOpenAIAPIKey, "sk-first")
	credential := EnvCredential(EnvOpenAIAPIKey)
	assert.Equal(t, "sk-first", credential())

	t.Setenv(EnvOpenAIAPIKey, "  sk-second  ")
	assert.Equal(t, "sk-second", credential())

	os.Unsetenv(EnvOpenAIAPIKey)
	assert.Equal(t, "", credential())
}

func TestLoadEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("OPENAI_API_KEY=sk-from-dotenv\nPORT=8123\n"), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	loaded, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, ".env", loaded)
	assert.Equal(t, "sk-from-dotenv", os.Getenv(EnvOpenAIAPIKey))
	assert.Equal(t, "8123", os.Getenv(EnvPort))
	os.Unsetenv(EnvOpenAIAPIKey)
	os.Unsetenv(EnvPort)
}
