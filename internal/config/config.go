package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full service configuration. Values come from defaults, then an
// optional YAML file, then environment variables.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Transcription TranscriptionConfig `yaml:"transcription"`
	Media         MediaConfig         `yaml:"media"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host           string        `yaml:"host"`
	Port           string        `yaml:"port"`
	StaticDir      string        `yaml:"static_dir"`
	Environment    string        `yaml:"environment"`
	SwaggerEnabled bool          `yaml:"swagger_enabled"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	IdleTimeout    time.Duration `yaml:"idle_timeout"`
}

// TranscriptionConfig selects the remote provider and where temp files go.
type TranscriptionConfig struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
	BaseURL  string `yaml:"base_url"`
	TempDir  string `yaml:"temp_dir"`
}

// MediaConfig locates the ffprobe and ffmpeg binaries.
type MediaConfig struct {
	FFprobePath string `yaml:"ffprobe_path"`
	FFmpegPath  string `yaml:"ffmpeg_path"`
}

// Default returns the built-in configuration. Read and write deadlines are
// off: uploads may be large and slow to arrive, and are transcribed chunk by
// chunk before the response is written.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:           "0.0.0.0",
			Port:           "8000",
			StaticDir:      "static",
			Environment:    "production",
			SwaggerEnabled: true,
			ReadTimeout:    0,
			WriteTimeout:   0,
			IdleTimeout:    2 * time.Minute,
		},
		Transcription: TranscriptionConfig{
			Provider: "openai",
			TempDir:  ".",
		},
		Media: MediaConfig{
			FFprobePath: "ffprobe",
			FFmpegPath:  "ffmpeg",
		},
	}
}

// Load builds the configuration. path may be empty, in which case only
// defaults and the environment are used.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.Server.Host = getEnvOrDefault(EnvHost, c.Server.Host)
	c.Server.Port = getEnvOrDefault(EnvPort, c.Server.Port)
	c.Server.StaticDir = getEnvOrDefault(EnvStaticDir, c.Server.StaticDir)
	c.Server.Environment = getEnvOrDefault(EnvEnvironment, c.Server.Environment)
	if raw := getEnvOrDefault(EnvSwaggerEnable, ""); raw != "" {
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvSwaggerEnable, err)
		}
		c.Server.SwaggerEnabled = enabled
	}

	c.Transcription.Provider = getEnvOrDefault(EnvProvider, c.Transcription.Provider)
	c.Transcription.Model = getEnvOrDefault(EnvModel, c.Transcription.Model)
	c.Transcription.BaseURL = getEnvOrDefault(EnvBaseURL, c.Transcription.BaseURL)
	c.Transcription.TempDir = getEnvOrDefault(EnvTempDir, c.Transcription.TempDir)

	c.Media.FFprobePath = getEnvOrDefault(EnvFFprobePath, c.Media.FFprobePath)
	c.Media.FFmpegPath = getEnvOrDefault(EnvFFmpegPath, c.Media.FFmpegPath)
	return nil
}

// Addr returns host:port for the HTTP listener.
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

// IsDevelopment reports whether verbose, human-oriented output is wanted.
func (s ServerConfig) IsDevelopment() bool {
	return s.Environment == "development"
}

// CredentialEnv names the environment variable holding the provider's API key.
func (t TranscriptionConfig) CredentialEnv() string {
	return CredentialEnvVar(t.Provider)
}
