package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var supportedProviders = []string{"openai", "gemini"}

// Validate checks the configuration for values the service cannot run with.
// The API key is read per request and is not checked here.
func (c *Config) Validate() error {
	if err := ValidatePort(c.Server.Port); err != nil {
		return err
	}
	if err := ValidateProvider(c.Transcription.Provider); err != nil {
		return err
	}
	for name, d := range map[string]time.Duration{
		"read":  c.Server.ReadTimeout,
		"write": c.Server.WriteTimeout,
		"idle":  c.Server.IdleTimeout,
	} {
		if d < 0 {
			return fmt.Errorf("%s timeout cannot be negative", name)
		}
	}
	if strings.TrimSpace(c.Transcription.TempDir) == "" {
		return fmt.Errorf("temp dir is required")
	}
	return nil
}

// ValidatePort validates a TCP port number
func ValidatePort(port string) error {
	n, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("invalid port %q: must be a number", port)
	}
	if n < 1 || n > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", n)
	}
	return nil
}

// ValidateProvider validates the transcription provider name
func ValidateProvider(provider string) error {
	p := strings.ToLower(strings.TrimSpace(provider))
	for _, supported := range supportedProviders {
		if p == supported {
			return nil
		}
	}
	return fmt.Errorf("unsupported transcription provider %q (supported: %s)", provider, strings.Join(supportedProviders, ", "))
}
