package openai

import (
	"github.com/sashabaranov/go-openai"
)

// NewClient creates an OpenAI client for the given key. An empty baseURL keeps
// the public API endpoint.
func NewClient(apiKey, baseURL string) *openai.Client {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(config)
}
