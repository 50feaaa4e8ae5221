package gemini

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.0-flash"

const transcribePrompt = "Transcribe this audio verbatim. Respond with the transcript text only, without commentary or timestamps."

var audioMimeTypes = map[string]string{
	".mp3":  "audio/mp3",
	".wav":  "audio/wav",
	".m4a":  "audio/aac",
	".aac":  "audio/aac",
	".ogg":  "audio/ogg",
	".flac": "audio/flac",
	".aiff": "audio/aiff",
	".webm": "audio/webm",
	".mp4":  "audio/mp4",
}

// Transcriber sends audio inline to a Gemini model and asks for a verbatim transcript.
type Transcriber struct {
	client *genai.Client
	model  string
}

// Config for the Gemini transcriber
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

// NewTranscriber creates a Gemini-backed transcriber.
func NewTranscriber(ctx context.Context, config Config) (*Transcriber, error) {
	clientConfig := &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if config.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: config.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	model := config.Model
	if model == "" {
		model = DefaultModel
	}
	return &Transcriber{client: client, model: model}, nil
}

// Transcript uploads the file contents inline and returns the model's text.
func (t *Transcriber) Transcript(ctx context.Context, inputFilePath string) (string, error) {
	data, err := os.ReadFile(inputFilePath)
	if err != nil {
		return "", fmt.Errorf("read audio file: %w", err)
	}

	parts := []*genai.Part{
		genai.NewPartFromText(transcribePrompt),
		genai.NewPartFromBytes(data, MimeType(inputFilePath)),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := t.client.Models.GenerateContent(ctx, t.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generateContent failed: %w", err)
	}
	return resp.Text(), nil
}

// MimeType guesses the audio MIME type from the file extension.
func MimeType(path string) string {
	if mt, ok := audioMimeTypes[strings.ToLower(filepath.Ext(path))]; ok {
		return mt
	}
	return "audio/mp3"
}
