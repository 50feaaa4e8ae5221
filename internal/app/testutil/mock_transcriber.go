package testutil

import (
	"context"
	"os"
	"sync"
	"time"

	"voice2text/internal/app/api"
)

var _ api.Transcriber = (*MockTranscriber)(nil)

// MockTranscriber is a configurable in-memory api.Transcriber.
// It records every call, including whether the input file existed at call time,
// so tests can check the temp-file lifecycle around transcription.
type MockTranscriber struct {
	mu sync.RWMutex

	DefaultResponse string
	DefaultError    error
	ErrorMap        map[string]error
	ResponseMap     map[string]string
	// ResponseFunc, when set, takes precedence over every other setting.
	ResponseFunc func(inputFilePath string) (string, error)

	CallHistory []TranscriptionCall
}

// TranscriptionCall represents a single transcription call for tracking
type TranscriptionCall struct {
	InputFilePath string
	FileExisted   bool
	FileSize      int64
	Timestamp     time.Time
	Response      string
	Error         error
}

// NewMockTranscriber creates a new MockTranscriber with sensible defaults
func NewMockTranscriber() *MockTranscriber {
	return &MockTranscriber{
		DefaultResponse: "This is a mock transcription result.",
		ErrorMap:        make(map[string]error),
		ResponseMap:     make(map[string]string),
	}
}

// Transcript implements the api.Transcriber interface
func (m *MockTranscriber) Transcript(ctx context.Context, inputFilePath string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	call := TranscriptionCall{InputFilePath: inputFilePath, Timestamp: time.Now()}
	if info, err := os.Stat(inputFilePath); err == nil {
		call.FileExisted = true
		call.FileSize = info.Size()
	}

	switch {
	case m.ResponseFunc != nil:
		call.Response, call.Error = m.ResponseFunc(inputFilePath)
	case m.ErrorMap[inputFilePath] != nil:
		call.Error = m.ErrorMap[inputFilePath]
	case m.DefaultError != nil:
		call.Error = m.DefaultError
	default:
		if resp, ok := m.ResponseMap[inputFilePath]; ok {
			call.Response = resp
		} else {
			call.Response = m.DefaultResponse
		}
	}
	if call.Error == nil {
		call.Error = ctx.Err()
	}

	m.CallHistory = append(m.CallHistory, call)
	if call.Error != nil {
		return "", call.Error
	}
	return call.Response, nil
}

// Factory returns an api.Factory that always hands out this mock and records
// the API keys it was asked for.
func (m *MockTranscriber) Factory(keys *[]string) api.Factory {
	return func(apiKey string) (api.Transcriber, error) {
		if keys != nil {
			*keys = append(*keys, apiKey)
		}
		return m, nil
	}
}

// GetCallCount returns the total number of calls made
func (m *MockTranscriber) GetCallCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.CallHistory)
}

// GetCallHistory returns the complete call history
func (m *MockTranscriber) GetCallHistory() []TranscriptionCall {
	m.mu.RLock()
	defer m.mu.RUnlock()
	history := make([]TranscriptionCall, len(m.CallHistory))
	copy(history, m.CallHistory)
	return history
}

// GetCalledPaths returns the input paths in call order
func (m *MockTranscriber) GetCalledPaths() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	paths := make([]string, 0, len(m.CallHistory))
	for _, call := range m.CallHistory {
		paths = append(paths, call.InputFilePath)
	}
	return paths
}
