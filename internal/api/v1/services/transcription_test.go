package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	apperrors "voice2text/internal/app/errors"
	"voice2text/internal/app/transcription"
)

type mockOrchestrator struct {
	mock.Mock
}

func (m *mockOrchestrator) Transcribe(ctx context.Context, upload *transcription.Upload) (*transcription.Result, error) {
	args := m.Called(ctx, upload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transcription.Result), args.Error(1)
}

type mockRecorder struct {
	mock.Mock
}

func (m *mockRecorder) RecordSuccess(path string, elapsed time.Duration, chunks int, size int64) {
	m.Called(path, elapsed, chunks, size)
}

func (m *mockRecorder) RecordFailure(kind string) {
	m.Called(kind)
}

func TestTranscriptionService_Success(t *testing.T) {
	orchestrator := &mockOrchestrator{}
	recorder := &mockRecorder{}
	upload := &transcription.Upload{Filename: "a.mp3"}

	orchestrator.On("Transcribe", mock.Anything, upload).
		Return(&transcription.Result{Text: "part one part two", Path: transcription.PathChunked, Chunks: 2, Size: 30 << 20}, nil)
	recorder.On("RecordSuccess", "chunked", mock.AnythingOfType("time.Duration"), 2, int64(30<<20)).Return()

	resp, err := NewTranscriptionService(orchestrator, recorder).Transcribe(context.Background(), upload)

	require.NoError(t, err)
	assert.Equal(t, "part one part two", resp.Text)
	orchestrator.AssertExpectations(t)
	recorder.AssertExpectations(t)
}

func TestTranscriptionService_Failure(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedKind string
	}{
		{"bad request", apperrors.ErrNoFile, "bad_request"},
		{"missing key", apperrors.ErrMissingAPIKey, "service_misconfigured"},
		{"api failure", apperrors.Wrap(errors.New("429"), apperrors.KindTranscriptionAPI, "transcribe"), "transcription_api_failure"},
		{"foreign error", errors.New("boom"), "internal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orchestrator := &mockOrchestrator{}
			recorder := &mockRecorder{}
			orchestrator.On("Transcribe", mock.Anything, mock.Anything).Return(nil, tt.err)
			recorder.On("RecordFailure", tt.expectedKind).Return()

			resp, err := NewTranscriptionService(orchestrator, recorder).Transcribe(context.Background(), &transcription.Upload{})

			assert.Nil(t, resp)
			assert.Same(t, tt.err, err)
			recorder.AssertExpectations(t)
		})
	}
}

func TestTranscriptionService_NilRecorder(t *testing.T) {
	orchestrator := &mockOrchestrator{}
	orchestrator.On("Transcribe", mock.Anything, mock.Anything).Return(&transcription.Result{Text: "hi"}, nil)

	resp, err := NewTranscriptionService(orchestrator, nil).Transcribe(context.Background(), &transcription.Upload{})

	require.NoError(t, err)
	assert.Equal(t, "hi", resp.Text)
}
