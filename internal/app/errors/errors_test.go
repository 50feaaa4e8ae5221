package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "plain error",
			err:      New(KindBadRequest, "no file uploaded"),
			expected: "no file uploaded",
		},
		{
			name:     "formatted error",
			err:      Newf(KindExternalTool, "ffprobe exited with %d", 1),
			expected: "ffprobe exited with 1",
		},
		{
			name:     "wrapped error",
			err:      Wrap(io.ErrUnexpectedEOF, KindIO, "write temp file"),
			expected: "write temp file: unexpected EOF",
		},
		{
			name:     "wrapped formatted error",
			err:      Wrapf(io.EOF, KindTranscriptionAPI, "transcribe chunk %d", 3),
			expected: "transcribe chunk 3: EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, KindIO, "ignored"))
	assert.Nil(t, Wrapf(nil, KindIO, "ignored %d", 1))
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Kind
	}{
		{"nil", nil, ""},
		{"foreign error", io.EOF, KindInternal},
		{"direct", ErrMissingAPIKey, KindServiceMisconfigured},
		{"wrapped by fmt", fmt.Errorf("outer: %w", ErrNoFile), KindBadRequest},
		{"outermost kind wins", Wrap(ErrInvalidDuration, KindTranscriptionAPI, "chunk"), KindTranscriptionAPI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, KindOf(tt.err))
		})
	}
}

func TestIsMatchesSentinels(t *testing.T) {
	wrapped := Wrap(ErrInvalidDuration, KindExternalTool, "probe duration")

	assert.True(t, stderrors.Is(wrapped, ErrInvalidDuration))
	assert.False(t, stderrors.Is(wrapped, ErrNoFile))
	assert.True(t, stderrors.Is(New(KindBadRequest, "no file uploaded"), ErrNoFile))
	assert.False(t, stderrors.Is(New(KindIO, "no file uploaded"), ErrNoFile))
	assert.True(t, IsKind(wrapped, KindExternalTool))
	assert.Equal(t, ErrInvalidDuration, stderrors.Unwrap(wrapped))
}
