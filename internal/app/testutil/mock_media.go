package testutil

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/stretchr/testify/mock"
	"voice2text/internal/app/audio"
)

var _ audio.MediaTool = (*MockMediaTool)(nil)

// MockMediaTool is a testify mock of audio.MediaTool. A successful
// SplitSegment writes a small placeholder file at outPath, the way ffmpeg would.
type MockMediaTool struct {
	mock.Mock

	mu         sync.Mutex
	SplitCalls []SplitCall
}

// SplitCall records one SplitSegment invocation
type SplitCall struct {
	FilePath string
	Start    float64
	Length   float64
	OutPath  string
}

func NewMockMediaTool() *MockMediaTool {
	return &MockMediaTool{}
}

func (m *MockMediaTool) ProbeDuration(ctx context.Context, filePath string) (float64, error) {
	args := m.Called(ctx, filePath)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockMediaTool) SplitSegment(ctx context.Context, filePath string, start, length float64, outPath string) error {
	m.mu.Lock()
	m.SplitCalls = append(m.SplitCalls, SplitCall{FilePath: filePath, Start: start, Length: length, OutPath: outPath})
	m.mu.Unlock()

	args := m.Called(ctx, filePath, start, length, outPath)
	if err := args.Error(0); err != nil {
		return err
	}
	return os.WriteFile(outPath, []byte(fmt.Sprintf("segment %v+%v of %s", start, length, filePath)), 0o644)
}

// GetSplitStarts returns the requested start offsets in call order
func (m *MockMediaTool) GetSplitStarts() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	starts := make([]float64, 0, len(m.SplitCalls))
	for _, call := range m.SplitCalls {
		starts = append(starts, call.Start)
	}
	return starts
}

// GetSplitOutPaths returns the chunk paths in call order
func (m *MockMediaTool) GetSplitOutPaths() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	paths := make([]string, 0, len(m.SplitCalls))
	for _, call := range m.SplitCalls {
		paths = append(paths, call.OutPath)
	}
	return paths
}
