package progress

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

type Config struct {
	Enabled     bool
	Writer      io.Writer
	Description string
}

// ChunkReporter renders a progress bar for the chunked transcription path.
// The bar is only created once chunks are planned, so small uploads print
// nothing.
type ChunkReporter struct {
	container   *mpb.Progress
	bar         *mpb.Bar
	description string
	enabled     bool
	mu          sync.Mutex
}

func NewChunkReporter(config Config) *ChunkReporter {
	if !config.Enabled {
		return &ChunkReporter{enabled: false}
	}

	writer := config.Writer
	if writer == nil {
		writer = os.Stderr
	}
	description := config.Description
	if description == "" {
		description = "Transcribing chunks"
	}

	container := mpb.New(
		mpb.WithOutput(writer),
		mpb.WithRefreshRate(120*time.Millisecond),
	)

	return &ChunkReporter{
		container:   container,
		description: description,
		enabled:     true,
	}
}

func (r *ChunkReporter) ChunksPlanned(total int) {
	if !r.enabled {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bar != nil {
		return
	}

	r.bar = r.container.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name(r.description+" ", decor.WC{W: len(r.description) + 1, C: decor.DindentRight}),
			decor.CountersNoUnit("(%d/%d)", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.NewPercentage("%.1f", decor.WCSyncSpace),
			decor.OnComplete(
				decor.EwmaETA(decor.ET_STYLE_GO, 30, decor.WCSyncWidth), " ✓ ",
			),
		),
	)
}

func (r *ChunkReporter) ChunkTranscribed(int) {
	if !r.enabled {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bar != nil {
		r.bar.EwmaIncrement(time.Second)
	}
}

// Wait flushes the bar. A bar left incomplete by a failed transcription is
// aborted in place.
func (r *ChunkReporter) Wait() {
	if !r.enabled {
		return
	}

	r.mu.Lock()
	if r.bar != nil && !r.bar.Completed() {
		r.bar.Abort(false)
	}
	r.mu.Unlock()
	r.container.Wait()
}

func IsTTY(writer io.Writer) bool {
	if writer == nil {
		return false
	}

	if file, ok := writer.(*os.File); ok {
		stat, err := file.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

func ShouldShowProgress(forced bool) bool {
	if forced {
		return true
	}

	return IsTTY(os.Stderr)
}
