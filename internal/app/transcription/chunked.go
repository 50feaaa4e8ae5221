package transcription

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"voice2text/internal/app/api"
	apperrors "voice2text/internal/app/errors"
)

// Chunk is one time window of the source media.
type Chunk struct {
	Index  int
	Start  float64
	Length float64
}

// PlanChunks splits duration seconds into ceil(duration/chunkLength) windows
// starting at 0, chunkLength, 2*chunkLength, ... The last window may extend
// past the end of the media; the splitter clamps it.
func PlanChunks(duration, chunkLength float64) []Chunk {
	if chunkLength <= 0 || math.IsNaN(duration) || math.IsInf(duration, 0) || duration <= 0 {
		return nil
	}
	n := int(math.Ceil(duration / chunkLength))
	return lo.Times(n, func(i int) Chunk {
		return Chunk{
			Index:  i,
			Start:  float64(i) * chunkLength,
			Length: chunkLength,
		}
	})
}

// transcribeChunked probes the media duration, then splits, transcribes and
// deletes one chunk at a time in index order. Any failure aborts the whole run.
func (s *Service) transcribeChunked(ctx context.Context, srcPath string, transcriber api.Transcriber) (string, int, error) {
	duration, err := s.media.ProbeDuration(ctx, srcPath)
	if err != nil {
		return "", 0, apperrors.Wrap(err, apperrors.KindExternalTool, "probe duration")
	}

	chunks := PlanChunks(duration, s.config.ChunkLength)
	s.logger.Info("planned chunks",
		zap.String("source", srcPath),
		zap.Float64("duration_sec", duration),
		zap.Int("chunks", len(chunks)),
	)
	if s.observer != nil {
		s.observer.ChunksPlanned(len(chunks))
	}

	fragments := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		text, err := s.transcribeChunk(ctx, srcPath, chunk, transcriber)
		if err != nil {
			return "", 0, err
		}
		fragments = append(fragments, text)
		if s.observer != nil {
			s.observer.ChunkTranscribed(chunk.Index)
		}
	}

	return strings.Join(fragments, " "), len(chunks), nil
}

func (s *Service) transcribeChunk(ctx context.Context, srcPath string, chunk Chunk, transcriber api.Transcriber) (string, error) {
	chunkPath := s.chunkPath(srcPath, chunk.Index)
	defer s.remove(chunkPath)

	if err := s.media.SplitSegment(ctx, srcPath, chunk.Start, chunk.Length, chunkPath); err != nil {
		return "", apperrors.Wrapf(err, apperrors.KindExternalTool, "split chunk %d", chunk.Index)
	}

	text, err := transcriber.Transcript(ctx, chunkPath)
	if err != nil {
		return "", apperrors.Wrapf(err, apperrors.KindTranscriptionAPI, "transcribe chunk %d", chunk.Index)
	}

	s.logger.Debug("chunk transcribed",
		zap.Int("index", chunk.Index),
		zap.Float64("start_sec", chunk.Start),
		zap.Int("chars", len(text)),
	)
	return text, nil
}

// chunkPath keeps the source extension so the splitter picks the same container.
func (s *Service) chunkPath(srcPath string, index int) string {
	name := strings.TrimPrefix(filepath.Base(srcPath), tempPrefix)
	return filepath.Join(s.config.TempDir, fmt.Sprintf("%s%d_%s", chunkPrefix, index, name))
}
