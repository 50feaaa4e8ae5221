package audio

import (
	"bytes"
	"context"
	"math"
	"os/exec"
	"strconv"
	"strings"

	apperrors "voice2text/internal/app/errors"
)

// MediaTool is the narrow surface the transcription pipeline needs from an
// external media toolkit.
type MediaTool interface {
	// ProbeDuration returns the duration of the media file in seconds.
	ProbeDuration(ctx context.Context, filePath string) (float64, error)
	// SplitSegment copies [start, start+length) seconds of filePath into outPath
	// without re-encoding, overwriting outPath if it exists.
	SplitSegment(ctx context.Context, filePath string, start, length float64, outPath string) error
}

// FFmpeg implements MediaTool with the ffprobe and ffmpeg binaries.
type FFmpeg struct {
	ffprobePath string
	ffmpegPath  string
}

// NewFFmpeg creates an FFmpeg media tool. Empty paths fall back to the
// binaries found on PATH.
func NewFFmpeg(ffprobePath, ffmpegPath string) *FFmpeg {
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	return &FFmpeg{ffprobePath: ffprobePath, ffmpegPath: ffmpegPath}
}

// CheckAvailable verifies both binaries can be resolved.
func (f *FFmpeg) CheckAvailable() error {
	for _, bin := range []string{f.ffprobePath, f.ffmpegPath} {
		if _, err := exec.LookPath(bin); err != nil {
			return apperrors.Wrapf(err, apperrors.KindExternalTool, "%s not available", bin)
		}
	}
	return nil
}

func (f *FFmpeg) ProbeDuration(ctx context.Context, filePath string) (float64, error) {
	cmd := exec.CommandContext(ctx, f.ffprobePath, probeArgs(filePath)...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		return 0, apperrors.Wrapf(err, apperrors.KindExternalTool, "ffprobe failed (stderr: %s)", strings.TrimSpace(stderr.String()))
	}
	return parseDuration(string(output))
}

func (f *FFmpeg) SplitSegment(ctx context.Context, filePath string, start, length float64, outPath string) error {
	cmd := exec.CommandContext(ctx, f.ffmpegPath, splitArgs(filePath, start, length, outPath)...)

	// ffmpeg writes all diagnostics to stderr
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return apperrors.Wrapf(err, apperrors.KindExternalTool, "ffmpeg split at %ss failed (stderr: %s)",
			formatSeconds(start), strings.TrimSpace(stderr.String()))
	}
	return nil
}

func probeArgs(filePath string) []string {
	return []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		filePath,
	}
}

func splitArgs(filePath string, start, length float64, outPath string) []string {
	return []string{
		"-y",
		"-i", filePath,
		"-ss", formatSeconds(start),
		"-t", formatSeconds(length),
		"-acodec", "copy",
		outPath,
	}
}

func parseDuration(output string) (float64, error) {
	raw := strings.TrimSpace(output)
	duration, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, apperrors.Wrapf(apperrors.ErrInvalidDuration, apperrors.KindExternalTool, "ffprobe output %q", raw)
	}
	if math.IsNaN(duration) || math.IsInf(duration, 0) || duration < 0 {
		return 0, apperrors.Wrapf(apperrors.ErrInvalidDuration, apperrors.KindExternalTool, "ffprobe output %q", raw)
	}
	return duration, nil
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
