package transcription

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"voice2text/internal/app/api"
	"voice2text/internal/app/audio"
	apperrors "voice2text/internal/app/errors"
)

const (
	// MaxSize is the largest upload sent to the transcription API in one call.
	MaxSize int64 = 25 * 1024 * 1024
	// ChunkLength is the duration of each segment, in seconds, for larger uploads.
	ChunkLength float64 = 10 * 60

	tempPrefix  = "temp_"
	chunkPrefix = "temp_chunk_"
)

// Path records which branch produced a result.
type Path string

const (
	PathDirect  Path = "direct"
	PathChunked Path = "chunked"
)

// Upload is one file received from a caller.
type Upload struct {
	Filename string
	Body     io.Reader
}

// Result of a successful transcription
type Result struct {
	Text   string
	Path   Path
	Chunks int
	Size   int64
}

// Config holds the immutable limits of a Service.
type Config struct {
	// TempDir receives the uploaded file and its chunks.
	TempDir     string
	MaxSize     int64
	ChunkLength float64
}

// DefaultConfig returns the production limits, writing temp files to the
// working directory.
func DefaultConfig() Config {
	return Config{
		TempDir:     ".",
		MaxSize:     MaxSize,
		ChunkLength: ChunkLength,
	}
}

// CredentialSource returns the current API credential. It is consulted on
// every request; an empty string means the service is not configured.
type CredentialSource func() string

// Observer receives chunk progress for the large-file path.
type Observer interface {
	ChunksPlanned(total int)
	ChunkTranscribed(index int)
}

// Service orchestrates a single upload: persist, dispatch by size, clean up.
type Service struct {
	config         Config
	credential     CredentialSource
	newTranscriber api.Factory
	media          audio.MediaTool
	logger         *zap.Logger
	observer       Observer
}

// NewService creates a Service. Zero-valued limits in config are replaced by
// their defaults.
func NewService(config Config, credential CredentialSource, newTranscriber api.Factory, media audio.MediaTool, logger *zap.Logger) *Service {
	defaults := DefaultConfig()
	if config.TempDir == "" {
		config.TempDir = defaults.TempDir
	}
	if config.MaxSize <= 0 {
		config.MaxSize = defaults.MaxSize
	}
	if config.ChunkLength <= 0 {
		config.ChunkLength = defaults.ChunkLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		config:         config,
		credential:     credential,
		newTranscriber: newTranscriber,
		media:          media,
		logger:         logger,
	}
}

// WithObserver returns a copy of the service reporting chunk progress to o.
func (s *Service) WithObserver(o Observer) *Service {
	cp := *s
	cp.observer = o
	return &cp
}

// Config returns the limits the service runs with.
func (s *Service) Config() Config {
	return s.config
}

// Transcribe persists the upload to a temp file and returns its transcript.
// The temp file and any chunk files are removed before it returns.
func (s *Service) Transcribe(ctx context.Context, upload *Upload) (*Result, error) {
	start := time.Now()

	result, err := s.transcribe(ctx, upload)
	if err != nil {
		s.logFailure(upload, err)
		return nil, err
	}

	s.logger.Info("transcription completed",
		zap.String("filename", upload.Filename),
		zap.Int64("size", result.Size),
		zap.String("path", string(result.Path)),
		zap.Int("chunks", result.Chunks),
		zap.Duration("elapsed", time.Since(start)),
	)
	return result, nil
}

func (s *Service) transcribe(ctx context.Context, upload *Upload) (*Result, error) {
	if upload == nil || upload.Body == nil {
		return nil, apperrors.ErrNoFile
	}
	name, ok := baseName(upload.Filename)
	if !ok {
		return nil, apperrors.ErrNoFile
	}

	apiKey := s.apiKey()
	if apiKey == "" {
		return nil, apperrors.ErrMissingAPIKey
	}

	tempPath := filepath.Join(s.config.TempDir, tempPrefix+name)
	defer s.remove(tempPath)

	size, err := persist(tempPath, upload.Body)
	if err != nil {
		return nil, err
	}

	transcriber, err := s.newTranscriber(apiKey)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindServiceMisconfigured, "create transcriber")
	}

	if size <= s.config.MaxSize {
		text, err := transcriber.Transcript(ctx, tempPath)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.KindTranscriptionAPI, "transcribe")
		}
		return &Result{Text: text, Path: PathDirect, Chunks: 1, Size: size}, nil
	}

	s.logger.Info("upload exceeds size limit, transcribing in chunks",
		zap.String("filename", upload.Filename),
		zap.Int64("size", size),
		zap.Int64("max_size", s.config.MaxSize),
	)
	text, chunks, err := s.transcribeChunked(ctx, tempPath, transcriber)
	if err != nil {
		return nil, err
	}
	return &Result{Text: text, Path: PathChunked, Chunks: chunks, Size: size}, nil
}

func (s *Service) apiKey() string {
	if s.credential == nil {
		return ""
	}
	return strings.TrimSpace(s.credential())
}

func (s *Service) logFailure(upload *Upload, err error) {
	kind := apperrors.KindOf(err)
	fields := []zap.Field{zap.String("kind", string(kind)), zap.Error(err)}
	if upload != nil {
		fields = append(fields, zap.String("filename", upload.Filename))
	}

	if kind == apperrors.KindBadRequest {
		s.logger.Warn("transcription request rejected", fields...)
		return
	}
	s.logger.Error("transcription failed", fields...)
}

// remove deletes path, tolerating files that were never created.
func (s *Service) remove(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("failed to remove temp file", zap.String("path", path), zap.Error(err))
	}
}

func persist(path string, body io.Reader) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, apperrors.Wrap(err, apperrors.KindIO, "create temp file")
	}
	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		return 0, apperrors.Wrap(err, apperrors.KindIO, "write temp file")
	}
	if err := f.Close(); err != nil {
		return 0, apperrors.Wrap(err, apperrors.KindIO, "close temp file")
	}

	info, err := os.Stat(path)
	if err != nil {
		return 0, apperrors.Wrap(err, apperrors.KindIO, "stat temp file")
	}
	return info.Size(), nil
}

// baseName strips any directory part a client put in the filename.
func baseName(filename string) (string, bool) {
	filename = strings.TrimSpace(filename)
	if filename == "" {
		return "", false
	}
	name := filepath.Base(filepath.Clean(filename))
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return "", false
	}
	return name, true
}
