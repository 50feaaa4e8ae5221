package server

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"voice2text/internal/app/metrics"
	"voice2text/internal/app/testutil"
	"voice2text/internal/app/transcription"
	"voice2text/internal/config"
)

type testEnv struct {
	tempDir     string
	staticDir   string
	credential  string
	transcriber *testutil.MockTranscriber
	media       *testutil.MockMediaTool
	metrics     *metrics.Metrics
	server      *Server
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		tempDir:     t.TempDir(),
		staticDir:   t.TempDir(),
		credential:  "sk-test",
		transcriber: testutil.NewMockTranscriber(),
		media:       testutil.NewMockMediaTool(),
		metrics:     metrics.New(),
	}
	require.NoError(t, os.WriteFile(filepath.Join(env.staticDir, "index.html"), []byte("<h1>upload</h1>"), 0o644))

	service := transcription.NewService(
		transcription.Config{TempDir: env.tempDir, MaxSize: 64},
		func() string { return env.credential },
		env.transcriber.Factory(nil),
		env.media,
		zap.NewNop(),
	)

	cfg := config.Default().Server
	cfg.StaticDir = env.staticDir
	cfg.Environment = "test"
	env.server = NewServer(cfg, service, env.metrics, zap.NewNop())
	return env
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.server.Router().ServeHTTP(w, req)
	return w
}

func uploadRequest(t *testing.T, filename string, size int) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(testutil.AudioPayload(size))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/transcribe", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func jsonBody(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestServer_TranscribeSmallFile(t *testing.T) {
	env := newTestEnv(t)
	env.transcriber.DefaultResponse = "Hello, world."

	w := env.do(uploadRequest(t, "hello.mp3", 64))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]string{"text": "Hello, world."}, jsonBody(t, w))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	testutil.AssertDirEmpty(t, env.tempDir)
}

func TestServer_TranscribeLargeFile(t *testing.T) {
	env := newTestEnv(t)
	env.media.On("ProbeDuration", mock.Anything, mock.Anything).Return(1300.0, nil)
	env.media.On("SplitSegment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	env.transcriber.ResponseFunc = func(path string) (string, error) {
		return strings.TrimSuffix(filepath.Base(path), "_long.mp3"), nil
	}

	w := env.do(uploadRequest(t, "long.mp3", 65))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "temp_chunk_0 temp_chunk_1 temp_chunk_2", jsonBody(t, w)["text"])
	testutil.AssertDirEmpty(t, env.tempDir)
}

func TestServer_NoFile(t *testing.T) {
	env := newTestEnv(t)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.Close())
	req := httptest.NewRequest(http.MethodPost, "/transcribe", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	w := env.do(req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, jsonBody(t, w), "detail")
	testutil.AssertDirEmpty(t, env.tempDir)
}

func TestServer_MissingCredential(t *testing.T) {
	env := newTestEnv(t)
	env.credential = ""

	w := env.do(uploadRequest(t, "hello.mp3", 10))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, map[string]string{"error": "transcription API key is not configured"}, jsonBody(t, w))
	assert.Equal(t, 0, env.transcriber.GetCallCount())
	testutil.AssertDirEmpty(t, env.tempDir)
}

func TestServer_SplitFailure(t *testing.T) {
	env := newTestEnv(t)
	env.media.On("ProbeDuration", mock.Anything, mock.Anything).Return(1300.0, nil)
	env.media.On("SplitSegment", mock.Anything, mock.Anything, 600.0, mock.Anything, mock.Anything).Return(assert.AnError)
	env.media.On("SplitSegment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	w := env.do(uploadRequest(t, "long.mp3", 100))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, jsonBody(t, w)["error"], "split chunk 1")
	assert.Equal(t, 1, env.transcriber.GetCallCount())
	testutil.AssertDirEmpty(t, env.tempDir)
}

func TestServer_StaticFiles(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<h1>upload</h1>")

	w = env.do(httptest.NewRequest(http.MethodGet, "/missing.js", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_TranscribeRejectsGet(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(httptest.NewRequest(http.MethodGet, "/transcribe", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestServer_HealthAndMetrics(t *testing.T) {
	env := newTestEnv(t)
	env.transcriber.DefaultResponse = "ok"

	w := env.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var health struct {
		Status    string `json:"status"`
		Timestamp int64  `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health.Status)
	assert.Positive(t, health.Timestamp)

	require.Equal(t, http.StatusOK, env.do(uploadRequest(t, "a.mp3", 10)).Code)

	w = env.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `voice2text_transcriptions_total{kind="",outcome="success",path="direct"} 1`)
	assert.Contains(t, w.Body.String(), `voice2text_http_requests_total{method="POST",route="/transcribe",status="200"} 1`)
}

func TestServer_ShutdownWithoutStart(t *testing.T) {
	env := newTestEnv(t)
	assert.NoError(t, env.server.Shutdown(context.Background()))
}
