package api

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subtitle-ai/zirnevis/pkg/config"
	"github.com/subtitle-ai/zirnevis/pkg/queue"
	"github.com/subtitle-ai/zirnevis/pkg/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type staticPool struct {
	health *queue.PoolHealth
}

func (p *staticPool) Health() *queue.PoolHealth { return p.health }

func testServer(t *testing.T, pool PoolHealthReporter) (*Server, *storage.Store) {
	t.Helper()
	store := storage.New(t.TempDir())
	require.NoError(t, store.EnsureDirs())
	return NewServer(&config.Config{}, nil, store, nil, pool), store
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name       string
		pool       PoolHealthReporter
		wantStatus int
	}{
		{
			name:       "healthy pool",
			pool:       &staticPool{health: &queue.PoolHealth{IsHealthy: true}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unhealthy pool",
			pool:       &staticPool{health: &queue.PoolHealth{IsHealthy: false}},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "no pool wired",
			pool:       nil,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := testServer(t, tt.pool)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			s.Router().ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), `"version"`)
		})
	}
}

func TestCreateJobMissingFile(t *testing.T) {
	s, _ := testServer(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/jobs", nil)
	s.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "file")
}

func TestDownloadUnknownKind(t *testing.T) {
	s, _ := testServer(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/jobs/abc/download/bogus", nil)
	s.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDownloadMissingArtifact(t *testing.T) {
	s, _ := testServer(t, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/jobs/abc/download/fa_srt", nil)
	s.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDownloadServesAttachment(t *testing.T) {
	s, store := testServer(t, nil)

	path, ok := store.ArtifactPath("job-1", storage.KindFaSRT)
	require.True(t, ok)
	require.NoError(t, os.WriteFile(path, []byte("1\n00:00:00,000 --> 00:00:01,000\nسلام\n"), 0o644))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/jobs/job-1/download/fa_srt", nil)
	s.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), filepath.Base(path))
	assert.Contains(t, w.Body.String(), "سلام")
}
