package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveUploadSanitizesFilename(t *testing.T) {
	s := New(t.TempDir())

	path, err := s.SaveUpload("job-1", "../etc/passwd", strings.NewReader("data"))
	require.NoError(t, err)

	assert.Equal(t, "job-1__.._etc_passwd", filepath.Base(path))
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "data", string(content))
}

func TestSaveUploadEmptyFilename(t *testing.T) {
	s := New(t.TempDir())

	path, err := s.SaveUpload("job-1", "", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "job-1__upload", filepath.Base(path))
}

func TestWorkFilePathCreatesWorkdir(t *testing.T) {
	base := t.TempDir()
	s := New(base)

	path, err := s.WorkFilePath("job-2", "asr.json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "work", "job-2", "asr.json"), path)
	assert.DirExists(t, filepath.Join(base, "work", "job-2"))
}

func TestSaveOutputAndReport(t *testing.T) {
	s := New(t.TempDir())

	outPath, err := s.SaveOutput("job-3", "fa.srt", "1\n")
	require.NoError(t, err)
	assert.FileExists(t, outPath)

	repPath, err := s.SaveReport("job-3", "qa_report.json", []byte("{}"))
	require.NoError(t, err)
	assert.FileExists(t, repPath)
}

func TestArtifactPathRoundTrip(t *testing.T) {
	s := New(t.TempDir())

	outPath, err := s.SaveOutput("job-4", "en.srt", "1\n")
	require.NoError(t, err)

	got, ok := s.ArtifactPath("job-4", KindEnSRT)
	require.True(t, ok)
	assert.Equal(t, outPath, got)

	repPath, err := s.SaveReport("job-4", "librarian.json", []byte("{}"))
	require.NoError(t, err)

	got, ok = s.ArtifactPath("job-4", KindLibrarian)
	require.True(t, ok)
	assert.Equal(t, repPath, got)
}

func TestArtifactPathUnknownKind(t *testing.T) {
	s := New(t.TempDir())

	_, ok := s.ArtifactPath("job-5", "screenplay")
	assert.False(t, ok)
}
