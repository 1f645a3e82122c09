// Package storage manages the on-disk layout of job artifacts under a
// single data root:
//
//	uploads/{job_id}__{filename}
//	work/{job_id}/normalized.wav, asr.json
//	outputs/{job_id}__en.srt, {job_id}__fa.srt
//	reports/{job_id}__qa_report.json, {job_id}__librarian.json
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Artifact kinds served by the download endpoint.
const (
	KindEnSRT     = "en_srt"
	KindFaSRT     = "fa_srt"
	KindQAReport  = "qa_report"
	KindLibrarian = "librarian"
)

// Store resolves and writes job artifacts below the data root.
type Store struct {
	base string
}

// New returns a Store rooted at dataDir. Directories are created lazily by
// the write helpers.
func New(dataDir string) *Store {
	return &Store{base: dataDir}
}

// EnsureDirs creates the top-level layout.
func (s *Store) EnsureDirs() error {
	for _, d := range []string{"uploads", "work", "outputs", "reports"} {
		if err := os.MkdirAll(filepath.Join(s.base, d), 0o755); err != nil {
			return fmt.Errorf("failed to create %s dir: %w", d, err)
		}
	}
	return nil
}

// SaveUpload streams an uploaded file to uploads/{job_id}__{filename} and
// returns the stored path.
func (s *Store) SaveUpload(jobID, filename string, src io.Reader) (string, error) {
	if err := s.EnsureDirs(); err != nil {
		return "", err
	}
	safe := strings.ReplaceAll(filename, "/", "_")
	if safe == "" {
		safe = "upload"
	}
	path := filepath.Join(s.base, "uploads", jobID+"__"+safe)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	return path, nil
}

// JobWorkdir creates (if needed) and returns work/{job_id}.
func (s *Store) JobWorkdir(jobID string) (string, error) {
	dir := filepath.Join(s.base, "work", jobID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create workdir: %w", err)
	}
	return dir, nil
}

// WorkFilePath returns work/{job_id}/{name}, creating the directory.
func (s *Store) WorkFilePath(jobID, name string) (string, error) {
	dir, err := s.JobWorkdir(jobID)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

// SaveOutput writes outputs/{job_id}__{name} and returns the path.
func (s *Store) SaveOutput(jobID, name, content string) (string, error) {
	if err := s.EnsureDirs(); err != nil {
		return "", err
	}
	path := filepath.Join(s.base, "outputs", jobID+"__"+name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write output %s: %w", name, err)
	}
	return path, nil
}

// SaveReport writes reports/{job_id}__{name} and returns the path.
func (s *Store) SaveReport(jobID, name string, data []byte) (string, error) {
	if err := s.EnsureDirs(); err != nil {
		return "", err
	}
	path := filepath.Join(s.base, "reports", jobID+"__"+name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write report %s: %w", name, err)
	}
	return path, nil
}

// ArtifactPath maps a download kind to its path. The boolean reports
// whether the kind is known; existence is the caller's concern.
func (s *Store) ArtifactPath(jobID, kind string) (string, bool) {
	switch kind {
	case KindEnSRT:
		return filepath.Join(s.base, "outputs", jobID+"__en.srt"), true
	case KindFaSRT:
		return filepath.Join(s.base, "outputs", jobID+"__fa.srt"), true
	case KindQAReport:
		return filepath.Join(s.base, "reports", jobID+"__qa_report.json"), true
	case KindLibrarian:
		return filepath.Join(s.base, "reports", jobID+"__librarian.json"), true
	default:
		return "", false
	}
}
