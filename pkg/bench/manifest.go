package bench

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/cliquebench/pkg/buildinfo"
)

// Manifest records the provenance of one benchmark run.
type Manifest struct {
	RunID      string      `json:"run_id"`
	Version    string      `json:"version"`
	Solver     string      `json:"solver"`
	StartedAt  time.Time   `json:"started_at"`
	FinishedAt time.Time   `json:"finished_at"`
	Records    int         `json:"records"`
	Failures   int         `json:"failures"`
	Files      []FileEntry `json:"files"`
}

// FileEntry describes one test file in a Manifest.
type FileEntry struct {
	N          int     `json:"n"`
	Path       string  `json:"path"`
	SHA256     string  `json:"sha256,omitempty"`
	Records    int     `json:"records"`
	DurationMS float64 `json:"duration_ms"`
	Warning    string  `json:"warning,omitempty"`
	Error      string  `json:"error,omitempty"`
}

// NewManifest builds a manifest from per-file results with a fresh run id.
// Input files are hashed when still readable.
func NewManifest(solver string, results []FileResult, started, finished time.Time) Manifest {
	m := Manifest{
		RunID:      uuid.NewString(),
		Version:    buildinfo.Version,
		Solver:     solver,
		StartedAt:  started.UTC(),
		FinishedAt: finished.UTC(),
		Files:      make([]FileEntry, 0, len(results)),
	}
	for _, res := range results {
		e := FileEntry{
			N:          res.File.N,
			Path:       res.File.Path,
			Records:    len(res.Records),
			DurationMS: float64(res.Duration.Microseconds()) / 1000,
		}
		if sum, err := hashFile(res.File.Path); err == nil {
			e.SHA256 = sum
		}
		if res.ExitErr != nil {
			e.Warning = res.ExitErr.Error()
		}
		if res.Err != nil {
			e.Error = res.Err.Error()
			m.Failures++
		}
		m.Records += e.Records
		m.Files = append(m.Files, e)
	}
	return m
}

// Save writes the manifest as indented JSON.
func (m Manifest) Save(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// ManifestPath returns the manifest location for a results file:
// "results.csv" becomes "results.manifest.json".
func ManifestPath(resultsPath string) string {
	return strings.TrimSuffix(resultsPath, filepath.Ext(resultsPath)) + ".manifest.json"
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
