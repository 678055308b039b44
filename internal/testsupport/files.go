// Package testsupport provides fixtures shared by package tests: temp
// configurations, stub tool binaries, and source recordings.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// SourcePayload is the content WriteRecording places in fake recordings.
const SourcePayload = "fake-recording"

// WriteRecording creates a fake source recording named name inside dir and
// returns its path.
func WriteRecording(t testing.TB, dir, name string) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", name, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(SourcePayload), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// ListDir returns the entry names of dir, failing the test when it cannot be read.
func ListDir(t testing.TB, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir %s: %v", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}
