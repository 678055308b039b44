package fileutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestMoveFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, ".postrec-1.m4a")
	dst := filepath.Join(dir, "Mix-2024-05-11T20:15:30Z.m4a")
	writeFile(t, src, "audio")

	if err := MoveFile(src, dst, false); err != nil {
		t.Fatal(err)
	}
	if got := readFile(t, dst); got != "audio" {
		t.Fatalf("content mismatch: got %q", got)
	}
	if _, err := os.Stat(src); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected source to be gone, got %v", err)
	}
}

func TestMoveFileRefusesExistingDestination(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.m4a")
	dst := filepath.Join(dir, "dst.m4a")
	writeFile(t, src, "new")
	writeFile(t, dst, "old")

	err := MoveFile(src, dst, false)
	if !errors.Is(err, ErrDestinationExists) {
		t.Fatalf("expected ErrDestinationExists, got %v", err)
	}
	if got := readFile(t, dst); got != "old" {
		t.Fatalf("existing destination modified: %q", got)
	}
	if got := readFile(t, src); got != "new" {
		t.Fatalf("source modified: %q", got)
	}
}

func TestMoveFileOverwrite(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.m4a")
	dst := filepath.Join(dir, "dst.m4a")
	writeFile(t, src, "new")
	writeFile(t, dst, "old")

	if err := MoveFile(src, dst, true); err != nil {
		t.Fatal(err)
	}
	if got := readFile(t, dst); got != "new" {
		t.Fatalf("expected destination replaced, got %q", got)
	}
}

func TestMoveFileMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := MoveFile(filepath.Join(dir, "nope"), filepath.Join(dir, "dst"), false)
	if err == nil {
		t.Fatal("expected error for missing source")
	}
	if errors.Is(err, ErrDestinationExists) {
		t.Fatalf("missing source misreported as collision: %v", err)
	}
}

func TestLinkAndRemove(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	writeFile(t, src, "data")

	if err := linkAndRemove(src, dst); err != nil {
		t.Fatal(err)
	}
	if got := readFile(t, dst); got != "data" {
		t.Fatalf("content mismatch: %q", got)
	}

	writeFile(t, src, "again")
	if err := linkAndRemove(src, dst); !errors.Is(err, ErrDestinationExists) {
		t.Fatalf("expected ErrDestinationExists, got %v", err)
	}
}

func TestRemoveIfExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tmp.m4a")
	writeFile(t, path, "x")

	if err := RemoveIfExists(path); err != nil {
		t.Fatal(err)
	}
	if err := RemoveIfExists(path); err != nil {
		t.Fatalf("expected missing file to be ignored, got %v", err)
	}
	if err := RemoveIfExists(""); err != nil {
		t.Fatalf("expected empty path to be ignored, got %v", err)
	}
}
