package extraction_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"postrec/internal/extraction"
	"postrec/internal/fileutil"
	"postrec/internal/naming"
	"postrec/internal/services"
	"postrec/internal/tagging"
	"postrec/internal/tags"
)

const (
	sourceName = "Jani - 2024-05-11 20h15m30s - Unser Freitag Mix.m4a"
	finalName  = "Unser Freitag Mix-2024-05-11T20:15:30Z.m4a"
	payload    = "audio-bytes"
)

type fakeCopier struct {
	err   error
	calls int
}

func (f *fakeCopier) CopyAudio(ctx context.Context, input, output string) error {
	f.calls++
	if f.err != nil {
		// Simulate a partially written container before the failure.
		_ = os.WriteFile(output, []byte("partial"), 0o600)
		return f.err
	}
	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	return os.WriteFile(output, data, 0o600)
}

type fakeWriter struct {
	err   error
	calls int
	meta  tags.Metadata
}

func (f *fakeWriter) WriteTags(ctx context.Context, path string, meta tags.Metadata) error {
	f.calls++
	f.meta = meta
	if _, err := os.Stat(path); err != nil {
		return err
	}
	return f.err
}

func newTagger(writer tagging.MetadataWriter) *tagging.Tagger {
	return tagging.New(writer, tagging.Identity{Artist: "Jani", CommentPrefix: "Original filename: "}, nil)
}

func writeSource(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	return path
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}

func TestRunStoresTaggedRecording(t *testing.T) {
	input := writeSource(t, sourceName)
	dest := filepath.Join(t.TempDir(), "library", "recordings")
	writer := &fakeWriter{}
	extractor := extraction.New(&fakeCopier{}, newTagger(writer))

	result, err := extractor.Run(context.Background(), input, dest, false)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if result.State != extraction.StateDone {
		t.Fatalf("expected state done, got %s", result.State)
	}
	if result.FinalPath != filepath.Join(dest, finalName) {
		t.Fatalf("unexpected final path %q", result.FinalPath)
	}
	if got := listDir(t, dest); len(got) != 1 || got[0] != finalName {
		t.Fatalf("expected only %q in destination, got %v", finalName, got)
	}
	data, err := os.ReadFile(result.FinalPath)
	if err != nil || string(data) != payload {
		t.Fatalf("unexpected final content %q (err %v)", data, err)
	}
	info, err := os.Stat(result.FinalPath)
	if err != nil {
		t.Fatalf("stat final: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o644 {
		t.Fatalf("expected mode 0644, got %v", perm)
	}
	if writer.calls != 1 || writer.meta.Album != "Unser Freitag" || writer.meta.Comment != "Original filename: "+sourceName {
		t.Fatalf("unexpected tag write: calls=%d meta=%+v", writer.calls, writer.meta)
	}
	if _, err := os.Stat(input); err != nil {
		t.Fatalf("source must be left untouched: %v", err)
	}
}

func TestRunFailureLeavesNoFiles(t *testing.T) {
	toolErr := services.Wrap(services.ErrExternalTool, "test", "tool", "exit status 1", nil)
	tests := []struct {
		name       string
		sourceName string
		copier     *fakeCopier
		writer     *fakeWriter
		wantErr    error
	}{
		{
			name:       "extraction fails",
			sourceName: sourceName,
			copier:     &fakeCopier{err: toolErr},
			writer:     &fakeWriter{},
			wantErr:    services.ErrExternalTool,
		},
		{
			name:       "tagging fails",
			sourceName: sourceName,
			copier:     &fakeCopier{},
			writer:     &fakeWriter{err: toolErr},
			wantErr:    services.ErrExternalTool,
		},
		{
			name:       "filename does not decode",
			sourceName: "holiday.mkv",
			copier:     &fakeCopier{},
			writer:     &fakeWriter{},
			wantErr:    naming.ErrFilenameFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := writeSource(t, tt.sourceName)
			dest := t.TempDir()
			extractor := extraction.New(tt.copier, newTagger(tt.writer))

			result, err := extractor.Run(context.Background(), input, dest, false)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if result.State != extraction.StateFailed {
				t.Fatalf("expected failed state, got %s", result.State)
			}
			if got := listDir(t, dest); len(got) != 0 {
				t.Fatalf("expected empty destination, got %v", got)
			}
		})
	}
}

func TestRunFormatErrorNamesSourceFile(t *testing.T) {
	input := writeSource(t, "holiday.mkv")
	extractor := extraction.New(&fakeCopier{}, newTagger(&fakeWriter{}))

	_, err := extractor.Run(context.Background(), input, t.TempDir(), false)
	var formatErr *naming.FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("expected FormatError, got %v", err)
	}
	if formatErr.Filename != "holiday.mkv" {
		t.Fatalf("expected source basename in error, got %q", formatErr.Filename)
	}
}

func TestRunDryRunLeavesOnlyTemp(t *testing.T) {
	input := writeSource(t, sourceName)
	dest := t.TempDir()
	writer := &fakeWriter{}
	extractor := extraction.New(&fakeCopier{}, newTagger(writer))

	result, err := extractor.Run(context.Background(), input, dest, true)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if writer.calls != 0 {
		t.Fatalf("dry run must not write tags, got %d calls", writer.calls)
	}
	if result.State != extraction.StateTagged {
		t.Fatalf("expected tagged state, got %s", result.State)
	}
	if result.FinalPath != filepath.Join(dest, finalName) {
		t.Fatalf("unexpected planned path %q", result.FinalPath)
	}
	got := listDir(t, dest)
	if len(got) != 1 || got[0] != filepath.Base(result.TempPath) {
		t.Fatalf("expected only the temp file, got %v", got)
	}
	if !strings.HasPrefix(got[0], ".postrec-") || filepath.Ext(got[0]) != ".m4a" {
		t.Fatalf("unexpected temp name %q", got[0])
	}
	if _, err := os.Stat(result.FinalPath); !os.IsNotExist(err) {
		t.Fatalf("final file must not exist in dry run, stat err %v", err)
	}
}

func TestRunRefusesToReplaceExistingRecording(t *testing.T) {
	input := writeSource(t, sourceName)
	dest := t.TempDir()
	existing := filepath.Join(dest, finalName)
	if err := os.WriteFile(existing, []byte("keep me"), 0o644); err != nil {
		t.Fatalf("seed existing: %v", err)
	}
	extractor := extraction.New(&fakeCopier{}, newTagger(&fakeWriter{}))

	result, err := extractor.Run(context.Background(), input, dest, false)
	if !errors.Is(err, fileutil.ErrDestinationExists) {
		t.Fatalf("expected ErrDestinationExists, got %v", err)
	}
	if result.State != extraction.StateFailed {
		t.Fatalf("expected failed state, got %s", result.State)
	}
	if got := listDir(t, dest); len(got) != 1 || got[0] != finalName {
		t.Fatalf("expected only the existing recording, got %v", got)
	}
	data, _ := os.ReadFile(existing)
	if string(data) != "keep me" {
		t.Fatalf("existing recording modified: %q", data)
	}
}

func TestRunOverwriteReplacesExistingRecording(t *testing.T) {
	input := writeSource(t, sourceName)
	dest := t.TempDir()
	existing := filepath.Join(dest, finalName)
	if err := os.WriteFile(existing, []byte("old"), 0o644); err != nil {
		t.Fatalf("seed existing: %v", err)
	}
	extractor := extraction.New(&fakeCopier{}, newTagger(&fakeWriter{}), extraction.WithOverwrite(true))

	if _, err := extractor.Run(context.Background(), input, dest, false); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	data, _ := os.ReadFile(existing)
	if string(data) != payload {
		t.Fatalf("expected replaced content, got %q", data)
	}
	if got := listDir(t, dest); len(got) != 1 {
		t.Fatalf("expected a single file, got %v", got)
	}
}

func TestRunRequiresInputs(t *testing.T) {
	extractor := extraction.New(&fakeCopier{}, newTagger(&fakeWriter{}))
	if _, err := extractor.Run(context.Background(), "", t.TempDir(), false); !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if _, err := extraction.New(nil, nil).Run(context.Background(), "in.m4a", t.TempDir(), false); !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}
