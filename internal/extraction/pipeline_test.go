package extraction_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"postrec/internal/extraction"
	"postrec/internal/services/atomicparsley"
	"postrec/internal/services/ffmpeg"
	"postrec/internal/tagging"
	"postrec/internal/testsupport"
)

func TestRunWithToolStubs(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithStubbedTools())

	copier, err := ffmpeg.New(cfg.Tools.FFmpeg)
	if err != nil {
		t.Fatalf("ffmpeg.New: %v", err)
	}
	writer, err := atomicparsley.New(cfg.Tools.AtomicParsley)
	if err != nil {
		t.Fatalf("atomicparsley.New: %v", err)
	}
	tagger := tagging.New(writer, tagging.Identity{Artist: cfg.Tagging.Artist, CommentPrefix: cfg.Tagging.CommentPrefix}, nil)

	source := "Jani - 2024-06-01 21h00m00s - Saturday  Night Vibes.m4a"
	input := testsupport.WriteRecording(t, filepath.Join(testsupport.BaseDir(cfg), "incoming"), source)
	dest := cfg.Paths.DestinationDir

	result, err := extraction.New(copier, tagger).Run(context.Background(), input, dest, false)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	want := filepath.Join(dest, "Saturday Night Vibes-2024-06-01T21:00:00Z.m4a")
	if result.FinalPath != want {
		t.Fatalf("unexpected final path %q", result.FinalPath)
	}
	if data, err := os.ReadFile(want); err != nil || string(data) != testsupport.SourcePayload {
		t.Fatalf("unexpected final content %q (err %v)", data, err)
	}
	if got := testsupport.ListDir(t, dest); len(got) != 1 {
		t.Fatalf("expected a single file in destination, got %v", got)
	}

	logged, err := os.ReadFile(testsupport.TagArgsLog(cfg))
	if err != nil {
		t.Fatalf("read args log: %v", err)
	}
	args := strings.Split(strings.TrimSpace(string(logged)), "\n")
	if args[0] != result.TempPath {
		t.Fatalf("AtomicParsley should tag the temp file, got %q", args[0])
	}
	joined := strings.Join(args, "|")
	for _, fragment := range []string{
		"--title|Saturday Night Vibes",
		"--artist|Jani",
		"--composer|Jani",
		"--album|Saturday Night Vibes",
		"--comment|Original filename: " + source,
		"--overWrite",
	} {
		if !strings.Contains(joined, fragment) {
			t.Fatalf("expected %q in AtomicParsley args %v", fragment, args)
		}
	}
}
