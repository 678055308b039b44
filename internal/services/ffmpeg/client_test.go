package ffmpeg_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"postrec/internal/services"
	"postrec/internal/services/ffmpeg"
)

type stubExecutor struct {
	stdout []string
	stderr string
	err    error
	binary string
	args   []string
	calls  int
}

func (s *stubExecutor) Run(ctx context.Context, binary string, args []string, onStdout func(string)) ([]byte, error) {
	s.calls++
	s.binary = binary
	s.args = append([]string(nil), args...)
	for _, line := range s.stdout {
		if onStdout != nil {
			onStdout(line)
		}
	}
	return []byte(s.stderr), s.err
}

func TestNewRequiresBinary(t *testing.T) {
	if _, err := ffmpeg.New("  "); err == nil {
		t.Fatal("expected error for empty binary")
	}
}

func TestCopyAudioBuildsStreamCopyCommand(t *testing.T) {
	exec := &stubExecutor{stdout: []string{"out_time=00:00:01.000000", "progress=end"}}
	client, err := ffmpeg.New("/opt/bin/ffmpeg", ffmpeg.WithExecutor(exec))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if err := client.CopyAudio(context.Background(), "/in/rec.m4a", "/out/.postrec-1.m4a"); err != nil {
		t.Fatalf("CopyAudio returned error: %v", err)
	}
	if exec.binary != "/opt/bin/ffmpeg" {
		t.Fatalf("unexpected binary %q", exec.binary)
	}
	got := strings.Join(exec.args, " ")
	want := "-hide_banner -y -i /in/rec.m4a -vn -map a:0 -c:a copy -movflags +faststart -progress pipe:1 -nostats /out/.postrec-1.m4a"
	if got != want {
		t.Fatalf("unexpected args:\n got %s\nwant %s", got, want)
	}
}

func TestCopyAudioWrapsFailure(t *testing.T) {
	exec := &stubExecutor{stderr: "Stream map 'a:0' matches no streams.\n", err: errors.New("exit status 1")}
	client, err := ffmpeg.New("ffmpeg", ffmpeg.WithExecutor(exec))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	err = client.CopyAudio(context.Background(), "in.m4a", "out.m4a")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected ErrExternalTool, got %v", err)
	}
	if !strings.Contains(err.Error(), "matches no streams") {
		t.Fatalf("expected stderr in error, got %q", err)
	}
}

func TestCopyAudioRejectsEmptyPaths(t *testing.T) {
	exec := &stubExecutor{}
	client, err := ffmpeg.New("ffmpeg", ffmpeg.WithExecutor(exec))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if err := client.CopyAudio(context.Background(), "", "out.m4a"); !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if exec.calls != 0 {
		t.Fatalf("expected executor not to run, got %d calls", exec.calls)
	}
}
