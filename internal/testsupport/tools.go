package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// FFmpegCopyScript mimics a successful stream copy: it copies the file after
// -i to the last argument and emits one progress line on stdout.
const FFmpegCopyScript = `in=""
out=""
while [ $# -gt 0 ]; do
  if [ "$1" = "-i" ]; then in="$2"; shift 2; continue; fi
  out="$1"
  shift
done
echo "progress=end"
cp "$in" "$out"
`

// ArgsLogScript returns a script body that writes each argument on its own
// line to logPath and exits 0.
func ArgsLogScript(logPath string) string {
	return `printf '%s\n' "$@" > "` + logPath + `"
`
}

// FailScript returns a script body that prints message on stderr and exits 1.
func FailScript(message string) string {
	return "echo '" + message + "' >&2\nexit 1\n"
}

// WriteStub writes an executable shell script named name into dir and returns
// its path.
func WriteStub(t testing.TB, dir, name, body string) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir stub dir: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", name, err)
	}
	return path
}
