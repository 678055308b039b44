package services

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
)

// Executor abstracts command execution for testability. Implementations
// forward each stdout line to onStdout (when non-nil) and return everything
// the command wrote to stderr.
type Executor interface {
	Run(ctx context.Context, binary string, args []string, onStdout func(string)) ([]byte, error)
}

// CommandExecutor runs real processes via os/exec.
type CommandExecutor struct{}

// Run starts binary and blocks until it exits. A non-zero exit is returned as
// the *exec.ExitError from Wait.
func (CommandExecutor) Run(ctx context.Context, binary string, args []string, onStdout func(string)) ([]byte, error) {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if onStdout == nil {
		if err := cmd.Run(); err != nil {
			return stderr.Bytes(), err
		}
		return stderr.Bytes(), nil
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start command: %w", err)
	}

	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		onStdout(scanner.Text())
	}
	scanErr := scanner.Err()
	if scanErr != nil {
		// Keep the pipe drained so the child never blocks on a full buffer.
		_, _ = io.Copy(io.Discard, stdout)
	}

	if err := cmd.Wait(); err != nil {
		return stderr.Bytes(), err
	}
	if scanErr != nil {
		return stderr.Bytes(), fmt.Errorf("scan output: %w", scanErr)
	}
	return stderr.Bytes(), nil
}
