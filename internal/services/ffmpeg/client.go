package ffmpeg

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"postrec/internal/logging"
	"postrec/internal/services"
)

// StreamCopier copies the first audio stream of input into output.
type StreamCopier interface {
	CopyAudio(ctx context.Context, input, output string) error
}

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec services.Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// WithLogger attaches a logger for progress output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Client wraps ffmpeg CLI interactions.
type Client struct {
	binary string
	exec   services.Executor
	logger *slog.Logger
}

// New constructs an ffmpeg client.
func New(binary string, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("ffmpeg binary required")
	}
	client := &Client{
		binary: binary,
		exec:   services.CommandExecutor{},
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(client)
	}
	client.logger = logging.NewComponentLogger(client.logger, "ffmpeg")
	return client, nil
}

// CopyAudio runs ffmpeg, overwriting output. A non-zero exit is reported as
// services.ErrExternalTool.
func (c *Client) CopyAudio(ctx context.Context, input, output string) error {
	if strings.TrimSpace(input) == "" || strings.TrimSpace(output) == "" {
		return services.Wrap(services.ErrConfiguration, "extract", "ffmpeg", "input and output paths required", nil)
	}
	logger := logging.WithContext(ctx, c.logger)
	args := buildArgs(input, output)
	logger.Debug("ffmpeg starting", logging.String("command", c.binary+" "+strings.Join(args, " ")))

	stderr, err := c.exec.Run(ctx, c.binary, args, func(line string) {
		logger.Debug("ffmpeg progress", logging.String("line", line))
	})
	if err != nil {
		return services.ToolFailure("extract", c.binary, stderr, err)
	}
	return nil
}

func buildArgs(input, output string) []string {
	return []string{
		"-hide_banner",
		"-y",
		"-i", input,
		"-vn",
		"-map", "a:0",
		"-c:a", "copy",
		"-movflags", "+faststart",
		"-progress", "pipe:1",
		"-nostats",
		output,
	}
}
