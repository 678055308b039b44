package atomicparsley

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"postrec/internal/logging"
	"postrec/internal/services"
	"postrec/internal/tags"
)

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

// WithLogger attaches a logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Client wraps AtomicParsley CLI interactions.
type Client struct {
	binary string
	exec   services.Executor
	logger *slog.Logger
}

// New constructs an AtomicParsley client.
func New(binary string, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("atomicparsley binary required")
	}
	client := &Client{
		binary: binary,
		exec:   services.CommandExecutor{},
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(client)
	}
	client.logger = logging.NewComponentLogger(client.logger, "atomicparsley")
	return client, nil
}

// WriteTags replaces the tag fields of the file at path. AtomicParsley is run
// with --overWrite so no "-temp-" sibling file is left behind.
func (c *Client) WriteTags(ctx context.Context, path string, meta tags.Metadata) error {
	if strings.TrimSpace(path) == "" {
		return services.Wrap(services.ErrConfiguration, "tag", "atomicparsley", "file path required", nil)
	}
	args := buildArgs(path, meta)
	logging.WithContext(ctx, c.logger).Debug("atomicparsley starting",
		logging.String("file", path),
		logging.String("album", meta.Album),
	)
	stderr, err := c.exec.Run(ctx, c.binary, args, nil)
	if err != nil {
		return services.ToolFailure("tag", c.binary, stderr, err)
	}
	return nil
}

func buildArgs(path string, meta tags.Metadata) []string {
	return []string{
		path,
		"--title", meta.Title,
		"--artist", meta.Artist,
		"--composer", meta.Composer,
		"--album", meta.Album,
		"--comment", meta.Comment,
		"--overWrite",
	}
}
