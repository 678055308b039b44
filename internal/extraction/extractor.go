package extraction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"postrec/internal/fileutil"
	"postrec/internal/logging"
	"postrec/internal/services"
	"postrec/internal/services/ffmpeg"
	"postrec/internal/tagging"
)

// State reports how far a run progressed.
type State string

const (
	StateStart     State = "start"
	StateExtracted State = "extracted"
	StateTagged    State = "tagged"
	StateDone      State = "done"
	StateFailed    State = "failed"
)

const (
	tempPattern = ".postrec-*.m4a"
	dirMode     = 0o755
	fileMode    = 0o644
)

// Tagger writes metadata into the media file and returns the canonical name.
type Tagger interface {
	Tag(ctx context.Context, path, sourceName string, dryRun bool) (tagging.Result, error)
}

// Result summarises a run. TempPath stays populated in dry-run mode so the
// caller can point the operator at the inspection copy.
type Result struct {
	State     State
	Input     string
	TempPath  string
	FinalPath string
	DryRun    bool
	Tagging   tagging.Result
}

// Extractor coordinates extraction, tagging, and the final move.
type Extractor struct {
	copier    ffmpeg.StreamCopier
	tagger    Tagger
	overwrite bool
	logger    *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithOverwrite lets the final rename replace an existing canonical file.
func WithOverwrite(overwrite bool) Option {
	return func(e *Extractor) { e.overwrite = overwrite }
}

// WithLogger attaches a logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New constructs an Extractor.
func New(copier ffmpeg.StreamCopier, tagger Tagger, opts ...Option) *Extractor {
	e := &Extractor{copier: copier, tagger: tagger, logger: logging.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = logging.NewComponentLogger(e.logger, "extraction")
	return e
}

// Run processes input into destDir. In dry-run mode tags are not written, the
// rename is only logged, and the temporary file is left in place.
func (e *Extractor) Run(ctx context.Context, input, destDir string, dryRun bool) (result Result, err error) {
	result = Result{State: StateStart, Input: input, DryRun: dryRun}
	logger := logging.WithContext(ctx, e.logger).With(logging.String("input", input))
	defer func() {
		if err != nil {
			result.State = StateFailed
			logger.Debug("run failed", logging.Error(err))
		}
	}()

	if e.copier == nil || e.tagger == nil {
		return result, services.Wrap(services.ErrConfiguration, "extract", "", "stream copier and tagger are required", nil)
	}
	if strings.TrimSpace(input) == "" || strings.TrimSpace(destDir) == "" {
		return result, services.Wrap(services.ErrConfiguration, "extract", "", "input and destination are required", nil)
	}

	if err := os.MkdirAll(destDir, dirMode); err != nil {
		return result, fmt.Errorf("create destination %q: %w", destDir, err)
	}
	tempPath, err := createTemp(destDir)
	if err != nil {
		return result, err
	}
	result.TempPath = tempPath

	owned := !dryRun
	defer func() {
		if !owned {
			return
		}
		if rmErr := fileutil.RemoveIfExists(tempPath); rmErr != nil {
			logger.Warn("temporary file cleanup failed",
				logging.String("path", tempPath),
				logging.Error(rmErr),
				logging.String("impact", "orphaned partial file in destination"),
				logging.String("hint", "remove it manually"),
			)
		}
	}()

	if err := e.copier.CopyAudio(services.WithStage(ctx, "extract"), input, tempPath); err != nil {
		return result, err
	}
	result.State = StateExtracted
	logger.Debug("audio extracted", logging.String("state", string(result.State)), logging.String("temp", tempPath))

	tagResult, err := e.tagger.Tag(ctx, tempPath, filepath.Base(input), dryRun)
	if err != nil {
		return result, err
	}
	result.Tagging = tagResult
	result.State = StateTagged
	result.FinalPath = filepath.Join(destDir, tagResult.CanonicalName)

	moveLogger := logging.WithContext(services.WithStage(ctx, "move"), e.logger)
	if dryRun {
		moveLogger.Info("dry run: file not moved",
			logging.String("from", tempPath),
			logging.String("to", result.FinalPath),
			logging.Bool(logging.FieldDryRun, true),
		)
		return result, nil
	}

	if err := os.Chmod(tempPath, fileMode); err != nil {
		return result, fmt.Errorf("set permissions on %q: %w", tempPath, err)
	}
	if err := fileutil.MoveFile(tempPath, result.FinalPath, e.overwrite); err != nil {
		if errors.Is(err, fileutil.ErrDestinationExists) {
			return result, err
		}
		return result, fmt.Errorf("move %q to %q: %w", tempPath, result.FinalPath, err)
	}
	owned = false
	result.State = StateDone
	moveLogger.Debug("recording stored",
		logging.String("state", string(result.State)),
		logging.String("path", result.FinalPath),
	)
	return result, nil
}

func createTemp(dir string) (string, error) {
	file, err := os.CreateTemp(dir, tempPattern)
	if err != nil {
		return "", fmt.Errorf("create temporary file in %q: %w", dir, err)
	}
	path := file.Name()
	if err := file.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("close temporary file %q: %w", path, err)
	}
	return path, nil
}
