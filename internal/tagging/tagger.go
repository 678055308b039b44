package tagging

import (
	"context"
	"log/slog"
	"time"

	"postrec/internal/album"
	"postrec/internal/logging"
	"postrec/internal/naming"
	"postrec/internal/services"
	"postrec/internal/tags"
)

// MetadataWriter replaces the tag fields of a media file in place.
type MetadataWriter interface {
	WriteTags(ctx context.Context, path string, meta tags.Metadata) error
}

// Identity is the fixed artist information stamped onto every recording.
type Identity struct {
	Artist        string
	CommentPrefix string
}

// Result describes the tagging decision for one recording.
type Result struct {
	Name          naming.DecodedName
	Album         album.Category
	Metadata      tags.Metadata
	CanonicalName string
	// Written reports whether the writer ran (false in dry-run mode).
	Written bool
}

// invalidDate marks a recording whose timestamp fields are out of range.
// Such names are still tagged and renamed verbatim.
const invalidDate = "invalid date"

// Tagger computes metadata for recordings and writes it.
type Tagger struct {
	writer   MetadataWriter
	identity Identity
	logger   *slog.Logger
}

// New constructs a Tagger. writer may be nil when only Plan or dry runs are used.
func New(writer MetadataWriter, identity Identity, logger *slog.Logger) *Tagger {
	return &Tagger{
		writer:   writer,
		identity: identity,
		logger:   logging.NewComponentLogger(logger, "tagging"),
	}
}

// Plan decodes sourceName and derives the metadata and canonical filename
// without touching the filesystem.
func (t *Tagger) Plan(sourceName string) (Result, error) {
	name, err := naming.Decode(sourceName)
	if err != nil {
		return Result{}, err
	}
	category := album.Classify(name.Title)
	return Result{
		Name:  name,
		Album: category,
		Metadata: tags.Metadata{
			Title:    name.Title,
			Artist:   t.identity.Artist,
			Composer: t.identity.Artist,
			Album:    string(category),
			Comment:  t.identity.CommentPrefix + sourceName,
		},
		CanonicalName: name.CanonicalName(),
	}, nil
}

// Tag writes the metadata derived from sourceName into the file at path and
// returns the canonical filename. The file itself is never renamed. A
// malformed sourceName yields the *naming.FormatError unchanged.
func (t *Tagger) Tag(ctx context.Context, path, sourceName string, dryRun bool) (Result, error) {
	ctx = services.WithStage(ctx, "tag")
	logger := logging.WithContext(ctx, t.logger)

	result, err := t.Plan(sourceName)
	if err != nil {
		return Result{}, err
	}

	reason := "title matched show"
	if result.Album == album.Fallback {
		reason = "no show matched title"
	}
	recordedAt := invalidDate
	if at, err := result.Name.Time(); err == nil {
		recordedAt = at.Format(time.RFC3339)
	}
	attrs := append(logging.DecisionAttrs("album", string(result.Album), reason),
		logging.String("file", path),
		logging.String("recorded_at", recordedAt),
		logging.String("title", result.Metadata.Title),
		logging.String("artist", result.Metadata.Artist),
		logging.String("comment", result.Metadata.Comment),
		logging.String("final_name", result.CanonicalName),
	)

	if dryRun {
		logger.Info("dry run: tags not written", logging.Args(append(attrs, logging.Bool(logging.FieldDryRun, true))...)...)
		return result, nil
	}

	if t.writer == nil {
		return Result{}, services.Wrap(services.ErrConfiguration, "tag", "", "no metadata writer configured", nil)
	}
	if err := t.writer.WriteTags(ctx, path, result.Metadata); err != nil {
		return Result{}, err
	}
	result.Written = true
	logger.Debug("tags written", logging.Args(attrs...)...)
	return result, nil
}
