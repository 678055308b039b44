package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"postrec/internal/config"
	"postrec/internal/extraction"
	"postrec/internal/logging"
	"postrec/internal/services"
	"postrec/internal/services/atomicparsley"
	"postrec/internal/services/ffmpeg"
	"postrec/internal/tagging"
)

func newProcessCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "process <input> [destination]",
		Short: "Extract the audio of a recording, tag it, and file it under its canonical name",
		Long: `Extract the first audio stream of <input> into a temporary .m4a inside the
destination directory, write title/artist/album/comment tags derived from the
input filename, and rename the result to "<title>-<timestamp>.m4a".

The destination defaults to paths.destination_dir. With --dry-run nothing is
tagged or renamed and the temporary file is kept for inspection.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			input, err := config.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve input path: %w", err)
			}
			info, err := os.Stat(input)
			if err != nil {
				return fmt.Errorf("inspect input %q: %w", input, err)
			}
			if info.IsDir() {
				return fmt.Errorf("input %q is a directory", input)
			}

			dest := cfg.Paths.DestinationDir
			if len(args) == 2 {
				if dest, err = config.ExpandPath(args[1]); err != nil {
					return fmt.Errorf("resolve destination path: %w", err)
				}
			}

			dry := cfg.DryRun
			if cmd.Flags().Changed("dry-run") {
				dry = dryRun
			}

			logger, logCloser, err := ctx.logger(cmd)
			if err != nil {
				return err
			}
			defer logCloser.Close()
			runCtx := services.WithRunID(cmd.Context(), uuid.NewString())

			copier, err := ffmpeg.New(cfg.Tools.FFmpeg, ffmpeg.WithLogger(logger))
			if err != nil {
				return err
			}
			writer, err := atomicparsley.New(cfg.Tools.AtomicParsley, atomicparsley.WithLogger(logger))
			if err != nil {
				return err
			}
			extractor := extraction.New(
				copier,
				tagging.New(writer, identityFromConfig(cfg), logger),
				extraction.WithOverwrite(cfg.Output.OverwriteExisting),
				extraction.WithLogger(logger),
			)

			result, err := extractor.Run(runCtx, input, dest, dry)
			if err != nil {
				return err
			}

			if dry {
				out := cmd.OutOrStdout()
				meta := result.Tagging.Metadata
				fmt.Fprintf(out, "DRY tag %s title=%q album=%q artist=%q comment=%q\n",
					result.TempPath, meta.Title, meta.Album, meta.Artist, meta.Comment)
				fmt.Fprintf(out, "DRY move %s -> %s\n", result.TempPath, result.FinalPath)
				return nil
			}

			logging.WithContext(runCtx, logger).Info("recording processed",
				logging.String("path", result.FinalPath),
				logging.String("album", string(result.Tagging.Album)),
			)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Log intended tag writes and renames without performing them")
	return cmd
}
