package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"postrec/internal/tagging"
)

func newPlanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "plan <filename>...",
		Short: "Show the album and canonical name each filename would receive",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			tagger := tagging.New(nil, identityFromConfig(cfg), nil)

			rows := make([][]string, 0, len(args))
			failed := 0
			for _, arg := range args {
				name := filepath.Base(arg)
				result, err := tagger.Plan(name)
				if err != nil {
					failed++
					rows = append(rows, []string{name, "(does not match pattern)", "", "", ""})
					continue
				}
				timestamp := result.Name.Timestamp()
				if _, err := result.Name.Time(); err != nil {
					timestamp += " (invalid date)"
				}
				rows = append(rows, []string{
					name,
					result.Metadata.Title,
					string(result.Album),
					timestamp,
					result.CanonicalName,
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Source", "Title", "Album", "Timestamp", "Final name"},
				rows,
				nil,
			))
			if failed > 0 {
				return fmt.Errorf("%d of %d filenames did not decode", failed, len(args))
			}
			return nil
		},
	}
}
