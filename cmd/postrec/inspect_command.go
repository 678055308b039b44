package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"postrec/internal/config"
	"postrec/internal/tags"
)

func newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "inspect <file>",
		Short:       "Print the tags stored in a recording",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}
			info, err := tags.Read(path)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, 7)
			for _, field := range info.Fields() {
				rows = append(rows, []string{field[0], field[1]})
			}
			rows = append(rows,
				[]string{"Format", info.Format},
				[]string{"File type", info.FileType},
			)
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Field", "Value"}, rows, nil))
			return nil
		},
	}
}
