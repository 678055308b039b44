package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"postrec/internal/album"
)

func newAlbumsCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "albums",
		Short:       "List album categories in matching priority order",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			categories := album.Categories()
			rows := make([][]string, 0, len(categories))
			for i, category := range categories {
				note := "title contains name"
				if category == album.Fallback {
					note = "fallback"
				}
				rows = append(rows, []string{strconv.Itoa(i + 1), string(category), note})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"#", "Album", "Match"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft},
			))
			return nil
		},
	}
}
