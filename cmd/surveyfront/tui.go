package main

import (
	"github.com/spf13/cobra"

	"github.com/kailas-cloud/surveyfront/internal/tui"
)

func newTUICmd(f *rootFlags) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Interactive terminal UI for lookups and exports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := f.newApp(appOptions{quiet: true, interactive: true, dir: dir})
			if err != nil {
				return err
			}
			defer a.close()

			ctx := cmd.Context()
			return tui.Run(ctx, tui.New(ctx, a.lookup, a.export, a.dir))
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "download directory (overrides config download.dir)")
	return cmd
}
