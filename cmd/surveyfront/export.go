package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/surveyfront/internal/view"
)

func newExportCmd(f *rootFlags) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "export <survey_id>",
		Short: "Download the Word document draft of a survey",
		Long: `Downloads the Word document draft of a survey into the download
directory as survey_<survey_id>.docx, unless the backend names the file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := f.newApp(appOptions{interactive: true, dir: dir})
			if err != nil {
				return err
			}
			defer a.close()

			st := view.New(nil)
			loc, err := a.export.Run(cmd.Context(), st, args[0], a.dir)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), alertStyle.Render(st.LastAlert()))
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), loc)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "download directory (overrides config download.dir)")
	return cmd
}
