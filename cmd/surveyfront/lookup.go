package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/surveyfront/internal/view"
)

func newLookupCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <survey_id>",
		Short: "Look up a survey and print the results table",
		Long: `Looks up a survey ID on the backend and prints every match with its
path and status. A "not found" answer prints as a single error row; a
backend that cannot be reached exits non-zero.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := f.newApp(appOptions{interactive: true})
			if err != nil {
				return err
			}
			defer a.close()

			st := view.New(nil)
			st.SetInput(args[0])
			runErr := a.lookup.RunInput(cmd.Context(), st)

			out := cmd.OutOrStdout()
			if alert := st.LastAlert(); alert != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), alertStyle.Render(alert))
			}
			if runErr != nil {
				return runErr
			}
			fmt.Fprintln(out, renderRows(st.Table.Rows()))
			return nil
		},
	}
}
