package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	healthuc "github.com/kailas-cloud/surveyfront/internal/usecase/health"
)

func newCheckCmd(f *rootFlags) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that the backend answers and the download directory is writable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := f.newApp(appOptions{interactive: true, dir: dir})
			if err != nil {
				return err
			}
			defer a.close()

			report := healthuc.New(a.backend, a.dir).Check(cmd.Context())

			names := make([]string, 0, len(report.Checks))
			for name := range report.Checks {
				names = append(names, name)
			}
			sort.Strings(names)

			out := cmd.OutOrStdout()
			for _, name := range names {
				fmt.Fprintf(out, "%-10s %s\n", name, report.Checks[name])
			}
			fmt.Fprintf(out, "%-10s %s\n", "status", report.Status)

			if report.Status != healthuc.Healthy {
				return fmt.Errorf("health check: %s", report.Status)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "download directory (overrides config download.dir)")
	return cmd
}
