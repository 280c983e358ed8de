package commands

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/tileplan/internal/solver"
)

func newBatchCommand(a *app) *cobra.Command {
	var in inputFlags

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Solve every scenario of a file concurrently",
		Long: `Solve every scenario of a YAML file on a pool of workers and print a summary table.

Examples:
  tileplan batch --file scenarios.yaml
  tileplan batch --file scenarios.yaml --workers 4 --metrics-addr :9090`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if in.file == "" {
				return errors.New("batch requires --file")
			}
			jobs, err := in.jobs(a.cfg.Alpha, cmd.Flags().Changed("alpha"))
			if err != nil {
				return err
			}

			reqs := make([]solver.Request, len(jobs))
			for i, j := range jobs {
				reqs[i] = j.request
			}
			reports, err := a.solver().SolveAll(cmd.Context(), reqs)
			if err != nil {
				return err
			}

			table := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(table, "NAME\tALPHA\tFOUND\tPLAN\tEXPANDED\tCLOSED")
			for _, report := range reports {
				plan := "-"
				if report.Found {
					plan = fmt.Sprint(len(report.Plan))
				}
				fmt.Fprintf(table, "%s\t%g\t%t\t%s\t%d\t%d\n",
					report.Name, report.Alpha, report.Found, plan, report.Discovered, report.Stats.Expanded)
			}
			return table.Flush()
		},
	}

	cmd.Flags().StringVar(&in.file, "file", "", "YAML scenario file")
	cmd.Flags().StringVar(&in.name, "name", "", "only the scenario with this name")
	return cmd
}
