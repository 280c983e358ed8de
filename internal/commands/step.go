package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	astar "github.com/pdrpinto/tileplan"
)

func newStepCommand(a *app) *cobra.Command {
	var (
		in    inputFlags
		limit int
	)

	cmd := &cobra.Command{
		Use:   "step",
		Short: "Print the search one expansion at a time",
		Long: `Run the search one expansion at a time and print a line per expanded board.

Examples:
  tileplan step --case 1 --limit 20
  tileplan step --actions r,d,l`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			jobs, err := in.jobs(a.cfg.Alpha, cmd.Flags().Changed("alpha"))
			if err != nil {
				return err
			}
			if len(jobs) != 1 {
				return fmt.Errorf("step works on one puzzle, got %d; use --name", len(jobs))
			}
			req := jobs[0].request

			stepper, err := astar.NewStepper(req.Problem, req.Alpha)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for !stepper.Done() {
				if err := cmd.Context().Err(); err != nil {
					return err
				}
				if limit > 0 && stepper.Stats().Expanded >= limit {
					fmt.Fprintf(out, "stopped after %d expansions\n", limit)
					return nil
				}
				before := stepper.Stats().Expanded
				snapshot := stepper.Step()
				if snapshot.Expanded == before {
					break
				}
				fmt.Fprintf(out, "step %d: %s frontier=%d discovered=%d\n",
					snapshot.StepIndex, snapshot.Current.Compact(), snapshot.Frontier, snapshot.Discovered)
			}

			plan, err := astar.Reconstruct(req.Problem.Goal, stepper.Predecessors())
			switch {
			case errors.Is(err, astar.ErrNoPathFound):
				fmt.Fprintln(out, "no plan found")
			case err != nil:
				return err
			default:
				fmt.Fprintf(out, "plan length: %d\n", len(plan))
			}
			fmt.Fprintf(out, "expanded nodes = %d\n", len(stepper.Predecessors()))
			return nil
		},
	}

	in.register(cmd)
	cmd.Flags().IntVar(&limit, "limit", 0, "stop after this many expansions (0 = no limit)")
	return cmd
}
