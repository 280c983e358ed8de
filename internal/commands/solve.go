package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/tileplan/internal/solver"
	"github.com/pdrpinto/tileplan/puzzle"
)

func newSolveCommand(a *app) *cobra.Command {
	var (
		in     inputFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find a shortest plan for a puzzle",
		Long: `Find a plan from a start board to a goal board and print every step.

Examples:
  tileplan solve
  tileplan solve --case 2 --alpha 1.5
  tileplan solve --actions r,r,d,l,u
  tileplan solve --start '1 2 3/4 0 5/6 7 8' --goal '0 1 2/3 4 5/6 7 8'
  tileplan solve --file scenarios.yaml --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "text" && format != "json" {
				return fmt.Errorf("unsupported format: %s (use 'text' or 'json')", format)
			}
			jobs, err := in.jobs(a.cfg.Alpha, cmd.Flags().Changed("alpha"))
			if err != nil {
				return err
			}

			s := a.solver()
			out := cmd.OutOrStdout()
			for _, j := range jobs {
				report, err := s.Solve(cmd.Context(), j.request)
				if err != nil {
					return err
				}
				if format == "json" {
					err = writeJSON(out, report, j.scripted)
				} else {
					err = writeText(out, report, j.scripted)
				}
				if err != nil {
					return err
				}
			}
			return nil
		},
	}

	in.register(cmd)
	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json")
	return cmd
}

// writeText prints each board followed by the move taken from it.
func writeText(w io.Writer, report solver.Report, scripted int) error {
	var err error
	printf := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	printf("== %s\n", report.Name)
	if scripted >= 0 {
		printf("original number of actions: %d\n", scripted)
	}
	if !report.Found {
		printf("no plan found\n")
	} else {
		for _, step := range report.Plan {
			printf("%s\naction: %s\n\n", step.State, step.Action)
		}
		printf("%s\n", report.Goal)
		printf("plan length: %d\n", len(report.Plan))
	}
	printf("expanded nodes = %d\n", report.Discovered)
	printf("time to solve %s\n", report.Duration)
	return err
}

type jsonStep struct {
	State  puzzle.Board  `json:"state"`
	Action puzzle.Action `json:"action"`
}

type jsonReport struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Start      puzzle.Board `json:"start"`
	Goal       puzzle.Board `json:"goal"`
	Alpha      float64      `json:"alpha"`
	Found      bool         `json:"found"`
	Scripted   *int         `json:"scripted_actions,omitempty"`
	PlanLength int          `json:"plan_length"`
	Plan       []jsonStep   `json:"plan"`
	Discovered int          `json:"discovered_nodes"`
	Closed     int          `json:"closed_nodes"`
	DurationMS float64      `json:"duration_ms"`
}

func writeJSON(w io.Writer, report solver.Report, scripted int) error {
	out := jsonReport{
		ID:         report.ID,
		Name:       report.Name,
		Start:      report.Start,
		Goal:       report.Goal,
		Alpha:      report.Alpha,
		Found:      report.Found,
		PlanLength: len(report.Plan),
		Plan:       make([]jsonStep, 0, len(report.Plan)),
		Discovered: report.Discovered,
		Closed:     report.Stats.Expanded,
		DurationMS: float64(report.Duration.Microseconds()) / 1000,
	}
	if scripted >= 0 {
		out.Scripted = &scripted
	}
	for _, step := range report.Plan {
		out.Plan = append(out.Plan, jsonStep{State: step.State, Action: step.Action})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
