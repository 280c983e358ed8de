package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/tileplan/internal/scenario"
	"github.com/pdrpinto/tileplan/internal/solver"
	"github.com/pdrpinto/tileplan/puzzle"
)

var (
	errConflictingInputs = errors.New("use only one of --case, --actions/--goal, or --file")
	errStartWithoutGoal  = errors.New("--start needs --actions or --goal")
)

// inputFlags selects the puzzles a command works on.
type inputFlags struct {
	caseNumber int
	actions    string
	start      string
	goal       string
	file       string
	name       string
}

func (in *inputFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.IntVar(&in.caseNumber, "case", 0, "built-in case number (1 or 2); default 1 when no other input is given")
	flags.StringVar(&in.actions, "actions", "", "scripted moves from the start board, e.g. r,r,d,l")
	flags.StringVar(&in.start, "start", "", "start board, e.g. '0 1 2/3 4 5/6 7 8' (default: ordered 3x3)")
	flags.StringVar(&in.goal, "goal", "", "goal board, instead of --actions")
	flags.StringVar(&in.file, "file", "", "YAML scenario file")
	flags.StringVar(&in.name, "name", "", "only the scenario with this name from --file")
}

// job is one request plus the length of the script that produced its goal,
// or -1 when the goal was given directly.
type job struct {
	request  solver.Request
	scripted int
}

func (in *inputFlags) jobs(alpha float64, alphaFromFlag bool) ([]job, error) {
	sources := 0
	if in.caseNumber != 0 {
		sources++
	}
	if in.inline() {
		sources++
	}
	if in.file != "" {
		sources++
	}
	if sources > 1 {
		return nil, errConflictingInputs
	}

	switch {
	case in.file != "":
		return in.fileJobs(alpha, alphaFromFlag)
	case in.inline():
		j, err := in.inlineJob(alpha)
		if err != nil {
			return nil, err
		}
		return []job{j}, nil
	default:
		number := in.caseNumber
		if number == 0 {
			number = 1
		}
		problem, scripted, err := puzzle.CaseProblem(number)
		if err != nil {
			return nil, err
		}
		return []job{{
			request:  solver.Request{Name: fmt.Sprintf("case-%d", number), Problem: problem, Alpha: alpha},
			scripted: len(scripted),
		}}, nil
	}
}

func (in *inputFlags) inline() bool {
	return in.actions != "" || in.goal != "" || in.start != ""
}

func (in *inputFlags) inlineJob(alpha float64) (job, error) {
	if in.actions != "" && in.goal != "" {
		return job{}, errConflictingInputs
	}
	if in.actions == "" && in.goal == "" {
		return job{}, errStartWithoutGoal
	}

	start, err := puzzle.NewBoard(3)
	if err != nil {
		return job{}, err
	}
	if in.start != "" {
		if start, err = puzzle.ParseBoard(in.start); err != nil {
			return job{}, fmt.Errorf("--start: %w", err)
		}
	}

	scripted := -1
	var goal puzzle.Board
	if in.goal != "" {
		if goal, err = puzzle.ParseBoard(in.goal); err != nil {
			return job{}, fmt.Errorf("--goal: %w", err)
		}
	} else {
		actions, err := puzzle.ParseActions(in.actions)
		if err != nil {
			return job{}, fmt.Errorf("--actions: %w", err)
		}
		if goal, err = puzzle.Scramble(start, actions); err != nil {
			return job{}, fmt.Errorf("--actions: %w", err)
		}
		scripted = len(actions)
	}

	problem, err := puzzle.NewProblem(start, goal)
	if err != nil {
		return job{}, err
	}
	return job{request: solver.Request{Name: "inline", Problem: problem, Alpha: alpha}, scripted: scripted}, nil
}

func (in *inputFlags) fileJobs(alpha float64, alphaFromFlag bool) ([]job, error) {
	scenarios, err := scenario.LoadFile(in.file)
	if err != nil {
		return nil, fmt.Errorf("failed to load scenarios: %w", err)
	}

	var jobs []job
	for _, s := range scenarios {
		if in.name != "" && s.Name != in.name {
			continue
		}
		problem, err := s.Problem()
		if err != nil {
			return nil, err
		}
		weight := s.AlphaOr(alpha)
		if alphaFromFlag {
			weight = alpha
		}
		scripted := -1
		if len(s.Actions) > 0 {
			scripted = len(s.Actions)
		}
		jobs = append(jobs, job{
			request:  solver.Request{Name: s.Name, Problem: problem, Alpha: weight},
			scripted: scripted,
		})
	}
	if len(jobs) == 0 {
		return nil, fmt.Errorf("no scenario named %q in %s", in.name, in.file)
	}
	return jobs, nil
}
