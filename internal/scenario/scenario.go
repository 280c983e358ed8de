// Package scenario reads puzzle instances from YAML files.
package scenario

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	astar "github.com/pdrpinto/tileplan"
	"github.com/pdrpinto/tileplan/puzzle"
)

const defaultSize = 3

var (
	ErrNoScenarios    = errors.New("file defines no scenarios")
	ErrMissingName    = errors.New("scenario missing name")
	ErrDuplicateName  = errors.New("duplicate scenario name")
	ErrGoalAndActions = errors.New("scenario must set exactly one of goal or actions")
	ErrInvalidAlpha   = errors.New("scenario alpha must be a finite number >= 0")
)

// File is the top-level YAML document.
type File struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Scenario describes one puzzle. Start defaults to the ordered board with the
// blank first; the goal is given directly or by scripted actions from start.
type Scenario struct {
	Name    string          `yaml:"name"`
	Size    int             `yaml:"size,omitempty"`
	Start   []int           `yaml:"start,omitempty"`
	Goal    []int           `yaml:"goal,omitempty"`
	Actions []puzzle.Action `yaml:"actions,omitempty"`
	Alpha   *float64        `yaml:"alpha,omitempty"`
}

// LoadFile loads scenarios from a YAML file.
func LoadFile(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML document.
func Parse(data []byte) ([]Scenario, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(file.Scenarios) == 0 {
		return nil, ErrNoScenarios
	}

	seen := make(map[string]bool, len(file.Scenarios))
	for i := range file.Scenarios {
		s := &file.Scenarios[i]
		if s.Size == 0 {
			s.Size = defaultSize
		}
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("scenario %d: %w", i, err)
		}
		if seen[s.Name] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, s.Name)
		}
		seen[s.Name] = true
	}
	return file.Scenarios, nil
}

// Validate checks the fields that do not need a board to be built.
func (s Scenario) Validate() error {
	if s.Name == "" {
		return ErrMissingName
	}
	if (len(s.Goal) == 0) == (len(s.Actions) == 0) {
		return fmt.Errorf("%w: %s", ErrGoalAndActions, s.Name)
	}
	if s.Alpha != nil && (*s.Alpha < 0 || math.IsNaN(*s.Alpha) || math.IsInf(*s.Alpha, 0)) {
		return fmt.Errorf("%w: %s", ErrInvalidAlpha, s.Name)
	}
	return nil
}

// AlphaOr returns the scenario's own weight, or fallback when it has none.
func (s Scenario) AlphaOr(fallback float64) float64 {
	if s.Alpha == nil {
		return fallback
	}
	return *s.Alpha
}

// Problem builds the search problem.
func (s Scenario) Problem() (astar.Problem[puzzle.Board, puzzle.Action], error) {
	var zero astar.Problem[puzzle.Board, puzzle.Action]

	start, err := puzzle.NewBoard(s.Size)
	if err != nil {
		return zero, fmt.Errorf("scenario %s: %w", s.Name, err)
	}
	if len(s.Start) > 0 {
		if start, err = puzzle.FromCells(s.Size, s.Start); err != nil {
			return zero, fmt.Errorf("scenario %s start: %w", s.Name, err)
		}
	}

	var goal puzzle.Board
	if len(s.Goal) > 0 {
		goal, err = puzzle.FromCells(s.Size, s.Goal)
	} else {
		goal, err = puzzle.Scramble(start, s.Actions)
	}
	if err != nil {
		return zero, fmt.Errorf("scenario %s goal: %w", s.Name, err)
	}
	return puzzle.NewProblem(start, goal)
}
