package puzzle

import (
	"errors"
	"fmt"

	astar "github.com/pdrpinto/tileplan"
)

var ErrUnknownCase = errors.New("unknown built-in case")

// Space is the sliding-tile state space with the Manhattan heuristic.
// It holds no state and is safe for concurrent searches.
type Space struct{}

var _ astar.StateSpace[Board, Action] = Space{}

func (Space) Heuristic(from Board, goal Board) float64 { return float64(from.Manhattan(goal)) }

func (Space) Actions(state Board) []Action { return state.Actions() }

// Apply returns state unchanged for a move that leaves the board.
func (Space) Apply(state Board, action Action) Board {
	next, err := state.Apply(action)
	if err != nil {
		return state
	}
	return next
}

// NewProblem pairs a start and goal board of the same size.
func NewProblem(start, goal Board) (astar.Problem[Board, Action], error) {
	if start.Size() != goal.Size() {
		return astar.Problem[Board, Action]{}, fmt.Errorf("%w: %d and %d", ErrSizeMismatch, start.Size(), goal.Size())
	}
	if start.Size() < MinSize {
		return astar.Problem[Board, Action]{}, fmt.Errorf("%w: %d", ErrInvalidSize, start.Size())
	}
	return astar.Problem[Board, Action]{Space: Space{}, Start: start, Goal: goal}, nil
}

// Scramble applies actions to start in order and returns the resulting board.
func Scramble(start Board, actions []Action) (Board, error) {
	board := start
	for i, action := range actions {
		next, err := board.Apply(action)
		if err != nil {
			return Board{}, fmt.Errorf("action %d: %w", i, err)
		}
		board = next
	}
	return board, nil
}

var builtinCases = map[int]string{
	// 25 scripted moves; the shortest plan has 19.
	1: "r r d l u l d d r r u l d r u u l d l d r r u l u",
	// 35 scripted moves; the shortest plan has 25.
	2: "r r d l u l d d r r u l d r u u l d l d r r u l u l d d r u l d r r u",
}

// Case returns the scripted actions of a built-in 3×3 case.
func Case(number int) ([]Action, error) {
	script, ok := builtinCases[number]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCase, number)
	}
	return ParseActions(script)
}

// CaseProblem builds a built-in case: the ordered 3×3 board scrambled by the
// case's actions. It also returns the scripted actions.
func CaseProblem(number int) (astar.Problem[Board, Action], []Action, error) {
	actions, err := Case(number)
	if err != nil {
		return astar.Problem[Board, Action]{}, nil, err
	}
	start, err := NewBoard(3)
	if err != nil {
		return astar.Problem[Board, Action]{}, nil, err
	}
	goal, err := Scramble(start, actions)
	if err != nil {
		return astar.Problem[Board, Action]{}, nil, err
	}
	problem, err := NewProblem(start, goal)
	return problem, actions, err
}
