package astar

import (
	"context"
	"errors"
	"math"
	"runtime"
)

var (
	// ErrNoPathFound is returned by Reconstruct when the goal was never reached.
	ErrNoPathFound = errors.New("no path found")
	// ErrCorruptPath means the predecessor chain is broken or cyclic.
	ErrCorruptPath = errors.New("corrupt predecessor chain")
	// ErrInvalidWeight is returned for a negative or non-finite heuristic weight.
	ErrInvalidWeight = errors.New("heuristic weight must be a finite number >= 0")
	// ErrNilSpace is returned when a problem carries no state space.
	ErrNilSpace = errors.New("problem has no state space")
)

// StateSpace is generic over state type S and action type A.
// S must be comparable: equal states are the same map key.
type StateSpace[S comparable, A any] interface {
	// Heuristic estimates the remaining cost from one state to the goal.
	Heuristic(from S, goal S) float64
	// Actions lists the actions applicable to a state, possibly none.
	Actions(state S) []A
	// Apply returns the successor reached by taking action in state.
	Apply(state S, action A) S
}

// Problem is one single-source, single-goal search instance.
type Problem[S comparable, A any] struct {
	Space StateSpace[S, A]
	Start S
	Goal  S
}

// Predecessor records how a state was reached on its best known path.
// Root marks the start state, which has no predecessor.
type Predecessor[S comparable, A any] struct {
	State  S
	Action A
	Root   bool
}

// Predecessors maps every state ever pushed to the frontier to its predecessor.
type Predecessors[S comparable, A any] map[S]Predecessor[S, A]

// Stats summarises the effort of one search.
type Stats struct {
	Expanded    int
	Pushed      int
	StalePops   int
	MaxFrontier int
	Found       bool
}

// Options defines parameters for the search.
type Options struct {
	NumberOfWorkers int
	Stats           *Stats
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithWorkers specifies how many searches SearchAll runs at once.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

// WithStats makes Search fill stats when it returns.
func WithStats(stats *Stats) Option {
	return func(options *Options) { options.Stats = stats }
}

func applyOptions(options []Option) Options {
	searchOptions := Options{
		NumberOfWorkers: runtime.NumCPU(),
	}
	for _, option := range options {
		option(&searchOptions)
	}
	return searchOptions
}

func validWeight(alpha float64) bool {
	return alpha >= 0 && !math.IsInf(alpha, 0) && !math.IsNaN(alpha)
}

// Search runs weighted A* from problem.Start until problem.Goal is closed or the
// frontier is exhausted, and returns the predecessor map.
//
// Candidates are ordered by g + alpha*h. alpha=1 is standard A*, alpha=0 is
// uniform-cost search, alpha>1 trades optimality for fewer expansions.
// Exhausting the frontier is not an error: the map simply has no goal entry.
// If ctx is cancelled the map built so far is returned together with ctx.Err().
func Search[S comparable, A any](
	contextObject context.Context,
	problem Problem[S, A],
	alpha float64,
	options ...Option,
) (Predecessors[S, A], error) {
	searchOptions := applyOptions(options)

	search, err := newEngine(problem, alpha)
	if err != nil {
		return nil, err
	}
	defer func() {
		if searchOptions.Stats != nil {
			*searchOptions.Stats = search.stats
		}
	}()

	for !search.done {
		select {
		case <-contextObject.Done():
			return search.predecessors, contextObject.Err()
		default:
		}
		search.expand()
	}
	return search.predecessors, nil
}
