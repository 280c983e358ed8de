package astar

import (
	"fmt"
	"slices"
)

// Step is one action of a plan together with the state it is applied to.
type Step[S comparable, A any] struct {
	State  S
	Action A
}

// Reconstruct walks the predecessor chain from goal back to the start and
// returns the plan in start-to-goal order. A goal equal to the start yields an
// empty plan.
//
// It returns ErrNoPathFound when goal has no entry, and ErrCorruptPath when the
// chain revisits a state or breaks before reaching the start.
func Reconstruct[S comparable, A any](goal S, predecessors Predecessors[S, A]) ([]Step[S, A], error) {
	entry, exists := predecessors[goal]
	if !exists {
		return nil, ErrNoPathFound
	}

	visited := map[S]struct{}{goal: {}}
	var steps []Step[S, A]
	for !entry.Root {
		previous := entry.State
		if _, seen := visited[previous]; seen {
			return nil, fmt.Errorf("%w: state %v revisited", ErrCorruptPath, previous)
		}
		visited[previous] = struct{}{}
		steps = append(steps, Step[S, A]{State: previous, Action: entry.Action})

		entry, exists = predecessors[previous]
		if !exists {
			return nil, fmt.Errorf("%w: no predecessor for %v", ErrCorruptPath, previous)
		}
	}

	slices.Reverse(steps)
	return steps, nil
}
