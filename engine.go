package astar

// engine owns the per-search bookkeeping. Search and Stepper both drive it.
type engine[S comparable, A any] struct {
	space StateSpace[S, A]
	goal  S
	alpha float64

	open         frontier[S]
	closed       map[S]struct{}
	distances    map[S]int
	predecessors Predecessors[S, A]

	stats   Stats
	current S
	done    bool
}

func newEngine[S comparable, A any](problem Problem[S, A], alpha float64) (*engine[S, A], error) {
	if problem.Space == nil {
		return nil, ErrNilSpace
	}
	if !validWeight(alpha) {
		return nil, ErrInvalidWeight
	}

	search := &engine[S, A]{
		space:        problem.Space,
		goal:         problem.Goal,
		alpha:        alpha,
		closed:       make(map[S]struct{}),
		distances:    map[S]int{problem.Start: 0},
		predecessors: Predecessors[S, A]{problem.Start: {Root: true}},
	}
	search.push(alpha*problem.Space.Heuristic(problem.Start, problem.Goal), problem.Start)
	return search, nil
}

func (e *engine[S, A]) push(priority float64, state S) {
	e.open.push(priority, state)
	e.stats.Pushed++
	if e.open.Len() > e.stats.MaxFrontier {
		e.stats.MaxFrontier = e.open.Len()
	}
}

// expand closes the next unclosed state on the frontier and relaxes its
// successors. It reports false once the search is over.
func (e *engine[S, A]) expand() bool {
	if e.done {
		return false
	}
	for {
		state, _, ok := e.open.popMin()
		if !ok {
			e.done = true
			return false
		}

		// Skip stale entries
		if _, closed := e.closed[state]; closed {
			e.stats.StalePops++
			continue
		}
		e.closed[state] = struct{}{}
		e.stats.Expanded++
		e.current = state

		// Goal check
		if state == e.goal {
			e.done = true
			e.stats.Found = true
			return true
		}

		// g is read from the distances map rather than derived from the popped priority.
		tentative := e.distances[state] + 1
		for _, action := range e.space.Actions(state) {
			next := e.space.Apply(state, action)
			if _, closed := e.closed[next]; closed {
				continue
			}
			if known, seen := e.distances[next]; seen && known <= tentative {
				continue
			}
			e.distances[next] = tentative
			e.predecessors[next] = Predecessor[S, A]{State: state, Action: action}
			e.push(float64(tentative)+e.alpha*e.space.Heuristic(next, e.goal), next)
		}
		return true
	}
}
