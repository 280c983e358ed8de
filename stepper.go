package astar

import "maps"

// Snapshot exposes the per-iteration state of the search
type Snapshot[S comparable] struct {
	Current    S
	StepIndex  int
	Expanded   int
	Frontier   int
	Discovered int
	Done       bool
	Found      bool
}

// Stepper advances a search one expansion at a time.
// It is not safe for concurrent use.
type Stepper[S comparable, A any] struct {
	search    *engine[S, A]
	stepCount int
}

// NewStepper prepares a search without expanding anything.
func NewStepper[S comparable, A any](problem Problem[S, A], alpha float64) (*Stepper[S, A], error) {
	search, err := newEngine(problem, alpha)
	if err != nil {
		return nil, err
	}
	return &Stepper[S, A]{search: search}, nil
}

// Step closes one more state and returns a snapshot. Once the search is over
// every call returns the final snapshot with Done set.
func (s *Stepper[S, A]) Step() Snapshot[S] {
	if s.search.expand() {
		s.stepCount++
	}
	return s.snapshot()
}

// Done reports whether the search has finished.
func (s *Stepper[S, A]) Done() bool { return s.search.done }

// Predecessors returns a copy of the predecessor map built so far.
func (s *Stepper[S, A]) Predecessors() Predecessors[S, A] {
	return maps.Clone(s.search.predecessors)
}

// Stats returns the effort counters so far.
func (s *Stepper[S, A]) Stats() Stats { return s.search.stats }

func (s *Stepper[S, A]) snapshot() Snapshot[S] {
	return Snapshot[S]{
		Current:    s.search.current,
		StepIndex:  s.stepCount,
		Expanded:   s.search.stats.Expanded,
		Frontier:   s.search.open.Len(),
		Discovered: len(s.search.predecessors),
		Done:       s.search.done,
		Found:      s.search.stats.Found,
	}
}
