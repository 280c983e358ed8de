package astar

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Outcome is the result of one problem in a SearchAll batch.
type Outcome[S comparable, A any] struct {
	Predecessors Predecessors[S, A]
	Stats        Stats
}

// SearchAll runs independent searches on a pool of WithWorkers goroutines.
// Each search owns its own bookkeeping, so problems may share a StateSpace as
// long as the space itself is safe for concurrent reads. Outcomes are returned
// in input order. The first failure cancels the remaining searches.
// WithStats is ignored; every Outcome carries its own Stats.
func SearchAll[S comparable, A any](
	contextObject context.Context,
	problems []Problem[S, A],
	alpha float64,
	options ...Option,
) ([]Outcome[S, A], error) {
	searchOptions := applyOptions(options)
	if !validWeight(alpha) {
		return nil, ErrInvalidWeight
	}

	group, groupContext := errgroup.WithContext(contextObject)
	group.SetLimit(max(1, searchOptions.NumberOfWorkers))

	outcomes := make([]Outcome[S, A], len(problems))
	for i, problem := range problems {
		i, problem := i, problem
		group.Go(func() error {
			var stats Stats
			predecessors, err := Search(groupContext, problem, alpha, WithStats(&stats))
			if err != nil {
				return fmt.Errorf("problem %d: %w", i, err)
			}
			outcomes[i] = Outcome[S, A]{Predecessors: predecessors, Stats: stats}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}
