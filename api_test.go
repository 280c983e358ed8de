package astar

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchMatchesBreadthFirstOnGrids(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		space := randomGrid(seed, 12, 9, 0.3)
		problem := Problem[cell, cell]{Space: space, Start: cell{0, 0}, Goal: cell{11, 8}}

		predecessors, err := Search(context.Background(), problem, 1)
		require.NoError(t, err)

		want := breadthFirst[cell, cell](space, problem.Start, problem.Goal)
		steps, err := Reconstruct(problem.Goal, predecessors)
		if want < 0 {
			assert.ErrorIs(t, err, ErrNoPathFound, "seed %d", seed)
			continue
		}
		require.NoError(t, err, "seed %d", seed)
		assert.Len(t, steps, want, "seed %d", seed)
	}
}

func TestSearchPathIsValid(t *testing.T) {
	space := randomGrid(7, 10, 10, 0.2)
	problem := Problem[cell, cell]{Space: space, Start: cell{0, 0}, Goal: cell{9, 9}}

	predecessors, err := Search(context.Background(), problem, 1)
	require.NoError(t, err)
	steps, err := Reconstruct(problem.Goal, predecessors)
	require.NoError(t, err)
	require.NotEmpty(t, steps)

	assert.Equal(t, problem.Start, steps[0].State)
	for i, step := range steps {
		next := space.Apply(step.State, step.Action)
		if i+1 < len(steps) {
			assert.Equal(t, steps[i+1].State, next)
		} else {
			assert.Equal(t, problem.Goal, next)
		}
	}
}

func TestSearchUniformCostIgnoresHeuristic(t *testing.T) {
	adjacency := map[int][]int{
		0: {1, 2, 3},
		1: {4},
		2: {4, 5},
		3: {5},
		4: {6},
		5: {6, 7},
		6: {8},
		7: {8},
	}
	wild := func(from, _ int) float64 { return float64((from * 7) % 5) }
	goal := 8

	var plain, skewed Stats
	first, err := Search(context.Background(), Problem[int, int]{Space: graphSpace{adjacency: adjacency}, Start: 0, Goal: goal}, 0, WithStats(&plain))
	require.NoError(t, err)
	second, err := Search(context.Background(), Problem[int, int]{Space: graphSpace{adjacency: adjacency, heuristic: wild}, Start: 0, Goal: goal}, 0, WithStats(&skewed))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, plain, skewed)
}

func TestSearchClosesEachStateOnce(t *testing.T) {
	for _, alpha := range []float64{0, 1, 3} {
		space := &countingSpace[cell, cell]{StateSpace: randomGrid(3, 15, 15, 0.25), expansions: map[cell]int{}}
		var stats Stats
		_, err := Search(context.Background(), Problem[cell, cell]{Space: space, Start: cell{0, 0}, Goal: cell{14, 14}}, alpha, WithStats(&stats))
		require.NoError(t, err)

		for state, count := range space.expansions {
			assert.Equal(t, 1, count, "state %v expanded %d times at alpha %v", state, count, alpha)
		}
		closedWithoutGoal := stats.Expanded
		if stats.Found {
			closedWithoutGoal--
		}
		assert.Equal(t, closedWithoutGoal, len(space.expansions))
	}
}

func TestSearchUnreachableGoal(t *testing.T) {
	adjacency := map[int][]int{
		0: {1},
		1: {0, 2},
		2: {1},
		3: {4},
		4: {3},
	}
	problem := Problem[int, int]{Space: graphSpace{adjacency: adjacency}, Start: 0, Goal: 4}

	var stats Stats
	predecessors, err := Search(context.Background(), problem, 1, WithStats(&stats))
	require.NoError(t, err)
	assert.False(t, stats.Found)
	assert.Len(t, predecessors, 3)
	assert.Equal(t, 3, stats.Expanded)

	_, err = Reconstruct(problem.Goal, predecessors)
	assert.ErrorIs(t, err, ErrNoPathFound)
}

func TestSearchStartIsGoal(t *testing.T) {
	problem := Problem[int, int]{Space: graphSpace{adjacency: map[int][]int{0: {1}}}, Start: 0, Goal: 0}

	predecessors, err := Search(context.Background(), problem, 1)
	require.NoError(t, err)
	assert.Equal(t, Predecessors[int, int]{0: {Root: true}}, predecessors)

	steps, err := Reconstruct(0, predecessors)
	require.NoError(t, err)
	assert.Empty(t, steps)
}

func TestSearchPredecessorsCoverEveryPushedState(t *testing.T) {
	adjacency := map[int][]int{
		0: {1, 2},
		1: {3},
		2: {3},
		3: {},
	}
	var stats Stats
	predecessors, err := Search(context.Background(), Problem[int, int]{Space: graphSpace{adjacency: adjacency}, Start: 0, Goal: 1}, 1, WithStats(&stats))
	require.NoError(t, err)

	// 2 is discovered but never expanded.
	assert.Contains(t, predecessors, 2)
	assert.Equal(t, Predecessor[int, int]{State: 0, Action: 2}, predecessors[2])
	assert.Equal(t, 2, stats.Expanded)
	assert.Equal(t, 3, stats.Pushed)
}

func TestSearchWeightedStillFindsAPath(t *testing.T) {
	space := randomGrid(11, 20, 20, 0.2)
	problem := Problem[cell, cell]{Space: space, Start: cell{0, 0}, Goal: cell{19, 19}}
	want := breadthFirst[cell, cell](space, problem.Start, problem.Goal)
	require.Positive(t, want)

	optimal, err := Search(context.Background(), problem, 1)
	require.NoError(t, err)
	weighted, err := Search(context.Background(), problem, 5)
	require.NoError(t, err)

	optimalSteps, err := Reconstruct(problem.Goal, optimal)
	require.NoError(t, err)
	weightedSteps, err := Reconstruct(problem.Goal, weighted)
	require.NoError(t, err)

	assert.Len(t, optimalSteps, want)
	assert.GreaterOrEqual(t, len(weightedSteps), want)
}

func TestSearchRejectsBadInput(t *testing.T) {
	space := graphSpace{adjacency: map[int][]int{}}
	for _, alpha := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err := Search(context.Background(), Problem[int, int]{Space: space}, alpha)
		assert.ErrorIs(t, err, ErrInvalidWeight, "alpha %v", alpha)
	}

	_, err := Search(context.Background(), Problem[int, int]{}, 1)
	assert.ErrorIs(t, err, ErrNilSpace)
}

func TestSearchHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	problem := Problem[cell, cell]{Space: randomGrid(1, 5, 5, 0), Start: cell{0, 0}, Goal: cell{4, 4}}
	predecessors, err := Search(ctx, problem, 1)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, predecessors, problem.Start)
}
