package astar

import (
	"math/rand"
)

// edge labels are the target node, so Apply is a lookup.
type graphSpace struct {
	adjacency map[int][]int
	heuristic func(from, goal int) float64
}

func (g graphSpace) Heuristic(from, goal int) float64 {
	if g.heuristic == nil {
		return 0
	}
	return g.heuristic(from, goal)
}

func (g graphSpace) Actions(state int) []int { return g.adjacency[state] }

func (g graphSpace) Apply(_ int, action int) int { return action }

type cell = [2]int

// gridSpace is a 4-connected grid with walls.
type gridSpace struct {
	width, height int
	walls         map[cell]bool
}

var gridMoves = []cell{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

func (g gridSpace) Heuristic(from, goal cell) float64 {
	return float64(absInt(from[0]-goal[0]) + absInt(from[1]-goal[1]))
}

func (g gridSpace) Actions(state cell) []cell {
	var actions []cell
	for _, move := range gridMoves {
		next := cell{state[0] + move[0], state[1] + move[1]}
		if next[0] >= 0 && next[0] < g.width && next[1] >= 0 && next[1] < g.height && !g.walls[next] {
			actions = append(actions, move)
		}
	}
	return actions
}

func (g gridSpace) Apply(state cell, move cell) cell {
	return cell{state[0] + move[0], state[1] + move[1]}
}

func randomGrid(seed int64, width, height int, density float64) gridSpace {
	r := rand.New(rand.NewSource(seed))
	walls := map[cell]bool{}
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			if r.Float64() < density {
				walls[cell{x, y}] = true
			}
		}
	}
	delete(walls, cell{0, 0})
	delete(walls, cell{width - 1, height - 1})
	return gridSpace{width: width, height: height, walls: walls}
}

// breadthFirst returns the true unit-cost distance, or -1 when unreachable.
func breadthFirst[S comparable, A any](space StateSpace[S, A], start, goal S) int {
	distance := map[S]int{start: 0}
	queue := []S{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == goal {
			return distance[current]
		}
		for _, action := range space.Actions(current) {
			next := space.Apply(current, action)
			if _, seen := distance[next]; !seen {
				distance[next] = distance[current] + 1
				queue = append(queue, next)
			}
		}
	}
	return -1
}

// countingSpace records how often each state is expanded.
type countingSpace[S comparable, A any] struct {
	StateSpace[S, A]
	expansions map[S]int
}

func (c *countingSpace[S, A]) Actions(state S) []A {
	c.expansions[state]++
	return c.StateSpace.Actions(state)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
