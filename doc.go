// Package astar provides a generic weighted A* search over implicitly defined
// state spaces.
//
// It exposes three entry points:
//
//   - Search: run the algorithm to completion and get the predecessor map.
//   - Stepper: advance the search one expansion at a time to drive UIs or debugging tools.
//   - SearchAll: run independent searches concurrently over a bounded worker pool.
//
// A predecessor map is turned into an ordered plan with Reconstruct. The search
// loop itself is single-threaded and owns all of its bookkeeping; only the
// predecessor map escapes to the caller.
package astar
