// Package puzzle implements the N×N sliding-tile puzzle as an astar state space.
//
// A Board is a comparable value, so it serves directly as the search key. The
// blank is tile 0 and actions move the blank up, down, left or right.
package puzzle
