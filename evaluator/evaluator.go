// SPDX-License-Identifier: MIT
package evaluator

import "github.com/arbecker/fdplan/task"

// saturate clamps a sum to task.QuiteALot so composed evaluators never wrap
// around on overflow (spec.md §4.2: "all evaluators operate on ints and
// saturate to quite-a-lot on overflow").
func saturate(v int) int {
	if v >= task.QuiteALot || v < 0 {
		return task.QuiteALot
	}
	return v
}

// addSaturating sums two non-negative values, clamping at task.QuiteALot.
func addSaturating(a, b int) int {
	if a >= task.QuiteALot || b >= task.QuiteALot {
		return task.QuiteALot
	}
	sum := a + b
	if sum < a || sum < b { // overflow wraparound
		return task.QuiteALot
	}
	return saturate(sum)
}

// Evaluator is a single scalar scoring node (spec.md §4.2): evaluate is
// called once per search node, after which value/is-dead-end/reliability
// may be read any number of times until the next Evaluate call.
type Evaluator interface {
	// Evaluate scores the current node: g is the path cost so far and
	// preferred reports whether the edge used to reach this node was
	// marked preferred by some heuristic.
	Evaluate(g int, preferred bool)

	// Value returns the most recently evaluated scalar.
	Value() int

	// IsDeadEnd reports whether the most recent Evaluate call judged this
	// node unsolvable.
	IsDeadEnd() bool

	// DeadEndReliable reports whether IsDeadEnd's most recent answer can be
	// trusted to prune the node outright.
	DeadEndReliable() bool
}
