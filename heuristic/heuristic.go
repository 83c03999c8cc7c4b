// SPDX-License-Identifier: MIT
package heuristic

import "github.com/arbecker/fdplan/task"

// Heuristic is the contract spec.md §4.4 step 6.d drives: on reaching a
// NEW successor, the eager search engine first calls ReachState (a no-op
// for every heuristic in this module; the hook exists for parity with
// online-learning heuristics such as landmarks, which spec.md §1 scopes
// out), then Evaluate, then reads Value/IsDeadEnd/DeadEndReliable and,
// for heuristics configured as preferred-operator sources,
// PreferredOperators.
type Heuristic interface {
	// ReachState notifies the heuristic that op was applied to parent to
	// reach succ, for heuristics that maintain online state across calls.
	ReachState(parent, succ task.State, op task.Operator)

	// Evaluate recomputes the heuristic's estimate for s, and must be
	// called before Value/IsDeadEnd/DeadEndReliable/PreferredOperators are
	// read for s.
	Evaluate(s task.State)

	// Value returns the most recently evaluated heuristic estimate, or
	// task.QuiteALot if the state was a dead end.
	Value() int

	// IsDeadEnd reports whether the most recent Evaluate call determined s
	// to be a dead end.
	IsDeadEnd() bool

	// DeadEndReliable reports whether this heuristic's dead-end signal is
	// sound (spec.md §4.6: always true for the relaxation heuristic and
	// merge-and-shrink under unit cost; always false for the CG heuristic).
	DeadEndReliable() bool

	// PreferredOperators returns the operator ids this heuristic judged
	// likely-useful ("helpful") at the most recently evaluated state.
	PreferredOperators() []int

	// Name identifies the heuristic for CLI selection and progress logging.
	Name() string
}
