// SPDX-License-Identifier: MIT
package search

import "github.com/arbecker/fdplan/task"

// BlindHeuristic is the trivial unit-cost lower bound (original_source's
// blind_search_heuristic.cc): 0 at a goal state, the minimum operator cost
// otherwise (1, under this module's unit-cost assumption). It never
// reports a dead end; it exists as an A*-admissible baseline and for
// exercising the evaluator/open-list layer in tests without paying for a
// real heuristic's construction cost.
type BlindHeuristic struct {
	tk    *task.Task
	value int
}

// NewBlindHeuristic builds a blind heuristic over tk.
func NewBlindHeuristic(tk *task.Task) *BlindHeuristic { return &BlindHeuristic{tk: tk} }

// ReachState is a no-op: blind is purely a function of whether s is a goal.
func (h *BlindHeuristic) ReachState(parent, succ task.State, op task.Operator) {}

// Evaluate sets the estimate per the rule above.
func (h *BlindHeuristic) Evaluate(s task.State) {
	if h.tk.GoalSatisfied(s) {
		h.value = 0
		return
	}
	h.value = 1
}

// Value returns the most recent estimate.
func (h *BlindHeuristic) Value() int { return h.value }

// IsDeadEnd is always false: blind never prunes.
func (h *BlindHeuristic) IsDeadEnd() bool { return false }

// DeadEndReliable is always false.
func (h *BlindHeuristic) DeadEndReliable() bool { return false }

// PreferredOperators is always empty: blind contributes no preferences.
func (h *BlindHeuristic) PreferredOperators() []int { return nil }

// Name identifies this heuristic for CLI selection.
func (h *BlindHeuristic) Name() string { return "blind" }

// GoalCountHeuristic counts the number of goal facts not yet satisfied
// (original_source's goal_count_heuristic.cc): a cheap, inadmissible
// baseline.
type GoalCountHeuristic struct {
	tk    *task.Task
	value int
}

// NewGoalCountHeuristic builds a goal-count heuristic over tk.
func NewGoalCountHeuristic(tk *task.Task) *GoalCountHeuristic { return &GoalCountHeuristic{tk: tk} }

// ReachState is a no-op.
func (h *GoalCountHeuristic) ReachState(parent, succ task.State, op task.Operator) {}

// Evaluate counts unsatisfied goal facts in s.
func (h *GoalCountHeuristic) Evaluate(s task.State) {
	count := 0
	for _, f := range h.tk.Goal {
		if s[f.Var] != f.Val {
			count++
		}
	}
	h.value = count
}

// Value returns the most recent unsatisfied-goal count.
func (h *GoalCountHeuristic) Value() int { return h.value }

// IsDeadEnd is always false: goal-count never prunes.
func (h *GoalCountHeuristic) IsDeadEnd() bool { return false }

// DeadEndReliable is always false.
func (h *GoalCountHeuristic) DeadEndReliable() bool { return false }

// PreferredOperators is always empty: goal-count contributes no
// preferences.
func (h *GoalCountHeuristic) PreferredOperators() []int { return nil }

// Name identifies this heuristic for CLI selection.
func (h *GoalCountHeuristic) Name() string { return "goalcount" }
