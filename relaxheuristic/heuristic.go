// SPDX-License-Identifier: MIT
package relaxheuristic

import (
	"sort"

	"github.com/arbecker/fdplan/task"
)

// Mode selects which scalar this heuristic reports through Value: the
// additive estimate or the FF relaxed-plan size. Both share the same
// underlying bucket-queue propagation (spec.md §4.6).
type Mode int

const (
	// ModeFF reports the size of the relaxed plan extracted from the
	// delete-relaxation reach structure.
	ModeFF Mode = iota
	// ModeAdd reports h_add: the sum of goal propositions' additive costs.
	ModeAdd
)

// Option configures a RelaxHeuristic at construction time.
type Option func(*RelaxHeuristic)

// WithMode overrides the default mode (ModeFF).
func WithMode(m Mode) Option {
	return func(h *RelaxHeuristic) { h.mode = m }
}

const unreached = task.QuiteALot

// seedReacher marks a proposition as reached directly from the evaluated
// state rather than via a unary operator.
const seedReacher = -1

// noReacher marks a proposition that has not been reached at all.
const noReacher = -2

// RelaxHeuristic implements the delete-relaxation heuristic (spec.md C7).
type RelaxHeuristic struct {
	tk        *task.Task
	mode      Mode
	props     propOffset
	unaries   []unaryOperator
	byPrecond [][]int
	goalProps []int

	hAdd        []int
	reachedBy   []int
	unsatisfied []int
	accCost     []int

	value     int
	deadEnd   bool
	preferred []int
}

// New compiles tk's unary-operator pool once and returns a ready-to-use
// heuristic (spec.md §5: "allocated once").
func New(tk *task.Task, opts ...Option) *RelaxHeuristic {
	h := &RelaxHeuristic{tk: tk, mode: ModeFF}
	for _, o := range opts {
		o(h)
	}
	h.props, h.unaries, h.byPrecond = compile(tk)
	for _, g := range tk.Goal {
		h.goalProps = append(h.goalProps, h.props.id(g.Var, g.Val))
	}
	h.hAdd = make([]int, h.props.total)
	h.reachedBy = make([]int, h.props.total)
	h.unsatisfied = make([]int, len(h.unaries))
	h.accCost = make([]int, len(h.unaries))
	return h
}

// Name identifies this heuristic for CLI selection.
func (h *RelaxHeuristic) Name() string {
	if h.mode == ModeAdd {
		return "hadd"
	}
	return "ff"
}

// ReachState is a no-op: this heuristic fully resets its runtime fields at
// the start of every Evaluate (spec.md §5).
func (h *RelaxHeuristic) ReachState(parent, succ task.State, op task.Operator) {}

// DeadEndReliable is always true: the delete-relaxation dead-end signal is
// sound (spec.md §4.6).
func (h *RelaxHeuristic) DeadEndReliable() bool { return true }

// Value returns the most recently evaluated estimate.
func (h *RelaxHeuristic) Value() int { return h.value }

// IsDeadEnd reports whether the most recent Evaluate found the delete
// relaxation of s has no reachable plan.
func (h *RelaxHeuristic) IsDeadEnd() bool { return h.deadEnd }

// PreferredOperators returns the operators in the relaxed plan that were
// reached through a zero-cost precondition chain (spec.md §4.6 step 5).
func (h *RelaxHeuristic) PreferredOperators() []int { return h.preferred }

// Evaluate runs the bucket-queue h_add propagation from scratch for s, then
// (for ModeFF) extracts a relaxed plan and preferred operators.
func (h *RelaxHeuristic) Evaluate(s task.State) {
	for i := range h.hAdd {
		h.hAdd[i] = unreached
		h.reachedBy[i] = noReacher
	}
	for i, u := range h.unaries {
		h.unsatisfied[i] = len(u.Preconditions)
		h.accCost[i] = u.BaseCost
	}

	pq := newBucketQueue()
	relax := func(prop, cost, reacher int) {
		if cost < h.hAdd[prop] {
			h.hAdd[prop] = cost
			h.reachedBy[prop] = reacher
			pq.push(cost, prop)
		}
	}
	for v, val := range s {
		relax(h.props.id(v, val), 0, seedReacher)
	}
	for idx, u := range h.unaries {
		if len(u.Preconditions) == 0 {
			relax(u.Effect, u.BaseCost, idx)
		}
	}

	remainingGoals := len(h.goalProps)
	goalSet := make(map[int]bool, len(h.goalProps))
	for _, g := range h.goalProps {
		if h.hAdd[g] != unreached {
			remainingGoals--
		} else {
			goalSet[g] = true
		}
	}

	for remainingGoals > 0 {
		d, prop, ok := pq.pop()
		if !ok {
			break
		}
		if d != h.hAdd[prop] {
			continue
		}
		if goalSet[prop] {
			remainingGoals--
		}
		for _, uidx := range h.byPrecond[prop] {
			h.unsatisfied[uidx]--
			h.accCost[uidx] += h.hAdd[prop]
			if h.unsatisfied[uidx] == 0 {
				u := h.unaries[uidx]
				relax(u.Effect, h.accCost[uidx], uidx)
			}
		}
	}

	sum := 0
	for _, g := range h.goalProps {
		if h.hAdd[g] == unreached {
			h.deadEnd = true
			h.value = task.QuiteALot
			h.preferred = nil
			return
		}
		sum += h.hAdd[g]
	}
	h.deadEnd = false

	opSet, prefSet := h.extractRelaxedPlan()
	if h.mode == ModeAdd {
		h.value = sum
	} else {
		h.value = len(opSet)
	}
	prefs := make([]int, 0, len(prefSet))
	for op := range prefSet {
		prefs = append(prefs, op)
	}
	sort.Ints(prefs)
	h.preferred = prefs
}

// extractRelaxedPlan walks the reached-by pointers back from every goal
// proposition, collecting the originating operators of every unary
// operator it passes through, and marking as preferred those reached
// through a zero-cost precondition chain (spec.md §4.6 step 5).
func (h *RelaxHeuristic) extractRelaxedPlan() (map[int]bool, map[int]bool) {
	opSet := map[int]bool{}
	prefSet := map[int]bool{}
	visited := make([]bool, len(h.hAdd))

	var collect func(prop int)
	collect = func(prop int) {
		if visited[prop] {
			return
		}
		visited[prop] = true
		reacher := h.reachedBy[prop]
		if reacher < 0 {
			return
		}
		u := h.unaries[reacher]
		opSet[u.Op.ID] = true
		if h.accCost[reacher] == u.BaseCost {
			prefSet[u.Op.ID] = true
		}
		for _, pre := range u.Preconditions {
			collect(pre)
		}
	}
	for _, g := range h.goalProps {
		collect(g)
	}
	return opSet, prefSet
}
