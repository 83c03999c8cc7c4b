// SPDX-License-Identifier: MIT
package mas

import (
	"math"

	"github.com/arbecker/fdplan/task"
)

// defaultThreshold is the max-abstract-states budget spec.md §4.7 step 3a
// defaults to.
const defaultThreshold = 1000

// Option configures a Heuristic at construction time.
type Option func(*buildConfig)

type buildConfig struct {
	threshold int
	strategy  Strategy
}

// WithThreshold overrides the default max abstract-state budget.
func WithThreshold(n int) Option {
	return func(c *buildConfig) { c.threshold = n }
}

// WithShrinkStrategy overrides the default F-preserving shrink strategy.
func WithShrinkStrategy(s Strategy) Option {
	return func(c *buildConfig) { c.strategy = s }
}

// Heuristic is the merge-and-shrink abstraction heuristic (spec.md C8):
// immutable after construction, evaluated by a single chained abstract-
// state lookup per call.
type Heuristic struct {
	final *Abstraction

	value   int
	deadEnd bool
}

// New runs the full merge-and-shrink pipeline once for tk: the linear
// CG/goal-level merge schedule, shrinking each side to a √threshold-
// balanced budget before every product step (spec.md §4.7 steps 2-3).
func New(tk *task.Task, opts ...Option) *Heuristic {
	cfg := &buildConfig{threshold: defaultThreshold, strategy: FPreserving{}}
	for _, o := range opts {
		o(cfg)
	}

	cg := task.BuildCausalGraph(tk)
	order := mergeOrder(tk, cg)
	if len(order) == 0 {
		return &Heuristic{final: trivialAbstraction()}
	}

	budget := intSqrt(cfg.threshold)
	if budget < 1 {
		budget = 1
	}

	accumulated := buildAtomic(tk, order[0])
	for _, v := range order[1:] {
		atomicV := buildAtomic(tk, v)

		maxAllowedSize := minInt(accumulated.NumStates, maxInt(budget, cfg.threshold/maxInt(atomicV.NumStates, 1)))
		atomicTargetSize := minInt(atomicV.NumStates, maxInt(budget, cfg.threshold/maxInt(accumulated.NumStates, 1)))
		if maxAllowedSize < 1 {
			maxAllowedSize = 1
		}
		if atomicTargetSize < 1 {
			atomicTargetSize = 1
		}

		accumulated = shrinkTo(accumulated, maxAllowedSize, cfg.strategy)
		atomicV = shrinkTo(atomicV, atomicTargetSize, cfg.strategy)

		accumulated = product(accumulated, atomicV)
		if accumulated.NumStates > cfg.threshold {
			accumulated = shrinkTo(accumulated, cfg.threshold, cfg.strategy)
		}
	}
	return &Heuristic{final: accumulated}
}

func trivialAbstraction() *Abstraction {
	a := &Abstraction{
		NumStates: 1,
		ByOp:      map[opKey][]transition{},
		GoalMask:  []bool{true},
		InitState: 0,
		lookup:    func(task.State) int { return 0 },
	}
	computeDistances(a)
	return a
}

// Name identifies this heuristic for CLI selection.
func (h *Heuristic) Name() string { return "mas" }

// ReachState is a no-op: the abstraction is immutable after construction
// (spec.md §5).
func (h *Heuristic) ReachState(parent, succ task.State, op task.Operator) {}

// DeadEndReliable is always true: dead-end signals are reliable under unit
// cost (spec.md §4.7).
func (h *Heuristic) DeadEndReliable() bool { return true }

// PreferredOperators is always empty: merge-and-shrink does not produce
// preferred operators in this module.
func (h *Heuristic) PreferredOperators() []int { return nil }

// Value returns the most recently evaluated estimate.
func (h *Heuristic) Value() int { return h.value }

// IsDeadEnd reports whether the most recent Evaluate found no finite goal
// distance for s's abstract state.
func (h *Heuristic) IsDeadEnd() bool { return h.deadEnd }

// Evaluate maps s to its final abstract state and reads off that state's
// goal distance.
func (h *Heuristic) Evaluate(s task.State) {
	id := h.final.AbstractState(s)
	if id < 0 || id >= len(h.final.GoalDistance) || h.final.GoalDistance[id] >= task.QuiteALot {
		h.value = task.QuiteALot
		h.deadEnd = true
		return
	}
	h.value = h.final.GoalDistance[id]
	h.deadEnd = false
}

func intSqrt(n int) int {
	if n <= 0 {
		return 0
	}
	r := int(math.Sqrt(float64(n)))
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
