// SPDX-License-Identifier: MIT
package evaluator

import "github.com/arbecker/fdplan/task"

// WeightedEvaluator scales an inner evaluator's value by a fixed integer
// weight w (spec.md §4.2: "returns w·inner.value(); propagates dead-end").
// Weighted A* uses this with w_h > 1 alongside a GEvaluator at weight 1.
type WeightedEvaluator struct {
	inner Evaluator
	w     int
	value int
}

// NewWeightedEvaluator wraps inner, scaling its value by w.
func NewWeightedEvaluator(inner Evaluator, w int) *WeightedEvaluator {
	return &WeightedEvaluator{inner: inner, w: w}
}

// Evaluate drives inner and caches w * inner.Value(), saturating on
// overflow.
func (e *WeightedEvaluator) Evaluate(g int, preferred bool) {
	e.inner.Evaluate(g, preferred)
	v := e.inner.Value()
	if v >= task.QuiteALot {
		e.value = task.QuiteALot
		return
	}
	product := v * e.w
	if e.w != 0 && product/e.w != v {
		e.value = task.QuiteALot
		return
	}
	e.value = saturate(product)
}

// Value returns the cached scaled value.
func (e *WeightedEvaluator) Value() int { return e.value }

// IsDeadEnd propagates the inner evaluator's dead-end signal.
func (e *WeightedEvaluator) IsDeadEnd() bool { return e.inner.IsDeadEnd() }

// DeadEndReliable propagates the inner evaluator's reliability.
func (e *WeightedEvaluator) DeadEndReliable() bool { return e.inner.DeadEndReliable() }
