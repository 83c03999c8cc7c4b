// SPDX-License-Identifier: MIT
package evaluator

// SumEvaluator returns the saturating sum of its children's values
// (spec.md §4.2). It is a dead end if any child is a dead end, and that
// dead-end signal is reliable iff the first dead-end child's own signal
// was reliable.
type SumEvaluator struct {
	children []Evaluator

	value           int
	deadEnd         bool
	deadEndReliable bool
}

// NewSumEvaluator composes children into a single summed evaluator.
func NewSumEvaluator(children ...Evaluator) *SumEvaluator {
	return &SumEvaluator{children: children}
}

// Evaluate drives every child, then sums their values and derives the
// composite dead-end/reliability signal from the first dead-end child
// encountered.
func (e *SumEvaluator) Evaluate(g int, preferred bool) {
	e.value = 0
	e.deadEnd = false
	e.deadEndReliable = false
	for _, c := range e.children {
		c.Evaluate(g, preferred)
		e.value = addSaturating(e.value, c.Value())
		if c.IsDeadEnd() && !e.deadEnd {
			e.deadEnd = true
			e.deadEndReliable = c.DeadEndReliable()
		}
	}
}

// Value returns the cached saturating sum.
func (e *SumEvaluator) Value() int { return e.value }

// IsDeadEnd reports whether any child was a dead end.
func (e *SumEvaluator) IsDeadEnd() bool { return e.deadEnd }

// DeadEndReliable reports the reliability of the first dead-end child's
// signal, or false if no child was a dead end.
func (e *SumEvaluator) DeadEndReliable() bool { return e.deadEndReliable }
