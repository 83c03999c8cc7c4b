// SPDX-License-Identifier: MIT
package evaluator

// GEvaluator returns the path cost g directly; it is never a dead end
// (spec.md §4.2).
type GEvaluator struct {
	g int
}

// NewGEvaluator constructs a G-evaluator.
func NewGEvaluator() *GEvaluator { return &GEvaluator{} }

// Evaluate records g for the current node.
func (e *GEvaluator) Evaluate(g int, preferred bool) { e.g = g }

// Value returns the recorded g.
func (e *GEvaluator) Value() int { return e.g }

// IsDeadEnd is always false.
func (e *GEvaluator) IsDeadEnd() bool { return false }

// DeadEndReliable is always false.
func (e *GEvaluator) DeadEndReliable() bool { return false }
