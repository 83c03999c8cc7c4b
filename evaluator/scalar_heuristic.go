// SPDX-License-Identifier: MIT
package evaluator

import "github.com/arbecker/fdplan/heuristic"

// ScalarHeuristicEvaluator wraps a heuristic.Heuristic and exposes its most
// recent Value/IsDeadEnd/DeadEndReliable through the Evaluator interface
// (spec.md §4.2). It does not call the wrapped heuristic's Evaluate method
// itself: the search engine is responsible for driving every heuristic's
// ReachState/Evaluate once per node before reading any evaluator built on
// top of it, so several evaluators can share one heuristic instance without
// redundant recomputation.
type ScalarHeuristicEvaluator struct {
	h heuristic.Heuristic
}

// NewScalarHeuristicEvaluator wraps h.
func NewScalarHeuristicEvaluator(h heuristic.Heuristic) *ScalarHeuristicEvaluator {
	return &ScalarHeuristicEvaluator{h: h}
}

// Evaluate is a no-op beyond the shared contract: the search loop already
// called h.Evaluate(state) before consulting this evaluator.
func (e *ScalarHeuristicEvaluator) Evaluate(g int, preferred bool) {}

// Value returns the wrapped heuristic's most recent estimate.
func (e *ScalarHeuristicEvaluator) Value() int { return saturate(e.h.Value()) }

// IsDeadEnd defers to the wrapped heuristic.
func (e *ScalarHeuristicEvaluator) IsDeadEnd() bool { return e.h.IsDeadEnd() }

// DeadEndReliable defers to the wrapped heuristic (spec.md §4.2: "reliable
// iff the underlying heuristic reports it as reliable").
func (e *ScalarHeuristicEvaluator) DeadEndReliable() bool { return e.h.DeadEndReliable() }
