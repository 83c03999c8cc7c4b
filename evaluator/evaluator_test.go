// SPDX-License-Identifier: MIT
package evaluator_test

import (
	"testing"

	"github.com/arbecker/fdplan/evaluator"
	"github.com/arbecker/fdplan/task"
)

// fakeHeuristic is a minimal heuristic.Heuristic stand-in so
// ScalarHeuristicEvaluator can be tested without any real heuristic
// package's search-space plumbing.
type fakeHeuristic struct {
	value    int
	deadEnd  bool
	reliable bool
}

func (f *fakeHeuristic) ReachState(parent, succ task.State, op task.Operator) {}
func (f *fakeHeuristic) Evaluate(s task.State)                                {}
func (f *fakeHeuristic) Value() int                                           { return f.value }
func (f *fakeHeuristic) IsDeadEnd() bool                                      { return f.deadEnd }
func (f *fakeHeuristic) DeadEndReliable() bool                                { return f.reliable }
func (f *fakeHeuristic) PreferredOperators() []int                            { return nil }
func (f *fakeHeuristic) Name() string                                         { return "fake" }

func TestScalarHeuristicEvaluatorMirrorsWrapped(t *testing.T) {
	h := &fakeHeuristic{value: 7, deadEnd: true, reliable: true}
	e := evaluator.NewScalarHeuristicEvaluator(h)
	e.Evaluate(3, false)
	if e.Value() != 7 {
		t.Fatalf("expected value 7, got %d", e.Value())
	}
	if !e.IsDeadEnd() || !e.DeadEndReliable() {
		t.Fatalf("expected dead end + reliable to mirror the wrapped heuristic")
	}
}

func TestGEvaluatorReturnsG(t *testing.T) {
	e := evaluator.NewGEvaluator()
	e.Evaluate(42, true)
	if e.Value() != 42 {
		t.Fatalf("expected g=42, got %d", e.Value())
	}
	if e.IsDeadEnd() {
		t.Fatalf("g-evaluator must never be a dead end")
	}
}

func TestPreferredFlagEvaluator(t *testing.T) {
	e := evaluator.NewPreferredFlagEvaluator()
	e.Evaluate(0, true)
	if e.Value() != 0 {
		t.Fatalf("expected 0 for a preferred edge, got %d", e.Value())
	}
	e.Evaluate(0, false)
	if e.Value() != 1 {
		t.Fatalf("expected 1 for a non-preferred edge, got %d", e.Value())
	}
}

func TestWeightedEvaluatorScalesInner(t *testing.T) {
	h := &fakeHeuristic{value: 5}
	inner := evaluator.NewScalarHeuristicEvaluator(h)
	e := evaluator.NewWeightedEvaluator(inner, 3)
	e.Evaluate(0, false)
	if e.Value() != 15 {
		t.Fatalf("expected 5*3=15, got %d", e.Value())
	}
}

func TestWeightedEvaluatorPropagatesDeadEnd(t *testing.T) {
	h := &fakeHeuristic{value: 5, deadEnd: true, reliable: true}
	inner := evaluator.NewScalarHeuristicEvaluator(h)
	e := evaluator.NewWeightedEvaluator(inner, 2)
	e.Evaluate(0, false)
	if !e.IsDeadEnd() || !e.DeadEndReliable() {
		t.Fatalf("weighted evaluator must propagate the inner dead-end signal")
	}
}

func TestSumEvaluatorSumsChildren(t *testing.T) {
	g := evaluator.NewGEvaluator()
	hEval := evaluator.NewScalarHeuristicEvaluator(&fakeHeuristic{value: 4})
	sum := evaluator.NewSumEvaluator(g, hEval)
	sum.Evaluate(10, false)
	if sum.Value() != 14 {
		t.Fatalf("expected g(10)+h(4)=14, got %d", sum.Value())
	}
	if sum.IsDeadEnd() {
		t.Fatalf("no child is a dead end, sum must not be either")
	}
}

func TestSumEvaluatorDeadEndIfAnyChildIs(t *testing.T) {
	ok := evaluator.NewScalarHeuristicEvaluator(&fakeHeuristic{value: 1})
	dead := evaluator.NewScalarHeuristicEvaluator(&fakeHeuristic{value: 2, deadEnd: true, reliable: true})
	sum := evaluator.NewSumEvaluator(ok, dead)
	sum.Evaluate(0, false)
	if !sum.IsDeadEnd() {
		t.Fatalf("expected sum to be a dead end when a child is")
	}
	if !sum.DeadEndReliable() {
		t.Fatalf("expected sum's dead-end reliability to mirror the dead-end child's")
	}
}

func TestSumEvaluatorSaturates(t *testing.T) {
	a := evaluator.NewScalarHeuristicEvaluator(&fakeHeuristic{value: task.QuiteALot - 1})
	b := evaluator.NewScalarHeuristicEvaluator(&fakeHeuristic{value: task.QuiteALot - 1})
	sum := evaluator.NewSumEvaluator(a, b)
	sum.Evaluate(0, false)
	if sum.Value() != task.QuiteALot {
		t.Fatalf("expected saturation to task.QuiteALot, got %d", sum.Value())
	}
}
