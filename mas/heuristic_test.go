// SPDX-License-Identifier: MIT
package mas_test

import (
	"testing"

	"github.com/arbecker/fdplan/mas"
	"github.com/arbecker/fdplan/task"
)

// buildChainTask builds a two-variable task with no shrinking pressure
// (both domains tiny, threshold left at its default), so the heuristic's
// abstract distance should equal the real optimal plan length.
func buildChainTask(t *testing.T) *task.Task {
	t.Helper()
	vars := []task.Variable{
		{Name: "v0", DomainSize: 2},
		{Name: "v1", DomainSize: 2},
	}
	initial := task.State{0, 0}
	goal := []task.Fact{{Var: 0, Val: 1}}
	setV1 := task.Operator{
		ID:       0,
		Name:     "set-v1",
		PrePosts: []task.PrePost{{Var: 1, Pre: task.Any, Post: 1}},
		Cost:     1,
	}
	setV0 := task.Operator{
		ID:       1,
		Name:     "set-v0",
		Prevail:  []task.Fact{{Var: 1, Val: 1}},
		PrePosts: []task.PrePost{{Var: 0, Pre: task.Any, Post: 1}},
		Cost:     1,
	}
	tk, err := task.New(vars, initial, goal, []task.Operator{setV1, setV0}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return tk
}

func TestEvaluateMatchesOptimalPlanLength(t *testing.T) {
	tk := buildChainTask(t)
	h := mas.New(tk)
	h.Evaluate(tk.Initial)
	if h.IsDeadEnd() {
		t.Fatalf("state should not be a dead end")
	}
	if h.Value() != 2 {
		t.Fatalf("expected h=2 (set-v1 then set-v0), got %d", h.Value())
	}
}

func TestEvaluateGoalStateIsZero(t *testing.T) {
	tk := buildChainTask(t)
	h := mas.New(tk)
	h.Evaluate(task.State{1, 1})
	if h.Value() != 0 {
		t.Fatalf("expected 0 at the goal, got %d", h.Value())
	}
}

func TestUnreachableGoalIsReliableDeadEnd(t *testing.T) {
	vars := []task.Variable{{Name: "v", DomainSize: 2}}
	initial := task.State{0}
	goal := []task.Fact{{Var: 0, Val: 1}}
	tk, err := task.New(vars, initial, goal, nil, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h := mas.New(tk)
	h.Evaluate(tk.Initial)
	if !h.IsDeadEnd() {
		t.Fatalf("expected a dead end with no operators available")
	}
	if !h.DeadEndReliable() {
		t.Fatalf("merge-and-shrink's dead-end signal must be reliable")
	}
}

func TestShrinkingPreservesDeadEndSoundness(t *testing.T) {
	tk := buildChainTask(t)
	h := mas.New(tk, mas.WithThreshold(1), mas.WithShrinkStrategy(mas.FPreserving{}))
	h.Evaluate(tk.Initial)
	if h.IsDeadEnd() {
		t.Fatalf("a solvable task must never be reported as a dead end regardless of shrink budget")
	}
}

func TestDFPStrategyAlsoPreservesSolvability(t *testing.T) {
	tk := buildChainTask(t)
	h := mas.New(tk, mas.WithThreshold(1), mas.WithShrinkStrategy(mas.DFP{}))
	h.Evaluate(tk.Initial)
	if h.IsDeadEnd() {
		t.Fatalf("a solvable task must never be reported as a dead end regardless of shrink strategy")
	}
}
