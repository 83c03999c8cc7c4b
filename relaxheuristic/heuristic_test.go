// SPDX-License-Identifier: MIT
package relaxheuristic_test

import (
	"testing"

	"github.com/arbecker/fdplan/relaxheuristic"
	"github.com/arbecker/fdplan/task"
)

func buildSharedOperatorTask(t *testing.T) *task.Task {
	t.Helper()
	vars := []task.Variable{
		{Name: "v0", DomainSize: 2},
		{Name: "v1", DomainSize: 2},
	}
	initial := task.State{0, 0}
	goal := []task.Fact{{Var: 0, Val: 1}, {Var: 1, Val: 1}}
	op := task.Operator{
		ID:   0,
		Name: "set-both",
		PrePosts: []task.PrePost{
			{Var: 0, Pre: task.Any, Post: 1},
			{Var: 1, Pre: task.Any, Post: 1},
		},
		Cost: 1,
	}
	tk, err := task.New(vars, initial, goal, []task.Operator{op}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return tk
}

func TestHAddSumsIndependently(t *testing.T) {
	tk := buildSharedOperatorTask(t)
	h := relaxheuristic.New(tk, relaxheuristic.WithMode(relaxheuristic.ModeAdd))
	h.Evaluate(tk.Initial)
	if h.IsDeadEnd() {
		t.Fatalf("state should not be a dead end")
	}
	if h.Value() != 2 {
		t.Fatalf("expected h_add=2 (one unit cost per goal fact), got %d", h.Value())
	}
}

func TestFFCountsDistinctOperators(t *testing.T) {
	tk := buildSharedOperatorTask(t)
	h := relaxheuristic.New(tk, relaxheuristic.WithMode(relaxheuristic.ModeFF))
	h.Evaluate(tk.Initial)
	if h.Value() != 1 {
		t.Fatalf("expected FF=1 (single operator achieves both goal facts), got %d", h.Value())
	}
	prefs := h.PreferredOperators()
	if len(prefs) != 1 || prefs[0] != 0 {
		t.Fatalf("expected preferred operators [0], got %v", prefs)
	}
}

func TestGoalAlreadySatisfiedIsZero(t *testing.T) {
	tk := buildSharedOperatorTask(t)
	h := relaxheuristic.New(tk)
	h.Evaluate(task.State{1, 1})
	if h.Value() != 0 {
		t.Fatalf("expected 0 at the goal, got %d", h.Value())
	}
	if len(h.PreferredOperators()) != 0 {
		t.Fatalf("expected no preferred operators at the goal, got %v", h.PreferredOperators())
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
	h := relaxheuristic.New(tk)
	h.Evaluate(tk.Initial)
	if !h.IsDeadEnd() {
		t.Fatalf("expected a dead end with no operators available")
	}
	if !h.DeadEndReliable() {
		t.Fatalf("the delete-relaxation heuristic's dead-end signal must be reliable")
	}
}

// TestDominanceSimplificationDropsDuplicate checks that two unary operators
// with the same effect, the same (empty) precondition set, and the same
// unit cost are simplified down to one (spec.md §4.6's tie-break rule for
// exact duplicates) without affecting the computed estimate.
func TestDominanceSimplificationDropsDuplicate(t *testing.T) {
	vars := []task.Variable{{Name: "v0", DomainSize: 2}}
	initial := task.State{0}
	goal := []task.Fact{{Var: 0, Val: 1}}
	first := task.Operator{ID: 0, Name: "first", PrePosts: []task.PrePost{{Var: 0, Pre: task.Any, Post: 1}}, Cost: 1}
	second := task.Operator{ID: 1, Name: "second", PrePosts: []task.PrePost{{Var: 0, Pre: task.Any, Post: 1}}, Cost: 1}
	tk, err := task.New(vars, initial, goal, []task.Operator{first, second}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h := relaxheuristic.New(tk, relaxheuristic.WithMode(relaxheuristic.ModeAdd))
	h.Evaluate(tk.Initial)
	if h.Value() != 1 {
		t.Fatalf("expected unit cost to reach the goal, got %d", h.Value())
	}
}
