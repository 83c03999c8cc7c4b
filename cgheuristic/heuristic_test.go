// SPDX-License-Identifier: MIT
package cgheuristic_test

import (
	"testing"

	"github.com/arbecker/fdplan/cache"
	"github.com/arbecker/fdplan/cgheuristic"
	"github.com/arbecker/fdplan/dtg"
	"github.com/arbecker/fdplan/task"
)

// buildSingleOpTask encodes spec.md §8 scenario 6: one variable v in {0,1},
// one operator O1 that sets v=1 unconditionally, goal v=1. O1 carries no
// prevail conditions, so its helpful transition is satisfied at depth 1.
func buildSingleOpTask(t *testing.T) *task.Task {
	t.Helper()
	vars := []task.Variable{{Name: "v", DomainSize: 2}}
	initial := task.State{0}
	goal := []task.Fact{{Var: 0, Val: 1}}
	op := task.Operator{
		ID:       0,
		Name:     "o1",
		PrePosts: []task.PrePost{{Var: 0, Pre: task.Any, Post: 1}},
		Cost:     1,
	}
	tk, err := task.New(vars, initial, goal, []task.Operator{op}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return tk
}

func buildHeuristic(t *testing.T, tk *task.Task) *cgheuristic.CGHeuristic {
	t.Helper()
	cg := task.BuildCausalGraph(tk)
	dtgs := dtg.Build(tk)
	cacheTbl := cache.Build(tk, cg)
	return cgheuristic.New(tk, dtgs, cacheTbl)
}

func TestEvaluateSimpleReachability(t *testing.T) {
	tk := buildSingleOpTask(t)
	h := buildHeuristic(t, tk)
	h.Evaluate(tk.Initial)
	if h.IsDeadEnd() {
		t.Fatalf("state should not be a dead end")
	}
	if h.Value() != 1 {
		t.Fatalf("expected h=1, got %d", h.Value())
	}
}

func TestEvaluateGoalStateIsZero(t *testing.T) {
	tk := buildSingleOpTask(t)
	h := buildHeuristic(t, tk)
	h.Evaluate(task.State{1})
	if h.Value() != 0 {
		t.Fatalf("expected h=0 at the goal, got %d", h.Value())
	}
}

func TestPreferredOperatorsDepthOne(t *testing.T) {
	tk := buildSingleOpTask(t)
	h := buildHeuristic(t, tk)
	h.Evaluate(tk.Initial)
	prefs := h.PreferredOperators()
	if len(prefs) != 1 || prefs[0] != 0 {
		t.Fatalf("expected preferred operators [0], got %v", prefs)
	}
}

// buildPrevailTask builds a two-variable task where reaching the goal value
// of v0 requires an operator whose prevail condition on v1 is not yet
// satisfied in the initial state, exercising recursive prevail costing and
// the depth>1 helpful-action recursion.
func buildPrevailTask(t *testing.T) *task.Task {
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

func TestEvaluateRecursesIntoPrevailConditions(t *testing.T) {
	tk := buildPrevailTask(t)
	h := buildHeuristic(t, tk)
	h.Evaluate(tk.Initial)
	if h.IsDeadEnd() {
		t.Fatalf("state should not be a dead end")
	}
	if h.Value() != 2 {
		t.Fatalf("expected h=2 (set-v1 then set-v0), got %d", h.Value())
	}
	prefs := h.PreferredOperators()
	if len(prefs) != 1 || prefs[0] != setV1ID(tk) {
		t.Fatalf("expected preferred operators [set-v1], got %v", prefs)
	}
}

func setV1ID(tk *task.Task) int {
	for _, op := range tk.Operators {
		if op.Name == "set-v1" {
			return op.ID
		}
	}
	return -1
}

func TestUnreachableGoalIsDeadEnd(t *testing.T) {
	vars := []task.Variable{{Name: "v", DomainSize: 2}}
	initial := task.State{0}
	goal := []task.Fact{{Var: 0, Val: 1}}
	tk, err := task.New(vars, initial, goal, nil, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h := buildHeuristic(t, tk)
	h.Evaluate(tk.Initial)
	if !h.IsDeadEnd() {
		t.Fatalf("expected a dead end with no operators available")
	}
	if h.DeadEndReliable() {
		t.Fatalf("the causal-graph heuristic must never report a reliable dead end")
	}
}

// TestCacheSoundness checks spec.md §8's cache-soundness property: once a
// cache entry exists for a transition, it equals the cost an on-demand
// re-evaluation under the same context would produce.
func TestCacheSoundness(t *testing.T) {
	tk := buildPrevailTask(t)
	cg := task.BuildCausalGraph(tk)
	dtgs := dtg.Build(tk)
	cacheTbl := cache.Build(tk, cg)
	h := cgheuristic.New(tk, dtgs, cacheTbl)

	h.Evaluate(tk.Initial)
	first := h.Value()

	vc := cacheTbl.Get(0)
	entry, ok := vc.Lookup(0, 1, tk.Initial)
	if !ok {
		t.Fatalf("expected variable 0's transition 0->1 to be cached after Evaluate")
	}

	h2 := cgheuristic.New(tk, dtgs, cache.Build(tk, cg))
	h2.Evaluate(tk.Initial)
	if h2.Value() != first {
		t.Fatalf("recomputation from a fresh cache produced a different value: %d vs %d", h2.Value(), first)
	}
	if entry.Cost <= 0 {
		t.Fatalf("expected a positive cached cost, got %d", entry.Cost)
	}
}
