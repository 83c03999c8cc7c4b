// SPDX-License-Identifier: MIT
package task_test

import (
	"testing"

	"github.com/arbecker/fdplan/task"
)

// buildAxiomTask encodes spec.md §8 scenario 4: one non-derived variable
// v in {0,1}, one derived variable d in {0,1} whose axiom sets d=1 when
// v=1 and d=0 otherwise. Goal d=1.
func buildAxiomTask(t *testing.T) *task.Task {
	t.Helper()
	vars := []task.Variable{
		{Name: "v", DomainSize: 2, AxiomLayer: task.NoAxiomLayer},
		{Name: "d", DomainSize: 2, AxiomLayer: 0},
	}
	initial := task.State{0, 0}
	goal := []task.Fact{{Var: 1, Val: 1}}
	op := task.Operator{
		ID:   0,
		Name: "set-v",
		PrePosts: []task.PrePost{
			{Var: 0, Pre: 0, Post: 1},
		},
		Cost: 1,
	}
	axiomOn := task.Operator{
		ID:   0,
		Name: "d-on",
		PrePosts: []task.PrePost{
			{Var: 1, Pre: task.Any, Post: 1, EffectCond: []task.Fact{{Var: 0, Val: 1}}},
		},
		IsAxiom: true,
	}
	axiomOff := task.Operator{
		ID:   1,
		Name: "d-off",
		PrePosts: []task.PrePost{
			{Var: 1, Pre: task.Any, Post: 0, EffectCond: []task.Fact{{Var: 0, Val: 0}}},
		},
		IsAxiom: true,
	}
	tk, err := task.New(vars, initial, goal, []task.Operator{op}, []task.Operator{axiomOn, axiomOff})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return tk
}

func TestAxiomFixpoint(t *testing.T) {
	tk := buildAxiomTask(t)
	if tk.GoalSatisfied(tk.Fixpoint(tk.Initial)) {
		t.Fatalf("goal should not be satisfied before applying set-v")
	}
	succ := tk.ApplyAndFixpoint(tk.Operators[0], tk.Initial)
	if succ[0] != 1 {
		t.Fatalf("expected v=1 after set-v, got %d", succ[0])
	}
	if succ[1] != 1 {
		t.Fatalf("expected axiom to derive d=1, got %d", succ[1])
	}
	if !tk.GoalSatisfied(succ) {
		t.Fatalf("goal should be satisfied once d=1")
	}
}

func TestGoalDisagreementCount(t *testing.T) {
	tk := buildAxiomTask(t)
	if got := tk.GoalDisagreementCount(tk.Initial); got != 1 {
		t.Fatalf("expected 1 disagreeing goal variable, got %d", got)
	}
}

func TestOperatorCost(t *testing.T) {
	if task.OperatorCost(task.Operator{IsAxiom: true}) != 0 {
		t.Fatalf("axiom cost must be 0")
	}
	if task.OperatorCost(task.Operator{IsAxiom: false}) != 1 {
		t.Fatalf("non-axiom cost must be 1 under unit cost")
	}
}

func TestNewRejectsEmptyTask(t *testing.T) {
	_, err := task.New(nil, nil, nil, nil, nil)
	if err != task.ErrEmptyTask {
		t.Fatalf("expected ErrEmptyTask, got %v", err)
	}
}

func TestNewRejectsOversizedDomain(t *testing.T) {
	vars := []task.Variable{{Name: "v", DomainSize: task.MaxDomainSize + 1}}
	_, err := task.New(vars, task.State{0}, nil, nil, nil)
	if err == nil {
		t.Fatalf("expected an error for oversized domain")
	}
}
