// SPDX-License-Identifier: MIT
package dtg_test

import (
	"testing"

	"github.com/arbecker/fdplan/dtg"
	"github.com/arbecker/fdplan/task"
)

func TestBuildSimpleEdge(t *testing.T) {
	vars := []task.Variable{
		{Name: "v0", DomainSize: 2},
		{Name: "v1", DomainSize: 2},
	}
	op := task.Operator{
		ID:       0,
		Prevail:  []task.Fact{{Var: 1, Val: 1}},
		PrePosts: []task.PrePost{{Var: 0, Pre: 0, Post: 1}},
		Cost:     1,
	}
	tk, err := task.New(vars, task.State{0, 1}, nil, []task.Operator{op}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tbl := dtg.Build(tk)
	d0 := tbl.Get(0)
	if d0.IsAxiomOnly {
		t.Fatalf("variable 0's DTG should not be axiom-only")
	}
	trs := d0.Transitions(0)
	if len(trs) != 1 || trs[0].To != 1 {
		t.Fatalf("expected a single 0->1 transition, got %+v", trs)
	}
	if len(trs[0].Labels) != 1 {
		t.Fatalf("expected a single label, got %d", len(trs[0].Labels))
	}
	lbl := trs[0].Labels[0]
	if len(lbl.Prevail) != 1 || lbl.Prevail[0] != (task.Fact{Var: 1, Val: 1}) {
		t.Fatalf("expected prevail [{1 1}], got %v", lbl.Prevail)
	}
}

func TestBuildAnyPreFansOut(t *testing.T) {
	vars := []task.Variable{{Name: "v0", DomainSize: 3}}
	op := task.Operator{
		ID:       0,
		PrePosts: []task.PrePost{{Var: 0, Pre: task.Any, Post: 2}},
		Cost:     1,
	}
	tk, err := task.New(vars, task.State{0}, nil, []task.Operator{op}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tbl := dtg.Build(tk)
	d0 := tbl.Get(0)
	for from := 0; from < 2; from++ {
		trs := d0.Transitions(from)
		if len(trs) != 1 || trs[0].To != 2 {
			t.Fatalf("expected %d->2 transition, got %+v", from, trs)
		}
	}
	if len(d0.Transitions(2)) != 0 {
		t.Fatalf("no self-loop expected for pre=any, post=2 at value 2")
	}
}
