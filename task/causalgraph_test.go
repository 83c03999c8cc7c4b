// SPDX-License-Identifier: MIT
package task_test

import (
	"testing"

	"github.com/arbecker/fdplan/task"
)

func TestCausalGraphReducedAncestors(t *testing.T) {
	vars := []task.Variable{
		{Name: "v0", DomainSize: 2},
		{Name: "v1", DomainSize: 2},
		{Name: "v2", DomainSize: 2},
	}
	// op: prevail v0=1 required to set v2; v1 is unrelated.
	op := task.Operator{
		Prevail:  []task.Fact{{Var: 0, Val: 1}},
		PrePosts: []task.PrePost{{Var: 2, Pre: task.Any, Post: 1}},
		Cost:     1,
	}
	tk, err := task.New(vars, task.State{0, 0, 0}, nil, []task.Operator{op}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	cg := task.BuildCausalGraph(tk)
	ancestors := cg.ReducedAncestors(2)
	if len(ancestors) != 2 || ancestors[0] != 0 || ancestors[1] != 2 {
		t.Fatalf("expected reduced ancestors [0 2], got %v", ancestors)
	}
	// v1 should not be an ancestor: it is never a precondition for v2.
	for _, a := range ancestors {
		if a == 1 {
			t.Fatalf("v1 should not be an ancestor of v2")
		}
	}
}
