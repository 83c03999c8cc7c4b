// SPDX-License-Identifier: MIT
package succgen_test

import (
	"reflect"
	"testing"

	"github.com/arbecker/fdplan/succgen"
	"github.com/arbecker/fdplan/task"
)

func buildTestTask(t *testing.T) *task.Task {
	t.Helper()
	vars := []task.Variable{
		{Name: "a", DomainSize: 2},
		{Name: "b", DomainSize: 2},
	}
	ops := []task.Operator{
		{ID: 0, Name: "unconditional", PrePosts: []task.PrePost{{Var: 0, Pre: task.Any, Post: 1}}, Cost: 1},
		{ID: 1, Name: "needs-a1", Prevail: []task.Fact{{Var: 0, Val: 1}}, PrePosts: []task.PrePost{{Var: 1, Pre: 0, Post: 1}}, Cost: 1},
		{ID: 2, Name: "needs-b0", PrePosts: []task.PrePost{{Var: 1, Pre: 0, Post: 0}}, Cost: 1},
	}
	tk, err := task.New(vars, task.State{0, 0}, nil, ops, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return tk
}

func TestApplicableMatchesBruteForce(t *testing.T) {
	tk := buildTestTask(t)
	g := succgen.Build(tk)

	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			s := task.State{a, b}
			got := g.Applicable(s)

			var want []int
			for _, op := range tk.Operators {
				if task.Applicable(op, s) {
					want = append(want, op.ID)
				}
			}
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("state %v: Applicable()=%v, want %v", s, got, want)
			}
		}
	}
}
