// SPDX-License-Identifier: MIT
package searchspace_test

import (
	"testing"

	"github.com/arbecker/fdplan/searchspace"
	"github.com/arbecker/fdplan/task"
)

func chainTask(t *testing.T) *task.Task {
	t.Helper()
	// A -> B -> C chain over a single 3-valued variable: 0=A, 1=B, 2=C.
	vars := []task.Variable{{Name: "pos", DomainSize: 3}}
	ops := []task.Operator{
		{ID: 0, Name: "A-B", PrePosts: []task.PrePost{{Var: 0, Pre: 0, Post: 1}}, Cost: 1},
		{ID: 1, Name: "B-C", PrePosts: []task.PrePost{{Var: 0, Pre: 1, Post: 2}}, Cost: 1},
	}
	tk, err := task.New(vars, task.State{0}, []task.Fact{{Var: 0, Val: 2}}, ops, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return tk
}

func TestGetNodeIdempotent(t *testing.T) {
	tk := chainTask(t)
	sp := searchspace.NewSpace(tk)
	n1 := sp.GetNode(tk.Initial)
	n2 := sp.GetNode(tk.Initial.Clone())
	if n1 != n2 {
		t.Fatalf("GetNode should return the same record for an equal state")
	}
	if n1.Status != searchspace.StatusNew {
		t.Fatalf("expected StatusNew, got %v", n1.Status)
	}
}

func TestOpenCloseTracePath(t *testing.T) {
	tk := chainTask(t)
	sp := searchspace.NewSpace(tk)

	initNode := sp.GetNode(tk.Initial)
	sp.OpenInitial(initNode, 2)
	sp.Close(initNode)

	bState := tk.ApplyAndFixpoint(tk.Operators[0], tk.Initial)
	bNode := sp.GetNode(bState)
	sp.Open(bNode, initNode, tk.Operators[0], 1)
	if bNode.G != 1 {
		t.Fatalf("expected g=1 for B, got %d", bNode.G)
	}
	sp.Close(bNode)

	cState := tk.ApplyAndFixpoint(tk.Operators[1], bState)
	cNode := sp.GetNode(cState)
	sp.Open(cNode, bNode, tk.Operators[1], 0)
	if cNode.G != 2 {
		t.Fatalf("expected g=2 for C, got %d", cNode.G)
	}

	path, err := sp.TracePath(cState)
	if err != nil {
		t.Fatalf("TracePath: %v", err)
	}
	if len(path) != 2 || path[0] != 0 || path[1] != 1 {
		t.Fatalf("expected path [0 1], got %v", path)
	}
}

func TestReopenOnNewPanics(t *testing.T) {
	tk := chainTask(t)
	sp := searchspace.NewSpace(tk)
	n := sp.GetNode(tk.Initial)

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected Reopen on a NEW node to panic")
		}
	}()
	sp.Reopen(n, n, tk.Operators[0])
}

func TestReopenOnlyOnStrictImprovement(t *testing.T) {
	tk := chainTask(t)
	sp := searchspace.NewSpace(tk)

	a := sp.GetNode(tk.Initial)
	sp.OpenInitial(a, 2)
	sp.Close(a)

	bState := tk.ApplyAndFixpoint(tk.Operators[0], tk.Initial)
	b := sp.GetNode(bState)
	sp.Open(b, a, tk.Operators[0], 1)
	sp.Close(b)

	// Reopening via the same path (same g) must not change anything.
	sp.Reopen(b, a, tk.Operators[0])
	if b.Status != searchspace.StatusClosed {
		t.Fatalf("reopen with no strict improvement must not change status")
	}
}
