// SPDX-License-Identifier: MIT
package succgen

import (
	"sort"

	"github.com/arbecker/fdplan/task"
)

// Generator is an index over a Task's (non-axiom) operators that yields the
// applicable subset for a given state without scanning every operator.
type Generator struct {
	task *task.Task
	root node
}

// node is one level of the match tree. A node is either a leaf (every
// remaining operator is applicable regardless of any variable not yet
// switched on) or a switch on one variable, with a per-value child plus a
// "default" child for operators indifferent to that variable.
type node struct {
	leaf      []int // operator indices; nil for a switch node
	switchVar int    // meaningful only when leaf == nil
	children  map[int]*node
	indiff    *node // operators with no remaining condition on switchVar
}

// condition is one still-unresolved precondition of an operator as the tree
// is built: it must hold variable Var == Val for the operator to reach the
// leaf that contains it.
type condition struct {
	opIdx int
	Var   int
	Val   int
}

// Build constructs a Generator over t's non-axiom operators. Axioms are
// never part of the successor generator: spec.md §4.4 notes "axioms do not
// appear as applicable actions; they are part of successor-state
// computation" (see task.Task.Fixpoint).
func Build(t *task.Task) *Generator {
	opConds := make([][]condition, len(t.Operators))
	for i, op := range t.Operators {
		var conds []condition
		for _, f := range op.Prevail {
			conds = append(conds, condition{opIdx: i, Var: f.Var, Val: f.Val})
		}
		for _, pp := range op.PrePosts {
			if pp.Pre != task.Any {
				conds = append(conds, condition{opIdx: i, Var: pp.Var, Val: pp.Pre})
			}
		}
		opConds[i] = conds
	}
	ids := make([]int, len(t.Operators))
	for i := range ids {
		ids[i] = i
	}
	root := buildNode(ids, opConds)
	return &Generator{task: t, root: root}
}

// buildNode recursively partitions the operator ids in ids by their
// still-unresolved conditions (conds, keyed by operator index). Each
// recursive call strictly shrinks the total remaining-condition count, so
// the recursion always terminates in a leaf.
func buildNode(ids []int, conds [][]condition) node {
	var pivotVar int
	found := false
	for _, id := range ids {
		if len(conds[id]) > 0 {
			pivotVar = conds[id][0].Var
			found = true
			break
		}
	}
	if !found {
		sorted := append([]int(nil), ids...)
		sort.Ints(sorted)
		return node{leaf: sorted}
	}

	byValue := map[int][]int{}
	var indifferent []int
	remaining := make([][]condition, len(conds))
	for _, id := range ids {
		val, has := valueFor(conds[id], pivotVar)
		if !has {
			indifferent = append(indifferent, id)
			remaining[id] = conds[id]
			continue
		}
		byValue[val] = append(byValue[val], id)
		remaining[id] = dropVar(conds[id], pivotVar)
	}

	children := make(map[int]*node, len(byValue))
	for val, childIDs := range byValue {
		n := buildNode(childIDs, remaining)
		children[val] = &n
	}
	var indiff *node
	if len(indifferent) > 0 {
		n := buildNode(indifferent, remaining)
		indiff = &n
	}
	return node{switchVar: pivotVar, children: children, indiff: indiff}
}

func valueFor(conds []condition, v int) (int, bool) {
	for _, c := range conds {
		if c.Var == v {
			return c.Val, true
		}
	}
	return 0, false
}

func dropVar(conds []condition, v int) []condition {
	out := make([]condition, 0, len(conds))
	for _, c := range conds {
		if c.Var != v {
			out = append(out, c)
		}
	}
	return out
}

// Applicable returns the ids of every non-axiom operator applicable in s,
// in ascending order.
func (g *Generator) Applicable(s task.State) []int {
	var out []int
	collect(&g.root, s, &out)
	sort.Ints(out)
	return out
}

func collect(n *node, s task.State, out *[]int) {
	if n.leaf != nil {
		*out = append(*out, n.leaf...)
		return
	}
	if child, ok := n.children[s[n.switchVar]]; ok {
		collect(child, s, out)
	}
	if n.indiff != nil {
		collect(n.indiff, s, out)
	}
}
