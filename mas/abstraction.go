// SPDX-License-Identifier: MIT
package mas

import "github.com/arbecker/fdplan/task"

// opKey identifies an operator or axiom uniquely across both of a Task's
// id spaces (spec.md's Operator and Axiom slices each number from 0).
type opKey struct {
	ID      int
	IsAxiom bool
}

// transition is one abstract edge: a source and target abstract-state id.
type transition struct {
	From, To int
}

// Abstraction is one node of the merge-and-shrink pipeline: either an
// atomic per-variable abstraction or a (possibly shrunk) product of two
// abstractions (spec.md §4.7).
type Abstraction struct {
	Varset   []int
	NumStates int
	ByOp     map[opKey][]transition
	GoalMask []bool

	InitState    int
	InitDistance []int
	GoalDistance []int

	lookup func(s task.State) int
}

// AbstractState maps a concrete state to this abstraction's abstract-state
// id via its chained lookup table.
func (a *Abstraction) AbstractState(s task.State) int { return a.lookup(s) }

// IsSolvable reports whether the abstract initial state has finite goal
// distance.
func (a *Abstraction) IsSolvable() bool {
	return a.InitState >= 0 && a.GoalDistance[a.InitState] < task.QuiteALot
}

// buildAtomic constructs the trivial abstraction for variable v (spec.md
// §4.7 step 1): abstract states are v's domain values, a prevail on v
// becomes a self-loop, a pre-post with a specific pre becomes a single
// edge, and an any-pre pre-post fans out from every source value.
func buildAtomic(tk *task.Task, v int) *Abstraction {
	n := tk.Variables[v].DomainSize
	byOp := map[opKey][]transition{}

	add := func(k opKey, from, to int) {
		byOp[k] = append(byOp[k], transition{From: from, To: to})
	}
	consider := func(op task.Operator) {
		k := opKey{ID: op.ID, IsAxiom: op.IsAxiom}
		for _, f := range op.Prevail {
			if f.Var == v {
				add(k, f.Val, f.Val)
			}
		}
		for _, pp := range op.PrePosts {
			if pp.Var != v {
				continue
			}
			if pp.Pre == task.Any {
				for from := 0; from < n; from++ {
					add(k, from, pp.Post)
				}
			} else {
				add(k, pp.Pre, pp.Post)
			}
		}
	}
	for _, op := range tk.Operators {
		consider(op)
	}
	for _, ax := range tk.Axioms {
		consider(ax)
	}

	goalMask := make([]bool, n)
	goalVal := -1
	for _, g := range tk.Goal {
		if g.Var == v {
			goalVal = g.Val
		}
	}
	for val := 0; val < n; val++ {
		goalMask[val] = goalVal == -1 || val == goalVal
	}

	a := &Abstraction{
		Varset:    []int{v},
		NumStates: n,
		ByOp:      byOp,
		GoalMask:  goalMask,
		InitState: tk.Initial[v],
		lookup:    func(s task.State) int { return s[v] },
	}
	computeDistances(a)
	return a
}
