// SPDX-License-Identifier: MIT
package dtg

import "github.com/arbecker/fdplan/task"

// Label is one transition label (spec.md §3): the operator that causes the
// transition, and the flat, deduplicated set of prevail facts (on other
// variables) that must hold — and are left unchanged — for the transition
// to apply. LocalToGlobal lists, in a stable order, the variable ids the
// Prevail facts reference; in this implementation it is always the
// identity over those ids (the DTG operates directly on global variable
// indices), kept as a named field so callers that enumerate a label's
// "local" context don't need to special-case this package.
type Label struct {
	OperatorID    int
	Prevail       []task.Fact
	LocalToGlobal []int
}

// Transition is one outgoing edge of a value-node: a destination value and
// the (possibly several) labels that can cause the move.
type Transition struct {
	To     int
	Labels []Label
}

// DTG is the domain-transition graph of a single variable: an arena of
// value-nodes 0..domainSize-1, each with its outgoing Transitions.
type DTG struct {
	Variable    int
	DomainSize  int
	IsAxiomOnly bool // true iff every contributing operator is an axiom (zero-cost edges)
	nodes       [][]Transition
}

// Transitions returns the outgoing transitions of value v.
func (d *DTG) Transitions(v int) []Transition { return d.nodes[v] }

// EdgeCost returns the base cost of traversing this DTG's edges: 0 for an
// axiom-only DTG, 1 otherwise (spec.md §3: "axiom DTGs treat edges as
// zero-cost, others as unit-cost").
func (d *DTG) EdgeCost() int {
	if d.IsAxiomOnly {
		return 0
	}
	return 1
}

// Table is the per-variable collection of DTGs for a Task, built once and
// shared read-only by every heuristic that needs it.
type Table struct {
	byVar []*DTG
}

// Get returns the DTG for variable v.
func (t *Table) Get(v int) *DTG { return t.byVar[v] }

// Build constructs the DTG of every variable in tk, following spec.md §3's
// invariant: for every operator's pre-post entry on v with pre != post,
// there is a corresponding labeled edge.
func Build(tk *task.Task) *Table {
	tbl := &Table{byVar: make([]*DTG, tk.NumVariables())}
	for v, variable := range tk.Variables {
		tbl.byVar[v] = buildOne(tk, v, variable.DomainSize)
	}
	// An axiom-only DTG is one with no contributing non-axiom operator.
	contributesNonAxiom := make([]bool, tk.NumVariables())
	for _, op := range tk.Operators {
		for _, pp := range op.PrePosts {
			if pp.Pre != pp.Post {
				contributesNonAxiom[pp.Var] = true
			}
		}
	}
	for v, d := range tbl.byVar {
		d.IsAxiomOnly = !contributesNonAxiom[v]
	}
	return tbl
}

func buildOne(tk *task.Task, v, domainSize int) *DTG {
	d := &DTG{Variable: v, DomainSize: domainSize, nodes: make([][]Transition, domainSize)}
	// byFromTo indexes into d.nodes[from] rather than caching a *Transition:
	// a later append to d.nodes[from] (for a different "to" on the same
	// source value) can reallocate that slice's backing array, which would
	// strand a cached pointer on the old array and silently drop any label
	// added through it afterward.
	byFromTo := map[[2]int]int{}
	transitionIndex := func(from, to int) int {
		key := [2]int{from, to}
		if idx, ok := byFromTo[key]; ok {
			return idx
		}
		d.nodes[from] = append(d.nodes[from], Transition{To: to})
		idx := len(d.nodes[from]) - 1
		byFromTo[key] = idx
		return idx
	}

	addLabel := func(from, to, opID int, prevail []task.Fact) {
		idx := transitionIndex(from, to)
		prevail = dedupeFacts(prevail)
		globals := make([]int, len(prevail))
		for i, f := range prevail {
			globals[i] = f.Var
		}
		label := Label{OperatorID: opID, Prevail: prevail, LocalToGlobal: globals}
		d.nodes[from][idx].Labels = append(d.nodes[from][idx].Labels, label)
	}

	consider := func(op task.Operator) {
		for _, pp := range op.PrePosts {
			if pp.Var != v || pp.Pre == pp.Post {
				continue
			}
			prevail := append([]task.Fact(nil), op.Prevail...)
			for _, other := range op.PrePosts {
				if other.Var == v {
					continue
				}
				if other.Pre != task.Any {
					prevail = append(prevail, task.Fact{Var: other.Var, Val: other.Pre})
				}
			}
			prevail = append(prevail, pp.EffectCond...)

			if pp.Pre == task.Any {
				for from := 0; from < domainSize; from++ {
					if from == pp.Post {
						continue
					}
					addLabel(from, pp.Post, op.ID, prevail)
				}
			} else {
				addLabel(pp.Pre, pp.Post, op.ID, prevail)
			}
		}
	}
	for _, op := range tk.Operators {
		consider(op)
	}
	for _, ax := range tk.Axioms {
		consider(ax)
	}
	return d
}

func dedupeFacts(facts []task.Fact) []task.Fact {
	seen := map[task.Fact]bool{}
	out := make([]task.Fact, 0, len(facts))
	for _, f := range facts {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}
