// SPDX-License-Identifier: MIT
package cgheuristic

import (
	"sort"

	"github.com/arbecker/fdplan/cache"
	"github.com/arbecker/fdplan/dtg"
	"github.com/arbecker/fdplan/task"
)

// CGHeuristic implements the causal-graph heuristic (spec.md C6) against
// the heuristic.Heuristic contract.
type CGHeuristic struct {
	tk    *task.Task
	dtgs  *dtg.Table
	cache *cache.Table

	generation  int
	dtgLastSeen []int

	value     int
	deadEnd   bool
	preferred []int
}

// New builds a CGHeuristic for tk using the precomputed DTGs and transition
// cache. dtgs and cacheTbl are shared read-only with any other CGHeuristic
// over the same task.
func New(tk *task.Task, dtgs *dtg.Table, cacheTbl *cache.Table) *CGHeuristic {
	h := &CGHeuristic{tk: tk, dtgs: dtgs, cache: cacheTbl}
	h.dtgLastSeen = make([]int, tk.NumVariables())
	for i := range h.dtgLastSeen {
		h.dtgLastSeen[i] = -1
	}
	return h
}

// Name identifies this heuristic for CLI selection.
func (h *CGHeuristic) Name() string { return "cg" }

// ReachState is a no-op: the CG heuristic is purely functional of the state
// passed to Evaluate.
func (h *CGHeuristic) ReachState(parent, succ task.State, op task.Operator) {}

// DeadEndReliable is always false: spec.md §4.5's correctness note.
func (h *CGHeuristic) DeadEndReliable() bool { return false }

// Value returns the most recent estimate.
func (h *CGHeuristic) Value() int { return h.value }

// IsDeadEnd reports whether the most recent Evaluate exceeded
// task.QuiteALot.
func (h *CGHeuristic) IsDeadEnd() bool { return h.deadEnd }

// PreferredOperators returns the operators extracted by the most recent
// Evaluate call's helpful-action walk.
func (h *CGHeuristic) PreferredOperators() []int { return h.preferred }

// Evaluate computes h_cg(s): the sum, over goal facts in goal order, of the
// cost to move that variable from its current value to the goal value
// (spec.md §4.5), then extracts helpful actions from the recorded
// helpful-transition pointers.
func (h *CGHeuristic) Evaluate(s task.State) {
	h.generation++
	sum := 0
	type pending struct{ v, from, to int }
	var goals []pending
	for _, f := range h.tk.Goal {
		cost, _ := h.transition(f.Var, s[f.Var], f.Val, s, map[int]bool{})
		if cost >= task.QuiteALot || sum+cost >= task.QuiteALot {
			h.value = task.QuiteALot
			h.deadEnd = true
			h.preferred = nil
			return
		}
		sum += cost
		if s[f.Var] != f.Val {
			goals = append(goals, pending{f.Var, s[f.Var], f.Val})
		}
	}
	h.value = sum
	h.deadEnd = false

	prefSet := map[int]bool{}
	for _, g := range goals {
		h.extractHelpful(g.v, g.from, g.to, s, prefSet)
	}
	prefs := make([]int, 0, len(prefSet))
	for op := range prefSet {
		prefs = append(prefs, op)
	}
	sort.Ints(prefs)
	h.preferred = prefs
}

// transition returns the cost (and helpful label, if any) of moving
// variable v from value a to value b given context state s, consulting the
// cache first. stack guards against recursive-cost cycles across variables
// (spec.md §4.5's recursion into prevail conditions is not proven to
// terminate in general; a variable already on the current call stack
// contributes 0, matching this heuristic's documented non-admissibility).
func (h *CGHeuristic) transition(v, a, b int, s task.State, stack map[int]bool) (int, *dtg.Label) {
	if a == b {
		return 0, nil
	}
	vc := h.cache.Get(v)
	if e, ok := vc.Lookup(a, b, s); ok {
		if e.Cost == cache.NotComputed {
			return task.QuiteALot, nil
		}
		return e.Cost, e.Helpful
	}
	if stack[v] {
		return 0, nil
	}
	stack[v] = true
	dist, helpful := h.runDijkstra(v, a, s, stack)
	delete(stack, v)

	for to, d := range dist {
		if d < task.QuiteALot {
			vc.Store(a, to, s, d, helpful[to])
		} else {
			vc.Store(a, to, s, cache.NotComputed, nil)
		}
	}
	if dist[b] >= task.QuiteALot {
		return task.QuiteALot, nil
	}
	return dist[b], helpful[b]
}

// runDijkstra computes, for every value w of variable v, the cost of
// reaching w from a under context s, and the helpful transition label for
// w (spec.md §4.5).
func (h *CGHeuristic) runDijkstra(v, a int, s task.State, stack map[int]bool) ([]int, []*dtg.Label) {
	d := h.dtgs.Get(v)
	n := d.DomainSize

	dist := make([]int, n)
	helpful := make([]*dtg.Label, n)
	childrenState := make([]task.State, n)
	visited := make([]bool, n)
	for i := range dist {
		dist[i] = task.QuiteALot
	}
	dist[a] = 0
	childrenState[a] = s.Clone()

	pq := newBucketQueue()
	pq.push(0, a)

	for {
		dcur, u, ok := pq.pop()
		if !ok {
			break
		}
		if visited[u] || dcur != dist[u] {
			continue
		}
		visited[u] = true

		for _, tr := range d.Transitions(u) {
			w := tr.To
			for _, lbl := range tr.Labels {
				extra := 0
				unreachable := false
				for _, pf := range lbl.Prevail {
					c, _ := h.transition(pf.Var, childrenState[u][pf.Var], pf.Val, s, stack)
					if c >= task.QuiteALot {
						unreachable = true
						break
					}
					extra += c
				}
				if unreachable {
					continue
				}
				cand := bumpAxiomDistance(dcur + d.EdgeCost() + extra)
				if cand < dist[w] {
					dist[w] = cand
					if u == a {
						l := lbl
						helpful[w] = &l
					} else {
						helpful[w] = helpful[u]
					}
					cs := childrenState[u].Clone()
					for _, pf := range lbl.Prevail {
						cs[pf.Var] = pf.Val
					}
					childrenState[w] = cs
					pq.push(cand, w)
				}
			}
		}
	}
	return dist, helpful
}

// bumpAxiomDistance implements the spec.md §4.5 "HACK for axioms": a
// degenerate zero-cost relaxation step is bumped to 1 so an axiom-only
// cycle back to the same value cannot relax neighboring nodes to a
// spurious zero distance. spec.md §9 flags this as "not obviously correct
// in all axiom shapes"; it is preserved as specified rather than silently
// redesigned.
func bumpAxiomDistance(d int) int {
	if d == 0 {
		return 1
	}
	return d
}

// extractHelpful walks the helpful-transition pointer recorded for moving v
// from "from" to "to", contributing its operator to prefSet if its prevail
// conditions already hold in s, or recursing into the unsatisfied prevail
// facts otherwise. Each variable's DTG is visited at most once per Evaluate
// call (spec.md §4.5: "to avoid exponential re-exploration").
func (h *CGHeuristic) extractHelpful(v, from, to int, s task.State, prefSet map[int]bool) {
	if from == to {
		return
	}
	if h.dtgLastSeen[v] == h.generation {
		return
	}
	h.dtgLastSeen[v] = h.generation

	_, lbl := h.transition(v, from, to, s, map[int]bool{})
	if lbl == nil {
		return
	}
	if labelPrevailSatisfied(lbl, s) {
		prefSet[lbl.OperatorID] = true
		return
	}
	for _, pf := range lbl.Prevail {
		if s[pf.Var] != pf.Val {
			h.extractHelpful(pf.Var, s[pf.Var], pf.Val, s, prefSet)
		}
	}
}

func labelPrevailSatisfied(lbl *dtg.Label, s task.State) bool {
	for _, pf := range lbl.Prevail {
		if s[pf.Var] != pf.Val {
			return false
		}
	}
	return true
}
