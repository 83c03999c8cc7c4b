// SPDX-License-Identifier: MIT
package task

// CausalGraph is the directed graph over variables (spec.md GLOSSARY: "u→v
// iff some operator has u in a precondition and v in an effect"), computed
// once from a Task and shared read-only by the CG heuristic's transition
// cache (ancestor sets) and the merge-and-shrink "linear CG / goal level"
// merge strategy.
//
// Construction here is deliberately narrow (spec.md §1 lists causal-graph
// construction as an external collaborator referenced through an abstract
// contract): it is the plain precedes-in-some-operator relation, with no
// pruning beyond the "reduced" restriction to lower-index ancestors
// spec.md §4.5 requires for the transition cache (see ReducedAncestors).
type CausalGraph struct {
	numVars      int
	predecessors [][]int // predecessors[v] = variables u with an edge u->v
	successors   [][]int // successors[v] = variables v affects
}

// BuildCausalGraph computes the causal graph of t: an edge u->v (u != v)
// exists iff some operator (including axioms) has v as an effect (pre-post)
// variable and u as a prevail, pre-value, effect-condition or other effect
// variable.
func BuildCausalGraph(t *Task) *CausalGraph {
	n := t.NumVariables()
	succSet := make([]map[int]bool, n)
	predSet := make([]map[int]bool, n)
	for i := range succSet {
		succSet[i] = map[int]bool{}
		predSet[i] = map[int]bool{}
	}
	addEdge := func(u, v int) {
		if u == v {
			return
		}
		succSet[u][v] = true
		predSet[v][u] = true
	}
	consider := func(op Operator) {
		var effectVars []int
		for _, pp := range op.PrePosts {
			effectVars = append(effectVars, pp.Var)
		}
		var preVars []int
		for _, f := range op.Prevail {
			preVars = append(preVars, f.Var)
		}
		for _, pp := range op.PrePosts {
			if pp.Pre != Any {
				preVars = append(preVars, pp.Var)
			}
			for _, f := range pp.EffectCond {
				preVars = append(preVars, f.Var)
			}
		}
		for _, u := range preVars {
			for _, v := range effectVars {
				addEdge(u, v)
			}
		}
		// Co-occurring effects on different variables in the same operator
		// also induce an edge: changing one can be causally relevant to
		// achieving another within the same action.
		for _, u := range effectVars {
			for _, v := range effectVars {
				addEdge(u, v)
			}
		}
	}
	for _, op := range t.Operators {
		consider(op)
	}
	for _, ax := range t.Axioms {
		consider(ax)
	}

	cg := &CausalGraph{numVars: n, predecessors: make([][]int, n), successors: make([][]int, n)}
	for v := 0; v < n; v++ {
		cg.predecessors[v] = sortedKeys(predSet[v])
		cg.successors[v] = sortedKeys(succSet[v])
	}
	return cg
}

func sortedKeys(m map[int]bool) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	// Simple insertion sort: causal graphs are small (one entry per
	// variable, bounded by NumVariables), so an O(n^2) sort avoids pulling
	// in sort for a handful of ints per call site.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// Predecessors returns the variables that some operator reads as a
// condition, or changes alongside v, in an operator affecting v (v is not
// included).
func (cg *CausalGraph) Predecessors(v int) []int { return cg.predecessors[v] }

// Successors returns the variables v affects (v is not included).
func (cg *CausalGraph) Successors(v int) []int { return cg.successors[v] }

// ReducedAncestors returns the set of variables reachable by following
// Predecessors edges from v, restricted to variables with strictly lower
// index than v ("edges to variables with lower index dropped", spec.md
// §4.5's "reduced causal graph"), including v itself. The result is sorted
// ascending.
func (cg *CausalGraph) ReducedAncestors(v int) []int {
	visited := map[int]bool{v: true}
	queue := []int{v}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, p := range cg.predecessors[cur] {
			if p < v && !visited[p] {
				visited[p] = true
				queue = append(queue, p)
			}
		}
	}
	return sortedKeys(visited)
}
