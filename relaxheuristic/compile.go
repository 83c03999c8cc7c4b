// SPDX-License-Identifier: MIT
package relaxheuristic

import "github.com/arbecker/fdplan/task"

// dominanceThreshold bounds the precondition-set size that still gets the
// full pairwise dominance simplification pass (spec.md §4.6: "operators
// with more than a small precondition-count threshold are processed
// conservatively"). Above it, only exact duplicates are removed.
const dominanceThreshold = 8

// unaryOperator is one unary operator of the delete-relaxation (spec.md §3
// GLOSSARY "relaxation proposition"): a precondition fact set, a single
// effect fact, the originating operator (for preferred-operator tagging),
// and a base cost.
type unaryOperator struct {
	Preconditions []int // flat proposition ids, sorted ascending, deduplicated
	Effect        int   // flat proposition id
	Op            task.Operator
	BaseCost      int
}

// propOffset maps (variable, value) to a flat proposition id shared by
// every per-state array this package allocates.
type propOffset struct {
	offset []int // offset[v] is the first flat id for variable v
	total  int
}

func buildPropOffset(tk *task.Task) propOffset {
	off := make([]int, tk.NumVariables())
	total := 0
	for v, variable := range tk.Variables {
		off[v] = total
		total += variable.DomainSize
	}
	return propOffset{offset: off, total: total}
}

func (p propOffset) id(v, val int) int { return p.offset[v] + val }

// compile builds the unary-operator pool and precondition cross-reference
// for tk (spec.md §4.6's one-time initialization).
func compile(tk *task.Task) (propOffset, []unaryOperator, [][]int) {
	props := buildPropOffset(tk)
	var unaries []unaryOperator

	considerOp := func(op task.Operator) {
		for _, pp := range op.PrePosts {
			var pre []task.Fact
			pre = append(pre, op.Prevail...)
			for _, other := range op.PrePosts {
				if other.Var == pp.Var {
					continue
				}
				if other.Pre != task.Any {
					pre = append(pre, task.Fact{Var: other.Var, Val: other.Pre})
				}
			}
			pre = append(pre, pp.EffectCond...)

			// This pre-post's own pre-value, whether Any or specific, is not
			// added to the precondition set: only prevails and other
			// pre-posts' pre-facts are (spec.md §4.6), so a single unary
			// operator per pre-post entry already covers every source value.
			baseCost := task.OperatorCost(op)
			unaries = append(unaries, newUnary(props, pre, pp.Var, pp.Post, op, baseCost))
		}
	}
	for _, op := range tk.Operators {
		considerOp(op)
	}
	for _, ax := range tk.Axioms {
		considerOp(ax)
	}

	unaries = simplify(unaries)

	byPrecondition := make([][]int, props.total)
	for idx, u := range unaries {
		for _, p := range u.Preconditions {
			byPrecondition[p] = append(byPrecondition[p], idx)
		}
	}
	return props, unaries, byPrecondition
}

func newUnary(props propOffset, pre []task.Fact, effectVar, effectVal int, op task.Operator, baseCost int) unaryOperator {
	ids := make([]int, 0, len(pre))
	seen := map[int]bool{}
	for _, f := range pre {
		id := props.id(f.Var, f.Val)
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	sortInts(ids)
	return unaryOperator{Preconditions: ids, Effect: props.id(effectVar, effectVal), Op: op, BaseCost: baseCost}
}

func sortInts(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}

// simplify discards dominated unary operators (spec.md §4.6): o1 dominates
// o2 if they share an effect, o1's preconditions are a subset of o2's, and
// o1's base cost is no higher, with a stable-index tie-break so two
// mutually-dominating (identical) operators don't both get removed.
func simplify(unaries []unaryOperator) []unaryOperator {
	byEffect := map[int][]int{}
	for idx, u := range unaries {
		byEffect[u.Effect] = append(byEffect[u.Effect], idx)
	}

	dominated := make([]bool, len(unaries))
	for _, group := range byEffect {
		removeExactDuplicates(unaries, group, dominated)
		for _, i := range group {
			if dominated[i] || len(unaries[i].Preconditions) > dominanceThreshold {
				continue
			}
			for _, j := range group {
				if i == j || dominated[j] || len(unaries[j].Preconditions) > dominanceThreshold {
					continue
				}
				if dominatesOther(unaries[i], unaries[j], i, j) {
					dominated[j] = true
				}
			}
		}
	}

	out := make([]unaryOperator, 0, len(unaries))
	for idx, u := range unaries {
		if !dominated[idx] {
			out = append(out, u)
		}
	}
	return out
}

func dominatesOther(a, b unaryOperator, ia, ib int) bool {
	if a.BaseCost > b.BaseCost {
		return false
	}
	if !isSubset(a.Preconditions, b.Preconditions) {
		return false
	}
	if a.BaseCost < b.BaseCost || len(a.Preconditions) < len(b.Preconditions) {
		return true
	}
	// Exact duplicates (same cost, same precondition set): tie-break by
	// index so only the higher-indexed one is dropped.
	return ia < ib
}

func isSubset(a, b []int) bool {
	bSet := map[int]bool{}
	for _, x := range b {
		bSet[x] = true
	}
	for _, x := range a {
		if !bSet[x] {
			return false
		}
	}
	return true
}

func removeExactDuplicates(unaries []unaryOperator, group []int, dominated []bool) {
	seen := map[string]bool{}
	for _, idx := range group {
		key := duplicateKey(unaries[idx])
		if seen[key] {
			dominated[idx] = true
			continue
		}
		seen[key] = true
	}
}

func duplicateKey(u unaryOperator) string {
	buf := make([]byte, 0, 4+4*len(u.Preconditions))
	buf = appendInt(buf, u.BaseCost)
	for _, p := range u.Preconditions {
		buf = appendInt(buf, p)
	}
	return string(buf)
}

func appendInt(buf []byte, v int) []byte {
	return append(buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}
