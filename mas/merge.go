// SPDX-License-Identifier: MIT
package mas

import "github.com/arbecker/fdplan/task"

// mergeOrder produces the "linear CG / goal level" variable sequence
// (spec.md §4.7 step 2): goal variables first, then the non-goal variables
// that causally feed them (walked via the causal graph's predecessor
// edges), then any remaining variables in index order.
func mergeOrder(tk *task.Task, cg *task.CausalGraph) []int {
	seen := make([]bool, tk.NumVariables())
	var order []int
	add := func(v int) {
		if !seen[v] {
			seen[v] = true
			order = append(order, v)
		}
	}
	for _, g := range tk.Goal {
		add(g.Var)
	}
	visited := make([]bool, tk.NumVariables())
	var walk func(v int)
	walk = func(v int) {
		if visited[v] {
			return
		}
		visited[v] = true
		for _, p := range cg.Predecessors(v) {
			add(p)
			walk(p)
		}
	}
	for _, g := range tk.Goal {
		walk(g.Var)
	}
	for v := 0; v < tk.NumVariables(); v++ {
		add(v)
	}
	return order
}

// product computes the synchronized product of a and b (spec.md §4.7 step
// 3d): abstract states are pairs, and each operator's transitions are the
// cross product of its per-side transitions, restricted to operators
// relevant to at least one side. a and b's variable sets are always
// disjoint in this module's linear merge schedule (each atomic variable is
// merged in exactly once), so label normalization (spec.md §4.7 step 3c)
// always applies before the product is taken; see normalizeLabels.
func product(a, b *Abstraction) *Abstraction {
	na, nb := normalizeLabels(a, b), normalizeLabels(b, a)

	n := na.NumStates * nb.NumStates
	enc := func(s1, s2 int) int { return s1*nb.NumStates + s2 }

	byOp := map[opKey][]transition{}
	ops := map[opKey]bool{}
	for k := range na.ByOp {
		ops[k] = true
	}
	for k := range nb.ByOp {
		ops[k] = true
	}
	for k := range ops {
		ta, relA := na.ByOp[k]
		tb, relB := nb.ByOp[k]
		switch {
		case relA && relB:
			for _, x := range ta {
				for _, y := range tb {
					byOp[k] = append(byOp[k], transition{From: enc(x.From, y.From), To: enc(x.To, y.To)})
				}
			}
		case relA:
			for s2 := 0; s2 < nb.NumStates; s2++ {
				for _, x := range ta {
					byOp[k] = append(byOp[k], transition{From: enc(x.From, s2), To: enc(x.To, s2)})
				}
			}
		case relB:
			for s1 := 0; s1 < na.NumStates; s1++ {
				for _, y := range tb {
					byOp[k] = append(byOp[k], transition{From: enc(s1, y.From), To: enc(s1, y.To)})
				}
			}
		}
	}
	for k := range byOp {
		byOp[k] = dedupeTransitions(byOp[k])
	}

	goalMask := make([]bool, n)
	for s1 := 0; s1 < na.NumStates; s1++ {
		for s2 := 0; s2 < nb.NumStates; s2++ {
			goalMask[enc(s1, s2)] = na.GoalMask[s1] && nb.GoalMask[s2]
		}
	}

	varset := append(append([]int(nil), a.Varset...), b.Varset...)
	p := &Abstraction{
		Varset:    varset,
		NumStates: n,
		ByOp:      byOp,
		GoalMask:  goalMask,
		InitState: enc(na.InitState, nb.InitState),
		lookup: func(s task.State) int {
			return enc(na.lookup(s), nb.lookup(s))
		},
	}
	computeDistances(p)
	return p
}

func dedupeTransitions(trs []transition) []transition {
	seen := map[transition]bool{}
	out := make([]transition, 0, len(trs))
	for _, t := range trs {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}

// normalizeLabels replaces each operator's transition list with the
// representative list of its equivalence class: two operators are
// equivalent in a if they induce the exact same transition set (spec.md
// §4.7 step 3c, "an equivalence class computed over the set of relevant
// operators") in a and also the same transition set (or the same
// irrelevance) in other, the abstraction a is about to be multiplied with,
// so every dropped operator has exactly its representative's product
// transitions. The lowest-id operator in a class is kept as the
// representative and the others are dropped, reducing the number of
// distinct labels the following product must cross.
func normalizeLabels(a, other *Abstraction) *Abstraction {
	bySignature := map[string]opKey{}
	reduced := map[opKey][]transition{}
	for k, trs := range a.ByOp {
		sig := transitionSignature(trs) + "|-"
		if otherTrs, ok := other.ByOp[k]; ok {
			sig = transitionSignature(trs) + "|r" + transitionSignature(otherTrs)
		}
		rep, ok := bySignature[sig]
		if !ok || keyLess(k, rep) {
			bySignature[sig] = k
		}
	}
	for sig, rep := range bySignature {
		_ = sig
		trs := a.ByOp[rep]
		reduced[rep] = dedupeTransitions(trs)
	}
	return &Abstraction{
		Varset:       a.Varset,
		NumStates:    a.NumStates,
		ByOp:         reduced,
		GoalMask:     a.GoalMask,
		InitState:    a.InitState,
		InitDistance: a.InitDistance,
		GoalDistance: a.GoalDistance,
		lookup:       a.lookup,
	}
}

func keyLess(a, b opKey) bool {
	if a.IsAxiom != b.IsAxiom {
		return b.IsAxiom
	}
	return a.ID < b.ID
}

func transitionSignature(trs []transition) string {
	sorted := append([]transition(nil), trs...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && lessTransition(sorted[j], sorted[j-1]); j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}
	buf := make([]byte, 0, 8*len(sorted))
	for _, t := range sorted {
		buf = appendInt(buf, t.From)
		buf = appendInt(buf, t.To)
	}
	return string(buf)
}

func lessTransition(a, b transition) bool {
	if a.From != b.From {
		return a.From < b.From
	}
	return a.To < b.To
}

func appendInt(buf []byte, v int) []byte {
	return append(buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}
