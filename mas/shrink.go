// SPDX-License-Identifier: MIT
package mas

import "github.com/arbecker/fdplan/task"

// Strategy groups an abstraction's states into at most targetSize disjoint
// groups (spec.md §4.7 step 3b). Each returned group is a non-empty list of
// abstract-state ids; every state id in 0..a.NumStates-1 appears in exactly
// one group.
type Strategy interface {
	Groups(a *Abstraction, targetSize int) [][]int
}

// FPreserving buckets states by (f, h) where f = init-distance + goal-
// distance and h = goal-distance, then merges buckets (in high-f/low-h
// priority order, the default spec.md §4.7 names) until at most targetSize
// groups remain (spec.md §4.7 step 3b, "F-preserving bucketization").
type FPreserving struct{}

func (FPreserving) Groups(a *Abstraction, targetSize int) [][]int {
	type key struct{ f, h int }
	buckets := map[key][]int{}
	var order []key
	for s := 0; s < a.NumStates; s++ {
		g, h := a.InitDistance[s], a.GoalDistance[s]
		if g >= task.QuiteALot {
			g = task.QuiteALot
		}
		if h >= task.QuiteALot {
			h = task.QuiteALot
		}
		k := key{f: addSaturating(g, h), h: h}
		if _, ok := buckets[k]; !ok {
			order = append(order, k)
		}
		buckets[k] = append(buckets[k], s)
	}
	// High-f, low-h first.
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && fPreservingLess(order[j], order[j-1]); j-- {
			order[j-1], order[j] = order[j], order[j-1]
		}
	}

	groups := make([][]int, 0, len(order))
	for _, k := range order {
		groups = append(groups, buckets[k])
	}
	return mergeGroupsTo(groups, targetSize)
}

func fPreservingLess(a, b key2) bool {
	if a.f != b.f {
		return a.f > b.f
	}
	return a.h < b.h
}

type key2 = struct{ f, h int }

func addSaturating(a, b int) int {
	if a >= task.QuiteALot || b >= task.QuiteALot {
		return task.QuiteALot
	}
	return a + b
}

// DFP assigns an initial grouping by h, then iteratively merges states
// within a group that currently have an identical "signature" — (h, group,
// sorted unique (operator, target-group) outgoing transitions) — a
// simplified pass over spec.md §4.7 step 3b's DFP-style refinement: the
// spec's full bisimulation-style iteration is approximated here by a bounded
// number of refinement rounds rather than iterating to a fixed point, which
// keeps the shrink step's cost predictable for large abstractions.
type DFP struct{ Rounds int }

const defaultDFPRounds = 3

func (d DFP) Groups(a *Abstraction, targetSize int) [][]int {
	rounds := d.Rounds
	if rounds <= 0 {
		rounds = defaultDFPRounds
	}
	group := make([]int, a.NumStates)
	for s := range group {
		group[s] = a.GoalDistance[s]
	}
	renumberGroups(group)

	for round := 0; round < rounds && numGroups(group) > targetSize; round++ {
		byOpTarget := transitionsByStateOp(a, group)
		sig := make([]string, a.NumStates)
		for s := 0; s < a.NumStates; s++ {
			sig[s] = stateSignature(group[s], byOpTarget[s])
		}
		bySig := map[string][]int{}
		var order []string
		for s, k := range sig {
			if _, ok := bySig[k]; !ok {
				order = append(order, k)
			}
			bySig[k] = append(bySig[k], s)
		}
		next := make([]int, a.NumStates)
		for idx, k := range order {
			for _, s := range bySig[k] {
				next[s] = idx
			}
		}
		group = next
	}

	if numGroups(group) > targetSize {
		return mergeGroupsTo(groupsFromAssignment(group), targetSize)
	}
	return groupsFromAssignment(group)
}

func transitionsByStateOp(a *Abstraction, group []int) map[int][]string {
	out := make(map[int][]string, a.NumStates)
	for k, trs := range a.ByOp {
		for _, t := range trs {
			out[t.From] = append(out[t.From], opLabel(k)+":"+itoa(group[t.To]))
		}
	}
	return out
}

func opLabel(k opKey) string {
	if k.IsAxiom {
		return "a" + itoa(k.ID)
	}
	return "o" + itoa(k.ID)
}

func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

func stateSignature(h int, opLabels []string) string {
	sortStrings(opLabels)
	s := itoa(h) + "|"
	for i, l := range opLabels {
		if i > 0 && l == opLabels[i-1] {
			continue
		}
		s += l + ";"
	}
	return s
}

func sortStrings(xs []string) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}

func renumberGroups(group []int) {
	remap := map[int]int{}
	for i, g := range group {
		if _, ok := remap[g]; !ok {
			remap[g] = len(remap)
		}
		group[i] = remap[g]
	}
}

func numGroups(group []int) int {
	seen := map[int]bool{}
	for _, g := range group {
		seen[g] = true
	}
	return len(seen)
}

func groupsFromAssignment(group []int) [][]int {
	byGroup := map[int][]int{}
	var order []int
	for s, g := range group {
		if _, ok := byGroup[g]; !ok {
			order = append(order, g)
		}
		byGroup[g] = append(byGroup[g], s)
	}
	out := make([][]int, 0, len(order))
	for _, g := range order {
		out = append(out, byGroup[g])
	}
	return out
}

// mergeGroupsTo merges adjacent groups (in the given priority order) until
// at most targetSize groups remain (spec.md §4.7 step 3b: "repeatedly merge
// ... pairs of groups until exactly bucket_budget groups remain"). Merging
// is done deterministically in priority order rather than by random pair
// selection, for reproducible heuristic values across runs.
func mergeGroupsTo(groups [][]int, targetSize int) [][]int {
	if targetSize < 1 {
		targetSize = 1
	}
	for len(groups) > targetSize {
		last := groups[len(groups)-1]
		groups = groups[:len(groups)-1]
		groups[len(groups)-1] = append(append([]int(nil), groups[len(groups)-1]...), last...)
	}
	return groups
}
