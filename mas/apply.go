// SPDX-License-Identifier: MIT
package mas

import "github.com/arbecker/fdplan/task"

// shrinkTo collapses a into at most targetSize abstract states using
// strategy, then recomputes init/goal distances (spec.md §4.7 step 3e).
// If a is already within targetSize, it is returned unchanged.
func shrinkTo(a *Abstraction, targetSize int, strategy Strategy) *Abstraction {
	if a.NumStates <= targetSize {
		return a
	}
	groups := strategy.Groups(a, targetSize)
	stateGroup := make([]int, a.NumStates)
	for gi, g := range groups {
		for _, s := range g {
			stateGroup[s] = gi
		}
	}

	n := len(groups)
	byOp := map[opKey][]transition{}
	for k, trs := range a.ByOp {
		for _, t := range trs {
			byOp[k] = append(byOp[k], transition{From: stateGroup[t.From], To: stateGroup[t.To]})
		}
	}
	for k := range byOp {
		byOp[k] = dedupeTransitions(byOp[k])
	}

	goalMask := make([]bool, n)
	for s, g := range stateGroup {
		if a.GoalMask[s] {
			goalMask[g] = true
		}
	}

	oldLookup := a.lookup
	shrunk := &Abstraction{
		Varset:    a.Varset,
		NumStates: n,
		ByOp:      byOp,
		GoalMask:  goalMask,
		InitState: stateGroup[a.InitState],
		lookup: func(s task.State) int {
			return stateGroup[oldLookup(s)]
		},
	}
	computeDistances(shrunk)
	return shrunk
}
