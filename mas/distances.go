// SPDX-License-Identifier: MIT
package mas

import "github.com/arbecker/fdplan/task"

// computeDistances fills a.InitDistance and a.GoalDistance by BFS over
// unit-cost edges (spec.md §4.7 step 1 and step 3e): forward from the
// abstract initial state, and backward from every locally-goal state.
func computeDistances(a *Abstraction) {
	a.InitDistance = bfsForward(a, a.InitState)
	a.GoalDistance = bfsBackward(a)
}

func bfsForward(a *Abstraction, from int) []int {
	dist := make([]int, a.NumStates)
	for i := range dist {
		dist[i] = task.QuiteALot
	}
	if from < 0 || from >= a.NumStates {
		return dist
	}
	dist[from] = 0
	queue := []int{from}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, trs := range a.ByOp {
			for _, tr := range trs {
				if tr.From == u && dist[tr.To] == task.QuiteALot {
					dist[tr.To] = dist[u] + 1
					queue = append(queue, tr.To)
				}
			}
		}
	}
	return dist
}

func bfsBackward(a *Abstraction) []int {
	dist := make([]int, a.NumStates)
	queue := make([]int, 0, a.NumStates)
	for i := range dist {
		dist[i] = task.QuiteALot
		if a.GoalMask[i] {
			dist[i] = 0
			queue = append(queue, i)
		}
	}
	reverse := make(map[int][]int, a.NumStates)
	for _, trs := range a.ByOp {
		for _, tr := range trs {
			reverse[tr.To] = append(reverse[tr.To], tr.From)
		}
	}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, p := range reverse[u] {
			if dist[p] == task.QuiteALot {
				dist[p] = dist[u] + 1
				queue = append(queue, p)
			}
		}
	}
	return dist
}
