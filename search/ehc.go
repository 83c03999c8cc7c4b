// SPDX-License-Identifier: MIT
package search

import (
	"github.com/sirupsen/logrus"

	"github.com/arbecker/fdplan/heuristic"
	"github.com/arbecker/fdplan/searchspace"
	"github.com/arbecker/fdplan/succgen"
	"github.com/arbecker/fdplan/task"
)

// EHCConfig parameterizes enforced hill climbing (spec.md §4.8). Exactly
// one heuristic is the primary h; additional heuristics may only
// contribute preferred operators.
type EHCConfig struct {
	Primary   heuristic.Heuristic
	Preferred []heuristic.Heuristic

	// PruneByPreferred excludes non-preferred operators from each BFS
	// expansion entirely.
	PruneByPreferred bool
	// RankPreferredFirst enqueues preferred operators' successors ahead of
	// non-preferred ones within a single expansion.
	RankPreferredFirst bool

	Logger *logrus.Logger
}

// EHC is the enforced-hill-climbing engine (spec.md §4.8).
type EHC struct {
	tk     *task.Task
	gen    *succgen.Generator
	packer *searchspace.Packer
	cfg    EHCConfig
	log    *logrus.Logger
}

// NewEHC builds an EHC engine over tk.
func NewEHC(tk *task.Task, cfg EHCConfig) *EHC {
	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &EHC{tk: tk, gen: succgen.Build(tk), packer: searchspace.NewPacker(tk), cfg: cfg, log: log}
}

type ehcFrontierEntry struct {
	state task.State
}

func (e *EHC) preferredAt(s task.State) map[int]bool {
	out := map[int]bool{}
	for _, h := range e.cfg.Preferred {
		h.Evaluate(s)
		for _, id := range h.PreferredOperators() {
			out[id] = true
		}
	}
	return out
}

// rankedApplicable returns op ids applicable in s, ordered (and optionally
// filtered) per spec.md §4.8's prune_by_preferred / rank_preferred_first
// flags.
func (e *EHC) rankedApplicable(s task.State) []int {
	all := e.gen.Applicable(s)
	if !e.cfg.PruneByPreferred && !e.cfg.RankPreferredFirst {
		return all
	}
	preferred := e.preferredAt(s)
	var front, back []int
	for _, id := range all {
		if preferred[id] {
			front = append(front, id)
		} else if !e.cfg.PruneByPreferred {
			back = append(back, id)
		}
	}
	return append(front, back...)
}

// Search runs the enforced-hill-climbing loop (spec.md §4.8) to
// completion.
func (e *EHC) Search() Result {
	var stats Statistics
	current := e.tk.Initial
	e.cfg.Primary.Evaluate(current)
	stats.Evaluated++
	currentH := e.cfg.Primary.Value()
	if e.cfg.Primary.IsDeadEnd() && e.cfg.Primary.DeadEndReliable() {
		stats.DeadEnds++
		e.log.WithFields(logrus.Fields{"reason": "initial state"}).Info("search: reliable dead end")
		return Result{Solved: false, Stats: stats}
	}

	var plan []int

	for {
		if e.tk.GoalSatisfied(current) {
			return Result{Solved: true, Plan: plan, Cost: len(plan), Stats: stats}
		}

		queue := []ehcFrontierEntry{{state: current}}
		visited := map[string]bool{}
		parent := map[string]task.State{}
		parentOp := map[string]int{}
		packKey := e.packer.Pack
		visited[packKey(current)] = true

		found := false
		var foundState task.State

		for len(queue) > 0 && !found {
			head := queue[0]
			queue = queue[1:]
			stats.Expanded++

			for _, opID := range e.rankedApplicable(head.state) {
				op := e.tk.Operators[opID]
				succState := e.tk.ApplyAndFixpoint(op, head.state)
				key := packKey(succState)
				if visited[key] {
					continue
				}
				visited[key] = true
				parent[key] = head.state
				parentOp[key] = op.ID
				stats.Generated++

				e.cfg.Primary.Evaluate(succState)
				stats.Evaluated++
				if e.cfg.Primary.IsDeadEnd() && e.cfg.Primary.DeadEndReliable() {
					stats.DeadEnds++
					continue
				}
				h := e.cfg.Primary.Value()
				if h < currentH {
					found = true
					foundState = succState
					currentH = h
					break
				}
				queue = append(queue, ehcFrontierEntry{state: succState})
			}
		}

		if !found {
			return Result{Solved: false, Stats: stats}
		}

		var segment []int
		cur := foundState
		curKey := packKey(cur)
		for curKey != packKey(current) {
			segment = append(segment, parentOp[curKey])
			cur = parent[curKey]
			curKey = packKey(cur)
		}
		for i, j := 0, len(segment)-1; i < j; i, j = i+1, j-1 {
			segment[i], segment[j] = segment[j], segment[i]
		}
		plan = append(plan, segment...)
		current = foundState
	}
}
