// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/arbecker/fdplan/heuristic"
	"github.com/arbecker/fdplan/search"
	"github.com/arbecker/fdplan/task"
)

// runEngine resolves --search into the matching weight/reopen setup (spec.md
// §4.4: greedy is WG=0,WH=1; astar forces WG=1,WH=1,ReopenClosed; weighted-
// astar is WG=1,WH=weight) or builds an EHC engine (spec.md §4.8), then runs
// it to completion.
func runEngine(tk *task.Task, opts *options, heuristics []heuristic.Heuristic, preferred []heuristic.Heuristic, log *logrus.Logger) (search.Result, error) {
	switch opts.searchName {
	case "greedy":
		eng, err := search.NewEager(tk, search.EagerConfig{
			WG: 0, WH: 1,
			ReopenClosed: opts.reopenClosed,
			Heuristics:   heuristics,
			Preferred:    preferred,
			Logger:       log,
		})
		if err != nil {
			return search.Result{}, err
		}
		return eng.Search(), nil

	case "astar":
		eng, err := search.NewEager(tk, search.EagerConfig{
			WG: 1, WH: 1,
			ReopenClosed: true,
			Heuristics:   heuristics,
			Preferred:    preferred,
			Logger:       log,
		})
		if err != nil {
			return search.Result{}, err
		}
		return eng.Search(), nil

	case "weighted-astar":
		eng, err := search.NewEager(tk, search.EagerConfig{
			WG: 1, WH: opts.weight,
			ReopenClosed: opts.reopenClosed,
			Heuristics:   heuristics,
			Preferred:    preferred,
			Logger:       log,
		})
		if err != nil {
			return search.Result{}, err
		}
		return eng.Search(), nil

	case "ehc":
		if len(heuristics) != 1 {
			return search.Result{}, fmt.Errorf("fdplan: ehc requires exactly one --heuristic (the rest must be --preferred-only)")
		}
		eng := search.NewEHC(tk, search.EHCConfig{
			Primary:            heuristics[0],
			Preferred:          preferred,
			PruneByPreferred:   opts.pruneByPreferred,
			RankPreferredFirst: opts.rankPreferredFirst,
			Logger:             log,
		})
		return eng.Search(), nil

	default:
		return search.Result{}, fmt.Errorf("%w: %q", ErrUnsupportedEngine, opts.searchName)
	}
}

// logResult prints the plan and statistics spec.md §6 "Output" names: one
// operator name per line, in application order.
func logResult(log *logrus.Logger, tk *task.Task, res search.Result) {
	fields := logrus.Fields{
		"expanded":  res.Stats.Expanded,
		"generated": res.Stats.Generated,
		"evaluated": res.Stats.Evaluated,
		"reopened":  res.Stats.Reopened,
		"dead_ends": res.Stats.DeadEnds,
	}
	if !res.Solved {
		log.WithFields(fields).Error("fdplan: no plan found")
		return
	}
	log.WithFields(fields).WithField("cost", res.Cost).Info("fdplan: plan found")
	for _, opID := range res.Plan {
		fmt.Println(tk.Operators[opID].Name)
	}
}
