// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/arbecker/fdplan/cache"
	"github.com/arbecker/fdplan/cgheuristic"
	"github.com/arbecker/fdplan/dtg"
	"github.com/arbecker/fdplan/heuristic"
	"github.com/arbecker/fdplan/mas"
	"github.com/arbecker/fdplan/relaxheuristic"
	"github.com/arbecker/fdplan/search"
	"github.com/arbecker/fdplan/task"
)

// engineDeps bundles the once-per-task auxiliary structures several
// heuristics need, so buildHeuristic does not reconstruct a DTG table or
// causal graph once per named heuristic.
type engineDeps struct {
	tk        *task.Task
	dtgs      *dtg.Table
	causal    *task.CausalGraph
	cacheTbl  *cache.Table
}

func newEngineDeps(tk *task.Task) *engineDeps {
	cg := task.BuildCausalGraph(tk)
	return &engineDeps{
		tk:       tk,
		dtgs:     dtg.Build(tk),
		causal:   cg,
		cacheTbl: cache.Build(tk, cg),
	}
}

// buildHeuristic resolves one of spec.md §6's named heuristics ("cg, ff,
// add, cea, goalcount, blind, mas, lmcut, ..."). Heuristics not grounded in
// this module (cea, lmcut — landmark-cut and context-enhanced additive are
// scoped out per spec.md §1) return ErrUnsupportedHeuristic, matching
// spec.md §7's "unsupported feature" diagnostic-and-abort rule.
func buildHeuristic(name string, d *engineDeps) (heuristic.Heuristic, error) {
	switch name {
	case "cg":
		return cgheuristic.New(d.tk, d.dtgs, d.cacheTbl), nil
	case "ff":
		return relaxheuristic.New(d.tk, relaxheuristic.WithMode(relaxheuristic.ModeFF)), nil
	case "add":
		return relaxheuristic.New(d.tk, relaxheuristic.WithMode(relaxheuristic.ModeAdd)), nil
	case "mas":
		if len(d.tk.Axioms) > 0 {
			return nil, fmt.Errorf("%w: mas", ErrAxiomsUnsupported)
		}
		return mas.New(d.tk), nil
	case "blind":
		return search.NewBlindHeuristic(d.tk), nil
	case "goalcount":
		return search.NewGoalCountHeuristic(d.tk), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedHeuristic, name)
	}
}
