// SPDX-License-Identifier: MIT
package search

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/arbecker/fdplan/evaluator"
	"github.com/arbecker/fdplan/heuristic"
	"github.com/arbecker/fdplan/openlist"
	"github.com/arbecker/fdplan/searchspace"
	"github.com/arbecker/fdplan/succgen"
	"github.com/arbecker/fdplan/task"
)

// ErrNoHeuristics indicates an eager engine was configured with zero
// heuristics; spec.md §4.4 requires "at least one".
var ErrNoHeuristics = errors.New("search: eager engine requires at least one heuristic")

// ErrTooManyHeuristicsForAStar indicates an A*-style configuration
// (ReopenClosed with WG==WH==1) was given more than one heuristic;
// spec.md §4.4: "in A* configuration exactly one is permitted".
var ErrTooManyHeuristicsForAStar = errors.New("search: A* configuration permits exactly one heuristic")

// EagerConfig parameterizes the eager best-first engine (spec.md §4.4).
// Greedy best-first is WG=0, WH=1; A* is WG=1, WH=1 with ReopenClosed
// true; weighted A* is WG=1, WH=w.
type EagerConfig struct {
	WG, WH       int
	ReopenClosed bool

	// Heuristics drive the root open list: one scalar bucket sub-list per
	// heuristic, alternated (spec.md §4.4: "typically an alternation of
	// one scalar-scalar list per heuristic").
	Heuristics []heuristic.Heuristic

	// Preferred names the subset of Heuristics whose preferred operators
	// get an additional preferred-only sub-list in the alternation.
	Preferred []heuristic.Heuristic

	// Logger receives progress events; defaults to logrus.StandardLogger().
	Logger *logrus.Logger
}

// Eager is the eager best-first search engine (spec.md §4.4).
type Eager struct {
	tk     *task.Task
	gen    *succgen.Generator
	space  *searchspace.Space
	cfg    EagerConfig
	log    *logrus.Logger
	root   openlist.OpenList
	fEvals []evaluator.Evaluator // one f = w_g*g + w_h*h per heuristic, driven before every Insert
	bestH  int
	lastF  int
	seenLF bool
}

// NewEager validates cfg and builds an Eager engine over tk.
func NewEager(tk *task.Task, cfg EagerConfig) (*Eager, error) {
	if len(cfg.Heuristics) == 0 {
		return nil, ErrNoHeuristics
	}
	if cfg.WG == 1 && cfg.WH == 1 && cfg.ReopenClosed && len(cfg.Heuristics) > 1 {
		return nil, ErrTooManyHeuristicsForAStar
	}
	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	var subs []openlist.OpenList
	var onlyPref []bool
	var fEvals []evaluator.Evaluator
	for _, h := range cfg.Heuristics {
		scalar := evaluator.NewScalarHeuristicEvaluator(h)
		g := evaluator.NewGEvaluator()
		f := evaluator.NewSumEvaluator(
			evaluator.NewWeightedEvaluator(g, cfg.WG),
			evaluator.NewWeightedEvaluator(scalar, cfg.WH),
		)
		fEvals = append(fEvals, f)
		subs = append(subs, openlist.NewScalarBucketOpenList(f, false))
		onlyPref = append(onlyPref, false)

		if isPreferredSource(h, cfg.Preferred) {
			// Reused, not re-evaluated: f already holds this heuristic's
			// current f-value, and a preferred-only sub-list needs no
			// separate evaluator instance since it keys on the same f.
			subs = append(subs, openlist.NewScalarBucketOpenList(f, true))
			onlyPref = append(onlyPref, true)
		}
	}

	return &Eager{
		tk:     tk,
		gen:    succgen.Build(tk),
		space:  searchspace.NewSpace(tk),
		cfg:    cfg,
		log:    log,
		root:   openlist.NewAlternationOpenList(subs, onlyPref),
		fEvals: fEvals,
		bestH:  task.QuiteALot,
	}, nil
}

// driveEvaluators calls Evaluate(g, preferred) on every per-heuristic f
// evaluator before an Insert, since openlist.OpenList.Insert (spec.md
// §4.3) assumes the keying evaluator(s) were already evaluated for this
// entry by the caller.
func (e *Eager) driveEvaluators(g int, preferred bool) {
	for _, f := range e.fEvals {
		f.Evaluate(g, preferred)
	}
}

func isPreferredSource(h heuristic.Heuristic, preferred []heuristic.Heuristic) bool {
	for _, p := range preferred {
		if p == h {
			return true
		}
	}
	return false
}

// evaluateAt runs ReachState (only when hasParent is true, which Search
// passes for a NEW successor and not for the initial state or an already
// reached one) then Evaluate on every
// configured heuristic for s, returning the representative h (the first
// heuristic's value, spec.md §4.4 step 6.d "the chosen representative h")
// and whether any reliable heuristic reported s a dead end.
func (e *Eager) evaluateAt(s task.State, parent task.State, op task.Operator, hasParent bool, stats *Statistics) (int, bool) {
	repH := 0
	deadEnd := false
	for i, h := range e.cfg.Heuristics {
		if hasParent {
			h.ReachState(parent, s, op)
		}
		h.Evaluate(s)
		stats.Evaluated++
		if i == 0 {
			repH = h.Value()
		}
		if h.IsDeadEnd() && h.DeadEndReliable() {
			deadEnd = true
		}
	}
	return repH, deadEnd
}

// preferredOperators recomputes, from the preferred-operator heuristics,
// the union of operator ids judged helpful at s.
func (e *Eager) preferredOperators(s task.State) map[int]bool {
	out := map[int]bool{}
	for _, h := range e.cfg.Preferred {
		h.Evaluate(s)
		for _, id := range h.PreferredOperators() {
			out[id] = true
		}
	}
	return out
}

// Search runs the eager best-first main loop (spec.md §4.4) to completion.
func (e *Eager) Search() Result {
	var stats Statistics

	initH, initDeadEnd := e.evaluateAt(e.tk.Initial, nil, task.Operator{}, false, &stats)
	initNode := e.space.GetNode(e.tk.Initial)
	if initDeadEnd {
		stats.DeadEnds++
		e.space.MarkDeadEnd(initNode)
		e.log.WithFields(logrus.Fields{"reason": "initial state"}).Info("search: reliable dead end")
		return Result{Solved: false, Stats: stats}
	}
	e.space.OpenInitial(initNode, initH)
	e.bestH = initH
	e.driveEvaluators(0, false)
	e.root.Insert(openlist.Entry{State: e.tk.Initial, PendingOp: -1, Preferred: false})

	for {
		if e.root.Empty() {
			e.log.WithFields(logrus.Fields{"expanded": stats.Expanded}).Info("search: open list exhausted, unsolvable")
			return Result{Solved: false, Stats: stats}
		}
		entry, err := e.root.RemoveMin()
		if err != nil {
			return Result{Solved: false, Stats: stats}
		}
		node := e.space.GetNode(entry.State)
		if node.Status == searchspace.StatusClosed {
			continue
		}
		e.space.Close(node)
		stats.Expanded++
		e.logProgress(node)

		if e.tk.GoalSatisfied(node.State) {
			ops, err := e.space.TracePath(node.State)
			if err != nil {
				return Result{Solved: false, Stats: stats}
			}
			return Result{Solved: true, Plan: ops, Cost: len(ops), Stats: stats}
		}

		preferred := e.preferredOperators(node.State)
		for _, opID := range e.gen.Applicable(node.State) {
			op := e.tk.Operators[opID]
			succState := e.tk.ApplyAndFixpoint(op, node.State)
			stats.Generated++
			succ := e.space.GetNode(succState)
			if succ.Status == searchspace.StatusDeadEnd {
				continue
			}

			// Every heuristic is re-evaluated on succState regardless of
			// status: the f evaluators wrap each heuristic's live Value(),
			// so an accurate Insert key requires the heuristic's cached
			// value to reflect succState, not whatever state it last saw
			// (spec.md §4.4 step 6.d only mandates this for NEW nodes, but
			// the evaluator layer's "read the last value" contract (§4.2)
			// needs it refreshed for OPEN/CLOSED reopen inserts too).
			h, deadEnd := e.evaluateAt(succState, node.State, op, succ.Status == searchspace.StatusNew, &stats)

			shouldInsert := false
			switch succ.Status {
			case searchspace.StatusNew:
				if deadEnd {
					stats.DeadEnds++
					e.space.MarkDeadEnd(succ)
					continue
				}
				e.space.Open(succ, node, op, h)
				shouldInsert = true
				if h < e.bestH {
					e.bestH = h
					e.log.WithFields(logrus.Fields{"best_h": h}).Info("search: new best h")
				}
			case searchspace.StatusOpen:
				newG := node.G + task.OperatorCost(op)
				if newG < succ.G {
					e.space.Reopen(succ, node, op)
					shouldInsert = true
				}
			case searchspace.StatusClosed:
				newG := node.G + task.OperatorCost(op)
				if newG < succ.G {
					if e.cfg.ReopenClosed {
						e.space.Reopen(succ, node, op)
						stats.Reopened++
						shouldInsert = true
					} else {
						e.space.UpdateParent(succ, node, op)
					}
				}
			}

			if shouldInsert {
				e.driveEvaluators(succ.G, preferred[op.ID])
				e.root.Insert(openlist.Entry{
					State:     succState,
					PendingOp: op.ID,
					Preferred: preferred[op.ID],
				})
			}
		}
	}
}

func (e *Eager) logProgress(node *searchspace.Node) {
	f := e.cfg.WG*node.G + e.cfg.WH*node.H
	if !e.seenLF || f > e.lastF {
		e.log.WithFields(logrus.Fields{"f": f, "g": node.G, "h": node.H}).Info("search: frontier f jumped")
		e.lastF = f
		e.seenLF = true
	}
}
