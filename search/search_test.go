// SPDX-License-Identifier: MIT
package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbecker/fdplan/heuristic"
	"github.com/arbecker/fdplan/search"
	"github.com/arbecker/fdplan/task"
)

// buildChainTask builds a two-operator, two-variable chain task: set-v1
// then set-v0 (with a prevail dependency on v1) reaches the goal v0=1.
// The unique optimal plan has cost 2.
func buildChainTask(t *testing.T) *task.Task {
	t.Helper()
	vars := []task.Variable{
		{Name: "v0", DomainSize: 2},
		{Name: "v1", DomainSize: 2},
	}
	initial := task.State{0, 0}
	goal := []task.Fact{{Var: 0, Val: 1}}
	setV1 := task.Operator{
		ID:       0,
		Name:     "set-v1",
		PrePosts: []task.PrePost{{Var: 1, Pre: task.Any, Post: 1}},
		Cost:     1,
	}
	setV0 := task.Operator{
		ID:       1,
		Name:     "set-v0",
		Prevail:  []task.Fact{{Var: 1, Val: 1}},
		PrePosts: []task.PrePost{{Var: 0, Pre: task.Any, Post: 1}},
		Cost:     1,
	}
	tk, err := task.New(vars, initial, goal, []task.Operator{setV1, setV0}, nil)
	require.NoError(t, err)
	return tk
}

func buildUnsolvableTask(t *testing.T) *task.Task {
	t.Helper()
	vars := []task.Variable{{Name: "v", DomainSize: 2}}
	goal := []task.Fact{{Var: 0, Val: 1}}
	tk, err := task.New(vars, task.State{0}, goal, nil, nil)
	require.NoError(t, err)
	return tk
}

func TestEagerGreedyFindsOptimalPlan(t *testing.T) {
	tk := buildChainTask(t)
	h := search.NewGoalCountHeuristic(tk)
	eng, err := search.NewEager(tk, search.EagerConfig{WG: 0, WH: 1, Heuristics: []heuristic.Heuristic{h}})
	require.NoError(t, err)
	res := eng.Search()
	assert.True(t, res.Solved)
	assert.Equal(t, 2, res.Cost)
	assert.Equal(t, []int{0, 1}, res.Plan)
}

func TestEagerAStarReopensForOptimalPlan(t *testing.T) {
	tk := buildChainTask(t)
	h := search.NewBlindHeuristic(tk)
	eng, err := search.NewEager(tk, search.EagerConfig{WG: 1, WH: 1, ReopenClosed: true, Heuristics: []heuristic.Heuristic{h}})
	require.NoError(t, err)
	res := eng.Search()
	assert.True(t, res.Solved)
	assert.Equal(t, 2, res.Cost)
}

func TestEagerReportsUnsolvable(t *testing.T) {
	tk := buildUnsolvableTask(t)
	h := search.NewGoalCountHeuristic(tk)
	eng, err := search.NewEager(tk, search.EagerConfig{WG: 1, WH: 1, Heuristics: []heuristic.Heuristic{h}})
	require.NoError(t, err)
	res := eng.Search()
	assert.False(t, res.Solved)
}

func TestNewEagerRejectsZeroHeuristics(t *testing.T) {
	tk := buildChainTask(t)
	_, err := search.NewEager(tk, search.EagerConfig{WG: 1, WH: 1})
	assert.ErrorIs(t, err, search.ErrNoHeuristics)
}

func TestNewEagerRejectsMultiHeuristicAStar(t *testing.T) {
	tk := buildChainTask(t)
	h1 := search.NewGoalCountHeuristic(tk)
	h2 := search.NewBlindHeuristic(tk)
	_, err := search.NewEager(tk, search.EagerConfig{
		WG: 1, WH: 1, ReopenClosed: true,
		Heuristics: []heuristic.Heuristic{h1, h2},
	})
	assert.ErrorIs(t, err, search.ErrTooManyHeuristicsForAStar)
}

func TestEHCFindsPlan(t *testing.T) {
	tk := buildChainTask(t)
	h := search.NewGoalCountHeuristic(tk)
	eng := search.NewEHC(tk, search.EHCConfig{Primary: h})
	res := eng.Search()
	assert.True(t, res.Solved)
	assert.Equal(t, 2, res.Cost)
}

func TestEHCReportsFailedWhenUnsolvable(t *testing.T) {
	tk := buildUnsolvableTask(t)
	h := search.NewGoalCountHeuristic(tk)
	eng := search.NewEHC(tk, search.EHCConfig{Primary: h})
	res := eng.Search()
	assert.False(t, res.Solved)
}

func TestBlindHeuristicZeroAtGoal(t *testing.T) {
	tk := buildChainTask(t)
	h := search.NewBlindHeuristic(tk)
	h.Evaluate(task.State{1, 1})
	assert.Equal(t, 0, h.Value())
	h.Evaluate(task.State{0, 0})
	assert.Equal(t, 1, h.Value())
}

func TestGoalCountHeuristicCountsUnsatisfied(t *testing.T) {
	tk := buildChainTask(t)
	h := search.NewGoalCountHeuristic(tk)
	h.Evaluate(task.State{0, 0})
	assert.Equal(t, 1, h.Value())
	h.Evaluate(task.State{1, 0})
	assert.Equal(t, 0, h.Value())
}
