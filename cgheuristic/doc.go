// SPDX-License-Identifier: MIT
//
// Package cgheuristic implements the causal-graph heuristic (spec.md C6): for
// each goal fact, a Dijkstra search over the corresponding domain-transition
// graph (package dtg) under prevail contexts, consulting the transition
// cache (package cache) before falling back to an on-demand search, plus
// helpful-action (preferred-operator) extraction by walking the recorded
// helpful-transition pointers back from each goal value.
//
// Grounded directly on the teacher's dijkstra package (a heap/bucket-based
// single-source shortest path runner over katalvlaran/lvlath/core.Graph),
// re-targeted at a per-variable DTG and threading the "children state"
// spec.md §4.5 describes through edge relaxation so a label's prevail
// conditions can themselves be costed recursively.
//
// This heuristic is not admissible in general (spec.md §4.5's correctness
// note) and its dead-end signal is not reliable.
package cgheuristic
