// SPDX-License-Identifier: MIT
//
// Package succgen implements the successor generator (spec.md C2): given a
// state, efficiently yield the operators applicable in it.
//
// Fast Downward's own successor generator is a precompiled decision tree
// over variable values (spec.md §1 lists its construction as an external
// collaborator referenced only through this package's narrow contract); this
// package builds a simpler but equivalent match tree at Task-load time by
// recursively partitioning operators on one still-unresolved precondition
// variable at a time, in the spirit of the teacher's frontier-expansion
// traversals (algorithms/bfs.go, algorithms/dfs.go) generalized from a
// graph-visit frontier into a precondition-value frontier.
//
// Generator is built once per Task and is immutable afterward; Applicable
// is safe to call concurrently from multiple goroutines even though the
// engines in this module never do so (spec.md §5).
package succgen
