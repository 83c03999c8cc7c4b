// SPDX-License-Identifier: MIT
//
// Package heuristic defines the shared contract every heuristic evaluator in
// this module implements (cgheuristic, relaxheuristic, mas, and the blind /
// goal-count baselines in search), per spec.md §4.2's "scalar-heuristic
// evaluator wraps a heuristic component".
//
// This is the Go re-architecture spec.md §9 asks for in place of virtual
// inheritance from a common Heuristic base class: a single small interface,
// with each concrete heuristic's own fields holding whatever mutable
// per-call state it needs (distance arrays, proposition costs, abstract
// tables).
package heuristic
