// SPDX-License-Identifier: MIT
//
// Package dtg builds the per-variable domain-transition graphs (spec.md C4)
// that the causal-graph heuristic (cgheuristic) runs its Dijkstra search
// over.
//
// Each DTG is an arena of value-nodes indexed 0..domainSize-1 with directed,
// labeled edges: an edge (u -> w) exists whenever some operator's pre-post
// entry on this variable can move it from u to w, and carries one label per
// contributing operator recording that operator's prevail conditions (its
// own prevail set, any co-precondition from the operator's other pre-post
// entries, and that pre-post's effect conditions).
//
// This is the teacher's dijkstra package's graph shape (katalvlaran/lvlath's
// core.Graph + dijkstra's heap-based shortest-path runner) re-architected
// per spec.md §9: string vertex IDs become integer value indices into a
// contiguous per-DTG arena, and cross-DTG prevail references are resolved
// through the Table rather than through pointers between graphs.
package dtg
