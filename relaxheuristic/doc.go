// SPDX-License-Identifier: MIT
//
// Package relaxheuristic implements the delete-relaxation heuristic
// (spec.md C7): a one-time compilation of every operator into unary
// operators (one per effect fact), then a per-state additive (h_add)
// propagation over a bucket queue, plus an FF-style relaxed-plan extraction
// that doubles as preferred-operator tagging.
//
// Grounded on the teacher's bfs package's layered-frontier propagation
// (generalized here from unit BFS layers to a cost-bucket queue, the same
// shape cgheuristic's bucketQueue already uses) and on
// original_source/downward/search/relaxation_heuristic.cc /
// exhaust_heuristic.cc for the unary-operator compilation, dominance
// simplification, and relaxed-plan walk.
//
// Unlike the causal-graph heuristic, this heuristic's dead-end signal is
// reliable: h_add(s) < QuiteALot iff the goal is reachable from s under the
// delete relaxation.
package relaxheuristic
