// SPDX-License-Identifier: MIT
//
// Package cache implements the plan-step-keyed transition cache (spec.md
// C5) the causal-graph heuristic consults before running its per-variable
// Dijkstra search: a cache keyed by (from-value, to-value, ancestor
// projection) mapping to a precomputed cost and helpful-transition
// reference, for every variable whose ancestor-projection key space fits
// within a capacity bound.
//
// Grounded on the teacher's matrix/dense.go decision to switch storage
// representation based on a size bound, and on the NOT_COMPUTED sentinel
// and per-variable enable bit from original_source/downward/search/cache.cc:
// a variable whose ancestor set is too large to cache simply never caches,
// and on-demand computation is always correct regardless.
package cache
