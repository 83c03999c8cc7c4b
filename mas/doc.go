// SPDX-License-Identifier: MIT
//
// Package mas implements the merge-and-shrink abstraction heuristic
// (spec.md C8): atomic per-variable abstractions, a linear-CG/goal-level
// merge schedule, pluggable shrink strategies (F-preserving bucketization
// and a DFP-style signature refinement), a synchronized product
// construction with label normalization, and final per-state evaluation by
// chained abstract-state lookup.
//
// Grounded on the teacher's tsp package (staged pipeline: validated input
// boundary, one function per documented stage, a fallback path when an
// optional strategy is unavailable) for the overall construction shape, and
// on the teacher's prim_kruskal package (repeatedly contracting structure
// under a priority) for the merge-schedule variable ordering, enriched by
// original_source/downward/search/merge_and_shrink/*.cc for the shrink
// strategies and label-reduction orthogonality check.
//
// Admissibility under unit cost is preserved; dead-end signals are
// reliable (spec.md §4.7).
package mas
