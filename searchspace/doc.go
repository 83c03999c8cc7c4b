// SPDX-License-Identifier: MIT
//
// Package searchspace implements the search-space bookkeeping layer shared
// by every search engine in this module (spec.md C3): a registry mapping
// packed state contents to a SearchNode record, and the plan-tracing walk
// back from a goal node to the initial state.
//
// Overview:
//
//   - States are packed into a fixed-width []byte using exactly as many
//     bits as each variable's domain requires (spec.md §4.1), so the
//     registry key is content-addressed rather than pointer-addressed.
//   - GetNode is idempotent: the first call for a given state permanently
//     registers it (status NEW, sentinel g/h); every later call returns the
//     same *Node.
//   - OpenInitial, Open, Reopen, Close, and MarkDeadEnd implement exactly
//     the state machine spec.md §3 and §4.1 describe, including the
//     "reopen on NEW panics" contract.
//
// Concurrency: a Space is built and used by exactly one search engine at a
// time (spec.md §5: "single-threaded... no ordering guarantees... because
// none exist"); it performs no internal locking.
package searchspace
