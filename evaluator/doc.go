// SPDX-License-Identifier: MIT

// Package evaluator implements the composable scalar evaluator tree
// (spec.md C9): a small family of evaluate(g, preferred) -> value()/
// is_dead_end()/dead_end_is_reliable() nodes that search engines compose
// into f-value functions and tie-breakers, grounded on builder's WeightFn
// composable-function-value pattern but built around a stateful Evaluate
// call rather than a pure function, since spec.md §4.2 caches the last
// value per node.
package evaluator
