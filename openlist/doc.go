// SPDX-License-Identifier: MIT

// Package openlist implements the priority structures search engines pop
// frontier entries from (spec.md C10): a scalar bucket list keyed by one
// evaluator, a tie-breaking list keyed by a vector of evaluators compared
// lexicographically, and an alternation list that round-robins over
// sub-lists. Grounded on the teacher's dijkstra package for the
// bucket/cursor shape and flow's Edmonds-Karp BFS queue for FIFO bucket
// interiors.
package openlist
