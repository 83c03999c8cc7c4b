// SPDX-License-Identifier: MIT

// Package search implements the two search engines spec.md names (C11):
// an eager best-first family (greedy / A* / weighted-A*, parameterized by
// w_g/w_h and reopen_closed) and enforced hill climbing. Grounded on the
// teacher's bfs/dfs driver-loop shape (frontier pop, visit, expand, push)
// generalized from unweighted traversal into an evaluator-scored loop, and
// on the original search component's general_eager_best_first_search.cc /
// enforced_hill_climbing_search.cc for the exact step ordering. Progress
// and statistics are logged through github.com/sirupsen/logrus, matching
// operator-lifecycle-manager's logging stack.
package search
