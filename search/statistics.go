// SPDX-License-Identifier: MIT
package search

// Statistics accumulates the counters spec.md §6 requires at the end of a
// search run ("expanded, generated, evaluated, reopened counts"), plus a
// dead-ends counter surfaced for diagnostics even though spec.md does not
// name it among the required end-of-run numbers.
type Statistics struct {
	Expanded int
	Generated int
	Evaluated int
	Reopened  int
	DeadEnds  int
}

// Result is what a search engine returns: whether a plan was found, the
// plan itself (operator ids in application order), its total cost, and
// the run's statistics.
type Result struct {
	Solved bool
	Plan   []int
	Cost   int
	Stats  Statistics
}
