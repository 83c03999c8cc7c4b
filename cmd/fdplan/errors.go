// SPDX-License-Identifier: MIT
package main

import "errors"

// ErrUnsupportedHeuristic is returned for a --heuristic name this module
// does not implement. spec.md §7 requires an explicit diagnostic and a
// non-zero exit, detected at heuristic construction time, rather than a
// silent fallback.
var ErrUnsupportedHeuristic = errors.New("fdplan: unsupported heuristic")

// ErrUnsupportedEngine is returned for a --search name this module does
// not implement.
var ErrUnsupportedEngine = errors.New("fdplan: unsupported search engine")

// ErrAxiomsUnsupported flags a task with axioms configured against a
// heuristic that cannot reason about them. spec.md §7: "axioms or
// conditional effects in heuristics that do not support them (merge-and-
// shrink, landmark-cut): print an explicit diagnostic and abort ...
// detection is at heuristic initialization."
var ErrAxiomsUnsupported = errors.New("fdplan: heuristic does not support axioms")
