// SPDX-License-Identifier: MIT

// Command fdplan is the CLI surface spec.md §6 describes abstractly
// ("choose one search engine, choose one or more heuristics by name ...
// exact flag strings unspecified"): a cobra/pflag entrypoint that parses a
// task from stdin or a file, wires the chosen heuristics and search
// engine, and prints the plan and statistics spec.md §6 "Output" names.
// Grounded on the teacher's examples/*.go one-scenario-per-main() shape
// for the overall entrypoint style and on operator-lifecycle-manager's
// cmd/catalog/start.go for the cobra.Command + functional flag-binding
// pattern.
package main
