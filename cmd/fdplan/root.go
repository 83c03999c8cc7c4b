// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/arbecker/fdplan/heuristic"
	"github.com/arbecker/fdplan/task"
)

// options collects every flag newRootCmd binds, merged with an optional
// --config file (flags win over the file, matching spec.md §6's "flags
// are authoritative when both are given" silence-resolution via
// original_source/'s option_parser.cc precedence).
type options struct {
	input              string
	searchName         string
	weight             int
	heuristics         []string
	preferred          []string
	reopenClosed       bool
	pruneByPreferred   bool
	rankPreferredFirst bool
	costType           string
	configPath         string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "fdplan",
		Short: "Heuristic best-first search over a finite-domain planning task",
		Long: "fdplan reads a finite-domain (SAS-like) planning task from a file or\n" +
			"stdin, searches it with a configurable best-first engine and one or\n" +
			"more heuristics, and prints the resulting plan and search statistics.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(opts, cmd.Flags())
		},
		SilenceUsage: true,
	}

	fs := cmd.Flags()
	fs.StringVar(&opts.input, "input", "", "path to the task file (default: stdin)")
	fs.StringVar(&opts.searchName, "search", "greedy", "search engine: greedy, astar, weighted-astar, ehc")
	fs.IntVar(&opts.weight, "weight", 1, "heuristic weight w_h for weighted-astar")
	fs.StringArrayVar(&opts.heuristics, "heuristic", nil, "heuristic name (repeatable): cg, ff, add, mas, blind, goalcount")
	fs.StringArrayVar(&opts.preferred, "preferred", nil, "subset of --heuristic names contributing preferred operators")
	fs.BoolVar(&opts.reopenClosed, "reopen-closed", false, "reopen CLOSED nodes on a cheaper incoming path (astar forces this on)")
	fs.BoolVar(&opts.pruneByPreferred, "prune-by-preferred", false, "ehc: expand only preferred operators")
	fs.BoolVar(&opts.rankPreferredFirst, "rank-preferred-first", false, "ehc: rank preferred operators' successors first")
	fs.StringVar(&opts.costType, "cost-type", "normal", "operator cost interpretation: normal, one (placeholder, see SPEC_FULL.md §3)")
	fs.StringVar(&opts.configPath, "config", "", "optional YAML file supplying defaults for the flags above")

	return cmd
}

// applyFileConfig fills in from cfg every flag that was not set on the
// command line, so an explicit flag always overrides the file.
func applyFileConfig(opts *options, fs *pflag.FlagSet, cfg *fileConfig) {
	if !fs.Changed("search") && cfg.Search != "" {
		opts.searchName = cfg.Search
	}
	if !fs.Changed("weight") && cfg.Weight != 0 {
		opts.weight = cfg.Weight
	}
	if !fs.Changed("heuristic") && len(cfg.Heuristics) > 0 {
		opts.heuristics = cfg.Heuristics
	}
	if !fs.Changed("preferred") && len(cfg.Preferred) > 0 {
		opts.preferred = cfg.Preferred
	}
	if !fs.Changed("reopen-closed") && cfg.Reopen {
		opts.reopenClosed = cfg.Reopen
	}
	if !fs.Changed("prune-by-preferred") && cfg.PruneByPreferred {
		opts.pruneByPreferred = cfg.PruneByPreferred
	}
	if !fs.Changed("rank-preferred-first") && cfg.RankPreferredFirst {
		opts.rankPreferredFirst = cfg.RankPreferredFirst
	}
}

func runRoot(opts *options, fs *pflag.FlagSet) error {
	log := logrus.StandardLogger()

	if opts.configPath != "" {
		cfg, err := loadConfig(opts.configPath)
		if err != nil {
			return err
		}
		applyFileConfig(opts, fs, cfg)
	}

	in := os.Stdin
	if opts.input != "" {
		f, err := os.Open(opts.input)
		if err != nil {
			return fmt.Errorf("fdplan: opening task file %q: %w", opts.input, err)
		}
		defer f.Close()
		in = f
	}

	tk, err := task.Parse(in)
	if err != nil {
		return fmt.Errorf("fdplan: parsing task: %w", err)
	}

	if len(opts.heuristics) == 0 {
		return fmt.Errorf("fdplan: at least one --heuristic is required")
	}

	deps := newEngineDeps(tk)
	named := map[string]heuristic.Heuristic{}
	var ordered []heuristic.Heuristic
	for _, name := range opts.heuristics {
		h, err := buildHeuristic(name, deps)
		if err != nil {
			return err
		}
		named[name] = h
		ordered = append(ordered, h)
	}
	var preferredSet []heuristic.Heuristic
	for _, name := range opts.preferred {
		h, ok := named[name]
		if !ok {
			return fmt.Errorf("fdplan: --preferred %q is not among --heuristic names", name)
		}
		preferredSet = append(preferredSet, h)
	}

	result, err := runEngine(tk, opts, ordered, preferredSet, log)
	if err != nil {
		return err
	}

	logResult(log, tk, result)
	if !result.Solved {
		os.Exit(1)
	}
	return nil
}
