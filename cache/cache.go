// SPDX-License-Identifier: MIT
package cache

import (
	"github.com/arbecker/fdplan/dtg"
	"github.com/arbecker/fdplan/task"
)

// MaxEntriesPerVariable is the capacity bound spec.md §3 fixes: "limit 10^6
// entries per variable".
const MaxEntriesPerVariable = 1_000_000

// NotComputed is the Entry.Cost value meaning "this (from, to) transition
// was computed and found unreachable", matching
// original_source/downward/search/cache.cc's NOT_COMPUTED constant. It is
// distinct from a cache miss (Lookup's second return value false): storing
// it lets a reachability result, once computed, stay cached instead of
// re-running Dijkstra on every subsequent lookup of the same unreachable
// pair.
const NotComputed = -1

// Entry is one cached transition result: its cost and the label that
// produced it (nil if the transition is free, i.e. from == to).
type Entry struct {
	Cost    int
	Helpful *dtg.Label
}

// VariableCache is the cache for a single variable. Enabled reports whether
// this variable's ancestor-projection key space fit within
// MaxEntriesPerVariable at construction time; if not, Lookup always misses
// and Store is a no-op, and on-demand Dijkstra recomputation (in
// cgheuristic) is the only path — this is always correct, merely slower.
type VariableCache struct {
	Variable  int
	Enabled   bool
	ancestors []int // sorted ascending; always includes Variable itself
	entries   map[string]Entry
}

// Table holds one VariableCache per variable of a Task.
type Table struct {
	byVar []*VariableCache
}

// Build constructs a Table for tk using cg's reduced ancestor sets.
func Build(tk *task.Task, cg *task.CausalGraph) *Table {
	t := &Table{byVar: make([]*VariableCache, tk.NumVariables())}
	for v, variable := range tk.Variables {
		ancestors := cg.ReducedAncestors(v)
		keySpace := variable.DomainSize * variable.DomainSize
		for _, a := range ancestors {
			if a == v {
				continue
			}
			keySpace *= tk.Variables[a].DomainSize
			if keySpace > MaxEntriesPerVariable {
				break
			}
		}
		enabled := keySpace <= MaxEntriesPerVariable
		t.byVar[v] = &VariableCache{
			Variable:  v,
			Enabled:   enabled,
			ancestors: ancestors,
			entries:   make(map[string]Entry),
		}
	}
	return t
}

// Get returns the VariableCache for v.
func (t *Table) Get(v int) *VariableCache { return t.byVar[v] }

// key packs (from, to, ancestor-projection) into a cache key. Only
// ancestors other than v itself are part of the projection (spec.md §3:
// "the cache key strictly uses only the ancestor projection; irrelevant
// variables are not part of the key").
func (c *VariableCache) key(from, to int, s task.State) string {
	buf := make([]byte, 0, 4+4*len(c.ancestors))
	buf = appendInt(buf, from)
	buf = appendInt(buf, to)
	for _, a := range c.ancestors {
		if a == c.Variable {
			continue
		}
		buf = appendInt(buf, s[a])
	}
	return string(buf)
}

func appendInt(buf []byte, v int) []byte {
	return append(buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

// Lookup returns the cached entry for the (from, to) transition under
// context state s, and whether it was present. It always misses if the
// cache is disabled for this variable.
func (c *VariableCache) Lookup(from, to int, s task.State) (Entry, bool) {
	if !c.Enabled {
		return Entry{}, false
	}
	e, ok := c.entries[c.key(from, to, s)]
	return e, ok
}

// Store records the computed cost and helpful label for (from, to) under
// context state s. It is a no-op if the cache is disabled for this
// variable; once written, an entry is never overwritten for the same key
// (spec.md §5: "entries, once written, stay fixed for the run because they
// depend only on the (from, to, ancestor-projection) key").
func (c *VariableCache) Store(from, to int, s task.State, cost int, helpful *dtg.Label) {
	if !c.Enabled {
		return
	}
	k := c.key(from, to, s)
	if _, exists := c.entries[k]; exists {
		return
	}
	c.entries[k] = Entry{Cost: cost, Helpful: helpful}
}
