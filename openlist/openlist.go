// SPDX-License-Identifier: MIT
package openlist

import (
	"errors"

	"github.com/arbecker/fdplan/task"
)

// ErrEmpty is returned by RemoveMin when the list has nothing to extract.
var ErrEmpty = errors.New("openlist: remove_min called on an empty list")

// Entry is one frontier record (spec.md §4.3): a packed-state pointer plus
// the operator pending application to reach it, and the preferred flag the
// entry was inserted with. PendingOp is -1 for the initial state's entry.
type Entry struct {
	State     task.State
	PendingOp int
	Preferred bool
}

// OpenList is the shared contract every open-list variant implements
// (spec.md §4.3).
type OpenList interface {
	// Insert adds e, keyed by whatever evaluator(s) this list was built
	// from; the caller must have already called Evaluate(g, preferred) on
	// those evaluators for e's node. An implementation that is
	// only-preferred silently drops e when e.Preferred is false.
	Insert(e Entry)

	// RemoveMin extracts and returns the lowest-keyed entry, or ErrEmpty.
	RemoveMin() (Entry, error)

	// Empty reports whether the list holds zero entries.
	Empty() bool

	// Clear discards every entry and resets internal cursors to their
	// initial state.
	Clear()

	// IsDeadEnd reports whether every evaluator feeding this list judged
	// the most recently evaluated node a dead end (spec.md §4.3).
	IsDeadEnd() bool

	// DeadEndReliable is the OR of the feeding evaluators' reliability
	// (spec.md §4.3).
	DeadEndReliable() bool

	// BoostPreferred hints that preferred-only sub-lists should be
	// favoured on the next RemoveMin calls. A no-op on lists with no
	// preferred-only sub-structure.
	BoostPreferred()
}
