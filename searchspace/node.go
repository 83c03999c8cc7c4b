// SPDX-License-Identifier: MIT
package searchspace

import "github.com/arbecker/fdplan/task"

// Status is a SearchNode's position in the spec.md §4.1 state machine.
type Status int

const (
	// StatusNew is the initial status of a freshly registered node.
	StatusNew Status = iota
	// StatusOpen marks a node enqueued for expansion.
	StatusOpen
	// StatusClosed marks a node that has been expanded.
	StatusClosed
	// StatusDeadEnd marks a node a reliable heuristic has ruled out.
	StatusDeadEnd
)

func (s Status) String() string {
	switch s {
	case StatusNew:
		return "NEW"
	case StatusOpen:
		return "OPEN"
	case StatusClosed:
		return "CLOSED"
	case StatusDeadEnd:
		return "DEAD_END"
	default:
		return "UNKNOWN"
	}
}

// Sentinel is the "unknown heuristic value" marker used before a node's h
// has ever been evaluated, and task.QuiteALot-equivalent for g before a node
// is opened.
const Sentinel = task.QuiteALot

// Node is the per-state search record spec.md §3 "SearchNode" describes.
// Fields are mutated only through Space's methods; callers must not write
// to them directly so the package can preserve the g/status invariants
// spec.md §8 requires.
type Node struct {
	State  task.State
	Status Status
	G      int
	H      int

	Parent   task.State // nil for the initial state or an un-reached node
	CreateOp int        // operator id that created this node; -1 if none
}

// HasParent reports whether this node was reached from another node (false
// only for the initial state's node, per spec.md §3).
func (n *Node) HasParent() bool { return n.Parent != nil }
