// SPDX-License-Identifier: MIT
package searchspace

import (
	"errors"
	"fmt"

	"github.com/arbecker/fdplan/task"
)

// Sentinel errors for the searchspace package.
var (
	// ErrReopenNew indicates Reopen was called on a node that has never
	// been opened; spec.md §4.1 requires this to "fail loudly".
	ErrReopenNew = errors.New("searchspace: reopen called on a NEW node")

	// ErrTraceUnregistered indicates TracePath was asked to trace a state
	// that was never registered with GetNode.
	ErrTraceUnregistered = errors.New("searchspace: cannot trace an unregistered state")
)

// Space owns the registry of packed-state keys to *Node records and the
// plan-tracing logic (spec.md C3). It is built once per search and is not
// safe for concurrent use (spec.md §5).
type Space struct {
	packer   *Packer
	byKey    map[string]*Node
	registry map[string]task.State // key -> the State the key was built from
}

// NewSpace constructs an empty Space for states of task t.
func NewSpace(t *task.Task) *Space {
	return &Space{
		packer:   NewPacker(t),
		byKey:    make(map[string]*Node),
		registry: make(map[string]task.State),
	}
}

// GetNode returns the Node for s, registering it in status NEW with
// sentinel g/h on first use. Repeated calls for an equal state return the
// same *Node (spec.md §8: "get_node(state) is idempotent").
func (sp *Space) GetNode(s task.State) *Node {
	key := sp.packer.Pack(s)
	if n, ok := sp.byKey[key]; ok {
		return n
	}
	n := &Node{
		State:    s.Clone(),
		Status:   StatusNew,
		G:        Sentinel,
		H:        Sentinel,
		CreateOp: -1,
	}
	sp.byKey[key] = n
	sp.registry[key] = n.State
	return n
}

// OpenInitial transitions the initial-state node NEW->OPEN with g=0 and no
// parent, recording its heuristic estimate h.
func (sp *Space) OpenInitial(n *Node, h int) {
	n.Status = StatusOpen
	n.G = 0
	n.H = h
	n.Parent = nil
	n.CreateOp = -1
}

// Open transitions a NEW node to OPEN, reached from parent via op with unit
// (or op-specific) cost, recording heuristic estimate h.
func (sp *Space) Open(n *Node, parent *Node, op task.Operator, h int) {
	n.Status = StatusOpen
	n.G = parent.G + task.OperatorCost(op)
	n.H = h
	n.Parent = parent.State.Clone()
	n.CreateOp = op.ID
}

// Reopen updates n's g and parent/op to a strictly cheaper path discovered
// via parent and op, and transitions OPEN|CLOSED -> OPEN. It panics if n is
// still NEW: spec.md §4.1 requires Reopen to "fail loudly" in that case,
// since reopening implies a node must already have a discovered path.
func (sp *Space) Reopen(n *Node, parent *Node, op task.Operator) {
	if n.Status == StatusNew {
		panic(fmt.Sprintf("%v: node has no prior path to reopen", ErrReopenNew))
	}
	newG := parent.G + task.OperatorCost(op)
	if newG >= n.G {
		return
	}
	n.G = newG
	n.Parent = parent.State.Clone()
	n.CreateOp = op.ID
	n.Status = StatusOpen
}

// UpdateParent overwrites n's best-known path without changing its status,
// used when reopen_closed is false and a cheaper path to a CLOSED node is
// found: spec.md §4.4 step 6.e "update parent pointer only (to improve
// trace quality without reinserting)".
func (sp *Space) UpdateParent(n *Node, parent *Node, op task.Operator) {
	n.Parent = parent.State.Clone()
	n.CreateOp = op.ID
}

// Close transitions n OPEN -> CLOSED.
func (sp *Space) Close(n *Node) {
	n.Status = StatusClosed
}

// MarkDeadEnd transitions n to DEAD_END from any status.
func (sp *Space) MarkDeadEnd(n *Node) {
	n.Status = StatusDeadEnd
}

// TracePath walks parent pointers from the node for goalState back to the
// initial state (the node with no parent) and returns the operator ids in
// forward (initial-to-goal) order.
func (sp *Space) TracePath(goalState task.State) ([]int, error) {
	key := sp.packer.Pack(goalState)
	n, ok := sp.byKey[key]
	if !ok {
		return nil, ErrTraceUnregistered
	}
	var ops []int
	cur := n
	for cur.HasParent() {
		ops = append(ops, cur.CreateOp)
		pKey := sp.packer.Pack(cur.Parent)
		parent, ok := sp.byKey[pKey]
		if !ok {
			return nil, ErrTraceUnregistered
		}
		cur = parent
	}
	// Reverse in place: we walked goal -> initial.
	for i, j := 0, len(ops)-1; i < j; i, j = i+1, j-1 {
		ops[i], ops[j] = ops[j], ops[i]
	}
	return ops, nil
}
