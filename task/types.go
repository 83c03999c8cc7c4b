// SPDX-License-Identifier: MIT
package task

import (
	"errors"
	"fmt"
)

// Sentinel errors for the task package.
var (
	// ErrEmptyTask indicates a task with zero variables was constructed.
	ErrEmptyTask = errors.New("task: no variables declared")

	// ErrDomainTooLarge indicates a variable domain size was not positive or
	// exceeded MaxDomainSize.
	ErrDomainTooLarge = errors.New("task: variable domain exceeds practical bound")

	// ErrVariableIndex indicates an out-of-range variable index.
	ErrVariableIndex = errors.New("task: variable index out of range")

	// ErrValueIndex indicates an out-of-range value for a variable's domain.
	ErrValueIndex = errors.New("task: value out of range for variable domain")

	// ErrMalformedInput indicates the input stream did not match the expected
	// magic-line-delimited grammar described in spec.md §6.
	ErrMalformedInput = errors.New("task: malformed input stream")
)

// MaxDomainSize is the practical per-variable domain bound from spec.md §3
// ("no domain has more than a small bound (practical limit ~1000 per
// variable)"). It is a soft guard against accidental parser misuse, not a
// hard protocol limit.
const MaxDomainSize = 1000

// QuiteALot is the "quite-a-lot" sentinel (spec.md §3) standing in for
// infinity in integer distance/cost arithmetic. Any value >= QuiteALot is
// treated as unreachable.
const QuiteALot = 1_000_000_000

// Any is the pre-value meaning "any value" in a PrePost entry.
const Any = -1

// NoAxiomLayer marks a Variable as non-derived (spec.md §3: "axiom layer
// (-1 for non-derived)").
const NoAxiomLayer = -1

// Variable describes one state variable: a human-readable name and a finite
// domain 0..DomainSize-1. AxiomLayer is NoAxiomLayer for ordinary variables
// or a non-negative layer index for a derived (axiom) variable.
type Variable struct {
	Name       string
	DomainSize int
	AxiomLayer int
}

// IsDerived reports whether this variable is populated by axiom evaluation
// rather than by operator effects.
func (v Variable) IsDerived() bool {
	return v.AxiomLayer != NoAxiomLayer
}

// Fact is a (variable, value) pair, used for prevail conditions, goal
// entries, and effect conditions.
type Fact struct {
	Var int
	Val int
}

// PrePost is one effect entry of an operator on a single variable: the
// required pre-value (Any if unconditional on the prior value), the
// post-value it is set to, and any effect conditions that must hold in the
// state for this effect to apply.
type PrePost struct {
	Var            int
	Pre            int
	Post           int
	EffectCond     []Fact
}

// Operator is an action (or, with Cost 0 and IsAxiom true, a derived-variable
// rule): a prevail set of facts that must hold and are left unchanged, and a
// set of pre-post effects. ID is the operator's stable position index in the
// task's Operators slice.
type Operator struct {
	ID       int
	Name     string
	Prevail  []Fact
	PrePosts []PrePost
	Cost     int
	IsAxiom  bool
}

// State is a total assignment: State[v] is the current value of variable v.
// States are compared by full component equality.
type State []int

// Clone returns an independent copy of the state.
func (s State) Clone() State {
	out := make(State, len(s))
	copy(out, s)
	return out
}

// Equal reports whether two states have identical values for every variable.
func (s State) Equal(other State) bool {
	if len(s) != len(other) {
		return false
	}
	for i, v := range s {
		if other[i] != v {
			return false
		}
	}
	return true
}

// Task is the immutable, read-only-for-the-run planning problem: variables,
// initial state, goal, operators, and axioms. Construct via New or Parse;
// never mutate a Task after construction — every heuristic and search
// engine in this module assumes it is safe to share by reference across
// goroutine-free, single-threaded use.
type Task struct {
	Variables []Variable
	Initial   State
	Goal      []Fact
	Operators []Operator
	Axioms    []Operator
}

// New validates and assembles a Task from its parsed components. It is the
// single construction path shared by Parse and by tests that build a task
// by hand.
func New(vars []Variable, initial State, goal []Fact, operators, axioms []Operator) (*Task, error) {
	if len(vars) == 0 {
		return nil, ErrEmptyTask
	}
	for i, v := range vars {
		if v.DomainSize <= 0 || v.DomainSize > MaxDomainSize {
			return nil, fmt.Errorf("%w: variable %d (%s) has domain size %d", ErrDomainTooLarge, i, v.Name, v.DomainSize)
		}
	}
	if len(initial) != len(vars) {
		return nil, fmt.Errorf("%w: initial state has %d values, expected %d", ErrMalformedInput, len(initial), len(vars))
	}
	t := &Task{
		Variables: vars,
		Initial:   initial.Clone(),
		Goal:      goal,
		Operators: operators,
		Axioms:    axioms,
	}
	if err := t.validateFacts(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Task) validateFacts() error {
	check := func(f Fact) error {
		if f.Var < 0 || f.Var >= len(t.Variables) {
			return fmt.Errorf("%w: %d", ErrVariableIndex, f.Var)
		}
		if f.Val != Any && (f.Val < 0 || f.Val >= t.Variables[f.Var].DomainSize) {
			return fmt.Errorf("%w: variable %d value %d", ErrValueIndex, f.Var, f.Val)
		}
		return nil
	}
	for _, f := range t.Goal {
		if err := check(f); err != nil {
			return err
		}
	}
	checkOp := func(op Operator) error {
		for _, f := range op.Prevail {
			if err := check(f); err != nil {
				return err
			}
		}
		for _, pp := range op.PrePosts {
			if err := check(Fact{Var: pp.Var, Val: pp.Post}); err != nil {
				return err
			}
			if pp.Pre != Any {
				if err := check(Fact{Var: pp.Var, Val: pp.Pre}); err != nil {
					return err
				}
			}
			for _, f := range pp.EffectCond {
				if err := check(f); err != nil {
					return err
				}
			}
		}
		return nil
	}
	for _, op := range t.Operators {
		if err := checkOp(op); err != nil {
			return err
		}
	}
	for _, op := range t.Axioms {
		if err := checkOp(op); err != nil {
			return err
		}
	}
	return nil
}

// NumVariables returns the number of state variables.
func (t *Task) NumVariables() int { return len(t.Variables) }

// GoalSatisfied reports whether s assigns every goal fact its required value.
func (t *Task) GoalSatisfied(s State) bool {
	for _, f := range t.Goal {
		if s[f.Var] != f.Val {
			return false
		}
	}
	return true
}

// GoalDisagreementCount returns the number of goal variables whose value in
// s differs from the goal's requirement. This is the "simple goal-count
// reduction" lower bound spec.md §8 cites for the CG heuristic.
func (t *Task) GoalDisagreementCount(s State) int {
	n := 0
	for _, f := range t.Goal {
		if s[f.Var] != f.Val {
			n++
		}
	}
	return n
}

// OperatorCost returns 1 for a non-axiom operator and 0 for an axiom,
// matching spec.md §4.4's "unit action cost is assumed throughout".
func OperatorCost(op Operator) int {
	if op.IsAxiom {
		return 0
	}
	return 1
}

// PrevailHolds reports whether every prevail fact of op holds in s.
func PrevailHolds(op Operator, s State) bool {
	for _, f := range op.Prevail {
		if s[f.Var] != f.Val {
			return false
		}
	}
	return true
}

// Applicable reports whether op can be applied in s: every prevail fact
// holds, and every pre-post entry's pre-value either is Any or matches s.
func Applicable(op Operator, s State) bool {
	if !PrevailHolds(op, s) {
		return false
	}
	// A pre-post's EffectCond gates only whether that one effect fires during
	// Apply (see apply.go); it never gates operator applicability as a whole.
	for _, pp := range op.PrePosts {
		if pp.Pre != Any && s[pp.Var] != pp.Pre {
			return false
		}
	}
	return true
}
