// SPDX-License-Identifier: MIT
package task

// Apply returns the state that results from applying op to s. The caller
// must have already confirmed Applicable(op, s); Apply does not re-check
// prevail or pre-value conditions, only each pre-post's EffectCond, matching
// spec.md's "optional secondary conditions" on pre-post entries.
//
// Apply does not evaluate axioms; call Task.Fixpoint on the result to
// populate derived variables (spec.md §3: "After applying a non-axiom
// operator to a parent state, axioms are evaluated to a fixpoint").
func Apply(op Operator, s State) State {
	out := s.Clone()
	for _, pp := range op.PrePosts {
		if effectCondHolds(pp.EffectCond, s) {
			out[pp.Var] = pp.Post
		}
	}
	return out
}

func effectCondHolds(cond []Fact, s State) bool {
	for _, f := range cond {
		if s[f.Var] != f.Val {
			return false
		}
	}
	return true
}

// Fixpoint evaluates every axiom in t.Axioms against s, repeatedly, until no
// further derived-variable value changes — spec.md §3's "axioms are
// evaluated to a fixpoint". The pass order follows axiom declaration order
// within each round, matching the teacher's dfs/topological.go repeated-pass
// style rather than a stratified-by-layer evaluator: axiom layers in the
// parsed input are preserved on Variable.AxiomLayer for callers that want to
// stratify, but the fixpoint here is layer-agnostic and simply iterates
// until stable, which is correct for any acyclic axiom set.
func (t *Task) Fixpoint(s State) State {
	out := s.Clone()
	for {
		changed := false
		for _, ax := range t.Axioms {
			if !Applicable(ax, out) {
				continue
			}
			for _, pp := range ax.PrePosts {
				if !effectCondHolds(pp.EffectCond, out) {
					continue
				}
				if out[pp.Var] != pp.Post {
					out[pp.Var] = pp.Post
					changed = true
				}
			}
		}
		if !changed {
			return out
		}
	}
}

// ApplyAndFixpoint applies op to s and then evaluates axioms to a fixpoint,
// producing the full successor state used by the successor generator and
// every search engine in this module.
func (t *Task) ApplyAndFixpoint(op Operator, s State) State {
	return t.Fixpoint(Apply(op, s))
}
