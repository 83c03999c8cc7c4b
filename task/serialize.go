// SPDX-License-Identifier: MIT
package task

import (
	"bufio"
	"fmt"
	"io"
)

// Write serializes t back into the Parse grammar, omitting the optional
// CG/SG/DTG blocks (this module rebuilds them from the Task rather than
// trusting a serialized copy; see succgen and dtg). Write always emits a
// metric flag of 0.
func (t *Task) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, 0)

	fmt.Fprintln(bw, "begin_variables")
	fmt.Fprintln(bw, len(t.Variables))
	for _, v := range t.Variables {
		fmt.Fprintf(bw, "%s %d %d\n", v.Name, v.DomainSize, v.AxiomLayer)
	}
	fmt.Fprintln(bw, "end_variables")

	fmt.Fprintln(bw, "begin_state")
	for _, v := range t.Initial {
		fmt.Fprintln(bw, v)
	}
	fmt.Fprintln(bw, "end_state")

	fmt.Fprintln(bw, "begin_goal")
	fmt.Fprintln(bw, len(t.Goal))
	for _, f := range t.Goal {
		fmt.Fprintf(bw, "%d %d\n", f.Var, f.Val)
	}
	fmt.Fprintln(bw, "end_goal")

	writeOps(bw, "begin_operators", "end_operators", t.Operators)
	writeOps(bw, "begin_axioms", "end_axioms", t.Axioms)

	return bw.Flush()
}

func writeOps(bw *bufio.Writer, begin, end string, ops []Operator) {
	fmt.Fprintln(bw, begin)
	fmt.Fprintln(bw, len(ops))
	for _, op := range ops {
		fmt.Fprintln(bw, "begin_operator")
		fmt.Fprintln(bw, op.Name)
		fmt.Fprintln(bw, len(op.Prevail))
		for _, f := range op.Prevail {
			fmt.Fprintf(bw, "%d %d\n", f.Var, f.Val)
		}
		fmt.Fprintln(bw, len(op.PrePosts))
		for _, pp := range op.PrePosts {
			fmt.Fprintln(bw, len(pp.EffectCond))
			for _, f := range pp.EffectCond {
				fmt.Fprintf(bw, "%d %d\n", f.Var, f.Val)
			}
			fmt.Fprintf(bw, "%d %d %d\n", pp.Var, pp.Pre, pp.Post)
		}
		fmt.Fprintln(bw, op.Cost)
		fmt.Fprintln(bw, "end_operator")
	}
	fmt.Fprintln(bw, end)
}
