// SPDX-License-Identifier: MIT
package searchspace

import (
	"math/bits"

	"github.com/arbecker/fdplan/task"
)

// Packer converts task.State values into a compact, comparable key using
// only as many bits as each variable's domain requires (spec.md §4.1).
type Packer struct {
	bitWidths []int
	totalBits int
}

// NewPacker computes the per-variable bit width (ceil(log2(domainSize)),
// at least 1 bit) for t's variables.
func NewPacker(t *task.Task) *Packer {
	p := &Packer{bitWidths: make([]int, t.NumVariables())}
	for i, v := range t.Variables {
		w := bits.Len(uint(v.DomainSize - 1))
		if w == 0 {
			w = 1
		}
		p.bitWidths[i] = w
		p.totalBits += w
	}
	return p
}

// Pack encodes s as a string key, suitable for use as a map key. The
// encoding is purely a bit-packed byte string; it carries no semantic
// meaning beyond equality and hashing.
func (p *Packer) Pack(s task.State) string {
	buf := make([]byte, (p.totalBits+7)/8)
	bitPos := 0
	for i, v := range s {
		w := p.bitWidths[i]
		for b := 0; b < w; b++ {
			if v&(1<<uint(b)) != 0 {
				byteIdx := bitPos / 8
				bitIdx := uint(bitPos % 8)
				buf[byteIdx] |= 1 << bitIdx
			}
			bitPos++
		}
	}
	return string(buf)
}
