// SPDX-License-Identifier: MIT
package openlist

import "github.com/arbecker/fdplan/evaluator"

// TieBreakingOpenList keys entries by a vector of scalar evaluators,
// compared lexicographically; entries sharing a key are FIFO (spec.md
// §4.3). Distinct keys are kept in a sorted slice so RemoveMin can apply
// the same monotone-cursor discipline as ScalarBucketOpenList's single-
// integer buckets.
type TieBreakingOpenList struct {
	evals         []evaluator.Evaluator
	onlyPreferred bool

	keys    [][]int
	queues  map[string][]Entry
	cursor  int
	size    int
}

// NewTieBreakingOpenList builds a list keyed lexicographically by evals, in
// order.
func NewTieBreakingOpenList(onlyPreferred bool, evals ...evaluator.Evaluator) *TieBreakingOpenList {
	return &TieBreakingOpenList{
		evals:         evals,
		onlyPreferred: onlyPreferred,
		queues:        make(map[string][]Entry),
	}
}

func lessVec(a, b []int) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

func equalVec(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func encodeVec(k []int) string {
	buf := make([]byte, 0, len(k)*8)
	for _, v := range k {
		buf = append(buf, itoaOpenlist(v)...)
		buf = append(buf, ',')
	}
	return string(buf)
}

func itoaOpenlist(v int) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var tmp [20]byte
	i := len(tmp)
	for v > 0 {
		i--
		tmp[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		tmp[i] = '-'
	}
	return string(tmp[i:])
}

// findOrInsertKey returns the sorted-slice index of key, inserting it if
// not already present.
func (l *TieBreakingOpenList) findOrInsertKey(key []int) int {
	i := 0
	for ; i < len(l.keys); i++ {
		if equalVec(l.keys[i], key) {
			return i
		}
		if lessVec(key, l.keys[i]) {
			break
		}
	}
	l.keys = append(l.keys, nil)
	copy(l.keys[i+1:], l.keys[i:])
	l.keys[i] = key
	return i
}

// Insert computes the current key vector from l.evals and appends e to
// that key's FIFO queue.
func (l *TieBreakingOpenList) Insert(e Entry) {
	if l.onlyPreferred && !e.Preferred {
		return
	}
	key := make([]int, len(l.evals))
	for i, ev := range l.evals {
		key[i] = ev.Value()
	}
	idx := l.findOrInsertKey(key)
	ks := encodeVec(key)
	l.queues[ks] = append(l.queues[ks], e)
	l.size++
	if idx < l.cursor {
		l.cursor = idx
	}
}

// RemoveMin pops the front entry of the lexicographically lowest
// non-empty key at or after the cursor.
func (l *TieBreakingOpenList) RemoveMin() (Entry, error) {
	if l.size == 0 {
		return Entry{}, ErrEmpty
	}
	for {
		ks := encodeVec(l.keys[l.cursor])
		q := l.queues[ks]
		if len(q) > 0 {
			e := q[0]
			l.queues[ks] = q[1:]
			l.size--
			return e, nil
		}
		l.cursor++
	}
}

// Empty reports whether the list holds zero entries.
func (l *TieBreakingOpenList) Empty() bool { return l.size == 0 }

// Clear discards every entry, key, and queue, and resets the cursor.
func (l *TieBreakingOpenList) Clear() {
	l.keys = nil
	l.queues = make(map[string][]Entry)
	l.cursor = 0
	l.size = 0
}

// IsDeadEnd reports whether every keying evaluator judged the current node
// a dead end (spec.md §4.3).
func (l *TieBreakingOpenList) IsDeadEnd() bool {
	for _, ev := range l.evals {
		if !ev.IsDeadEnd() {
			return false
		}
	}
	return len(l.evals) > 0
}

// DeadEndReliable is the OR of the keying evaluators' reliability.
func (l *TieBreakingOpenList) DeadEndReliable() bool {
	for _, ev := range l.evals {
		if ev.DeadEndReliable() {
			return true
		}
	}
	return false
}

// BoostPreferred is a no-op: a tie-breaking list has no preferred-only
// sub-structure.
func (l *TieBreakingOpenList) BoostPreferred() {}
