// SPDX-License-Identifier: MIT
package openlist

import "github.com/arbecker/fdplan/evaluator"

// ScalarBucketOpenList buckets entries by the integer key of a single
// scalar evaluator; each bucket is FIFO (spec.md §4.3). Distinct keys are
// kept in a sorted slice, and a monotone cursor indexes into THAT slice
// (not the raw key space) — so a sentinel key such as task.QuiteALot costs
// one extra slice slot, never a scan over the keys between the previous
// minimum and the sentinel. The cursor is re-scanned forward on every
// RemoveMin rather than cached across a Clear (the resolved tie-breaking-
// boundary Open Question, SPEC_FULL.md §5 item 1).
type ScalarBucketOpenList struct {
	eval          evaluator.Evaluator
	onlyPreferred bool

	keys    []int
	buckets map[int][]Entry
	cursor  int
	size    int
}

// NewScalarBucketOpenList builds a bucket list keyed by eval. When
// onlyPreferred is true, Insert silently drops entries not marked
// preferred (spec.md §4.3: "inserted only if only_preferred is false or
// the current call was marked preferred").
func NewScalarBucketOpenList(eval evaluator.Evaluator, onlyPreferred bool) *ScalarBucketOpenList {
	return &ScalarBucketOpenList{
		eval:          eval,
		onlyPreferred: onlyPreferred,
		buckets:       make(map[int][]Entry),
	}
}

// findOrInsertKey returns the sorted-slice index of key, inserting it if
// not already present.
func (l *ScalarBucketOpenList) findOrInsertKey(key int) int {
	i := 0
	for ; i < len(l.keys); i++ {
		if l.keys[i] == key {
			return i
		}
		if key < l.keys[i] {
			break
		}
	}
	l.keys = append(l.keys, 0)
	copy(l.keys[i+1:], l.keys[i:])
	l.keys[i] = key
	return i
}

// Insert adds e to the bucket keyed by the evaluator's current value.
func (l *ScalarBucketOpenList) Insert(e Entry) {
	if l.onlyPreferred && !e.Preferred {
		return
	}
	key := l.eval.Value()
	idx := l.findOrInsertKey(key)
	l.buckets[key] = append(l.buckets[key], e)
	l.size++
	if idx < l.cursor {
		l.cursor = idx
	}
}

// RemoveMin pops the front entry of the lowest non-empty bucket at or
// after the cursor, advancing the cursor past exhausted keys.
func (l *ScalarBucketOpenList) RemoveMin() (Entry, error) {
	if l.size == 0 {
		return Entry{}, ErrEmpty
	}
	for {
		key := l.keys[l.cursor]
		bucket := l.buckets[key]
		if len(bucket) > 0 {
			e := bucket[0]
			l.buckets[key] = bucket[1:]
			l.size--
			return e, nil
		}
		l.cursor++
	}
}

// Empty reports whether the list holds zero entries.
func (l *ScalarBucketOpenList) Empty() bool { return l.size == 0 }

// Clear discards every bucket and key and resets the cursor to zero.
func (l *ScalarBucketOpenList) Clear() {
	l.keys = nil
	l.buckets = make(map[int][]Entry)
	l.cursor = 0
	l.size = 0
}

// IsDeadEnd defers to the keying evaluator.
func (l *ScalarBucketOpenList) IsDeadEnd() bool { return l.eval.IsDeadEnd() }

// DeadEndReliable defers to the keying evaluator.
func (l *ScalarBucketOpenList) DeadEndReliable() bool { return l.eval.DeadEndReliable() }

// BoostPreferred is a no-op: a scalar bucket list has no preferred-only
// sub-structure to favour.
func (l *ScalarBucketOpenList) BoostPreferred() {}
