// SPDX-License-Identifier: MIT
package relaxheuristic

// bucketQueue is the same monotone integer-priority structure (last in,
// first out within one priority bucket) that
// cgheuristic uses for its per-variable Dijkstra, re-expressed here for the
// h_add bucket-queue propagation (spec.md §4.6 step 3): a slice of buckets
// indexed by priority, since h_add never decreases below the priority last
// popped.
type bucketQueue struct {
	buckets [][]int
	cursor  int
}

func newBucketQueue() *bucketQueue { return &bucketQueue{} }

func (q *bucketQueue) push(priority, value int) {
	for len(q.buckets) <= priority {
		q.buckets = append(q.buckets, nil)
	}
	q.buckets[priority] = append(q.buckets[priority], value)
}

func (q *bucketQueue) pop() (priority, value int, ok bool) {
	for q.cursor < len(q.buckets) {
		if len(q.buckets[q.cursor]) == 0 {
			q.cursor++
			continue
		}
		b := q.buckets[q.cursor]
		value = b[len(b)-1]
		q.buckets[q.cursor] = b[:len(b)-1]
		return q.cursor, value, true
	}
	return 0, 0, false
}
