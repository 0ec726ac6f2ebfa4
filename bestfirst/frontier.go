package bestfirst

// better reports whether score a is strictly preferable to b under order.
func better[C Number](order Order, a, b C) bool {
	if order == Maximize {
		return a > b
	}

	return a < b
}

// entry is one frontier element.
//
//   - g:   the score used for dominance (BestKnown).
//   - f:   the priority used for ordering (g for node-scored, g+h for A*).
//   - seq: insertion counter; breaks ties in FIFO order.
type entry[N comparable, C Number] struct {
	node N
	g    C
	f    C
	seq  uint64
}

// frontier is a binary heap of entries implementing heap.Interface.
// Duplicates are allowed ("lazy decrease-key"): a node pushed again with a
// better g leaves its old entry in place, which is skipped when popped.
type frontier[N comparable, C Number] struct {
	order   Order
	entries []entry[N, C]
}

// Len returns the number of entries in the heap.
func (q *frontier[N, C]) Len() int { return len(q.entries) }

// Less orders by f under q.order, then by insertion sequence.
func (q *frontier[N, C]) Less(i, j int) bool {
	a, b := &q.entries[i], &q.entries[j]
	if a.f == b.f {
		return a.seq < b.seq
	}

	return better(q.order, a.f, b.f)
}

// Swap swaps two entries in the heap.
func (q *frontier[N, C]) Swap(i, j int) { q.entries[i], q.entries[j] = q.entries[j], q.entries[i] }

// Push adds x, which must be an entry[N, C]. Called by heap.Push.
func (q *frontier[N, C]) Push(x any) { q.entries = append(q.entries, x.(entry[N, C])) }

// Pop removes and returns the last entry. Called by heap.Pop.
func (q *frontier[N, C]) Pop() any {
	old := q.entries
	n := len(old)
	e := old[n-1]
	var zero entry[N, C]
	old[n-1] = zero
	q.entries = old[:n-1]

	return e
}
