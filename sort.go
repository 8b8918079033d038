package list

import (
	"golang.org/x/exp/constraints"
)

// SortFunc reorders the list in place so that less(a, b) reports false for
// every element b preceding a. It is an insertion sort by node relocation:
// each element is unlinked and respliced at its position in the sorted
// prefix, so no nodes are allocated and only links are rewritten. O(n²)
// comparisons worst case.
//
// The sort is stable: elements that compare equal keep their relative order.
// less must be a strict weak ordering (strictly-less, not less-or-equal).
func (l *List[T]) SortFunc(less func(a, b T) bool) {
	if l.size < 2 {
		return
	}
	for n := l.root.next.next; n != &l.root; {
		next := n.next
		// Scan the sorted prefix backward; stop at the first element n is
		// not strictly less than, which keeps equal elements in order.
		at := n.prev
		for at != &l.root && less(n.Value, at.Value) {
			at = at.prev
		}
		if at != n.prev {
			l.detach(n)
			l.insertNode(at.next, n)
		}
		n = next
	}
}

// Sort reorders l in place, ascending order if ascending is true and
// descending otherwise. It is SortFunc with the type's natural ordering; the
// same stability and complexity apply.
func Sort[T constraints.Ordered](l *List[T], ascending bool) {
	if ascending {
		l.SortFunc(func(a, b T) bool { return a < b })
	} else {
		l.SortFunc(func(a, b T) bool { return a > b })
	}
}
