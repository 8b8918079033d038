package list

// Iterator is a cursor over a list's node chain. It is a small value type:
// copy it freely and compare it with == (the usual loop reads
// `for it := l.Begin(); it != l.End(); it = it.Next()`).
//
// An iterator stays valid for as long as its node belongs to some list;
// erasing the node invalidates it, and the next hop through a stale iterator
// panics rather than walking freed nodes. Mutations elsewhere in the list,
// including Reverse and Splice, do not invalidate it.
type Iterator[T any] struct {
	n *Node[T]
}

// Begin returns an iterator to the first element, or End if the list is
// empty.
func (l *List[T]) Begin() Iterator[T] {
	l.lazyInit()
	return Iterator[T]{n: l.root.next}
}

// End returns the iterator one past the last element. It does not refer to
// an element and must not be dereferenced.
func (l *List[T]) End() Iterator[T] {
	l.lazyInit()
	return Iterator[T]{n: &l.root}
}

// Next returns an iterator one element forward. Advancing past End wraps to
// Begin, following the circular chain.
func (it Iterator[T]) Next() Iterator[T] { return Iterator[T]{n: it.n.next} }

// Prev returns an iterator one element backward. Stepping back from Begin
// lands on End.
func (it Iterator[T]) Prev() Iterator[T] { return Iterator[T]{n: it.n.prev} }

// Value returns the element the iterator refers to.
func (it Iterator[T]) Value() T { return it.n.Value }

// Ptr returns a pointer to the element, valid until the element is erased.
func (it Iterator[T]) Ptr() *T { return &it.n.Value }

// Set replaces the element the iterator refers to.
func (it Iterator[T]) Set(v T) { it.n.Value = v }

// ReverseIterator walks the list back to front. It follows the same validity
// rules as Iterator.
type ReverseIterator[T any] struct {
	n *Node[T]
}

// RBegin returns a reverse iterator to the last element, or REnd if the list
// is empty.
func (l *List[T]) RBegin() ReverseIterator[T] {
	l.lazyInit()
	return ReverseIterator[T]{n: l.root.prev}
}

// REnd returns the reverse iterator one past the first element. It does not
// refer to an element and must not be dereferenced.
func (l *List[T]) REnd() ReverseIterator[T] {
	l.lazyInit()
	return ReverseIterator[T]{n: &l.root}
}

// Next returns a reverse iterator one element backward in list order.
func (it ReverseIterator[T]) Next() ReverseIterator[T] { return ReverseIterator[T]{n: it.n.prev} }

// Prev returns a reverse iterator one element forward in list order.
func (it ReverseIterator[T]) Prev() ReverseIterator[T] { return ReverseIterator[T]{n: it.n.next} }

// Value returns the element the reverse iterator refers to.
func (it ReverseIterator[T]) Value() T { return it.n.Value }

// Ptr returns a pointer to the element, valid until the element is erased.
func (it ReverseIterator[T]) Ptr() *T { return &it.n.Value }

// Set replaces the element the reverse iterator refers to.
func (it ReverseIterator[T]) Set(v T) { it.n.Value = v }
