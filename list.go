// Package list implements a generic doubly-linked sequence with pluggable
// node allocation.
//
// The list is circular and sentinel-terminated: a permanent boundary node
// owned by the container sits both after the last element and before the
// first, so every splice and unlink is a plain link rewrite with no head or
// tail special case. Elements are held in heap-allocated nodes created and
// destroyed through an Allocator, which callers may swap out for a pooled or
// arena-backed implementation.
//
// Lists are not safe for concurrent use; callers sharing one across
// goroutines must serialize access themselves.
package list

// Node holds one element of a list plus its links to adjacent nodes. Nodes
// are created and destroyed by the list's Allocator; apart from Value their
// contents are managed entirely by the list.
type Node[T any] struct {
	Value T

	next, prev *Node[T]
}

// List is a doubly-linked sequence of T. The zero value is an empty list
// using the default heap allocator, ready to use.
//
// The list owns every node reachable from it. Removing a node (Erase, the
// pops, Clear) hands it back to the allocator; iterators referring to it are
// invalid from that point on.
type List[T any] struct {
	root  Node[T] // sentinel; only its links are used, root.Value stays zero
	alloc Allocator[T]
	size  int
}

// New returns an empty list backed by the default heap allocator.
func New[T any]() *List[T] {
	return new(List[T]).Init()
}

// NewWithAllocator returns an empty list whose nodes are managed by alloc.
func NewWithAllocator[T any](alloc Allocator[T]) *List[T] {
	l := new(List[T]).Init()
	l.alloc = alloc
	return l
}

// Init initializes or clears list l. Nodes held before the call are not
// returned to the allocator; use Clear for that.
func (l *List[T]) Init() *List[T] {
	l.root.next = &l.root
	l.root.prev = &l.root
	l.size = 0
	if l.alloc == nil {
		l.alloc = heapAllocator[T]{}
	}
	return l
}

func (l *List[T]) lazyInit() {
	if l.root.next == nil {
		l.Init()
	}
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int { return l.size }

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool { return l.size == 0 }

// Front returns a pointer to the first element's value. Calling Front on an
// empty list is invalid usage; the returned pointer then refers to the
// sentinel's zero payload and must not be used.
func (l *List[T]) Front() *T {
	l.lazyInit()
	return &l.root.next.Value
}

// Back returns a pointer to the last element's value. Calling Back on an
// empty list is invalid usage, as with Front.
func (l *List[T]) Back() *T {
	l.lazyInit()
	return &l.root.prev.Value
}

// insertNode splices n directly before at. This is the sole insertion
// primitive; push, insert and sort relocation all land here.
func (l *List[T]) insertNode(at, n *Node[T]) {
	n.next = at
	n.prev = at.prev
	at.prev.next = n
	at.prev = n
}

// detach unlinks n from its neighbors without touching n's own links.
func (l *List[T]) detach(n *Node[T]) {
	n.prev.next = n.next
	n.next.prev = n.prev
}

// remove detaches n, returns its value to the caller and the node to the
// allocator. n's links are nilled; a freed node must not lead back into the
// chain.
func (l *List[T]) remove(n *Node[T]) T {
	l.detach(n)
	v := n.Value
	n.next = nil
	n.prev = nil
	l.alloc.Free(n)
	l.size--
	return v
}

// PushFront inserts v at the front of the list. On allocation failure the
// list is left exactly as it was.
func (l *List[T]) PushFront(v T) error {
	l.lazyInit()
	n, err := l.alloc.NewNode(v)
	if err != nil {
		return err
	}
	l.insertNode(l.root.next, n)
	l.size++
	return nil
}

// PushBack inserts v at the back of the list. On allocation failure the list
// is left exactly as it was.
func (l *List[T]) PushBack(v T) error {
	l.lazyInit()
	n, err := l.alloc.NewNode(v)
	if err != nil {
		return err
	}
	l.insertNode(&l.root, n)
	l.size++
	return nil
}

// Insert places v directly before at and returns an iterator to the new
// element. at must be an iterator of this list; End is allowed and appends.
// On allocation failure the list is left exactly as it was.
func (l *List[T]) Insert(at Iterator[T], v T) (Iterator[T], error) {
	l.lazyInit()
	n, err := l.alloc.NewNode(v)
	if err != nil {
		return Iterator[T]{}, err
	}
	l.insertNode(at.n, n)
	l.size++
	return Iterator[T]{n: n}, nil
}

// PopFront removes the first element and returns its value. It panics if the
// list is empty.
func (l *List[T]) PopFront() T {
	if l.size == 0 {
		panic("list: PopFront on empty list")
	}
	return l.remove(l.root.next)
}

// PopBack removes the last element and returns its value. It panics if the
// list is empty.
func (l *List[T]) PopBack() T {
	if l.size == 0 {
		panic("list: PopBack on empty list")
	}
	return l.remove(l.root.prev)
}

// Erase removes the element at and returns an iterator to the element that
// followed it (End if it was the last). at is invalid afterward. It panics
// if at is End or the zero Iterator.
func (l *List[T]) Erase(at Iterator[T]) Iterator[T] {
	if at.n == nil || at.n == &l.root {
		panic("list: Erase of End or zero iterator")
	}
	next := at.n.next
	l.remove(at.n)
	return Iterator[T]{n: next}
}

// Clear removes all elements, returning every node to the allocator.
func (l *List[T]) Clear() {
	l.lazyInit()
	n := l.root.next
	for n != &l.root {
		next := n.next
		n.next = nil
		n.prev = nil
		l.alloc.Free(n)
		n = next
	}
	l.root.next = &l.root
	l.root.prev = &l.root
	l.size = 0
}

// Clone returns a new list containing a copy of every element, sharing l's
// allocator but no nodes. A failed allocation mid-copy returns the nodes
// built so far to the allocator and reports the error.
func (l *List[T]) Clone() (*List[T], error) {
	l.lazyInit()
	c := NewWithAllocator[T](l.alloc)
	if err := c.Merge(l); err != nil {
		c.Clear()
		return nil, err
	}
	return c, nil
}

// CopyFrom replaces l's contents with a copy of other's elements, allocated
// through l's own allocator. Copying a list into itself is a no-op.
func (l *List[T]) CopyFrom(other *List[T]) error {
	if l == other {
		return nil
	}
	l.Clear()
	return l.Merge(other)
}

// MoveFrom replaces l's contents with other's by transferring the node chain
// in O(1); other is left empty. l adopts other's allocator along with the
// nodes it created. Moving a list into itself is a no-op.
func (l *List[T]) MoveFrom(other *List[T]) {
	if l == other {
		return
	}
	l.Clear()
	other.lazyInit()
	l.alloc = other.alloc
	if other.size == 0 {
		return
	}
	l.root.next = other.root.next
	l.root.prev = other.root.prev
	l.root.next.prev = &l.root
	l.root.prev.next = &l.root
	l.size = other.size

	other.root.next = &other.root
	other.root.prev = &other.root
	other.size = 0
}

// Merge appends a copy of every element of other to the end of l, leaving
// other untouched. Merging a list into itself is a no-op.
//
// Merge is not transactional: if an allocation fails partway, the elements
// already appended stay and the error is returned.
func (l *List[T]) Merge(other *List[T]) error {
	if l == other {
		return nil
	}
	l.lazyInit()
	other.lazyInit()
	for n := other.root.next; n != &other.root; n = n.next {
		nn, err := l.alloc.NewNode(n.Value)
		if err != nil {
			return err
		}
		l.insertNode(&l.root, nn)
		l.size++
	}
	return nil
}

// Splice moves every element of other onto the end of l in O(1), leaving
// other empty. No elements are copied and no nodes are allocated, so
// iterators into other keep pointing at the same elements, now owned by l.
// Both lists must use the same allocator. Splicing a list into itself is a
// no-op.
func (l *List[T]) Splice(other *List[T]) {
	if l == other {
		return
	}
	l.lazyInit()
	other.lazyInit()
	if other.size == 0 {
		return
	}
	l.root.prev.next = other.root.next
	other.root.next.prev = l.root.prev
	l.root.prev = other.root.prev
	l.root.prev.next = &l.root
	l.size += other.size

	other.root.next = &other.root
	other.root.prev = &other.root
	other.size = 0
}

// Reverse flips the element order in place in O(n) by swapping every node's
// link pair, the sentinel's included. No nodes move and none are allocated,
// so all iterators stay valid.
func (l *List[T]) Reverse() {
	l.lazyInit()
	n := &l.root
	for {
		n.next, n.prev = n.prev, n.next
		n = n.prev // the pre-swap successor
		if n == &l.root {
			return
		}
	}
}

// Swap exchanges the contents, sizes and allocators of l and other in O(1).
// Swapping a list with itself is a no-op.
func (l *List[T]) Swap(other *List[T]) {
	if l == other {
		return
	}
	l.lazyInit()
	other.lazyInit()
	l.root.next, other.root.next = other.root.next, l.root.next
	l.root.prev, other.root.prev = other.root.prev, l.root.prev
	l.size, other.size = other.size, l.size
	l.alloc, other.alloc = other.alloc, l.alloc
	l.reanchor()
	other.reanchor()
}

// reanchor points the boundary nodes' outer links back at l's own sentinel
// after a wholesale link exchange.
func (l *List[T]) reanchor() {
	if l.size == 0 {
		l.root.next = &l.root
		l.root.prev = &l.root
		return
	}
	l.root.next.prev = &l.root
	l.root.prev.next = &l.root
}
