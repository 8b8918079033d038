package list

import (
	"errors"
	"sync"
)

// ErrAllocatorExhausted is returned by bounded allocators when no node can
// be provided.
var ErrAllocatorExhausted = errors.New("list: allocator exhausted")

// Allocator is the node memory source of a List. List never frees a node it
// did not obtain from its allocator, and never hands the same node to Free
// twice.
//
// NewNode either returns a fully constructed node holding v, or an error and
// no node; it must not retain anything on failure. Free takes back a node
// the list is done with; its links are already nil.
type Allocator[T any] interface {
	NewNode(v T) (*Node[T], error)
	Free(n *Node[T])
}

// heapAllocator is the default: plain heap nodes, reclaimed by the garbage
// collector.
type heapAllocator[T any] struct{}

var _ Allocator[int] = heapAllocator[int]{}

func (heapAllocator[T]) NewNode(v T) (*Node[T], error) { return &Node[T]{Value: v}, nil }

func (heapAllocator[T]) Free(*Node[T]) {}

// PoolAllocator recycles nodes through a sync.Pool, trading allocation churn
// for the usual pool caveat: a freed node may be handed out again, so stale
// iterators can observe a recycled element.
type PoolAllocator[T any] struct {
	pool sync.Pool
}

var _ Allocator[int] = &PoolAllocator[int]{}

// NewPoolAllocator returns an empty PoolAllocator.
func NewPoolAllocator[T any]() *PoolAllocator[T] {
	return &PoolAllocator[T]{}
}

func (a *PoolAllocator[T]) NewNode(v T) (*Node[T], error) {
	n, _ := a.pool.Get().(*Node[T])
	if n == nil {
		n = new(Node[T])
	}
	n.Value = v
	return n, nil
}

func (a *PoolAllocator[T]) Free(n *Node[T]) {
	var zero T
	n.Value = zero
	a.pool.Put(n)
}

// ArenaAllocator serves nodes out of a fixed slab allocated up front. When
// every slot is live, NewNode fails with ErrAllocatorExhausted. Freed slots
// go on an intrusive free list and are reused in LIFO order.
type ArenaAllocator[T any] struct {
	slab []Node[T]
	free *Node[T]
	live int
}

var _ Allocator[int] = &ArenaAllocator[int]{}

// NewArenaAllocator returns an arena with room for capacity nodes.
func NewArenaAllocator[T any](capacity int) *ArenaAllocator[T] {
	a := &ArenaAllocator[T]{slab: make([]Node[T], capacity)}
	for i := range a.slab {
		a.slab[i].next = a.free
		a.free = &a.slab[i]
	}
	return a
}

func (a *ArenaAllocator[T]) NewNode(v T) (*Node[T], error) {
	if a.free == nil {
		return nil, ErrAllocatorExhausted
	}
	n := a.free
	a.free = n.next
	n.next = nil
	n.Value = v
	a.live++
	return n, nil
}

func (a *ArenaAllocator[T]) Free(n *Node[T]) {
	var zero T
	n.Value = zero
	n.next = a.free
	a.free = n
	a.live--
}

// Live returns the number of nodes currently handed out.
func (a *ArenaAllocator[T]) Live() int { return a.live }

// Cap returns the arena's fixed capacity.
func (a *ArenaAllocator[T]) Cap() int { return len(a.slab) }
