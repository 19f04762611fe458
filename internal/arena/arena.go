package arena

import (
	"github.com/gostonefire/memhashmap/internal/conf"
)

// node - One slot in the arena, holding a value and the index of its successor in a chain
type node[T any] struct {
	value T
	next  int32
	inUse bool
}

// Arena - Stores values in one growable slice and addresses them by int32 index. Each slot also carries
// the index of the next slot in whatever chain it belongs to, conf.NoEntry ends a chain.
// Freed slots are kept on a free list and handed out again by Alloc.
type Arena[T any] struct {
	nodes []node[T]
	free  []int32
	live  int
}

// New - Returns a pointer to a new Arena with room for capacity values before it has to grow
func New[T any](capacity int) *Arena[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Arena[T]{nodes: make([]node[T], 0, capacity)}
}

// Alloc - Stores value in a free slot (or a new one) and returns its index. The slot starts out
// unlinked, i.e. with conf.NoEntry as successor.
func (A *Arena[T]) Alloc(value T) (index int32) {
	if n := len(A.free); n > 0 {
		index = A.free[n-1]
		A.free = A.free[:n-1]
		A.nodes[index] = node[T]{value: value, next: conf.NoEntry, inUse: true}
	} else {
		index = int32(len(A.nodes))
		A.nodes = append(A.nodes, node[T]{value: value, next: conf.NoEntry, inUse: true})
	}
	A.live++

	return
}

// Free - Releases the slot at index. The value is zeroed so that anything it references can be
// garbage collected. Freeing a slot that is not in use does nothing.
func (A *Arena[T]) Free(index int32) {
	if !A.InUse(index) {
		return
	}

	A.nodes[index] = node[T]{next: conf.NoEntry}
	A.free = append(A.free, index)
	A.live--
}

// InUse - Returns true if index addresses a slot that holds a live value
func (A *Arena[T]) InUse(index int32) bool {
	return index >= 0 && int(index) < len(A.nodes) && A.nodes[index].inUse
}

// Get - Returns a pointer to the value at index. The pointer is only valid until the next Alloc.
func (A *Arena[T]) Get(index int32) *T {
	return &A.nodes[index].value
}

// Next - Returns the successor index of the slot at index
func (A *Arena[T]) Next(index int32) int32 {
	return A.nodes[index].next
}

// SetNext - Sets the successor index of the slot at index
func (A *Arena[T]) SetNext(index, next int32) {
	A.nodes[index].next = next
}

// Len - Returns the number of live values
func (A *Arena[T]) Len() int {
	return A.live
}

// Slots - Returns the number of slots ever allocated, live or free. Valid indexes are 0 to Slots() - 1.
func (A *Arena[T]) Slots() int {
	return len(A.nodes)
}

// Reset - Releases every slot and the backing storage
func (A *Arena[T]) Reset() {
	A.nodes = nil
	A.free = nil
	A.live = 0
}
