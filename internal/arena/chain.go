package arena

import (
	"github.com/gostonefire/memhashmap/internal/conf"
)

// Chain - Is used to iterate over the slots of one chain, head to tail, one by one.
type Chain[T any] struct {
	arena *Arena[T]
	index int32
}

// NewChain - Returns a pointer to a new Chain starting at head
//   - arena is the arena that holds the chain
//   - head is the index of the first slot, conf.NoEntry gives an empty chain
func NewChain[T any](arena *Arena[T], head int32) *Chain[T] {
	return &Chain[T]{
		arena: arena,
		index: head,
	}
}

// HasNext - Returns true if there are more slots to be fetched from a call to Next.
func (C *Chain[T]) HasNext() bool {
	return C.index != conf.NoEntry
}

// Next - Returns the index of the next slot and a pointer to its value.
// Calling Next when HasNext returns false gives conf.NoEntry and a nil value.
func (C *Chain[T]) Next() (index int32, value *T) {
	if C.index == conf.NoEntry {
		return conf.NoEntry, nil
	}

	index = C.index
	value = C.arena.Get(index)
	C.index = C.arena.Next(index)

	return
}
