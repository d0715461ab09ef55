package containers

import (
	"fmt"
	"math/bits"
)

// BitSet is a fixed-universe set of small non-negative integers.
// The universe size is chosen at construction; positions outside
// [0, Size()) are a caller bug and panic.
type BitSet struct {
	words []uint64
	size  int
}

// NewBitSet creates a set over the universe [0, size).
func NewBitSet(size int) *BitSet {
	if size < 0 {
		size = 0
	}
	return &BitSet{
		words: make([]uint64, (size+63)/64),
		size:  size,
	}
}

func (b *BitSet) check(i int) {
	if i < 0 || i >= b.size {
		panic(fmt.Sprintf("containers: bit %d out of range [0, %d)", i, b.size))
	}
}

// Set marks position i as a member.
func (b *BitSet) Set(i int) {
	b.check(i)
	b.words[i/64] |= 1 << (i % 64)
}

// Clear removes position i from the set.
func (b *BitSet) Clear(i int) {
	b.check(i)
	b.words[i/64] &^= 1 << (i % 64)
}

// Test reports whether position i is a member.
func (b *BitSet) Test(i int) bool {
	b.check(i)
	return b.words[i/64]&(1<<(i%64)) != 0
}

// Count returns the number of members.
func (b *BitSet) Count() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Size returns the universe size.
func (b *BitSet) Size() int { return b.size }
