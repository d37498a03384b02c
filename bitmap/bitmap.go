// Package bitmap holds the per-primary reachability set: one bit for every
// secondary ID.
package bitmap

import (
	"math/bits"

	"github.com/daystram/illegalpairs/id"
)

// cluster is the storage word. Any unsigned width works; wider words mean
// fewer iterations when clearing and scanning.
type cluster = uint64

type word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Bitmap is a fixed set of id.Count bits.
type Bitmap struct {
	set[cluster]
}

func New() *Bitmap {
	b := &Bitmap{}
	b.init()
	return b
}

type set[W word] struct {
	words []W
	shift uint32
	mask  uint32
}

func newSet[W word]() *set[W] {
	s := &set[W]{}
	s.init()
	return s
}

func (s *set[W]) init() {
	width := uint32(bits.OnesCount64(uint64(^W(0))))
	s.shift = uint32(bits.TrailingZeros32(width))
	s.mask = width - 1
	s.words = make([]W, id.Count/width)
}

// Clear unsets every bit.
func (s *set[W]) Clear() {
	clear(s.words)
}

// Set marks i. Setting an already set bit changes nothing.
func (s *set[W]) Set(i id.ID) {
	s.words[uint32(i)>>s.shift] |= 1 << (uint32(i) & s.mask)
}

func (s *set[W]) Test(i id.ID) bool {
	return s.words[uint32(i)>>s.shift]&(1<<(uint32(i)&s.mask)) != 0
}

// Count returns the number of set bits.
func (s *set[W]) Count() int {
	var n int
	for _, w := range s.words {
		n += bits.OnesCount64(uint64(w))
	}
	return n
}

// EachClear calls fn for every unset index in ascending order until fn
// returns false.
func (s *set[W]) EachClear(fn func(id.ID) bool) {
	for wi, w := range s.words {
		if !s.each(uint32(wi), ^w, fn) {
			return
		}
	}
}

// EachSet calls fn for every set index in ascending order until fn returns
// false.
func (s *set[W]) EachSet(fn func(id.ID) bool) {
	for wi, w := range s.words {
		if !s.each(uint32(wi), w, fn) {
			return
		}
	}
}

func (s *set[W]) each(wi uint32, w W, fn func(id.ID) bool) bool {
	base := wi << s.shift
	for v := uint64(w); v != 0; v &= v - 1 {
		if !fn(id.ID(base | uint32(bits.TrailingZeros64(v)))) {
			return false
		}
	}
	return true
}
