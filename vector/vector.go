/*
Package vector implements a generic ordered sequence backed by a single
contiguous buffer.

The buffer is allocated once at construction and reallocated transparently
whenever an insertion overflows it (doubling in size, with a floor of 10).
It is never shrunk. Index-based access is O(1); positional insertion and
removal shift the trailing elements by one slot. Sub-sequence extraction
copies the requested range into an independent container.

Construct with

    s := vector.New[int]()       // empty, default capacity 10
    s.Add(7)                     // append
    s.Insert(0, 5)               // insert before position 0
    v := s.Get(1)                // returns 7
    sub := s.SubList(0, 1)       // independent copy of [5]

The container is not safe for concurrent use. Equals and Hash re-check the
structural-modification counter before returning and raise
seqs.ErrStaleTraversal if the sequence was mutated while they ran.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package vector

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/seqs"
)

// tracer traces with key 'seqs.vector'.
func tracer() tracing.Trace {
	return tracing.Select("seqs.vector")
}

// defaultCapacity is the buffer size for containers constructed without an
// explicit capacity, and the growth floor for undersized buffers.
const defaultCapacity = 10

// Seq is a contiguous-buffer sequence of elements of type T.
// The zero value is not usable; construct with New, WithCapacity,
// FromSequence or FromSlice.
type Seq[T any] struct {
	elems    []T // len(elems) is the buffer capacity; [0,size) is occupied
	size     int
	modCount int // bumped on every structural mutation (insert/remove)
}

var _ seqs.Sequence[int] = (*Seq[int])(nil)

// New creates an empty sequence with the default capacity of 10.
func New[T any]() *Seq[T] {
	return &Seq[T]{elems: make([]T, defaultCapacity)}
}

// WithCapacity creates an empty sequence with an explicit initial capacity.
// A negative capacity raises seqs.InvalidCapacityError.
func WithCapacity[T any](capacity int) *Seq[T] {
	if capacity < 0 {
		panic(seqs.InvalidCapacityError{Capacity: capacity})
	}
	return &Seq[T]{elems: make([]T, capacity)}
}

// FromSequence creates a sequence holding all elements of src, in src's
// order. A nil or empty src yields an empty sequence with default capacity;
// otherwise the buffer is sized to fit src exactly.
func FromSequence[T any](src seqs.Sequence[T]) *Seq[T] {
	if src == nil || src.Size() == 0 {
		return New[T]()
	}
	s := &Seq[T]{elems: make([]T, src.Size())}
	s.AddAll(src)
	return s
}

// FromSlice creates a sequence holding a copy of the given values, in order.
// A nil or empty slice yields an empty sequence with default capacity.
func FromSlice[T any](values []T) *Seq[T] {
	if len(values) == 0 {
		return New[T]()
	}
	s := &Seq[T]{elems: make([]T, len(values))}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Size returns the number of elements currently in the sequence.
func (s *Seq[T]) Size() int {
	return s.size
}

// Values returns the elements in positional order, as a fresh slice.
func (s *Seq[T]) Values() []T {
	values := make([]T, s.size)
	copy(values, s.elems[:s.size])
	return values
}

// Get returns the element at position index. An index outside [0, Size())
// raises seqs.IndexError.
func (s *Seq[T]) Get(index int) T {
	seqs.CheckIndex(index, s.size)
	return s.elems[index]
}

// Set replaces the element at position index and returns the previous
// value. Set is not a structural modification: neither Size nor the
// modification counter change.
func (s *Seq[T]) Set(index int, value T) T {
	seqs.CheckIndex(index, s.size)
	old := s.elems[index]
	s.elems[index] = value
	return old
}

// Add appends a value at the end of the sequence, growing the buffer first
// if it is full. It always returns true.
func (s *Seq[T]) Add(value T) bool {
	if len(s.elems) <= s.size {
		s.grow()
	}
	s.elems[s.size] = value
	s.size++
	s.modCount++
	return true
}

// Insert inserts a value before the element at position index, shifting
// the elements at [index, Size()) one slot to the right. Valid positions
// are [0, Size()); appending is Add's job.
func (s *Seq[T]) Insert(index int, value T) {
	seqs.CheckIndex(index, s.size)
	if s.size == len(s.elems) {
		s.grow()
	}
	copy(s.elems[index+1:s.size+1], s.elems[index:s.size])
	s.elems[index] = value
	s.size++
	s.modCount++
}

// Remove removes the element at position index, shifting the elements at
// [index+1, Size()) one slot to the left, and returns the removed value.
// The vacated trailing slot is cleared so the buffer does not retain the
// element.
func (s *Seq[T]) Remove(index int) T {
	seqs.CheckIndex(index, s.size)
	old := s.elems[index]
	copy(s.elems[index:], s.elems[index+1:s.size])
	s.size--
	var zero T
	s.elems[s.size] = zero
	s.modCount++
	return old
}

// AddAll appends every element of src, in src's order. It returns true if
// at least one element was appended, i.e. false only for a nil or empty
// argument.
func (s *Seq[T]) AddAll(src seqs.Sequence[T]) bool {
	if src == nil {
		return false
	}
	modified := false
	for _, v := range src.Values() {
		s.Add(v)
		modified = true
	}
	return modified
}

// SubList returns a new independent sequence holding a copy of the
// elements at positions [from, to). from == to yields an empty sequence.
// Invalid bounds raise seqs.RangeError.
func (s *Seq[T]) SubList(from, to int) *Seq[T] {
	seqs.CheckRange(from, to, s.size)
	return FromSlice(s.elems[from:to])
}

// grow reallocates the buffer at double its current capacity, with a floor
// of 10 slots, and copies all elements over.
func (s *Seq[T]) grow() {
	newCapacity := len(s.elems) * 2
	if len(s.elems) < defaultCapacity {
		newCapacity = defaultCapacity
	}
	buf := make([]T, newCapacity)
	copy(buf, s.elems)
	s.elems = buf
	tracer().Debugf("vector buffer grown to capacity %d", newCapacity)
}

// Equals reports structural equality: other holds the same number of
// elements, pairwise deeply equal in order. Equals raises
// seqs.ErrStaleTraversal if the sequence is structurally modified while
// the comparison is running.
func (s *Seq[T]) Equals(other *Seq[T]) bool {
	expected := s.modCount
	if s == other {
		return true
	}
	if other == nil {
		return false
	}
	result := s.size == other.size
	if result {
		for i := 0; i < s.size; i++ {
			if !seqs.EqualValues(s.elems[i], other.elems[i]) {
				result = false
				break
			}
		}
	}
	s.checkStale(expected)
	return result
}

// Hash returns an order-sensitive hash over all elements: polynomial
// accumulation with multiplier 31, seeded with 1. Two sequences that are
// Equals hash alike. The same stale-traversal check as in Equals applies.
func (s *Seq[T]) Hash() uint32 {
	expected := s.modCount
	hash := uint32(1)
	for i := 0; i < s.size; i++ {
		hash = 31*hash + seqs.HashValue(s.elems[i])
	}
	s.checkStale(expected)
	return hash
}

// checkStale raises seqs.ErrStaleTraversal if the modification counter no
// longer matches the value captured at the start of a traversal.
func (s *Seq[T]) checkStale(expected int) {
	if s.modCount != expected {
		tracer().Errorf("vector modified during traversal (%d -> %d)", expected, s.modCount)
		panic(seqs.ErrStaleTraversal)
	}
}

// String renders the sequence as a bracketed, comma-separated element
// list, e.g. "[1, 2, 3]". An empty sequence renders as "[]".
func (s *Seq[T]) String() string {
	if s.size == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < s.size; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", s.elems[i])
	}
	sb.WriteByte(']')
	return sb.String()
}
