/*
Package dlist implements a generic ordered sequence backed by a chain of
doubly-linked nodes.

The container holds references to the first and last node of the chain.
Each node owns the forward link to its successor; the backward link is a
navigational reference only. Insertion at either end is O(1); positional
access traverses from the head and is O(n). Sub-sequence extraction copies
the requested range into an independent container.

Construct with

    l := dlist.New[int]()
    l.AddFirst(2)
    l.AddFirst(1)                // l is now [1, 2]
    l.AddLast(3)                 // l is now [1, 2, 3]
    sub := l.SubList(1, 3)       // independent copy of [2, 3]

The container is not safe for concurrent use. Equals and Hash re-check the
structural-modification counter before returning and raise
seqs.ErrStaleTraversal if the sequence was mutated while they ran.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dlist

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/seqs"
)

// tracer traces with key 'seqs.dlist'.
func tracer() tracing.Trace {
	return tracing.Select("seqs.dlist")
}

// node is one link of the chain. next is the owning reference to the
// successor, prev is a non-owning back-reference.
type node[T any] struct {
	value T
	next  *node[T]
	prev  *node[T]
}

// Seq is a doubly-linked node sequence of elements of type T.
// The zero value is an empty sequence ready for use; New is provided for
// symmetry with package vector.
type Seq[T any] struct {
	head     *node[T]
	tail     *node[T]
	size     int
	modCount int // bumped on every structural mutation (insert/remove)
}

var _ seqs.Sequence[int] = (*Seq[int])(nil)

// New creates an empty sequence.
func New[T any]() *Seq[T] {
	return &Seq[T]{}
}

// FromSequence creates a sequence holding all elements of src, in src's
// order. A nil or empty src yields an empty sequence.
func FromSequence[T any](src seqs.Sequence[T]) *Seq[T] {
	l := New[T]()
	if src != nil && src.Size() > 0 {
		l.AddAll(src)
	}
	return l
}

// FromSlice creates a sequence holding a copy of the given values, in order.
func FromSlice[T any](values []T) *Seq[T] {
	l := New[T]()
	for _, v := range values {
		l.AddLast(v)
	}
	return l
}

// Size returns the number of elements currently in the sequence.
func (l *Seq[T]) Size() int {
	return l.size
}

// Values returns the elements in head-to-tail order, as a fresh slice.
func (l *Seq[T]) Values() []T {
	values := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		values = append(values, n.value)
	}
	return values
}

// AddFirst links a new node holding the value before the current head.
// If the sequence was empty, the node becomes head and tail at once.
func (l *Seq[T]) AddFirst(value T) {
	oldHead := l.head
	n := &node[T]{value: value, next: oldHead}
	l.head = n
	if oldHead == nil {
		l.tail = n
	} else {
		oldHead.prev = n
	}
	l.size++
	l.modCount++
}

// AddLast links a new node holding the value after the current tail.
// If the sequence was empty, the node becomes head and tail at once.
func (l *Seq[T]) AddLast(value T) {
	oldTail := l.tail
	n := &node[T]{value: value, prev: oldTail}
	l.tail = n
	if oldTail == nil {
		l.head = n
	} else {
		oldTail.next = n
	}
	l.size++
	l.modCount++
}

// Add appends a value at the end of the sequence and returns true.
// It is equivalent to AddLast.
func (l *Seq[T]) Add(value T) bool {
	l.AddLast(value)
	return true
}

// nodeAt traverses index steps from the head. The index must already have
// been validated.
func (l *Seq[T]) nodeAt(index int) *node[T] {
	n := l.head
	for i := 0; i < index; i++ {
		n = n.next
	}
	return n
}

// Insert links a new node holding the value immediately before the node
// currently at position index, updating both neighbors' links. Valid
// positions are [0, Size()); appending is Add's job.
func (l *Seq[T]) Insert(index int, value T) {
	seqs.CheckIndex(index, l.size)
	succ := l.nodeAt(index)
	pred := succ.prev
	n := &node[T]{value: value, prev: pred, next: succ}
	succ.prev = n
	if pred == nil {
		l.head = n
	} else {
		pred.next = n
	}
	l.size++
	l.modCount++
}

// Get returns the element at position index. An index outside [0, Size())
// raises seqs.IndexError.
func (l *Seq[T]) Get(index int) T {
	seqs.CheckIndex(index, l.size)
	return l.nodeAt(index).value
}

// Set replaces the element at position index in place and returns the
// previous value. Set is not a structural modification: neither Size nor
// the modification counter change.
func (l *Seq[T]) Set(index int, value T) T {
	seqs.CheckIndex(index, l.size)
	n := l.nodeAt(index)
	old := n.value
	n.value = value
	return old
}

// Remove unlinks the node at position index by connecting its neighbors
// directly, and returns the removed value.
func (l *Seq[T]) Remove(index int) T {
	seqs.CheckIndex(index, l.size)
	n := l.nodeAt(index)
	old := n.value
	if n.prev == nil {
		l.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		l.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	n.next, n.prev = nil, nil // release the unlinked node's references
	l.size--
	l.modCount++
	return old
}

// AddAll appends every element of src, in src's order. It returns true if
// at least one element was appended, i.e. false only for a nil or empty
// argument.
func (l *Seq[T]) AddAll(src seqs.Sequence[T]) bool {
	if src == nil {
		return false
	}
	modified := false
	for _, v := range src.Values() {
		l.Add(v)
		modified = true
	}
	return modified
}

// SubList returns a new independent sequence holding a copy of the
// elements at positions [from, to). The node chain is not shared with the
// source: mutating the returned sequence leaves the source untouched.
// from == to yields an empty sequence. Invalid bounds raise
// seqs.RangeError.
func (l *Seq[T]) SubList(from, to int) *Seq[T] {
	seqs.CheckRange(from, to, l.size)
	sub := New[T]()
	n := l.nodeAt(from)
	for i := from; i < to; i++ {
		sub.AddLast(n.value)
		n = n.next
	}
	tracer().Debugf("extracted sublist [%d, %d) of %d nodes", from, to, sub.size)
	return sub
}

// Equals reports structural equality: other holds the same number of
// elements, pairwise deeply equal in head-to-tail order. Inequality is
// accumulated over a full parallel traversal of both chains; the loop does
// not exit early on the first mismatch, only when the other chain turns
// out to be shorter. Equals raises seqs.ErrStaleTraversal if the sequence
// is structurally modified while the comparison is running.
func (l *Seq[T]) Equals(other *Seq[T]) bool {
	expected := l.modCount
	if l == other {
		return true
	}
	if other == nil {
		return false
	}
	result := l.size == other.size
	a, b := l.head, other.head
	for a != nil {
		if b == nil {
			return false
		}
		result = result && seqs.EqualValues(a.value, b.value)
		a = a.next
		b = b.next
	}
	l.checkStale(expected)
	return result
}

// Hash returns a hash over all elements, seeded with a hash of the size;
// each node's value hash is summed across a head-to-tail traversal. The
// same stale-traversal check as in Equals applies.
func (l *Seq[T]) Hash() uint32 {
	expected := l.modCount
	hash := 31 + uint32(l.size)
	for n := l.head; n != nil; n = n.next {
		hash += 31 + seqs.HashValue(n.value)
	}
	l.checkStale(expected)
	return hash
}

// checkStale raises seqs.ErrStaleTraversal if the modification counter no
// longer matches the value captured at the start of a traversal.
func (l *Seq[T]) checkStale(expected int) {
	if l.modCount != expected {
		tracer().Errorf("dlist modified during traversal (%d -> %d)", expected, l.modCount)
		panic(seqs.ErrStaleTraversal)
	}
}

// String renders the sequence as a bracketed, comma-separated element
// list, e.g. "[1, 2, 3]", built by head-to-tail traversal. An empty
// sequence renders as "[]".
func (l *Seq[T]) String() string {
	if l.size == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", n.value)
	}
	sb.WriteByte(']')
	return sb.String()
}
