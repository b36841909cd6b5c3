package seqs

import (
	"errors"
	"fmt"
)

// Contract violations are raised as panics carrying one of the error types
// below, in the manner of the Go runtime's own slice-index panics. They are
// never recovered internally. Callers either validate arguments up front or
// recover and inspect the error value.

// InvalidCapacityError is raised when a container is constructed with a
// negative explicit capacity.
type InvalidCapacityError struct {
	Capacity int
}

func (e InvalidCapacityError) Error() string {
	return fmt.Sprintf("capacity cannot be < 0: %d", e.Capacity)
}

// IndexError is raised for a single-element access with an index outside
// [0, size).
type IndexError struct {
	Index int
	Size  int
}

func (e IndexError) Error() string {
	return fmt.Sprintf("index %d out of bounds for length %d", e.Index, e.Size)
}

// RangeError is raised for a sub-sequence extraction with invalid bounds.
// The message names the offending bound(s): "from=f, to=t" for from > to,
// "from=f" for a negative from, "to=t" for to > size.
type RangeError struct {
	From int
	To   int
	Size int
}

func (e RangeError) Error() string {
	if e.From > e.To {
		return fmt.Sprintf("from=%d, to=%d", e.From, e.To)
	}
	if e.From < 0 {
		return fmt.Sprintf("from=%d", e.From)
	}
	return fmt.Sprintf("to=%d", e.To)
}

// ErrStaleTraversal is raised when a container's structural-modification
// counter changed while an Equals or Hash computation was traversing it.
// The stale result is discarded rather than returned.
var ErrStaleTraversal = errors.New("sequence structurally modified during traversal")

// CheckIndex validates a single-element index against [0, size) and raises
// an IndexError if it is out of bounds.
func CheckIndex(index, size int) {
	if index < 0 || index >= size {
		panic(IndexError{Index: index, Size: size})
	}
}

// CheckRange validates sub-sequence bounds from (inclusive) and to
// (exclusive) and raises a RangeError if from > to, from < 0, or to > size.
func CheckRange(from, to, size int) {
	if from > to || from < 0 || to > size {
		panic(RangeError{From: from, To: to, Size: size})
	}
}
