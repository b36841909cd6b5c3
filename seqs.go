package seqs

// --- Traversal contract ----------------------------------------------------

// Sequence is the read-only traversal contract shared by all container kinds
// of this module. Bulk operations (AddAll, the copying constructors) accept
// any Sequence, so containers of different kinds may be loaded from one
// another.
//
// Values returns the elements in positional order. Implementations return a
// fresh slice; mutating it does not affect the container.
type Sequence[T any] interface {
	Size() int
	Values() []T
}
