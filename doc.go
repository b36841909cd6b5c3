/*
Package seqs provides generic, resizable, ordered-sequence containers.

Two sibling container kinds are implemented, side by side and independent
of each other:

■ vector: Package vector implements a contiguous-buffer sequence. It owns a
single resizable buffer of element slots and supports index-based access,
amortized-growth appending, element shifting on positional insert/remove,
and range-copying sub-sequence extraction.

■ dlist: Package dlist implements a doubly-linked node sequence. It owns a
chain of nodes with head/tail references and supports O(1) insertion at
both ends, O(n) indexed traversal, and sub-sequence extraction.

The base package contains the contracts shared by both kinds: the Sequence
traversal interface, the condition (error) types raised on contract
violations, and element-level hashing and equality helpers.

Both container kinds keep a structural-modification counter. Derived-value
computations (Equals, Hash) capture the counter before traversing and
re-check it before returning; a mismatch discards the stale result and
raises ErrStaleTraversal instead. This is a same-thread consistency
safeguard against reentrant mutation, not a concurrency-control mechanism:
none of the containers is safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package seqs

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'seqs'.
func tracer() tracing.Trace {
	return tracing.Select("seqs")
}
