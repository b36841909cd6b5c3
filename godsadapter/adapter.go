/*
Package godsadapter bridges the sequence containers of this module and the
list containers of the gods library (github.com/emirpasic/gods).

gods predates Go generics and traffics in interface{} values, so the
bridge covers sequences with element type interface{}. It converts in both
directions without sharing backing storage.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package godsadapter

import (
	"github.com/emirpasic/gods/lists"
	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/npillmayer/seqs"
	"github.com/npillmayer/seqs/dlist"
	"github.com/npillmayer/seqs/vector"
)

// VectorFromList creates a contiguous sequence holding all elements of a
// gods list, in the list's iteration order. A nil list yields an empty
// sequence.
func VectorFromList(l lists.List) *vector.Seq[interface{}] {
	if l == nil {
		return vector.New[interface{}]()
	}
	return vector.FromSlice(l.Values())
}

// DListFromList creates a linked sequence holding all elements of a gods
// list, in the list's iteration order. A nil list yields an empty
// sequence.
func DListFromList(l lists.List) *dlist.Seq[interface{}] {
	if l == nil {
		return dlist.New[interface{}]()
	}
	return dlist.FromSlice(l.Values())
}

// ToArrayList copies a sequence of either kind into a fresh gods
// arraylist, preserving element order.
func ToArrayList(s seqs.Sequence[interface{}]) *arraylist.List {
	al := arraylist.New()
	if s != nil {
		al.Add(s.Values()...)
	}
	return al
}
