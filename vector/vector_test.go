package vector

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/seqs"
	"github.com/npillmayer/seqs/dlist"
)

func TestEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seqs.vector")
	defer teardown()
	//
	s := New[int]()
	if s.Size() != 0 {
		t.Errorf("Expected new sequence to be empty, has size %d", s.Size())
	}
	if s.String() != "[]" {
		t.Errorf("Expected empty sequence to render as [], is %s", s.String())
	}
}

func TestNegativeCapacity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seqs.vector")
	defer teardown()
	//
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("Expected WithCapacity(-1) to raise a condition, didn't")
		}
		if _, ok := r.(seqs.InvalidCapacityError); !ok {
			t.Errorf("Expected InvalidCapacityError, got %v", r)
		}
	}()
	WithCapacity[int](-1)
}

func TestAddAndGet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seqs.vector")
	defer teardown()
	//
	s := New[int]()
	for i, v := range []int{7, 8, 9} {
		s.Add(v)
		if s.Size() != i+1 {
			t.Errorf("Expected size %d after %d appends, is %d", i+1, i+1, s.Size())
		}
		if s.Get(s.Size()-1) != v {
			t.Errorf("Expected last element to be %d, is %d", v, s.Get(s.Size()-1))
		}
	}
}

func TestGrowthFromTinyCapacity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seqs.vector")
	defer teardown()
	//
	s := WithCapacity[int](2)
	s.Add(1)
	s.Add(2)
	s.Add(3) // must grow the buffer
	if s.Size() != 3 {
		t.Errorf("Expected size 3 after growth, is %d", s.Size())
	}
	if s.Get(2) != 3 {
		t.Errorf("Expected element at 2 to be 3, is %d", s.Get(2))
	}
}

func TestGrowthBeyondDefaultCapacity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seqs.vector")
	defer teardown()
	//
	s := New[int]()
	for i := 0; i < 25; i++ {
		s.Add(i * i)
	}
	if s.Size() != 25 {
		t.Errorf("Expected size 25, is %d", s.Size())
	}
	for i := 0; i < 25; i++ {
		if s.Get(i) != i*i {
			t.Errorf("Expected element at %d to be %d, is %d", i, i*i, s.Get(i))
		}
	}
}

func TestSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seqs.vector")
	defer teardown()
	//
	s := FromSlice([]string{"a", "b", "c"})
	old := s.Set(1, "B")
	if old != "b" {
		t.Errorf("Expected Set to return previous value b, returned %s", old)
	}
	if s.Get(1) != "B" {
		t.Errorf("Expected element at 1 to be B, is %s", s.Get(1))
	}
	if s.Size() != 3 {
		t.Errorf("Expected Set to leave size at 3, is %d", s.Size())
	}
}

func TestInsert(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seqs.vector")
	defer teardown()
	//
	s := FromSlice([]int{1, 3, 4})
	s.Insert(1, 2)
	if s.String() != "[1, 2, 3, 4]" {
		t.Errorf("Expected [1, 2, 3, 4] after insert, is %s", s.String())
	}
	s.Insert(0, 0)
	if s.String() != "[0, 1, 2, 3, 4]" {
		t.Errorf("Expected [0, 1, 2, 3, 4] after insert at head, is %s", s.String())
	}
	expectIndexError(t, func() { s.Insert(s.Size(), 99) }) // append position is invalid
}

func TestRemove(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seqs.vector")
	defer teardown()
	//
	s := FromSlice([]int{1, 2, 3, 4})
	old := s.Remove(1)
	if old != 2 {
		t.Errorf("Expected Remove(1) to return 2, returned %d", old)
	}
	if s.String() != "[1, 3, 4]" {
		t.Errorf("Expected [1, 3, 4] after removal, is %s", s.String())
	}
	if s.Size() != 3 {
		t.Errorf("Expected size 3 after removal, is %d", s.Size())
	}
}

func TestRemoveLastElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seqs.vector")
	defer teardown()
	//
	s := FromSlice([]int{5})
	if s.Remove(0) != 5 {
		t.Errorf("Expected Remove(0) to return 5")
	}
	if s.Size() != 0 {
		t.Errorf("Expected empty sequence after removal, size is %d", s.Size())
	}
	expectIndexError(t, func() { s.Get(0) })
}

func TestAddAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seqs.vector")
	defer teardown()
	//
	s := FromSlice([]int{1, 2})
	l := dlist.FromSlice([]int{3, 4}) // bulk-load across container kinds
	if !s.AddAll(l) {
		t.Errorf("Expected AddAll of a non-empty sequence to report a modification")
	}
	if s.String() != "[1, 2, 3, 4]" {
		t.Errorf("Expected [1, 2, 3, 4] after AddAll, is %s", s.String())
	}
	if s.AddAll(New[int]()) {
		t.Errorf("Expected AddAll of an empty sequence to report no modification")
	}
	if s.AddAll(nil) {
		t.Errorf("Expected AddAll(nil) to report no modification")
	}
}

func TestFromSequence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seqs.vector")
	defer teardown()
	//
	src := FromSlice([]int{1, 2, 3})
	s := FromSequence[int](src)
	if !s.Equals(src) {
		t.Errorf("Expected copy %s to equal source %s", s, src)
	}
	src.Set(0, 99) // copies must not share the buffer
	if s.Get(0) != 1 {
		t.Errorf("Expected copy to be independent of source, element 0 is %d", s.Get(0))
	}
	if empty := FromSequence[int](nil); empty.Size() != 0 {
		t.Errorf("Expected FromSequence(nil) to be empty, has size %d", empty.Size())
	}
}

func TestSubList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seqs.vector")
	defer teardown()
	//
	s := FromSlice([]int{0, 1, 2, 3, 4})
	sub := s.SubList(1, 4)
	if sub.Size() != 3 {
		t.Errorf("Expected sublist of size 3, is %d", sub.Size())
	}
	if sub.String() != "[1, 2, 3]" {
		t.Errorf("Expected sublist [1, 2, 3], is %s", sub.String())
	}
	sub.Set(0, 99) // the extracted range is an independent copy
	if s.Get(1) != 1 {
		t.Errorf("Expected source to be unaffected by sublist mutation, element 1 is %d", s.Get(1))
	}
	if empty := s.SubList(2, 2); empty.Size() != 0 {
		t.Errorf("Expected SubList(2, 2) to be empty, has size %d", empty.Size())
	}
}

func TestSubListBounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seqs.vector")
	defer teardown()
	//
	s := FromSlice([]int{1, 2, 3})
	expectRangeError(t, "from=2, to=1", func() { s.SubList(2, 1) })
	expectRangeError(t, "from=-1", func() { s.SubList(-1, 2) })
	expectRangeError(t, "to=4", func() { s.SubList(0, 4) })
}

func TestEquals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seqs.vector")
	defer teardown()
	//
	a := FromSlice([]int{1, 2, 3})
	b := WithCapacity[int](100)
	b.AddAll(a) // same elements, different capacity
	if !a.Equals(b) || !b.Equals(a) {
		t.Errorf("Expected %s and %s to be equal", a, b)
	}
	b.Set(2, 4)
	if a.Equals(b) {
		t.Errorf("Expected %s and %s to differ", a, b)
	}
	b.Set(2, 3)
	b.Add(4)
	if a.Equals(b) {
		t.Errorf("Expected sequences of different size to differ")
	}
	if a.Equals(nil) {
		t.Errorf("Expected sequence not to equal nil")
	}
	if !a.Equals(a) {
		t.Errorf("Expected sequence to equal itself")
	}
}

func TestHash(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seqs.vector")
	defer teardown()
	//
	a := FromSlice([]int{1, 2, 3})
	b := FromSlice([]int{1, 2, 3})
	if a.Hash() != b.Hash() {
		t.Errorf("Expected equal sequences to hash alike: %#x vs %#x", a.Hash(), b.Hash())
	}
	c := FromSlice([]int{3, 2, 1})
	if a.Hash() == c.Hash() {
		t.Errorf("Expected reordered sequence to hash differently") // 31-polynomial is order-sensitive
	}
	if empty := New[int](); empty.Hash() != 1 {
		t.Errorf("Expected empty sequence to hash to the seed 1, is %d", empty.Hash())
	}
}

func TestString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seqs.vector")
	defer teardown()
	//
	if s := FromSlice([]int{5}); s.String() != "[5]" {
		t.Errorf("Expected [5], is %s", s.String())
	}
	if s := FromSlice([]int{1, 2, 3}); s.String() != "[1, 2, 3]" {
		t.Errorf("Expected [1, 2, 3], is %s", s.String())
	}
}

func TestStaleTraversalGuard(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seqs.vector")
	defer teardown()
	//
	s := FromSlice([]int{1, 2, 3})
	captured := s.modCount
	s.Remove(0) // structural change after the counter was captured
	defer func() {
		if r := recover(); r != seqs.ErrStaleTraversal {
			t.Errorf("Expected ErrStaleTraversal to be raised, got %v", r)
		}
	}()
	s.checkStale(captured)
}

// --- Helpers ---------------------------------------------------------------

func expectIndexError(t *testing.T, op func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Errorf("Expected an IndexError to be raised, wasn't")
			return
		}
		if _, ok := r.(seqs.IndexError); !ok {
			t.Errorf("Expected an IndexError, got %v", r)
		}
	}()
	op()
}

func expectRangeError(t *testing.T, message string, op func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Errorf("Expected a RangeError to be raised, wasn't")
			return
		}
		rerr, ok := r.(seqs.RangeError)
		if !ok {
			t.Errorf("Expected a RangeError, got %v", r)
			return
		}
		if rerr.Error() != message {
			t.Errorf("Expected message %q, got %q", message, rerr.Error())
		}
	}()
	op()
}
