package list

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestListEmpty(t *testing.T) {
	l := Immutable[int]()
	if !l.IsEmpty() {
		t.Error("expected fresh list to be empty, isn't")
	}
	if l.Len() != 0 {
		t.Errorf("expected empty list to have length 0, has %d", l.Len())
	}
	if !isNothingHead(l) {
		t.Error("expected head of empty list to be Nothing, isn't")
	}
}

func TestListZeroValue(t *testing.T) {
	l := List[int]{}.Push(42)
	if l.IsEmpty() {
		t.Error("expected zero-value list to be usable, isn't")
	}
	if l.Get(0) != 42 {
		t.Errorf("expected l[0] to be 42, is %d", l.Get(0))
	}
}

func TestListPushOrder(t *testing.T) {
	l := Immutable[int]().Push(3).Push(2).Push(1)
	if l.Len() != 3 {
		t.Fatalf("expected list of 3 elements, got %d", l.Len())
	}
	for i := 0; i < 3; i++ {
		if l.Get(i) != i+1 {
			t.Errorf("expected l[%d] to be %d, is %d", i, i+1, l.Get(i))
		}
	}
}

func TestListPersistence(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})
	before := l.Len()
	_ = l.Push(0)
	_ = l.Tail()
	_ = l.Reverse()
	if l.Len() != before {
		t.Errorf("expected operations to leave receiver at length %d, is %d", before, l.Len())
	}
	if l.Get(0) != 1 {
		t.Errorf("expected receiver to still start with 1, is %d", l.Get(0))
	}
}

func TestListSharing(t *testing.T) {
	tail := FromSlice([]int{8, 9})
	a := Cons(1, tail)
	b := Cons(2, tail)
	if a.Tail().head != b.Tail().head {
		t.Error("expected both lists to share the tail cells, don't")
	}
}

func TestListReverse(t *testing.T) {
	l := FromSlice([]int{1, 2, 3, 4}).Reverse()
	if !Equal(l, FromSlice([]int{4, 3, 2, 1})) {
		t.Errorf("expected reversal to be ⟨4 3 2 1⟩, is %s", l)
	}
	if !Immutable[int]().Reverse().IsEmpty() {
		t.Error("expected reversal of empty list to be empty, isn't")
	}
}

func TestListValuesRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcoll.list")
	defer teardown()
	//
	for _, n := range []int{0, 1, 100, 100000} {
		l := iota0(n)
		back := FromSeq(l.Values())
		if !Equal(l, back) {
			t.Errorf("expected FromSeq ∘ Values to be the identity for length %d, isn't", n)
		}
	}
}

func TestListGetOutOfBounds(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected Get beyond end of list to panic, didn't")
		}
	}()
	FromSlice([]int{1, 2, 3}).Get(3)
}

func TestListTakeDrop(t *testing.T) {
	l := FromSlice([]int{1, 2, 3, 4, 5})
	if !Equal(l.Take(2), FromSlice([]int{1, 2})) {
		t.Errorf("expected take 2 to be ⟨1 2⟩, is %s", l.Take(2))
	}
	if !Equal(l.Drop(2), FromSlice([]int{3, 4, 5})) {
		t.Errorf("expected drop 2 to be ⟨3 4 5⟩, is %s", l.Drop(2))
	}
	if l.Drop(2).head != l.head.next.next {
		t.Error("expected drop to share cells with its receiver, doesn't")
	}
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected take beyond end of list to panic, didn't")
		}
	}()
	l.Take(6)
}

func TestListSplit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcoll.list")
	defer teardown()
	//
	l := FromSlice([]int{1, 2, 3, 4, 5})
	prefix, suffix := l.Split(2)
	if !Equal(prefix, FromSlice([]int{1, 2})) {
		t.Errorf("expected split prefix ⟨1 2⟩, is %s", prefix)
	}
	if !Equal(suffix, FromSlice([]int{3, 4, 5})) {
		t.Errorf("expected split suffix ⟨3 4 5⟩, is %s", suffix)
	}
	whole, none := l.Split(5)
	if !Equal(whole, l) || !none.IsEmpty() {
		t.Error("expected split at length to yield the whole list and an empty rest, didn't")
	}
}

func TestListString(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})
	if l.String() != "⟨1 2 3⟩" {
		t.Errorf("expected list to render as ⟨1 2 3⟩, is %s", l)
	}
	if Immutable[int]().String() != "⟨⟩" {
		t.Errorf("expected empty list to render as ⟨⟩, is %s", Immutable[int]())
	}
}

func TestListPredicates(t *testing.T) {
	l := FromSlice([]int{2, 4, 6})
	even := func(n int) bool { return n%2 == 0 }
	if !l.All(even) {
		t.Error("expected all of ⟨2 4 6⟩ to be even, aren't")
	}
	if !Immutable[int]().All(even) {
		t.Error("expected All on empty list to hold vacuously, doesn't")
	}
	if !l.Any(func(n int) bool { return n > 5 }) {
		t.Error("expected some element > 5, none found")
	}
	if !Equal(l.Filter(func(n int) bool { return n > 3 }), FromSlice([]int{4, 6})) {
		t.Error("expected filter > 3 to keep ⟨4 6⟩, didn't")
	}
}

// ---------------------------------------------------------------------------

// iota0 builds the list ⟨0 1 … n-1⟩.
func iota0(n int) List[int] {
	var l List[int]
	for i := n - 1; i >= 0; i-- {
		l = Cons(i, l)
	}
	return l
}

// isNothingHead reports whether l.Head() came up empty.
func isNothingHead(l List[int]) bool {
	var v int
	switch m := l.Head().Match(); m {
	case m.Just(&v):
		return false
	}
	return true
}
