package list

import (
	"github.com/npillmayer/pcoll"
	"github.com/npillmayer/pcoll/maybe"
)

// List is an immutable singly-linked list. An empty instance is usable as
// an empty list, i.e. this is legal:
//
//     l := list.List[int]{}.Push(42)
//
// returning a list holding the single element 42.
type List[T any] struct {
	head *cell[T]
}

// Immutable constructs an empty list.
func Immutable[T any]() List[T] {
	return List[T]{}
}

// Singleton constructs a list holding just x.
func Singleton[T any](x T) List[T] {
	return List[T]{head: &cell[T]{value: x}}
}

// Cons returns a new list with x in front of l. l is unchanged and shares
// all its cells with the result.
func Cons[T any](x T, l List[T]) List[T] {
	return List[T]{head: &cell[T]{value: x, next: l.head}}
}

// FromSlice constructs a list over the values of a slice, in order.
func FromSlice[T any](values []T) List[T] {
	var l List[T]
	for i := len(values) - 1; i >= 0; i-- {
		l = Cons(values[i], l)
	}
	return l
}

// FromSeq drains a sequence into a list, preserving order. The sequence is
// accumulated front-to-back and reversed once; no step recurses.
func FromSeq[T any](seq pcoll.Seq[T]) List[T] {
	var acc List[T]
	for v, ok := seq(); ok; v, ok = seq() {
		acc = Cons(v, acc)
	}
	return acc.Reverse()
}

// --- API -------------------------------------------------------------------

// IsEmpty reports whether l holds no elements.
func (l List[T]) IsEmpty() bool {
	return l.head == nil
}

// Len counts the cells of l. O(n) — lists cache no length.
func (l List[T]) Len() int {
	n := 0
	for c := l.head; c != nil; c = c.next {
		n++
	}
	return n
}

// Push is Cons as a method.
func (l List[T]) Push(x T) List[T] {
	return Cons(x, l)
}

// Head returns the first element, or Nothing for an empty list.
func (l List[T]) Head() maybe.Maybe[T] {
	if l.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.head.value)
}

// Tail returns the list after the first element. The tail of an empty list
// is the empty list.
func (l List[T]) Tail() List[T] {
	if l.head == nil {
		return l
	}
	return List[T]{head: l.head.next}
}

// Uncons dismantles l into its first element and the rest. ok is false for
// an empty list.
func (l List[T]) Uncons() (v T, rest List[T], ok bool) {
	if l.head == nil {
		return v, l, false
	}
	return l.head.value, List[T]{head: l.head.next}, true
}

// Values returns a lazy forward sequence over the elements of l. Since l is
// immutable, the sequence can never be invalidated.
func (l List[T]) Values() pcoll.Seq[T] {
	c := l.head
	return func() (T, bool) {
		if c == nil {
			var none T
			return none, false
		}
		v := c.value
		c = c.next
		return v, true
	}
}

// Reverse returns a list with the elements of l in opposite order. The
// result shares no cells with l. Iterative, O(n).
func (l List[T]) Reverse() List[T] {
	var r *cell[T]
	for c := l.head; c != nil; c = c.next {
		r = &cell[T]{value: c.value, next: r}
	}
	return List[T]{head: r}
}

// Get returns the element at position i. Positions beyond the end of the
// list are a programming error and panic.
func (l List[T]) Get(i int) T {
	assertThat(i >= 0, "list index out of bounds: %d", i)
	n := 0
	for c := l.head; c != nil; c = c.next {
		if n == i {
			return c.value
		}
		n++
	}
	assertThat(false, "list index out of bounds: %d with length %d", i, n)
	var none T
	return none
}

// Take returns a list of the first n elements of l. The result shares no
// cells with l. Panics if l holds fewer than n elements.
func (l List[T]) Take(n int) List[T] {
	assertThat(n >= 0, "cannot take %d elements", n)
	b := builder[T]{}
	c := l.head
	for i := 0; i < n; i++ {
		assertThat(c != nil, "list index out of bounds: take %d with length %d", n, i)
		b.append(c.value)
		c = c.next
	}
	return b.list()
}

// Drop returns the list after the first n elements, sharing its cells with
// l. Panics if l holds fewer than n elements.
func (l List[T]) Drop(n int) List[T] {
	assertThat(n >= 0, "cannot drop %d elements", n)
	c := l.head
	for i := 0; i < n; i++ {
		assertThat(c != nil, "list index out of bounds: drop %d with length %d", n, i)
		c = c.next
	}
	return List[T]{head: c}
}

// Split separates l into its first i elements and the rest. The prefix is
// freshly built, the suffix shares cells with l. Panics if i exceeds the
// length of l.
func (l List[T]) Split(i int) (List[T], List[T]) {
	assertThat(i >= 0, "cannot split at %d", i)
	b := builder[T]{}
	c := l.head
	for n := 0; n < i; n++ {
		assertThat(c != nil, "list index out of bounds: split at %d with length %d", i, n)
		b.append(c.value)
		c = c.next
	}
	tracer().Debugf("split list at %d", i)
	return b.list(), List[T]{head: c}
}

// Each applies f to every element of l, in order.
func (l List[T]) Each(f func(T)) {
	for c := l.head; c != nil; c = c.next {
		f(c.value)
	}
}

// All reports whether pred holds for every element of l. True for the
// empty list.
func (l List[T]) All(pred func(T) bool) bool {
	for c := l.head; c != nil; c = c.next {
		if !pred(c.value) {
			return false
		}
	}
	return true
}

// Any reports whether pred holds for at least one element of l.
func (l List[T]) Any(pred func(T) bool) bool {
	for c := l.head; c != nil; c = c.next {
		if pred(c.value) {
			return true
		}
	}
	return false
}

// Filter returns a list of the elements of l for which pred holds.
func (l List[T]) Filter(pred func(T) bool) List[T] {
	b := builder[T]{}
	for c := l.head; c != nil; c = c.next {
		if pred(c.value) {
			b.append(c.value)
		}
	}
	return b.list()
}

// String renders l as “⟨a b c⟩”.
func (l List[T]) String() string {
	return pcoll.Text(l.Values())
}
