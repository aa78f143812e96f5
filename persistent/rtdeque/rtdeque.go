package rtdeque

import (
	"github.com/npillmayer/pcoll"
	"github.com/npillmayer/pcoll/maybe"
	"github.com/npillmayer/pcoll/persistent/list"
)

// Deque is an immutable double-ended queue with worst-case O(1) push and
// pop at both ends. An empty instance is usable as an empty deque, i.e.
// this is legal:
//
//     q := rtdeque.Deque[int]{}.PushBack(42)
//
// returning a deque holding the single element 42.
type Deque[T any] struct {
	f   side[T]      // front half, outermost element first
	r   side[T]      // rear half, outermost element first
	rot *rotation[T] // in-progress incremental rebuild; nil when idle
}

// Immutable constructs an empty deque.
func Immutable[T any]() Deque[T] {
	return Deque[T]{}
}

// Singleton constructs a deque holding just x.
func Singleton[T any](x T) Deque[T] {
	return Deque[T]{f: side[T]{bot: list.Singleton(x), n: 1}}
}

// FromSeq drains a sequence into a deque, front to back.
func FromSeq[T any](seq pcoll.Seq[T]) Deque[T] {
	q := Deque[T]{}
	for v, ok := seq(); ok; v, ok = seq() {
		q = q.PushBack(v)
	}
	return q
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements. O(1): both sides carry their count.
func (q Deque[T]) Len() int {
	return q.f.n + q.r.n
}

// IsEmpty reports whether q holds no elements.
func (q Deque[T]) IsEmpty() bool {
	return q.f.n+q.r.n == 0
}

// PushFront returns a deque with x in front of all elements of q.
// Worst-case O(1).
func (q Deque[T]) PushFront(x T) Deque[T] {
	q = q.step()
	q.f = q.f.push(x)
	return q.maintain()
}

// PushBack returns a deque with x after all elements of q. Worst-case O(1).
func (q Deque[T]) PushBack(x T) Deque[T] {
	q = q.step()
	q.r = q.r.push(x)
	return q.maintain()
}

// PopFront returns the first element of q and the deque without it. An
// empty deque yields Nothing and is returned unchanged — popping empty is
// an expected condition, not a fault. Worst-case O(1).
func (q Deque[T]) PopFront() (maybe.Maybe[T], Deque[T]) {
	if q.IsEmpty() {
		return maybe.Nothing[T](), q
	}
	q = q.step()
	var v T
	v, q = q.popFrontCell()
	return maybe.Just(v), q.maintain()
}

// PopBack returns the last element of q and the deque without it. The
// mirror image of PopFront.
func (q Deque[T]) PopBack() (maybe.Maybe[T], Deque[T]) {
	if q.IsEmpty() {
		return maybe.Nothing[T](), q
	}
	q = q.step()
	var v T
	v, q = q.popBackCell()
	return maybe.Just(v), q.maintain()
}

// First returns the first element without removing it, or Nothing for an
// empty deque.
func (q Deque[T]) First() maybe.Maybe[T] {
	if q.IsEmpty() {
		return maybe.Nothing[T]()
	}
	v, _ := q.Values()()
	return maybe.Just(v)
}

// Last returns the last element without removing it, or Nothing for an
// empty deque.
func (q Deque[T]) Last() maybe.Maybe[T] {
	if q.IsEmpty() {
		return maybe.Nothing[T]()
	}
	v, _ := q.valuesBack()()
	return maybe.Just(v)
}

// Values returns a lazy forward sequence over the elements of q, front to
// back, reflecting q's content at the moment of the call regardless of any
// rotation in progress. The rear half is reversed lazily, only once the
// sequence has consumed the whole front.
func (q Deque[T]) Values() pcoll.Seq[T] {
	fs := q.sideSeq(true)
	var rs pcoll.Seq[T]
	return func() (T, bool) {
		if v, ok := fs(); ok {
			return v, true
		}
		if rs == nil {
			rs = reversalOf(q.sideSeq(false)).Values()
		}
		return rs()
	}
}

// valuesBack is Values back-to-front.
func (q Deque[T]) valuesBack() pcoll.Seq[T] {
	rs := q.sideSeq(false)
	var fs pcoll.Seq[T]
	return func() (T, bool) {
		if v, ok := rs(); ok {
			return v, true
		}
		if fs == nil {
			fs = reversalOf(q.sideSeq(true)).Values()
		}
		return fs()
	}
}

// Each applies f to every element, front to back.
func (q Deque[T]) Each(f func(T)) {
	pcoll.Each(q.Values(), f)
}

// All reports whether pred holds for every element. True for the empty
// deque.
func (q Deque[T]) All(pred func(T) bool) bool {
	seq := q.Values()
	for v, ok := seq(); ok; v, ok = seq() {
		if !pred(v) {
			return false
		}
	}
	return true
}

// Any reports whether pred holds for at least one element.
func (q Deque[T]) Any(pred func(T) bool) bool {
	seq := q.Values()
	for v, ok := seq(); ok; v, ok = seq() {
		if pred(v) {
			return true
		}
	}
	return false
}

// Filter returns a deque of the elements of q for which pred holds, in
// order.
func (q Deque[T]) Filter(pred func(T) bool) Deque[T] {
	return FromSeq(pcoll.FilterSeq(q.Values(), pred))
}

// String renders q as “⟨a b c⟩”.
func (q Deque[T]) String() string {
	return pcoll.Text(q.Values())
}

// --- Combinators -----------------------------------------------------------

// Map returns a deque applying f to every element of q.
func Map[T, S any](q Deque[T], f func(T) S) Deque[S] {
	return FromSeq(pcoll.MapSeq(q.Values(), f))
}

// FilterMap combines Map and Filter in one pass: elements for which f
// returns Nothing are left out.
func FilterMap[T, S any](q Deque[T], f func(T) maybe.Maybe[S]) Deque[S] {
	r := Deque[S]{}
	q.Each(func(x T) {
		var v S
		switch m := f(x).Match(); m {
		case m.Just(&v):
			r = r.PushBack(v)
		}
	})
	return r
}

// FoldLeft folds f over q front-to-back, starting from zero.
func FoldLeft[T, S any](q Deque[T], zero S, f func(S, T) S) S {
	acc := zero
	q.Each(func(x T) {
		acc = f(acc, x)
	})
	return acc
}

// Equal reports whether two deques hold the same elements in the same
// order, regardless of internal distribution or rotation state.
func Equal[T comparable](a, b Deque[T]) bool {
	return pcoll.EqualSeq(a.Values(), b.Values())
}

// EqualFunc is Equal with an explicit element equality.
func EqualFunc[T any](a, b Deque[T], eq func(T, T) bool) bool {
	return pcoll.EqualSeqFunc(a.Values(), b.Values(), eq)
}

// Compare orders two deques lexicographically by cmp; a strict prefix
// compares as less.
func Compare[T any](a, b Deque[T], cmp func(T, T) int) int {
	return pcoll.CompareSeqFunc(a.Values(), b.Values(), cmp)
}
