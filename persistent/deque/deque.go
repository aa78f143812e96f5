package deque

import (
	"fmt"

	"github.com/npillmayer/pcoll"
	"github.com/npillmayer/pcoll/maybe"
	"github.com/npillmayer/pcoll/persistent/list"
)

// Deque is an immutable double-ended queue with amortized O(1) push and pop
// at both ends. An empty instance is usable as an empty deque, i.e. this is
// legal:
//
//     q := deque.Deque[int]{}.PushBack(42)
//
// returning a deque holding the single element 42.
type Deque[T any] struct {
	front list.List[T] // front elements, outermost first
	fn    int
	rear  list.List[T] // rear elements, outermost first (reverse insertion order)
	rn    int
}

// Immutable constructs an empty deque.
func Immutable[T any]() Deque[T] {
	return Deque[T]{}
}

// Singleton constructs a deque holding just x.
func Singleton[T any](x T) Deque[T] {
	return Deque[T]{front: list.Singleton(x), fn: 1}
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
	return q.fn + q.rn
}

// IsEmpty reports whether q holds no elements.
func (q Deque[T]) IsEmpty() bool {
	return q.fn+q.rn == 0
}

// PushFront returns a deque with x in front of all elements of q. O(1).
func (q Deque[T]) PushFront(x T) Deque[T] {
	return Deque[T]{front: q.front.Push(x), fn: q.fn + 1, rear: q.rear, rn: q.rn}
}

// PushBack returns a deque with x after all elements of q. O(1).
func (q Deque[T]) PushBack(x T) Deque[T] {
	return Deque[T]{front: q.front, fn: q.fn, rear: q.rear.Push(x), rn: q.rn + 1}
}

// PopFront returns the first element of q and the deque without it. An
// empty deque yields Nothing and is returned unchanged — popping empty is
// an expected condition, not a fault. Amortized O(1): if the front list is
// exhausted, the rear is reversed and split first.
func (q Deque[T]) PopFront() (maybe.Maybe[T], Deque[T]) {
	if q.fn+q.rn == 0 {
		return maybe.Nothing[T](), q
	}
	if q.fn == 0 {
		q = q.rebalanceFront()
	}
	head := q.front.Head()
	return head, Deque[T]{front: q.front.Tail(), fn: q.fn - 1, rear: q.rear, rn: q.rn}
}

// PopBack returns the last element of q and the deque without it. The
// mirror image of PopFront.
func (q Deque[T]) PopBack() (maybe.Maybe[T], Deque[T]) {
	if q.fn+q.rn == 0 {
		return maybe.Nothing[T](), q
	}
	if q.rn == 0 {
		q = q.rebalanceRear()
	}
	last := q.rear.Head()
	return last, Deque[T]{front: q.front, fn: q.fn, rear: q.rear.Tail(), rn: q.rn - 1}
}

// First returns the first element without removing it, or Nothing for an
// empty deque. O(1) unless the front list is exhausted, in which case the
// element sits at the deep end of the rear list, an O(n) walk.
func (q Deque[T]) First() maybe.Maybe[T] {
	if q.fn > 0 {
		return q.front.Head()
	}
	if q.rn == 0 {
		return maybe.Nothing[T]()
	}
	return maybe.Just(q.rear.Get(q.rn - 1))
}

// Last returns the last element without removing it, or Nothing for an
// empty deque. The mirror image of First.
func (q Deque[T]) Last() maybe.Maybe[T] {
	if q.rn > 0 {
		return q.rear.Head()
	}
	if q.fn == 0 {
		return maybe.Nothing[T]()
	}
	return maybe.Just(q.front.Get(q.fn - 1))
}

// Values returns a lazy forward sequence over the elements of q, front to
// back. The rear list is reversed lazily, only once the sequence has
// consumed the whole front.
func (q Deque[T]) Values() pcoll.Seq[T] {
	fs := q.front.Values()
	var rs pcoll.Seq[T]
	return func() (T, bool) {
		if v, ok := fs(); ok {
			return v, true
		}
		if rs == nil {
			rs = q.rear.Reverse().Values()
		}
		return rs()
	}
}

// Each applies f to every element, front to back.
func (q Deque[T]) Each(f func(T)) {
	pcoll.Each(q.Values(), f)
}

// All reports whether pred holds for every element. True for the empty
// deque.
func (q Deque[T]) All(pred func(T) bool) bool {
	return q.front.All(pred) && q.rear.All(pred)
}

// Any reports whether pred holds for at least one element.
func (q Deque[T]) Any(pred func(T) bool) bool {
	return q.front.Any(pred) || q.rear.Any(pred)
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

// --- Rebalancing -----------------------------------------------------------

// rebalanceFront rebuilds q for a front pop when all elements sit on the
// rear list: the rear is brought into logical order, the near half becomes
// the new front, the far half is reversed back. O(n), amortized against
// the pushes that let the rear grow.
func (q Deque[T]) rebalanceFront() Deque[T] {
	assertThat(q.fn == 0 && q.rn > 0, "front rebalance with fn=%d, rn=%d", q.fn, q.rn)
	tracer().Debugf("rebalancing deque of size %d towards front", q.rn)
	countCells(2 * q.rn)
	ordered := q.rear.Reverse()
	half := (q.rn + 1) / 2
	near, far := ordered.Split(half)
	return Deque[T]{front: near, fn: half, rear: far.Reverse(), rn: q.rn - half}
}

// rebalanceRear is the mirror image of rebalanceFront.
func (q Deque[T]) rebalanceRear() Deque[T] {
	assertThat(q.rn == 0 && q.fn > 0, "rear rebalance with fn=%d, rn=%d", q.fn, q.rn)
	tracer().Debugf("rebalancing deque of size %d towards rear", q.fn)
	countCells(2 * q.fn)
	ordered := q.front.Reverse()
	half := (q.fn + 1) / 2
	near, far := ordered.Split(half)
	return Deque[T]{front: far.Reverse(), fn: q.fn - half, rear: near, rn: half}
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
// order, regardless of how the elements are distributed over the internal
// lists.
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

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("deque: "+msg, msgargs...)
		panic(msg)
	}
}
