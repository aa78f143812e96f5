package list

import (
	"github.com/npillmayer/pcoll/maybe"
)

// The combinators in this file are package-level functions because Go
// methods cannot introduce type parameters. They follow the shape of the
// corresponding methods: receiver-like list first, functions last.
//
// None of them recurses per element. Results are either assembled with a
// builder in a single forward pass, or accumulated in reverse and reversed
// once; pending work (in Flatten, Chunks) lives in explicit cursors, never
// on the call stack.

// Map returns a list applying f to every element of l.
func Map[T, S any](l List[T], f func(T) S) List[S] {
	b := builder[S]{}
	for c := l.head; c != nil; c = c.next {
		b.append(f(c.value))
	}
	return b.list()
}

// FilterMap combines Map and Filter in one pass: elements for which f
// returns Nothing are left out.
func FilterMap[T, S any](l List[T], f func(T) maybe.Maybe[S]) List[S] {
	b := builder[S]{}
	for c := l.head; c != nil; c = c.next {
		var v S
		switch m := f(c.value).Match(); m {
		case m.Just(&v):
			b.append(v)
		}
	}
	return b.list()
}

// FoldLeft folds f over l front-to-back, starting from zero.
func FoldLeft[T, S any](l List[T], zero S, f func(S, T) S) S {
	acc := zero
	for c := l.head; c != nil; c = c.next {
		acc = f(acc, c.value)
	}
	return acc
}

// FoldRight folds f over l back-to-front, starting from zero. Implemented
// as a fold over one explicit reversal — the naive right fold would recurse
// once per element.
func FoldRight[T, S any](l List[T], zero S, f func(T, S) S) S {
	acc := zero
	for c := l.Reverse().head; c != nil; c = c.next {
		acc = f(c.value, acc)
	}
	return acc
}

// Concat returns a ++ b. The cells of a are copied, the cells of b are
// shared with the result.
func Concat[T any](a, b List[T]) List[T] {
	bld := builder[T]{}
	for c := a.head; c != nil; c = c.next {
		bld.append(c.value)
	}
	bld.graft(b)
	return bld.list()
}

// Flatten concatenates a list of lists into one list, preserving order.
// The cells of the last member are shared, everything before is copied.
func Flatten[T any](ll List[List[T]]) List[T] {
	bld := builder[T]{}
	for outer := ll.head; outer != nil; outer = outer.next {
		if outer.next == nil {
			bld.graft(outer.value)
			break
		}
		for c := outer.value.head; c != nil; c = c.next {
			bld.append(c.value)
		}
	}
	return bld.list()
}

// Chunks groups the elements of l into consecutive runs of n (the last
// chunk possibly shorter). Panics for n < 1.
func Chunks[T any](l List[T], n int) List[List[T]] {
	assertThat(n > 0, "chunk size must be positive, is %d", n)
	outer := builder[List[T]]{}
	inner := builder[T]{}
	k := 0
	for c := l.head; c != nil; c = c.next {
		inner.append(c.value)
		k++
		if k == n {
			outer.append(inner.list())
			inner = builder[T]{}
			k = 0
		}
	}
	if k > 0 {
		outer.append(inner.list())
	}
	return outer.list()
}

// Partition separates l into the elements satisfying pred and the ones
// that don't, preserving relative order on both sides.
func Partition[T any](l List[T], pred func(T) bool) (List[T], List[T]) {
	yes, no := builder[T]{}, builder[T]{}
	for c := l.head; c != nil; c = c.next {
		if pred(c.value) {
			yes.append(c.value)
		} else {
			no.append(c.value)
		}
	}
	return yes.list(), no.list()
}

// Merge interleaves two lists ordered by less into one ordered list. The
// merge is stable: on ties, elements of a come first. The unconsumed rest
// of the longer input is shared, not copied.
func Merge[T any](a, b List[T], less func(T, T) bool) List[T] {
	bld := builder[T]{}
	ca, cb := a.head, b.head
	for ca != nil && cb != nil {
		if less(cb.value, ca.value) {
			bld.append(cb.value)
			cb = cb.next
		} else {
			bld.append(ca.value)
			ca = ca.next
		}
	}
	if ca != nil {
		bld.graft(List[T]{head: ca})
	} else {
		bld.graft(List[T]{head: cb})
	}
	tracer().Debugf("merged two ordered lists")
	return bld.list()
}

// --- Relations -------------------------------------------------------------

// Equal reports whether two lists hold the same elements in the same
// order. Both lists are walked in lockstep, stopping at the first
// difference; O(min of the lengths).
func Equal[T comparable](a, b List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with an explicit element equality.
func EqualFunc[T any](a, b List[T], eq func(T, T) bool) bool {
	ca, cb := a.head, b.head
	for ca != nil && cb != nil {
		if !eq(ca.value, cb.value) {
			return false
		}
		ca, cb = ca.next, cb.next
	}
	return ca == nil && cb == nil
}

// Compare orders two lists lexicographically by cmp, walking both in
// lockstep and short-circuiting on the first differing element. A strict
// prefix compares as less.
func Compare[T any](a, b List[T], cmp func(T, T) int) int {
	ca, cb := a.head, b.head
	for ca != nil && cb != nil {
		if c := cmp(ca.value, cb.value); c != 0 {
			return c
		}
		ca, cb = ca.next, cb.next
	}
	switch {
	case ca != nil:
		return +1
	case cb != nil:
		return -1
	}
	return 0
}
