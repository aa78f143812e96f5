package pcoll

import (
	"fmt"
	"strings"
)

// Collection is the scalar part of the surface every container in this
// module offers. The type-changing operations (Map, FilterMap, FoldLeft,
// FromSeq, Equal, Compare) cannot be expressed as Go methods — methods may
// not introduce type parameters — and are provided as package-level
// functions of identical shape in every container package instead.
type Collection[T any] interface {
	Len() int
	IsEmpty() bool
	Values() Seq[T]
	fmt.Stringer
}

// --- Relations -------------------------------------------------------------

// EqualSeq reports whether two sequences produce the same elements in the
// same order. Both sequences are advanced in lockstep and abandoned at the
// first difference.
func EqualSeq[T comparable](a, b Seq[T]) bool {
	return EqualSeqFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualSeqFunc is EqualSeq with an explicit element equality.
func EqualSeqFunc[T any](a, b Seq[T], eq func(T, T) bool) bool {
	for {
		x, okx := a()
		y, oky := b()
		if okx != oky {
			return false
		}
		if !okx {
			return true
		}
		if !eq(x, y) {
			return false
		}
	}
}

// CompareSeqFunc orders two sequences lexicographically, advancing both in
// lockstep and short-circuiting on the first differing element. A sequence
// that is a strict prefix of the other compares as less. cmp must return a
// negative number, zero, or a positive number for less, equal, greater.
func CompareSeqFunc[T any](a, b Seq[T], cmp func(T, T) int) int {
	for {
		x, okx := a()
		y, oky := b()
		switch {
		case !okx && !oky:
			return 0
		case !okx:
			return -1
		case !oky:
			return +1
		}
		if c := cmp(x, y); c != 0 {
			return c
		}
	}
}

// --- Text rendering --------------------------------------------------------

// Text renders a sequence as “⟨a b c⟩”. All String methods in this module
// funnel through it, so containers with equal content print alike.
func Text[T any](seq Seq[T]) string {
	b := strings.Builder{}
	b.WriteRune('⟨')
	first := true
	for v, ok := seq(); ok; v, ok = seq() {
		if !first {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprintf("%v", v))
		first = false
	}
	b.WriteRune('⟩')
	return b.String()
}
