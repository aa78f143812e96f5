/*
Package pcoll provides immutable persistent sequence containers with
structural sharing: a cons-cell list and two double-ended queues with
different performance contracts.

Containers in this module are values. Every “modifying” operation returns a
new container and leaves its receiver untouched, so any number of versions
of a sequence may be alive at the same time, sharing most of their cells.
Since nothing is ever mutated, sharing a container between goroutines needs
no locking.

The root package holds the surface all containers have in common: the lazy
Seq iterator, the Collection interface, and sequence-level equality,
ordering and text rendering.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pcoll

// Seq is a lazy forward sequence of values. Each call produces the next
// element together with true, or the zero value and false once the sequence
// is exhausted. A Seq is finite and not restartable: it reflects the
// logical order of its source at the moment of creation.
type Seq[T any] func() (T, bool)

// EmptySeq returns an exhausted sequence.
func EmptySeq[T any]() Seq[T] {
	return func() (T, bool) {
		var none T
		return none, false
	}
}

// SeqOf returns a sequence over the given values, in order.
func SeqOf[T any](values ...T) Seq[T] {
	i := 0
	return func() (T, bool) {
		if i >= len(values) {
			var none T
			return none, false
		}
		v := values[i]
		i++
		return v, true
	}
}

// Slice drains a sequence into a slice.
func Slice[T any](seq Seq[T]) []T {
	var r []T
	for v, ok := seq(); ok; v, ok = seq() {
		r = append(r, v)
	}
	return r
}

// Count drains a sequence and returns the number of elements it produced.
func Count[T any](seq Seq[T]) int {
	n := 0
	for _, ok := seq(); ok; _, ok = seq() {
		n++
	}
	return n
}

// Each applies f to every element of a sequence, in order.
func Each[T any](seq Seq[T], f func(T)) {
	for v, ok := seq(); ok; v, ok = seq() {
		f(v)
	}
}

// MapSeq returns a lazy sequence applying f to every element of seq.
func MapSeq[T, S any](seq Seq[T], f func(T) S) Seq[S] {
	return func() (S, bool) {
		v, ok := seq()
		if !ok {
			var none S
			return none, false
		}
		return f(v), true
	}
}

// FilterSeq returns a lazy sequence of the elements of seq for which pred
// holds.
func FilterSeq[T any](seq Seq[T], pred func(T) bool) Seq[T] {
	return func() (T, bool) {
		for v, ok := seq(); ok; v, ok = seq() {
			if pred(v) {
				return v, true
			}
		}
		var none T
		return none, false
	}
}

// ConcatSeq chains sequences one after the other.
func ConcatSeq[T any](seqs ...Seq[T]) Seq[T] {
	i := 0
	return func() (T, bool) {
		for i < len(seqs) {
			if v, ok := seqs[i](); ok {
				return v, true
			}
			i++
		}
		var none T
		return none, false
	}
}
