package list

import "fmt"

// cell is one immutable list node. A cell is shared between all lists that
// contain it; after construction it is never written again.
type cell[T any] struct {
	value T
	next  *cell[T]
}

// builder assembles a fresh list front-to-back in one pass, without a
// trailing reversal. It appends by writing the next-link of the cell it
// created last — cells under construction are private to the builder, so
// no published cell is ever mutated.
type builder[T any] struct {
	head, tail *cell[T]
}

func (b *builder[T]) append(v T) {
	c := &cell[T]{value: v}
	if b.tail == nil {
		b.head = c
	} else {
		b.tail.next = c
	}
	b.tail = c
}

// graft closes the builder with an existing list as suffix. The suffix'
// cells are shared, not copied. No further appends may follow.
func (b *builder[T]) graft(l List[T]) {
	if b.tail == nil {
		b.head = l.head
	} else {
		b.tail.next = l.head
	}
	b.tail = nil
}

func (b *builder[T]) list() List[T] {
	return List[T]{head: b.head}
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("list: "+msg, msgargs...)
		panic(msg)
	}
}
