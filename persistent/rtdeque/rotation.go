package rtdeque

import (
	"github.com/npillmayer/pcoll"
	"github.com/npillmayer/pcoll/persistent/list"
)

// Tuning of the rotation schedule. rotationStepsPerOp is the fixed number
// of cell moves every public operation contributes to an in-progress
// rotation; minRotationSize is the total size below which the deque
// rebuilds eagerly instead (a bounded amount of work, so the worst-case
// claim is unharmed). With a ratio-2 trigger, a rotation costs about
// 2(b+s)+m cell moves while the short side affords s pops, which 8 steps
// per operation outruns comfortably; TestWorstCaseStepBound checks the
// margin empirically.
const (
	rotationStepsPerOp = 8
	minRotationSize    = 16
)

// side is one half of the deque, holding its elements outermost-first in
// up to two stacked list segments. Pushes cons onto top; pops drain top
// before bot. Keeping two segments lets a completed rotation install its
// rebuilt list underneath the pushes that arrived while it ran, in O(1).
type side[T any] struct {
	top, bot list.List[T]
	n        int
}

func (s side[T]) push(x T) side[T] {
	return side[T]{top: s.top.Push(x), bot: s.bot, n: s.n + 1}
}

// cursor reads through the two segments of a side snapshot, outside-in.
type cursor[T any] struct {
	a, b list.List[T]
}

func (c cursor[T]) empty() bool {
	return c.a.IsEmpty() && c.b.IsEmpty()
}

func (c cursor[T]) uncons() (T, cursor[T]) {
	if v, rest, ok := c.a.Uncons(); ok {
		return v, cursor[T]{a: rest, b: c.b}
	}
	v, rest, ok := c.b.Uncons()
	assertThat(ok, "attempt to read past the end of a rotation snapshot")
	return v, cursor[T]{a: rest}
}

// --- Rotation state machine ------------------------------------------------

// A rotation incrementally rebuilds both sides of an unbalanced deque from
// a snapshot taken when it started: the long (big) side is reversed, its
// deepest `move` cells migrate to the short (small) side, and both
// replacement lists are assembled a few cells per operation. The deque
// keeps serving pops from the snapshot through the read cursors while the
// rebuild runs; validity counters record which snapshot cells have been
// popped away so the rebuilt lists neither skip nor duplicate an element.
//
// Replacement lists are consed deepest cell first. The element a pop
// removes is therefore either not yet consed — its validity counter drops
// and it simply never gets consed — or it is the head of the partially
// built list and is popped from there directly.
const (
	phaseReversing  = iota // reverse both snapshot sides, one cell each per step
	phaseExtracting        // pull the migrating cells off the reversed big side
	phaseBuilding          // un-reverse migrated cells and the big side's keep region
	phaseConsing           // cons the small side's still-valid cells on top
	phaseDone
)

type rotation[T any] struct {
	smallFront bool // true if the front is the short side being grown

	// read cursors serving pops at the outer ends
	smallRead cursor[T]
	bigRead   cursor[T]

	// sValid/bValid: snapshot cells still logically present (for the big
	// side: in its keep region); sConsed/bConsed: cells already consed
	// onto the replacement lists
	sValid, sConsed int
	bValid, bConsed int

	phase     int
	move      int // cells migrating from big to small
	toExtract int // migrating cells not yet pulled off bigRev
	smallRem  cursor[T]
	bigRem    cursor[T]
	smallRev  list.List[T]
	bigRev    list.List[T]
	xRev      list.List[T]

	builtSmall list.List[T]
	builtBig   list.List[T]
}

func (rot *rotation[T]) clone() *rotation[T] {
	c := *rot
	return &c
}

// advance runs the state machine for at most `budget` cell moves. Every
// public deque operation calls it exactly once, so no single call ever
// performs more than rotationStepsPerOp moves.
func (rot *rotation[T]) advance(budget int) {
	for budget > 0 && rot.phase != phaseDone {
		switch rot.phase {
		case phaseReversing:
			if !rot.smallRem.empty() {
				var v T
				v, rot.smallRem = rot.smallRem.uncons()
				rot.smallRev = rot.smallRev.Push(v)
				countCells(1)
				budget--
			}
			if budget > 0 && !rot.bigRem.empty() {
				var v T
				v, rot.bigRem = rot.bigRem.uncons()
				rot.bigRev = rot.bigRev.Push(v)
				countCells(1)
				budget--
			}
			if rot.smallRem.empty() && rot.bigRem.empty() {
				rot.phase = phaseExtracting
			}
		case phaseExtracting:
			if rot.toExtract == 0 {
				rot.phase = phaseBuilding
				continue
			}
			v, rest, ok := rot.bigRev.Uncons()
			assertThat(ok, "rotation ran out of cells to migrate")
			rot.bigRev = rest
			rot.xRev = rot.xRev.Push(v)
			rot.toExtract--
			countCells(1)
			budget--
			if rot.toExtract == 0 {
				rot.phase = phaseBuilding
			}
		case phaseBuilding:
			if v, rest, ok := rot.xRev.Uncons(); ok {
				rot.xRev = rest
				rot.builtSmall = rot.builtSmall.Push(v)
				countCells(1)
				budget--
			}
			if budget > 0 && rot.bConsed < rot.bValid {
				v, rest, ok := rot.bigRev.Uncons()
				assertThat(ok, "rotation ran out of retained cells")
				rot.bigRev = rest
				rot.builtBig = rot.builtBig.Push(v)
				rot.bConsed++
				countCells(1)
				budget--
			}
			if rot.xRev.IsEmpty() && rot.bConsed >= rot.bValid {
				rot.phase = phaseConsing
			}
		case phaseConsing:
			if rot.sConsed < rot.sValid {
				v, rest, ok := rot.smallRev.Uncons()
				assertThat(ok, "rotation ran out of cells on the short side")
				rot.smallRev = rest
				rot.builtSmall = rot.builtSmall.Push(v)
				rot.sConsed++
				countCells(1)
				budget--
			}
			if rot.sConsed >= rot.sValid {
				rot.phase = phaseDone
			}
		}
	}
}

// popOuter serves a pop at the front or rear end from the snapshot, after
// the side's extras are exhausted. The validity counters guarantee the
// popped cell is dropped from the rebuild as well.
func (rot *rotation[T]) popOuter(front bool) T {
	if front == rot.smallFront {
		assertThat(rot.sValid > 0, "pop overran the rotation's short-side snapshot")
		var v T
		v, rot.smallRead = rot.smallRead.uncons()
		if rot.sConsed == rot.sValid {
			rot.builtSmall = rot.builtSmall.Tail()
			rot.sConsed--
		}
		rot.sValid--
		return v
	}
	assertThat(rot.bValid > 0, "pop overran the rotation's long-side snapshot")
	var v T
	v, rot.bigRead = rot.bigRead.uncons()
	if rot.bConsed == rot.bValid {
		rot.builtBig = rot.builtBig.Tail()
		rot.bConsed--
	}
	rot.bValid--
	return v
}

func (rot *rotation[T]) readCursor(front bool) cursor[T] {
	if front == rot.smallFront {
		return rot.smallRead
	}
	return rot.bigRead
}

// --- Deque plumbing --------------------------------------------------------

// step advances an in-progress rotation by the per-operation budget and
// installs the rebuilt lists once the rotation completes. The rotation is
// cloned first — the receiver and all its ancestors stay untouched.
func (q Deque[T]) step() Deque[T] {
	if q.rot == nil {
		return q
	}
	rot := q.rot.clone()
	rot.advance(rotationStepsPerOp)
	if rot.phase == phaseDone {
		return q.install(rot)
	}
	q.rot = rot
	return q
}

// install atomically replaces the side bottoms with the rebuilt lists and
// transfers the migrated cells' count from the long side to the short one.
func (q Deque[T]) install(rot *rotation[T]) Deque[T] {
	if rot.smallFront {
		q.f.bot = rot.builtSmall
		q.r.bot = rot.builtBig
		q.f.n += rot.move
		q.r.n -= rot.move
	} else {
		q.r.bot = rot.builtSmall
		q.f.bot = rot.builtBig
		q.r.n += rot.move
		q.f.n -= rot.move
	}
	q.rot = nil
	tracer().Debugf("rotation complete: fn=%d, rn=%d", q.f.n, q.r.n)
	return q
}

// maintain checks the balance invariant after an operation on an idle
// deque and starts a rotation when one side has fallen to half the other.
// A lopsided deque that has just grown past the rotation threshold (where
// the short side is too short to pay for a rotation) is rebuilt eagerly —
// such a state can only be reached at total size minRotationSize, so the
// eager rebuild is bounded work.
func (q Deque[T]) maintain() Deque[T] {
	if q.rot != nil {
		return q
	}
	total := q.f.n + q.r.n
	if total < minRotationSize {
		return q
	}
	s, b := q.f.n, q.r.n
	if s > b {
		s, b = b, s
	}
	if b <= 2*s+1 {
		return q
	}
	if rotationViable(s, b) {
		return q.startRotation().step()
	}
	assertThat(total <= 2*minRotationSize, "unbalanced deque of size %d too large for an eager rebuild", total)
	return q.rebuild((total + 1) / 2)
}

// rotationViable reports whether an incremental rotation is guaranteed to
// finish before pops can drain the short-side snapshot: the rotation needs
// about 2(b+s) + (b-s)/2 cell moves, while the short side affords s
// operations of rotationStepsPerOp moves each — plus the s moves the pops
// themselves shave off the final consing phase.
func rotationViable(s, b int) bool {
	work := 2*(b+s) + (b-s)/2
	return (rotationStepsPerOp+1)*s > work
}

func (q Deque[T]) startRotation() Deque[T] {
	smallFront := q.f.n < q.r.n
	small, big := q.f, q.r
	if !smallFront {
		small, big = q.r, q.f
	}
	m := (big.n - small.n) / 2
	snapSmall := cursor[T]{a: small.top, b: small.bot}
	snapBig := cursor[T]{a: big.top, b: big.bot}
	q.rot = &rotation[T]{
		smallFront: smallFront,
		smallRead:  snapSmall,
		bigRead:    snapBig,
		smallRem:   snapSmall,
		bigRem:     snapBig,
		sValid:     small.n,
		bValid:     big.n - m,
		move:       m,
		toExtract:  m,
		phase:      phaseReversing,
	}
	tracer().Debugf("starting rotation: moving %d of %d cells to the short side", m, big.n)
	// the snapshot owns all current cells; pushes from here on go to fresh extras
	q.f = side[T]{n: q.f.n}
	q.r = side[T]{n: q.r.n}
	return q
}

// rebuild redistributes all elements over both sides in one go, the first
// frontHalf of them on the front. Only invoked on idle deques of bounded
// size.
func (q Deque[T]) rebuild(frontHalf int) Deque[T] {
	total := q.f.n + q.r.n
	tracer().Debugf("eager rebuild of deque of size %d", total)
	countCells(2 * total)
	all := reversalOf(q.valuesBack()) // all elements, front to back
	near, far := all.Split(frontHalf)
	return Deque[T]{
		f: side[T]{bot: near, n: frontHalf},
		r: side[T]{bot: far.Reverse(), n: total - frontHalf},
	}
}

// popFrontCell removes and returns the first element. The deque must not
// be empty and must have had its rotation stepped already.
func (q Deque[T]) popFrontCell() (T, Deque[T]) {
	if v, rest, ok := q.f.top.Uncons(); ok {
		q.f = side[T]{top: rest, bot: q.f.bot, n: q.f.n - 1}
		return v, q
	}
	if q.rot != nil {
		rot := q.rot.clone()
		v := rot.popOuter(true)
		q.rot = rot
		q.f.n--
		return v, q
	}
	if q.f.bot.IsEmpty() {
		assertThat(q.Len() < minRotationSize, "empty front side in a deque of size %d", q.Len())
		q = q.rebuild((q.Len() + 1) / 2)
	}
	v, rest, ok := q.f.bot.Uncons()
	assertThat(ok, "front count out of sync with front cells")
	q.f = side[T]{top: q.f.top, bot: rest, n: q.f.n - 1}
	return v, q
}

// popBackCell is the mirror image of popFrontCell.
func (q Deque[T]) popBackCell() (T, Deque[T]) {
	if v, rest, ok := q.r.top.Uncons(); ok {
		q.r = side[T]{top: rest, bot: q.r.bot, n: q.r.n - 1}
		return v, q
	}
	if q.rot != nil {
		rot := q.rot.clone()
		v := rot.popOuter(false)
		q.rot = rot
		q.r.n--
		return v, q
	}
	if q.r.bot.IsEmpty() {
		assertThat(q.Len() < minRotationSize, "empty rear side in a deque of size %d", q.Len())
		q = q.rebuild(q.Len() / 2)
	}
	v, rest, ok := q.r.bot.Uncons()
	assertThat(ok, "rear count out of sync with rear cells")
	q.r = side[T]{top: q.r.top, bot: rest, n: q.r.n - 1}
	return v, q
}

// sideSeq iterates one side's cells outside-in, snapshot cursor included.
func (q Deque[T]) sideSeq(front bool) pcoll.Seq[T] {
	s := q.f
	if !front {
		s = q.r
	}
	if q.rot == nil {
		return pcoll.ConcatSeq(s.top.Values(), s.bot.Values())
	}
	cur := q.rot.readCursor(front)
	return pcoll.ConcatSeq(s.top.Values(), cur.a.Values(), cur.b.Values())
}

// reversalOf drains a sequence into a list holding its elements in
// opposite order.
func reversalOf[T any](seq pcoll.Seq[T]) list.List[T] {
	acc := list.List[T]{}
	for v, ok := seq(); ok; v, ok = seq() {
		acc = acc.Push(v)
	}
	return acc
}
