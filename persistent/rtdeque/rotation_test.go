package rtdeque

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/npillmayer/pcoll"
	"github.com/npillmayer/pcoll/maybe"
	"github.com/npillmayer/pcoll/persistent/deque"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/xlab/treeprint"
)

// Drive a real-time deque and an amortized one through the same random
// script and require identical contents after every single operation.
func TestRotationPreservesOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcoll.rtdeque")
	defer teardown()
	//
	rng := rand.New(rand.NewSource(42))
	q := Immutable[int]()
	a := deque.Immutable[int]()
	for i := 0; i < 3000; i++ {
		op := rng.Intn(6)
		switch {
		case op <= 1:
			q, a = q.PushBack(i), a.PushBack(i)
		case op <= 3:
			q, a = q.PushFront(i), a.PushFront(i)
		case op == 4:
			var v, w maybe.Maybe[int]
			v, q = q.PopFront()
			w, a = a.PopFront()
			if v.WithDefault(-1) != w.WithDefault(-1) {
				t.Fatalf("op %d: front pops disagree, %s versus %s\n%s", i, v, w, dumpDeque(q))
			}
		default:
			var v, w maybe.Maybe[int]
			v, q = q.PopBack()
			w, a = a.PopBack()
			if v.WithDefault(-1) != w.WithDefault(-1) {
				t.Fatalf("op %d: back pops disagree, %s versus %s\n%s", i, v, w, dumpDeque(q))
			}
		}
		if q.Len() != a.Len() || !pcoll.EqualSeq(q.Values(), a.Values()) {
			t.Fatalf("op %d: contents diverged, %s versus %s\n%s", i, q, a, dumpDeque(q))
		}
	}
}

// Every operation must finish within a fixed number of cell moves, no
// matter how large the deque has grown. An operation pays at most
// rotationStepsPerOp twice (stepping an old rotation to completion and
// kicking off a new one), plus a bounded eager rebuild near the size
// threshold.
func TestWorstCaseStepBound(t *testing.T) {
	const n = 100000
	const bound = 4 * minRotationSize
	q := Immutable[int]()
	max, maxAt := 0, 0
	probe := func(i int) {
		if steps := cellMeter(); steps > max {
			max, maxAt = steps, i
		}
		resetCellMeter()
	}
	resetCellMeter()
	for i := 0; i < n; i++ {
		q = q.PushBack(i)
		probe(i)
	}
	for i := 0; !q.IsEmpty(); i++ {
		if i%2 == 0 {
			_, q = q.PopFront()
		} else {
			_, q = q.PopBack()
		}
		probe(n + i)
	}
	if max > bound {
		t.Errorf("expected every operation to move at most %d cells, op %d moved %d", bound, maxAt, max)
	}
	t.Logf("worst operation moved %d cells (bound %d)", max, bound)
}

// A value captured in mid-rotation is a value like any other: its
// contents must survive arbitrary operations on its descendants.
func TestRotationPersistence(t *testing.T) {
	q := Immutable[int]()
	for i := 0; i < 26; i++ {
		q = q.PushBack(i)
	}
	if q.rot == nil {
		t.Fatalf("expected a deque of 26 rear pushes to be rotating, isn't\n%s", dumpDeque(q))
	}
	want := pcoll.Slice(q.Values())
	a, b := q, q
	for i := 0; i < 40; i++ { // drive a's rotation to completion and beyond
		a = a.PushFront(100 + i)
	}
	for !b.IsEmpty() {
		_, b = b.PopBack()
	}
	if !pcoll.EqualSeq(q.Values(), pcoll.SeqOf(want...)) {
		t.Errorf("expected the mid-rotation value to be unchanged, is %s", q)
	}
	if a.Len() != 66 || !b.IsEmpty() {
		t.Errorf("expected independent futures of lengths 66 and 0, got %d and %d", a.Len(), b.Len())
	}
}

// Pops served during a rotation must come off the snapshot in order, at
// both ends, and the installed result must reflect them.
func TestRotationServesPops(t *testing.T) {
	q := Immutable[int]()
	for i := 0; i < 26; i++ {
		q = q.PushBack(i)
	}
	if q.rot == nil {
		t.Fatal("expected the deque to be rotating, isn't")
	}
	for i := 0; i < 4; i++ {
		var v maybe.Maybe[int]
		v, q = q.PopFront()
		if v.WithDefault(-1) != i {
			t.Fatalf("expected front pop #%d to yield %d, got %s\n%s", i, i, v, dumpDeque(q))
		}
		v, q = q.PopBack()
		if v.WithDefault(-1) != 25-i {
			t.Fatalf("expected back pop #%d to yield %d, got %s\n%s", i, 25-i, v, dumpDeque(q))
		}
	}
	for q.rot != nil { // idle pushes finish the rotation
		q = q.PushBack(99)
		_, q = q.PopBack()
	}
	rest := pcoll.Slice(q.Values())
	for i, v := range rest {
		if v != 4+i {
			t.Errorf("expected element %d of the settled deque to be %d, is %d", i, 4+i, v)
		}
	}
	if len(rest) != 18 {
		t.Errorf("expected 18 elements to remain, got %d", len(rest))
	}
}

func TestRotationCompletes(t *testing.T) {
	q := Immutable[int]()
	for i := 0; i < 26; i++ {
		q = q.PushBack(i)
	}
	steps := 0
	for q.rot != nil {
		q = q.step()
		steps++
		if steps > 100 {
			t.Fatalf("expected the rotation to complete, is still at\n%s", dumpDeque(q))
		}
	}
	if q.f.n <= 8 {
		t.Errorf("expected the install to have grown the front side beyond 8, fn=%d", q.f.n)
	}
	if q.f.n+q.r.n != 26 || !pcoll.EqualSeq(q.Values(), iotaSeq(26)) {
		t.Errorf("expected the installed deque to hold 0…25, is %s", q)
	}
}

// ---------------------------------------------------------------------------

var phaseNames = map[int]string{
	phaseReversing:  "reversing",
	phaseExtracting: "extracting",
	phaseBuilding:   "building",
	phaseConsing:    "consing",
	phaseDone:       "done",
}

// dumpDeque renders the internal state of a deque for test failures.
func dumpDeque[T any](q Deque[T]) string {
	tree := treeprint.New()
	tree.SetValue(fmt.Sprintf("Deque(%d)", q.Len()))
	front := tree.AddBranch(fmt.Sprintf("front n=%d", q.f.n))
	front.AddNode(fmt.Sprintf("top=%s", q.f.top))
	front.AddNode(fmt.Sprintf("bot=%s", q.f.bot))
	rear := tree.AddBranch(fmt.Sprintf("rear n=%d", q.r.n))
	rear.AddNode(fmt.Sprintf("top=%s", q.r.top))
	rear.AddNode(fmt.Sprintf("bot=%s", q.r.bot))
	if q.rot != nil {
		rot := tree.AddBranch(fmt.Sprintf("rotation %s, move=%d", phaseNames[q.rot.phase], q.rot.move))
		rot.AddNode(fmt.Sprintf("small: valid=%d consed=%d", q.rot.sValid, q.rot.sConsed))
		rot.AddNode(fmt.Sprintf("big:   valid=%d consed=%d", q.rot.bValid, q.rot.bConsed))
	}
	return tree.String()
}
