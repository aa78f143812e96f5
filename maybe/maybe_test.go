package maybe_test

import (
	"strconv"
	"testing"

	. "github.com/npillmayer/pcoll/maybe"
)

func TestMaybeMatching(t *testing.T) {
	x := Just(7) // infers type
	y := Nothing[int]()

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%d)", v)
	case m.Nothing():
		t.Error("expected Just(7) to match Just, didn't")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	switch m := y.Match(); m {
	case m.Just(&v):
		t.Error("expected Nothing to not match Just, did")
	case m.Nothing():
		t.Logf("Nothing")
	}
}

func TestMaybeWithDefault(t *testing.T) {
	if x := Just(7).WithDefault(100); x != 7 {
		t.Logf("x = %d", x)
		t.Error("expected Just(7) to have value 7, isn't")
	}
	if y := Nothing[int]().WithDefault(100); y != 100 {
		t.Logf("y = %d", y)
		t.Error("expected Nothing to default to 100, isn't")
	}
}

func TestMaybeIsNothing(t *testing.T) {
	if IsNothing(Just(7)) {
		t.Error("expected Just(7) to not be Nothing, is")
	}
	if !IsNothing(Nothing[int]()) {
		t.Error("expected Nothing to be Nothing, isn't")
	}
}

func TestMaybeMap(t *testing.T) {
	x := Just(7).Map(func(n int) int { return n * 2 })
	if x.WithDefault(0) != 14 {
		t.Errorf("expected doubled Just(7) to be Just(14), is %s", x)
	}
	s := Map(strconv.Itoa, Just(7))
	if s.WithDefault("") != "7" {
		t.Errorf("expected Just(7) mapped to text to be Just(7), is %s", s)
	}
	if !IsNothing(Map(strconv.Itoa, Nothing[int]())) {
		t.Error("expected mapped Nothing to stay Nothing, doesn't")
	}
}

func TestMaybeAndThen(t *testing.T) {
	half := func(n int) Maybe[int] {
		if n%2 == 0 {
			return Just(n / 2)
		}
		return Nothing[int]()
	}
	if x := AndThen(half, Just(14)); x.WithDefault(0) != 7 {
		t.Errorf("expected half of Just(14) to be Just(7), is %s", x)
	}
	if !IsNothing(AndThen(half, Just(7))) {
		t.Error("expected half of Just(7) to be Nothing, isn't")
	}
	if !IsNothing(AndThen(half, Nothing[int]())) {
		t.Error("expected chaining from Nothing to be Nothing, isn't")
	}
}

func TestMaybeString(t *testing.T) {
	if s := Just(7).String(); s != "Just(7)" {
		t.Errorf("expected Just(7) to print as Just(7), is %q", s)
	}
	if s := Nothing[int]().String(); s != "Nothing" {
		t.Errorf("expected Nothing to print as Nothing, is %q", s)
	}
}
