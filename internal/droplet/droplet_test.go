package droplet

import (
	"math"
	"testing"
)

func TestInitial(t *testing.T) {
	s := Initial()
	if s.Y != 50 || s.Radius != 8 || s.IsDetaching {
		t.Errorf("unexpected initial state %+v", s)
	}
	if s.Phase() != Growing {
		t.Errorf("expected growing, got %s", s.Phase())
	}
}

func TestGrowingPhase(t *testing.T) {
	s := Initial()
	for i := 0; i < 600; i++ {
		if s.IsDetaching {
			t.Fatalf("tick %d: detaching too early at y=%v", i, s.Y)
		}
		s = Tick(s)
	}
	if s.Y != MaxDropY {
		t.Errorf("expected y=%v after 600 ticks, got %v", MaxDropY, s.Y)
	}
	if s.IsDetaching || s.Radius != InitialRadius {
		t.Errorf("expected still growing with full radius, got %+v", s)
	}
}

func TestDetachTransition(t *testing.T) {
	s := State{Y: MaxDropY, Radius: InitialRadius}
	next, ev := Step(s)
	if ev != DetachStarted {
		t.Errorf("expected detach event, got %s", ev)
	}
	if !next.IsDetaching {
		t.Error("expected detaching after crossing the line")
	}
	if next.Y != 350.75 {
		t.Errorf("expected y=350.75, got %v", next.Y)
	}
	if next.Radius != 7.9 {
		t.Errorf("expected radius 7.9, got %v", next.Radius)
	}

	_, ev = Step(next)
	if ev != None {
		t.Errorf("expected no event while detaching, got %s", ev)
	}
}

func TestRadiusShrinksByTenths(t *testing.T) {
	s := State{Y: MaxDropY, Radius: InitialRadius, IsDetaching: true}
	prev := s.Radius
	for i := 0; i < 79; i++ {
		s = Tick(s)
		if !s.IsDetaching {
			t.Fatalf("tick %d: reset too early", i)
		}
		want := math.Round((prev-ShrinkStep)*10) / 10
		if s.Radius != want {
			t.Fatalf("tick %d: expected radius %v, got %v", i, want, s.Radius)
		}
		if s.Radius >= prev {
			t.Fatalf("tick %d: radius did not decrease", i)
		}
		prev = s.Radius
	}
	if s.Radius != 0.1 {
		t.Fatalf("expected radius 0.1 before reset, got %v", s.Radius)
	}

	s, ev := Step(s)
	if ev != Reset {
		t.Errorf("expected reset event, got %s", ev)
	}
	if s != Initial() {
		t.Errorf("expected initial state after reset, got %+v", s)
	}
}

func TestCycleLength(t *testing.T) {
	if n := CycleLength(); n != 680 {
		t.Errorf("expected 680 ticks per cycle, got %d", n)
	}
}

func TestCycleHasNoDrift(t *testing.T) {
	n := CycleLength()
	first := make([]State, n)
	s := Initial()
	for i := range first {
		s = Tick(s)
		first[i] = s
	}

	for cycle := 1; cycle < 20; cycle++ {
		for i := 0; i < n; i++ {
			s = Tick(s)
			if s != first[i] {
				t.Fatalf("cycle %d tick %d: expected %+v, got %+v", cycle, i, first[i], s)
			}
		}
	}
}

func TestRadii(t *testing.T) {
	rx, ry := Initial().Radii()
	if rx != 8 || math.Abs(ry-11.2) > 1e-12 {
		t.Errorf("growing drop: expected (8, 11.2), got (%v, %v)", rx, ry)
	}

	rx, ry = State{Y: 360, Radius: 4, IsDetaching: true}.Radii()
	if rx != 4 || ry != 4 {
		t.Errorf("detaching drop: expected (4, 4), got (%v, %v)", rx, ry)
	}
}

func TestStrings(t *testing.T) {
	if Detaching.String() != "detaching" || Growing.String() != "growing" {
		t.Error("unexpected phase names")
	}
	if Reset.String() != "reset" || DetachStarted.String() != "detach" || None.String() != "none" {
		t.Error("unexpected event names")
	}
}
