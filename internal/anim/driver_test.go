package anim

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/san-kum/stalagsim/internal/droplet"
	"github.com/san-kum/stalagsim/internal/render"
)

func TestFrameRendersBeforeAdvancing(t *testing.T) {
	rec := render.NewRecorder(render.CanvasWidth, render.CanvasHeight)
	d := New(rec)

	d.Frame()
	drop := rec.Find("ellipse")[0]
	if drop.Args[1] != droplet.InitialY {
		t.Errorf("expected first frame drawn at y=%v, got %v", droplet.InitialY, drop.Args[1])
	}
	if d.State().Y != droplet.InitialY+droplet.DropSpeed {
		t.Errorf("expected state advanced to %v, got %v", droplet.InitialY+droplet.DropSpeed, d.State().Y)
	}
	if d.Ticks() != 1 {
		t.Errorf("expected 1 tick, got %d", d.Ticks())
	}
}

func TestRunTicksFullCycle(t *testing.T) {
	d := New(nil)
	tr := NewTrace(0)
	d.AddObserver(tr)

	n := droplet.CycleLength()
	if err := d.RunTicks(context.Background(), 3*n); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if d.State() != droplet.Initial() {
		t.Errorf("expected initial state after whole cycles, got %+v", d.State())
	}
	if tr.Detaches != 3 || tr.Resets != 3 {
		t.Errorf("expected 3 detaches and resets, got %d %d", tr.Detaches, tr.Resets)
	}
	if len(tr.Samples) != 3*n {
		t.Errorf("expected %d samples, got %d", 3*n, len(tr.Samples))
	}
	if tr.Samples[0].Tick != 1 {
		t.Errorf("expected first tick 1, got %d", tr.Samples[0].Tick)
	}
}

func TestTraceLimit(t *testing.T) {
	d := New(nil)
	tr := NewTrace(10)
	d.AddObserver(tr)
	_ = d.RunTicks(context.Background(), 25)

	if len(tr.Samples) != 10 {
		t.Fatalf("expected 10 samples, got %d", len(tr.Samples))
	}
	if tr.Samples[0].Tick != 16 {
		t.Errorf("expected oldest tick 16, got %d", tr.Samples[0].Tick)
	}
	if len(tr.Ys()) != 10 || len(tr.Radii()) != 10 {
		t.Error("unexpected series length")
	}

	tr.Reset()
	if len(tr.Samples) != 0 {
		t.Error("expected empty trace after reset")
	}
}

func TestCycleTraceStaysBounded(t *testing.T) {
	d := New(nil)
	tr := NewCycleTrace()
	d.AddObserver(tr)

	n := droplet.CycleLength()
	_ = d.RunTicks(context.Background(), 20*n+7)

	if len(tr.Samples) != n {
		t.Fatalf("expected %d samples, got %d", n, len(tr.Samples))
	}
	if c := cap(tr.Samples); c > 2*n+1 {
		t.Errorf("expected capacity near %d, got %d", n, c)
	}
	if last := tr.Samples[n-1].Tick; last != 20*n+7 {
		t.Errorf("expected newest tick %d, got %d", 20*n+7, last)
	}
	if tr.Samples[0].Tick != 19*n+8 {
		t.Errorf("expected oldest tick %d, got %d", 19*n+8, tr.Samples[0].Tick)
	}
	if tr.Detaches != 20 {
		t.Errorf("expected 20 detaches counted, got %d", tr.Detaches)
	}
}

func TestObserverFunc(t *testing.T) {
	d := New(nil)
	var events []droplet.Event
	d.AddObserver(ObserverFunc(func(tick int, s droplet.State, ev droplet.Event) {
		if ev != droplet.None {
			events = append(events, ev)
		}
	}))
	_ = d.RunTicks(context.Background(), droplet.CycleLength())

	if len(events) != 2 || events[0] != droplet.DetachStarted || events[1] != droplet.Reset {
		t.Errorf("unexpected events %v", events)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	d := New(nil)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := d.Run(ctx, 1000)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
	if d.Ticks() == 0 {
		t.Error("expected some frames before the deadline")
	}
}

func TestRunRejectsBadFPS(t *testing.T) {
	if err := New(nil).Run(context.Background(), 0); err == nil {
		t.Error("expected error for zero fps")
	}
}

func TestRunTicksCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d := New(nil)
	if err := d.RunTicks(ctx, 10); !errors.Is(err, context.Canceled) {
		t.Errorf("expected canceled, got %v", err)
	}
	if d.Ticks() != 0 {
		t.Errorf("expected no ticks, got %d", d.Ticks())
	}
}

func TestReset(t *testing.T) {
	d := New(nil)
	_ = d.RunTicks(context.Background(), 5)
	d.Reset()
	if d.Ticks() != 0 || d.State() != droplet.Initial() {
		t.Error("reset did not restore the initial state")
	}
}
