package lab

import (
	"context"
	"errors"
	"testing"

	"github.com/san-kum/stalagsim/internal/catalog"
)

func TestGridSweep(t *testing.T) {
	base := NewModel(catalog.Default(), defaultForm()).Parameters()
	grid, err := NewGrid([]Field{FieldDropMass, FieldRadius}, [][]float64{{0.001, 0.002}, {0.25, 0.5, 1}})
	if err != nil {
		t.Fatalf("grid failed: %v", err)
	}

	points, err := grid.Sweep(context.Background(), base)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if len(points) != 6 {
		t.Fatalf("expected 6 points, got %d", len(points))
	}

	last := points[len(points)-1]
	if last.DropMass != 0.002 || last.Radius != 1 {
		t.Errorf("unexpected last point %+v", last)
	}

	p := base
	p.DropMass, p.Radius = 0.002, 0.5
	if points[4].Result != Calculate(p) {
		t.Errorf("point 4 mismatch: %+v", points[4])
	}
}

func TestGridValidation(t *testing.T) {
	if _, err := NewGrid([]Field{FieldDropMass}, nil); err == nil {
		t.Error("expected length mismatch error")
	}
	if _, err := NewGrid([]Field{"volume"}, [][]float64{{1}}); !errors.Is(err, ErrUnknownField) {
		t.Errorf("expected ErrUnknownField, got %v", err)
	}
}

func TestGridSweepCanceled(t *testing.T) {
	grid, _ := NewGrid([]Field{FieldDropMass}, [][]float64{{1, 2}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := grid.Sweep(ctx, Parameters{}); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestLinspace(t *testing.T) {
	v := Linspace(0, 1, 5)
	want := []float64{0, 0.25, 0.5, 0.75, 1}
	for i := range want {
		if v[i] != want[i] {
			t.Errorf("index %d: expected %v, got %v", i, want[i], v[i])
		}
	}
	if Linspace(0, 1, 0) != nil {
		t.Error("expected nil for n=0")
	}
	if got := Linspace(3, 9, 1); len(got) != 1 || got[0] != 3 {
		t.Errorf("unexpected single-point linspace %v", got)
	}
}
