package analysis

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/san-kum/stalagsim/internal/anim"
	"github.com/san-kum/stalagsim/internal/droplet"
)

func TestDripPeriodFromTrace(t *testing.T) {
	n := droplet.CycleLength()
	d := anim.New(nil)
	tr := anim.NewTrace(0)
	d.AddObserver(tr)
	if err := d.RunTicks(context.Background(), 4*n); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	r, err := DripPeriod(tr.Radii(), 60)
	if err != nil {
		t.Fatalf("analysis failed: %v", err)
	}
	if r.PeakBin != 4 {
		t.Errorf("expected peak bin 4, got %d", r.PeakBin)
	}
	if r.PeriodTicks != float64(n) {
		t.Errorf("expected period %d, got %v", n, r.PeriodTicks)
	}
	if math.Abs(r.FrequencyHz-60/float64(n)) > 1e-12 {
		t.Errorf("unexpected frequency %v", r.FrequencyHz)
	}
	if math.Abs(r.DropsPerMinute()-3600/float64(n)) > 1e-9 {
		t.Errorf("unexpected drip rate %v", r.DropsPerMinute())
	}
}

func TestDripPeriodSine(t *testing.T) {
	data := make([]float64, 256)
	for i := range data {
		data[i] = 3 + math.Sin(2*math.Pi*float64(i)/32)
	}
	r, err := DripPeriod(data, 0)
	if err != nil {
		t.Fatalf("analysis failed: %v", err)
	}
	if r.PeriodTicks != 32 {
		t.Errorf("expected period 32, got %v", r.PeriodTicks)
	}
	if r.FrequencyHz != 0 || !math.IsNaN(r.DropsPerMinute()) {
		t.Error("expected no frequency without fps")
	}
}

func TestDripPeriodFlat(t *testing.T) {
	for _, data := range [][]float64{nil, {1}, {2, 2, 2, 2, 2, 2, 2, 2}} {
		if _, err := DripPeriod(data, 60); !errors.Is(err, ErrFlatSignal) {
			t.Errorf("expected ErrFlatSignal for %v, got %v", data, err)
		}
	}
}

func TestPowerSpectrumLength(t *testing.T) {
	if got := len(PowerSpectrum(make([]float64, 10))); got != 6 {
		t.Errorf("expected 6 bins, got %d", got)
	}
	if PowerSpectrum(nil) != nil {
		t.Error("expected nil spectrum for empty input")
	}
}
