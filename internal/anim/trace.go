package anim

import "github.com/san-kum/stalagsim/internal/droplet"

// Sample is one recorded frame.
type Sample struct {
	Tick        int     `json:"tick"`
	Y           float64 `json:"y"`
	Radius      float64 `json:"radius"`
	IsDetaching bool    `json:"is_detaching"`
}

// Trace records the droplet state after every frame and counts drops.
type Trace struct {
	Samples  []Sample
	Detaches int
	Resets   int
	limit    int
}

// NewTrace keeps at most limit samples, dropping the oldest. A limit of
// zero keeps everything.
func NewTrace(limit int) *Trace {
	capacity := limit
	if capacity <= 0 {
		capacity = 1024
	}
	return &Trace{Samples: make([]Sample, 0, capacity), limit: limit}
}

// NewCycleTrace keeps the most recent drip cycle. Long-running front ends
// use it so the trace stays bounded.
func NewCycleTrace() *Trace { return NewTrace(droplet.CycleLength()) }

func (t *Trace) OnFrame(tick int, s droplet.State, ev droplet.Event) {
	switch ev {
	case droplet.DetachStarted:
		t.Detaches++
	case droplet.Reset:
		t.Resets++
	}
	t.Samples = append(t.Samples, Sample{Tick: tick, Y: s.Y, Radius: s.Radius, IsDetaching: s.IsDetaching})
	if t.limit > 0 && len(t.Samples) > t.limit {
		copy(t.Samples, t.Samples[1:])
		t.Samples = t.Samples[:t.limit]
	}
}

func (t *Trace) Ys() []float64 {
	out := make([]float64, len(t.Samples))
	for i, s := range t.Samples {
		out[i] = s.Y
	}
	return out
}

func (t *Trace) Radii() []float64 {
	out := make([]float64, len(t.Samples))
	for i, s := range t.Samples {
		out[i] = s.Radius
	}
	return out
}

func (t *Trace) Reset() {
	t.Samples = t.Samples[:0]
	t.Detaches, t.Resets = 0, 0
}
