// Package droplet holds the droplet state machine of the stalagmometer
// animation. Tick is pure; rendering lives in package render.
package droplet

import "math"

const (
	InitialY      = 50.0
	InitialRadius = 8.0

	// MaxDropY is the detachment line.
	MaxDropY = 350.0

	// DropSpeed is the growing descent per tick; detaching drops fall
	// DetachSpeedFactor times faster.
	DropSpeed         = 0.5
	DetachSpeedFactor = 1.5

	// ShrinkStep is the radius lost per detaching tick.
	ShrinkStep = 0.1

	tenths = 1 / ShrinkStep

	// StretchFactor scales the vertical radius of a stretched droplet.
	StretchFactor = 1.4
)

// State is the droplet position and size in canvas pixels.
type State struct {
	Y           float64
	Radius      float64
	IsDetaching bool
}

// Initial returns the state a new droplet starts from.
func Initial() State {
	return State{Y: InitialY, Radius: InitialRadius}
}

type Phase int

const (
	Growing Phase = iota
	Detaching
)

func (p Phase) String() string {
	if p == Detaching {
		return "detaching"
	}
	return "growing"
}

func (s State) Phase() Phase {
	if s.IsDetaching {
		return Detaching
	}
	return Growing
}

// Stretched reports whether the droplet is drawn elongated. It is the
// negation of IsDetaching: the drop hangs stretched while it grows.
func (s State) Stretched() bool { return !s.IsDetaching }

// Radii returns the horizontal and vertical ellipse radii to draw.
func (s State) Radii() (rx, ry float64) {
	k := 1.0
	if s.Stretched() {
		k = StretchFactor
	}
	return s.Radius, s.Radius * k
}

// Event marks a phase transition produced by Step.
type Event int

const (
	None Event = iota
	DetachStarted
	Reset
)

func (e Event) String() string {
	switch e {
	case DetachStarted:
		return "detach"
	case Reset:
		return "reset"
	}
	return "none"
}

// Tick advances the droplet by one frame.
func Tick(s State) State {
	next, _ := Step(s)
	return next
}

// Step advances the droplet by one frame and reports the transition it
// crossed, if any.
func Step(s State) (State, Event) {
	ev := None
	if s.Y < MaxDropY && !s.IsDetaching {
		s.Y += DropSpeed
	} else {
		if !s.IsDetaching {
			ev = DetachStarted
		}
		s.IsDetaching = true
		s.Radius = shrink(s.Radius)
		s.Y += DropSpeed * DetachSpeedFactor
	}

	if s.Radius <= 0 {
		return Initial(), Reset
	}
	return s, ev
}

// shrink subtracts ShrinkStep on a tenth-of-a-pixel grid so repeated
// decrements never accumulate rounding error.
func shrink(r float64) float64 {
	return math.Round(r*tenths-1) / tenths
}

// CycleLength returns the number of ticks from Initial back to Initial.
func CycleLength() int {
	s, n := Initial(), 0
	for {
		var ev Event
		s, ev = Step(s)
		n++
		if ev == Reset {
			return n
		}
	}
}
