// Package anim drives the droplet animation: render the current state,
// then advance it, once per frame.
package anim

import (
	"context"
	"fmt"
	"time"

	"github.com/san-kum/stalagsim/internal/droplet"
	"github.com/san-kum/stalagsim/internal/render"
)

// Observer is notified after each frame with the tick number, the state
// that was advanced to and the transition crossed on the way.
type Observer interface {
	OnFrame(tick int, s droplet.State, ev droplet.Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(tick int, s droplet.State, ev droplet.Event)

func (f ObserverFunc) OnFrame(tick int, s droplet.State, ev droplet.Event) { f(tick, s, ev) }

// Driver owns the droplet state for one animation. A nil surface runs the
// state machine without drawing.
type Driver struct {
	surface   render.Surface
	state     droplet.State
	tick      int
	observers []Observer
}

func New(surface render.Surface) *Driver {
	return &Driver{
		surface:   surface,
		state:     droplet.Initial(),
		observers: make([]Observer, 0),
	}
}

func (d *Driver) AddObserver(o Observer) { d.observers = append(d.observers, o) }

func (d *Driver) State() droplet.State { return d.state }
func (d *Driver) Ticks() int           { return d.tick }

// SetSurface swaps the drawing target, e.g. after a terminal resize.
func (d *Driver) SetSurface(s render.Surface) { d.surface = s }

// Reset puts the droplet back at its initial state and tick zero.
func (d *Driver) Reset() {
	d.state = droplet.Initial()
	d.tick = 0
}

// Frame draws the current state and then advances it by one tick.
func (d *Driver) Frame() droplet.Event {
	if d.surface != nil {
		render.Frame(d.surface, d.state)
	}
	return d.Advance()
}

// Advance moves the state machine one tick without drawing.
func (d *Driver) Advance() droplet.Event {
	var ev droplet.Event
	d.state, ev = droplet.Step(d.state)
	d.tick++
	for _, o := range d.observers {
		o.OnFrame(d.tick, d.state, ev)
	}
	return ev
}

// Run calls Frame at fps until ctx is done. It returns ctx.Err().
func (d *Driver) Run(ctx context.Context, fps int) error {
	if fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", fps)
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			d.Frame()
		}
	}
}

// RunTicks advances n frames as fast as possible, checking ctx between
// frames.
func (d *Driver) RunTicks(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		d.Frame()
	}
	return nil
}
