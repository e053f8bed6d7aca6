package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const (
	PlinkDuration = 140 * time.Millisecond
	PlinkAttack   = 4 * time.Millisecond
	PlinkRelease  = 120 * time.Millisecond

	plinkStartFreq = 1400.0
	plinkEndFreq   = 700.0
)

// glide is a sine oscillator whose pitch falls exponentially from start to
// end over its duration, like a drop hitting water.
type glide struct {
	start, end float64
	phase      float64
	duration   int
	position   int
	rate       beep.SampleRate
}

func NewGlide(start, end float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &glide{start: start, end: end, duration: rate.N(duration), rate: rate}
}

func (g *glide) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.position >= g.duration {
			return i, i > 0
		}
		val := math.Sin(2 * math.Pi * g.phase)
		samples[i][0] = val
		samples[i][1] = val

		t := float64(g.position) / float64(g.duration)
		freq := g.start * math.Pow(g.end/g.start, t)
		g.phase += freq / float64(g.rate)
		g.phase -= math.Floor(g.phase)
		g.position++
	}
	return len(samples), true
}

func (g *glide) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if remaining := e.totalSamples - e.position; remaining < e.releaseSamples {
			vol = math.Min(vol, float64(remaining)/float64(e.releaseSamples))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s by a linear factor; zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Plink is the sound of one drop detaching: a falling tone plus a quieter
// octave above it.
func Plink(rate beep.SampleRate, volume float64) beep.Streamer {
	fund := NewEnvelope(NewGlide(plinkStartFreq, plinkEndFreq, PlinkDuration, rate), PlinkDuration, PlinkAttack, PlinkRelease, rate)
	over := NewEnvelope(NewGlide(2*plinkStartFreq, 2*plinkEndFreq, PlinkDuration, rate), PlinkDuration, PlinkAttack, PlinkRelease/2, rate)
	return newVolume(beep.Mix(newVolume(fund, 0.7), newVolume(over, 0.3)), volume)
}
