package analysis

import (
	"errors"
	"math"
)

// ErrFlatSignal indicates a trace with no periodic component.
var ErrFlatSignal = errors.New("analysis: signal has no periodic component")

// DripReport summarises the periodicity of a droplet trace.
type DripReport struct {
	Samples     int
	PeakBin     int
	PeriodTicks float64
	// FrequencyHz assumes one tick per frame at FPS frames per second.
	FrequencyHz float64
	FPS         float64
	Power       float64
}

// DripPeriod finds the dominant period of a per-tick series, typically the
// droplet radius, from the highest non-DC bin of its spectrum.
func DripPeriod(series []float64, fps float64) (DripReport, error) {
	ps := PowerSpectrum(series)
	if len(ps) < 2 {
		return DripReport{}, ErrFlatSignal
	}

	peak, best := 0, 0.0
	for k := 1; k < len(ps); k++ {
		if ps[k] > best {
			peak, best = k, ps[k]
		}
	}
	if peak == 0 || best < 1e-9 {
		return DripReport{}, ErrFlatSignal
	}

	period := float64(len(series)) / float64(peak)
	r := DripReport{
		Samples:     len(series),
		PeakBin:     peak,
		PeriodTicks: period,
		FPS:         fps,
		Power:       best,
	}
	if fps > 0 {
		r.FrequencyHz = fps / period
	}
	return r, nil
}

// DropsPerMinute converts a report into a drip rate.
func (r DripReport) DropsPerMinute() float64 {
	if r.FrequencyHz == 0 {
		return math.NaN()
	}
	return r.FrequencyHz * 60
}
