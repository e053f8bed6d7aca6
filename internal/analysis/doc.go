// Package analysis inspects droplet traces in the frequency domain.
//
// [DripPeriod] finds the dominant period of a per-tick series, usually the
// droplet radius, and converts it to a drip frequency:
//
//	r, err := analysis.DripPeriod(trace.Radii(), 60)
//	if err == nil {
//	    fmt.Printf("%.0f ticks per drop\n", r.PeriodTicks)
//	}
package analysis
