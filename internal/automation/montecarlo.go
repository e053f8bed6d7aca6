package automation

import (
	"context"
	"math"
	"math/rand"

	"github.com/san-kum/stalagsim/internal/lab"
)

// MonteCarloConfig perturbs the measured mass and radius with Gaussian
// noise to estimate the spread of the surface-tension estimate.
type MonteCarloConfig struct {
	Trials      int
	MassSigma   float64 // kg
	RadiusSigma float64 // cm
	Seed        int64
}

// MonteCarloResult holds statistics over the finite trial results.
type MonteCarloResult struct {
	Trials   int
	Finite   int
	Mean     float64
	StdDev   float64
	Min, Max float64
}

// RunMonteCarlo evaluates the formula Trials times around base.
func RunMonteCarlo(ctx context.Context, cfg MonteCarloConfig, base lab.Parameters) (MonteCarloResult, error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	res := MonteCarloResult{Trials: cfg.Trials, Min: math.Inf(1), Max: math.Inf(-1)}

	sum, sumSq := 0.0, 0.0
	for i := 0; i < cfg.Trials; i++ {
		if i%256 == 0 {
			select {
			case <-ctx.Done():
				return res, ctx.Err()
			default:
			}
		}

		p := base
		p.DropMass += rng.NormFloat64() * cfg.MassSigma
		p.Radius += rng.NormFloat64() * cfg.RadiusSigma
		v := lab.Calculate(p).Value
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}

		res.Finite++
		sum += v
		sumSq += v * v
		res.Min = math.Min(res.Min, v)
		res.Max = math.Max(res.Max, v)
	}

	if res.Finite == 0 {
		res.Mean, res.StdDev = math.NaN(), math.NaN()
		return res, nil
	}
	n := float64(res.Finite)
	res.Mean = sum / n
	res.StdDev = math.Sqrt(math.Max(sumSq/n-res.Mean*res.Mean, 0))
	return res, nil
}
