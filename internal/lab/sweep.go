package lab

import (
	"context"
	"fmt"
)

// SweepPoint is one grid cell of a sweep.
type SweepPoint struct {
	DropMass float64
	Radius   float64
	Result   Result
}

// Grid enumerates every combination of the named fields. Field order
// defines nesting, the last field varies fastest.
type Grid struct {
	fields []Field
	ranges [][]float64
}

func NewGrid(fields []Field, ranges [][]float64) (*Grid, error) {
	if len(fields) != len(ranges) {
		return nil, fmt.Errorf("lab: %d fields but %d ranges", len(fields), len(ranges))
	}
	for _, f := range fields {
		if f != FieldDropMass && f != FieldRadius && f != FieldDropCount {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}
	return &Grid{fields: fields, ranges: ranges}, nil
}

// Sweep evaluates Calculate over the grid starting from base.
func (g *Grid) Sweep(ctx context.Context, base Parameters) ([]SweepPoint, error) {
	n := 1
	for _, r := range g.ranges {
		n *= len(r)
	}
	out := make([]SweepPoint, 0, n)
	if err := g.sweepRecursive(ctx, 0, base, &out); err != nil {
		return out, err
	}
	return out, nil
}

func (g *Grid) sweepRecursive(ctx context.Context, depth int, current Parameters, out *[]SweepPoint) error {
	if depth == len(g.fields) {
		*out = append(*out, SweepPoint{
			DropMass: current.DropMass,
			Radius:   current.Radius,
			Result:   Calculate(current),
		})
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	for _, v := range g.ranges[depth] {
		next := current
		switch g.fields[depth] {
		case FieldDropMass:
			next.DropMass = v
		case FieldRadius:
			next.Radius = v
		case FieldDropCount:
			next.DropCount = v
		}
		if err := g.sweepRecursive(ctx, depth+1, next, out); err != nil {
			return err
		}
	}
	return nil
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out
}
