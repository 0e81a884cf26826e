package geocurve

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Options control how batches of curves are sampled.
type Options struct {
	// Resolution is the number of sampling steps per curve. If it is zero or
	// negative, it is derived from each curve's length and StepSize. See
	// [Resolution].
	Resolution int
	// StepSize is the approximate sample spacing in degrees. It is only used
	// if Resolution <= 0.
	StepSize float64
	// Fallback selects the rotation axis fallback. See [FallbackMode].
	Fallback FallbackMode
	// Workers is the number of curves sampled concurrently. If it is zero or
	// negative, GOMAXPROCS is used.
	Workers int
}

// DefaultOptions returns options that derive the resolution from a step size
// of [DefaultStepSize] and use [FallbackLegacy].
func DefaultOptions() Options {
	return Options{
		StepSize: DefaultStepSize,
		Fallback: FallbackLegacy,
	}
}

// Bundle samples every curve and splits the result at the antimeridian. The
// i-th element of the result holds the segments of curves[i].
//
// Curves with fewer than two control points aren't sampled; their control
// points are returned as a single segment, or no segment if there are none.
// Curves with NaN or infinite control points are sampled, but logged.
//
// Bundle only fails if ctx is canceled before all curves have been processed.
func Bundle(ctx context.Context, curves []SphericalBez, opts Options) ([][]Segment, error) {
	log := Logger()
	log.Debug("sampling curves",
		"curves", len(curves),
		"resolution", opts.Resolution,
		"step_size", opts.StepSize,
		"fallback", opts.Fallback)

	out := make([][]Segment, len(curves))
	err := fanOut(ctx, len(curves), opts, func(e *Evaluator, i int) {
		c := curves[i]
		if !c.Valid() {
			log.Warn("curve has too few control points", "curve", i, "control_points", len(c))
		} else if !c.Finite() {
			log.Warn("curve has non-finite control points", "curve", i)
		}
		out[i] = SplitAntimeridian(e.Sample(c, opts.Resolution, opts.StepSize))
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// BundleStraight is like [Bundle], but for edges that are drawn along their
// great circle. See [SampleGeodesic].
func BundleStraight(ctx context.Context, edges []GreatCircle, opts Options) ([][]Segment, error) {
	log := Logger()
	log.Debug("sampling straight edges",
		"edges", len(edges),
		"resolution", opts.Resolution,
		"step_size", opts.StepSize,
		"fallback", opts.Fallback)

	out := make([][]Segment, len(edges))
	err := fanOut(ctx, len(edges), opts, func(_ *Evaluator, i int) {
		gc := edges[i]
		out[i] = SplitAntimeridian(SampleGeodesic(gc.P0, gc.P1, opts.Resolution, opts.StepSize, opts.Fallback))
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// fanOut calls fn for every index in [0, n) on up to opts.Workers goroutines.
// Every goroutine owns one Evaluator.
func fanOut(ctx context.Context, n int, opts Options, fn func(e *Evaluator, i int)) error {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, n)

	g, ctx := errgroup.WithContext(ctx)
	var next atomic.Int64
	for range workers {
		g.Go(func() error {
			e := Evaluator{Fallback: opts.Fallback}
			for {
				if err := ctx.Err(); err != nil {
					return err
				}
				i := int(next.Add(1) - 1)
				if i >= n {
					return nil
				}
				fn(&e, i)
			}
		})
	}
	return g.Wait()
}
