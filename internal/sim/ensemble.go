package sim

import (
	"context"
	"sync"

	"github.com/san-kum/plexus/internal/render"
	"github.com/san-kum/plexus/internal/scene"
)

// Ensemble runs the same field under consecutive seeds, one goroutine per
// run. Each run owns its scene and recorder.
type Ensemble struct {
	Width, Height float64
	Options       scene.Options
	numRuns       int
	seedStart     int64
}

func NewEnsemble(width, height float64, opts scene.Options, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{Width: width, Height: height, Options: opts, numRuns: numRuns, seedStart: seedStart}
}

// Run returns one result per seed, in seed order.
func (e *Ensemble) Run(ctx context.Context, cfg Config) ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			opts := e.Options
			opts.Seed = e.seedStart + int64(idx)
			sc := scene.New(e.Width, e.Height, opts)

			results[idx], errs[idx] = New().Run(ctx, sc, render.NewRecorder(), cfg)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

// Seed returns the seed used for run idx.
func (e *Ensemble) Seed(idx int) int64 { return e.seedStart + int64(idx) }
