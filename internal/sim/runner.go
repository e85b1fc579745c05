package sim

import (
	"context"
	"fmt"
	"time"

	"github.com/san-kum/plexus/internal/render"
	"github.com/san-kum/plexus/internal/scene"
	"gonum.org/v1/gonum/spatial/r2"
)

type Config struct {
	Frames int
	// FPS paces frames on a ticker. Zero runs as fast as possible.
	FPS     int
	Pointer PointerPath
}

// FrameStats summarises one frame after the particles moved.
type FrameStats struct {
	Frame     int
	Lines     int
	MeanPush  float64
	MeanSpeed float64
	Pointer   bool
}

type Result struct {
	Frames  []FrameStats
	Elapsed time.Duration
}

// Lines returns the per-frame line counts as a series.
func (r *Result) Lines() []float64 {
	out := make([]float64, len(r.Frames))
	for i, f := range r.Frames {
		out[i] = float64(f.Lines)
	}
	return out
}

// MeanPush returns the per-frame mean push magnitude as a series.
func (r *Result) MeanPush() []float64 {
	out := make([]float64, len(r.Frames))
	for i, f := range r.Frames {
		out[i] = f.MeanPush
	}
	return out
}

type Observer interface {
	OnFrame(FrameStats)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(FrameStats)

func (f ObserverFunc) OnFrame(s FrameStats) { f(s) }

// Runner drives a scene without a window, the way a host's frame loop would.
type Runner struct {
	observers []Observer
}

func New() *Runner {
	return &Runner{observers: make([]Observer, 0)}
}

func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

func (r *Runner) Run(ctx context.Context, sc *scene.Scene, surf render.Surface, cfg Config) (*Result, error) {
	if cfg.Frames <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNoFrames, cfg.Frames)
	}
	path := cfg.Pointer
	if path == nil {
		path = nonePath
	}

	var tick <-chan time.Time
	if cfg.FPS > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(cfg.FPS))
		defer ticker.Stop()
		tick = ticker.C
	}

	result := &Result{Frames: make([]FrameStats, 0, cfg.Frames)}
	start := time.Now()

	for i := 0; i < cfg.Frames; i++ {
		if tick != nil {
			select {
			case <-ctx.Done():
				result.Elapsed = time.Since(start)
				return result, ctx.Err()
			case <-tick:
			}
		} else {
			select {
			case <-ctx.Done():
				result.Elapsed = time.Since(start)
				return result, ctx.Err()
			default:
			}
		}

		if x, y, active := path(i, sc.Width, sc.Height); active {
			sc.PointerMove(x, y)
		} else if sc.Pointer().Active {
			sc.PointerLeave()
		}

		lines := sc.Frame(surf)
		stats := measure(sc, i, lines)
		result.Frames = append(result.Frames, stats)
		for _, o := range r.observers {
			o.OnFrame(stats)
		}
	}

	result.Elapsed = time.Since(start)
	return result, nil
}

func measure(sc *scene.Scene, frame, lines int) FrameStats {
	stats := FrameStats{Frame: frame, Lines: lines, Pointer: sc.Pointer().Active}
	ps := sc.Particles()
	if len(ps) == 0 {
		return stats
	}
	for _, p := range ps {
		stats.MeanPush += r2.Norm(p.Push)
		stats.MeanSpeed += p.Speed()
	}
	stats.MeanPush /= float64(len(ps))
	stats.MeanSpeed /= float64(len(ps))
	return stats
}
