package metrics

import (
	"math"

	"github.com/san-kum/plexus/internal/sim"
)

// Agitation is the peak mean push seen over the run.
type Agitation struct {
	name string
	peak float64
}

func NewAgitation() *Agitation {
	return &Agitation{name: "agitation"}
}

func (a *Agitation) Name() string { return a.name }

func (a *Agitation) Observe(f sim.FrameStats) {
	a.peak = math.Max(a.peak, f.MeanPush)
}

func (a *Agitation) Value() float64 { return a.peak }

func (a *Agitation) Reset() { a.peak = 0 }

// Settling is the fraction of pointer-free frames whose mean push has
// decayed below threshold. Runs without such frames report 1.
type Settling struct {
	name      string
	threshold float64
	settled   int
	samples   int
}

func NewSettling(threshold float64) *Settling {
	return &Settling{name: "settling", threshold: threshold}
}

func (s *Settling) Name() string { return s.name }

func (s *Settling) Observe(f sim.FrameStats) {
	if f.Pointer {
		return
	}
	s.samples++
	if f.MeanPush < s.threshold {
		s.settled++
	}
}

func (s *Settling) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return float64(s.settled) / float64(s.samples)
}

func (s *Settling) Reset() {
	s.settled = 0
	s.samples = 0
}
