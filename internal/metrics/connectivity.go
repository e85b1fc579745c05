package metrics

import "github.com/san-kum/plexus/internal/sim"

// Connectivity is the mean share of particle pairs joined by a line. Self-pairs
// count, so a fully spread field bottoms out at 2/(n+1).
type Connectivity struct {
	name      string
	particles int
	total     float64
	samples   int
}

func NewConnectivity(particles int) *Connectivity {
	return &Connectivity{name: "connectivity", particles: particles}
}

func (c *Connectivity) Name() string { return c.name }

func (c *Connectivity) Observe(f sim.FrameStats) {
	if c.particles <= 0 {
		return
	}
	// i <= j pairs, including i == j.
	pairs := float64(c.particles * (c.particles + 1) / 2)
	c.total += float64(f.Lines) / pairs
	c.samples++
}

func (c *Connectivity) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return c.total / float64(c.samples)
}

func (c *Connectivity) Reset() {
	c.total = 0
	c.samples = 0
}
