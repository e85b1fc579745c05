// Package metrics aggregates per-frame statistics from headless runs.
package metrics

import (
	"github.com/san-kum/plexus/internal/sim"
)

type Metric interface {
	Name() string
	Observe(f sim.FrameStats)
	Value() float64
	Reset()
}

// Collector feeds every frame to a set of metrics. It satisfies
// sim.Observer.
type Collector struct {
	metrics []Metric
}

func NewCollector(ms ...Metric) *Collector {
	return &Collector{metrics: ms}
}

func (c *Collector) OnFrame(f sim.FrameStats) {
	for _, m := range c.metrics {
		m.Observe(f)
	}
}

func (c *Collector) Metrics() []Metric { return c.metrics }

// Values returns the current value of each metric keyed by name.
func (c *Collector) Values() map[string]float64 {
	out := make(map[string]float64, len(c.metrics))
	for _, m := range c.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

func (c *Collector) Reset() {
	for _, m := range c.metrics {
		m.Reset()
	}
}

// Defaults returns the metrics reported by the stats command.
func Defaults(particles int) []Metric {
	return []Metric{
		NewConnectivity(particles),
		NewAgitation(),
		NewSettling(0.01),
	}
}
