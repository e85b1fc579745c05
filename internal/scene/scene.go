package scene

import (
	"math/rand"

	"github.com/san-kum/plexus/internal/palette"
	"github.com/san-kum/plexus/internal/particle"
	"github.com/san-kum/plexus/internal/render"
)

const (
	DefaultParticles     = 100
	DefaultPointerRadius = 100.0
	DefaultMaxDistance   = 200.0
)

// Options tune a scene. Zero values fall back to the defaults above.
type Options struct {
	Particles     int
	PointerRadius float64
	MaxDistance   float64
	Friction      float64
	Seed          int64
}

func (o Options) withDefaults() Options {
	if o.Particles <= 0 {
		o.Particles = DefaultParticles
	}
	if o.PointerRadius <= 0 {
		o.PointerRadius = DefaultPointerRadius
	}
	if o.MaxDistance <= 0 {
		o.MaxDistance = DefaultMaxDistance
	}
	if o.Friction <= 0 {
		o.Friction = particle.DefaultFriction
	}
	return o
}

// Scene owns the particles, the surface dimensions and the pointer state.
// It is not safe for concurrent use; hosts call it from their frame loop.
type Scene struct {
	Width, Height float64

	opts      Options
	rng       *rand.Rand
	particles []*particle.Particle
	pointer   particle.Pointer
}

// New builds a scene for a surface of the given size and creates its
// particle batch. The host forwards its events to Resize, PointerMove and
// PointerLeave.
func New(width, height float64, opts Options) *Scene {
	opts = opts.withDefaults()
	s := &Scene{
		Width:  width,
		Height: height,
		opts:   opts,
		rng:    rand.New(rand.NewSource(opts.Seed)),
		pointer: particle.Pointer{
			Radius: opts.PointerRadius,
		},
	}
	s.CreateParticles()
	return s
}

// CreateParticles fills the scene with a fresh batch of particles,
// replacing any existing one.
func (s *Scene) CreateParticles() {
	n := s.opts.Particles
	s.particles = make([]*particle.Particle, 0, n)
	for i := 0; i < n; i++ {
		hue, c := palette.ForIndex(i, n)
		p := particle.New(s.rng, c, hue, s.bounds())
		p.Friction = s.opts.Friction
		s.particles = append(s.particles, p)
	}
}

// Frame clears the surface and runs one simulation step.
func (s *Scene) Frame(surf render.Surface) int {
	surf.Clear(s.Width, s.Height)
	return s.HandleParticles(surf)
}

// HandleParticles draws the connections on pre-update positions, then draws
// and updates every particle in order. It returns the number of lines drawn.
func (s *Scene) HandleParticles(surf render.Surface) int {
	lines := s.ConnectParticles(surf)
	ptr, b := s.pointer, s.bounds()
	for _, p := range s.particles {
		p.Draw(surf)
		p.Update(ptr, b)
	}
	return lines
}

// ConnectParticles strokes a line between every pair closer than the
// maximum distance, self-pairs included. Checks all pairs each frame.
func (s *Scene) ConnectParticles(surf render.Surface) int {
	maxDistance := s.opts.MaxDistance
	lines := 0
	for i, a := range s.particles {
		for _, b := range s.particles[i:] {
			distance := a.DistanceTo(b)
			if distance >= maxDistance {
				continue
			}
			surf.StrokeLine(
				a.Pos.X, a.Pos.Y, b.Pos.X, b.Pos.Y,
				a.Color, b.Color,
				(a.Radius+b.Radius)/8,
				1-distance/maxDistance,
			)
			lines++
		}
	}
	return lines
}

// Resize records the new surface size and repositions every particle.
func (s *Scene) Resize(width, height float64) {
	s.Width, s.Height = width, height
	b := s.bounds()
	for _, p := range s.particles {
		p.Reset(s.rng, b)
	}
}

func (s *Scene) PointerMove(x, y float64) {
	s.pointer.X, s.pointer.Y = x, y
	s.pointer.Active = true
}

func (s *Scene) PointerLeave() {
	s.pointer.Active = false
}

// Pointer returns a snapshot of the pointer state.
func (s *Scene) Pointer() particle.Pointer {
	return s.pointer
}

func (s *Scene) Particles() []*particle.Particle {
	return s.particles
}

func (s *Scene) Options() Options {
	return s.opts
}

func (s *Scene) bounds() particle.Bounds {
	return particle.Bounds{Width: s.Width, Height: s.Height}
}
