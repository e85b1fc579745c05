package particle

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/san-kum/plexus/internal/render"
	"gonum.org/v1/gonum/spatial/r2"
)

const (
	DefaultFriction = 0.95
	MinRadius       = 5.0
	MaxRadius       = 10.0
	// BufferFactor scales the radius into the minimum distance from an edge.
	BufferFactor = 4.0
)

// Pointer is a snapshot of the pointer taken once per frame.
type Pointer struct {
	X, Y   float64
	Radius float64
	Active bool
}

// Bounds are the current surface dimensions.
type Bounds struct {
	Width, Height float64
}

type Particle struct {
	Pos      r2.Vec
	Vel      r2.Vec
	Push     r2.Vec
	Radius   float64
	Buffer   float64
	Friction float64
	Hue      float64
	Color    color.RGBA
}

// New creates a particle with a random radius, velocity and position
// inside bounds.
func New(rng *rand.Rand, c color.RGBA, hue float64, b Bounds) *Particle {
	radius := MinRadius + rng.Float64()*(MaxRadius-MinRadius)
	p := &Particle{
		Radius:   radius,
		Buffer:   BufferFactor * radius,
		Friction: DefaultFriction,
		Hue:      hue,
		Color:    c,
	}
	p.Reset(rng, b)
	p.Vel = r2.Vec{X: rng.Float64() - 0.5, Y: rng.Float64() - 0.5}
	return p
}

func (p *Particle) Draw(s render.Surface) {
	s.FillCircle(p.Pos.X, p.Pos.Y, p.Radius, p.Color)
}

// Update advances the particle one tick: pointer repulsion, friction on the
// accumulated push, integration, then edge bounce.
func (p *Particle) Update(ptr Pointer, b Bounds) {
	if ptr.Active {
		d := r2.Sub(p.Pos, r2.Vec{X: ptr.X, Y: ptr.Y})
		distance := r2.Norm(d)
		// Force grows with distance: zero at the pointer, one at the radius.
		force := distance / ptr.Radius
		if distance < ptr.Radius {
			angle := math.Atan2(d.Y, d.X)
			p.Push = r2.Add(p.Push, r2.Scale(force, r2.Vec{X: math.Cos(angle), Y: math.Sin(angle)}))
		}
	}

	p.Push = r2.Scale(p.Friction, p.Push)
	p.Pos = r2.Add(r2.Add(p.Pos, p.Push), p.Vel)

	p.Pos.X, p.Vel.X = bounce(p.Pos.X, p.Vel.X, p.Buffer, b.Width)
	p.Pos.Y, p.Vel.Y = bounce(p.Pos.Y, p.Vel.Y, p.Buffer, b.Height)
}

// Reset moves the particle to a random point in [Radius, dim-Radius].
func (p *Particle) Reset(rng *rand.Rand, b Bounds) {
	p.Pos = r2.Vec{
		X: p.Radius + rng.Float64()*(b.Width-p.Radius*2),
		Y: p.Radius + rng.Float64()*(b.Height-p.Radius*2),
	}
}

// Speed is the magnitude of the base velocity.
func (p *Particle) Speed() float64 {
	return r2.Norm(p.Vel)
}

// DistanceTo is the Euclidean distance between two particle centres.
func (p *Particle) DistanceTo(o *Particle) float64 {
	return r2.Norm(r2.Sub(p.Pos, o.Pos))
}

// bounce clamps pos into [buffer, dim-buffer] and flips vel when it hits
// either side.
func bounce(pos, vel, buffer, dim float64) (float64, float64) {
	if pos < buffer {
		return buffer, -vel
	}
	if pos > dim-buffer {
		return dim - buffer, -vel
	}
	return pos, vel
}
