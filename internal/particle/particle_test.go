package particle

import (
	"image/color"
	"math"
	"math/rand"
	"testing"

	"github.com/san-kum/plexus/internal/render"
	"gonum.org/v1/gonum/spatial/r2"
)

var white = color.RGBA{255, 255, 255, 255}

func newTestParticle(x, y, vx, vy float64) *Particle {
	return &Particle{
		Pos:      r2.Vec{X: x, Y: y},
		Vel:      r2.Vec{X: vx, Y: vy},
		Radius:   5,
		Buffer:   20,
		Friction: DefaultFriction,
		Color:    white,
	}
}

func TestNewRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b := Bounds{Width: 800, Height: 600}

	for i := 0; i < 500; i++ {
		p := New(rng, white, 0, b)
		if p.Radius < MinRadius || p.Radius > MaxRadius {
			t.Fatalf("radius %f out of [%v, %v]", p.Radius, MinRadius, MaxRadius)
		}
		if p.Buffer != 4*p.Radius {
			t.Fatalf("expected buffer %f, got %f", 4*p.Radius, p.Buffer)
		}
		if p.Vel.X < -0.5 || p.Vel.X >= 0.5 || p.Vel.Y < -0.5 || p.Vel.Y >= 0.5 {
			t.Fatalf("velocity %v out of [-0.5, 0.5)", p.Vel)
		}
		if p.Push != (r2.Vec{}) {
			t.Fatalf("expected zero push, got %v", p.Push)
		}
	}
}

func TestUpdateStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := Bounds{Width: 640, Height: 480}
	ptr := Pointer{X: 320, Y: 240, Radius: 100, Active: true}

	particles := make([]*Particle, 50)
	for i := range particles {
		particles[i] = New(rng, white, 0, b)
	}

	for step := 0; step < 2000; step++ {
		ptr.X = 320 + 200*math.Cos(float64(step)/50)
		ptr.Y = 240 + 150*math.Sin(float64(step)/50)
		for _, p := range particles {
			p.Update(ptr, b)
			if p.Pos.X < p.Buffer || p.Pos.X > b.Width-p.Buffer {
				t.Fatalf("step %d: x=%f outside [%f, %f]", step, p.Pos.X, p.Buffer, b.Width-p.Buffer)
			}
			if p.Pos.Y < p.Buffer || p.Pos.Y > b.Height-p.Buffer {
				t.Fatalf("step %d: y=%f outside [%f, %f]", step, p.Pos.Y, p.Buffer, b.Height-p.Buffer)
			}
		}
	}
}

func TestBounceNearEdge(t *testing.T) {
	b := Bounds{Width: 400, Height: 400}
	p := newTestParticle(19, 200, -0.3, 0)

	p.Update(Pointer{}, b)

	if p.Pos.X != p.Buffer {
		t.Errorf("expected x clamped to %f, got %f", p.Buffer, p.Pos.X)
	}
	if p.Vel.X != 0.3 {
		t.Errorf("expected vx flipped to 0.3, got %f", p.Vel.X)
	}
}

func TestBounceFarEdges(t *testing.T) {
	b := Bounds{Width: 400, Height: 300}

	tests := []struct {
		name         string
		x, y, vx, vy float64
		wantX, wantY float64
		wantVX       float64
		wantVY       float64
	}{
		{"right", 380.5, 150, 0.4, 0, 380, 150, -0.4, 0},
		{"bottom", 200, 280.2, 0, 0.25, 200, 280, 0, -0.25},
		{"top", 200, 20, 0, -0.1, 200, 20, 0, 0.1},
		{"corner", 381, 281, 0.2, 0.2, 380, 280, -0.2, -0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestParticle(tt.x, tt.y, tt.vx, tt.vy)
			p.Update(Pointer{}, b)
			if math.Abs(p.Pos.X-tt.wantX) > 1e-9 || math.Abs(p.Pos.Y-tt.wantY) > 1e-9 {
				t.Errorf("expected pos (%f, %f), got (%f, %f)", tt.wantX, tt.wantY, p.Pos.X, p.Pos.Y)
			}
			if p.Vel.X != tt.wantVX || p.Vel.Y != tt.wantVY {
				t.Errorf("expected vel (%f, %f), got (%f, %f)", tt.wantVX, tt.wantVY, p.Vel.X, p.Vel.Y)
			}
		})
	}
}

func TestBounceIsPermanent(t *testing.T) {
	b := Bounds{Width: 400, Height: 400}
	p := newTestParticle(19, 200, -0.3, 0)

	p.Update(Pointer{}, b)
	for i := 0; i < 10; i++ {
		p.Update(Pointer{}, b)
	}

	if p.Vel.X != 0.3 {
		t.Errorf("expected vx to stay 0.3, got %f", p.Vel.X)
	}
	expected := 20 + 0.3*10
	if math.Abs(p.Pos.X-expected) > 1e-9 {
		t.Errorf("expected x=%f, got %f", expected, p.Pos.X)
	}
}

func TestInactivePointerLeavesPushZero(t *testing.T) {
	b := Bounds{Width: 400, Height: 400}
	p := newTestParticle(200, 200, 0.1, 0.1)
	ptr := Pointer{X: 205, Y: 200, Radius: 100, Active: false}

	for i := 0; i < 100; i++ {
		p.Update(ptr, b)
		if p.Push != (r2.Vec{}) {
			t.Fatalf("step %d: expected zero push, got %v", i, p.Push)
		}
	}
}

func TestPointerRepulsion(t *testing.T) {
	b := Bounds{Width: 1000, Height: 1000}
	p := newTestParticle(110, 100, 0, 0)
	ptr := Pointer{X: 100, Y: 100, Radius: 100, Active: true}

	p.Update(ptr, b)

	// force = 10/100 then friction.
	wantPush := 0.1 * DefaultFriction
	if math.Abs(p.Push.X-wantPush) > 1e-12 {
		t.Errorf("expected pushX %f, got %f", wantPush, p.Push.X)
	}
	if math.Abs(p.Push.Y) > 1e-12 {
		t.Errorf("expected pushY 0, got %f", p.Push.Y)
	}
	if math.Abs(p.Pos.X-(110+wantPush)) > 1e-12 {
		t.Errorf("expected x %f, got %f", 110+wantPush, p.Pos.X)
	}
}

func TestPointerForceGrowsWithDistance(t *testing.T) {
	b := Bounds{Width: 1000, Height: 1000}
	ptr := Pointer{X: 500, Y: 500, Radius: 100, Active: true}

	near := newTestParticle(500, 510, 0, 0)
	far := newTestParticle(500, 590, 0, 0)
	near.Update(ptr, b)
	far.Update(ptr, b)

	if !(far.Push.Y > near.Push.Y) || near.Push.Y <= 0 {
		t.Errorf("expected far push %f > near push %f > 0", far.Push.Y, near.Push.Y)
	}
}

func TestPointerOutsideRadius(t *testing.T) {
	b := Bounds{Width: 1000, Height: 1000}
	p := newTestParticle(300, 100, 0, 0)
	ptr := Pointer{X: 100, Y: 100, Radius: 100, Active: true}

	p.Update(ptr, b)
	if p.Push != (r2.Vec{}) {
		t.Errorf("expected no push beyond radius, got %v", p.Push)
	}
}

func TestPushDecays(t *testing.T) {
	b := Bounds{Width: 1000, Height: 1000}
	p := newTestParticle(500, 500, 0, 0)
	p.Push = r2.Vec{X: 1, Y: -1}

	p.Update(Pointer{}, b)
	if math.Abs(p.Push.X-0.95) > 1e-12 || math.Abs(p.Push.Y+0.95) > 1e-12 {
		t.Errorf("expected push (0.95, -0.95), got %v", p.Push)
	}
}

func TestReset(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	p := newTestParticle(10, 10, 0.2, -0.4)
	b := Bounds{Width: 300, Height: 200}

	for i := 0; i < 200; i++ {
		p.Reset(rng, b)
		if p.Pos.X < p.Radius || p.Pos.X > b.Width-p.Radius {
			t.Fatalf("x=%f outside [%f, %f]", p.Pos.X, p.Radius, b.Width-p.Radius)
		}
		if p.Pos.Y < p.Radius || p.Pos.Y > b.Height-p.Radius {
			t.Fatalf("y=%f outside [%f, %f]", p.Pos.Y, p.Radius, b.Height-p.Radius)
		}
	}
	if p.Vel.X != 0.2 || p.Vel.Y != -0.4 || p.Radius != 5 || p.Color != white {
		t.Error("reset must only move the particle")
	}
}

func TestDraw(t *testing.T) {
	rec := render.NewRecorder()
	p := newTestParticle(12, 34, 0, 0)
	p.Draw(rec)

	if len(rec.Circles) != 1 {
		t.Fatalf("expected 1 circle, got %d", len(rec.Circles))
	}
	c := rec.Circles[0]
	if c.X != 12 || c.Y != 34 || c.Radius != 5 || c.Fill != white {
		t.Errorf("unexpected circle %+v", c)
	}
}

func TestUpdateIntegratesPushAndVelocity(t *testing.T) {
	b := Bounds{Width: 1000, Height: 1000}
	p := newTestParticle(500, 500, 0.3, -0.2)
	p.Push = r2.Vec{X: 2, Y: 4}

	p.Update(Pointer{}, b)

	want := r2.Vec{X: 500 + 2*DefaultFriction + 0.3, Y: 500 + 4*DefaultFriction - 0.2}
	if math.Abs(p.Pos.X-want.X) > 1e-12 || math.Abs(p.Pos.Y-want.Y) > 1e-12 {
		t.Errorf("expected pos %v, got %v", want, p.Pos)
	}
	if p.Vel != (r2.Vec{X: 0.3, Y: -0.2}) {
		t.Errorf("expected velocity unchanged, got %v", p.Vel)
	}
}

func TestDistanceTo(t *testing.T) {
	a := newTestParticle(100, 100, 0, 0)
	b := newTestParticle(103, 104, 0, 0)

	if d := a.DistanceTo(b); math.Abs(d-5) > 1e-12 {
		t.Errorf("expected distance 5, got %f", d)
	}
	if d := b.DistanceTo(a); math.Abs(d-5) > 1e-12 {
		t.Errorf("expected symmetric distance 5, got %f", d)
	}
	if d := a.DistanceTo(a); d != 0 {
		t.Errorf("expected zero self distance, got %f", d)
	}
}
