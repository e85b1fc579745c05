package scene_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/plexus/internal/palette"
	"github.com/san-kum/plexus/internal/particle"
	"github.com/san-kum/plexus/internal/render"
	"github.com/san-kum/plexus/internal/scene"
)

func place(sc *scene.Scene, positions ...r2.Vec) {
	for i, pos := range positions {
		sc.Particles()[i].Pos = pos
	}
}

var _ = Describe("Scene", func() {
	var (
		sc  *scene.Scene
		rec *render.Recorder
	)

	BeforeEach(func() {
		sc = scene.New(1280, 720, scene.Options{Seed: 42})
		rec = render.NewRecorder()
	})

	Describe("construction", func() {
		It("creates the default batch", func() {
			Expect(sc.Particles()).To(HaveLen(scene.DefaultParticles))
			Expect(sc.Width).To(Equal(1280.0))
			Expect(sc.Height).To(Equal(720.0))
		})

		It("starts with an inactive pointer of the default radius", func() {
			ptr := sc.Pointer()
			Expect(ptr.Active).To(BeFalse())
			Expect(ptr.Radius).To(Equal(scene.DefaultPointerRadius))
		})

		It("gives every particle a radius in range and an index-derived colour", func() {
			for i, p := range sc.Particles() {
				Expect(p.Radius).To(BeNumerically(">=", particle.MinRadius))
				Expect(p.Radius).To(BeNumerically("<=", particle.MaxRadius))
				hue, c := palette.ForIndex(i, scene.DefaultParticles)
				Expect(p.Hue).To(Equal(hue))
				Expect(p.Color).To(Equal(c))
			}
		})

		It("is reproducible for a seed", func() {
			other := scene.New(1280, 720, scene.Options{Seed: 42})
			for i, p := range sc.Particles() {
				Expect(other.Particles()[i].Pos).To(Equal(p.Pos))
				Expect(other.Particles()[i].Vel).To(Equal(p.Vel))
			}
		})

		It("honours a custom particle count", func() {
			small := scene.New(640, 480, scene.Options{Particles: 7})
			Expect(small.Particles()).To(HaveLen(7))
		})
	})

	Describe("ConnectParticles", func() {
		BeforeEach(func() {
			sc = scene.New(1000, 1000, scene.Options{Particles: 3, Seed: 1})
		})

		It("links close pairs and self-pairs only", func() {
			place(sc, r2.Vec{X: 100, Y: 100}, r2.Vec{X: 250, Y: 100}, r2.Vec{X: 100, Y: 400})

			lines := sc.ConnectParticles(rec)

			Expect(lines).To(Equal(4))
			Expect(rec.Lines).To(HaveLen(4))
		})

		It("scales width by radii and alpha by distance", func() {
			place(sc, r2.Vec{X: 100, Y: 100}, r2.Vec{X: 250, Y: 100}, r2.Vec{X: 900, Y: 900})
			a, b := sc.Particles()[0], sc.Particles()[1]

			sc.ConnectParticles(rec)

			var link *render.Line
			for i := range rec.Lines {
				if rec.Lines[i].X0 != rec.Lines[i].X1 {
					link = &rec.Lines[i]
				}
			}
			Expect(link).NotTo(BeNil())
			Expect(link.Alpha).To(BeNumerically("~", 0.25, 1e-12))
			Expect(link.Width).To(BeNumerically("~", (a.Radius+b.Radius)/8, 1e-12))
			Expect(link.From).To(Equal(a.Color))
			Expect(link.To).To(Equal(b.Color))
		})

		It("fades lines out towards the threshold", func() {
			prev := math.Inf(1)
			for _, d := range []float64{10, 50, 100, 150, 199.9} {
				rec = render.NewRecorder()
				place(sc, r2.Vec{X: 100, Y: 100}, r2.Vec{X: 100 + d, Y: 100}, r2.Vec{X: 900, Y: 900})
				sc.ConnectParticles(rec)

				alpha := -1.0
				for _, l := range rec.Lines {
					if l.X0 != l.X1 {
						alpha = l.Alpha
					}
				}
				Expect(alpha).To(BeNumerically(">", 0))
				Expect(alpha).To(BeNumerically("<", prev))
				prev = alpha
			}
		})

		It("omits pairs at or beyond the threshold", func() {
			place(sc, r2.Vec{X: 100, Y: 100}, r2.Vec{X: 300, Y: 100}, r2.Vec{X: 100, Y: 350})

			Expect(sc.ConnectParticles(rec)).To(Equal(3))
			for _, l := range rec.Lines {
				Expect(l.X0).To(Equal(l.X1))
				Expect(l.Y0).To(Equal(l.Y1))
				Expect(l.Alpha).To(Equal(1.0))
			}
		})
	})

	Describe("HandleParticles", func() {
		It("draws connections and circles on pre-update positions", func() {
			before := make([]r2.Vec, len(sc.Particles()))
			for i, p := range sc.Particles() {
				before[i] = p.Pos
			}

			sc.HandleParticles(rec)

			Expect(rec.Circles).To(HaveLen(len(before)))
			for i, c := range rec.Circles {
				Expect(c.X).To(Equal(before[i].X))
				Expect(c.Y).To(Equal(before[i].Y))
			}
			// Self-pair lines sit on the old centres.
			Expect(rec.Lines[0].X0).To(Equal(before[0].X))
			Expect(rec.Lines[0].Y0).To(Equal(before[0].Y))

			moved := 0
			for i, p := range sc.Particles() {
				if p.Pos != before[i] {
					moved++
				}
			}
			Expect(moved).To(BeNumerically(">", 0))
		})

		It("keeps every particle inside its buffer", func() {
			sc.PointerMove(640, 360)
			for frame := 0; frame < 300; frame++ {
				sc.Frame(rec)
				for _, p := range sc.Particles() {
					Expect(p.Pos.X).To(BeNumerically(">=", p.Buffer))
					Expect(p.Pos.X).To(BeNumerically("<=", sc.Width-p.Buffer))
					Expect(p.Pos.Y).To(BeNumerically(">=", p.Buffer))
					Expect(p.Pos.Y).To(BeNumerically("<=", sc.Height-p.Buffer))
				}
			}
		})
	})

	Describe("Frame", func() {
		It("clears the surface at the scene size", func() {
			sc.Frame(rec)
			Expect(rec.Frames).To(Equal(1))
			Expect(rec.Width).To(Equal(1280.0))
			Expect(rec.Height).To(Equal(720.0))
			Expect(rec.Circles).To(HaveLen(scene.DefaultParticles))
		})
	})

	Describe("pointer events", func() {
		It("activates on move and deactivates on leave", func() {
			sc.PointerMove(12, 34)
			ptr := sc.Pointer()
			Expect(ptr.Active).To(BeTrue())
			Expect(ptr.X).To(Equal(12.0))
			Expect(ptr.Y).To(Equal(34.0))

			sc.PointerLeave()
			ptr = sc.Pointer()
			Expect(ptr.Active).To(BeFalse())
			Expect(ptr.X).To(Equal(12.0))
		})

		It("leaves pushes untouched while inactive", func() {
			for i := 0; i < 50; i++ {
				sc.HandleParticles(rec)
			}
			for _, p := range sc.Particles() {
				Expect(p.Push).To(Equal(r2.Vec{}))
			}
		})
	})

	Describe("Resize", func() {
		It("repositions particles inside the new bounds", func() {
			vels := make([]r2.Vec, len(sc.Particles()))
			radii := make([]float64, len(sc.Particles()))
			for i, p := range sc.Particles() {
				vels[i], radii[i] = p.Vel, p.Radius
			}

			sc.Resize(320, 240)

			Expect(sc.Width).To(Equal(320.0))
			Expect(sc.Height).To(Equal(240.0))
			Expect(sc.Particles()).To(HaveLen(scene.DefaultParticles))
			for i, p := range sc.Particles() {
				Expect(p.Pos.X).To(BeNumerically(">=", p.Radius))
				Expect(p.Pos.X).To(BeNumerically("<=", 320-p.Radius))
				Expect(p.Pos.Y).To(BeNumerically(">=", p.Radius))
				Expect(p.Pos.Y).To(BeNumerically("<=", 240-p.Radius))
				Expect(p.Vel).To(Equal(vels[i]))
				Expect(p.Radius).To(Equal(radii[i]))
			}
		})
	})
})
