// Package scene drives the particle field frame by frame.
//
// A [Scene] owns a fixed batch of particles, the surface size and the
// pointer state. Each frame the host calls [Scene.Frame], which clears the
// surface, strokes the connection lines on the current positions and then
// draws and advances every particle:
//
//	sc := scene.New(800, 600, scene.Options{Seed: 1})
//	for {
//		sc.Frame(surface)
//	}
//
// Hosts forward their input to [Scene.PointerMove], [Scene.PointerLeave]
// and [Scene.Resize]. The pointer is handed to particles as a value
// snapshot, so particles never reference the scene.
//
// # Cost
//
// Connections are found by checking every pair each frame, O(N^2). That
// is fine for the default hundred particles; large counts from a config
// file scale quadratically.
package scene
