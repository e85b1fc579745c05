// Package render defines the drawing surface consumed by the simulation.
//
// The package provides:
//
//   - [Surface]: clear, fill-circle and gradient-stroke primitives
//   - [Recorder]: in-memory surface that records every call
//   - [Split]: gradient line cut into solid segments
//
// Concrete surfaces live next to their hosts: the braille canvas in viz,
// the raylib window in gui, the HTML-style canvas in sdlview, and the SVG
// writer in export.
package render
