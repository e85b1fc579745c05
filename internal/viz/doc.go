// Package viz hosts the particle field in a terminal.
//
// The package implements a Bubble Tea program around a scene:
//
//   - [Model]: frame loop, stats pane and input handling
//   - [Canvas]: Braille-based pixel canvas with one colour per cell
//   - [BrailleSurface]: maps world units onto canvas dots
//   - [GIFRecorder]: captures frames into an animated GIF
//
// Mouse motion over the canvas moves the pointer; leaving the canvas or the
// terminal losing focus releases it. Resizing the terminal resizes the
// scene.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Reseed particles
//	G     - Toggle GIF recording
//	T     - Cycle themes
//	?     - Show help
//	Q     - Quit
package viz
