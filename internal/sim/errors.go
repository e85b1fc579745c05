package sim

import "errors"

var (
	// ErrNoFrames indicates a run asked for zero or fewer frames.
	ErrNoFrames = errors.New("sim: frame count must be positive")

	// ErrUnknownPath indicates a pointer path name that is not registered.
	ErrUnknownPath = errors.New("sim: unknown pointer path")
)
