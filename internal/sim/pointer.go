package sim

import (
	"fmt"
	"math"
	"sort"
)

// PointerPath scripts the pointer for runs without a real input device.
// It returns the pointer position for a frame and whether the pointer is
// over the surface.
type PointerPath func(frame int, width, height float64) (x, y float64, active bool)

var pointerPaths = map[string]PointerPath{
	"none":  nonePath,
	"orbit": orbitPath,
	"sweep": sweepPath,
}

// LookupPointerPath resolves a path by name. The empty name means "none".
func LookupPointerPath(name string) (PointerPath, error) {
	if name == "" {
		return nonePath, nil
	}
	p, ok := pointerPaths[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPath, name, PointerPathNames())
	}
	return p, nil
}

func PointerPathNames() []string {
	names := make([]string, 0, len(pointerPaths))
	for n := range pointerPaths {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func nonePath(int, float64, float64) (float64, float64, bool) {
	return 0, 0, false
}

// orbitPath circles the centre once every 240 frames.
func orbitPath(frame int, w, h float64) (float64, float64, bool) {
	r := math.Min(w, h) / 3
	theta := 2 * math.Pi * float64(frame) / 240
	return w/2 + r*math.Cos(theta), h/2 + r*math.Sin(theta), true
}

// sweepPath crosses the middle row left to right and leaves the surface
// for a quarter of each cycle.
func sweepPath(frame int, w, h float64) (float64, float64, bool) {
	const period = 400
	f := frame % period
	if f >= period*3/4 {
		return 0, 0, false
	}
	return w * float64(f) / (period * 3 / 4), h / 2, true
}
