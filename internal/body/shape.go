package body

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Target names the renderer a set of segment scales is tuned for.
type Target string

const (
	Target2DFront Target = "2d-front"
	Target2DSide  Target = "2d-side"
	Target3D      Target = "3d"
)

// ErrUnknownTarget is returned for a target outside Targets.
var ErrUnknownTarget = errors.New("unknown target")

// Targets lists every supported target in a stable order.
var Targets = []Target{Target2DFront, Target2DSide, Target3D}

// ParseTarget accepts the wire names of Targets.
func ParseTarget(s string) (Target, error) {
	t := Target(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Targets {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTarget, s)
}

// Is3D reports whether t drives the primitive mannequin.
func (t Target) Is3D() bool { return t == Target3D }

// The 2D silhouette and the 3D mannequin were tuned separately and clamp the
// shape factor to different ceilings. Keep them apart.
const (
	shapeBMIOffset = 15.0
	shapeBMISpan   = 30.0

	clampMax2D = 1.2
	clampMax3D = 1.5
)

// ClampMax returns the shape-factor ceiling for t.
func (t Target) ClampMax() float64 {
	if t.Is3D() {
		return clampMax3D
	}
	return clampMax2D
}

// ShapeFactor maps bmi onto [0, t.ClampMax()]. NaN maps to 0.
func ShapeFactor(bmi float64, t Target) float64 {
	w := (bmi - shapeBMIOffset) / shapeBMISpan
	if math.IsNaN(w) {
		return 0
	}
	return math.Max(0, math.Min(t.ClampMax(), w))
}
