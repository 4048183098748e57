// Package mannequin describes the primitive-based 3D figure and poses it from
// a 3D scale descriptor. The result is a plain value; a client renderer owns
// the graphics context and rebuilds its meshes from it on every update.
package mannequin

import (
	"errors"
	"fmt"

	"lg/bodyviz-api/internal/body"
)

// Kind is the solid a primitive is built from.
type Kind string

const (
	Sphere   Kind = "sphere"
	Cylinder Kind = "cylinder"
	Capsule  Kind = "capsule"
	Box      Kind = "box"
)

// Geometry carries the unscaled dimensions of a primitive in meters. Only the
// fields relevant to Kind are set.
type Geometry struct {
	Kind         Kind    `json:"kind" yaml:"kind"`
	Radius       float64 `json:"radius,omitempty" yaml:"radius,omitempty"`
	RadiusTop    float64 `json:"radius_top,omitempty" yaml:"radius_top,omitempty"`
	RadiusBottom float64 `json:"radius_bottom,omitempty" yaml:"radius_bottom,omitempty"`
	Length       float64 `json:"length,omitempty" yaml:"length,omitempty"`
	Width        float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Height       float64 `json:"height,omitempty" yaml:"height,omitempty"`
	Depth        float64 `json:"depth,omitempty" yaml:"depth,omitempty"`
}

// Primitive is one positioned, scaled solid.
type Primitive struct {
	Name     body.Segment `json:"name" yaml:"name"`
	Geometry Geometry     `json:"geometry" yaml:"geometry"`
	Position body.Vec3    `json:"position" yaml:"position"`
	Scale    body.Vec3    `json:"scale" yaml:"scale"`
}

// Camera is the default viewpoint for the figure.
type Camera struct {
	FOV      float64   `json:"fov" yaml:"fov"`
	Near     float64   `json:"near" yaml:"near"`
	Far      float64   `json:"far" yaml:"far"`
	Position body.Vec3 `json:"position" yaml:"position"`
}

// Scene is everything a client needs to draw one frame of the figure.
type Scene struct {
	Camera Camera `json:"camera" yaml:"camera"`
	// SpinPerFrame is the turntable rotation around Y, in radians per frame.
	SpinPerFrame float64     `json:"spin_per_frame" yaml:"spin_per_frame"`
	ShapeFactor  float64     `json:"shape_factor" yaml:"shape_factor"`
	Primitives   []Primitive `json:"primitives" yaml:"primitives"`
}

// ErrNot3D is returned when Pose is handed a 2D descriptor.
var ErrNot3D = errors.New("descriptor is not a 3D target")

var unit = body.Vec3{X: 1, Y: 1, Z: 1}

var defaultCamera = Camera{FOV: 45, Near: 0.1, Far: 1000, Position: body.Vec3{Y: 1.2, Z: 3.5}}

const spinPerFrame = 0.006

// rest is the figure at shape factor 0, in draw order.
var rest = []Primitive{
	{Name: body.SegHead, Geometry: Geometry{Kind: Sphere, Radius: 0.12}, Position: body.Vec3{Y: 1.7}},
	{Name: body.SegNeck, Geometry: Geometry{Kind: Cylinder, RadiusTop: 0.06, RadiusBottom: 0.08, Height: 0.15}, Position: body.Vec3{Y: 1.58}},
	{Name: body.SegChest, Geometry: Geometry{Kind: Cylinder, RadiusTop: 0.18, RadiusBottom: 0.16, Height: 0.5}, Position: body.Vec3{Y: 1.35}},
	{Name: body.SegHips, Geometry: Geometry{Kind: Cylinder, RadiusTop: 0.16, RadiusBottom: 0.22, Height: 0.45}, Position: body.Vec3{Y: 0.9}},
	{Name: body.SegArmLeft, Geometry: Geometry{Kind: Capsule, Radius: 0.045, Length: 0.55}, Position: body.Vec3{X: -0.32, Y: 1.3}},
	{Name: body.SegArmRight, Geometry: Geometry{Kind: Capsule, Radius: 0.045, Length: 0.55}, Position: body.Vec3{X: 0.32, Y: 1.3}},
	{Name: body.SegHandLeft, Geometry: Geometry{Kind: Box, Width: 0.07, Height: 0.09, Depth: 0.03}, Position: body.Vec3{X: -0.32, Y: 0.9}},
	{Name: body.SegHandRight, Geometry: Geometry{Kind: Box, Width: 0.07, Height: 0.09, Depth: 0.03}, Position: body.Vec3{X: 0.32, Y: 0.9}},
	{Name: body.SegLegLeft, Geometry: Geometry{Kind: Capsule, Radius: 0.075, Length: 0.8}, Position: body.Vec3{X: -0.13, Y: 0.4}},
	{Name: body.SegLegRight, Geometry: Geometry{Kind: Capsule, Radius: 0.075, Length: 0.8}, Position: body.Vec3{X: 0.13, Y: 0.4}},
}

// Rest returns a copy of the unscaled figure.
func Rest() []Primitive {
	out := make([]Primitive, len(rest))
	copy(out, rest)
	for i := range out {
		out[i].Scale = unit
	}
	return out
}

// Pose applies d to a fresh copy of the rest figure. Segments missing from d
// keep unit scale and their rest position.
func Pose(d body.Descriptor) ([]Primitive, error) {
	if !d.Target.Is3D() {
		return nil, fmt.Errorf("%w: %s", ErrNot3D, d.Target)
	}
	out := Rest()
	for i := range out {
		s, ok := d.Segments[out[i].Name]
		if !ok {
			continue
		}
		if s.Scale != nil {
			out[i].Scale = *s.Scale
		}
		if s.RootX != nil {
			out[i].Position.X = *s.RootX
		}
	}
	return out, nil
}

// Build poses the figure and wraps it with the default camera.
func Build(d body.Descriptor) (Scene, error) {
	prims, err := Pose(d)
	if err != nil {
		return Scene{}, err
	}
	return Scene{
		Camera:       defaultCamera,
		SpinPerFrame: spinPerFrame,
		ShapeFactor:  d.ShapeFactor,
		Primitives:   prims,
	}, nil
}
