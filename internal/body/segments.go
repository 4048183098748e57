package body

// Segment is a named anatomical region that receives its own scale.
type Segment string

// 2D front (widths) and side (depths) segments.
const (
	SegNeck      Segment = "neck"
	SegShoulders Segment = "shoulders"
	SegChest     Segment = "chest"
	SegWaist     Segment = "waist"
	SegHips      Segment = "hips"
	SegThighs    Segment = "thighs"
	SegArms      Segment = "arms"
	SegBelly     Segment = "belly"
	SegButtocks  Segment = "buttocks"
	SegShadow    Segment = "shadow"
)

// 3D mannequin primitives. Neck, chest and hips reuse the 2D names.
const (
	SegHead      Segment = "head"
	SegArmLeft   Segment = "arm_left"
	SegArmRight  Segment = "arm_right"
	SegHandLeft  Segment = "hand_left"
	SegHandRight Segment = "hand_right"
	SegLegLeft   Segment = "leg_left"
	SegLegRight  Segment = "leg_right"
)

// Vec3 is a per-axis value: X is width, Y is height/length, Z is depth.
type Vec3 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// SegmentScale is what a renderer needs for one segment. 2D targets fill
// Dimension (viewBox units); the 3D target fills Scale and, for limbs, the
// lateral root position RootX.
type SegmentScale struct {
	Dimension float64  `json:"dimension,omitempty" yaml:"dimension,omitempty"`
	Scale     *Vec3    `json:"scale,omitempty" yaml:"scale,omitempty"`
	RootX     *float64 `json:"root_x,omitempty" yaml:"root_x,omitempty"`
}

// Scales maps each segment of a target to its scale.
type Scales map[Segment]SegmentScale

// Descriptor is the immutable output of the scaling model for one target.
// Renderers apply it wholesale on every update.
type Descriptor struct {
	Target      Target  `json:"target" yaml:"target"`
	ShapeFactor float64 `json:"shape_factor" yaml:"shape_factor"`
	Segments    Scales  `json:"segments" yaml:"segments"`
}

// linear evaluates base + w*gain*mul. mul carries the sex-specific
// adjustment some rows apply on top of a shared gain.
type linear struct {
	base, gain, mul float64
}

func (l linear) at(w float64) float64 {
	return l.base + (w * l.gain * l.mul)
}

type sexed struct {
	male, female linear
}

func (s sexed) pick(sex Sex) linear {
	if sex == Male {
		return s.male
	}
	return s.female
}

func same(base, gain float64) sexed {
	l := linear{base, gain, 1}
	return sexed{l, l}
}

type row2D struct {
	seg Segment
	dim sexed
}

// front2D holds silhouette widths. Hips and thighs grow faster for women,
// waist and neck faster for men.
var front2D = []row2D{
	{SegNeck, sexed{linear{17, 12, 1.2}, linear{14, 12, 0.8}}},
	{SegShoulders, sexed{linear{48, 10, 1}, linear{38, 10, 1}}},
	{SegChest, sexed{linear{42, 25, 0.8}, linear{36, 25, 1.0}}},
	{SegWaist, sexed{linear{32, 65, 1.1}, linear{26, 65, 0.7}}},
	{SegHips, sexed{linear{36, 50, 0.6}, linear{42, 50, 1.3}}},
	{SegThighs, sexed{linear{18, 22, 0.7}, linear{22, 22, 1.4}}},
	{SegArms, same(10, 9)},
	{SegShadow, same(60, 60)},
}

// side2D holds silhouette depths.
var side2D = []row2D{
	{SegNeck, sexed{linear{16, 8, 1}, linear{14, 8, 1}}},
	{SegChest, sexed{linear{32, 20, 1}, linear{34, 20, 1}}},
	{SegBelly, sexed{linear{28, 85, 1.2}, linear{28, 85, 0.8}}},
	{SegButtocks, sexed{linear{24, 25, 0.6}, linear{34, 25, 1.4}}},
	{SegThighs, same(20, 18)},
	{SegShadow, same(40, 50)},
}

// lateral positions a limb root at ±(base + w*gain) on the X axis.
type lateral struct {
	base, gain float64
	left       bool
}

func (l lateral) at(w float64) float64 {
	if l.left {
		return -l.base - (w * l.gain)
	}
	return l.base + (w * l.gain)
}

// row3D scales X and Z independently; Y is never scaled. A nil root means
// the primitive stays on the center line.
type row3D struct {
	seg  Segment
	x, z sexed
	root *lateral
}

func round3D(seg Segment, xz sexed, root *lateral) row3D {
	return row3D{seg: seg, x: xz, z: xz, root: root}
}

var mannequin3D = []row3D{
	round3D(SegHead, same(1.0, 0.1), nil),
	round3D(SegNeck, sexed{linear{1.0, 0.5, 1.2}, linear{1.0, 0.5, 0.8}}, nil),
	{
		seg: SegChest,
		x:   sexed{linear{1.0, 0.8, 1}, linear{0.9, 0.8, 1}},
		z:   sexed{linear{1.0, 0.6, 1}, linear{1.1, 0.6, 1}},
	},
	{
		seg: SegHips,
		x:   sexed{linear{0.9, 0.7, 0.8}, linear{1.1, 0.7, 1.3}},
		z:   sexed{linear{1.0, 0.9, 1.2}, linear{1.1, 0.9, 0.8}},
	},
	round3D(SegArmLeft, same(1.0, 0.6), &lateral{0.32, 0.1, true}),
	round3D(SegArmRight, same(1.0, 0.6), &lateral{0.32, 0.1, false}),
	round3D(SegHandLeft, same(1.0, 0.2), &lateral{0.32, 0.1, true}),
	round3D(SegHandRight, same(1.0, 0.2), &lateral{0.32, 0.1, false}),
	round3D(SegLegLeft, sexed{linear{1.0, 0.7, 0.8}, linear{1.0, 0.7, 1.4}}, &lateral{0.13, 0.08, true}),
	round3D(SegLegRight, sexed{linear{1.0, 0.7, 0.8}, linear{1.0, 0.7, 1.4}}, &lateral{0.13, 0.08, false}),
}

// SegmentsFor lists the segment names of t in table order.
func SegmentsFor(t Target) []Segment {
	var out []Segment
	switch t {
	case Target2DFront:
		for _, r := range front2D {
			out = append(out, r.seg)
		}
	case Target2DSide:
		for _, r := range side2D {
			out = append(out, r.seg)
		}
	case Target3D:
		for _, r := range mannequin3D {
			out = append(out, r.seg)
		}
	}
	return out
}

// ComputeSegmentScales evaluates the coefficient table of target for bmi and
// sex. Out-of-range BMI is clamped through ShapeFactor; the only error is an
// unknown target. Any sex other than Male takes the female coefficients.
func ComputeSegmentScales(bmi float64, sex Sex, target Target) (Scales, error) {
	d, err := Describe(bmi, sex, target)
	if err != nil {
		return nil, err
	}
	return d.Segments, nil
}

// Describe is ComputeSegmentScales plus the shape factor that produced it.
func Describe(bmi float64, sex Sex, target Target) (Descriptor, error) {
	w := ShapeFactor(bmi, target)

	var scales Scales
	switch target {
	case Target2DFront:
		scales = eval2D(front2D, w, sex)
	case Target2DSide:
		scales = eval2D(side2D, w, sex)
	case Target3D:
		scales = eval3D(w, sex)
	default:
		return Descriptor{}, ErrUnknownTarget
	}
	return Descriptor{Target: target, ShapeFactor: w, Segments: scales}, nil
}

func eval2D(rows []row2D, w float64, sex Sex) Scales {
	out := make(Scales, len(rows))
	for _, r := range rows {
		out[r.seg] = SegmentScale{Dimension: r.dim.pick(sex).at(w)}
	}
	return out
}

func eval3D(w float64, sex Sex) Scales {
	out := make(Scales, len(mannequin3D))
	for _, r := range mannequin3D {
		s := SegmentScale{Scale: &Vec3{
			X: r.x.pick(sex).at(w),
			Y: 1,
			Z: r.z.pick(sex).at(w),
		}}
		if r.root != nil {
			x := r.root.at(w)
			s.RootX = &x
		}
		out[r.seg] = s
	}
	return out
}
