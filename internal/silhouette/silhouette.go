// Package silhouette draws the flat body outline from a 2D scale descriptor.
// The outline is a fixed set of cubic/quadratic spline templates whose control
// points are offset by the per-segment widths (front) or depths (side).
package silhouette

import (
	"errors"
	"fmt"
	"strings"

	"lg/bodyviz-api/internal/body"
)

const (
	viewWidth  = 240
	viewHeight = 500
	centerX    = 120.0

	defaultFill   = "#E9BBA6"
	defaultShadow = "#0f172a"
)

// ErrNot2D is returned when Render is handed a 3D descriptor.
var ErrNot2D = errors.New("descriptor is not a 2D target")

// Options controls the paint of the outline. Zero values fall back to defaults.
type Options struct {
	Fill   string
	Shadow string
}

// Render returns a standalone SVG document for d.
func Render(d body.Descriptor, opts Options) (string, error) {
	if opts.Fill == "" {
		opts.Fill = defaultFill
	}
	if opts.Shadow == "" {
		opts.Shadow = defaultShadow
	}

	var paths []string
	switch d.Target {
	case body.Target2DFront:
		paths = frontPaths(d.Segments)
	case body.Target2DSide:
		paths = sidePaths(d.Segments)
	default:
		return "", fmt.Errorf("%w: %s", ErrNot2D, d.Target)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" data-target="%s" data-shape-factor="%.4f">`,
		viewWidth, viewHeight, d.Target, d.ShapeFactor))
	sb.WriteString(fmt.Sprintf(`<ellipse cx="%.2f" cy="485" rx="%.2f" ry="10" fill="%s" fill-opacity="0.08"/>`,
		centerX, dim(d.Segments, body.SegShadow), opts.Shadow))
	sb.WriteString(fmt.Sprintf(`<g fill="%s">`, opts.Fill))
	for _, p := range paths {
		sb.WriteString(p)
	}
	sb.WriteString(`</g></svg>`)
	return sb.String(), nil
}

func dim(s body.Scales, seg body.Segment) float64 {
	return s[seg].Dimension
}

// pathBuilder writes SVG path data. Coordinates are absolute.
type pathBuilder struct {
	sb strings.Builder
}

func (p *pathBuilder) op(cmd string, pts ...float64) *pathBuilder {
	if p.sb.Len() > 0 {
		p.sb.WriteByte(' ')
	}
	p.sb.WriteString(cmd)
	for i := 0; i+1 < len(pts); i += 2 {
		p.sb.WriteString(fmt.Sprintf(" %.2f,%.2f", pts[i], pts[i+1]))
	}
	return p
}

func (p *pathBuilder) M(x, y float64) *pathBuilder { return p.op("M", x, y) }
func (p *pathBuilder) L(x, y float64) *pathBuilder { return p.op("L", x, y) }
func (p *pathBuilder) Q(x1, y1, x, y float64) *pathBuilder {
	return p.op("Q", x1, y1, x, y)
}
func (p *pathBuilder) C(x1, y1, x2, y2, x, y float64) *pathBuilder {
	return p.op("C", x1, y1, x2, y2, x, y)
}

func (p *pathBuilder) element(id string) string {
	return fmt.Sprintf(`<path id="%s" d="%s Z"/>`, id, p.sb.String())
}

// mirror offsets a distance to the left (side=-1) or right (side=+1) of the
// vertical center line.
func mirror(side, off float64) float64 {
	return centerX + side*off
}
