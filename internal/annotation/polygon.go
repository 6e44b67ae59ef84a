package annotation

import (
	"fmt"

	"github.com/google/uuid"

	"openpen/pkg/geometry"
)

// minPolygonPoints is the smallest vertex count a polygon can close with.
// Three collinear points are accepted; the result is degenerate but valid.
const minPolygonPoints = 3

// Polygon is a closed shape built up one click at a time. It stays open
// while the user is collecting vertices and becomes immutable on Finalize.
type Polygon struct {
	id     string
	style  Style
	points []geometry.Point2D
	closed bool
}

// NewPolygon creates an empty pending polygon.
func NewPolygon(style Style) (*Polygon, error) {
	if err := style.Validate(); err != nil {
		return nil, err
	}
	return &Polygon{
		id:    uuid.NewString(),
		style: style,
	}, nil
}

// AppendPoint adds a vertex to an open polygon. Appends after Finalize
// are ignored.
func (p *Polygon) AppendPoint(pt geometry.Point2D) {
	if p.closed {
		return
	}
	p.points = append(p.points, pt)
}

// Finalize closes the polygon, freezing its vertices. It fails if fewer
// than three vertices have been collected, leaving the polygon open.
func (p *Polygon) Finalize() error {
	if len(p.points) < minPolygonPoints {
		return fmt.Errorf("%w: polygon has %d of %d required points",
			ErrInvalidGeometry, len(p.points), minPolygonPoints)
	}
	p.closed = true
	return nil
}

// Closed reports whether the polygon has been finalized.
func (p *Polygon) Closed() bool { return p.closed }

// Points returns a copy of the polygon's vertex sequence.
func (p *Polygon) Points() []geometry.Point2D {
	out := make([]geometry.Point2D, len(p.points))
	copy(out, p.points)
	return out
}

// Len returns the number of collected vertices.
func (p *Polygon) Len() int { return len(p.points) }

// ObjectID implements Object.
func (p *Polygon) ObjectID() string { return p.id }

// ObjectKind implements Object.
func (p *Polygon) ObjectKind() Kind { return KindPolygon }

// ObjectStyle implements Object.
func (p *Polygon) ObjectStyle() Style { return p.style }

// HitTest reports whether pt lies within radius of any polygon edge,
// including the closing edge once the polygon is finalized.
func (p *Polygon) HitTest(pt geometry.Point2D, radius float64) bool {
	return geometry.PolylineDistance(pt, p.points, p.closed) <= radius
}

// Bounds implements Object.
func (p *Polygon) Bounds() geometry.Rect {
	return geometry.BoundsOf(p.points)
}
