package annotation

import (
	"github.com/google/uuid"

	"openpen/pkg/geometry"
)

// Stroke is a freehand polyline produced by one continuous pen drag.
type Stroke struct {
	id     string
	style  Style
	points []geometry.Point2D
	frozen bool
}

// NewStroke creates a pending stroke starting at the given point.
func NewStroke(start geometry.Point2D, style Style) (*Stroke, error) {
	if err := style.Validate(); err != nil {
		return nil, err
	}
	return &Stroke{
		id:     uuid.NewString(),
		style:  style,
		points: []geometry.Point2D{start},
	}, nil
}

// AppendPoint adds a sample to a pending stroke. Appends to a frozen
// stroke are ignored.
func (s *Stroke) AppendPoint(p geometry.Point2D) {
	if s.frozen {
		return
	}
	s.points = append(s.points, p)
}

// Freeze marks the stroke immutable. Called when the gesture commits.
func (s *Stroke) Freeze() {
	s.frozen = true
}

// Points returns a copy of the stroke's point sequence.
func (s *Stroke) Points() []geometry.Point2D {
	out := make([]geometry.Point2D, len(s.points))
	copy(out, s.points)
	return out
}

// Len returns the number of points in the stroke.
func (s *Stroke) Len() int { return len(s.points) }

// ObjectID implements Object.
func (s *Stroke) ObjectID() string { return s.id }

// ObjectKind implements Object.
func (s *Stroke) ObjectKind() Kind { return KindStroke }

// ObjectStyle implements Object.
func (s *Stroke) ObjectStyle() Style { return s.style }

// HitTest reports whether p lies within radius of any stroke segment.
func (s *Stroke) HitTest(p geometry.Point2D, radius float64) bool {
	return geometry.PolylineDistance(p, s.points, false) <= radius
}

// Bounds implements Object.
func (s *Stroke) Bounds() geometry.Rect {
	return geometry.BoundsOf(s.points)
}
