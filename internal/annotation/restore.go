package annotation

import (
	"fmt"

	"github.com/google/uuid"

	"openpen/pkg/geometry"
)

// Restore constructors rebuild finalized objects from persisted data,
// preserving their original identifiers. A blank ID gets a fresh one.

// RestoreStroke rebuilds a committed stroke.
func RestoreStroke(id string, points []geometry.Point2D, style Style) (*Stroke, error) {
	if err := style.Validate(); err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: stroke has no points", ErrInvalidGeometry)
	}
	if id == "" {
		id = uuid.NewString()
	}
	pts := make([]geometry.Point2D, len(points))
	copy(pts, points)
	return &Stroke{id: id, style: style, points: pts, frozen: true}, nil
}

// RestorePolygon rebuilds a finalized (closed) polygon.
func RestorePolygon(id string, points []geometry.Point2D, style Style) (*Polygon, error) {
	if err := style.Validate(); err != nil {
		return nil, err
	}
	if len(points) < minPolygonPoints {
		return nil, fmt.Errorf("%w: polygon has %d of %d required points",
			ErrInvalidGeometry, len(points), minPolygonPoints)
	}
	if id == "" {
		id = uuid.NewString()
	}
	pts := make([]geometry.Point2D, len(points))
	copy(pts, points)
	return &Polygon{id: id, style: style, points: pts, closed: true}, nil
}

// RestoreTextBox rebuilds a text box.
func RestoreTextBox(id string, anchor geometry.Point2D, text string, style Style) (*TextBox, error) {
	if err := style.Validate(); err != nil {
		return nil, err
	}
	if id == "" {
		id = uuid.NewString()
	}
	return &TextBox{id: id, style: style, anchor: anchor, text: text}, nil
}
