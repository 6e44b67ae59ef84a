// Package annotation provides the in-memory model of drawable annotation
// objects: freehand strokes, polygons, and text boxes.
package annotation

import (
	"errors"
	"fmt"
	"image/color"

	"openpen/pkg/geometry"
)

// ErrInvalidGeometry reports an object that cannot be constructed or
// finalized: a polygon with too few points, or a non-positive thickness.
var ErrInvalidGeometry = errors.New("invalid geometry")

// Kind identifies the concrete type of an annotation object.
type Kind string

const (
	KindStroke  Kind = "stroke"
	KindPolygon Kind = "polygon"
	KindText    Kind = "text"
)

// Style describes how an object is drawn. It is attached at creation
// time and never changes afterwards.
type Style struct {
	Color     color.RGBA `json:"color"`
	Thickness float64    `json:"thickness"`
}

// Validate checks that the style can produce visible output.
func (s Style) Validate() error {
	if s.Thickness <= 0 {
		return fmt.Errorf("%w: thickness %v must be positive", ErrInvalidGeometry, s.Thickness)
	}
	return nil
}

// Object is the common interface for all finalized annotation objects.
// Objects are immutable once committed to the scene; they are removed
// by erasure, never mutated in place.
type Object interface {
	// ObjectID returns the unique identifier for this object.
	ObjectID() string

	// ObjectKind returns the concrete kind of this object.
	ObjectKind() Kind

	// ObjectStyle returns the style the object was created with.
	ObjectStyle() Style

	// HitTest returns true if the point lies within radius of the object.
	HitTest(p geometry.Point2D, radius float64) bool

	// Bounds returns the bounding rectangle of this object.
	Bounds() geometry.Rect
}
