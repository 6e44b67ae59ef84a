package annotation

import (
	"github.com/google/uuid"

	"openpen/pkg/geometry"
)

// Text box display metrics, matching how the overlay renders them:
// a rounded backdrop sized from the glyph count.
const (
	textCharWidth = 9.0
	textPadding   = 14.0
	textHeight    = 30.0
)

// TextBox is a short text label anchored at a point. Unlike strokes and
// polygons it has no incremental build phase; it is created fully formed.
type TextBox struct {
	id     string
	style  Style
	anchor geometry.Point2D
	text   string
}

// NewTextBox creates a text box at the given anchor.
func NewTextBox(anchor geometry.Point2D, text string, style Style) (*TextBox, error) {
	if err := style.Validate(); err != nil {
		return nil, err
	}
	return &TextBox{
		id:     uuid.NewString(),
		style:  style,
		anchor: anchor,
		text:   text,
	}, nil
}

// Anchor returns the top-left anchor point.
func (t *TextBox) Anchor() geometry.Point2D { return t.anchor }

// Text returns the label text.
func (t *TextBox) Text() string { return t.text }

// ObjectID implements Object.
func (t *TextBox) ObjectID() string { return t.id }

// ObjectKind implements Object.
func (t *TextBox) ObjectKind() Kind { return KindText }

// ObjectStyle implements Object.
func (t *TextBox) ObjectStyle() Style { return t.style }

// HitTest reports whether p lies within radius of the anchor or inside
// the backdrop rectangle grown by radius.
func (t *TextBox) HitTest(p geometry.Point2D, radius float64) bool {
	if t.anchor.Distance(p) <= radius {
		return true
	}
	return t.Bounds().Expand(radius).Contains(p)
}

// Bounds returns the backdrop rectangle of the rendered label.
func (t *TextBox) Bounds() geometry.Rect {
	width := float64(len(t.text))*textCharWidth + textPadding
	return geometry.NewRect(t.anchor.X, t.anchor.Y, width, textHeight)
}
