package overlay

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"golang.org/x/image/colornames"

	"openpen/internal/annotation"
	"openpen/internal/engine"
	"openpen/pkg/geometry"
)

const (
	vertexDotRadius = 3.5
	textPadding     = 7.0
	minWidth        = 320
	minHeight       = 240
)

type overlayRenderer struct {
	widget  *Widget
	objects []fyne.CanvasObject
}

func (r *overlayRenderer) Layout(size fyne.Size) {
	// Canvas primitives carry absolute positions set during rebuild.
}

func (r *overlayRenderer) MinSize() fyne.Size {
	return fyne.NewSize(minWidth, minHeight)
}

func (r *overlayRenderer) Objects() []fyne.CanvasObject {
	r.rebuild()
	return r.objects
}

func (r *overlayRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.widget)
}

func (r *overlayRenderer) Destroy() {}

// rebuild regenerates the primitive list from the current engine snapshot.
func (r *overlayRenderer) rebuild() {
	snap := r.widget.engine.Snapshot()

	objs := make([]fyne.CanvasObject, 0, 4*(len(snap.Objects)+1))
	for _, a := range snap.Objects {
		objs = appendObject(objs, a, false)
	}
	if snap.Pending != nil {
		objs = appendObject(objs, snap.Pending, true)
	}
	if r.widget.hovering && r.widget.engine.ActiveTool() == engine.ToolEraser {
		objs = append(objs, eraserRing(r.widget.cursor, r.widget.engine.EraserRadius()))
	}
	r.objects = objs
}

func appendObject(objs []fyne.CanvasObject, a annotation.Object, pending bool) []fyne.CanvasObject {
	style := a.ObjectStyle()
	switch obj := a.(type) {
	case *annotation.Stroke:
		objs = appendPolyline(objs, obj.Points(), false, style)
		if pending && obj.Len() == 1 {
			objs = append(objs, vertexDot(obj.Points()[0], style.Color))
		}
	case *annotation.Polygon:
		pts := obj.Points()
		objs = appendPolyline(objs, pts, obj.Closed(), style)
		if pending {
			for _, p := range pts {
				objs = append(objs, vertexDot(p, style.Color))
			}
		}
	case *annotation.TextBox:
		objs = appendTextBox(objs, obj, pending)
	}
	return objs
}

func appendPolyline(objs []fyne.CanvasObject, pts []geometry.Point2D, closed bool, style annotation.Style) []fyne.CanvasObject {
	for i := 1; i < len(pts); i++ {
		objs = append(objs, segment(pts[i-1], pts[i], style))
	}
	if closed && len(pts) > 2 {
		objs = append(objs, segment(pts[len(pts)-1], pts[0], style))
	}
	return objs
}

func segment(a, b geometry.Point2D, style annotation.Style) *canvas.Line {
	line := canvas.NewLine(style.Color)
	line.StrokeWidth = float32(style.Thickness)
	line.Position1 = fyne.NewPos(float32(a.X), float32(a.Y))
	line.Position2 = fyne.NewPos(float32(b.X), float32(b.Y))
	return line
}

func vertexDot(p geometry.Point2D, c color.Color) *canvas.Circle {
	dot := canvas.NewCircle(c)
	dot.StrokeColor = colornames.White
	dot.StrokeWidth = 1
	dot.Resize(fyne.NewSize(2*vertexDotRadius, 2*vertexDotRadius))
	dot.Move(fyne.NewPos(float32(p.X)-vertexDotRadius, float32(p.Y)-vertexDotRadius))
	return dot
}

func appendTextBox(objs []fyne.CanvasObject, tb *annotation.TextBox, pending bool) []fyne.CanvasObject {
	style := tb.ObjectStyle()
	bounds := tb.Bounds()

	backdrop := canvas.NewRectangle(color.NRGBA{R: 20, G: 20, B: 26, A: 200})
	backdrop.StrokeColor = style.Color
	backdrop.StrokeWidth = 1.5
	if pending {
		backdrop.StrokeWidth = 2.5
	}
	backdrop.CornerRadius = 4
	backdrop.Resize(fyne.NewSize(float32(bounds.Width), float32(bounds.Height)))
	backdrop.Move(fyne.NewPos(float32(bounds.X), float32(bounds.Y)))

	label := canvas.NewText(tb.Text(), style.Color)
	label.TextSize = 15
	label.Move(fyne.NewPos(float32(bounds.X+textPadding), float32(bounds.Y+textPadding/2)))

	return append(objs, backdrop, label)
}

func eraserRing(center geometry.Point2D, radius float64) *canvas.Circle {
	ring := canvas.NewCircle(color.Transparent)
	ring.StrokeColor = colornames.Gainsboro
	ring.StrokeWidth = 1.5
	ring.Resize(fyne.NewSize(float32(2*radius), float32(2*radius)))
	ring.Move(fyne.NewPos(float32(center.X-radius), float32(center.Y-radius)))
	return ring
}
