// Package overlay provides the drawing surface widget. It forwards
// pointer events to the engine and renders the scene snapshot.
package overlay

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"openpen/internal/engine"
	"openpen/pkg/geometry"
)

// Widget is the annotation drawing surface. It owns no scene state;
// every frame is built from the engine's snapshot.
type Widget struct {
	widget.BaseWidget

	engine *engine.Engine

	// Last pointer position, used to draw the eraser cursor ring.
	cursor   geometry.Point2D
	hovering bool
	dragging bool
}

var _ fyne.Widget = (*Widget)(nil)
var _ fyne.Draggable = (*Widget)(nil)
var _ desktop.Mouseable = (*Widget)(nil)
var _ desktop.Hoverable = (*Widget)(nil)

// New creates the drawing surface bound to the engine.
func New(e *engine.Engine) *Widget {
	w := &Widget{engine: e}
	w.ExtendBaseWidget(w)

	e.On(engine.EventSceneChanged, func(interface{}) { w.Refresh() })
	e.On(engine.EventToolChanged, func(interface{}) { w.Refresh() })
	return w
}

func toPoint(pos fyne.Position) geometry.Point2D {
	return geometry.NewPoint2D(float64(pos.X), float64(pos.Y))
}

func toButton(b desktop.MouseButton) engine.Button {
	if b == desktop.MouseButtonPrimary {
		return engine.ButtonPrimary
	}
	return engine.ButtonSecondary
}

// MouseDown implements desktop.Mouseable.
func (w *Widget) MouseDown(ev *desktop.MouseEvent) {
	w.cursor = toPoint(ev.Position)
	w.dragging = true
	w.engine.PointerDown(w.cursor, toButton(ev.Button))
}

// MouseUp implements desktop.Mouseable.
func (w *Widget) MouseUp(ev *desktop.MouseEvent) {
	w.dragging = false
	w.engine.PointerUp(toPoint(ev.Position), toButton(ev.Button))
}

// Dragged implements fyne.Draggable.
func (w *Widget) Dragged(ev *fyne.DragEvent) {
	w.cursor = toPoint(ev.Position)
	w.engine.PointerMove(w.cursor)
	if w.engine.ActiveTool() == engine.ToolEraser {
		w.Refresh()
	}
}

// DragEnd implements fyne.Draggable. The commit happens in MouseUp.
func (w *Widget) DragEnd() {}

// MouseIn implements desktop.Hoverable.
func (w *Widget) MouseIn(ev *desktop.MouseEvent) {
	w.hovering = true
	w.cursor = toPoint(ev.Position)
}

// MouseMoved implements desktop.Hoverable.
func (w *Widget) MouseMoved(ev *desktop.MouseEvent) {
	w.cursor = toPoint(ev.Position)
	if w.engine.ActiveTool() == engine.ToolEraser {
		w.Refresh()
	}
}

// MouseOut implements desktop.Hoverable.
func (w *Widget) MouseOut() {
	w.hovering = false
	if w.engine.ActiveTool() == engine.ToolEraser {
		w.Refresh()
	}
}

// CreateRenderer implements fyne.Widget.
func (w *Widget) CreateRenderer() fyne.WidgetRenderer {
	return &overlayRenderer{widget: w}
}
