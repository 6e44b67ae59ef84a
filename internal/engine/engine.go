// Package engine implements the annotation tool state machine: it turns
// the host's pointer and key events into scene edits routed through the
// undo/redo history.
package engine

import (
	"errors"
	"fmt"
	"strings"

	"openpen/internal/annotation"
	"openpen/internal/history"
	"openpen/internal/scene"
	"openpen/internal/spatial"
	"openpen/pkg/colorutil"
	"openpen/pkg/geometry"
)

// ErrNoActiveGesture reports a finalize or confirm with no matching
// gesture in progress.
var ErrNoActiveGesture = errors.New("no active gesture")

// penEpsilon drops pointer samples closer than this to the previous
// one, avoiding degenerate zero-length segments during a drag.
const penEpsilon = 1.0

// defaultText substitutes for an empty text confirmation.
const defaultText = "Text"

// Defaults applied until the host pushes its own settings.
const (
	DefaultThickness    = 4.0
	DefaultEraserRadius = 24.0
)

// Engine owns the scene, the history, and the per-tool gesture state.
// All methods except Snapshot must be called from the host's event
// loop goroutine; Snapshot may be called from the render path.
type Engine struct {
	scene   *scene.Scene
	history *history.Manager

	tool         Tool
	style        annotation.Style
	eraserRadius float64

	// Pen gesture
	penStroke  *annotation.Stroke
	lastSample geometry.Point2D

	// Polygon gesture
	polygon *annotation.Polygon

	// Text gesture
	textEditing bool
	textAnchor  geometry.Point2D

	// Eraser gesture
	erasing bool
	erased  []history.EraseEntry
	index   *spatial.Index

	listeners map[EventType][]EventListener
}

// New creates an engine with an empty scene, pen tool active, and the
// default style.
func New() *Engine {
	sc := scene.New()
	return &Engine{
		scene:        sc,
		history:      history.New(sc),
		tool:         ToolPen,
		style:        annotation.Style{Color: colorutil.Red, Thickness: DefaultThickness},
		eraserRadius: DefaultEraserRadius,
		listeners:    make(map[EventType][]EventListener),
	}
}

// ActiveTool returns the currently selected tool.
func (e *Engine) ActiveTool() Tool { return e.tool }

// SetTool switches the active tool. Switching while a gesture is
// pending discards the pending object; nothing partial enters history.
func (e *Engine) SetTool(t Tool) {
	if t == e.tool {
		return
	}
	e.discardPending()
	e.tool = t
	e.emit(EventToolChanged, t)
	e.emit(EventSceneChanged, nil)
}

// Style returns the style applied to the next created object.
func (e *Engine) Style() annotation.Style { return e.style }

// SetStyle sets the style for subsequently created objects. Objects
// already in the scene keep the style they were created with.
func (e *Engine) SetStyle(s annotation.Style) error {
	if err := s.Validate(); err != nil {
		return err
	}
	e.style = s
	e.emit(EventStyleChanged, s)
	return nil
}

// EraserRadius returns the current eraser radius in overlay pixels.
func (e *Engine) EraserRadius() float64 { return e.eraserRadius }

// SetEraserRadius sets the eraser radius. Non-positive values are ignored.
func (e *Engine) SetEraserRadius(r float64) {
	if r > 0 {
		e.eraserRadius = r
	}
}

// PointerDown routes a pointer press to the active tool.
func (e *Engine) PointerDown(p geometry.Point2D, button Button) {
	if button != ButtonPrimary {
		return
	}
	switch e.tool {
	case ToolMouse:
		// Pass-through: the engine performs no drawing mutation.
	case ToolPen:
		e.beginStroke(p)
	case ToolPolygon:
		e.appendPolygonPoint(p)
	case ToolText:
		e.beginTextEdit(p)
	case ToolEraser:
		e.beginErase(p)
	}
}

// PointerMove routes a pointer move sample to the active tool. Moves
// with no gesture in progress are ignored.
func (e *Engine) PointerMove(p geometry.Point2D) {
	switch e.tool {
	case ToolPen:
		e.extendStroke(p)
	case ToolEraser:
		if e.erasing {
			e.eraseAt(p)
		}
	}
}

// PointerUp routes a pointer release to the active tool.
func (e *Engine) PointerUp(p geometry.Point2D, button Button) {
	if button != ButtonPrimary {
		return
	}
	switch e.tool {
	case ToolPen:
		e.endStroke(p)
	case ToolEraser:
		e.endErase()
	}
}

// HandleKey routes a key press: tool-switch hotkeys, Enter to finalize
// a polygon, Escape to cancel the pending gesture. The returned error
// is recoverable and surfaced as a status hint, never fatal.
func (e *Engine) HandleKey(k Key) error {
	if tool, ok := toolForKey(k); ok {
		e.SetTool(tool)
		return nil
	}
	switch k {
	case KeyEnter:
		return e.FinalizePolygon()
	case KeyEscape:
		e.CancelPending()
		return nil
	}
	return nil
}

// Undo reverts the most recent committed action.
func (e *Engine) Undo() error {
	if err := e.history.Undo(); err != nil {
		e.status("nothing to undo")
		return err
	}
	e.emit(EventSceneChanged, nil)
	return nil
}

// Redo re-applies the most recently undone action.
func (e *Engine) Redo() error {
	if err := e.history.Redo(); err != nil {
		e.status("nothing to redo")
		return err
	}
	e.emit(EventSceneChanged, nil)
	return nil
}

// Clear removes every finalized object and the pending gesture, and
// resets history. Clear is not undoable.
func (e *Engine) Clear() {
	e.discardPending()
	e.history.Clear()
	e.emit(EventSceneChanged, nil)
}

// Snapshot returns the ordered finalized objects plus the pending
// object for drawing. Called once per frame by the host.
func (e *Engine) Snapshot() scene.Snapshot {
	return e.scene.Snapshot()
}

// ReplaceAll swaps the finalized scene for the given objects and resets
// history, discarding any pending gesture. Used by document load.
func (e *Engine) ReplaceAll(objects []annotation.Object) {
	e.discardPending()
	e.history.Clear()
	for _, obj := range objects {
		e.scene.Append(obj)
	}
	e.emit(EventSceneChanged, nil)
}

// CancelPending discards the in-progress gesture, reporting whether
// there was one. The host quits on Escape when nothing was cancelled.
func (e *Engine) CancelPending() bool {
	cancelled := e.hasPending()
	e.discardPending()
	if cancelled {
		e.emit(EventSceneChanged, nil)
	}
	return cancelled
}

// hasPending reports whether any gesture is in progress.
func (e *Engine) hasPending() bool {
	return e.penStroke != nil || e.polygon != nil || e.textEditing || e.erasing
}

// discardPending drops all per-tool gesture state. An interrupted
// eraser drag still records what it already removed so the removals
// stay undoable as one step.
func (e *Engine) discardPending() {
	e.penStroke = nil
	e.polygon = nil
	e.textEditing = false
	if e.erasing {
		e.endErase()
	}
	e.scene.ClearPending()
}

// --- Pen ---

func (e *Engine) beginStroke(p geometry.Point2D) {
	if e.penStroke != nil {
		return
	}
	stroke, err := annotation.NewStroke(p, e.style)
	if err != nil {
		e.status(err.Error())
		return
	}
	e.penStroke = stroke
	e.lastSample = p
	e.scene.SetPending(stroke)
	e.emit(EventSceneChanged, nil)
}

func (e *Engine) extendStroke(p geometry.Point2D) {
	if e.penStroke == nil {
		return
	}
	if p.Distance(e.lastSample) < penEpsilon {
		return
	}
	e.penStroke.AppendPoint(p)
	e.lastSample = p
	e.emit(EventSceneChanged, nil)
}

// endStroke commits the drag as a stroke. A click with no movement
// yields a single-point stroke, which is discarded rather than drawn
// as a dot.
func (e *Engine) endStroke(p geometry.Point2D) {
	if e.penStroke == nil {
		return
	}
	e.extendStroke(p)

	stroke := e.penStroke
	e.penStroke = nil
	e.scene.ClearPending()

	if stroke.Len() < 2 {
		e.emit(EventSceneChanged, nil)
		return
	}
	stroke.Freeze()
	e.history.Commit(&history.Add{Object: stroke})
	e.emit(EventSceneChanged, nil)
}

// --- Polygon ---

func (e *Engine) appendPolygonPoint(p geometry.Point2D) {
	if e.polygon == nil {
		poly, err := annotation.NewPolygon(e.style)
		if err != nil {
			e.status(err.Error())
			return
		}
		e.polygon = poly
		e.scene.SetPending(poly)
	}
	e.polygon.AppendPoint(p)
	e.emit(EventSceneChanged, nil)
}

// FinalizePolygon closes and commits the pending polygon. With fewer
// than three points it reports ErrInvalidGeometry and the polygon stays
// collecting; outside a polygon gesture it reports ErrNoActiveGesture.
func (e *Engine) FinalizePolygon() error {
	if e.tool != ToolPolygon || e.polygon == nil {
		e.status("no polygon in progress")
		return ErrNoActiveGesture
	}
	if err := e.polygon.Finalize(); err != nil {
		e.status(fmt.Sprintf("polygon needs at least 3 points (%d so far)", e.polygon.Len()))
		return err
	}

	poly := e.polygon
	e.polygon = nil
	e.scene.ClearPending()
	e.history.Commit(&history.Add{Object: poly})
	e.emit(EventSceneChanged, nil)
	return nil
}

// --- Text ---

func (e *Engine) beginTextEdit(p geometry.Point2D) {
	e.textEditing = true
	e.textAnchor = p
	e.emit(EventTextEditRequested, p)
}

// TextEditing reports whether a text placement is awaiting confirmation.
func (e *Engine) TextEditing() bool { return e.textEditing }

// ConfirmText commits the captured text at the clicked anchor. Empty or
// whitespace-only text falls back to the default label.
func (e *Engine) ConfirmText(text string) error {
	if !e.textEditing {
		return ErrNoActiveGesture
	}
	e.textEditing = false

	if strings.TrimSpace(text) == "" {
		text = defaultText
	}
	tb, err := annotation.NewTextBox(e.textAnchor, text, e.style)
	if err != nil {
		e.status(err.Error())
		return err
	}
	e.history.Commit(&history.Add{Object: tb})
	e.emit(EventSceneChanged, nil)
	return nil
}
