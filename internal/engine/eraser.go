package engine

import (
	"openpen/internal/history"
	"openpen/internal/spatial"
	"openpen/pkg/geometry"
)

// beginErase starts a contiguous erase gesture. The spatial index is
// built once per gesture; objects only leave the scene while the drag
// is in progress, so stale index entries are filtered by ID.
func (e *Engine) beginErase(p geometry.Point2D) {
	e.erasing = true
	e.erased = nil
	e.index = spatial.NewIndex(e.scene.Objects())
	e.eraseAt(p)
}

// eraseAt removes every finalized object within the eraser radius of p.
// Removals mutate the scene immediately so the user sees them during
// the drag; the single BulkErase command is recorded at gesture end.
func (e *Engine) eraseAt(p geometry.Point2D) {
	removed := false
	for _, id := range e.index.CandidatesWithin(p, e.eraserRadius) {
		if e.alreadyErased(id) {
			continue
		}
		obj, ok := e.scene.ObjectByID(id)
		if !ok || !obj.HitTest(p, e.eraserRadius) {
			continue
		}
		if removedObj, idx, ok := e.scene.RemoveByID(id); ok {
			e.erased = append(e.erased, history.EraseEntry{Object: removedObj, Index: idx})
			removed = true
		}
	}
	if removed {
		e.emit(EventSceneChanged, nil)
	}
}

// endErase finishes the gesture, coalescing everything removed during
// the drag into one undoable step.
func (e *Engine) endErase() {
	if !e.erasing {
		return
	}
	e.erasing = false
	e.index = nil
	if len(e.erased) == 0 {
		return
	}
	e.history.Record(&history.BulkErase{Entries: e.erased})
	e.erased = nil
	e.emit(EventSceneChanged, nil)
}

// alreadyErased reports whether the object was removed earlier in the
// current gesture.
func (e *Engine) alreadyErased(id string) bool {
	for _, entry := range e.erased {
		if entry.Object.ObjectID() == id {
			return true
		}
	}
	return false
}
