// Package scene provides the live ordered store of finalized annotation
// objects plus the single in-progress object of the active gesture.
package scene

import (
	"sync"

	"openpen/internal/annotation"
)

// Scene holds finalized objects in z-order (insertion order, drawn
// low-to-high) and at most one pending object. Finalized objects change
// only through history commands; the pending slot is owned by the tool
// state machine for the duration of one gesture.
//
// The engine mutates the scene on the input thread while the Fyne
// renderer reads it from the draw path, so access is mutex-guarded and
// readers get snapshot copies rather than aliases.
type Scene struct {
	mu      sync.RWMutex
	objects []annotation.Object
	pending annotation.Object
}

// Snapshot is a consistent copy of the scene handed to the render loop.
type Snapshot struct {
	Objects []annotation.Object // finalized, in z-order
	Pending annotation.Object   // nil when no gesture is in progress
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{objects: make([]annotation.Object, 0)}
}

// Append adds a finalized object at the top of the z-order.
func (s *Scene) Append(obj annotation.Object) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects = append(s.objects, obj)
}

// Insert places a finalized object at the given z-order index, shifting
// later objects up. An index at or beyond the end appends.
func (s *Scene) Insert(index int, obj annotation.Object) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 {
		index = 0
	}
	if index >= len(s.objects) {
		s.objects = append(s.objects, obj)
		return
	}
	s.objects = append(s.objects[:index+1], s.objects[index:]...)
	s.objects[index] = obj
}

// RemoveByID removes the object with the given ID, returning the object
// and the z-order index it occupied. Returns false if no object matches.
func (s *Scene) RemoveByID(id string) (annotation.Object, int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, obj := range s.objects {
		if obj.ObjectID() == id {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			return obj, i, true
		}
	}
	return nil, 0, false
}

// ObjectByID returns the finalized object with the given ID.
func (s *Scene) ObjectByID(id string) (annotation.Object, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, obj := range s.objects {
		if obj.ObjectID() == id {
			return obj, true
		}
	}
	return nil, false
}

// IndexOf returns the z-order index of the object with the given ID,
// or -1 if it is not in the scene.
func (s *Scene) IndexOf(id string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i, obj := range s.objects {
		if obj.ObjectID() == id {
			return i
		}
	}
	return -1
}

// Len returns the number of finalized objects.
func (s *Scene) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}

// Objects returns a copy of the finalized object sequence in z-order.
func (s *Scene) Objects() []annotation.Object {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]annotation.Object, len(s.objects))
	copy(out, s.objects)
	return out
}

// Clear removes every finalized object.
func (s *Scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects = s.objects[:0]
}

// SetPending installs the in-progress object for the active gesture.
func (s *Scene) SetPending(obj annotation.Object) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = obj
}

// Pending returns the in-progress object, or nil.
func (s *Scene) Pending() annotation.Object {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pending
}

// ClearPending discards the in-progress object.
func (s *Scene) ClearPending() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = nil
}

// Snapshot returns a consistent copy of the finalized sequence plus the
// pending object for rendering. The returned slice is private to the
// caller; the objects themselves are immutable once finalized.
func (s *Scene) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	objs := make([]annotation.Object, len(s.objects))
	copy(objs, s.objects)
	return Snapshot{Objects: objs, Pending: s.pending}
}
