// Package history provides the reversible command log over the scene.
package history

import (
	"openpen/internal/annotation"
	"openpen/internal/scene"
)

// Command is a reversible scene mutation. Commands are the only way the
// finalized object sequence changes; each one knows how to undo itself.
type Command interface {
	// Name returns a short identifier for logging and status hints.
	Name() string

	// Apply performs the mutation.
	Apply(s *scene.Scene)

	// Revert undoes a previously applied mutation exactly.
	Revert(s *scene.Scene)
}

// Add appends one finalized object to the scene.
type Add struct {
	Object annotation.Object
}

func (c *Add) Name() string { return "add " + string(c.Object.ObjectKind()) }

func (c *Add) Apply(s *scene.Scene) {
	s.Append(c.Object)
}

func (c *Add) Revert(s *scene.Scene) {
	s.RemoveByID(c.Object.ObjectID())
}

// Remove deletes one object by ID, remembering the object and its
// z-order index so Revert can restore it exactly.
type Remove struct {
	ID string

	object annotation.Object
	index  int
}

func (c *Remove) Name() string { return "remove" }

func (c *Remove) Apply(s *scene.Scene) {
	if obj, idx, ok := s.RemoveByID(c.ID); ok {
		c.object = obj
		c.index = idx
	}
}

func (c *Remove) Revert(s *scene.Scene) {
	if c.object != nil {
		s.Insert(c.index, c.object)
	}
}

// EraseEntry records one object removed by an eraser gesture together
// with the z-order index it occupied at the moment of removal.
type EraseEntry struct {
	Object annotation.Object
	Index  int
}

// BulkErase coalesces every object touched by one contiguous eraser
// drag into a single undoable step. Entries are in removal order;
// Revert re-inserts them in reverse so each recorded index is valid
// again when it is used, restoring the original z-order exactly.
type BulkErase struct {
	Entries []EraseEntry
}

func (c *BulkErase) Name() string { return "erase" }

func (c *BulkErase) Apply(s *scene.Scene) {
	for _, e := range c.Entries {
		s.RemoveByID(e.Object.ObjectID())
	}
}

func (c *BulkErase) Revert(s *scene.Scene) {
	for i := len(c.Entries) - 1; i >= 0; i-- {
		s.Insert(c.Entries[i].Index, c.Entries[i].Object)
	}
}
