package history

import (
	"errors"
	"sync"

	"openpen/internal/scene"
)

var (
	// ErrNothingToUndo reports an Undo with an empty done stack.
	ErrNothingToUndo = errors.New("nothing to undo")
	// ErrNothingToRedo reports a Redo with an empty redo buffer.
	ErrNothingToRedo = errors.New("nothing to redo")
)

// Manager keeps the linear, branch-discarding undo/redo log. Any new
// command recorded after one or more undos discards the redo buffer.
type Manager struct {
	mu     sync.Mutex
	scene  *scene.Scene
	done   []Command
	undone []Command
}

// New creates a history manager operating on the given scene.
func New(sc *scene.Scene) *Manager {
	return &Manager{scene: sc}
}

// Commit applies the command to the scene, appends it to the done log,
// and clears the redo buffer.
func (m *Manager) Commit(cmd Command) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cmd.Apply(m.scene)
	m.done = append(m.done, cmd)
	m.undone = nil
}

// Record appends a command whose effect has already been applied to the
// scene incrementally (the eraser gesture removes objects as it drags).
// Like Commit it clears the redo buffer.
func (m *Manager) Record(cmd Command) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.done = append(m.done, cmd)
	m.undone = nil
}

// Undo reverts the most recent command and moves it to the redo buffer.
func (m *Manager) Undo() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.done) == 0 {
		return ErrNothingToUndo
	}
	cmd := m.done[len(m.done)-1]
	m.done = m.done[:len(m.done)-1]
	cmd.Revert(m.scene)
	m.undone = append(m.undone, cmd)
	return nil
}

// Redo re-applies the most recently undone command.
func (m *Manager) Redo() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.undone) == 0 {
		return ErrNothingToRedo
	}
	cmd := m.undone[len(m.undone)-1]
	m.undone = m.undone[:len(m.undone)-1]
	cmd.Apply(m.scene)
	m.done = append(m.done, cmd)
	return nil
}

// Clear removes every finalized object and resets both stacks. This is
// a destructive reset: Clear itself cannot be undone.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scene.Clear()
	m.done = nil
	m.undone = nil
}

// Depth returns the number of undoable commands.
func (m *Manager) Depth() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.done)
}

// RedoDepth returns the number of redoable commands.
func (m *Manager) RedoDepth() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.undone)
}
