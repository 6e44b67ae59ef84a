package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openpen/internal/annotation"
	"openpen/internal/scene"
	"openpen/pkg/colorutil"
	"openpen/pkg/geometry"
)

func newStroke(t *testing.T) *annotation.Stroke {
	t.Helper()
	s, err := annotation.NewStroke(geometry.NewPoint2D(0, 0),
		annotation.Style{Color: colorutil.Blue, Thickness: 3})
	require.NoError(t, err)
	s.AppendPoint(geometry.NewPoint2D(10, 10))
	return s
}

func ids(sc *scene.Scene) []string {
	objs := sc.Objects()
	out := make([]string, len(objs))
	for i, o := range objs {
		out[i] = o.ObjectID()
	}
	return out
}

func TestCommitThenFullUndoEmptiesScene(t *testing.T) {
	sc := scene.New()
	m := New(sc)

	const n = 5
	for i := 0; i < n; i++ {
		m.Commit(&Add{Object: newStroke(t)})
	}
	require.Equal(t, n, sc.Len())

	for i := 0; i < n; i++ {
		require.NoError(t, m.Undo())
	}
	assert.Equal(t, 0, sc.Len())
	assert.ErrorIs(t, m.Undo(), ErrNothingToUndo)
}

func TestUndoRedoRestoresExactScene(t *testing.T) {
	sc := scene.New()
	m := New(sc)
	for i := 0; i < 3; i++ {
		m.Commit(&Add{Object: newStroke(t)})
	}

	before := ids(sc)
	require.NoError(t, m.Undo())
	require.NoError(t, m.Redo())
	assert.Equal(t, before, ids(sc), "same identifiers in the same order")
}

func TestCommitAfterUndoClearsRedo(t *testing.T) {
	sc := scene.New()
	m := New(sc)

	m.Commit(&Add{Object: newStroke(t)})
	require.NoError(t, m.Undo())
	assert.Equal(t, 1, m.RedoDepth())

	m.Commit(&Add{Object: newStroke(t)})
	assert.Equal(t, 0, m.RedoDepth())
	assert.ErrorIs(t, m.Redo(), ErrNothingToRedo)
}

func TestRecordAfterUndoClearsRedo(t *testing.T) {
	sc := scene.New()
	m := New(sc)

	m.Commit(&Add{Object: newStroke(t)})
	require.NoError(t, m.Undo())

	// Record is the eraser path: the scene was already mutated in place.
	m.Record(&BulkErase{})
	assert.ErrorIs(t, m.Redo(), ErrNothingToRedo)
}

func TestRemoveRevertRestoresIndex(t *testing.T) {
	sc := scene.New()
	m := New(sc)
	a, b, c := newStroke(t), newStroke(t), newStroke(t)
	m.Commit(&Add{Object: a})
	m.Commit(&Add{Object: b})
	m.Commit(&Add{Object: c})

	m.Commit(&Remove{ID: b.ObjectID()})
	assert.Equal(t, []string{a.ObjectID(), c.ObjectID()}, ids(sc))

	require.NoError(t, m.Undo())
	assert.Equal(t, []string{a.ObjectID(), b.ObjectID(), c.ObjectID()}, ids(sc))
}

func TestBulkEraseUndoesAtomically(t *testing.T) {
	sc := scene.New()
	m := New(sc)

	objs := make([]*annotation.Stroke, 4)
	for i := range objs {
		objs[i] = newStroke(t)
		m.Commit(&Add{Object: objs[i]})
	}
	want := ids(sc)

	// Erase objects 1 and 3 the way the eraser gesture does: remove from
	// the scene as the drag progresses, recording indices at removal time.
	var entries []EraseEntry
	for _, i := range []int{1, 3} {
		obj, idx, ok := sc.RemoveByID(objs[i].ObjectID())
		require.True(t, ok)
		entries = append(entries, EraseEntry{Object: obj, Index: idx})
	}
	m.Record(&BulkErase{Entries: entries})
	require.Equal(t, 2, sc.Len())

	// One undo restores all erased objects at their original positions.
	require.NoError(t, m.Undo())
	assert.Equal(t, want, ids(sc))

	// Redo removes the same objects again.
	require.NoError(t, m.Redo())
	assert.Equal(t, []string{objs[0].ObjectID(), objs[2].ObjectID()}, ids(sc))
}

func TestClearIsNotUndoable(t *testing.T) {
	sc := scene.New()
	m := New(sc)
	m.Commit(&Add{Object: newStroke(t)})
	m.Commit(&Add{Object: newStroke(t)})
	require.NoError(t, m.Undo())

	m.Clear()
	assert.Equal(t, 0, sc.Len())
	assert.ErrorIs(t, m.Undo(), ErrNothingToUndo)
	assert.ErrorIs(t, m.Redo(), ErrNothingToRedo)
}
