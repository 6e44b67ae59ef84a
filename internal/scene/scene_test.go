package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openpen/internal/annotation"
	"openpen/pkg/colorutil"
	"openpen/pkg/geometry"
)

func newStroke(t *testing.T) *annotation.Stroke {
	t.Helper()
	s, err := annotation.NewStroke(geometry.NewPoint2D(0, 0),
		annotation.Style{Color: colorutil.Red, Thickness: 2})
	require.NoError(t, err)
	return s
}

func TestSceneOrdering(t *testing.T) {
	sc := New()
	a, b, c := newStroke(t), newStroke(t), newStroke(t)

	sc.Append(a)
	sc.Append(b)
	sc.Append(c)

	objs := sc.Objects()
	require.Len(t, objs, 3)
	assert.Equal(t, a.ObjectID(), objs[0].ObjectID())
	assert.Equal(t, c.ObjectID(), objs[2].ObjectID())
	assert.Equal(t, 1, sc.IndexOf(b.ObjectID()))
}

func TestSceneRemoveAndInsertRestoresZOrder(t *testing.T) {
	sc := New()
	a, b, c := newStroke(t), newStroke(t), newStroke(t)
	sc.Append(a)
	sc.Append(b)
	sc.Append(c)

	removed, idx, ok := sc.RemoveByID(b.ObjectID())
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Equal(t, b.ObjectID(), removed.ObjectID())
	assert.Equal(t, 2, sc.Len())

	sc.Insert(idx, removed)
	objs := sc.Objects()
	assert.Equal(t, []string{a.ObjectID(), b.ObjectID(), c.ObjectID()},
		[]string{objs[0].ObjectID(), objs[1].ObjectID(), objs[2].ObjectID()})

	_, _, ok = sc.RemoveByID("no-such-id")
	assert.False(t, ok)
}

func TestSceneInsertBeyondEndAppends(t *testing.T) {
	sc := New()
	a, b := newStroke(t), newStroke(t)
	sc.Append(a)
	sc.Insert(10, b)
	assert.Equal(t, 1, sc.IndexOf(b.ObjectID()))
}

func TestPendingIsSeparateFromFinalized(t *testing.T) {
	sc := New()
	pending := newStroke(t)
	sc.SetPending(pending)

	assert.Equal(t, 0, sc.Len(), "pending object is not finalized")
	snap := sc.Snapshot()
	assert.Empty(t, snap.Objects)
	require.NotNil(t, snap.Pending)
	assert.Equal(t, pending.ObjectID(), snap.Pending.ObjectID())

	sc.ClearPending()
	assert.Nil(t, sc.Pending())
}

func TestSnapshotIsACopy(t *testing.T) {
	sc := New()
	sc.Append(newStroke(t))

	snap := sc.Snapshot()
	sc.Append(newStroke(t))

	assert.Len(t, snap.Objects, 1, "earlier snapshot is unaffected by later mutation")
	assert.Equal(t, 2, sc.Len())
}

func TestClear(t *testing.T) {
	sc := New()
	sc.Append(newStroke(t))
	sc.Append(newStroke(t))
	sc.Clear()
	assert.Equal(t, 0, sc.Len())
}
