package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openpen/internal/annotation"
	"openpen/pkg/colorutil"
	"openpen/pkg/geometry"
)

func buildScene(t *testing.T) []annotation.Object {
	t.Helper()

	stroke, err := annotation.NewStroke(geometry.NewPoint2D(0, 0),
		annotation.Style{Color: colorutil.Red, Thickness: 4})
	require.NoError(t, err)
	stroke.AppendPoint(geometry.NewPoint2D(25, 10))
	stroke.Freeze()

	poly, err := annotation.NewPolygon(annotation.Style{Color: colorutil.Blue, Thickness: 2})
	require.NoError(t, err)
	poly.AppendPoint(geometry.NewPoint2D(0, 0))
	poly.AppendPoint(geometry.NewPoint2D(50, 0))
	poly.AppendPoint(geometry.NewPoint2D(25, 40))
	require.NoError(t, poly.Finalize())

	text, err := annotation.NewTextBox(geometry.NewPoint2D(100, 100), "demo",
		annotation.Style{Color: colorutil.Yellow, Thickness: 4})
	require.NoError(t, err)

	return []annotation.Object{stroke, poly, text}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	objects := buildScene(t)
	path := filepath.Join(t.TempDir(), "scene.openpen.json")

	require.NoError(t, Save(path, objects))
	loaded, err := Load(path)
	require.NoError(t, err)
	require.Len(t, loaded, len(objects))

	for i, want := range objects {
		got := loaded[i]
		assert.Equal(t, want.ObjectID(), got.ObjectID(), "identifiers survive")
		assert.Equal(t, want.ObjectKind(), got.ObjectKind(), "z-order preserved")
		assert.Equal(t, want.ObjectStyle(), got.ObjectStyle())
	}

	stroke := loaded[0].(*annotation.Stroke)
	assert.Equal(t, objects[0].(*annotation.Stroke).Points(), stroke.Points())

	poly := loaded[1].(*annotation.Polygon)
	assert.True(t, poly.Closed(), "restored polygons are finalized")

	text := loaded[2].(*annotation.TextBox)
	assert.Equal(t, "demo", text.Text())
	assert.Equal(t, geometry.NewPoint2D(100, 100), text.Anchor())
}

func TestLoadRejectsUnknownType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	data := `{"version":1,"objects":[{"type":"sticker","id":"x","color":"#ff0000","thickness":2}]}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "unknown object type")
}

func TestLoadRejectsNewerVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "future.json")
	data := `{"version":99,"objects":[]}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "newer than supported")
}

func TestLoadRejectsInvalidGeometry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thin.json")
	data := `{"version":1,"objects":[{"type":"polygon","id":"p","color":"#ff0000","thickness":2,` +
		`"points":[{"x":0,"y":0},{"x":1,"y":1}]}]}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, annotation.ErrInvalidGeometry)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
