package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openpen/pkg/colorutil"
	"openpen/pkg/geometry"
)

func testStyle() Style {
	return Style{Color: colorutil.Red, Thickness: 4}
}

func TestStyleValidate(t *testing.T) {
	assert.NoError(t, testStyle().Validate())

	err := Style{Color: colorutil.Red, Thickness: 0}.Validate()
	assert.ErrorIs(t, err, ErrInvalidGeometry)
	err = Style{Color: colorutil.Red, Thickness: -1}.Validate()
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestStrokeLifecycle(t *testing.T) {
	s, err := NewStroke(geometry.NewPoint2D(0, 0), testStyle())
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, KindStroke, s.ObjectKind())
	assert.NotEmpty(t, s.ObjectID())

	s.AppendPoint(geometry.NewPoint2D(10, 0))
	s.AppendPoint(geometry.NewPoint2D(10, 10))
	assert.Equal(t, 3, s.Len())

	s.Freeze()
	s.AppendPoint(geometry.NewPoint2D(99, 99))
	assert.Equal(t, 3, s.Len(), "appends after freeze are ignored")

	// Returned points are a copy, not an alias.
	pts := s.Points()
	pts[0] = geometry.NewPoint2D(-100, -100)
	assert.Equal(t, geometry.NewPoint2D(0, 0), s.Points()[0])
}

func TestStrokeRejectsInvalidStyle(t *testing.T) {
	_, err := NewStroke(geometry.NewPoint2D(0, 0), Style{Thickness: 0})
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestStrokeHitTestUsesSegments(t *testing.T) {
	s, err := NewStroke(geometry.NewPoint2D(0, 0), testStyle())
	require.NoError(t, err)
	s.AppendPoint(geometry.NewPoint2D(100, 0))

	// Midway between the two vertices but close to the segment.
	assert.True(t, s.HitTest(geometry.NewPoint2D(50, 3), 5))
	assert.False(t, s.HitTest(geometry.NewPoint2D(50, 30), 5))
}

func TestPolygonFinalize(t *testing.T) {
	p, err := NewPolygon(testStyle())
	require.NoError(t, err)

	p.AppendPoint(geometry.NewPoint2D(0, 0))
	p.AppendPoint(geometry.NewPoint2D(10, 0))
	assert.ErrorIs(t, p.Finalize(), ErrInvalidGeometry)
	assert.False(t, p.Closed())

	p.AppendPoint(geometry.NewPoint2D(10, 10))
	require.NoError(t, p.Finalize())
	assert.True(t, p.Closed())

	p.AppendPoint(geometry.NewPoint2D(99, 99))
	assert.Equal(t, 3, p.Len(), "appends after finalize are ignored")
}

func TestPolygonCollinearPointsAllowed(t *testing.T) {
	p, err := NewPolygon(testStyle())
	require.NoError(t, err)
	p.AppendPoint(geometry.NewPoint2D(0, 0))
	p.AppendPoint(geometry.NewPoint2D(5, 0))
	p.AppendPoint(geometry.NewPoint2D(10, 0))
	assert.NoError(t, p.Finalize())
}

func TestPolygonHitTestClosingEdge(t *testing.T) {
	p, err := NewPolygon(testStyle())
	require.NoError(t, err)
	p.AppendPoint(geometry.NewPoint2D(0, 0))
	p.AppendPoint(geometry.NewPoint2D(100, 0))
	p.AppendPoint(geometry.NewPoint2D(100, 100))

	// Near the closing edge from (100,100) back to (0,0).
	probe := geometry.NewPoint2D(52, 48)
	assert.False(t, p.HitTest(probe, 5), "open polygon has no closing edge")

	require.NoError(t, p.Finalize())
	assert.True(t, p.HitTest(probe, 5))
}

func TestTextBox(t *testing.T) {
	tb, err := NewTextBox(geometry.NewPoint2D(20, 30), "hello", testStyle())
	require.NoError(t, err)
	assert.Equal(t, KindText, tb.ObjectKind())
	assert.Equal(t, "hello", tb.Text())

	// Near the anchor.
	assert.True(t, tb.HitTest(geometry.NewPoint2D(18, 28), 5))
	// Inside the backdrop but away from the anchor.
	assert.True(t, tb.HitTest(geometry.NewPoint2D(60, 45), 5))
	assert.False(t, tb.HitTest(geometry.NewPoint2D(200, 200), 5))
}

func TestObjectIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		s, err := NewStroke(geometry.NewPoint2D(0, 0), testStyle())
		require.NoError(t, err)
		assert.False(t, seen[s.ObjectID()])
		seen[s.ObjectID()] = true
	}
}
