package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint2DDistance(t *testing.T) {
	a := NewPoint2D(0, 0)
	b := NewPoint2D(3, 4)
	assert.Equal(t, 5.0, a.Distance(b))
	assert.Equal(t, 25.0, a.DistanceSquared(b))
}

func TestSegmentDistance(t *testing.T) {
	tests := []struct {
		name    string
		p, a, b Point2D
		want    float64
	}{
		{
			name: "perpendicular to midpoint",
			p:    NewPoint2D(5, 5), a: NewPoint2D(0, 0), b: NewPoint2D(10, 0),
			want: 5,
		},
		{
			name: "beyond segment start",
			p:    NewPoint2D(-3, 4), a: NewPoint2D(0, 0), b: NewPoint2D(10, 0),
			want: 5,
		},
		{
			name: "beyond segment end",
			p:    NewPoint2D(13, 4), a: NewPoint2D(0, 0), b: NewPoint2D(10, 0),
			want: 5,
		},
		{
			name: "on the segment",
			p:    NewPoint2D(4, 0), a: NewPoint2D(0, 0), b: NewPoint2D(10, 0),
			want: 0,
		},
		{
			name: "degenerate segment",
			p:    NewPoint2D(3, 4), a: NewPoint2D(0, 0), b: NewPoint2D(0, 0),
			want: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, SegmentDistance(tt.p, tt.a, tt.b), 1e-9)
		})
	}
}

func TestPolylineDistance(t *testing.T) {
	line := []Point2D{{0, 0}, {10, 0}, {10, 10}}

	// Nearest segment is the vertical one.
	assert.InDelta(t, 2.0, PolylineDistance(NewPoint2D(12, 5), line, false), 1e-9)

	// Open polyline: the closing segment back to (0,0) does not exist,
	// so the nearest feature is the starting vertex.
	open := PolylineDistance(NewPoint2D(-1, 5), line, false)
	closed := PolylineDistance(NewPoint2D(-1, 5), line, true)
	assert.Greater(t, open, closed)
	assert.InDelta(t, math.Sqrt(26), open, 1e-9)
	assert.InDelta(t, 1.0, closed, 1e-9)
}

func TestPolylineDistanceSinglePoint(t *testing.T) {
	assert.InDelta(t, 5.0, PolylineDistance(NewPoint2D(3, 4), []Point2D{{0, 0}}, false), 1e-9)
}

func TestBoundsOf(t *testing.T) {
	r := BoundsOf([]Point2D{{2, 3}, {-1, 7}, {4, 0}})
	assert.Equal(t, NewRect(-1, 0, 5, 7), r)
	assert.Equal(t, Rect{}, BoundsOf(nil))
}

func TestRectExpandContains(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	assert.False(t, r.Contains(NewPoint2D(-1, 5)))
	assert.True(t, r.Expand(2).Contains(NewPoint2D(-1, 5)))
	assert.Equal(t, NewPoint2D(5, 5), r.Center())
}

func TestResample(t *testing.T) {
	// A 10-unit segment resampled at spacing 3 gains interior points.
	pts := Resample([]Point2D{{0, 0}, {10, 0}}, 3)
	assert.True(t, len(pts) >= 4)
	assert.Equal(t, Point2D{0, 0}, pts[0])
	assert.Equal(t, Point2D{10, 0}, pts[len(pts)-1])
	for i := 0; i < len(pts)-1; i++ {
		assert.LessOrEqual(t, pts[i].Distance(pts[i+1]), 3.0+1e-9)
	}

	// Short inputs are returned as copies.
	single := []Point2D{{1, 1}}
	out := Resample(single, 3)
	assert.Equal(t, single, out)
}
