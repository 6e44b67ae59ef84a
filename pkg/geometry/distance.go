package geometry

// SegmentDistance returns the shortest distance from p to the line segment ab.
func SegmentDistance(p, a, b Point2D) float64 {
	ab := b.Sub(a)
	lenSq := ab.X*ab.X + ab.Y*ab.Y
	if lenSq == 0 {
		// Degenerate segment: a single point.
		return p.Distance(a)
	}

	// Project p onto the segment, clamped to [0, 1].
	t := ((p.X-a.X)*ab.X + (p.Y-a.Y)*ab.Y) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	closest := Point2D{X: a.X + t*ab.X, Y: a.Y + t*ab.Y}
	return p.Distance(closest)
}

// PolylineDistance returns the shortest distance from p to a polyline.
// When closed is true the segment from the last point back to the first
// is included. A single-point polyline reduces to point distance.
func PolylineDistance(p Point2D, points []Point2D, closed bool) float64 {
	switch len(points) {
	case 0:
		return 0
	case 1:
		return p.Distance(points[0])
	}

	min := SegmentDistance(p, points[0], points[1])
	for i := 1; i < len(points)-1; i++ {
		if d := SegmentDistance(p, points[i], points[i+1]); d < min {
			min = d
		}
	}
	if closed {
		if d := SegmentDistance(p, points[len(points)-1], points[0]); d < min {
			min = d
		}
	}
	return min
}

// Resample walks a polyline and returns points spaced at most spacing apart
// along its segments, always including the original vertices. It is used to
// densify sparse polylines before spatial indexing so that long segments
// remain discoverable by radius queries against indexed points.
func Resample(points []Point2D, spacing float64) []Point2D {
	if spacing <= 0 || len(points) < 2 {
		out := make([]Point2D, len(points))
		copy(out, points)
		return out
	}

	out := make([]Point2D, 0, len(points))
	for i := 0; i < len(points)-1; i++ {
		a, b := points[i], points[i+1]
		out = append(out, a)

		length := a.Distance(b)
		steps := int(length / spacing)
		for s := 1; s <= steps; s++ {
			t := float64(s) * spacing / length
			if t >= 1 {
				break
			}
			out = append(out, Point2D{
				X: a.X + t*(b.X-a.X),
				Y: a.Y + t*(b.Y-a.Y),
			})
		}
	}
	return append(out, points[len(points)-1])
}
