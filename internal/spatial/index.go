// Package spatial provides a k-d tree point index over finalized
// annotation objects, used to prune eraser hit-testing.
package spatial

import (
	"gonum.org/v1/gonum/spatial/kdtree"

	"openpen/internal/annotation"
	"openpen/pkg/geometry"
)

// sampleSpacing is the maximum gap between indexed points along a
// polyline. Long segments are resampled at this spacing so a radius
// query cannot miss an object whose nearest segment point lies between
// vertices; queries are inflated by half of it to cover the remainder.
const sampleSpacing = 12.0

// sample is one indexed point tagged with its owning object ID.
type sample struct {
	x, y float64
	id   string
}

func (s sample) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(sample)
	if d == 0 {
		return s.x - q.x
	}
	return s.y - q.y
}

func (s sample) Dims() int { return 2 }

// Distance returns the squared Euclidean distance, following the
// kdtree package convention.
func (s sample) Distance(c kdtree.Comparable) float64 {
	q := c.(sample)
	dx := s.x - q.x
	dy := s.y - q.y
	return dx*dx + dy*dy
}

// samples implements kdtree.Interface for tree construction.
type samples []sample

func (p samples) Index(i int) kdtree.Comparable         { return p[i] }
func (p samples) Len() int                              { return len(p) }
func (p samples) Pivot(d kdtree.Dim) int                { return plane{samples: p, Dim: d}.Pivot() }
func (p samples) Slice(start, end int) kdtree.Interface { return p[start:end] }

// plane is a sorting helper for median-of-medians pivoting.
type plane struct {
	kdtree.Dim
	samples
}

func (p plane) Less(i, j int) bool {
	if p.Dim == 0 {
		return p.samples[i].x < p.samples[j].x
	}
	return p.samples[i].y < p.samples[j].y
}

func (p plane) Pivot() int { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }

func (p plane) Slice(start, end int) kdtree.SortSlicer {
	p.samples = p.samples[start:end]
	return p
}

func (p plane) Swap(i, j int) {
	p.samples[i], p.samples[j] = p.samples[j], p.samples[i]
}

// Index answers "which objects might be within radius of this point"
// without walking every segment of every object. Results are candidates
// only; callers confirm with the object's exact HitTest.
//
// Text boxes are hit on backdrop area rather than outline distance, so
// no fixed query inflation makes point samples safe for them: a hit in
// the expanded-bounds corner region can lie sqrt(2)*radius from the
// nearest outline point. They skip the tree and are always candidates.
type Index struct {
	tree    *kdtree.Tree
	textIDs []string
}

// NewIndex builds an index over the given finalized objects.
func NewIndex(objects []annotation.Object) *Index {
	ix := &Index{}
	var pts samples
	for _, obj := range objects {
		if _, ok := obj.(*annotation.TextBox); ok {
			ix.textIDs = append(ix.textIDs, obj.ObjectID())
			continue
		}
		id := obj.ObjectID()
		for _, p := range samplePoints(obj) {
			pts = append(pts, sample{x: p.X, y: p.Y, id: id})
		}
	}
	if len(pts) > 0 {
		ix.tree = kdtree.New(pts, false)
	}
	return ix
}

// samplePoints returns the points to index for one object.
func samplePoints(obj annotation.Object) []geometry.Point2D {
	switch o := obj.(type) {
	case *annotation.Stroke:
		return geometry.Resample(o.Points(), sampleSpacing)
	case *annotation.Polygon:
		pts := o.Points()
		if o.Closed() && len(pts) > 1 {
			pts = append(pts, pts[0])
		}
		return geometry.Resample(pts, sampleSpacing)
	default:
		return nil
	}
}

// CandidatesWithin returns the IDs of objects with an indexed point
// within radius of p, plus every text box. The query radius is inflated
// by half the sample spacing so objects sampled just outside the radius
// still surface.
func (ix *Index) CandidatesWithin(p geometry.Point2D, radius float64) []string {
	var out []string
	if ix.tree != nil {
		r := radius + sampleSpacing/2
		keeper := kdtree.NewDistKeeper(r * r)
		ix.tree.NearestSet(keeper, sample{x: p.X, y: p.Y})

		seen := make(map[string]bool)
		for _, c := range keeper.Heap {
			hit, ok := c.Comparable.(sample)
			if !ok || seen[hit.id] {
				continue
			}
			seen[hit.id] = true
			out = append(out, hit.id)
		}
	}
	return append(out, ix.textIDs...)
}
