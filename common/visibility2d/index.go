package visibility2d

import (
	"math"

	"github.com/dhconnelly/rtreego"

	"github.com/bytearena/conevision/common/utils/vector"
)

// rectPadding keeps rtree rectangles strictly positive in both
// dimensions; axis-aligned segments would otherwise be flat
const rectPadding = 0.001

type segmentSpatial struct {
	segment *Segment
	rect    *rtreego.Rect
}

func (s segmentSpatial) Bounds() *rtreego.Rect {
	return s.rect
}

// segmentIndex is a per-computation spatial index over the region
// segments, queried by the boundary-ray walks
type segmentIndex struct {
	tree  *rtreego.Rtree
	bbMin vector.Vector2
	bbMax vector.Vector2
}

func newSegmentIndex(segments []*Segment) (*segmentIndex, error) {

	bbMinX, bbMinY := math.Inf(1), math.Inf(1)
	bbMaxX, bbMaxY := math.Inf(-1), math.Inf(-1)

	spatials := make([]rtreego.Spatial, 0, len(segments))
	for _, segment := range segments {
		rect, err := segmentRect(segment)
		if err != nil {
			return nil, NewInputError("could not index segment %s: %s", segment.String(), err.Error())
		}

		spatials = append(spatials, segmentSpatial{segment: segment, rect: rect})

		for _, endpoint := range segment.GetEndPoints() {
			x, y := endpoint.point.Get()
			bbMinX = math.Min(bbMinX, x)
			bbMinY = math.Min(bbMinY, y)
			bbMaxX = math.Max(bbMaxX, x)
			bbMaxY = math.Max(bbMaxY, y)
		}
	}

	// TODO(jerome): better constants here ? what heuristic to use ?
	tree := rtreego.NewTree(2, 25, 50, spatials...)

	return &segmentIndex{
		tree:  tree,
		bbMin: vector.MakeVector2(bbMinX, bbMinY),
		bbMax: vector.MakeVector2(bbMaxX, bbMaxY),
	}, nil
}

func segmentRect(segment *Segment) (*rtreego.Rect, error) {
	ax, ay := segment.p1.point.Get()
	bx, by := segment.p2.point.Get()

	minx := math.Min(ax, bx) - rectPadding
	miny := math.Min(ay, by) - rectPadding

	lengths := []float64{
		math.Max(ax, bx) - minx + rectPadding,
		math.Max(ay, by) - miny + rectPadding,
	}

	return rtreego.NewRect(rtreego.Point{minx, miny}, lengths)
}

// alongRay returns the segments whose bounding rectangle intersects the
// ray, clipped to the indexed area. Exact forward intersection is up to
// the caller.
func (index *segmentIndex) alongRay(ray vector.Ray2) []*Segment {

	origin := ray.GetOrigin()

	// farthest indexed corner bounds the useful length of the ray
	maxDist := 0.0
	corners := [][2]float64{
		{index.bbMin.GetX(), index.bbMin.GetY()},
		{index.bbMin.GetX(), index.bbMax.GetY()},
		{index.bbMax.GetX(), index.bbMin.GetY()},
		{index.bbMax.GetX(), index.bbMax.GetY()},
	}
	for _, corner := range corners {
		dist := origin.DistanceTo(vector.MakeVector2(corner[0], corner[1]))
		maxDist = math.Max(maxDist, dist)
	}

	end := ray.PointAt(maxDist)

	ox, oy := origin.Get()
	ex, ey := end.Get()

	minx := math.Min(ox, ex) - rectPadding
	miny := math.Min(oy, ey) - rectPadding

	lengths := []float64{
		math.Max(ox, ex) - minx + rectPadding,
		math.Max(oy, ey) - miny + rectPadding,
	}

	rect, err := rtreego.NewRect(rtreego.Point{minx, miny}, lengths)
	if err != nil {
		return nil
	}

	results := index.tree.SearchIntersect(rect)

	segments := make([]*Segment, 0, len(results))
	for _, spatial := range results {
		segments = append(segments, spatial.(segmentSpatial).segment)
	}

	return segments
}
