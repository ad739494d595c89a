package visibility2d

import (
	"github.com/bytearena/conevision/common/utils/vector"
)

type Segment struct {
	p1 *EndPoint
	p2 *EndPoint
}

func newSegment(a vector.Vector2, b vector.Vector2) *Segment {
	p1 := &EndPoint{point: a}
	p2 := &EndPoint{point: b}

	segment := &Segment{
		p1: p1,
		p2: p2,
	}

	p1.segment = segment
	p2.segment = segment

	return segment
}

func (s *Segment) GetEndPoints() []*EndPoint {
	return []*EndPoint{s.p1, s.p2}
}

func (s *Segment) GetPointA() vector.Vector2 {
	return s.p1.point
}

func (s *Segment) GetPointB() vector.Vector2 {
	return s.p2.point
}

func (s *Segment) AsSegment2() vector.Segment2 {
	return vector.MakeSegment2(s.p1.point, s.p2.point)
}

// endPointAt returns the endpoint lying at the given point, nil if the
// point is not one of the segment's endpoints
func (s *Segment) endPointAt(point vector.Vector2) *EndPoint {
	if s.p1.point.Equals(point) {
		return s.p1
	}

	if s.p2.point.Equals(point) {
		return s.p2
	}

	return nil
}

func (s *Segment) otherEndPoint(endpoint *EndPoint) *EndPoint {
	if endpoint == s.p1 {
		return s.p2
	}

	return s.p1
}

func (s *Segment) String() string {
	return "<Segment(" + s.p1.point.String() + " => " + s.p2.point.String() + ")>"
}

// EndPoint is a sweep event: one vertex of a segment, carrying its angle
// from the right boundary ray (degrees, counter-clockwise, in [0, 360))
// and its begin/end role in the sweep
type EndPoint struct {
	point         vector.Vector2
	beginsSegment bool
	angle         float64
	segment       *Segment
}

func (ep *EndPoint) GetPoint() vector.Vector2 {
	return ep.point
}

func (ep *EndPoint) BeginsSegment() bool {
	return ep.beginsSegment
}

func (ep *EndPoint) GetAngle() float64 {
	return ep.angle
}

func (ep *EndPoint) GetSegment() *Segment {
	return ep.segment
}

func (ep *EndPoint) Equals(other *EndPoint) bool {
	return ep.point.Equals(other.point) &&
		ep.beginsSegment == other.beginsSegment &&
		ep.angle == other.angle &&
		ep.segment == other.segment
}

func endPointCompare(pointA, pointB *EndPoint) int {

	if pointA.angle > pointB.angle {
		return 1
	}

	if pointA.angle < pointB.angle {
		return -1
	}

	if !pointA.beginsSegment && pointB.beginsSegment {
		return 1
	}

	if pointA.beginsSegment && !pointB.beginsSegment {
		return -1
	}

	return 0
}

type ByEndPoint []*EndPoint

func (coll ByEndPoint) Len() int      { return len(coll) }
func (coll ByEndPoint) Swap(i, j int) { coll[i], coll[j] = coll[j], coll[i] }
func (coll ByEndPoint) Less(i, j int) bool {
	return endPointCompare(coll[i], coll[j]) < 0
}
