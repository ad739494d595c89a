package visibility2d

import (
	"math"
	"sort"

	"github.com/bytearena/conevision/common/utils/number"
	"github.com/bytearena/conevision/common/utils/vector"
)

// AngleEpsilon absorbs rounding noise on event angles, in degrees
const AngleEpsilon = 0.000001

// angleFromRay measures the counter-clockwise angle, in degrees, from
// the ray direction to (point - ray origin), normalized into [0, 360).
// Angles within AngleEpsilon below zero snap to exactly 0, so that
// vertices sitting on the cone's starting edge are swept first instead
// of wrapping to the far end of the queue.
func angleFromRay(ray vector.Ray2, point vector.Vector2) float64 {
	d := point.Sub(ray.GetOrigin())
	dir := ray.GetDirection()

	deg := number.RadianToDegree(math.Atan2(dir.Cross(d), dir.Dot(d)))

	if deg < 0 {
		if deg > -AngleEpsilon {
			return 0
		}
		deg += 360
	}

	return deg
}

// setSegmentBeginning assigns the begin/end roles of a segment's
// endpoints from the sweep direction along the segment itself: "begin"
// is always the endpoint first encountered by a counter-clockwise sweep
// originating at the viewpoint, regardless of how the segment's vertices
// were authored.
func setSegmentBeginning(viewpoint vector.Vector2, segment *Segment) {
	d1 := segment.p1.point.Sub(viewpoint)
	d2 := segment.p2.point.Sub(viewpoint)

	sweep := math.Atan2(d1.Cross(d2), d1.Dot(d2))

	segment.p1.beginsSegment = sweep > 0
	segment.p2.beginsSegment = !segment.p1.beginsSegment
}

// buildEndPoints derives the sorted event queue from the region
// segments: two events per segment, angles measured from the right
// boundary ray, clipped to the cone aperture, ordered by angle ascending
// with begin events before end events on angle ties.
func buildEndPoints(segments []*Segment, viewpoint Viewpoint) ([]*EndPoint, error) {

	rightRay := viewpoint.RightBoundaryRay()
	fov := viewpoint.FieldOfView()
	position := viewpoint.GetPosition()

	endpoints := make([]*EndPoint, 0, 2*len(segments))

	for _, segment := range segments {
		if segment.p1.point.Equals(position) || segment.p2.point.Equals(position) {
			return nil, NewInputError("viewpoint coincides with boundary vertex %s", position.String())
		}

		segment.p1.angle = angleFromRay(rightRay, segment.p1.point)
		segment.p2.angle = angleFromRay(rightRay, segment.p2.point)

		setSegmentBeginning(position, segment)

		for _, endpoint := range segment.GetEndPoints() {
			if endpoint.angle <= fov+AngleEpsilon {
				endpoints = append(endpoints, endpoint)
			}
		}
	}

	sort.Stable(ByEndPoint(endpoints))

	return endpoints, nil
}
