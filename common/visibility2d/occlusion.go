package visibility2d

import (
	"github.com/bytearena/conevision/common/utils/vector"
)

// shortenFraction pulls tested endpoints toward the segment midpoint
// before side tests, so that two segments sharing an endpoint are not
// mistaken for crossing ones
const shortenFraction = 0.01

func leftOf(segment vector.Segment2, point vector.Vector2) bool {
	a, b := segment.Get()
	cross := b.Sub(a).Cross(point.Sub(a))
	return cross < 0
}

// compareSegments orders two segments as seen from the viewpoint, along
// rays crossing both: -1 when segmentA is nearer, 1 when segmentB is.
// Precondition: the segments do not cross except possibly at a shared
// endpoint. When their endpoints interleave (a true crossing), a
// GeometryError is returned instead of an arbitrary order.
func compareSegments(segmentA, segmentB *Segment, viewpoint vector.Vector2) (int, error) {

	if segmentA == segmentB {
		return 0, nil
	}

	segA := segmentA.AsSegment2()
	segB := segmentB.AsSegment2()

	shortA1, shortA2 := segA.ShortenedBy(shortenFraction).Get()
	shortB1, shortB2 := segB.ShortenedBy(shortenFraction).Get()

	a1 := leftOf(segA, shortB1)
	a2 := leftOf(segA, shortB2)
	a3 := leftOf(segA, viewpoint)
	b1 := leftOf(segB, shortA1)
	b2 := leftOf(segB, shortA2)
	b3 := leftOf(segB, viewpoint)

	// segmentB's line separates segmentA from the viewpoint
	if b1 == b2 && b2 != b3 {
		return 1, nil
	}

	// segmentB sits on the viewpoint's side of segmentA's line
	if a1 == a2 && a2 == a3 {
		return 1, nil
	}

	// segmentA's line separates segmentB from the viewpoint
	if a1 == a2 && a2 != a3 {
		return -1, nil
	}

	// segmentA sits on the viewpoint's side of segmentB's line
	if b1 == b2 && b2 == b3 {
		return -1, nil
	}

	// each segment straddles the other's line: a genuine crossing,
	// which violates the region precondition
	return 0, NewGeometryError("segments cross: %s and %s", segmentA.String(), segmentB.String())
}
