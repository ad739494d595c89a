package trigo

import (
	"math"

	"github.com/bytearena/conevision/common/utils/number"
	"github.com/bytearena/conevision/common/utils/vector"
)

// RaySegmentIntersection computes the intersection between a ray and the
// line segment [a, b]. The ray direction is expected to be a unit vector,
// so that the returned distance is the euclidean distance from the ray
// origin to the intersection point. Intersections behind the ray origin
// (negative dot product with the ray direction) are discarded.
func RaySegmentIntersection(ray vector.Ray2, a vector.Vector2, b vector.Vector2) (point vector.Vector2, distance float64, intersects bool) {

	origin := ray.GetOrigin()
	dir := ray.GetDirection()

	ab := b.Sub(a)
	denom := dir.Cross(ab)

	if number.IsZero(denom) {
		// parallel or collinear; no single crossing point
		return vector.MakeNullVector2(), 0, false
	}

	ao := a.Sub(origin)
	t := ao.Cross(ab) / denom
	u := ao.Cross(dir) / denom

	if t < -number.Epsilon {
		return vector.MakeNullVector2(), 0, false
	}

	if u < -number.Epsilon || u > 1+number.Epsilon {
		return vector.MakeNullVector2(), 0, false
	}

	return ray.PointAt(t), t, true
}

// SegmentsIntersection computes the intersection of the bounded segments
// [p, p2] and [q, q2]
func SegmentsIntersection(p vector.Vector2, p2 vector.Vector2, q vector.Vector2, q2 vector.Vector2) (intersection vector.Vector2, intersects bool, colinear bool) {

	r := p2.Sub(p)
	s := q2.Sub(q)
	rxs := r.Cross(s)
	qpxr := q.Sub(p).Cross(r)

	// If r x s = 0 and (q - p) x r = 0, then the two lines are collinear.
	if number.IsZero(rxs) && number.IsZero(qpxr) {
		qSubPTimesR := q.Sub(p).Dot(r)
		pSubQTimesS := p.Sub(q).Dot(s)
		rSquared := r.Dot(r)
		sSquared := s.Dot(s)

		if (qSubPTimesR >= 0 && qSubPTimesR <= rSquared) || (pSubQTimesS >= 0 && pSubQTimesS <= sSquared) {
			// collinear and overlapping
			return vector.MakeNullVector2(), true, true
		}

		// collinear but disjoint
		return vector.MakeNullVector2(), false, true
	}

	// If r x s = 0 and (q - p) x r != 0, the two lines are parallel and
	// non-intersecting.
	if number.IsZero(rxs) && !number.IsZero(qpxr) {
		return vector.MakeNullVector2(), false, false
	}

	t := q.Sub(p).Cross(s) / rxs
	u := q.Sub(p).Cross(r) / rxs

	if 0 <= t && t <= 1 && 0 <= u && u <= 1 {
		return p.Add(r.MultScalar(t)), true, false
	}

	return vector.MakeNullVector2(), false, false
}

// SegmentsCross reports whether the bounded segments [p, p2] and [q, q2]
// genuinely cross, meeting anywhere but at a shared endpoint
func SegmentsCross(p vector.Vector2, p2 vector.Vector2, q vector.Vector2, q2 vector.Vector2) bool {
	point, intersects, colinear := SegmentsIntersection(p, p2, q, q2)
	if !intersects {
		return false
	}

	if colinear {
		// collinear segments cross when they overlap in more than a
		// shared endpoint
		dir := p2.Sub(p).Normalize()
		length := p2.Sub(p).Mag()
		t0 := q.Sub(p).Dot(dir)
		t1 := q2.Sub(p).Dot(dir)

		lo := math.Min(t0, t1)
		hi := math.Max(t0, t1)

		overlap := math.Min(length, hi) - math.Max(0, lo)
		return overlap > number.Epsilon
	}

	sharesEndpoint := point.Equals(p) || point.Equals(p2)
	if !sharesEndpoint {
		return true
	}

	return !point.Equals(q) && !point.Equals(q2)
}
