package trigo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytearena/conevision/common/utils/vector"
)

func v(x, y float64) vector.Vector2 {
	return vector.MakeVector2(x, y)
}

func TestRaySegmentIntersection(t *testing.T) {
	ray := vector.MakeRay2FromAngle(v(0, 0), 0)

	point, distance, intersects := RaySegmentIntersection(ray, v(5, -3), v(5, 3))
	require.True(t, intersects)
	assert.InDelta(t, 5, point.GetX(), 0.000001)
	assert.InDelta(t, 0, point.GetY(), 0.000001)
	assert.InDelta(t, 5, distance, 0.000001)

	// distance is euclidean because the ray direction is unit length
	diag := vector.MakeRay2Through(v(0, 0), v(1, 1))
	_, distance, intersects = RaySegmentIntersection(diag, v(0, 6), v(6, 0))
	require.True(t, intersects)
	assert.InDelta(t, 4.2426, distance, 0.001)
}

func TestRaySegmentIntersectionMisses(t *testing.T) {
	ray := vector.MakeRay2FromAngle(v(0, 0), 0)

	examples := []struct {
		Name string
		A, B vector.Vector2
	}{
		{Name: "Behind the origin", A: v(-5, -3), B: v(-5, 3)},
		{Name: "Above the ray", A: v(5, 1), B: v(5, 3)},
		{Name: "Parallel to the ray", A: v(0, 2), B: v(10, 2)},
		{Name: "Collinear with the ray", A: v(2, 0), B: v(8, 0)},
	}

	for _, example := range examples {
		t.Run(example.Name, func(t *testing.T) {
			_, _, intersects := RaySegmentIntersection(ray, example.A, example.B)
			assert.False(t, intersects)
		})
	}
}

func TestRaySegmentIntersectionAtEndpoint(t *testing.T) {
	ray := vector.MakeRay2FromAngle(v(0, 0), 0)

	point, _, intersects := RaySegmentIntersection(ray, v(5, 0), v(5, 8))
	require.True(t, intersects)
	assert.True(t, point.Equals(v(5, 0)))
}

func TestSegmentsIntersection(t *testing.T) {
	point, intersects, colinear := SegmentsIntersection(v(0, 0), v(10, 10), v(0, 10), v(10, 0))
	require.True(t, intersects)
	assert.False(t, colinear)
	assert.True(t, point.Equals(v(5, 5)))

	_, intersects, _ = SegmentsIntersection(v(0, 0), v(4, 4), v(0, 10), v(10, 0))
	assert.False(t, intersects, "segments whose lines cross outside their bounds do not intersect")

	_, intersects, colinear = SegmentsIntersection(v(0, 0), v(4, 0), v(6, 0), v(10, 0))
	assert.False(t, intersects)
	assert.True(t, colinear)

	_, intersects, colinear = SegmentsIntersection(v(0, 0), v(6, 0), v(4, 0), v(10, 0))
	assert.True(t, intersects)
	assert.True(t, colinear)
}

func TestSegmentsCross(t *testing.T) {
	examples := []struct {
		Name  string
		P, P2 vector.Vector2
		Q, Q2 vector.Vector2
		Cross bool
	}{
		{
			Name: "Genuine crossing",
			P:    v(0, 0), P2: v(10, 10),
			Q: v(0, 10), Q2: v(10, 0),
			Cross: true,
		},
		{
			Name: "Disjoint",
			P:    v(0, 0), P2: v(10, 0),
			Q: v(0, 5), Q2: v(10, 5),
			Cross: false,
		},
		{
			Name: "Shared endpoint only",
			P:    v(0, 0), P2: v(10, 0),
			Q: v(10, 0), Q2: v(10, 10),
			Cross: false,
		},
		{
			Name: "Endpoint touching mid-segment",
			P:    v(5, 0), P2: v(5, 10),
			Q: v(0, 5), Q2: v(5, 5),
			Cross: true,
		},
		{
			Name: "Collinear overlapping",
			P:    v(0, 0), P2: v(6, 0),
			Q: v(4, 0), Q2: v(10, 0),
			Cross: true,
		},
		{
			Name: "Collinear touching at one point",
			P:    v(0, 0), P2: v(4, 0),
			Q: v(4, 0), Q2: v(10, 0),
			Cross: false,
		},
		{
			Name: "Collinear disjoint",
			P:    v(0, 0), P2: v(4, 0),
			Q: v(6, 0), Q2: v(10, 0),
			Cross: false,
		},
	}

	for _, example := range examples {
		t.Run(example.Name, func(t *testing.T) {
			assert.Equal(t, example.Cross, SegmentsCross(example.P, example.P2, example.Q, example.Q2))
		})
	}
}
