package visibility2d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytearena/conevision/common/utils/vector"
)

func TestCompareSegmentsNearerAndFarther(t *testing.T) {
	viewpoint := vector.MakeVector2(5, 5)

	near := newSegment(vector.MakeVector2(0, 8), vector.MakeVector2(10, 8))
	far := newSegment(vector.MakeVector2(0, 9), vector.MakeVector2(10, 9))

	cmp, err := compareSegments(near, far, viewpoint)
	require.NoError(t, err)
	assert.Equal(t, -1, cmp)

	cmp, err = compareSegments(far, near, viewpoint)
	require.NoError(t, err)
	assert.Equal(t, 1, cmp)
}

func TestCompareSegmentsIdentity(t *testing.T) {
	viewpoint := vector.MakeVector2(5, 5)
	segment := newSegment(vector.MakeVector2(0, 8), vector.MakeVector2(10, 8))

	cmp, err := compareSegments(segment, segment, viewpoint)
	require.NoError(t, err)
	assert.Equal(t, 0, cmp)
}

// sharing an endpoint must not count as a crossing; the endpoints are
// shortened toward the midpoints before the side tests
func TestCompareSegmentsSharedEndpoint(t *testing.T) {
	viewpoint := vector.MakeVector2(10, 4)

	base := newSegment(vector.MakeVector2(8, 10), vector.MakeVector2(12, 10))
	side := newSegment(vector.MakeVector2(12, 10), vector.MakeVector2(8, 14))

	cmp, err := compareSegments(base, side, viewpoint)
	require.NoError(t, err)
	assert.Equal(t, -1, cmp, "the base edge hides the one behind it")

	cmp, err = compareSegments(side, base, viewpoint)
	require.NoError(t, err)
	assert.Equal(t, 1, cmp)
}

func TestCompareSegmentsCrossingFails(t *testing.T) {
	viewpoint := vector.MakeVector2(5, 2)

	a := newSegment(vector.MakeVector2(0, 0), vector.MakeVector2(10, 10))
	b := newSegment(vector.MakeVector2(0, 10), vector.MakeVector2(10, 0))

	_, err := compareSegments(a, b, viewpoint)
	require.Error(t, err)
	assert.True(t, IsGeometryError(err))
}

func TestLeftOf(t *testing.T) {
	segment := vector.MakeSegment2(vector.MakeVector2(0, 0), vector.MakeVector2(10, 0))

	assert.True(t, leftOf(segment, vector.MakeVector2(5, -1)))
	assert.False(t, leftOf(segment, vector.MakeVector2(5, 1)))
	assert.False(t, leftOf(segment, vector.MakeVector2(5, 0)), "points on the line are not left of it")
}
