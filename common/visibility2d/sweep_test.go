package visibility2d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytearena/conevision/common/utils/number"
	"github.com/bytearena/conevision/common/utils/vector"
)

func makeSquareOutline(side float64) []vector.Vector2 {
	return []vector.Vector2{
		vector.MakeVector2(0, 0),
		vector.MakeVector2(side, 0),
		vector.MakeVector2(side, side),
		vector.MakeVector2(0, side),
	}
}

func makeOccluderRegion(t *testing.T) *Region {
	region, err := NewRegion(
		makeSquareOutline(20),
		[]vector.Vector2{
			vector.MakeVector2(8, 10),
			vector.MakeVector2(12, 10),
			vector.MakeVector2(10, 12),
		},
	)
	require.NoError(t, err)
	return region
}

func assertPolyline(t *testing.T, expected [][2]float64, actual []vector.Vector2) {
	require.Equal(t, len(expected), len(actual), "vertex count")
	for i, point := range expected {
		assert.InDelta(t, point[0], actual[i].GetX(), 0.001, "vertex %d x", i)
		assert.InDelta(t, point[1], actual[i].GetY(), 0.001, "vertex %d y", i)
	}
}

func TestFullCircleSweep(t *testing.T) {
	examples := []struct {
		Name     string
		Facing   float64
		Expected [][2]float64
	}{
		{
			Name:   "Facing right",
			Facing: 0,
			Expected: [][2]float64{
				{5, 5}, {0, 5}, {0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 5},
			},
		},
		{
			Name:   "Facing up",
			Facing: 90,
			Expected: [][2]float64{
				{5, 5}, {5, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}, {5, 0},
			},
		},
	}

	region, err := NewRegion(makeSquareOutline(10))
	require.NoError(t, err)

	for _, example := range examples {
		t.Run(example.Name, func(t *testing.T) {
			viewpoint := MakeViewpoint(vector.MakeVector2(5, 5), example.Facing, 180)

			result, err := ComputeVisibility(region, viewpoint)
			require.NoError(t, err)

			assertPolyline(t, example.Expected, result)
		})
	}
}

func TestSingleOccluder(t *testing.T) {
	region := makeOccluderRegion(t)
	viewpoint := MakeViewpoint(vector.MakeVector2(10, 4), 90, 45)

	result, err := ComputeVisibility(region, viewpoint)
	require.NoError(t, err)

	assertPolyline(t, [][2]float64{
		{10, 4},
		{20, 14},
		{20, 20},
		{15.3333, 20},
		{12, 10},
		{8, 10},
		{4.6667, 20},
		{0, 20},
		{0, 14},
	}, result)
}

// A hole vertex sitting exactly on the outer boundary must not derail
// the occlusion order; the visible polygon is the same as with a lower
// apex because the hole's base edge hides its top vertex anyway
func TestOccluderTouchingOuterBoundary(t *testing.T) {
	region, err := NewRegion(
		makeSquareOutline(20),
		[]vector.Vector2{
			vector.MakeVector2(8, 10),
			vector.MakeVector2(12, 10),
			vector.MakeVector2(10, 20),
		},
	)
	require.NoError(t, err)

	viewpoint := MakeViewpoint(vector.MakeVector2(10, 4), 90, 45)

	result, err := ComputeVisibility(region, viewpoint)
	require.NoError(t, err)

	assertPolyline(t, [][2]float64{
		{10, 4},
		{20, 14},
		{20, 20},
		{15.3333, 20},
		{12, 10},
		{8, 10},
		{4.6667, 20},
		{0, 20},
		{0, 14},
	}, result)
}

func TestOutputStaysInsideCone(t *testing.T) {
	region := makeOccluderRegion(t)
	viewpoint := MakeViewpoint(vector.MakeVector2(10, 4), 90, 45)

	result, err := ComputeVisibility(region, viewpoint)
	require.NoError(t, err)
	require.True(t, len(result) > 1)

	rightDir := viewpoint.RightBoundaryRay().GetDirection()
	fov := viewpoint.FieldOfView()

	for i, point := range result[1:] {
		d := point.Sub(viewpoint.GetPosition())
		deg := number.RadianToDegree(math.Atan2(rightDir.Cross(d), rightDir.Dot(d)))

		assert.True(t, deg >= -0.001 && deg <= fov+0.001,
			"vertex %d at %s lies %f degrees from the right boundary ray", i+1, point.String(), deg)
	}
}

func TestSteppedSweepMatchesSynchronous(t *testing.T) {
	region := makeOccluderRegion(t)
	viewpoint := MakeViewpoint(vector.MakeVector2(10, 4), 90, 45)

	sync, err := ComputeVisibility(region, viewpoint)
	require.NoError(t, err)

	vision, err := BeginVisibility(region, viewpoint)
	require.NoError(t, err)

	steps := 0
	for {
		done, err := vision.Step()
		require.NoError(t, err)
		steps++
		if done {
			break
		}
	}

	assert.Equal(t, sync, vision.Result())
	assert.True(t, steps > 2, "expected one step per event, got %d steps total", steps)
	assert.Equal(t, StateDone, vision.GetState())
}

func TestSweepIsDeterministic(t *testing.T) {
	region := makeOccluderRegion(t)
	viewpoint := MakeViewpoint(vector.MakeVector2(10, 4), 90, 45)

	first, err := ComputeVisibility(region, viewpoint)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := ComputeVisibility(region, viewpoint)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// A self-intersecting hole makes the active set order undefined; the
// sweep must fail with a geometry error instead of guessing
func TestCrossingBoundariesFail(t *testing.T) {
	region, err := NewRegion(
		makeSquareOutline(20),
		[]vector.Vector2{
			vector.MakeVector2(8, 10),
			vector.MakeVector2(12, 10),
			vector.MakeVector2(8, 14),
			vector.MakeVector2(12, 14),
		},
	)
	require.NoError(t, err)

	viewpoint := MakeViewpoint(vector.MakeVector2(10, 4), 90, 30)

	result, err := ComputeVisibility(region, viewpoint)
	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, IsGeometryError(err))
	assert.False(t, IsInputError(err))
}

func TestComputeRejectsStartedSweep(t *testing.T) {
	region := makeOccluderRegion(t)
	viewpoint := MakeViewpoint(vector.MakeVector2(10, 4), 90, 45)

	vision, err := BeginVisibility(region, viewpoint)
	require.NoError(t, err)

	_, err = vision.Step()
	require.NoError(t, err)

	_, err = vision.Compute()
	require.Error(t, err)
	assert.True(t, IsBusyError(err))

	// a finished computation cannot be restarted either
	done, err := NewCameraVision(region, viewpoint)
	require.NoError(t, err)
	_, err = done.Compute()
	require.NoError(t, err)
	_, err = done.Compute()
	require.Error(t, err)
	assert.True(t, IsBusyError(err))
}

func TestResultOnlyOnceDone(t *testing.T) {
	region := makeOccluderRegion(t)
	viewpoint := MakeViewpoint(vector.MakeVector2(10, 4), 90, 45)

	vision, err := BeginVisibility(region, viewpoint)
	require.NoError(t, err)

	assert.Nil(t, vision.Result())
	assert.Equal(t, StateIdle, vision.GetState())

	_, err = vision.Step()
	require.NoError(t, err)
	assert.Nil(t, vision.Result())
	assert.Equal(t, StateSweeping, vision.GetState())
}

func TestSnapshotLifecycle(t *testing.T) {
	region := makeOccluderRegion(t)
	viewpoint := MakeViewpoint(vector.MakeVector2(10, 4), 90, 45)

	vision, err := BeginVisibility(region, viewpoint)
	require.NoError(t, err)

	_, ok := vision.Snapshot()
	assert.False(t, ok, "no snapshot before the sweep starts")

	_, err = vision.Step()
	require.NoError(t, err)

	snapshot, ok := vision.Snapshot()
	require.True(t, ok)
	assert.Equal(t, "sweeping", snapshot.State)
	assert.Equal(t, [2]float64{10, 4}, snapshot.Viewpoint)
	assert.Equal(t, 90.0, snapshot.Facing)
	assert.Equal(t, 45.0, snapshot.HalfAngle)
	assert.True(t, snapshot.TotalEvents > 0)
	assert.True(t, len(snapshot.Output) >= 2, "viewpoint and first boundary hit are emitted at init")

	for {
		done, err := vision.Step()
		require.NoError(t, err)
		if done {
			break
		}
	}

	_, ok = vision.Snapshot()
	assert.False(t, ok, "no snapshot once the sweep is done")
	assert.NotNil(t, vision.Result())
}

func TestSweepInputValidation(t *testing.T) {
	region := makeOccluderRegion(t)

	examples := []struct {
		Name      string
		Region    *Region
		Viewpoint Viewpoint
	}{
		{
			Name:      "Nil region",
			Region:    nil,
			Viewpoint: MakeViewpoint(vector.MakeVector2(10, 4), 90, 45),
		},
		{
			Name:      "Zero half-angle",
			Region:    region,
			Viewpoint: MakeViewpoint(vector.MakeVector2(10, 4), 90, 0),
		},
		{
			Name:      "Negative half-angle",
			Region:    region,
			Viewpoint: MakeViewpoint(vector.MakeVector2(10, 4), 90, -10),
		},
		{
			Name:      "Half-angle past the full circle",
			Region:    region,
			Viewpoint: MakeViewpoint(vector.MakeVector2(10, 4), 90, 181),
		},
		{
			Name:      "Viewpoint on an outline vertex",
			Region:    region,
			Viewpoint: MakeViewpoint(vector.MakeVector2(0, 0), 90, 45),
		},
		{
			Name:      "Viewpoint on a hole vertex",
			Region:    region,
			Viewpoint: MakeViewpoint(vector.MakeVector2(8, 10), 90, 45),
		},
	}

	for _, example := range examples {
		t.Run(example.Name, func(t *testing.T) {
			vision, err := NewCameraVision(example.Region, example.Viewpoint)
			assert.Nil(t, vision)
			require.Error(t, err)
			assert.True(t, IsInputError(err))
		})
	}
}
