package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector2Arithmetic(t *testing.T) {
	a := MakeVector2(3, 4)
	b := MakeVector2(1, -2)

	assert.True(t, a.Add(b).Equals(MakeVector2(4, 2)))
	assert.True(t, a.Sub(b).Equals(MakeVector2(2, 6)))
	assert.True(t, a.MultScalar(2).Equals(MakeVector2(6, 8)))
	assert.True(t, a.DivScalar(2).Equals(MakeVector2(1.5, 2)))

	// value semantics: operating on a copy leaves the original untouched
	assert.True(t, a.Equals(MakeVector2(3, 4)))
}

func TestVector2Magnitude(t *testing.T) {
	a := MakeVector2(3, 4)

	assert.Equal(t, 25.0, a.MagSq())
	assert.Equal(t, 5.0, a.Mag())
	assert.InDelta(t, 1.0, a.Normalize().Mag(), 0.000001)

	null := MakeNullVector2()
	assert.True(t, null.Normalize().IsNull(), "normalizing the null vector keeps it null")
}

func TestVector2Angle(t *testing.T) {
	assert.InDelta(t, 0, MakeVector2(1, 0).Angle(), 0.000001)
	assert.InDelta(t, math.Pi/2, MakeVector2(0, 2).Angle(), 0.000001)
	assert.InDelta(t, math.Pi, MakeVector2(-3, 0).Angle(), 0.000001)
	assert.InDelta(t, 3*math.Pi/2, MakeVector2(0, -1).Angle(), 0.000001, "angles wrap into [0, 2pi)")
	assert.Equal(t, 0.0, MakeNullVector2().Angle())
}

func TestVector2CrossDot(t *testing.T) {
	a := MakeVector2(1, 0)
	b := MakeVector2(0, 1)

	assert.Equal(t, 1.0, a.Cross(b))
	assert.Equal(t, -1.0, b.Cross(a))
	assert.Equal(t, 0.0, a.Dot(b))
	assert.Equal(t, 1.0, a.Dot(a))
}

func TestVector2Equality(t *testing.T) {
	a := MakeVector2(1, 2)

	assert.True(t, a.Equals(MakeVector2(1, 2)))
	assert.True(t, a.Equals(MakeVector2(1+1e-9, 2-1e-9)), "comparison absorbs float noise")
	assert.False(t, a.Equals(MakeVector2(1.1, 2)))
}

func TestVector2MarshalJSON(t *testing.T) {
	data, err := MakeVector2(1.25, -3).MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, "[1.2500,-3.0000]", string(data))
}

func TestMakeUnitVector2(t *testing.T) {
	east := MakeUnitVector2(0)
	assert.InDelta(t, 1, east.GetX(), 0.000001)
	assert.InDelta(t, 0, east.GetY(), 0.000001)

	north := MakeUnitVector2(math.Pi / 2)
	assert.InDelta(t, 0, north.GetX(), 0.000001)
	assert.InDelta(t, 1, north.GetY(), 0.000001)
}

func TestVector2Distances(t *testing.T) {
	a := MakeVector2(1, 1)
	b := MakeVector2(4, 5)

	assert.Equal(t, 5.0, a.DistanceTo(b))
	assert.Equal(t, 25.0, a.DistanceSqTo(b))
	assert.Equal(t, [2]float64{1, 1}, a.ToFloatArray())
}
