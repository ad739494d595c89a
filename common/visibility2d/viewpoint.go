package visibility2d

import (
	"github.com/bytearena/conevision/common/utils/number"
	"github.com/bytearena/conevision/common/utils/vector"
)

// Viewpoint is the point and cone from which visibility is computed:
// a position, a facing angle and a half-angle, both in degrees
type Viewpoint struct {
	position  vector.Vector2
	facing    float64
	halfAngle float64
}

func MakeViewpoint(position vector.Vector2, facing float64, halfAngle float64) Viewpoint {
	return Viewpoint{
		position:  position,
		facing:    facing,
		halfAngle: halfAngle,
	}
}

func (vp Viewpoint) GetPosition() vector.Vector2 {
	return vp.position
}

func (vp Viewpoint) GetFacing() float64 {
	return vp.facing
}

func (vp Viewpoint) GetHalfAngle() float64 {
	return vp.halfAngle
}

// FieldOfView is the full cone aperture, in degrees
func (vp Viewpoint) FieldOfView() float64 {
	return 2 * vp.halfAngle
}

// RightBoundaryRay is the cone edge where the sweep starts, at
// facing - halfAngle, directed from the viewpoint outward
func (vp Viewpoint) RightBoundaryRay() vector.Ray2 {
	return vector.MakeRay2FromAngle(vp.position, number.DegreeToRadian(vp.facing-vp.halfAngle))
}

// LeftBoundaryRay is the cone edge where the sweep ends, at
// facing + halfAngle
func (vp Viewpoint) LeftBoundaryRay() vector.Ray2 {
	return vector.MakeRay2FromAngle(vp.position, number.DegreeToRadian(vp.facing+vp.halfAngle))
}
