package vector

// Ray2 is a half-line: an origin and a unit direction
type Ray2 struct {
	origin    Vector2
	direction Vector2
}

func MakeRay2(origin Vector2, direction Vector2) Ray2 {
	return Ray2{
		origin:    origin,
		direction: direction.Normalize(),
	}
}

// MakeRay2FromAngle builds a ray pointing at the given angle in radians,
// counter-clockwise from the positive x axis
func MakeRay2FromAngle(origin Vector2, radians float64) Ray2 {
	return Ray2{
		origin:    origin,
		direction: MakeUnitVector2(radians),
	}
}

// MakeRay2Through builds a ray from origin through the given point;
// origin and point must not coincide
func MakeRay2Through(origin Vector2, point Vector2) Ray2 {
	return MakeRay2(origin, point.Sub(origin))
}

func (r Ray2) GetOrigin() Vector2 {
	return r.origin
}

func (r Ray2) GetDirection() Vector2 {
	return r.direction
}

func (r Ray2) PointAt(distance float64) Vector2 {
	return r.origin.Add(r.direction.MultScalar(distance))
}

func (r Ray2) String() string {
	return "<Ray2(" + r.origin.String() + " -> " + r.direction.String() + ")>"
}
