package vector

type Segment2 struct {
	a Vector2
	b Vector2
}

func MakeSegment2(a Vector2, b Vector2) Segment2 {
	return Segment2{a, b}
}

func (s Segment2) Get() (Vector2, Vector2) {
	return s.a, s.b
}

func (s Segment2) GetPointA() Vector2 {
	return s.a
}

func (s Segment2) GetPointB() Vector2 {
	return s.b
}

func (s Segment2) Center() Vector2 {
	return s.a.Add(s.b).DivScalar(2)
}

func (s Segment2) Length() float64 {
	return s.b.Sub(s.a).Mag()
}

func (s Segment2) LengthSq() float64 {
	return s.b.Sub(s.a).MagSq()
}

// ShortenedBy moves both endpoints toward one another by the given
// fraction of the segment length; used to take side tests off shared
// endpoints without changing what the segment occludes
func (s Segment2) ShortenedBy(f float64) Segment2 {
	ab := s.b.Sub(s.a)
	return MakeSegment2(
		s.a.Add(ab.MultScalar(f)),
		s.b.Sub(ab.MultScalar(f)),
	)
}

func (s Segment2) HasEndpoint(p Vector2) bool {
	return s.a.Equals(p) || s.b.Equals(p)
}

func (s Segment2) Equals(other Segment2) bool {
	return s.a.Equals(other.a) && s.b.Equals(other.b)
}

func (s Segment2) String() string {
	return "<Segment2(" + s.a.String() + " => " + s.b.String() + ")>"
}

func (s Segment2) MarshalJSON() ([]byte, error) {
	aj, err := s.a.MarshalJSON()
	if err != nil {
		return nil, err
	}

	bj, err := s.b.MarshalJSON()
	if err != nil {
		return nil, err
	}

	res := append([]byte{'['}, aj...)
	res = append(res, ',')
	res = append(res, bj...)
	return append(res, ']'), nil
}
