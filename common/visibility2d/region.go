package visibility2d

import (
	"github.com/bytearena/conevision/common/utils/vector"
)

// Region is the polygon-with-holes the sweep is restricted to: one outer
// boundary loop plus zero or more hole loops. Loops are closed implicitly
// (last vertex connects back to the first). Segments of a valid region do
// not cross except at shared endpoints; the sweep treats a violation as a
// fatal GeometryError.
type Region struct {
	outline []vector.Vector2
	holes   [][]vector.Vector2
}

func NewRegion(outline []vector.Vector2, holes ...[]vector.Vector2) (*Region, error) {

	if err := validateLoop(outline); err != nil {
		return nil, err
	}

	for _, hole := range holes {
		if err := validateLoop(hole); err != nil {
			return nil, err
		}
	}

	return &Region{
		outline: outline,
		holes:   holes,
	}, nil
}

func validateLoop(loop []vector.Vector2) error {
	if len(loop) < 3 {
		return NewInputError("boundary loop needs at least 3 vertices, got %d", len(loop))
	}

	for i, point := range loop {
		next := loop[(i+1)%len(loop)]
		if point.Equals(next) {
			return NewInputError("degenerate zero-length edge at %s", point.String())
		}
	}

	return nil
}

func (r *Region) GetOutline() []vector.Vector2 {
	return r.outline
}

func (r *Region) GetHoles() [][]vector.Vector2 {
	return r.holes
}

// MakeSegments builds the Segments view of the region: the concatenation
// of all boundary edges from the outline and the holes. A fresh set of
// Segment values is built on each call, so that concurrent computations
// over the same region never share sweep state.
func (r *Region) MakeSegments() []*Segment {
	segments := loopSegments(r.outline)
	for _, hole := range r.holes {
		segments = append(segments, loopSegments(hole)...)
	}

	return segments
}

func loopSegments(loop []vector.Vector2) []*Segment {
	segments := make([]*Segment, 0, len(loop))
	for i, point := range loop {
		next := loop[(i+1)%len(loop)]
		segments = append(segments, newSegment(point, next))
	}

	return segments
}

// HasVertexAt reports whether any boundary vertex coincides with the
// given point
func (r *Region) HasVertexAt(point vector.Vector2) bool {
	for _, vertex := range r.outline {
		if vertex.Equals(point) {
			return true
		}
	}

	for _, hole := range r.holes {
		for _, vertex := range hole {
			if vertex.Equals(point) {
				return true
			}
		}
	}

	return false
}
