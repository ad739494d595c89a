package visibility2d

import (
	"github.com/bytearena/conevision/common/utils/vector"
)

// activeSet holds the segments currently crossed by the sweep ray,
// nearest to the viewpoint first. Ordering is always re-derived from the
// occlusion comparator, never from a stored rank: membership is the only
// persisted state.
type activeSet struct {
	viewpoint vector.Vector2
	segments  []*Segment
}

func newActiveSet(viewpoint vector.Vector2) *activeSet {
	return &activeSet{
		viewpoint: viewpoint,
		segments:  make([]*Segment, 0),
	}
}

func (set *activeSet) Size() int {
	return len(set.segments)
}

// Front returns the segment nearest to the viewpoint along the current
// sweep ray, nil when the set is empty
func (set *activeSet) Front() *Segment {
	if len(set.segments) == 0 {
		return nil
	}

	return set.segments[0]
}

func (set *activeSet) Back() *Segment {
	if len(set.segments) == 0 {
		return nil
	}

	return set.segments[len(set.segments)-1]
}

func (set *activeSet) Contains(segment *Segment) bool {
	for _, s := range set.segments {
		if s == segment {
			return true
		}
	}

	return false
}

// Insert places the segment at its occlusion rank, found by binary
// search over the comparator; inserting a member again is a no-op
func (set *activeSet) Insert(segment *Segment) error {

	if set.Contains(segment) {
		return nil
	}

	lo, hi := 0, len(set.segments)
	for lo < hi {
		mid := (lo + hi) / 2

		cmp, err := compareSegments(segment, set.segments[mid], set.viewpoint)
		if err != nil {
			return err
		}

		if cmp < 0 {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	set.segments = append(set.segments, nil)
	copy(set.segments[lo+1:], set.segments[lo:])
	set.segments[lo] = segment

	return nil
}

// Remove deletes the segment by identity; removing an absent segment is
// a no-op
func (set *activeSet) Remove(segment *Segment) bool {
	for i, s := range set.segments {
		if s == segment {
			copy(set.segments[i:], set.segments[i+1:])
			set.segments[len(set.segments)-1] = nil
			set.segments = set.segments[:len(set.segments)-1]
			return true
		}
	}

	return false
}

// Each iterates the set nearest-to-farthest until the callback returns
// false
func (set *activeSet) Each(cb func(segment *Segment) bool) {
	for _, s := range set.segments {
		if !cb(s) {
			return
		}
	}
}
