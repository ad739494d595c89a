package visibility2d

import (
	"sort"

	"github.com/bytearena/conevision/common/utils/trigo"
	"github.com/bytearena/conevision/common/utils/vector"
)

type SweepState int

const (
	StateIdle SweepState = iota
	StateInitializing
	StateSweeping
	StateFinalizing
	StateDone
)

func (s SweepState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateInitializing:
		return "initializing"
	case StateSweeping:
		return "sweeping"
	case StateFinalizing:
		return "finalizing"
	case StateDone:
		return "done"
	}

	return "unknown"
}

// CameraVision computes the visibility polygon of a bounded cone cast
// from a viewpoint inside a region. One CameraVision serves exactly one
// sweep, synchronous or stepped, and is then discarded; it must not be
// shared across goroutines.
type CameraVision struct {
	region    *Region
	viewpoint Viewpoint

	state    SweepState
	stepping bool
	err      error

	segments  []*Segment
	index     *segmentIndex
	endpoints []*EndPoint
	nextEvent int
	active    *activeSet
	sweepRay  vector.Ray2
	output    []vector.Vector2
}

func NewCameraVision(region *Region, viewpoint Viewpoint) (*CameraVision, error) {

	if region == nil {
		return nil, NewInputError("nil region")
	}

	if viewpoint.GetHalfAngle() <= 0 {
		return nil, NewInputError("field of view must be positive, got half-angle %f", viewpoint.GetHalfAngle())
	}

	if viewpoint.GetHalfAngle() > 180 {
		return nil, NewInputError("half-angle must not exceed 180 degrees, got %f", viewpoint.GetHalfAngle())
	}

	if region.HasVertexAt(viewpoint.GetPosition()) {
		return nil, NewInputError("viewpoint coincides with boundary vertex %s", viewpoint.GetPosition().String())
	}

	return &CameraVision{
		region:    region,
		viewpoint: viewpoint,
		state:     StateIdle,
	}, nil
}

// ComputeVisibility runs a full synchronous sweep and returns the
// ordered visible boundary: an open vertex sequence starting at the
// viewpoint, continuing counter-clockwise, ending at the last visible
// point before the left boundary ray. Closure back to the viewpoint is
// implicit.
func ComputeVisibility(region *Region, viewpoint Viewpoint) ([]vector.Vector2, error) {
	vision, err := NewCameraVision(region, viewpoint)
	if err != nil {
		return nil, err
	}

	return vision.Compute()
}

// BeginVisibility returns a resumable computation; drive it with Step
// and collect the output with Result once done
func BeginVisibility(region *Region, viewpoint Viewpoint) (*CameraVision, error) {
	return NewCameraVision(region, viewpoint)
}

// Compute runs all remaining transitions to completion. It is an error
// to call it on a computation that already left the idle state.
func (vision *CameraVision) Compute() ([]vector.Vector2, error) {

	if vision.stepping || vision.state != StateIdle {
		return nil, NewBusyError("computation already in progress (state %s)", vision.state.String())
	}

	for {
		done, err := vision.Step()
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
	}

	return vision.output, nil
}

// Step performs exactly one transition (the initialization phase, one
// queued event, or the finalization phase) and reports whether the
// computation is done
func (vision *CameraVision) Step() (bool, error) {

	if vision.stepping {
		return false, NewBusyError("computation already in progress (state %s)", vision.state.String())
	}

	vision.stepping = true
	defer func() { vision.stepping = false }()

	switch vision.state {
	case StateIdle:
		vision.state = StateInitializing
		if err := vision.initialize(); err != nil {
			return vision.fail(err)
		}
		vision.state = StateSweeping
		return false, nil

	case StateSweeping:
		if vision.nextEvent >= len(vision.endpoints) {
			vision.state = StateFinalizing
			return false, nil
		}

		endpoint := vision.endpoints[vision.nextEvent]
		vision.nextEvent++

		if err := vision.processEndPoint(endpoint); err != nil {
			return vision.fail(err)
		}
		return false, nil

	case StateFinalizing:
		if err := vision.finalize(); err != nil {
			return vision.fail(err)
		}
		vision.state = StateDone
		return true, nil

	default: // StateDone, or an initialization that already failed
		return true, vision.err
	}
}

// Result returns the computed vertex sequence once the sweep completed
// successfully, nil otherwise
func (vision *CameraVision) Result() []vector.Vector2 {
	if vision.state != StateDone || vision.err != nil {
		return nil
	}

	return vision.output
}

func (vision *CameraVision) GetState() SweepState {
	return vision.state
}

func (vision *CameraVision) fail(err error) (bool, error) {
	vision.err = err
	vision.state = StateDone
	return true, err
}

// initialize sets the sweep ray on the right boundary ray, seeds the
// active set with every segment crossed there and emits the viewpoint
// followed by the nearest visible boundary point
func (vision *CameraVision) initialize() error {

	vision.segments = vision.region.MakeSegments()

	endpoints, err := buildEndPoints(vision.segments, vision.viewpoint)
	if err != nil {
		return err
	}
	vision.endpoints = endpoints

	index, err := newSegmentIndex(vision.segments)
	if err != nil {
		return err
	}
	vision.index = index

	vision.active = newActiveSet(vision.viewpoint.GetPosition())
	vision.output = make([]vector.Vector2, 0, len(vision.endpoints))
	vision.sweepRay = vision.viewpoint.RightBoundaryRay()

	vision.emit(vision.viewpoint.GetPosition())

	firstFound := false
	blocked := false

	for _, hit := range vision.rayHits(vision.sweepRay) {

		if endpoint := hit.segment.endPointAt(hit.point); endpoint != nil {
			// vertices sitting exactly on the starting edge are handled
			// by their own events, unless a begin there occludes what
			// follows: its event has not fired yet at the start angle
			if endpoint.beginsSegment && hit.segment.otherEndPoint(endpoint).angle > AngleEpsilon {
				blocked = true
			}
			continue
		}

		// every mid-segment crossing is active at the start angle
		if err := vision.active.Insert(hit.segment); err != nil {
			return err
		}

		if !firstFound && !blocked {
			vision.emit(hit.point)
			firstFound = true
		}
	}

	return nil
}

// processEndPoint applies one event transition against the active set
func (vision *CameraVision) processEndPoint(endpoint *EndPoint) error {

	vision.sweepRay = vector.MakeRay2Through(vision.viewpoint.GetPosition(), endpoint.point)

	oldFront := vision.active.Front()

	if endpoint.beginsSegment {
		if err := vision.active.Insert(endpoint.segment); err != nil {
			return err
		}

		newFront := vision.active.Front()

		if oldFront == nil {
			vision.emit(endpoint.point)
		} else if oldFront != newFront {
			// a nearer occluder starts blocking the previous front:
			// step from the old front down to the new vertex
			point, err := vision.sweepRayIntersection(oldFront)
			if err != nil {
				return err
			}

			if !point.Equals(endpoint.point) {
				vision.emit(point)
			}
			vision.emit(endpoint.point)
		}

		return nil
	}

	vision.active.Remove(endpoint.segment)

	newFront := vision.active.Front()

	if oldFront != newFront {
		// the front segment ended, exposing whatever is behind it
		vision.emit(endpoint.point)

		if newFront != nil {
			point, err := vision.sweepRayIntersection(newFront)
			if err != nil {
				return err
			}
			vision.emit(point)
		}
		// an empty active set is valid here: the outer boundary's own
		// endpoint event supplies the next vertex
	}

	return nil
}

// finalize sets the sweep ray on the left boundary ray and closes the
// output flush with the cone's trailing edge
func (vision *CameraVision) finalize() error {

	vision.sweepRay = vision.viewpoint.LeftBoundaryRay()

	hits := vision.rayHits(vision.sweepRay)
	if len(hits) == 0 {
		return nil
	}

	if hits[0].segment.endPointAt(hits[0].point) == nil {
		vision.emit(hits[0].point)
	}

	return nil
}

func (vision *CameraVision) emit(point vector.Vector2) {
	if len(vision.output) > 0 && vision.output[len(vision.output)-1].Equals(point) {
		return
	}

	vision.output = append(vision.output, point)
}

// sweepRayIntersection intersects a segment expected to be crossed by
// the current sweep ray; a miss means the non-crossing precondition was
// violated or the active set is corrupt
func (vision *CameraVision) sweepRayIntersection(segment *Segment) (vector.Vector2, error) {
	point, _, intersects := trigo.RaySegmentIntersection(vision.sweepRay, segment.p1.point, segment.p2.point)
	if !intersects {
		return vector.MakeNullVector2(), NewGeometryError(
			"expected intersection of %s with sweep ray %s does not exist",
			segment.String(), vision.sweepRay.String(),
		)
	}

	return point, nil
}

type rayHit struct {
	point    vector.Vector2
	distance float64
	segment  *Segment
}

// rayHits finds the region segments crossed by the given boundary ray in
// its forward direction, nearest first
func (vision *CameraVision) rayHits(ray vector.Ray2) []rayHit {

	hits := make([]rayHit, 0)

	for _, segment := range vision.index.alongRay(ray) {
		point, distance, intersects := trigo.RaySegmentIntersection(ray, segment.p1.point, segment.p2.point)
		if !intersects {
			continue
		}

		hits = append(hits, rayHit{
			point:    point,
			distance: distance,
			segment:  segment,
		})
	}

	sort.Slice(hits, func(i, j int) bool {
		return hits[i].distance < hits[j].distance
	})

	return hits
}
