package visibility2d

// SweepSnapshot is a read-only view of a resumable computation between
// two steps, for diagnostics and visualization tooling
type SweepSnapshot struct {
	State             string          `json:"state"`
	Viewpoint         [2]float64      `json:"viewpoint"`
	Facing            float64         `json:"facing"`
	HalfAngle         float64         `json:"halfangle"`
	SweepRayOrigin    [2]float64      `json:"sweeprayorigin"`
	SweepRayDirection [2]float64      `json:"sweepraydirection"`
	ActiveSegments    [][2][2]float64 `json:"activesegments"`
	Output            [][2]float64    `json:"output"`
	ProcessedEvents   int             `json:"processedevents"`
	TotalEvents       int             `json:"totalevents"`
}

// Snapshot captures the current sweep ray, active set and output of a
// computation in progress. It reports false while the computation is
// still idle or once it is done.
func (vision *CameraVision) Snapshot() (SweepSnapshot, bool) {

	if vision.state == StateIdle || vision.state == StateDone {
		return SweepSnapshot{}, false
	}

	snapshot := SweepSnapshot{
		State:             vision.state.String(),
		Viewpoint:         vision.viewpoint.GetPosition().ToFloatArray(),
		Facing:            vision.viewpoint.GetFacing(),
		HalfAngle:         vision.viewpoint.GetHalfAngle(),
		SweepRayOrigin:    vision.sweepRay.GetOrigin().ToFloatArray(),
		SweepRayDirection: vision.sweepRay.GetDirection().ToFloatArray(),
		ActiveSegments:    make([][2][2]float64, 0, vision.active.Size()),
		Output:            make([][2]float64, 0, len(vision.output)),
		ProcessedEvents:   vision.nextEvent,
		TotalEvents:       len(vision.endpoints),
	}

	vision.active.Each(func(segment *Segment) bool {
		snapshot.ActiveSegments = append(snapshot.ActiveSegments, [2][2]float64{
			segment.GetPointA().ToFloatArray(),
			segment.GetPointB().ToFloatArray(),
		})
		return true
	})

	for _, point := range vision.output {
		snapshot.Output = append(snapshot.Output, point.ToFloatArray())
	}

	return snapshot, true
}
