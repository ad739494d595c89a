package types

import (
	"encoding/json"
	"sync"
	"time"

	notify "github.com/bitly/go-notify"
	uuid "github.com/satori/go.uuid"

	"github.com/bytearena/conevision/common/types/regioncontainer"
	"github.com/bytearena/conevision/common/utils"
	"github.com/bytearena/conevision/common/visibility2d"
)

// VizComputation is one visualized sweep: a region document, a named
// viewpoint in it, and the pool of websocket watchers following it
type VizComputation struct {
	id        string
	name      string
	container *regioncontainer.RegionContainer
	viewpoint visibility2d.Viewpoint
	pool      *WatcherMap
}

func NewVizComputation(name string, container *regioncontainer.RegionContainer, viewpoint visibility2d.Viewpoint) *VizComputation {
	return &VizComputation{
		id:        uuid.NewV4().String(),
		name:      name,
		container: container,
		viewpoint: viewpoint,
		pool:      NewWatcherMap(),
	}
}

func (computation *VizComputation) GetId() string {
	return computation.id
}

func (computation *VizComputation) GetName() string {
	return computation.name
}

func (computation *VizComputation) GetContainer() *regioncontainer.RegionContainer {
	return computation.container
}

func (computation *VizComputation) GetViewpoint() visibility2d.Viewpoint {
	return computation.viewpoint
}

type VizInitMessageData struct {
	Region    *regioncontainer.RegionContainer `json:"region"`
	Viewpoint [2]float64                       `json:"viewpoint"`
	Facing    float64                          `json:"facing"`
	HalfAngle float64                          `json:"halfangle"`
}

type VizInitMessage struct {
	Type string             `json:"type"`
	Data VizInitMessageData `json:"data"`
}

type VizStepMessageData struct {
	ComputationId string                     `json:"computationid"`
	Snapshot      visibility2d.SweepSnapshot `json:"snapshot"`
}

func (computation *VizComputation) SetWatcher(watcher *Watcher) {
	computation.pool.Set(watcher.GetId(), watcher)

	initMsg := VizInitMessage{
		Type: "init",
		Data: VizInitMessageData{
			Region:    computation.container,
			Viewpoint: computation.viewpoint.GetPosition().ToFloatArray(),
			Facing:    computation.viewpoint.GetFacing(),
			HalfAngle: computation.viewpoint.GetHalfAngle(),
		},
	}

	err := watcher.GetConn().WriteJSON(initMsg)
	utils.Check(err, "Could not send VizInitMessage JSON")
}

func (computation *VizComputation) RemoveWatcher(watcherid string) {
	computation.pool.Remove(watcherid)
}

func (computation *VizComputation) GetNumberWatchers() int {
	return computation.pool.Size()
}

// PublishSnapshot fans a step snapshot out to the websocket handlers
// through the process-local notification bus
func (computation *VizComputation) PublishSnapshot(snapshot visibility2d.SweepSnapshot) {
	data, err := json.Marshal(VizStepMessageData{
		ComputationId: computation.id,
		Snapshot:      snapshot,
	})
	if err != nil {
		return
	}

	notify.PostTimeout("viz:step", string(data), time.Millisecond)
}

type VizComputationMap struct {
	mutex        sync.RWMutex
	computations map[string]*VizComputation
}

func NewVizComputationMap() *VizComputationMap {
	return &VizComputationMap{
		computations: make(map[string]*VizComputation),
	}
}

func (cmap *VizComputationMap) Set(id string, computation *VizComputation) {
	cmap.mutex.Lock()
	defer cmap.mutex.Unlock()
	cmap.computations[id] = computation
}

func (cmap *VizComputationMap) Get(id string) *VizComputation {
	cmap.mutex.RLock()
	defer cmap.mutex.RUnlock()
	return cmap.computations[id]
}

func (cmap *VizComputationMap) Each(cb func(computation *VizComputation) bool) {
	cmap.mutex.RLock()
	defer cmap.mutex.RUnlock()
	for _, computation := range cmap.computations {
		if !cb(computation) {
			return
		}
	}
}
