package vizserver

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/bytearena/conevision/common/utils"
	"github.com/bytearena/conevision/common/visibility2d"
	apphandler "github.com/bytearena/conevision/vizserver/handler"
	"github.com/bytearena/conevision/vizserver/types"
)

type FetchComputationsCbk func() ([]*types.VizComputation, error)

// Pace of the replayed sweep; one event transition per tick, and a
// pause before the sweep restarts from scratch
const (
	stepInterval = 100 * time.Millisecond
	replayPause  = 2 * time.Second
)

type VizService struct {
	addr              string
	fetchComputations FetchComputationsCbk
	server            *http.Server
	stopDrivers       chan struct{}
}

func NewVizService(addr string, fetchComputations FetchComputationsCbk) *VizService {
	return &VizService{
		addr:              addr,
		fetchComputations: fetchComputations,
		stopDrivers:       make(chan struct{}),
	}
}

func (viz *VizService) ListenAndServe() error {

	computations, err := viz.fetchComputations()
	utils.Check(err, "VizService: Could not fetch computations")

	vizcomputations := types.NewVizComputationMap()
	for _, computation := range computations {
		vizcomputations.Set(
			computation.GetId(),
			computation,
		)

		go viz.drive(computation)
	}

	logger := os.Stdout
	router := mux.NewRouter()
	router.Handle("/", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.Home(vizcomputations)),
	)).Methods("GET")

	router.Handle("/computation/{id:[a-zA-Z0-9\\-]+}/ws", handlers.CombinedLoggingHandler(logger,
		http.HandlerFunc(apphandler.Websocket(vizcomputations)),
	)).Methods("GET")

	log.Println("VIZ Listening on " + viz.addr)

	viz.server = &http.Server{
		Addr:    viz.addr,
		Handler: router,
	}

	return viz.server.ListenAndServe()
}

func (viz *VizService) Stop() {
	close(viz.stopDrivers)
	if viz.server != nil {
		viz.server.Close()
	}
}

// drive replays the sweep of one computation over and over, publishing
// a snapshot after every event transition so that watchers can follow
// the active set and the partial output as they evolve
func (viz *VizService) drive(computation *types.VizComputation) {

	container := computation.GetContainer()

	for {
		region, err := container.ToRegion()
		if err != nil {
			utils.Debug("vizserver", "Could not build region: "+err.Error())
			return
		}

		vision, err := visibility2d.BeginVisibility(region, computation.GetViewpoint())
		if err != nil {
			utils.Debug("vizserver", "Could not begin sweep: "+err.Error())
			return
		}

		for {
			done, err := vision.Step()
			if err != nil {
				utils.Debug("vizserver", "Sweep failed: "+err.Error())
				return
			}

			if snapshot, ok := vision.Snapshot(); ok {
				computation.PublishSnapshot(snapshot)
			}

			if done {
				break
			}

			select {
			case <-viz.stopDrivers:
				return
			case <-time.After(stepInterval):
			}
		}

		select {
		case <-viz.stopDrivers:
			return
		case <-time.After(replayPause):
		}
	}
}
