package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bytearena/conevision/vizserver/types"
)

type homeComputation struct {
	Id       string `json:"id"`
	Name     string `json:"name"`
	Watchers int    `json:"watchers"`
}

// Home lists the computations served by this process
func Home(computations *types.VizComputationMap) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {

		res := make([]homeComputation, 0)
		computations.Each(func(computation *types.VizComputation) bool {
			res = append(res, homeComputation{
				Id:       computation.GetId(),
				Name:     computation.GetName(),
				Watchers: computation.GetNumberWatchers(),
			})
			return true
		})

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(res)
	}
}
