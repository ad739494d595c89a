package handler

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	notify "github.com/bitly/go-notify"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/bytearena/conevision/common/utils"
	"github.com/bytearena/conevision/vizserver/types"
)

type wsincomingmessage struct {
	messageType int
	p           []byte
	err         error
}

// Simplified version of the VizStepMessageData struct
type ComputationIdVizMessage struct {
	ComputationId string
}

func Websocket(computations *types.VizComputationMap) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		computation := computations.Get(vars["id"])

		if computation == nil {
			w.Write([]byte("COMPUTATION NOT FOUND !"))
			return
		}

		upgrader := websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		}

		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Print("upgrade:", err)
			return
		}

		watcher := types.NewWatcher(c)
		computation.SetWatcher(watcher)

		defer func(c *websocket.Conn) {
			computation.RemoveWatcher(watcher.GetId())
			c.Close()
		}(c)

		clientclosedsocket := make(chan bool)
		c.SetCloseHandler(func(code int, text string) error {
			clientclosedsocket <- true
			return nil
		})

		// Listen to messages incoming from the viz client; mandatory to
		// notice when the websocket is closed client side
		incomingmsg := make(chan wsincomingmessage)
		go func(client *websocket.Conn, ch chan wsincomingmessage) {
			messageType, p, err := client.ReadMessage()
			ch <- wsincomingmessage{messageType, p, err}
		}(c, incomingmsg)

		// Listen to the step snapshots published by the sweep driver
		stepchan := make(chan interface{})
		notify.Start("viz:step", stepchan)
		defer notify.Stop("viz:step", stepchan)

		for {
			select {
			case <-clientclosedsocket:
				{
					return
				}
			case stepmsg := <-stepchan:
				{
					stepmsgString, ok := stepmsg.(string)
					utils.Assert(ok, "Failed to cast step message into string")

					var vizMessage ComputationIdVizMessage
					err := json.Unmarshal([]byte(stepmsgString), &vizMessage)
					utils.Check(err, "Failed to decode step message")

					if computation.GetId() == vizMessage.ComputationId {
						c.WriteMessage(websocket.TextMessage, []byte(fmt.Sprintf("{\"type\":\"step\", \"data\": %s}", stepmsgString)))
					}
				}
			}
		}
	}
}
