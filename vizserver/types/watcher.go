package types

import (
	"sync"

	uuid "github.com/satori/go.uuid"

	"github.com/gorilla/websocket"
)

type Watcher struct {
	id   string
	conn *websocket.Conn
}

func NewWatcher(conn *websocket.Conn) *Watcher {
	return &Watcher{
		id:   uuid.NewV4().String(),
		conn: conn,
	}
}

func (watcher *Watcher) GetId() string {
	return watcher.id
}

func (watcher *Watcher) GetConn() *websocket.Conn {
	return watcher.conn
}

type WatcherMap struct {
	mutex sync.RWMutex
	pool  map[string]*Watcher
}

func NewWatcherMap() *WatcherMap {
	return &WatcherMap{
		pool: make(map[string]*Watcher),
	}
}

func (wmap *WatcherMap) Set(id string, watcher *Watcher) {
	wmap.mutex.Lock()
	defer wmap.mutex.Unlock()
	wmap.pool[id] = watcher
}

func (wmap *WatcherMap) Get(id string) *Watcher {
	wmap.mutex.RLock()
	defer wmap.mutex.RUnlock()
	return wmap.pool[id]
}

func (wmap *WatcherMap) Remove(id string) {
	wmap.mutex.Lock()
	defer wmap.mutex.Unlock()
	delete(wmap.pool, id)
}

func (wmap *WatcherMap) Size() int {
	wmap.mutex.RLock()
	defer wmap.mutex.RUnlock()
	return len(wmap.pool)
}
