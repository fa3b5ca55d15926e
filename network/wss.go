package network

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Websocket serves one hosted game session over /ws.
type Websocket struct {
	addr string
	host *Host
}

func NewWebsocketServer(addr string, host *Host) Websocket {
	return Websocket{addr: addr, host: host}
}

func (w Websocket) Serve() error {
	http.HandleFunc("/ws", w.serveWs)
	log.Infof("Websocket server listening on %s\n", w.addr)
	return http.ListenAndServe(w.addr, nil)
}

func (w Websocket) serveWs(rw http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(rw, r, nil)
	if err != nil {
		log.Error(err)
		return
	}
	async.Async(func() {
		handle(w.host, conn)
	})
}
