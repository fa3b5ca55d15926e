package network

import (
	"sync"

	"github.com/gorilla/websocket"
	"github.com/jackson-harris-iii/inifinite-phase-game/game"
	"github.com/jackson-harris-iii/inifinite-phase-game/protocol"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
)

// Client is a mirror controller. It never mutates game state: each incoming
// broadcast overwrites the whole local copy, and intents go out as action
// messages with no acknowledgement. A lost message simply never produces its
// effect.
type Client struct {
	id   string
	name string
	conn *websocket.Conn

	mu      sync.RWMutex
	snap    game.Snapshot
	notices chan protocol.Notice
	closed  chan struct{}
}

// Dial connects to a host, sends the join message and starts mirroring.
func Dial(url, id, name string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}
	msg, err := protocol.EncodeClient(protocol.ClientMessage{
		Type: protocol.TypeJoin,
		Join: &protocol.Join{ID: id, Name: name},
	})
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
		_ = conn.Close()
		return nil, err
	}
	c := &Client{
		id:      id,
		name:    name,
		conn:    conn,
		notices: make(chan protocol.Notice, 16),
		closed:  make(chan struct{}),
	}
	async.Async(c.listen)
	return c, nil
}

func (c *Client) listen() {
	defer close(c.closed)
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			log.Error(err)
			return
		}
		m, err := protocol.DecodeServer(data)
		if err != nil {
			log.Infof("mirror %s got unrecognized message: %v\n", c.id, err)
			continue
		}
		switch m.Type {
		case protocol.TypeState:
			c.mu.Lock()
			c.snap = *m.State
			c.mu.Unlock()
		case protocol.TypeNotice:
			select {
			case c.notices <- *m.Notice:
			default:
			}
		}
	}
}

func (c *Client) ID() string {
	return c.id
}

// Snapshot returns the last state the host broadcast.
func (c *Client) Snapshot() game.Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}

// Submit forwards one intent to the host. Fire-and-forget.
func (c *Client) Submit(action protocol.Action) {
	action.PlayerID = c.id
	msg, err := protocol.EncodeClient(protocol.ClientMessage{
		Type:   protocol.TypeAction,
		Action: &action,
	})
	if err != nil {
		log.Error(err)
		return
	}
	if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
		log.Error(err)
	}
}

// Notices delivers transient host notices: rejected actions, stalemate.
func (c *Client) Notices() <-chan protocol.Notice {
	return c.notices
}

func (c *Client) Done() <-chan struct{} {
	return c.closed
}

func (c *Client) Close() error {
	return c.conn.Close()
}
