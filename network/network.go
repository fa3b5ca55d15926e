package network

import (
	"time"

	"github.com/gorilla/websocket"
	"github.com/jackson-harris-iii/inifinite-phase-game/consts"
	"github.com/jackson-harris-iii/inifinite-phase-game/protocol"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
)

// session is one connected mirror: a websocket plus its outbound queue.
type session struct {
	id   string
	name string
	conn *websocket.Conn
	send chan []byte
}

func newSession(id, name string, conn *websocket.Conn) *session {
	return &session{
		id:   id,
		name: name,
		conn: conn,
		send: make(chan []byte, 16),
	}
}

// write queues a message; a mirror too slow to drain its queue loses the
// message and catches up on the next full-snapshot broadcast.
func (s *session) write(msg []byte) {
	select {
	case s.send <- msg:
	default:
		log.Infof("session %s send queue full, dropping message\n", s.id)
	}
}

func (s *session) writer() {
	for msg := range s.send {
		if err := s.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			log.Error(err)
			return
		}
	}
}

func handle(host *Host, conn *websocket.Conn) {
	defer func() {
		if err := conn.Close(); err != nil {
			log.Error(err)
		}
	}()
	log.Info("new participant connected! ")
	join, err := awaitJoin(conn)
	if err != nil {
		log.Error(err)
		return
	}
	sess := newSession(join.ID, join.Name, conn)
	done := make(chan error, 1)
	host.enqueue(command{join: &joinCmd{sess: sess, done: done}})
	if err := <-done; err != nil {
		msg, _ := protocol.EncodeServer(protocol.NoticeMessage(0, err.Error()))
		_ = conn.WriteMessage(websocket.TextMessage, msg)
		return
	}
	async.Async(sess.writer)
	// The host loop owns the session from here on; it closes the send queue
	// once the leave command is processed, so broadcasts never race the close.
	defer host.enqueue(command{leave: sess.id})
	listen(host, sess)
}

// awaitJoin expects the join message as the first frame on a new connection.
func awaitJoin(conn *websocket.Conn) (*protocol.Join, error) {
	joinChan := make(chan *protocol.Join)
	async.Async(func() {
		_, data, err := conn.ReadMessage()
		if err != nil {
			log.Error(err)
			return
		}
		m, err := protocol.DecodeClient(data)
		if err != nil || m.Type != protocol.TypeJoin {
			log.Errorf("expected join message: %v\n", err)
			return
		}
		joinChan <- m.Join
	})
	select {
	case join := <-joinChan:
		if join.ID == "" || join.Name == "" {
			return nil, consts.ErrorsJoinFail
		}
		return join, nil
	case <-time.After(consts.JoinTimeout):
		return nil, consts.ErrorsTimeout
	}
}

// listen routes this participant's action messages to the host, pinning the
// acting player id to the session so one mirror cannot act as another.
func listen(host *Host, sess *session) {
	for {
		_, data, err := sess.conn.ReadMessage()
		if err != nil {
			log.Error(err)
			return
		}
		m, err := protocol.DecodeClient(data)
		if err != nil {
			log.Infof("session %s sent unrecognized message: %v\n", sess.id, err)
			continue
		}
		if m.Type != protocol.TypeAction {
			continue
		}
		action := *m.Action
		action.PlayerID = sess.id
		host.Submit(action)
	}
}
