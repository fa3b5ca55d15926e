package network

import (
	"github.com/awesome-cap/hashmap"
)

// Connected participant registry, keyed by stable player id.
var sessions = hashmap.New()

func registerSession(s *session) {
	sessions.Set(s.id, s)
}

func unregisterSession(id string) {
	sessions.Del(id)
}

func getSession(id string) *session {
	if v, ok := sessions.Get(id); ok {
		return v.(*session)
	}
	return nil
}

func broadcast(msg []byte) {
	sessions.Foreach(func(e *hashmap.Entry) {
		e.Value().(*session).write(msg)
	})
}
