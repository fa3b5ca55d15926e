package network

import (
	"github.com/jackson-harris-iii/inifinite-phase-game/game"
	"github.com/jackson-harris-iii/inifinite-phase-game/protocol"
)

// Controller is the read-facing capability UI code consumes, regardless of
// which side of the wire it sits on. The host is the authoritative
// implementation: it executes transitions and emits broadcasts. A mirror holds
// a read-only copy replaced wholesale by each broadcast and forwards intents
// to the host as action messages.
type Controller interface {
	Snapshot() game.Snapshot
	Submit(action protocol.Action)
}

var (
	_ Controller = (*Host)(nil)
	_ Controller = (*Client)(nil)
)
