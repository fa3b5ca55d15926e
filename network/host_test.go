package network

import (
	"testing"
	"time"

	"github.com/jackson-harris-iii/inifinite-phase-game/consts"
	"github.com/jackson-harris-iii/inifinite-phase-game/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	scenarios := []struct {
		description string
		cfg         Config
		ok          bool
	}{
		{"zero_value_is_fine", Config{}, true},
		{"bots_leaving_one_open_seat", Config{Bots: consts.MaxPlayers - 1}, true},
		{"negative_turn_seconds", Config{TurnSeconds: -1}, false},
		{"negative_delay", Config{BotDelay: -time.Second}, false},
		{"bots_filling_every_seat", Config{Bots: consts.MaxPlayers}, false},
		{"negative_bots", Config{Bots: -1}, false},
	}
	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			err := scenario.cfg.validate()
			if scenario.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestHostSeatsBots(t *testing.T) {
	h, err := NewHost(Config{Bots: 2, Seed: 7})
	require.NoError(t, err)
	snap := h.Snapshot()
	require.Len(t, snap.Players, 2)
	assert.True(t, snap.Players[0].Bot)
	assert.Equal(t, consts.StateLobby, snap.State)
}

// Commands are applied one at a time against the canonical state; every apply
// publishes a fresh snapshot for mirrors.
func TestHostAppliesActionsSequentially(t *testing.T) {
	h, err := NewHost(Config{Seed: 7})
	require.NoError(t, err)
	require.NoError(t, h.game.AddPlayer("a", "Ada", false))
	require.NoError(t, h.game.AddPlayer("b", "Bob", false))
	h.owner = "a"

	t.Run("only_the_owner_starts", func(t *testing.T) {
		h.handle(command{action: &protocol.Action{Type: protocol.ActionStart, PlayerID: "b"}})
		assert.Equal(t, consts.StateLobby, h.Snapshot().State)

		h.handle(command{action: &protocol.Action{Type: protocol.ActionStart, PlayerID: "a"}})
		assert.Equal(t, consts.StatePlaying, h.Snapshot().State)
	})

	t.Run("legal_action_is_reflected_in_the_next_snapshot", func(t *testing.T) {
		h.handle(command{action: &protocol.Action{Type: protocol.ActionDraw, PlayerID: "a"}})
		snap := h.Snapshot()
		assert.Equal(t, consts.PhaseAction, snap.TurnPhase)
		assert.Len(t, snap.Players[0].Hand, consts.HandSize+1)
	})

	t.Run("illegal_action_changes_nothing", func(t *testing.T) {
		before := h.Snapshot()
		h.handle(command{action: &protocol.Action{Type: protocol.ActionDraw, PlayerID: "b"}})
		assert.Equal(t, before.TurnPhase, h.Snapshot().TurnPhase)
		assert.Len(t, h.Snapshot().Players[1].Hand, consts.HandSize)
	})

	t.Run("snapshot_hides_deck_contents", func(t *testing.T) {
		snap := h.Snapshot()
		assert.Greater(t, snap.DeckSize, 0)
	})
}

// A stalemated draw blocks the whole round, so the notice reaches every
// connected participant, not just the acting player.
func TestStalemateNoticeReachesEveryone(t *testing.T) {
	h, err := NewHost(Config{Seed: 7})
	require.NoError(t, err)
	one := newSession("n1", "Nia", nil)
	two := newSession("n2", "Noa", nil)
	registerSession(one)
	registerSession(two)
	defer unregisterSession("n1")
	defer unregisterSession("n2")

	h.notify("n1", consts.ErrorsStalemate)

	for _, sess := range []*session{one, two} {
		select {
		case raw := <-sess.send:
			m, decErr := protocol.DecodeServer(raw)
			require.NoError(t, decErr)
			require.Equal(t, protocol.TypeNotice, m.Type)
			assert.Equal(t, consts.ErrorsStalemate.Code, m.Notice.Code)
		default:
			t.Fatalf("session %s received no notice", sess.id)
		}
	}
}
