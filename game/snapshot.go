package game

import (
	"github.com/jackson-harris-iii/inifinite-phase-game/card"
	"github.com/jackson-harris-iii/inifinite-phase-game/consts"
	"github.com/jackson-harris-iii/inifinite-phase-game/phase"
)

// PlayerSnapshot is one player's replicated view.
type PlayerSnapshot struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Bot        bool        `json:"bot"`
	Hand       []card.Card `json:"hand"`
	Melds      []*Meld     `json:"melds"`
	PhaseIndex int         `json:"phaseIndex"`
	LaidDown   bool        `json:"laidDown"`
	Skipped    bool        `json:"skipped"`
	Score      int         `json:"score"`
}

// Snapshot is the full broadcast state. Mirrors replace their copy wholesale
// with each one; undrawn deck contents are never included, only the count.
type Snapshot struct {
	State         consts.GameState `json:"state"`
	Players       []PlayerSnapshot `json:"players"`
	DeckSize      int              `json:"deckSize"`
	Discard       []card.Card      `json:"discard"`
	Current       int              `json:"current"`
	TurnPhase     consts.TurnPhase `json:"turnPhase"`
	Phases        []phase.Phase    `json:"phases"`
	RoundWinner   string           `json:"roundWinner,omitempty"`
	TurnRemaining int              `json:"turnRemaining"`
}

// Snapshot extracts a deep copy of the canonical state; nothing in the result
// aliases game internals.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		State:         g.state,
		Current:       g.current,
		TurnPhase:     g.turnPhase,
		Phases:        g.phases,
		RoundWinner:   g.roundWinner,
		TurnRemaining: g.turnRemaining,
	}
	if g.deck != nil {
		s.DeckSize = g.deck.Size()
	}
	if g.pile != nil {
		s.Discard = g.pile.Cards()
	}
	for _, p := range g.players {
		ps := PlayerSnapshot{
			ID:         p.ID,
			Name:       p.Name,
			Bot:        p.Bot,
			Hand:       p.Hand.Cards(),
			PhaseIndex: p.PhaseIndex,
			LaidDown:   p.LaidDown,
			Skipped:    p.Skipped,
			Score:      p.Score,
		}
		for _, m := range p.Melds {
			ps.Melds = append(ps.Melds, m.clone())
		}
		s.Players = append(s.Players, ps)
	}
	return s
}

// CurrentPlayer resolves the snapshot's current player, or nil outside play.
func (s Snapshot) CurrentPlayer() *PlayerSnapshot {
	if s.State != consts.StatePlaying || s.Current < 0 || s.Current >= len(s.Players) {
		return nil
	}
	return &s.Players[s.Current]
}
