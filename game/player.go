package game

import "github.com/jackson-harris-iii/inifinite-phase-game/card"

// Player persists across rounds within a game. Melds, LaidDown and Skipped
// reset each round; Score and PhaseIndex only ever grow.
type Player struct {
	ID         string
	Name       string
	Bot        bool
	Hand       *Hand
	Melds      []*Meld
	PhaseIndex int
	LaidDown   bool
	Skipped    bool
	Score      int
}

func newPlayer(id, name string, bot bool) *Player {
	return &Player{
		ID:   id,
		Name: name,
		Bot:  bot,
		Hand: NewHand(nil),
	}
}

func (p *Player) resetRound(hand []card.Card) {
	p.Hand = NewHand(hand)
	p.Melds = nil
	p.LaidDown = false
	p.Skipped = false
}
