package game

import (
	"github.com/jackson-harris-iii/inifinite-phase-game/card"
	"github.com/jackson-harris-iii/inifinite-phase-game/consts"
	"github.com/ratel-online/core/log"
)

// PlayBot runs one complete turn for a computer player: draw from the deck,
// maybe lay down, then discard. The host calls this after the bot's fixed
// turn delay; it is a no-op unless it really is that bot's DRAW. A blocked
// turn, stalemate above all, is returned so the caller can report it.
func (g *Game) PlayBot(playerID string) error {
	p := g.Current()
	if p == nil || p.ID != playerID || !p.Bot || g.turnPhase != consts.PhaseDraw {
		return nil
	}
	if err := g.Draw(p.ID, false); err != nil {
		log.Errorf("bot %s cannot draw: %v\n", p.Name, err)
		return err
	}
	g.botTryMeld(p)
	if c, ok := p.Hand.AutoDiscard(); ok {
		if err := g.Discard(p.ID, c.ID); err != nil {
			log.Errorf("bot %s cannot discard: %v\n", p.Name, err)
			return err
		}
	}
	return nil
}

// botTryMeld is a best-effort heuristic, not a validated play: with a
// probability that grows with hand size, the bot lays down the first N cards
// of its hand, where N is the total requirement count of its current phase.
// Only card availability is checked, so the resulting groups can be
// structurally invalid; they merely satisfy the card counts.
func (g *Game) botTryMeld(p *Player) {
	if p.LaidDown {
		return
	}
	want := g.currentPhase(p).TotalCount()
	if p.Hand.Size() <= want {
		return
	}
	if g.r.Float64() > float64(p.Hand.Size())/15.0 {
		return
	}
	cards := p.Hand.Cards()[:want]
	log.Infof("bot %s lays down %s\n", p.Name, card.List(cards))
	at := 0
	for _, req := range g.currentPhase(p).Requirements {
		group := cards[at : at+req.Count]
		ids := make([]int, 0, req.Count)
		for _, c := range group {
			ids = append(ids, c.ID)
		}
		p.Hand.RemoveAll(ids)
		p.Melds = append(p.Melds, NewMeld(p.ID, req.Kind, group))
		at += req.Count
	}
	p.LaidDown = true
}
