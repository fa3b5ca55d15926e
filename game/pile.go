package game

import (
	"github.com/jackson-harris-iii/inifinite-phase-game/card"
)

// Pile is the discard pile. Top is the last element.
type Pile struct {
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, 54)}
}

func (p *Pile) Add(c card.Card) {
	p.cards = append(p.cards, c)
}

func (p *Pile) Top() (card.Card, bool) {
	if len(p.cards) == 0 {
		return card.Card{}, false
	}
	return p.cards[len(p.cards)-1], true
}

func (p *Pile) PopTop() (card.Card, bool) {
	c, ok := p.Top()
	if !ok {
		return card.Card{}, false
	}
	p.cards = p.cards[:len(p.cards)-1]
	return c, true
}

func (p *Pile) Size() int {
	return len(p.cards)
}

func (p *Pile) Cards() []card.Card {
	cards := make([]card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

// TakeAllButTop empties the pile, returning the held-aside top separately from
// the rest. Caller must ensure Size() > 1.
func (p *Pile) TakeAllButTop() (card.Card, []card.Card) {
	top := p.cards[len(p.cards)-1]
	rest := make([]card.Card, len(p.cards)-1)
	copy(rest, p.cards[:len(p.cards)-1])
	p.cards = p.cards[:0]
	return top, rest
}

func (p *Pile) Reset(top card.Card) {
	p.cards = append(p.cards[:0], top)
}
