package game

import (
	"math/rand"

	"github.com/jackson-harris-iii/inifinite-phase-game/card"
	"github.com/jackson-harris-iii/inifinite-phase-game/card/color"
	"github.com/jackson-harris-iii/inifinite-phase-game/consts"
)

const (
	deckSize  = 108
	wildCount = 8
	skipCount = 4
)

// Deck is the draw stack. Cards pop from the end.
type Deck struct {
	cards []card.Card
}

// NewDeck builds the fixed 108-card composition in deterministic order:
// two full runs of 1-12 per color, then wilds, then skips. Randomness is
// confined to Shuffle.
func NewDeck() *Deck {
	cards := make([]card.Card, 0, deckSize)
	id := 0
	for _, c := range color.Playable {
		for copies := 0; copies < 2; copies++ {
			for value := 1; value <= 12; value++ {
				cards = append(cards, card.NewNumberCard(id, c, value))
				id++
			}
		}
	}
	for i := 0; i < wildCount; i++ {
		cards = append(cards, card.NewWildCard(id))
		id++
	}
	for i := 0; i < skipCount; i++ {
		cards = append(cards, card.NewSkipCard(id))
		id++
	}
	return &Deck{cards: cards}
}

func newDeckFrom(cards []card.Card) *Deck {
	d := &Deck{cards: make([]card.Card, len(cards))}
	copy(d.cards, cards)
	return d
}

// Shuffle applies a Fisher-Yates permutation.
func (d *Deck) Shuffle(r *rand.Rand) {
	r.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

func (d *Deck) Pop() (card.Card, bool) {
	if len(d.cards) == 0 {
		return card.Card{}, false
	}
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c, true
}

func (d *Deck) Size() int {
	return len(d.cards)
}

func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

// Deal distributes handSize cards to each of playerCount hands, round-robin
// one card per player per pass.
func (d *Deck) Deal(playerCount, handSize int) [][]card.Card {
	hands := make([][]card.Card, playerCount)
	for i := range hands {
		hands[i] = make([]card.Card, 0, handSize)
	}
	for pass := 0; pass < handSize; pass++ {
		for i := 0; i < playerCount; i++ {
			c, ok := d.Pop()
			if !ok {
				return hands
			}
			hands[i] = append(hands[i], c)
		}
	}
	return hands
}

// Recycle rebuilds the deck from the discard pile when a draw finds the deck
// empty. The top discard is held aside and becomes the sole new discard; the
// rest is shuffled into the new deck. With one or zero discards the draw
// cannot proceed and the stalemate is reported.
func (d *Deck) Recycle(pile *Pile, r *rand.Rand) error {
	if pile.Size() <= 1 {
		return consts.ErrorsStalemate
	}
	top, rest := pile.TakeAllButTop()
	d.cards = append(d.cards, rest...)
	d.Shuffle(r)
	pile.Reset(top)
	return nil
}
