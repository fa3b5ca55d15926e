package game

import (
	"github.com/jackson-harris-iii/inifinite-phase-game/card"
)

// Hand is an ordered card sequence. Order is meaningful to the owner and
// survives every operation except explicit reorders.
type Hand struct {
	cards []card.Card
}

func NewHand(cards []card.Card) *Hand {
	h := &Hand{cards: make([]card.Card, 0, len(cards))}
	h.cards = append(h.cards, cards...)
	return h
}

func (h *Hand) Add(c card.Card) {
	h.cards = append(h.cards, c)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Size() int {
	return len(h.cards)
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) Find(id int) (card.Card, bool) {
	for _, c := range h.cards {
		if c.ID == id {
			return c, true
		}
	}
	return card.Card{}, false
}

// Remove pulls the card with the given id, preserving the order of the rest.
func (h *Hand) Remove(id int) (card.Card, bool) {
	for i, c := range h.cards {
		if c.ID == id {
			h.cards = append(h.cards[:i], h.cards[i+1:]...)
			return c, true
		}
	}
	return card.Card{}, false
}

// Collect resolves a selection of ids against the hand without removing
// anything. Fails if any id is missing or repeated.
func (h *Hand) Collect(ids []int) ([]card.Card, bool) {
	seen := make(map[int]bool, len(ids))
	cards := make([]card.Card, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			return nil, false
		}
		seen[id] = true
		c, ok := h.Find(id)
		if !ok {
			return nil, false
		}
		cards = append(cards, c)
	}
	return cards, true
}

func (h *Hand) RemoveAll(ids []int) {
	for _, id := range ids {
		h.Remove(id)
	}
}

// Reorder moves the card at from to position to.
func (h *Hand) Reorder(from, to int) bool {
	if from < 0 || from >= len(h.cards) || to < 0 || to >= len(h.cards) {
		return false
	}
	c := h.cards[from]
	h.cards = append(h.cards[:from], h.cards[from+1:]...)
	rest := append([]card.Card{}, h.cards[to:]...)
	h.cards = append(append(h.cards[:to], c), rest...)
	return true
}

// Score sums the penalty values of every remaining card.
func (h *Hand) Score() int {
	total := 0
	for _, c := range h.cards {
		total += c.Score()
	}
	return total
}

// AutoDiscard picks the highest-value plain number card, falling back to the
// highest-scoring card of any kind.
func (h *Hand) AutoDiscard() (card.Card, bool) {
	if len(h.cards) == 0 {
		return card.Card{}, false
	}
	best, found := card.Card{}, false
	for _, c := range h.cards {
		if c.IsNumber() && (!found || c.Value > best.Value) {
			best, found = c, true
		}
	}
	if found {
		return best, true
	}
	best = h.cards[0]
	for _, c := range h.cards[1:] {
		if c.Score() > best.Score() {
			best = c
		}
	}
	return best, true
}
