package game

import (
	"github.com/google/uuid"
	"github.com/jackson-harris-iii/inifinite-phase-game/card"
	"github.com/jackson-harris-iii/inifinite-phase-game/phase"
)

// Meld is a laid-down group on the table. It only ever grows, by hits.
type Meld struct {
	ID    string      `json:"id"`
	Kind  phase.Kind  `json:"kind"`
	Owner string      `json:"owner"`
	Cards []card.Card `json:"cards"`
}

func NewMeld(owner string, kind phase.Kind, cards []card.Card) *Meld {
	m := &Meld{
		ID:    uuid.NewString(),
		Kind:  kind,
		Owner: owner,
		Cards: make([]card.Card, 0, len(cards)),
	}
	m.Cards = append(m.Cards, cards...)
	return m
}

func (m *Meld) Add(c card.Card) {
	m.Cards = append(m.Cards, c)
}

func (m *Meld) clone() *Meld {
	return &Meld{
		ID:    m.ID,
		Kind:  m.Kind,
		Owner: m.Owner,
		Cards: append([]card.Card{}, m.Cards...),
	}
}
