package card

import (
	"fmt"

	"github.com/jackson-harris-iii/inifinite-phase-game/card/color"
)

// Kind discriminates the three card families.
type Kind string

const (
	Number Kind = "NUMBER"
	Wild   Kind = "WILD"
	Skip   Kind = "SKIP"
)

// Score values for hand-penalty accounting.
const (
	WildScore = 25
	SkipScore = 15
)

// Card is an immutable value. ID is unique across the deck and is the only
// field replication messages need to reference a physical card.
type Card struct {
	ID    int         `json:"id"`
	Kind  Kind        `json:"kind"`
	Color color.Color `json:"color"`
	Value int         `json:"value"`
}

func NewNumberCard(id int, c color.Color, value int) Card {
	return Card{ID: id, Kind: Number, Color: c, Value: value}
}

func NewWildCard(id int) Card {
	return Card{ID: id, Kind: Wild, Color: color.Wild, Value: WildScore}
}

func NewSkipCard(id int) Card {
	return Card{ID: id, Kind: Skip, Color: color.Skip, Value: SkipScore}
}

func (c Card) IsNumber() bool {
	return c.Kind == Number
}

func (c Card) IsWild() bool {
	return c.Kind == Wild
}

func (c Card) IsSkip() bool {
	return c.Kind == Skip
}

// Score is the penalty charged for holding this card at round end.
func (c Card) Score() int {
	switch c.Kind {
	case Wild:
		return WildScore
	case Skip:
		return SkipScore
	default:
		if c.Value >= 10 {
			return 10
		}
		return 5
	}
}

func (c Card) String() string {
	switch c.Kind {
	case Wild:
		return c.Color.Paint("[W]")
	case Skip:
		return c.Color.Paint("[S]")
	default:
		return c.Color.Paintf("[%d]", c.Value)
	}
}

func (c Card) Equal(other Card) bool {
	return c.ID == other.ID
}

func List(cards []Card) string {
	out := ""
	for i, c := range cards {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprint(c)
	}
	return out
}
