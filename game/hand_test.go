package game_test

import (
	"testing"

	"github.com/jackson-harris-iii/inifinite-phase-game/card"
	"github.com/jackson-harris-iii/inifinite-phase-game/card/color"
	"github.com/jackson-harris-iii/inifinite-phase-game/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandScore(t *testing.T) {
	hand := game.NewHand([]card.Card{
		card.NewWildCard(1),                  // 25
		card.NewSkipCard(2),                  // 15
		card.NewNumberCard(3, color.Red, 10), // 10
		card.NewNumberCard(4, color.Red, 12), // 10
		card.NewNumberCard(5, color.Red, 9),  // 5
		card.NewNumberCard(6, color.Red, 1),  // 5
	})
	assert.Equal(t, 70, hand.Score())
}

func TestHandCollect(t *testing.T) {
	hand := game.NewHand([]card.Card{
		card.NewNumberCard(1, color.Red, 3),
		card.NewNumberCard(2, color.Red, 4),
	})

	cards, ok := hand.Collect([]int{2, 1})
	require.True(t, ok)
	assert.Equal(t, []int{2, 1}, []int{cards[0].ID, cards[1].ID})
	assert.Equal(t, 2, hand.Size(), "collect must not remove")

	_, ok = hand.Collect([]int{1, 1})
	assert.False(t, ok, "repeated ids")
	_, ok = hand.Collect([]int{1, 9})
	assert.False(t, ok, "missing id")
}

func TestAutoDiscard(t *testing.T) {
	scenarios := []struct {
		description string
		cards       []card.Card
		expectedID  int
	}{
		{
			description: "highest_plain_number_wins",
			cards: []card.Card{
				card.NewWildCard(1),
				card.NewNumberCard(2, color.Red, 4),
				card.NewNumberCard(3, color.Blue, 11),
				card.NewSkipCard(4),
			},
			expectedID: 3,
		},
		{
			description: "falls_back_to_highest_scoring_special",
			cards: []card.Card{
				card.NewSkipCard(1),
				card.NewWildCard(2),
			},
			expectedID: 2,
		},
	}
	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			hand := game.NewHand(scenario.cards)
			c, ok := hand.AutoDiscard()
			require.True(t, ok)
			assert.Equal(t, scenario.expectedID, c.ID)
		})
	}
}
