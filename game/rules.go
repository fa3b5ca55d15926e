package game

import (
	"sort"

	"github.com/jackson-harris-iii/inifinite-phase-game/card"
	"github.com/jackson-harris-iii/inifinite-phase-game/card/color"
	"github.com/jackson-harris-iii/inifinite-phase-game/consts"
	"github.com/jackson-harris-iii/inifinite-phase-game/phase"
)

// IsValidSet reports whether the selection forms a set of at least count
// cards: every non-wild card is a number card sharing one value, wilds pad.
func IsValidSet(cards []card.Card, count int) bool {
	if len(cards) < count {
		return false
	}
	value := 0
	for _, c := range cards {
		switch {
		case c.IsWild():
		case c.IsNumber():
			if value == 0 {
				value = c.Value
			} else if c.Value != value {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// IsValidColor is the same grouping by color. Number and skip cards both count
// as naturals here, each under its own color identity.
func IsValidColor(cards []card.Card, count int) bool {
	if len(cards) < count {
		return false
	}
	group := color.Color("")
	for _, c := range cards {
		if c.IsWild() {
			continue
		}
		if group == "" {
			group = c.Color
		} else if c.Color != group {
			return false
		}
	}
	return true
}

// IsValidRun reports whether the non-wild cards can be arranged into a strict
// ascending sequence, with wilds filling the gaps. Duplicate values always
// fail; an all-wild selection is trivially valid. Unlike sets and color
// groups, the run check is purely structural: count is not enforced here.
func IsValidRun(cards []card.Card, count int) bool {
	values := make([]int, 0, len(cards))
	wilds := 0
	for _, c := range cards {
		switch {
		case c.IsWild():
			wilds++
		case c.IsNumber():
			values = append(values, c.Value)
		default:
			return false
		}
	}
	if len(values) == 0 {
		return true
	}
	sort.Ints(values)
	for i := 1; i < len(values); i++ {
		if values[i] == values[i-1] {
			return false
		}
		gap := values[i] - values[i-1] - 1
		if gap > wilds {
			return false
		}
		wilds -= gap
	}
	return true
}

// Satisfies dispatches a whole selection against one requirement. The run
// structure check itself is count-free, but a laid-down run group must still
// reach the requirement count, so the floor is enforced here.
func Satisfies(cards []card.Card, req phase.Requirement) bool {
	switch req.Kind {
	case phase.Set:
		return IsValidSet(cards, req.Count)
	case phase.Run:
		return len(cards) >= req.Count && IsValidRun(cards, req.Count)
	case phase.Color:
		return IsValidColor(cards, req.Count)
	}
	return false
}

// FindSplit decides whether the selection can be partitioned to satisfy every
// requirement group simultaneously, returning one group of cards per
// requirement, in requirement order.
//
// Two-requirement phases enumerate every non-trivial bipartition by bitmask,
// low masks first, and take the first split that works in either assignment
// order. Brute force is fine at these sizes; callers gate the selection with
// consts.MaxSelection. The enumeration order is fixed so a given selection
// always produces the same split.
func FindSplit(cards []card.Card, reqs []phase.Requirement) ([][]card.Card, bool) {
	if len(cards) > consts.MaxSelection {
		return nil, false
	}
	switch len(reqs) {
	case 1:
		if Satisfies(cards, reqs[0]) {
			return [][]card.Card{cards}, true
		}
		return nil, false
	case 2:
		n := len(cards)
		for mask := 1; mask < (1<<uint(n))-1; mask++ {
			first := make([]card.Card, 0, n)
			second := make([]card.Card, 0, n)
			for i := 0; i < n; i++ {
				if mask&(1<<uint(i)) != 0 {
					first = append(first, cards[i])
				} else {
					second = append(second, cards[i])
				}
			}
			if Satisfies(first, reqs[0]) && Satisfies(second, reqs[1]) {
				return [][]card.Card{first, second}, true
			}
			if Satisfies(first, reqs[1]) && Satisfies(second, reqs[0]) {
				return [][]card.Card{second, first}, true
			}
		}
	}
	return nil, false
}

// CanAddToMeld reports whether a single hand card may be hit onto an existing
// meld. The whole resulting group is re-validated under the meld's kind; skip
// cards can never be hit anywhere.
func CanAddToMeld(c card.Card, m *Meld) bool {
	if c.IsSkip() {
		return false
	}
	grown := make([]card.Card, 0, len(m.Cards)+1)
	grown = append(grown, m.Cards...)
	grown = append(grown, c)
	return Satisfies(grown, phase.Requirement{Kind: m.Kind, Count: len(m.Cards)})
}
