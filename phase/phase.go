package phase

import (
	"fmt"
	"strings"
)

// Kind is a meld requirement family.
type Kind string

const (
	Set   Kind = "SET"
	Run   Kind = "RUN"
	Color Kind = "COLOR"
)

// Requirement is one card grouping a phase demands.
type Requirement struct {
	Kind  Kind `json:"kind"`
	Count int  `json:"count"`
}

func (r Requirement) String() string {
	switch r.Kind {
	case Set:
		return fmt.Sprintf("set of %d", r.Count)
	case Run:
		return fmt.Sprintf("run of %d", r.Count)
	case Color:
		return fmt.Sprintf("%d of one color", r.Count)
	}
	return fmt.Sprintf("%d cards", r.Count)
}

// Phase is an ordinal goal. Requirements holds one or two groups the player
// must lay down simultaneously. Phases never change once a round has started.
type Phase struct {
	Number       int           `json:"number"`
	Requirements []Requirement `json:"requirements"`
}

func (p Phase) String() string {
	parts := make([]string, 0, len(p.Requirements))
	for _, r := range p.Requirements {
		parts = append(parts, r.String())
	}
	return fmt.Sprintf("Phase %d: %s", p.Number, strings.Join(parts, " + "))
}

// TotalCount is the minimum number of cards that satisfies every requirement.
func (p Phase) TotalCount() int {
	total := 0
	for _, r := range p.Requirements {
		total += r.Count
	}
	return total
}

// Standard returns the fixed ten-phase list.
func Standard() []Phase {
	return []Phase{
		{Number: 1, Requirements: []Requirement{{Set, 3}, {Set, 3}}},
		{Number: 2, Requirements: []Requirement{{Set, 3}, {Run, 4}}},
		{Number: 3, Requirements: []Requirement{{Set, 4}, {Run, 4}}},
		{Number: 4, Requirements: []Requirement{{Run, 7}}},
		{Number: 5, Requirements: []Requirement{{Run, 8}}},
		{Number: 6, Requirements: []Requirement{{Run, 9}}},
		{Number: 7, Requirements: []Requirement{{Set, 4}, {Set, 4}}},
		{Number: 8, Requirements: []Requirement{{Color, 7}}},
		{Number: 9, Requirements: []Requirement{{Set, 5}, {Set, 2}}},
		{Number: 10, Requirements: []Requirement{{Set, 5}, {Set, 3}}},
	}
}

// Valid reports whether a provider-substituted list has the same structural
// shape as the standard one.
func Valid(phases []Phase) bool {
	if len(phases) != len(Standard()) {
		return false
	}
	for i, p := range phases {
		if p.Number != i+1 {
			return false
		}
		if len(p.Requirements) < 1 || len(p.Requirements) > 2 {
			return false
		}
		for _, r := range p.Requirements {
			switch r.Kind {
			case Set, Run, Color:
			default:
				return false
			}
			if r.Count < 2 || r.Count > 12 {
				return false
			}
		}
	}
	return true
}
