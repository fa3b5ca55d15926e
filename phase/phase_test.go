package phase_test

import (
	"testing"

	"github.com/jackson-harris-iii/inifinite-phase-game/phase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardShape(t *testing.T) {
	phases := phase.Standard()
	require.Len(t, phases, 10)
	assert.True(t, phase.Valid(phases))
	for i, p := range phases {
		assert.Equal(t, i+1, p.Number)
	}
	assert.Equal(t, 6, phases[0].TotalCount())
	assert.Equal(t, []phase.Requirement{{Kind: phase.Run, Count: 7}}, phases[3].Requirements)
}

func TestValid(t *testing.T) {
	scenarios := []struct {
		description string
		mutate      func([]phase.Phase) []phase.Phase
		expected    bool
	}{
		{
			description: "standard_list",
			mutate:      func(p []phase.Phase) []phase.Phase { return p },
			expected:    true,
		},
		{
			description: "wrong_length",
			mutate:      func(p []phase.Phase) []phase.Phase { return p[:9] },
			expected:    false,
		},
		{
			description: "misnumbered",
			mutate: func(p []phase.Phase) []phase.Phase {
				p[4].Number = 99
				return p
			},
			expected: false,
		},
		{
			description: "unknown_requirement_kind",
			mutate: func(p []phase.Phase) []phase.Phase {
				p[0].Requirements[0].Kind = "LADDER"
				return p
			},
			expected: false,
		},
		{
			description: "count_out_of_range",
			mutate: func(p []phase.Phase) []phase.Phase {
				p[0].Requirements[0].Count = 1
				return p
			},
			expected: false,
		},
		{
			description: "too_many_requirements",
			mutate: func(p []phase.Phase) []phase.Phase {
				p[0].Requirements = append(p[0].Requirements, phase.Requirement{Kind: phase.Set, Count: 3})
				return p
			},
			expected: false,
		},
	}
	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			assert.Equal(t, scenario.expected, phase.Valid(scenario.mutate(phase.Standard())))
		})
	}
}
