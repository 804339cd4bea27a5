package roadmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletePhase(t *testing.T) {
	r := Roadmap{Content: Content{Phases: []Phase{{PhaseNumber: 1}, {PhaseNumber: 2}, {PhaseNumber: 3}, {PhaseNumber: 4}}}}

	require.NoError(t, r.CompletePhase(2, 140))
	assert.True(t, r.Content.Phases[1].IsCompleted)
	assert.Equal(t, 100, r.Content.Phases[1].Score)
	assert.Equal(t, 25, r.Progress())

	assert.ErrorIs(t, r.CompletePhase(9, 10), ErrPhaseNotFound)
}

func TestProgress_Empty(t *testing.T) {
	assert.Equal(t, 0, Roadmap{}.Progress())
}
