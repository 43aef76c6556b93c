package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDifficultyOrdering verifies harder difficulties widen the range and the attempt cap
func TestDifficultyOrdering(t *testing.T) {
	assert.Less(t, EasyMax, MediumMax)
	assert.Less(t, MediumMax, HardMax)

	assert.Less(t, EasyAttempts, MediumAttempts)
	assert.Less(t, MediumAttempts, HardAttempts)
}

// TestCueEnvelopeFitsNote verifies attack and release fit inside one note
func TestCueEnvelopeFitsNote(t *testing.T) {
	assert.LessOrEqual(t, CueAttack+CueRelease, CueNoteDuration)
}
