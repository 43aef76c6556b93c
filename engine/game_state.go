package engine

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// State is the per-game value threaded through selection, loop and report
type State struct {
	ID         uuid.UUID
	Mode       Mode
	Difficulty Difficulty
	Secret     int
	Decoy      int
	Attempts   int
	Start      time.Time
}

// NewRand returns the process generator; seed 0 selects the current time
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// NewState draws Secret then Decoy uniformly from [0, Max]
// The two draws are independent and may coincide
func NewState(mode Mode, diff Difficulty, rng *rand.Rand) State {
	limit := diff.Max() + 1
	return State{
		ID:         uuid.New(),
		Mode:       mode,
		Difficulty: diff,
		Secret:     rng.Intn(limit),
		Decoy:      rng.Intn(limit),
		Attempts:   1,
	}
}
