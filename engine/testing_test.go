package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/number-guesser/input"
)

// step is one scripted player response
type step struct {
	guess int
	after time.Duration // advanced on the clock before the guess is returned
	err   error
}

// scriptedSource replays guesses and choices, advancing a mock clock per guess
type scriptedSource struct {
	clock   *MockTimeProvider
	steps   []step
	choices []string
	reads   int
}

func (s *scriptedSource) Int() (int, error) {
	if len(s.steps) == 0 {
		return 0, input.ErrNoInput
	}
	st := s.steps[0]
	s.steps = s.steps[1:]
	s.reads++
	if s.clock != nil {
		s.clock.Advance(st.after)
	}
	return st.guess, st.err
}

func (s *scriptedSource) Choice() (string, error) {
	if len(s.choices) == 0 {
		return "", input.ErrNoInput
	}
	c := s.choices[0]
	s.choices = s.choices[1:]
	return c, nil
}

func guesses(after time.Duration, values ...int) []step {
	steps := make([]step, len(values))
	for i, v := range values {
		steps[i] = step{guess: v, after: after}
	}
	return steps
}

func fixedState(mode Mode, diff Difficulty, secret, decoy int) State {
	return State{
		ID:         uuid.New(),
		Mode:       mode,
		Difficulty: diff,
		Secret:     secret,
		Decoy:      decoy,
		Attempts:   1,
	}
}

func testClock() *MockTimeProvider {
	return NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
}
