package engine

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/lixenwraith/number-guesser/constants"
)

// Mode selects the bounding rule of the guessing loop
type Mode int

const (
	ModeAttempts Mode = iota
	ModeTime
	ModeHelp
)

func (m Mode) String() string {
	switch m {
	case ModeAttempts:
		return "attempts"
	case ModeTime:
		return "time"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ParseMode accepts a mode word or its first letter, case-insensitive
func ParseMode(tok string) (Mode, error) {
	switch strings.ToLower(tok) {
	case "a", "attempts":
		return ModeAttempts, nil
	case "t", "time":
		return ModeTime, nil
	case "h", "help":
		return ModeHelp, nil
	}
	return 0, errors.Wrapf(ErrInvalidMode, "%q", tok)
}

// Difficulty fixes the secret range and the attempt cap
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}

// Label is the capitalized name shown in the range banner
func (d Difficulty) Label() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// Max returns the inclusive upper bound of the secret range
func (d Difficulty) Max() int {
	switch d {
	case DifficultyMedium:
		return constants.MediumMax
	case DifficultyHard:
		return constants.HardMax
	default:
		return constants.EasyMax
	}
}

// AttemptCap returns the number of guesses allowed in attempts mode
func (d Difficulty) AttemptCap() int {
	switch d {
	case DifficultyMedium:
		return constants.MediumAttempts
	case DifficultyHard:
		return constants.HardAttempts
	default:
		return constants.EasyAttempts
	}
}

// ParseDifficulty accepts a difficulty word or its first letter, case-insensitive
func ParseDifficulty(tok string) (Difficulty, error) {
	switch strings.ToLower(tok) {
	case "e", "easy":
		return DifficultyEasy, nil
	case "m", "medium":
		return DifficultyMedium, nil
	case "h", "hard":
		return DifficultyHard, nil
	}
	return 0, errors.Wrapf(ErrInvalidDifficulty, "%q", tok)
}
