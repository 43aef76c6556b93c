package engine

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/number-guesser/constants"
	"github.com/lixenwraith/number-guesser/terminal"
)

// Game runs one guessing loop against a player source
type Game struct {
	src       Source
	out       io.Writer
	clock     TimeProvider
	palette   *terminal.Palette
	timeLimit time.Duration
}

// NewGame creates a game reading from src and writing prompts to out
// A nil clock uses the monotonic system clock; a nil palette prints plain text
func NewGame(src Source, out io.Writer, clock TimeProvider, palette *terminal.Palette) *Game {
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	return &Game{
		src:       src,
		out:       out,
		clock:     clock,
		palette:   palette,
		timeLimit: constants.TimeLimit,
	}
}

// SetTimeLimit overrides the time mode budget
func (g *Game) SetTimeLimit(d time.Duration) {
	g.timeLimit = d
}

// Play announces the range and runs the loop for st.Mode
// Errors are input failures only; a lost game is a Result, not an error
func (g *Game) Play(st State) (Result, error) {
	fmt.Fprintln(g.out, g.palette.Info(fmt.Sprintf("%s Mode: 0-%d", st.Difficulty.Label(), st.Difficulty.Max())))
	log.Printf("[%s] start mode=%s difficulty=%s secret=%d decoy=%d", st.ID, st.Mode, st.Difficulty, st.Secret, st.Decoy)

	var (
		res Result
		err error
	)
	switch st.Mode {
	case ModeAttempts:
		res, err = g.playAttempts(st)
	case ModeTime:
		res, err = g.playTime(st)
	default:
		return Result{}, errors.Wrapf(ErrInvalidMode, "%q", st.Mode.String())
	}
	if err != nil {
		log.Printf("[%s] aborted: %v", st.ID, err)
		return Result{}, err
	}

	log.Printf("[%s] finished outcome=%s attempts=%d elapsed=%s", res.ID, res.Outcome, res.Attempts, res.Elapsed)
	return res, nil
}

// playAttempts checks each guess in order: decoy, secret, cap, then hints
func (g *Game) playAttempts(st State) (Result, error) {
	limit := st.Difficulty.AttemptCap()
	st.Start = g.clock.Now()

	fmt.Fprint(g.out, "Guess what the secret number is: ")
	for {
		guess, err := g.src.Int()
		if err != nil {
			return Result{}, errors.Wrapf(err, "attempt %d", st.Attempts)
		}
		log.Printf("[%s] attempt %d guess=%d", st.ID, st.Attempts, guess)

		switch {
		case guess == st.Decoy:
			return g.finish(st, OutcomeNumberwang), nil
		case guess == st.Secret:
			return g.finish(st, OutcomeWon), nil
		case st.Attempts >= limit:
			return g.finish(st, OutcomeOutOfGuesses), nil
		case guess < st.Secret:
			fmt.Fprint(g.out, g.palette.Low("Too low, try a higher number: "))
		default:
			fmt.Fprint(g.out, g.palette.High("Too high, try a lower number: "))
		}
		st.Attempts++
	}
}

// playTime checks the deadline before each prompt and again after each read
// A guess that arrives late loses whatever its value
func (g *Game) playTime(st State) (Result, error) {
	st.Start = g.clock.Now()

	fmt.Fprint(g.out, "Guess what the secret number is: ")
	for {
		if g.remaining(st) <= 0 {
			return g.finish(st, OutcomeOutOfTime), nil
		}

		guess, err := g.src.Int()
		if err != nil {
			return Result{}, errors.Wrapf(err, "attempt %d", st.Attempts)
		}

		left := g.remaining(st)
		log.Printf("[%s] attempt %d guess=%d left=%s", st.ID, st.Attempts, guess, left)
		if left <= 0 {
			return g.finish(st, OutcomeOutOfTime), nil
		}

		switch {
		case guess == st.Decoy:
			return g.finish(st, OutcomeNumberwang), nil
		case guess == st.Secret:
			return g.finish(st, OutcomeWon), nil
		}

		timer := g.palette.Info(fmt.Sprintf("Time Left : %2d", int(left/time.Second)))
		if guess < st.Secret {
			fmt.Fprintf(g.out, "%s | %s", timer, g.palette.Low("Too low, try a higher number: "))
		} else {
			fmt.Fprintf(g.out, "%s | %s", timer, g.palette.High("Too high, try a lower number: "))
		}
		st.Attempts++
	}
}

// remaining is the budget left in whole elapsed seconds, matching the displayed timer
func (g *Game) remaining(st State) time.Duration {
	elapsed := g.clock.Now().Sub(st.Start).Truncate(time.Second)
	return g.timeLimit - elapsed
}

func (g *Game) finish(st State, outcome Outcome) Result {
	return Result{
		ID:         st.ID,
		Mode:       st.Mode,
		Difficulty: st.Difficulty,
		Outcome:    outcome,
		Secret:     st.Secret,
		Attempts:   st.Attempts,
		Elapsed:    g.clock.Now().Sub(st.Start),
	}
}
