package engine

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/number-guesser/terminal"
)

// Outcome is the terminal state of a game
type Outcome int

const (
	OutcomeWon Outcome = iota
	OutcomeNumberwang
	OutcomeOutOfGuesses
	OutcomeOutOfTime
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeNumberwang:
		return "numberwang"
	case OutcomeOutOfGuesses:
		return "out of guesses"
	case OutcomeOutOfTime:
		return "out of time"
	default:
		return "unknown"
	}
}

// Result summarizes a finished game
type Result struct {
	ID         uuid.UUID
	Mode       Mode
	Difficulty Difficulty
	Outcome    Outcome
	Secret     int
	Attempts   int
	Elapsed    time.Duration
}

// Won reports whether the player won, normally or by numberwang
func (r Result) Won() bool {
	return r.Outcome == OutcomeWon || r.Outcome == OutcomeNumberwang
}

// Seconds returns elapsed whole seconds
func (r Result) Seconds() int {
	return int(r.Elapsed / time.Second)
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// Report prints the end-of-game summary
func Report(w io.Writer, r Result, p *terminal.Palette) {
	// Separates the summary from the last prompt
	fmt.Fprintln(w)

	switch r.Outcome {
	case OutcomeWon:
		fmt.Fprintln(w, p.Win(fmt.Sprintf("Correct! The number was: %d", r.Secret)))
		fmt.Fprintf(w, "It took you %s\n", plural(r.Attempts, "attempt"))
	case OutcomeNumberwang:
		fmt.Fprintln(w, p.Numberwang("THAT'S NUMBERWANG!"))
		fmt.Fprintf(w, "The number was: %d\n", r.Secret)
		fmt.Fprintf(w, "It took you %s\n", plural(r.Attempts, "attempt"))
	case OutcomeOutOfGuesses:
		fmt.Fprintln(w, p.Loss("Sorry, you ran out of guesses!"))
		fmt.Fprintf(w, "The number was: %d\n", r.Secret)
	case OutcomeOutOfTime:
		fmt.Fprintln(w, p.Loss("Sorry, you ran out of time!"))
		fmt.Fprintf(w, "The number was: %d\n", r.Secret)
	}

	fmt.Fprintf(w, "It took you %s\n", plural(r.Seconds(), "second"))
	fmt.Fprintln(w, "Thank you for playing")
}
