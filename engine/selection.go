package engine

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Source supplies player responses
// *input.Reader satisfies it
type Source interface {
	Int() (int, error)
	Choice() (string, error)
}

// Selection is the outcome of the mode and difficulty phase
type Selection struct {
	Mode       Mode
	Difficulty Difficulty
}

// Select resolves mode and difficulty from positional args, prompting for whatever is missing
// Help short-circuits before the difficulty is asked
func Select(args []string, src Source, out io.Writer) (Selection, error) {
	var sel Selection

	if len(args) > 2 {
		return sel, errors.Wrapf(ErrTooManyArgs, "got %d", len(args))
	}

	modeTok := ""
	if len(args) > 0 {
		modeTok = args[0]
	} else {
		fmt.Fprintln(out, "Choose a gamemode, (a)ttempts or (t)ime")
		c, err := src.Choice()
		if err != nil {
			return sel, errors.Wrap(err, "read gamemode")
		}
		modeTok = c
	}

	mode, err := ParseMode(modeTok)
	if err != nil {
		return sel, err
	}
	sel.Mode = mode
	if mode == ModeHelp {
		return sel, nil
	}

	diffTok := ""
	if len(args) > 1 {
		diffTok = args[1]
	} else {
		fmt.Fprintln(out, "Choose a difficulty, (e)asy, (m)edium or (h)ard")
		c, err := src.Choice()
		if err != nil {
			return sel, errors.Wrap(err, "read difficulty")
		}
		diffTok = c
	}

	diff, err := ParseDifficulty(diffTok)
	if err != nil {
		return sel, err
	}
	sel.Difficulty = diff
	return sel, nil
}
