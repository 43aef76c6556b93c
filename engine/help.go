package engine

import (
	"fmt"
	"io"

	"github.com/lixenwraith/number-guesser/constants"
)

// PrintUsage prints the one-line invocation summary
func PrintUsage(w io.Writer, prog string) {
	fmt.Fprintf(w, "Usage: %s [-debug] [-sound] [-color=auto|never|256|truecolor] [-seed N] <attempts|time|help> [easy|medium|hard]\n", prog)
}

// PrintHelp prints the game description derived from the configured limits
func PrintHelp(w io.Writer) {
	limit := int(constants.TimeLimit.Seconds())

	fmt.Fprintf(w, "%s - %s\n", constants.AppName, constants.AppVersion)
	fmt.Fprint(w, "A simple number guessing game.\n\n")
	fmt.Fprint(w, "There are two gamemodes, attempts and time.\n\n")

	fmt.Fprintf(w, "In attempts mode, you are given %d, %d or %d attempts at guessing the correct\n",
		constants.EasyAttempts, constants.MediumAttempts, constants.HardAttempts)
	fmt.Fprint(w, "number, depending on the difficulty. Each time you take a guess, you are told\n")
	fmt.Fprint(w, "whether the actual number is higher or lower. You have unlimited time.\n")
	fmt.Fprint(w, "If you run out of guesses, the game is over.\n\n")

	fmt.Fprintf(w, "In time mode, you are given %d seconds to guess the correct number.\n", limit)
	fmt.Fprint(w, "Each time you take a guess, your remaining time is printed.\n")
	fmt.Fprint(w, "You have unlimited guesses.\n")
	fmt.Fprint(w, "If you run out of time, the game is over.\n\n")

	fmt.Fprint(w, "There are three difficulties: easy, medium and hard\n")
	fmt.Fprintf(w, "In easy mode, the number could be anything from 0-%d\n", constants.EasyMax)
	fmt.Fprintf(w, "In medium mode, the number could be anything from 0-%d\n", constants.MediumMax)
	fmt.Fprintf(w, "In hard mode, the number could be anything from 0-%d\n\n", constants.HardMax)

	fmt.Fprint(w, "Somewhere in the range hides a second number. Guess it and\n")
	fmt.Fprint(w, "that's numberwang: you win on the spot.\n")
}
