package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/lixenwraith/number-guesser/audio"
	"github.com/lixenwraith/number-guesser/engine"
	"github.com/lixenwraith/number-guesser/input"
	"github.com/lixenwraith/number-guesser/terminal"
)

func main() {
	// Panic Recovery: report and exit non-zero instead of dumping a raw trace
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\nNUMBER GUESSER CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	os.Exit(run(filepath.Base(os.Args[0]), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// options collects parsed command-line flags
type options struct {
	help      bool
	debug     bool
	sound     bool
	colorMode string
	seed      int64
	args      []string
}

func parseFlags(prog string, args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet(prog, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { engine.PrintUsage(stderr, prog) }

	var helpLower, helpUpper bool
	fs.BoolVar(&opts.help, "help", false, "Print help and exit")
	fs.BoolVar(&helpLower, "h", false, "Print help and exit")
	fs.BoolVar(&helpUpper, "H", false, "Print help and exit")
	fs.BoolVar(&opts.debug, "debug", false, "Write a debug log to logs/")
	fs.BoolVar(&opts.sound, "sound", false, "Play a sound cue when the game ends")
	fs.StringVar(&opts.colorMode, "color", terminal.ColorAuto, "Color mode: auto, never, 256, truecolor")
	fs.Int64Var(&opts.seed, "seed", 0, "Random seed (0 uses the current time)")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	opts.help = opts.help || helpLower || helpUpper
	opts.args = fs.Args()
	return opts, nil
}

// run plays one game and returns the process exit status
// 0 for help or any finished game, 1 for argument, selection or input errors
func run(prog string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(prog, args, stderr)
	if err != nil {
		return 1
	}

	logFile := setupLogging(opts.debug)
	if logFile != nil {
		defer logFile.Close()
	}

	if opts.help {
		engine.PrintHelp(stdout)
		return 0
	}

	outFile, _ := stdout.(*os.File)
	palette, err := terminal.ResolvePalette(opts.colorMode, outFile)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", prog, err)
		return 1
	}

	src := input.NewReader(stdin)
	sel, err := engine.Select(opts.args, src, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v, exiting.\n", prog, err)
		if len(opts.args) > 0 {
			engine.PrintUsage(stderr, prog)
		}
		return 1
	}
	if sel.Mode == engine.ModeHelp {
		engine.PrintHelp(stdout)
		return 0
	}

	var player *audio.Player
	if opts.sound {
		player = audio.NewPlayer()
		if err := player.Init(); err != nil {
			fmt.Fprintf(stderr, "Audio initialization failed: %v (continuing without audio)\n", err)
		}
		defer player.Close()
	}

	st := engine.NewState(sel.Mode, sel.Difficulty, engine.NewRand(opts.seed))
	game := engine.NewGame(src, stdout, engine.NewMonotonicTimeProvider(), palette)

	res, err := game.Play(st)
	if err != nil {
		fmt.Fprintf(stderr, "\n%s: %v\n", prog, err)
		return 1
	}

	engine.Report(stdout, res, palette)
	if player != nil {
		log.Printf("[%s] cue %s", res.ID, cueFor(res.Outcome))
		player.Play(cueFor(res.Outcome))
	}
	return 0
}

func cueFor(o engine.Outcome) audio.Cue {
	switch o {
	case engine.OutcomeWon:
		return audio.CueWin
	case engine.OutcomeNumberwang:
		return audio.CueNumberwang
	case engine.OutcomeOutOfGuesses, engine.OutcomeOutOfTime:
		return audio.CueLoss
	default:
		return audio.CueNone
	}
}
