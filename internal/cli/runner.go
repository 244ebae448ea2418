package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/idilsaglam/tictac/internal/config"
	"github.com/idilsaglam/tictac/internal/game"
	"github.com/idilsaglam/tictac/internal/ui"
)

// Options carry the root flags; zero values defer to the config file and
// environment.
type Options struct {
	ConfigPath string
	Theme      string
	NoColor    bool
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2
// usage). No arguments starts the interactive game.
func Run(args []string, opt Options) int {
	path := opt.ConfigPath
	if path == "" {
		path = config.DefaultPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		ui.Fail("config: " + err.Error())
		return 1
	}
	if opt.Theme != "" {
		cfg.Theme = opt.Theme
	}
	if opt.NoColor {
		cfg.NoColor = true
	}
	theme := ui.ByName(cfg.Theme)
	if cfg.NoColor {
		theme = ui.ByName("mono")
	}

	if len(args) == 0 {
		return doPlay(theme, !cfg.Inline)
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "play":
		return doPlay(theme, !cfg.Inline)

	case "replay":
		if len(a) == 0 {
			ui.Fail("usage: tictac replay <cell 0-8>...")
			return 2
		}
		return doReplay(theme, a)
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Printf(`tictac - tic-tac-toe with time travel

Usage:
  tictac [flags] [subcommand]

Subcommands:
  play               Start the interactive game (default)
  replay <cell...>   Apply a move sequence and print the final board;
                     cells are 0-8, row-major from the top left, and
                     illegal moves are skipped just like stray clicks
  help               Show this text

Flags:
  -theme <name>      auto, classic, neon, or mono
  -no-color          Force the mono theme
  -config <path>     Config file (default tictac.yml)

Examples:
  tictac
  tictac -theme neon play
  tictac replay 0 3 1 4 2
`)
}

// -------------- subcommand impls ----------------

func doPlay(t ui.Theme, altScreen bool) int {
	if err := ui.Run(t, altScreen); err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	return 0
}

// doReplay feeds a scripted sequence through the same state machine the TUI
// uses. Occupied cells and moves after a win are dropped silently; arguments
// that are not cell indices at all are the caller's mistake and reject the
// whole run.
func doReplay(t ui.Theme, args []string) int {
	st := game.New()
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			ui.Fail("replay: not a number: " + a)
			return 2
		}
		if n < 0 || n > 8 {
			ui.Fail(fmt.Sprintf("replay: cell out of range: %d", n))
			return 2
		}
		st = st.Play(n)
	}

	fmt.Println(ui.Panel(t, ui.BoardView(t, st.Board(), -1)))
	fmt.Printf("%s  (%d of %d moves applied)\n", st.Status(), st.CurrentMove(), len(args))
	return 0
}
